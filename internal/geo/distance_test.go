package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	points := []Point{
		{0, 0},
		{37.7749, -122.4194},
		{50.4501, 30.5234},
		{-33.8688, 151.2093},
		{89.9, 179.9},
		{-89.9, -179.9},
		{35.6762, 139.6503},
	}

	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(a, b)
			ba := DistanceKm(b, a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("distance not symmetric for %v,%v: %v vs %v", a, b, ab, ba)
			}
		}
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	t.Parallel()

	for _, p := range []Point{{0, 0}, {50.4501, 30.5234}, {-90, 180}} {
		if d := DistanceKm(p, p); d != 0 {
			t.Fatalf("expected 0 for %v, got %v", p, d)
		}
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Point
		want float64
	}{
		{"one_degree_longitude_at_equator", Point{0, 0}, Point{0, 1}, 111.19},
		{"one_degree_latitude", Point{0, 0}, Point{1, 0}, 111.19},
		{"kyiv_nearby", Point{50.4501, 30.5234}, Point{50.46, 30.53}, 1.2},
		{"antipodal_equator", Point{0, 0}, Point{0, 180}, 20015.09},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Round2(DistanceKm(tc.a, tc.b))
			if math.Abs(got-tc.want) > 0.01 {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{
		1.234:  1.23,
		1.236:  1.24,
		0:      0,
		111.19: 111.19,
		49.994: 49.99,
	}
	for in, want := range cases {
		if got := Round2(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
