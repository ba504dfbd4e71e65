package validator

import (
	"testing"
)

type point struct {
	Lat *float64 `json:"lat" validate:"required,lat"`
	Lng float64  `json:"lng" validate:"lng"`
}

type form struct {
	Name     string   `json:"name" validate:"notblank,max=5"`
	Tags     []string `json:"tags" validate:"max=2"`
	Location point    `json:"location"`
}

func TestStruct(t *testing.T) {
	lat := 91.0
	tests := []struct {
		name string
		in   form
		want map[string]string
	}{
		{
			name: "valid",
			in:   form{Name: "ok", Location: point{Lat: new(float64), Lng: 10}},
			want: map[string]string{},
		},
		{
			name: "json field names and nested paths",
			in:   form{Name: "   ", Tags: []string{"a", "b", "c"}, Location: point{Lat: &lat, Lng: 181}},
			want: map[string]string{
				"name":         "is required",
				"tags":         "must contain at most 2 items",
				"location.lat": "must be between -90 and 90",
				"location.lng": "must be between -180 and 180",
			},
		},
		{
			name: "missing pointer",
			in:   form{Name: "toolong"},
			want: map[string]string{
				"name":         "must be at most 5 characters",
				"location.lat": "is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.in)
			if len(errs) != len(tt.want) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.want))
			}
			for _, e := range errs {
				if tt.want[e.Field] != e.Message {
					t.Errorf("%s: got %q, want %q", e.Field, e.Message, tt.want[e.Field])
				}
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	if errs.HasErrors() || errs.Error() != "" {
		t.Fatal("empty errors should report nothing")
	}
	errs.Add("a", "is required")
	errs.Add("b", "is bad")
	if got := errs.Error(); got != "a: is required; b: is bad" {
		t.Fatalf("Error() = %q", got)
	}
}
