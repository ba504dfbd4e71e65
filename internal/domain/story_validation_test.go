package domain_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/pkg/validator"
)

func f64(v float64) *float64 { return &v }

func validCandidate() domain.StoryCandidate {
	return domain.StoryCandidate{
		Title:   "Night shelling in Kyiv",
		Content: "We spent the night in the metro station.",
		Author:  "Olena",
		Location: domain.CandidateLocation{
			Lat:      f64(50.46),
			Lng:      f64(30.53),
			Name:     "Kyiv",
			CrisisID: "ukraine-conflict",
		},
		IsLocationVerified: true,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateCandidate_Valid(t *testing.T) {
	c := validCandidate()
	c.Title = "  padded title  "

	v, err := domain.ValidateCandidate(c, domain.DefaultUploadLimits())
	if err != nil {
		t.Fatalf("ValidateCandidate: %v", err)
	}
	if v.Title() != "padded title" {
		t.Errorf("title = %q, want trimmed", v.Title())
	}
	if v.Excerpt() != c.Content {
		t.Errorf("excerpt = %q, want content when short", v.Excerpt())
	}
	loc := v.Location()
	if loc.Lat != 50.46 || loc.Lng != 30.53 || loc.CrisisID != "ukraine-conflict" {
		t.Errorf("location = %+v", loc)
	}
}

func TestValidateCandidate_FieldErrors(t *testing.T) {
	img := "data:image/png;base64,AAAA"

	tests := []struct {
		name   string
		mutate func(*domain.StoryCandidate)
		field  string
	}{
		{"missing title", func(c *domain.StoryCandidate) { c.Title = "" }, "title"},
		{"blank title", func(c *domain.StoryCandidate) { c.Title = "   \t" }, "title"},
		{"title too long", func(c *domain.StoryCandidate) { c.Title = strings.Repeat("я", 201) }, "title"},
		{"missing content", func(c *domain.StoryCandidate) { c.Content = "" }, "content"},
		{"content too long", func(c *domain.StoryCandidate) { c.Content = strings.Repeat("a", 5001) }, "content"},
		{"excerpt too long", func(c *domain.StoryCandidate) { c.Excerpt = strings.Repeat("a", 301) }, "excerpt"},
		{"missing author", func(c *domain.StoryCandidate) { c.Author = " " }, "author"},
		{"missing lat", func(c *domain.StoryCandidate) { c.Location.Lat = nil }, "location.lat"},
		{"lat out of range", func(c *domain.StoryCandidate) { c.Location.Lat = f64(90.0001) }, "location.lat"},
		{"missing lng", func(c *domain.StoryCandidate) { c.Location.Lng = nil }, "location.lng"},
		{"lng out of range", func(c *domain.StoryCandidate) { c.Location.Lng = f64(-180.5) }, "location.lng"},
		{"missing crisis", func(c *domain.StoryCandidate) { c.Location.CrisisID = "" }, "location.crisisId"},
		{"too many images", func(c *domain.StoryCandidate) {
			c.Images = []string{img, img, img, img, img, img}
		}, "images"},
		{"not a data uri", func(c *domain.StoryCandidate) { c.Images = []string{img, "https://example.org/a.png"} }, "images[1]"},
		{"image too large", func(c *domain.StoryCandidate) {
			c.Images = []string{"data:image/jpeg;base64," + strings.Repeat("A", domain.DefaultMaxImageEncodedBytes)}
		}, "images[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			_, err := domain.ValidateCandidate(c, domain.DefaultUploadLimits())
			fields := fieldsOf(t, err)
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("errors %v do not mention %q", fields, tt.field)
			}
		})
	}
}

func TestValidateCandidate_BoundaryLengthsAccepted(t *testing.T) {
	c := validCandidate()
	c.Title = strings.Repeat("я", 200)
	c.Content = strings.Repeat("a", 5000)
	c.Excerpt = strings.Repeat("b", 300)
	c.Images = []string{"data:image/png;base64,A", "data:image/png;base64,B", "data:image/png;base64,C", "data:image/png;base64,D", "data:image/png;base64,E"}
	c.Location.Lat = f64(-90)
	c.Location.Lng = f64(180)

	if _, err := domain.ValidateCandidate(c, domain.DefaultUploadLimits()); err != nil {
		t.Errorf("boundary candidate rejected: %v", err)
	}
}

func TestValidateCandidate_ReportsEveryField(t *testing.T) {
	_, err := domain.ValidateCandidate(domain.StoryCandidate{}, domain.DefaultUploadLimits())
	fields := fieldsOf(t, err)
	for _, f := range []string{"title", "content", "author", "location.lat", "location.lng", "location.crisisId"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing error for %s in %v", f, fields)
		}
	}
}

func TestDeriveExcerpt(t *testing.T) {
	short := "A short story."
	if got := domain.DeriveExcerpt(short); got != short {
		t.Errorf("DeriveExcerpt(short) = %q", got)
	}

	long := strings.Repeat("ї", 400)
	got := domain.DeriveExcerpt(long)
	if n := utf8.RuneCountInString(got); n != domain.MaxExcerptLength {
		t.Errorf("excerpt has %d runes, want %d", n, domain.MaxExcerptLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("excerpt %q does not end in an ellipsis", got[len(got)-10:])
	}
	if !utf8.ValidString(got) {
		t.Error("excerpt cut through a multi-byte rune")
	}
}
