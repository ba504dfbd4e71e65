package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/crisisvoices/backend/pkg/validator"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 5000
	MaxExcerptLength = 300

	DefaultMaxImages = 5
	// 6.5 MiB of base64 text, roughly 5 MiB of decoded image
	DefaultMaxImageEncodedBytes = 6815744

	imagePrefix = "data:image/"
)

// UploadLimits bounds the inline images accepted with a story
type UploadLimits struct {
	MaxImages            int
	MaxImageEncodedBytes int
}

// DefaultUploadLimits returns the limits applied when none are configured
func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxImages:            DefaultMaxImages,
		MaxImageEncodedBytes: DefaultMaxImageEncodedBytes,
	}
}

// StoryCandidate is an unvalidated story submission as received from a client
type StoryCandidate struct {
	Title              string            `json:"title" validate:"notblank,max=200"`
	Content            string            `json:"content" validate:"notblank,max=5000"`
	Excerpt            string            `json:"excerpt" validate:"max=300"`
	Author             string            `json:"author" validate:"notblank,max=100"`
	Images             []string          `json:"images"`
	Location           CandidateLocation `json:"location"`
	IsLocationVerified bool              `json:"isLocationVerified"`
}

type CandidateLocation struct {
	Lat      *float64 `json:"lat" validate:"required,lat"`
	Lng      *float64 `json:"lng" validate:"required,lng"`
	Name     string   `json:"name" validate:"max=200"`
	CrisisID string   `json:"crisisId" validate:"notblank,max=100"`
}

// ValidatedStory is a candidate that passed ValidateCandidate. It can only be
// obtained from ValidateCandidate.
type ValidatedStory struct {
	title    string
	content  string
	excerpt  string
	author   string
	images   []string
	location StoryLocation
}

func (v ValidatedStory) Title() string           { return v.title }
func (v ValidatedStory) Content() string         { return v.content }
func (v ValidatedStory) Excerpt() string         { return v.excerpt }
func (v ValidatedStory) Author() string          { return v.author }
func (v ValidatedStory) Images() []string        { return append([]string{}, v.images...) }
func (v ValidatedStory) Location() StoryLocation { return v.location }

// ValidateCandidate normalizes c and checks it field by field. Every failing
// field is reported in the returned validator.ValidationErrors.
func ValidateCandidate(c StoryCandidate, limits UploadLimits) (ValidatedStory, error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Content = strings.TrimSpace(c.Content)
	c.Excerpt = strings.TrimSpace(c.Excerpt)
	c.Author = strings.TrimSpace(c.Author)
	c.Location.Name = strings.TrimSpace(c.Location.Name)
	c.Location.CrisisID = strings.TrimSpace(c.Location.CrisisID)

	errs := validator.Struct(c)
	errs = append(errs, validateImages(c.Images, limits)...)
	if errs.HasErrors() {
		return ValidatedStory{}, errs
	}

	excerpt := c.Excerpt
	if excerpt == "" {
		excerpt = DeriveExcerpt(c.Content)
	}

	return ValidatedStory{
		title:   c.Title,
		content: c.Content,
		excerpt: excerpt,
		author:  c.Author,
		images:  append([]string{}, c.Images...),
		location: StoryLocation{
			Lat:      *c.Location.Lat,
			Lng:      *c.Location.Lng,
			Name:     c.Location.Name,
			CrisisID: c.Location.CrisisID,
		},
	}, nil
}

func validateImages(images []string, limits UploadLimits) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if limits.MaxImages > 0 && len(images) > limits.MaxImages {
		errs.Add("images", fmt.Sprintf("must contain at most %d items", limits.MaxImages))
	}
	for i, img := range images {
		field := fmt.Sprintf("images[%d]", i)
		if !strings.HasPrefix(img, imagePrefix) {
			errs.Add(field, "must be a data:image/ URI")
			continue
		}
		if limits.MaxImageEncodedBytes > 0 && len(img) > limits.MaxImageEncodedBytes {
			errs.Add(field, fmt.Sprintf("exceeds the maximum encoded size of %d bytes", limits.MaxImageEncodedBytes))
		}
	}
	return errs
}

// DeriveExcerpt returns the first MaxExcerptLength runes of content, ending
// in an ellipsis when content was cut.
func DeriveExcerpt(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= MaxExcerptLength {
		return content
	}
	r := []rune(content)
	return strings.TrimSpace(string(r[:MaxExcerptLength-3])) + "..."
}
