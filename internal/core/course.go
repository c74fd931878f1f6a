package core

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CourseLevel denotes the intended audience level for a course.
type CourseLevel string

const (
	LevelUnset        CourseLevel = ""
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelExpert       CourseLevel = "Expert"
)

// Valid reports whether the level is one of the known values or unset.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelUnset, LevelBeginner, LevelIntermediate, LevelExpert:
		return true
	default:
		return false
	}
}

// CourseStatus denotes the lifecycle stage for a course draft.
type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusSubmitted CourseStatus = "submitted"
)

// CourseDraft is the single top-level in-progress course record. One draft
// exists per authoring session and is owned by it; nested modules, lessons,
// tags and objectives are owned exclusively by the draft.
type CourseDraft struct {
	ID string `json:"id,omitempty"`

	// Basic information
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Level       CourseLevel `json:"level"`
	Language    string      `json:"language"`
	Tags        []string    `json:"tags"`

	// Media
	Thumbnail  MediaSlot `json:"thumbnail"`
	PromoVideo MediaSlot `json:"promoVideo"`

	// Curriculum
	Curriculum Curriculum `json:"curriculum"`

	// Pricing
	IsPaid        bool     `json:"isPaid"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`

	// SEO
	Slug            string `json:"slug"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`

	// Additional information
	LearningObjectives []string `json:"learningObjectives"`
	TargetAudience     string   `json:"targetAudience"`
	Prerequisites      string   `json:"prerequisites"`
	CertificateEnabled bool     `json:"certificateEnabled"`

	// Drip content: days between gradual module releases.
	DripEnabled  bool `json:"dripEnabled"`
	DripInterval int  `json:"dripInterval"`

	Status CourseStatus `json:"status"`

	// Wizard navigation
	CurrentStep Step `json:"currentStep"`
}

// NewCourseDraft returns a fresh draft with the authoring defaults.
func NewCourseDraft() *CourseDraft {
	return &CourseDraft{
		Language:           "English",
		Tags:               []string{},
		Thumbnail:          MediaSlot{State: UploadNotStarted},
		PromoVideo:         MediaSlot{State: UploadNotStarted},
		Curriculum:         Curriculum{Modules: []Module{}},
		LearningObjectives: []string{""},
		CertificateEnabled: true,
		DripInterval:       7,
		Status:             StatusDraft,
		CurrentStep:        StepBasicInfo,
	}
}

// Reset discards all state and returns the draft to its defaults.
func (d *CourseDraft) Reset() {
	*d = *NewCourseDraft()
}

// Clone returns a deep copy of the draft, detached from all nested
// collections of the original.
func (d *CourseDraft) Clone() CourseDraft {
	out := *d
	out.Tags = append([]string{}, d.Tags...)
	out.LearningObjectives = append([]string{}, d.LearningObjectives...)
	out.Curriculum = d.Curriculum.clone()
	if d.DiscountPrice != nil {
		v := *d.DiscountPrice
		out.DiscountPrice = &v
	}
	return out
}

// BasicInfoUpdate carries a partial set of basic-information fields. Nil
// fields are left untouched.
type BasicInfoUpdate struct {
	Title       *string
	Subtitle    *string
	Description *string
	Category    *string
	Level       *CourseLevel
	Language    *string
}

// ApplyBasicInfo merges the provided basic-info fields into the draft.
// Setting a title while the slug is still empty derives the slug once;
// later title changes never overwrite an existing slug.
func (d *CourseDraft) ApplyBasicInfo(update BasicInfoUpdate) error {
	if update.Level != nil && !update.Level.Valid() {
		return fmt.Errorf("%w: unknown course level %q", ErrValidation, *update.Level)
	}
	if update.Title != nil {
		d.Title = *update.Title
	}
	if update.Subtitle != nil {
		d.Subtitle = *update.Subtitle
	}
	if update.Description != nil {
		d.Description = *update.Description
	}
	if update.Category != nil {
		d.Category = *update.Category
	}
	if update.Level != nil {
		d.Level = *update.Level
	}
	if update.Language != nil {
		d.Language = *update.Language
	}
	if d.Slug == "" && d.Title != "" {
		d.Slug = Slugify(d.Title)
	}
	return nil
}

// PricingUpdate carries a partial set of pricing fields. Price values arrive
// as raw form input and are coerced, never rejected.
type PricingUpdate struct {
	IsPaid        *bool
	Price         *string
	DiscountPrice *string
}

// ApplyPricing merges the provided pricing fields into the draft. Negative
// or non-numeric amounts are clamped to zero; an empty discount clears it.
func (d *CourseDraft) ApplyPricing(update PricingUpdate) {
	if update.IsPaid != nil {
		d.IsPaid = *update.IsPaid
	}
	if update.Price != nil {
		d.Price = ParseAmount(*update.Price)
	}
	if update.DiscountPrice != nil {
		if strings.TrimSpace(*update.DiscountPrice) == "" {
			d.DiscountPrice = nil
		} else {
			v := ParseAmount(*update.DiscountPrice)
			d.DiscountPrice = &v
		}
	}
}

// SettingsUpdate carries a partial set of SEO and course-settings fields.
type SettingsUpdate struct {
	Slug               *string
	MetaTitle          *string
	MetaDescription    *string
	TargetAudience     *string
	Prerequisites      *string
	CertificateEnabled *bool
	DripEnabled        *bool
	DripInterval       *string
}

// ApplySettings merges the provided settings fields into the draft. The
// drip interval is coerced to at least one day.
func (d *CourseDraft) ApplySettings(update SettingsUpdate) {
	if update.Slug != nil {
		d.Slug = *update.Slug
	}
	if update.MetaTitle != nil {
		d.MetaTitle = *update.MetaTitle
	}
	if update.MetaDescription != nil {
		d.MetaDescription = *update.MetaDescription
	}
	if update.TargetAudience != nil {
		d.TargetAudience = *update.TargetAudience
	}
	if update.Prerequisites != nil {
		d.Prerequisites = *update.Prerequisites
	}
	if update.CertificateEnabled != nil {
		d.CertificateEnabled = *update.CertificateEnabled
	}
	if update.DripEnabled != nil {
		d.DripEnabled = *update.DripEnabled
	}
	if update.DripInterval != nil {
		d.DripInterval = ParseDripInterval(*update.DripInterval)
	}
}

// AddTag appends a tag; adding an existing tag is a no-op and the list
// keeps first-insertion order.
func (d *CourseDraft) AddTag(tag string) {
	for _, t := range d.Tags {
		if t == tag {
			return
		}
	}
	d.Tags = append(d.Tags, tag)
}

// RemoveTag drops a tag; removing an unknown tag is a no-op.
func (d *CourseDraft) RemoveTag(tag string) {
	for i, t := range d.Tags {
		if t == tag {
			d.Tags = append(d.Tags[:i], d.Tags[i+1:]...)
			return
		}
	}
}

// AddLearningObjective appends an objective to the end of the list.
func (d *CourseDraft) AddLearningObjective(text string) {
	d.LearningObjectives = append(d.LearningObjectives, text)
}

// UpdateLearningObjective replaces the objective at the given index.
// Out-of-range indices are silently ignored.
func (d *CourseDraft) UpdateLearningObjective(index int, text string) {
	if index < 0 || index >= len(d.LearningObjectives) {
		return
	}
	d.LearningObjectives[index] = text
}

// DeleteLearningObjective removes the objective at the given index and
// compacts the list. Out-of-range indices are silently ignored.
func (d *CourseDraft) DeleteLearningObjective(index int) {
	if index < 0 || index >= len(d.LearningObjectives) {
		return
	}
	d.LearningObjectives = append(d.LearningObjectives[:index], d.LearningObjectives[index+1:]...)
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL slug from a title: lowercased, non-word characters
// stripped, whitespace runs collapsed to single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return s
}

// ParseAmount converts raw form input into a non-negative amount. Empty,
// non-numeric and negative input all yield zero.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseDripInterval converts raw form input into a release interval of at
// least one day.
func ParseDripInterval(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// CourseSummary is the condensed listing row for stored courses.
type CourseSummary struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	Status    CourseStatus `json:"status"`
	IsPaid    bool         `json:"isPaid"`
	Price     float64      `json:"price"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CourseRepository persists and fetches serialized course records. Errors
// are reported to the caller and never retried by the core.
type CourseRepository interface {
	Save(ctx context.Context, course CourseDraft) (string, error)
	Load(ctx context.Context, id string) (*CourseDraft, error)
	List(ctx context.Context) ([]CourseSummary, error)
	Delete(ctx context.Context, id string) error
}
