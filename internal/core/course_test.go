package core

import (
	"errors"
	"testing"
)

func strptr(s string) *string { return &s }

func TestNewCourseDraftDefaults(t *testing.T) {
	d := NewCourseDraft()

	if d.Language != "English" {
		t.Fatalf("language = %q, want English", d.Language)
	}
	if d.Status != StatusDraft {
		t.Fatalf("status = %q, want draft", d.Status)
	}
	if d.CurrentStep != StepBasicInfo {
		t.Fatalf("step = %v, want %v", d.CurrentStep, StepBasicInfo)
	}
	if !d.CertificateEnabled {
		t.Fatal("expected certificate enabled by default")
	}
	if d.DripEnabled || d.DripInterval != 7 {
		t.Fatalf("drip defaults = %v/%d, want false/7", d.DripEnabled, d.DripInterval)
	}
	if len(d.LearningObjectives) != 1 || d.LearningObjectives[0] != "" {
		t.Fatalf("objectives = %v, want one empty entry", d.LearningObjectives)
	}
	if d.Thumbnail.State != UploadNotStarted || d.PromoVideo.State != UploadNotStarted {
		t.Fatal("expected media slots to start in not_started state")
	}
}

func TestCourseDraft_Tags(t *testing.T) {
	d := NewCourseDraft()

	d.AddTag("go")
	d.AddTag("web")
	d.AddTag("go")
	if len(d.Tags) != 2 || d.Tags[0] != "go" || d.Tags[1] != "web" {
		t.Fatalf("tags = %v, want [go web] with first-insertion order", d.Tags)
	}

	d.RemoveTag("missing")
	if len(d.Tags) != 2 {
		t.Fatalf("removing unknown tag mutated list: %v", d.Tags)
	}
	d.RemoveTag("go")
	if len(d.Tags) != 1 || d.Tags[0] != "web" {
		t.Fatalf("tags = %v, want [web]", d.Tags)
	}
}

func TestCourseDraft_LearningObjectives(t *testing.T) {
	d := NewCourseDraft()
	d.LearningObjectives = []string{"a", "b", "c"}

	d.UpdateLearningObjective(1, "b2")
	if d.LearningObjectives[1] != "b2" {
		t.Fatalf("objectives = %v", d.LearningObjectives)
	}

	// out-of-range updates are silent no-ops
	d.UpdateLearningObjective(9, "x")
	d.UpdateLearningObjective(-1, "x")
	if len(d.LearningObjectives) != 3 {
		t.Fatalf("objectives = %v, want 3 entries", d.LearningObjectives)
	}

	d.DeleteLearningObjective(1)
	if len(d.LearningObjectives) != 2 || d.LearningObjectives[0] != "a" || d.LearningObjectives[1] != "c" {
		t.Fatalf("objectives after delete = %v, want [a c]", d.LearningObjectives)
	}

	d.DeleteLearningObjective(0)
	d.DeleteLearningObjective(0)
	if len(d.LearningObjectives) != 0 {
		t.Fatalf("objectives = %v, want empty list", d.LearningObjectives)
	}
	d.DeleteLearningObjective(0) // deleting from empty is not an error
}

func TestCourseDraft_SlugDerivedOnce(t *testing.T) {
	d := NewCourseDraft()

	if err := d.ApplyBasicInfo(BasicInfoUpdate{Title: strptr("Intro to React!")}); err != nil {
		t.Fatalf("ApplyBasicInfo() error = %v", err)
	}
	if d.Slug != "intro-to-react" {
		t.Fatalf("slug = %q, want intro-to-react", d.Slug)
	}

	if err := d.ApplyBasicInfo(BasicInfoUpdate{Title: strptr("Other Title")}); err != nil {
		t.Fatalf("ApplyBasicInfo() error = %v", err)
	}
	if d.Slug != "intro-to-react" {
		t.Fatalf("slug rewritten to %q; must stay fixed once derived", d.Slug)
	}
}

func TestCourseDraft_ApplyBasicInfoPartial(t *testing.T) {
	d := NewCourseDraft()
	level := LevelIntermediate
	err := d.ApplyBasicInfo(BasicInfoUpdate{
		Title:    strptr("Go From Scratch"),
		Category: strptr("Web Development"),
		Level:    &level,
	})
	if err != nil {
		t.Fatalf("ApplyBasicInfo() error = %v", err)
	}
	if d.Language != "English" {
		t.Fatalf("untouched field changed: language = %q", d.Language)
	}

	bogus := CourseLevel("Wizard")
	if err := d.ApplyBasicInfo(BasicInfoUpdate{Level: &bogus}); !errors.Is(err, ErrValidation) {
		t.Fatalf("ApplyBasicInfo(bad level) error = %v, want ErrValidation", err)
	}
	if d.Level != LevelIntermediate {
		t.Fatalf("level = %q after rejected update", d.Level)
	}
}

func TestCourseDraft_PricingFailSoft(t *testing.T) {
	d := NewCourseDraft()

	d.ApplyPricing(PricingUpdate{Price: strptr("-5")})
	if d.Price != 0 {
		t.Fatalf("price = %v, want 0 for negative input", d.Price)
	}
	d.ApplyPricing(PricingUpdate{Price: strptr("abc")})
	if d.Price != 0 {
		t.Fatalf("price = %v, want 0 for non-numeric input", d.Price)
	}
	d.ApplyPricing(PricingUpdate{Price: strptr("49.99")})
	if d.Price != 49.99 {
		t.Fatalf("price = %v, want 49.99", d.Price)
	}

	d.ApplyPricing(PricingUpdate{DiscountPrice: strptr("19.99")})
	if d.DiscountPrice == nil || *d.DiscountPrice != 19.99 {
		t.Fatalf("discount = %v, want 19.99", d.DiscountPrice)
	}
	d.ApplyPricing(PricingUpdate{DiscountPrice: strptr("")})
	if d.DiscountPrice != nil {
		t.Fatalf("discount = %v, want cleared", d.DiscountPrice)
	}
}

func TestCourseDraft_SettingsDripClamp(t *testing.T) {
	d := NewCourseDraft()

	d.ApplySettings(SettingsUpdate{DripInterval: strptr("0")})
	if d.DripInterval != 1 {
		t.Fatalf("dripInterval = %d, want clamp to 1", d.DripInterval)
	}
	d.ApplySettings(SettingsUpdate{DripInterval: strptr("abc")})
	if d.DripInterval != 1 {
		t.Fatalf("dripInterval = %d, want 1 for non-numeric input", d.DripInterval)
	}
	d.ApplySettings(SettingsUpdate{DripInterval: strptr("14")})
	if d.DripInterval != 14 {
		t.Fatalf("dripInterval = %d, want 14", d.DripInterval)
	}
}

func TestCourseDraft_SettingsSlugOverride(t *testing.T) {
	d := NewCourseDraft()
	_ = d.ApplyBasicInfo(BasicInfoUpdate{Title: strptr("My Course")})

	d.ApplySettings(SettingsUpdate{Slug: strptr("custom-slug")})
	if d.Slug != "custom-slug" {
		t.Fatalf("slug = %q, want custom-slug", d.Slug)
	}

	// a later title change must not regenerate over the manual slug
	_ = d.ApplyBasicInfo(BasicInfoUpdate{Title: strptr("Renamed")})
	if d.Slug != "custom-slug" {
		t.Fatalf("slug = %q after title change, want custom-slug", d.Slug)
	}
}

func TestCourseDraft_CloneIsDetached(t *testing.T) {
	d := NewCourseDraft()
	moduleID, _ := d.Curriculum.AddModule("Basics")
	_, _ = d.Curriculum.AddLesson(moduleID, LessonDraft{Title: "Intro", Type: LessonTypeNotes})
	d.AddTag("go")

	snapshot := d.Clone()
	_ = d.Curriculum.RenameModule(moduleID, "Changed")
	d.AddTag("extra")
	d.UpdateLearningObjective(0, "changed")

	if snapshot.Curriculum.Modules[0].Title != "Basics" {
		t.Fatalf("snapshot module title = %q, want Basics", snapshot.Curriculum.Modules[0].Title)
	}
	if len(snapshot.Tags) != 1 {
		t.Fatalf("snapshot tags = %v, want [go]", snapshot.Tags)
	}
	if snapshot.LearningObjectives[0] != "" {
		t.Fatalf("snapshot objectives = %v", snapshot.LearningObjectives)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Intro to React!":        "intro-to-react",
		"  Spaced   Out  Title ": "-spaced-out-title-",
		"C# & .NET (2024)":       "c-net-2024",
		"already-slugged":        "already-slugged",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
