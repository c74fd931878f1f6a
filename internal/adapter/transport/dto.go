package transport

import (
	"github.com/coursecraft/coursecraft/internal/core"
)

type basicInfoRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *string `json:"level" binding:"omitempty,courselevel"`
	Language    *string `json:"language"`
}

func (r basicInfoRequest) toUpdate() core.BasicInfoUpdate {
	update := core.BasicInfoUpdate{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		Category:    r.Category,
		Language:    r.Language,
	}
	if r.Level != nil {
		level := core.CourseLevel(*r.Level)
		update.Level = &level
	}
	return update
}

type pricingRequest struct {
	IsPaid        *bool   `json:"isPaid"`
	Price         *string `json:"price"`
	DiscountPrice *string `json:"discountPrice"`
}

func (r pricingRequest) toUpdate() core.PricingUpdate {
	return core.PricingUpdate{
		IsPaid:        r.IsPaid,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
	}
}

type settingsRequest struct {
	Slug               *string `json:"slug"`
	MetaTitle          *string `json:"metaTitle"`
	MetaDescription    *string `json:"metaDescription"`
	TargetAudience     *string `json:"targetAudience"`
	Prerequisites      *string `json:"prerequisites"`
	CertificateEnabled *bool   `json:"certificateEnabled"`
	DripEnabled        *bool   `json:"dripEnabled"`
	DripInterval       *string `json:"dripInterval"`
}

func (r settingsRequest) toUpdate() core.SettingsUpdate {
	return core.SettingsUpdate{
		Slug:               r.Slug,
		MetaTitle:          r.MetaTitle,
		MetaDescription:    r.MetaDescription,
		TargetAudience:     r.TargetAudience,
		Prerequisites:      r.Prerequisites,
		CertificateEnabled: r.CertificateEnabled,
		DripEnabled:        r.DripEnabled,
		DripInterval:       r.DripInterval,
	}
}

type tagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type objectiveRequest struct {
	Text string `json:"text"`
}

type moduleRequest struct {
	Title string `json:"title" binding:"required"`
}

type reorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

type lessonCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Type            string `json:"type" binding:"required,lessontype"`
	Content         string `json:"content"`
	DurationMinutes int    `json:"duration" binding:"omitempty,min=0"`
}

type lessonUpdateRequest struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	DurationMinutes *int    `json:"duration"`
}

func (r lessonUpdateRequest) toUpdate() core.LessonUpdate {
	return core.LessonUpdate{
		Title:           r.Title,
		Content:         r.Content,
		DurationMinutes: r.DurationMinutes,
	}
}

type stepRequest struct {
	Action string `json:"action" binding:"required,oneof=next previous goto"`
	Step   *int   `json:"step"`
}

type loadCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

type sessionResponse struct {
	SessionID string           `json:"sessionId"`
	Course    core.CourseDraft `json:"course"`
}

type saveResponse struct {
	CourseID string           `json:"courseId"`
	Course   core.CourseDraft `json:"course"`
}

type submitResponse struct {
	OK           bool             `json:"ok"`
	RedirectStep *int             `json:"redirectStep,omitempty"`
	Message      string           `json:"message,omitempty"`
	CourseID     string           `json:"courseId,omitempty"`
	Course       core.CourseDraft `json:"course"`
}
