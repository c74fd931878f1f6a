package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coursecraft/coursecraft/internal/core"
)

// courseRecord is the stored shape of a course draft. Nested collections
// are serialized as JSON columns; pending upload state is never stored,
// only resulting URLs.
type courseRecord struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Title              string
	Subtitle           string
	Description        string `gorm:"type:text"`
	Category           string
	Level              string
	Language           string
	Tags               datatypes.JSON
	ThumbnailURL       string
	ThumbnailName      string
	PromoVideoURL      string
	PromoVideoName     string
	Modules            datatypes.JSON
	IsPaid             bool
	Price              float64
	DiscountPrice      *float64
	Slug               string `gorm:"index"`
	MetaTitle          string
	MetaDescription    string `gorm:"type:text"`
	LearningObjectives datatypes.JSON
	TargetAudience     string `gorm:"type:text"`
	Prerequisites      string `gorm:"type:text"`
	CertificateEnabled bool
	DripEnabled        bool
	DripInterval       int
	Status             string `gorm:"index"`
	CurrentStep        int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (courseRecord) TableName() string { return "courses" }

// CourseRepository persists course drafts using GORM.
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository constructs a GORM-backed course repository.
func NewCourseRepository(gdb *gorm.DB) *CourseRepository {
	return &CourseRepository{db: gdb}
}

var _ core.CourseRepository = (*CourseRepository)(nil)

// Migrate creates or updates the courses table.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&courseRecord{})
}

// Save upserts the full course snapshot and returns the record id,
// generating one on first save.
func (r *CourseRepository) Save(ctx context.Context, course core.CourseDraft) (string, error) {
	rec, err := toRecord(course)
	if err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return "", fmt.Errorf("%w: save course: %v", core.ErrTransport, err)
	}
	return rec.ID, nil
}

// Load fetches a stored course by id.
func (r *CourseRepository) Load(ctx context.Context, id string) (*core.CourseDraft, error) {
	var rec courseRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: course %s", core.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load course: %v", core.ErrTransport, err)
	}
	return fromRecord(rec)
}

// List returns course summaries, most recently updated first.
func (r *CourseRepository) List(ctx context.Context) ([]core.CourseSummary, error) {
	var recs []courseRecord
	err := r.db.WithContext(ctx).
		Select("id", "title", "category", "status", "is_paid", "price", "updated_at").
		Order("updated_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list courses: %v", core.ErrTransport, err)
	}

	return lo.Map(recs, func(rec courseRecord, _ int) core.CourseSummary {
		return core.CourseSummary{
			ID:        rec.ID,
			Title:     rec.Title,
			Category:  rec.Category,
			Status:    core.CourseStatus(rec.Status),
			IsPaid:    rec.IsPaid,
			Price:     rec.Price,
			UpdatedAt: rec.UpdatedAt,
		}
	}), nil
}

// Delete removes a stored course.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&courseRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: delete course: %v", core.ErrTransport, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: course %s", core.ErrNotFound, id)
	}
	return nil
}

func toRecord(course core.CourseDraft) (courseRecord, error) {
	tags, err := json.Marshal(course.Tags)
	if err != nil {
		return courseRecord{}, err
	}
	modules, err := json.Marshal(course.Curriculum.Modules)
	if err != nil {
		return courseRecord{}, err
	}
	objectives, err := json.Marshal(course.LearningObjectives)
	if err != nil {
		return courseRecord{}, err
	}

	return courseRecord{
		ID:                 course.ID,
		Title:              course.Title,
		Subtitle:           course.Subtitle,
		Description:        course.Description,
		Category:           course.Category,
		Level:              string(course.Level),
		Language:           course.Language,
		Tags:               tags,
		ThumbnailURL:       course.Thumbnail.URL,
		ThumbnailName:      course.Thumbnail.Name,
		PromoVideoURL:      course.PromoVideo.URL,
		PromoVideoName:     course.PromoVideo.Name,
		Modules:            modules,
		IsPaid:             course.IsPaid,
		Price:              course.Price,
		DiscountPrice:      course.DiscountPrice,
		Slug:               course.Slug,
		MetaTitle:          course.MetaTitle,
		MetaDescription:    course.MetaDescription,
		LearningObjectives: objectives,
		TargetAudience:     course.TargetAudience,
		Prerequisites:      course.Prerequisites,
		CertificateEnabled: course.CertificateEnabled,
		DripEnabled:        course.DripEnabled,
		DripInterval:       course.DripInterval,
		Status:             string(course.Status),
		CurrentStep:        int(course.CurrentStep),
	}, nil
}

func fromRecord(rec courseRecord) (*core.CourseDraft, error) {
	course := core.NewCourseDraft()

	course.ID = rec.ID
	course.Title = rec.Title
	course.Subtitle = rec.Subtitle
	course.Description = rec.Description
	course.Category = rec.Category
	course.Level = core.CourseLevel(rec.Level)
	course.Language = rec.Language
	course.IsPaid = rec.IsPaid
	course.Price = rec.Price
	course.DiscountPrice = rec.DiscountPrice
	course.Slug = rec.Slug
	course.MetaTitle = rec.MetaTitle
	course.MetaDescription = rec.MetaDescription
	course.TargetAudience = rec.TargetAudience
	course.Prerequisites = rec.Prerequisites
	course.CertificateEnabled = rec.CertificateEnabled
	course.DripEnabled = rec.DripEnabled
	course.DripInterval = rec.DripInterval
	course.Status = core.CourseStatus(rec.Status)
	course.GoToStep(core.Step(rec.CurrentStep))

	if len(rec.Tags) > 0 {
		if err := json.Unmarshal(rec.Tags, &course.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for course %s: %w", rec.ID, err)
		}
	}
	if len(rec.Modules) > 0 {
		if err := json.Unmarshal(rec.Modules, &course.Curriculum.Modules); err != nil {
			return nil, fmt.Errorf("decode modules for course %s: %w", rec.ID, err)
		}
	}
	if len(rec.LearningObjectives) > 0 {
		if err := json.Unmarshal(rec.LearningObjectives, &course.LearningObjectives); err != nil {
			return nil, fmt.Errorf("decode objectives for course %s: %w", rec.ID, err)
		}
	}

	course.Thumbnail = mediaSlotFrom(rec.ThumbnailURL, rec.ThumbnailName)
	course.PromoVideo = mediaSlotFrom(rec.PromoVideoURL, rec.PromoVideoName)

	return course, nil
}

// mediaSlotFrom rebuilds slot state from stored URLs; transient upload
// progress is intentionally lost across sessions.
func mediaSlotFrom(url, name string) core.MediaSlot {
	if url == "" {
		return core.MediaSlot{State: core.UploadNotStarted, Name: name}
	}
	return core.MediaSlot{State: core.UploadDone, URL: url, Name: name}
}
