package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/coursecraft/coursecraft/internal/core"
)

type stubCourseRepo struct {
	saveFn   func(ctx context.Context, course core.CourseDraft) (string, error)
	loadFn   func(ctx context.Context, id string) (*core.CourseDraft, error)
	listFn   func(ctx context.Context) ([]core.CourseSummary, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCourseRepo) Save(ctx context.Context, course core.CourseDraft) (string, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, course)
	}
	return "course-1", nil
}

func (s *stubCourseRepo) Load(ctx context.Context, id string) (*core.CourseDraft, error) {
	if s.loadFn != nil {
		return s.loadFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) List(ctx context.Context) ([]core.CourseSummary, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubCourseRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubUploader struct {
	uploadFn func(ctx context.Context, req core.UploadRequest) (*core.FileReference, error)
	calls    int
}

func (s *stubUploader) Upload(ctx context.Context, req core.UploadRequest) (*core.FileReference, error) {
	s.calls++
	if s.uploadFn != nil {
		return s.uploadFn(ctx, req)
	}
	return &core.FileReference{URL: "https://cdn.local/" + req.Filename, Name: req.Filename}, nil
}

func TestAuthoringService_SaveDraftAlwaysSucceeds(t *testing.T) {
	var saved core.CourseDraft
	repo := &stubCourseRepo{
		saveFn: func(ctx context.Context, course core.CourseDraft) (string, error) {
			saved = course
			return "course-42", nil
		},
	}
	svc := NewAuthoringService(repo, &stubUploader{})

	// draft is completely empty: save must still go through
	id, err := svc.SaveDraft(context.Background())
	if err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}
	if id != "course-42" {
		t.Fatalf("id = %q, want course-42", id)
	}
	if saved.Status != core.StatusDraft {
		t.Fatalf("persisted status = %q, want draft", saved.Status)
	}
	if svc.Course().ID != "course-42" {
		t.Fatalf("draft id = %q, want course-42 after first save", svc.Course().ID)
	}
}

func TestAuthoringService_SubmitRedirectsWithoutSaving(t *testing.T) {
	repoCalled := false
	repo := &stubCourseRepo{
		saveFn: func(ctx context.Context, course core.CourseDraft) (string, error) {
			repoCalled = true
			return "", errors.New("should not be called")
		},
	}
	svc := NewAuthoringService(repo, &stubUploader{})
	svc.Course().Title = "Has Title"
	svc.Course().GoToStep(core.StepSettings)

	check, _, err := svc.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if check.OK {
		t.Fatal("expected gate failure for missing curriculum")
	}
	if repoCalled {
		t.Fatal("gate failure must not hit the repository")
	}
	if svc.Course().CurrentStep != core.StepCurriculum {
		t.Fatalf("step = %v, want redirect to %v", svc.Course().CurrentStep, core.StepCurriculum)
	}
	if svc.Course().Status != core.StatusDraft {
		t.Fatalf("status = %q, want draft after failed gate", svc.Course().Status)
	}
}

func TestAuthoringService_SubmitTransitionsAndPersists(t *testing.T) {
	var saved core.CourseDraft
	repo := &stubCourseRepo{
		saveFn: func(ctx context.Context, course core.CourseDraft) (string, error) {
			saved = course
			return "course-7", nil
		},
	}
	svc := NewAuthoringService(repo, &stubUploader{})
	svc.Course().Title = "Go From Scratch"
	if _, err := svc.Course().Curriculum.AddModule("Basics"); err != nil {
		t.Fatalf("AddModule() error = %v", err)
	}

	check, id, err := svc.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !check.OK {
		t.Fatalf("gate failed: %+v", check)
	}
	if id != "course-7" {
		t.Fatalf("id = %q, want course-7", id)
	}
	if saved.Status != core.StatusSubmitted {
		t.Fatalf("persisted status = %q, want submitted", saved.Status)
	}
	if svc.Course().Status != core.StatusSubmitted {
		t.Fatalf("draft status = %q, want submitted", svc.Course().Status)
	}
}

func TestAuthoringService_UploadThumbnail(t *testing.T) {
	uploader := &stubUploader{}
	svc := NewAuthoringService(&stubCourseRepo{}, uploader)

	err := svc.UploadThumbnail(context.Background(), UploadInput{
		Filename: "cover.png",
		MimeType: "image/png",
		Size:     1024,
	})
	if err != nil {
		t.Fatalf("UploadThumbnail() error = %v", err)
	}
	slot := svc.Course().Thumbnail
	if slot.State != core.UploadDone {
		t.Fatalf("slot state = %q, want uploaded", slot.State)
	}
	if slot.URL != "https://cdn.local/cover.png" {
		t.Fatalf("slot url = %q", slot.URL)
	}
}

func TestAuthoringService_UploadThumbnailRejectsBadMimeBeforeTransfer(t *testing.T) {
	uploader := &stubUploader{}
	svc := NewAuthoringService(&stubCourseRepo{}, uploader)

	err := svc.UploadThumbnail(context.Background(), UploadInput{
		Filename: "clip.mp4",
		MimeType: "video/mp4",
	})
	if !errors.Is(err, core.ErrUnsupportedMedia) {
		t.Fatalf("error = %v, want ErrUnsupportedMedia", err)
	}
	if uploader.calls != 0 {
		t.Fatal("invalid types must be rejected before the upload call")
	}
	if svc.Course().Thumbnail.State != core.UploadNotStarted {
		t.Fatalf("slot state = %q, want untouched", svc.Course().Thumbnail.State)
	}
}

func TestAuthoringService_UploadFailureMarksSlot(t *testing.T) {
	uploader := &stubUploader{
		uploadFn: func(ctx context.Context, req core.UploadRequest) (*core.FileReference, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewAuthoringService(&stubCourseRepo{}, uploader)

	err := svc.UploadPromoVideo(context.Background(), UploadInput{
		Filename: "promo.mp4",
		MimeType: "video/mp4",
	})
	if err == nil {
		t.Fatal("expected upload error")
	}
	slot := svc.Course().PromoVideo
	if slot.State != core.UploadFailed || slot.Error == "" {
		t.Fatalf("slot = %+v, want failed state with message", slot)
	}
}

func TestAuthoringService_UploadLessonFile(t *testing.T) {
	svc := NewAuthoringService(&stubCourseRepo{}, &stubUploader{})
	moduleID, _ := svc.Course().Curriculum.AddModule("Basics")
	lessonID, _ := svc.Course().Curriculum.AddLesson(moduleID, core.LessonDraft{
		Title: "Syllabus",
		Type:  core.LessonTypeDocument,
	})

	err := svc.UploadLessonFile(context.Background(), moduleID, lessonID, UploadInput{
		Filename: "syllabus.pdf",
		MimeType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("UploadLessonFile() error = %v", err)
	}

	lesson, _ := svc.Course().Curriculum.Lesson(moduleID, lessonID)
	if lesson.File == nil || lesson.File.URL != "https://cdn.local/syllabus.pdf" {
		t.Fatalf("lesson file = %+v", lesson.File)
	}
}

func TestAuthoringService_UploadLessonFileRejectsNotesAndBadMime(t *testing.T) {
	uploader := &stubUploader{}
	svc := NewAuthoringService(&stubCourseRepo{}, uploader)
	moduleID, _ := svc.Course().Curriculum.AddModule("Basics")
	notesID, _ := svc.Course().Curriculum.AddLesson(moduleID, core.LessonDraft{
		Title: "Reading",
		Type:  core.LessonTypeNotes,
	})
	videoID, _ := svc.Course().Curriculum.AddLesson(moduleID, core.LessonDraft{
		Title: "Intro",
		Type:  core.LessonTypeVideo,
	})

	if err := svc.UploadLessonFile(context.Background(), moduleID, notesID, UploadInput{
		Filename: "notes.pdf", MimeType: "application/pdf",
	}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("notes lesson error = %v, want ErrValidation", err)
	}

	if err := svc.UploadLessonFile(context.Background(), moduleID, videoID, UploadInput{
		Filename: "slides.pdf", MimeType: "application/pdf",
	}); !errors.Is(err, core.ErrUnsupportedMedia) {
		t.Fatalf("video lesson with pdf error = %v, want ErrUnsupportedMedia", err)
	}
	if uploader.calls != 0 {
		t.Fatal("rejected uploads must not reach the provider")
	}
}

func TestAuthoringService_LoadCourseReplacesDraft(t *testing.T) {
	stored := core.NewCourseDraft()
	stored.ID = "course-9"
	stored.Title = "Stored Course"
	repo := &stubCourseRepo{
		loadFn: func(ctx context.Context, id string) (*core.CourseDraft, error) {
			if id != "course-9" {
				return nil, core.ErrNotFound
			}
			clone := stored.Clone()
			return &clone, nil
		},
	}
	svc := NewAuthoringService(repo, &stubUploader{})
	svc.Course().Title = "Scratch Work"

	if err := svc.LoadCourse(context.Background(), "course-9"); err != nil {
		t.Fatalf("LoadCourse() error = %v", err)
	}
	if svc.Course().Title != "Stored Course" || svc.Course().ID != "course-9" {
		t.Fatalf("draft = %+v, want loaded record", svc.Course())
	}

	if err := svc.LoadCourse(context.Background(), "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("LoadCourse(missing) error = %v, want ErrNotFound", err)
	}
	if err := svc.LoadCourse(context.Background(), ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("LoadCourse(empty) error = %v, want ErrValidation", err)
	}
}

func TestAuthoringService_ResetRestoresDefaults(t *testing.T) {
	svc := NewAuthoringService(&stubCourseRepo{}, &stubUploader{})
	svc.Course().Title = "Something"
	svc.Course().AddTag("go")
	svc.Course().GoToStep(core.StepPricing)

	svc.Reset()

	if svc.Course().Title != "" || len(svc.Course().Tags) != 0 {
		t.Fatalf("draft not reset: %+v", svc.Course())
	}
	if svc.Course().CurrentStep != core.StepBasicInfo {
		t.Fatalf("step = %v, want %v", svc.Course().CurrentStep, core.StepBasicInfo)
	}
}
