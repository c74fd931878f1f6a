package usecase

import (
	"context"
	"fmt"

	"github.com/coursecraft/coursecraft/internal/core"
)

// AuthoringService owns the course draft for one editing session and
// coordinates persistence and uploads around it. One instance exists per
// session; it is never shared across sessions.
type AuthoringService struct {
	draft    *core.CourseDraft
	repo     core.CourseRepository
	uploader core.UploadProvider
}

// NewAuthoringService constructs a session service around a fresh draft.
func NewAuthoringService(repo core.CourseRepository, uploader core.UploadProvider) *AuthoringService {
	return &AuthoringService{
		draft:    core.NewCourseDraft(),
		repo:     repo,
		uploader: uploader,
	}
}

// Course returns the live draft aggregate for mutation. The caller owns
// serialization of access; see SessionManager.
func (s *AuthoringService) Course() *core.CourseDraft {
	return s.draft
}

// Snapshot returns a detached copy of the current draft state.
func (s *AuthoringService) Snapshot() core.CourseDraft {
	return s.draft.Clone()
}

// Reset discards the session's draft and starts over with defaults.
func (s *AuthoringService) Reset() {
	s.draft.Reset()
}

// LoadCourse replaces the session's draft with a stored course record.
func (s *AuthoringService) LoadCourse(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	loaded, err := s.repo.Load(ctx, id)
	if err != nil {
		return err
	}
	s.draft = loaded
	return nil
}

// SaveDraft persists the current state with draft status. Drafts may be
// arbitrarily incomplete; no validation gates this path.
func (s *AuthoringService) SaveDraft(ctx context.Context) (string, error) {
	s.draft.Status = core.StatusDraft
	id, err := s.repo.Save(ctx, s.draft.Clone())
	if err != nil {
		return "", err
	}
	if s.draft.ID == "" {
		s.draft.ID = id
	}
	return id, nil
}

// Submit runs the submission gate. On failure the draft is navigated to the
// offending step and the check is returned without persisting. On success
// the status transitions to submitted and the snapshot is persisted.
func (s *AuthoringService) Submit(ctx context.Context) (core.SubmitCheck, string, error) {
	check := core.EvaluateSubmission(s.draft)
	if !check.OK {
		s.draft.GoToStep(check.RedirectStep)
		return check, "", nil
	}

	s.draft.Status = core.StatusSubmitted
	id, err := s.repo.Save(ctx, s.draft.Clone())
	if err != nil {
		return check, "", err
	}
	if s.draft.ID == "" {
		s.draft.ID = id
	}
	return check, id, nil
}

// UploadInput describes a local file handle offered by the author.
type UploadInput struct {
	Filename string
	MimeType string
	Size     int64
}

// UploadThumbnail uploads a course thumbnail image into its media slot.
func (s *AuthoringService) UploadThumbnail(ctx context.Context, in UploadInput) error {
	return s.uploadToSlot(ctx, &s.draft.Thumbnail, core.UploadKindImage, in)
}

// UploadPromoVideo uploads the promotional video into its media slot.
func (s *AuthoringService) UploadPromoVideo(ctx context.Context, in UploadInput) error {
	return s.uploadToSlot(ctx, &s.draft.PromoVideo, core.UploadKindVideo, in)
}

// ClearThumbnail empties the thumbnail slot.
func (s *AuthoringService) ClearThumbnail() {
	s.draft.Thumbnail.Clear()
}

// ClearPromoVideo empties the promo video slot.
func (s *AuthoringService) ClearPromoVideo() {
	s.draft.PromoVideo.Clear()
}

// UploadLessonFile uploads a file for a video or document lesson and
// attaches the resulting reference to it. Notes lessons carry rich text
// instead of files and are rejected.
func (s *AuthoringService) UploadLessonFile(ctx context.Context, moduleID, lessonID string, in UploadInput) error {
	lesson, err := s.draft.Curriculum.Lesson(moduleID, lessonID)
	if err != nil {
		return err
	}

	var kind core.UploadKind
	switch lesson.Type {
	case core.LessonTypeVideo:
		kind = core.UploadKindVideo
	case core.LessonTypeDocument:
		kind = core.UploadKindDocument
	default:
		return fmt.Errorf("%w: %s lessons do not accept file uploads", core.ErrValidation, lesson.Type)
	}

	if !kind.AcceptsMime(in.MimeType) {
		return fmt.Errorf("%w: %s not allowed for %s lessons", core.ErrUnsupportedMedia, in.MimeType, lesson.Type)
	}

	ref, err := s.uploader.Upload(ctx, core.UploadRequest{
		Kind:     kind,
		Filename: in.Filename,
		MimeType: in.MimeType,
		Size:     in.Size,
	})
	if err != nil {
		return err
	}
	return s.draft.Curriculum.UpdateLesson(moduleID, lessonID, core.LessonUpdate{File: ref})
}

// uploadToSlot validates the MIME type against the kind before any transfer
// starts, then drives the slot through its upload state transitions.
func (s *AuthoringService) uploadToSlot(ctx context.Context, slot *core.MediaSlot, kind core.UploadKind, in UploadInput) error {
	if !kind.AcceptsMime(in.MimeType) {
		return fmt.Errorf("%w: %s is not a valid %s upload", core.ErrUnsupportedMedia, in.MimeType, kind)
	}

	slot.Begin(in.Filename)
	ref, err := s.uploader.Upload(ctx, core.UploadRequest{
		Kind:     kind,
		Filename: in.Filename,
		MimeType: in.MimeType,
		Size:     in.Size,
	})
	if err != nil {
		slot.Fail(err.Error())
		return err
	}
	slot.Complete(*ref)
	return nil
}
