package transport

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// MediaHandler exposes the multipart upload endpoints for course media and
// lesson files.
type MediaHandler struct {
	sessions *usecase.SessionManager
	log      *logger.Logger
}

// NewMediaHandler constructs the media handler.
func NewMediaHandler(sessions *usecase.SessionManager, log *logger.Logger) *MediaHandler {
	return &MediaHandler{sessions: sessions, log: log}
}

// UploadThumbnail replaces the course thumbnail.
func (h *MediaHandler) UploadThumbnail(c *gin.Context) {
	h.uploadSlot(c, func(svc *usecase.AuthoringService, in usecase.UploadInput) error {
		return svc.UploadThumbnail(c.Request.Context(), in)
	})
}

// UploadPromoVideo replaces the promotional video.
func (h *MediaHandler) UploadPromoVideo(c *gin.Context) {
	h.uploadSlot(c, func(svc *usecase.AuthoringService, in usecase.UploadInput) error {
		return svc.UploadPromoVideo(c.Request.Context(), in)
	})
}

// ClearThumbnail empties the thumbnail slot.
func (h *MediaHandler) ClearThumbnail(c *gin.Context) {
	h.clearSlot(c, func(svc *usecase.AuthoringService) { svc.ClearThumbnail() })
}

// ClearPromoVideo empties the promo video slot.
func (h *MediaHandler) ClearPromoVideo(c *gin.Context) {
	h.clearSlot(c, func(svc *usecase.AuthoringService) { svc.ClearPromoVideo() })
}

// UploadLessonFile attaches an uploaded file to a video or document lesson.
func (h *MediaHandler) UploadLessonFile(c *gin.Context) {
	in, err := uploadInput(c)
	if err != nil {
		writeBindError(c, err)
		return
	}

	var snapshot core.CourseDraft
	err = h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		if err := svc.UploadLessonFile(c.Request.Context(), c.Param("moduleId"), c.Param("lessonId"), in); err != nil {
			return err
		}
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": snapshot})
}

func (h *MediaHandler) uploadSlot(c *gin.Context, do func(*usecase.AuthoringService, usecase.UploadInput) error) {
	in, err := uploadInput(c)
	if err != nil {
		writeBindError(c, err)
		return
	}

	var snapshot core.CourseDraft
	err = h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		if err := do(svc, in); err != nil {
			return err
		}
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": snapshot})
}

func (h *MediaHandler) clearSlot(c *gin.Context, do func(*usecase.AuthoringService)) {
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		do(svc)
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": snapshot})
}

// uploadInput extracts the uploaded file's metadata from the multipart form.
func uploadInput(c *gin.Context) (usecase.UploadInput, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return usecase.UploadInput{}, err
	}
	return usecase.UploadInput{
		Filename: header.Filename,
		MimeType: contentType(header),
		Size:     header.Size,
	}, nil
}

func contentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}
