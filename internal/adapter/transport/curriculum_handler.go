package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// CurriculumHandler exposes module and lesson structure operations.
type CurriculumHandler struct {
	sessions *usecase.SessionManager
	log      *logger.Logger
}

// NewCurriculumHandler constructs the curriculum handler.
func NewCurriculumHandler(sessions *usecase.SessionManager, log *logger.Logger) *CurriculumHandler {
	return &CurriculumHandler{sessions: sessions, log: log}
}

// AddModule appends a new module and returns its id with the snapshot.
func (h *CurriculumHandler) AddModule(c *gin.Context) {
	var req moduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	var moduleID string
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		id, err := svc.Course().Curriculum.AddModule(req.Title)
		if err != nil {
			return err
		}
		moduleID = id
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"moduleId": moduleID, "course": snapshot})
}

// RenameModule updates a module title.
func (h *CurriculumHandler) RenameModule(c *gin.Context) {
	var req moduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().Curriculum.RenameModule(c.Param("moduleId"), req.Title)
	})
}

// DeleteModule removes a module and all of its lessons.
func (h *CurriculumHandler) DeleteModule(c *gin.Context) {
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().Curriculum.DeleteModule(c.Param("moduleId"))
	})
}

// ReorderModules replaces the module order with the given permutation.
func (h *CurriculumHandler) ReorderModules(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().Curriculum.ReorderModules(req.Order)
	})
}

// AddLesson creates a lesson inside a module; the lesson type is fixed by
// this call.
func (h *CurriculumHandler) AddLesson(c *gin.Context) {
	var req lessonCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	var lessonID string
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		id, err := svc.Course().Curriculum.AddLesson(c.Param("moduleId"), core.LessonDraft{
			Title:           req.Title,
			Type:            core.LessonType(req.Type),
			Content:         req.Content,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			return err
		}
		lessonID = id
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lessonId": lessonID, "course": snapshot})
}

// UpdateLesson merges the provided lesson fields; the type never changes.
func (h *CurriculumHandler) UpdateLesson(c *gin.Context) {
	var req lessonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().Curriculum.UpdateLesson(c.Param("moduleId"), c.Param("lessonId"), req.toUpdate())
	})
}

// DeleteLesson removes a lesson from its module.
func (h *CurriculumHandler) DeleteLesson(c *gin.Context) {
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().Curriculum.DeleteLesson(c.Param("moduleId"), c.Param("lessonId"))
	})
}

func (h *CurriculumHandler) withSnapshot(c *gin.Context, fn func(*usecase.AuthoringService) error) {
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		if err := fn(svc); err != nil {
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
