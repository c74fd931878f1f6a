package transport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// AuthoringHandler exposes the wizard session lifecycle and the aggregate's
// field-group mutations over HTTP.
type AuthoringHandler struct {
	sessions *usecase.SessionManager
	log      *logger.Logger
}

// NewAuthoringHandler constructs the authoring handler.
func NewAuthoringHandler(sessions *usecase.SessionManager, log *logger.Logger) *AuthoringHandler {
	return &AuthoringHandler{sessions: sessions, log: log}
}

// CreateSession starts a new authoring session with a fresh draft.
func (h *AuthoringHandler) CreateSession(c *gin.Context) {
	id := h.sessions.Create()
	var snapshot core.CourseDraft
	_ = h.sessions.Do(id, func(svc *usecase.AuthoringService) error {
		snapshot = svc.Snapshot()
		return nil
	})
	h.log.Info("authoring session started", "session", id)
	c.JSON(http.StatusCreated, sessionResponse{SessionID: id, Course: snapshot})
}

// GetSession returns the current draft snapshot.
func (h *AuthoringHandler) GetSession(c *gin.Context) {
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error { return nil })
}

// EndSession discards the session and its draft.
func (h *AuthoringHandler) EndSession(c *gin.Context) {
	if err := h.sessions.End(c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetSession returns the draft to its defaults.
func (h *AuthoringHandler) ResetSession(c *gin.Context) {
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Reset()
		return nil
	})
}

// LoadCourse replaces the session draft with a stored course for editing.
func (h *AuthoringHandler) LoadCourse(c *gin.Context) {
	var req loadCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.LoadCourse(c.Request.Context(), req.CourseID)
	})
}

// UpdateBasicInfo merges basic-information fields into the draft.
func (h *AuthoringHandler) UpdateBasicInfo(c *gin.Context) {
	var req basicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		return svc.Course().ApplyBasicInfo(req.toUpdate())
	})
}

// UpdatePricing merges pricing fields into the draft.
func (h *AuthoringHandler) UpdatePricing(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().ApplyPricing(req.toUpdate())
		return nil
	})
}

// UpdateSettings merges SEO and course-settings fields into the draft.
func (h *AuthoringHandler) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().ApplySettings(req.toUpdate())
		return nil
	})
}

// AddTag appends a tag; duplicates are absorbed silently.
func (h *AuthoringHandler) AddTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().AddTag(req.Tag)
		return nil
	})
}

// RemoveTag drops a tag; unknown tags are absorbed silently.
func (h *AuthoringHandler) RemoveTag(c *gin.Context) {
	tag := c.Param("tag")
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().RemoveTag(tag)
		return nil
	})
}

// AddObjective appends a learning objective.
func (h *AuthoringHandler) AddObjective(c *gin.Context) {
	var req objectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().AddLearningObjective(req.Text)
		return nil
	})
}

// UpdateObjective replaces the objective at an index; out-of-range indices
// leave the list untouched.
func (h *AuthoringHandler) UpdateObjective(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req objectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().UpdateLearningObjective(index, req.Text)
		return nil
	})
}

// DeleteObjective removes the objective at an index and compacts the list.
func (h *AuthoringHandler) DeleteObjective(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		svc.Course().DeleteLearningObjective(index)
		return nil
	})
}

// Navigate moves the wizard one step forward or back, or jumps to a step.
// Navigation is never validated; the index only ever clamps to the range.
func (h *AuthoringHandler) Navigate(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.withSnapshot(c, func(svc *usecase.AuthoringService) error {
		switch req.Action {
		case "next":
			svc.Course().NextStep()
		case "previous":
			svc.Course().PreviousStep()
		case "goto":
			step := 0
			if req.Step != nil {
				step = *req.Step
			}
			svc.Course().GoToStep(core.Step(step))
		}
		return nil
	})
}

// SaveDraft persists the current state as a draft, however incomplete.
func (h *AuthoringHandler) SaveDraft(c *gin.Context) {
	var courseID string
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		id, err := svc.SaveDraft(c.Request.Context())
		if err != nil {
			return err
		}
		courseID = id
		snapshot = svc.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	h.log.Info("draft saved", "course", courseID)
	c.JSON(http.StatusOK, saveResponse{CourseID: courseID, Course: snapshot})
}

// Submit runs the submission gate. A failed gate is a normal response with
// ok=false and the redirect step, not an error status.
func (h *AuthoringHandler) Submit(c *gin.Context) {
	var check core.SubmitCheck
	var courseID string
	var snapshot core.CourseDraft
	err := h.sessions.Do(c.Param("id"), func(svc *usecase.AuthoringService) error {
		var err error
		check, courseID, err = svc.Submit(c.Request.Context())
		snapshot = svc.Snapshot()
		return err
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := submitResponse{OK: check.OK, Course: snapshot}
	if check.OK {
		resp.CourseID = courseID
		h.log.Info("course submitted", "course", courseID)
	} else {
		redirect := int(check.RedirectStep)
		resp.RedirectStep = &redirect
		resp.Message = check.Message
	}
	c.JSON(http.StatusOK, resp)
}

// withSnapshot runs a mutation inside the session lock and responds with
// the resulting draft snapshot.
func (h *AuthoringHandler) withSnapshot(c *gin.Context, fn func(*usecase.AuthoringService) error) {
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
