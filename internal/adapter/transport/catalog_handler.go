package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// CatalogHandler serves the category taxonomy and the stored course listing.
type CatalogHandler struct {
	categories *usecase.CategoryService
	courses    core.CourseRepository
	log        *logger.Logger
}

// NewCatalogHandler constructs the catalog handler.
func NewCatalogHandler(categories *usecase.CategoryService, courses core.CourseRepository, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{categories: categories, courses: courses, log: log}
}

// ListCategories returns the ordered category list.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.Categories(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListCourses returns stored course summaries, most recent first.
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetCourse returns a stored course snapshot without opening a session.
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.courses.Load(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

// DeleteCourse removes a stored course.
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("courseId")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
