package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/logger"
)

// NewRouter assembles the HTTP API.
func NewRouter(
	authoring *AuthoringHandler,
	curriculum *CurriculumHandler,
	media *MediaHandler,
	catalog *CatalogHandler,
	log *logger.Logger,
) (*gin.Engine, error) {
	if err := RegisterValidations(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := router.Group("/api/v1")

	v1.GET("/categories", catalog.ListCategories)
	v1.GET("/courses", catalog.ListCourses)
	v1.GET("/courses/:courseId", catalog.GetCourse)
	v1.DELETE("/courses/:courseId", catalog.DeleteCourse)

	sessions := v1.Group("/sessions")
	sessions.POST("", authoring.CreateSession)

	session := sessions.Group("/:id")
	session.GET("", authoring.GetSession)
	session.DELETE("", authoring.EndSession)
	session.POST("/reset", authoring.ResetSession)
	session.POST("/load", authoring.LoadCourse)

	session.PATCH("/basic-info", authoring.UpdateBasicInfo)
	session.PATCH("/pricing", authoring.UpdatePricing)
	session.PATCH("/settings", authoring.UpdateSettings)

	session.POST("/tags", authoring.AddTag)
	session.DELETE("/tags/:tag", authoring.RemoveTag)

	session.POST("/objectives", authoring.AddObjective)
	session.PUT("/objectives/:index", authoring.UpdateObjective)
	session.DELETE("/objectives/:index", authoring.DeleteObjective)

	session.POST("/modules", curriculum.AddModule)
	session.PATCH("/modules/:moduleId", curriculum.RenameModule)
	session.DELETE("/modules/:moduleId", curriculum.DeleteModule)
	session.PUT("/curriculum/order", curriculum.ReorderModules)

	session.POST("/modules/:moduleId/lessons", curriculum.AddLesson)
	session.PATCH("/modules/:moduleId/lessons/:lessonId", curriculum.UpdateLesson)
	session.DELETE("/modules/:moduleId/lessons/:lessonId", curriculum.DeleteLesson)
	session.POST("/modules/:moduleId/lessons/:lessonId/file", media.UploadLessonFile)

	session.POST("/media/thumbnail", media.UploadThumbnail)
	session.DELETE("/media/thumbnail", media.ClearThumbnail)
	session.POST("/media/promo-video", media.UploadPromoVideo)
	session.DELETE("/media/promo-video", media.ClearPromoVideo)

	session.POST("/step", authoring.Navigate)
	session.POST("/save", authoring.SaveDraft)
	session.POST("/submit", authoring.Submit)

	return router, nil
}

// requestLogger logs each request with latency and status.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
