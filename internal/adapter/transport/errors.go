package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
)

// writeError maps domain errors to HTTP responses. NotFound on module or
// lesson ids means the client holds a stale id, so it is logged as a
// warning rather than treated as routine.
func writeError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrUnsupportedMedia):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrNotFound):
		log.Warn("stale or unknown id", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrTransport):
		log.Error("transport failure", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
	default:
		log.Error("internal error", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeBindError reports malformed or invalid request payloads.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
}
