package server

import (
	"net/http"

	"github.com/coursecraft/coursecraft/internal/adapter/catalog"
	"github.com/coursecraft/coursecraft/internal/adapter/media/fake"
	"github.com/coursecraft/coursecraft/internal/adapter/transport"
	"github.com/coursecraft/coursecraft/internal/config"
	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/logger"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger builds the process logger from the configured mode.
func NewLogger(cfg config.Config) (*logger.Logger, error) {
	return logger.New(cfg.LogMode)
}

// NewFakeUploadProvider returns a fake upload provider implementation.
func NewFakeUploadProvider(cfg config.Config) *fake.Provider {
	return fake.NewProvider(cfg.StorageBaseURL)
}

// NewStaticCatalog returns the built-in category catalog.
func NewStaticCatalog() *catalog.Static {
	return catalog.NewStatic()
}

// NewSessionManager builds the session manager. Every session gets its own
// authoring service sharing the repository and upload provider.
func NewSessionManager(repo core.CourseRepository, uploader core.UploadProvider) *usecase.SessionManager {
	return usecase.NewSessionManager(func() *usecase.AuthoringService {
		return usecase.NewAuthoringService(repo, uploader)
	})
}

// NewHTTPHandler assembles the gin router from the transport handlers.
func NewHTTPHandler(
	authoring *transport.AuthoringHandler,
	curriculum *transport.CurriculumHandler,
	media *transport.MediaHandler,
	catalogHandler *transport.CatalogHandler,
	log *logger.Logger,
) (http.Handler, error) {
	router, err := transport.NewRouter(authoring, curriculum, media, catalogHandler, log)
	if err != nil {
		return nil, err
	}
	return router, nil
}
