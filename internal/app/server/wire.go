//go:build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/coursecraft/coursecraft/internal/adapter/catalog"
	"github.com/coursecraft/coursecraft/internal/adapter/db"
	"github.com/coursecraft/coursecraft/internal/adapter/media/fake"
	adaptertransport "github.com/coursecraft/coursecraft/internal/adapter/transport"
	"github.com/coursecraft/coursecraft/internal/core"
	"github.com/coursecraft/coursecraft/internal/usecase"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	wire.Build(
		NewConfig,
		NewLogger,
		NewDatabase,
		wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
		db.NewCourseRepository,
		wire.Bind(new(core.UploadProvider), new(*fake.Provider)),
		NewFakeUploadProvider,
		wire.Bind(new(core.CategorySource), new(*catalog.Static)),
		NewStaticCatalog,
		usecase.NewCategoryService,
		NewSessionManager,
		adaptertransport.NewAuthoringHandler,
		adaptertransport.NewCurriculumHandler,
		adaptertransport.NewMediaHandler,
		adaptertransport.NewCatalogHandler,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil
}
