package usecase

import (
	"context"
	"sync"

	"github.com/coursecraft/coursecraft/internal/core"
)

// CategoryService serves the course category taxonomy, fetched from its
// source once and cached for the lifetime of the process. Fetch failures
// are not cached, so callers may retry.
type CategoryService struct {
	source core.CategorySource

	mu     sync.Mutex
	cached []string
}

// NewCategoryService constructs a caching category service.
func NewCategoryService(source core.CategorySource) *CategoryService {
	return &CategoryService{source: source}
}

// Categories returns the ordered category list.
func (s *CategoryService) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}
	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = categories
	return s.cached, nil
}
