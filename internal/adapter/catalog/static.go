package catalog

import (
	"context"

	"github.com/coursecraft/coursecraft/internal/core"
)

// defaultCategories is the built-in course taxonomy, in display order.
var defaultCategories = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning",
	"Artificial Intelligence",
	"DevOps",
	"Cloud Computing",
	"Cybersecurity",
	"Blockchain",
	"Game Development",
	"Design",
	"Marketing",
	"Business",
	"Personal Development",
	"Health & Fitness",
}

// Static serves a fixed, ordered category list.
type Static struct {
	categories []string
}

// NewStatic constructs a static category source with the built-in taxonomy.
func NewStatic() *Static {
	return &Static{categories: defaultCategories}
}

var _ core.CategorySource = (*Static)(nil)

// Categories returns a copy of the category list in its fixed order.
func (s *Static) Categories(ctx context.Context) ([]string, error) {
	_ = ctx
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
