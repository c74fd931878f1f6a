package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// LessonType enumerates the content kinds a lesson can hold. The type is
// fixed when the lesson is created and never changes afterwards.
type LessonType string

const (
	LessonTypeVideo    LessonType = "video"
	LessonTypeDocument LessonType = "document"
	LessonTypeNotes    LessonType = "notes"
)

// Valid reports whether the lesson type is one of the known kinds.
func (t LessonType) Valid() bool {
	switch t {
	case LessonTypeVideo, LessonTypeDocument, LessonTypeNotes:
		return true
	default:
		return false
	}
}

// FileReference points at an uploaded file by URL plus a display name.
// Local file handles never appear here; only the result of an upload does.
type FileReference struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Lesson is a single content unit within a module.
type Lesson struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Type            LessonType     `json:"type"`
	Content         string         `json:"content"`
	DurationMinutes int            `json:"duration"`
	File            *FileReference `json:"file,omitempty"`
}

// Module is a named, ordered container of lessons.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Curriculum owns the ordered module sequence of a course draft. Insertion
// order is display order; all ids are opaque and unique within the draft.
type Curriculum struct {
	Modules []Module `json:"modules"`
}

// LessonDraft carries the fields required to create a lesson.
type LessonDraft struct {
	Title           string
	Type            LessonType
	Content         string
	DurationMinutes int
	File            *FileReference
}

// LessonUpdate merges only the provided fields into an existing lesson.
// Type is present so callers can pass it, but it is ignored: a lesson's
// type is immutable after creation.
type LessonUpdate struct {
	Title           *string
	Type            *LessonType
	Content         *string
	DurationMinutes *int
	File            *FileReference
}

// NewID produces an opaque unique identifier for modules and lessons.
func NewID() string {
	return uuid.NewString()
}

// AddModule appends a new empty module and returns its id.
func (c *Curriculum) AddModule(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: module title required", ErrValidation)
	}
	module := Module{
		ID:      NewID(),
		Title:   title,
		Lessons: []Lesson{},
	}
	c.Modules = append(c.Modules, module)
	return module.ID, nil
}

// RenameModule changes a module's title, leaving the rest of the draft
// untouched.
func (c *Curriculum) RenameModule(moduleID, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: module title required", ErrValidation)
	}
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	c.Modules[idx].Title = title
	return nil
}

// DeleteModule removes a module and every lesson it contains.
func (c *Curriculum) DeleteModule(moduleID string) error {
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	c.Modules = append(c.Modules[:idx], c.Modules[idx+1:]...)
	return nil
}

// ReorderModules replaces the module sequence with the given permutation of
// existing ids. Additions or removals through this path are rejected.
func (c *Curriculum) ReorderModules(order []string) error {
	if len(order) != len(c.Modules) {
		return fmt.Errorf("%w: reorder must reference every module exactly once", ErrValidation)
	}
	byID := make(map[string]Module, len(c.Modules))
	for _, m := range c.Modules {
		byID[m.ID] = m
	}
	reordered := make([]Module, 0, len(order))
	for _, id := range order {
		m, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: reorder must reference every module exactly once", ErrValidation)
		}
		delete(byID, id)
		reordered = append(reordered, m)
	}
	c.Modules = reordered
	return nil
}

// AddLesson creates a lesson inside the given module and returns its id.
// The lesson's type is fixed by this call.
func (c *Curriculum) AddLesson(moduleID string, draft LessonDraft) (string, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return "", fmt.Errorf("%w: lesson title required", ErrValidation)
	}
	if !draft.Type.Valid() {
		return "", fmt.Errorf("%w: unknown lesson type %q", ErrValidation, draft.Type)
	}
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return "", fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	lesson := Lesson{
		ID:              NewID(),
		Title:           draft.Title,
		Type:            draft.Type,
		Content:         draft.Content,
		DurationMinutes: draft.DurationMinutes,
		File:            draft.File,
	}
	c.Modules[idx].Lessons = append(c.Modules[idx].Lessons, lesson)
	return lesson.ID, nil
}

// UpdateLesson merges the provided fields into an existing lesson. A type
// carried in the update is discarded; type is immutable post-creation.
func (c *Curriculum) UpdateLesson(moduleID, lessonID string, update LessonUpdate) error {
	lesson, err := c.lesson(moduleID, lessonID)
	if err != nil {
		return err
	}
	if update.Title != nil {
		lesson.Title = *update.Title
	}
	if update.Content != nil {
		lesson.Content = *update.Content
	}
	if update.DurationMinutes != nil {
		lesson.DurationMinutes = *update.DurationMinutes
	}
	if update.File != nil {
		lesson.File = update.File
	}
	return nil
}

// DeleteLesson removes a lesson from its module's sequence.
func (c *Curriculum) DeleteLesson(moduleID, lessonID string) error {
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	lessons := c.Modules[idx].Lessons
	for i := range lessons {
		if lessons[i].ID == lessonID {
			c.Modules[idx].Lessons = append(lessons[:i], lessons[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: lesson %s", ErrNotFound, lessonID)
}

// Module returns a copy of the module with the given id.
func (c *Curriculum) Module(moduleID string) (Module, error) {
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return Module{}, fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	return c.Modules[idx], nil
}

// Lesson returns a copy of the lesson with the given ids.
func (c *Curriculum) Lesson(moduleID, lessonID string) (Lesson, error) {
	lesson, err := c.lesson(moduleID, lessonID)
	if err != nil {
		return Lesson{}, err
	}
	return *lesson, nil
}

// ModuleIDs returns the module ids in display order.
func (c *Curriculum) ModuleIDs() []string {
	return lo.Map(c.Modules, func(m Module, _ int) string { return m.ID })
}

func (c *Curriculum) moduleIndex(moduleID string) int {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return i
		}
	}
	return -1
}

func (c *Curriculum) lesson(moduleID, lessonID string) (*Lesson, error) {
	idx := c.moduleIndex(moduleID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: module %s", ErrNotFound, moduleID)
	}
	lessons := c.Modules[idx].Lessons
	for i := range lessons {
		if lessons[i].ID == lessonID {
			return &lessons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, lessonID)
}

func (c *Curriculum) clone() Curriculum {
	modules := make([]Module, len(c.Modules))
	for i, m := range c.Modules {
		lessons := make([]Lesson, len(m.Lessons))
		for j, l := range m.Lessons {
			if l.File != nil {
				ref := *l.File
				l.File = &ref
			}
			lessons[j] = l
		}
		m.Lessons = lessons
		modules[i] = m
	}
	return Curriculum{Modules: modules}
}
