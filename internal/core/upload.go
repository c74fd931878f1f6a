package core

import (
	"context"
	"strings"
)

// UploadKind constrains the acceptable content types for an upload.
type UploadKind string

const (
	UploadKindImage    UploadKind = "image"
	UploadKindVideo    UploadKind = "video"
	UploadKindDocument UploadKind = "document"
)

var documentMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
}

// AcceptsMime reports whether the given MIME type may be uploaded for this
// kind: any image/* for thumbnails, any video/* for video, and pdf/docx/pptx
// for documents.
func (k UploadKind) AcceptsMime(mimeType string) bool {
	switch k {
	case UploadKindImage:
		return strings.HasPrefix(mimeType, "image/")
	case UploadKindVideo:
		return strings.HasPrefix(mimeType, "video/")
	case UploadKindDocument:
		_, ok := documentMimeTypes[mimeType]
		return ok
	default:
		return false
	}
}

// UploadRequest describes a file offered for upload.
type UploadRequest struct {
	Kind     UploadKind
	Filename string
	MimeType string
	Size     int64
}

// UploadProvider transfers file contents to storage and returns the
// resulting reference. MIME validation happens before this call is made.
type UploadProvider interface {
	Upload(ctx context.Context, req UploadRequest) (*FileReference, error)
}

// CategorySource supplies the opaque ordered category taxonomy.
type CategorySource interface {
	Categories(ctx context.Context) ([]string, error)
}

// UploadState tags the lifecycle of a media slot's pending upload.
type UploadState string

const (
	UploadNotStarted UploadState = "not_started"
	UploadInProgress UploadState = "uploading"
	UploadDone       UploadState = "uploaded"
	UploadFailed     UploadState = "failed"
)

// MediaSlot holds one media attachment of the draft (thumbnail or promo
// video) together with its upload state. Only URL and Name survive
// persistence; the transient state never does.
type MediaSlot struct {
	State UploadState `json:"state"`
	URL   string      `json:"url"`
	Name  string      `json:"name"`
	Error string      `json:"error,omitempty"`
}

// Begin marks the slot as uploading the named file.
func (s *MediaSlot) Begin(filename string) {
	s.State = UploadInProgress
	s.Name = filename
	s.Error = ""
}

// Complete stores the uploaded reference, replacing any prior value.
func (s *MediaSlot) Complete(ref FileReference) {
	s.State = UploadDone
	s.URL = ref.URL
	s.Name = ref.Name
	s.Error = ""
}

// Fail records the upload failure; the previous URL, if any, is dropped so
// the slot reflects the attempted replacement.
func (s *MediaSlot) Fail(message string) {
	s.State = UploadFailed
	s.URL = ""
	s.Error = message
}

// Clear empties the slot.
func (s *MediaSlot) Clear() {
	*s = MediaSlot{State: UploadNotStarted}
}
