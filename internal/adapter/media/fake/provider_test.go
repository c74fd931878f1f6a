package fake

import (
	"context"
	"errors"
	"testing"

	"github.com/coursecraft/coursecraft/internal/core"
)

func TestProvider_Upload(t *testing.T) {
	p := NewProvider("https://storage.mockyour.app/")

	ref, err := p.Upload(context.Background(), core.UploadRequest{
		Kind:     core.UploadKindImage,
		Filename: "cover.png",
		MimeType: "image/png",
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if ref.URL != "https://storage.mockyour.app/images/cover.png" {
		t.Fatalf("url = %q", ref.URL)
	}
	if ref.Name != "cover.png" {
		t.Fatalf("name = %q", ref.Name)
	}
}

func TestProvider_UploadRequiresFilename(t *testing.T) {
	p := NewProvider("")
	_, err := p.Upload(context.Background(), core.UploadRequest{Kind: core.UploadKindVideo})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("Upload() error = %v, want ErrValidation", err)
	}
}
