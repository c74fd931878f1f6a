package fake

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursecraft/coursecraft/internal/core"
)

// Provider offers a simplified upload provider that simulates storage
// behaviour, returning deterministic URLs keyed by kind and filename.
type Provider struct {
	storageBase string
}

// NewProvider constructs a fake upload provider.
func NewProvider(storageBase string) *Provider {
	return &Provider{storageBase: storageBase}
}

var _ core.UploadProvider = (*Provider)(nil)

// Upload simulates a file transfer and returns the resulting reference.
func (p *Provider) Upload(ctx context.Context, req core.UploadRequest) (*core.FileReference, error) {
	_ = ctx // unused in fake implementation

	if req.Filename == "" {
		return nil, fmt.Errorf("%w: filename required", core.ErrValidation)
	}

	url := fmt.Sprintf("%s/%ss/%s", normalizeBase(p.storageBase, "https://storage.local"), req.Kind, req.Filename)
	return &core.FileReference{
		URL:  url,
		Name: req.Filename,
	}, nil
}

func normalizeBase(base, fallback string) string {
	if base == "" {
		return fallback
	}
	return strings.TrimSuffix(base, "/")
}
