//go:build !cgo

package embeddings

import (
	"fmt"

	"github.com/fyrsmithlabs/embedkit/pkg/models"
)

// newFastEmbedBackend is a stub for builds without CGO. The fastembed
// runtime needs cgo for its ONNX bindings; the catalog, adapters, and
// NewUserDefinedModel keep working without it.
func newFastEmbedBackend(_ Config, model models.Model) (Backend, error) {
	return nil, fmt.Errorf("%w: %q", ErrBackendUnavailable, model)
}
