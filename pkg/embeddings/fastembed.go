//go:build cgo

package embeddings

import (
	"fmt"

	fastembed "github.com/anush008/fastembed-go"
	"github.com/fyrsmithlabs/embedkit/pkg/models"
)

// The fastembed handle is the bundled Backend.
var _ Backend = (*fastembed.FlagEmbedding)(nil)

// runtimeModels maps catalog identifiers to the models the bundled
// fastembed runtime ships. Catalog entries outside this table need a
// user-defined Backend.
var runtimeModels = map[models.Model]fastembed.EmbeddingModel{
	models.AllMiniLML6V2:       fastembed.AllMiniLML6V2,
	models.BGESmallENV15:       fastembed.BGESmallENV15,
	models.BGEBaseENV15:        fastembed.BGEBaseENV15,
	models.BGESmallZHV15:       fastembed.BGESmallZH,
	models.MultilingualE5Large: fastembed.MLE5Large,
}

// newFastEmbedBackend initializes the fastembed runtime for a catalog
// model. Weights download into cfg.CacheDir on first use; the runtime
// locates libonnxruntime through ONNX_PATH.
func newFastEmbedBackend(cfg Config, model models.Model) (Backend, error) {
	runtimeModel, ok := runtimeModels[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotSupported, model)
	}

	opts := &fastembed.InitOptions{
		Model:                runtimeModel,
		CacheDir:             cfg.CacheDir,
		MaxLength:            cfg.MaxLength,
		ShowDownloadProgress: cfg.ShowDownloadProgress,
	}

	flagEmbed, err := fastembed.NewFlagEmbedding(opts)
	if err != nil {
		return nil, fmt.Errorf("initializing fastembed model %q: %w", model, err)
	}

	return flagEmbed, nil
}
