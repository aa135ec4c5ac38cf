package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"go.uber.org/zap"
)

// MaxDocuments is the maximum number of documents the provider contract
// allows per embedding call. EmbedTexts does not enforce or split it;
// chunking belongs to batching callers, such as the langchaingo embedder
// returned by Client.Embedder.
const MaxDocuments = 1024

// Backend is the batch-embed surface of a local inference runtime.
// *fastembed.FlagEmbedding satisfies it. Implementations return one
// vector per input text, in input order.
type Backend interface {
	Embed(input []string, batchSize int) ([][]float32, error)
}

// Embedding pairs an input document with its vector.
type Embedding struct {
	// Document is the original input text, unchanged.
	Document string `json:"document"`

	// Vec is the embedding vector, widened to float64. Its length equals
	// the model's declared width for catalog models.
	Vec []float64 `json:"vec"`
}

// EmbeddingModel embeds texts with one fixed model. Copies share the
// underlying backend handle, so Close belongs to whoever constructed the
// model; the handle itself is never mutated after construction.
type EmbeddingModel struct {
	backend   Backend
	model     models.Model
	ndims     int
	batchSize int
	logger    *zap.Logger
	metrics   *Metrics
}

// NewUserDefinedModel binds a caller-supplied backend, bypassing the
// catalog. The declared ndims is trusted as-is: no check that it matches
// the backend's actual output width. info labels the model for logging
// and metrics.
func NewUserDefinedModel(backend Backend, ndims int, info models.Info) (*EmbeddingModel, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend is required", ErrInvalidConfig)
	}
	if ndims <= 0 {
		return nil, fmt.Errorf("%w: ndims must be positive, got %d", ErrInvalidConfig, ndims)
	}

	logger := zap.NewNop()
	return &EmbeddingModel{
		backend:   backend,
		model:     info.Model,
		ndims:     ndims,
		batchSize: defaultBatchSize,
		logger:    logger,
		metrics:   NewMetrics(logger),
	}, nil
}

// Ndims returns the model's declared embedding width.
func (m *EmbeddingModel) Ndims() int {
	return m.ndims
}

// Model returns the model identifier.
func (m *EmbeddingModel) Model() models.Model {
	return m.model
}

// EmbedTexts embeds documents in one backend call.
//
// The result holds exactly one entry per input, in input order, with the
// document text retained verbatim and the runtime's float32 vector
// widened element-wise to float64. A backend failure yields a wrapped
// ErrProvider and no partial results. Empty input returns an empty
// result without touching the backend.
//
// Texts are passed through unvalidated; batches over MaxDocuments are
// not split here.
func (m *EmbeddingModel) EmbedTexts(ctx context.Context, texts []string) ([]Embedding, error) {
	if len(texts) == 0 {
		return []Embedding{}, nil
	}

	vectors, err := m.embed(ctx, texts, "embed_texts")
	if err != nil {
		return nil, err
	}

	results := make([]Embedding, len(texts))
	for i, vec := range vectors {
		wide := make([]float64, len(vec))
		for j, v := range vec {
			wide[j] = float64(v)
		}
		results[i] = Embedding{Document: texts[i], Vec: wide}
	}
	return results, nil
}

// CreateEmbedding implements langchaingo's embeddings.EmbedderClient.
// Vectors keep the runtime's native float32 precision; the float64
// widening belongs to the Embedding contract, not langchaingo's.
func (m *EmbeddingModel) CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	return m.embed(ctx, texts, "create_embedding")
}

// embed issues one backend call and records metrics for it. The context
// is checked before the call only; inference itself is not cancellable.
func (m *EmbeddingModel) embed(ctx context.Context, texts []string, operation string) ([][]float32, error) {
	start := time.Now()
	var genErr error
	defer func() {
		m.metrics.RecordGeneration(ctx, string(m.model), operation, time.Since(start), len(texts), genErr)
	}()

	select {
	case <-ctx.Done():
		genErr = ctx.Err()
		return nil, genErr
	default:
	}

	vectors, err := m.backend.Embed(texts, m.batchSize)
	if err != nil {
		genErr = fmt.Errorf("%w: %v", ErrProvider, err)
		return nil, genErr
	}
	if len(vectors) != len(texts) {
		genErr = fmt.Errorf("%w: %d texts in, %d vectors out", ErrProvider, len(texts), len(vectors))
		return nil, genErr
	}

	return vectors, nil
}

// Close releases the backend when it supports teardown. Backends without
// a Destroy method (user-defined fakes, remote handles) make this a
// no-op.
func (m *EmbeddingModel) Close() error {
	if d, ok := m.backend.(interface{ Destroy() error }); ok {
		return d.Destroy()
	}
	return nil
}
