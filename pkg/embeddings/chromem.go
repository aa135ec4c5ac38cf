package embeddings

import (
	"context"

	chromem "github.com/philippgille/chromem-go"
)

// EmbeddingFunc adapts the model to chromem-go collections. chromem
// embeds one text at a time, so each call is a single-document backend
// batch.
func (m *EmbeddingModel) EmbeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := m.embed(ctx, []string{text}, "embed_query")
		if err != nil {
			return nil, err
		}
		return vectors[0], nil
	}
}
