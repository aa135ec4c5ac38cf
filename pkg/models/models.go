// Package models is the catalog of text-embedding models known to embedkit.
//
// Each identifier maps to the fixed output dimensionality published on the
// model's card. The catalog is closed: lookups outside it fail with
// ErrUnknownModel instead of guessing a width, so a stale caller fails
// loudly rather than feeding mis-sized vectors downstream.
package models

import (
	"errors"
	"fmt"
)

// Model identifies a pretrained text-embedding model.
type Model string

// ErrUnknownModel indicates an identifier outside the catalog.
var ErrUnknownModel = errors.New("unknown embedding model")

// Catalog identifiers, grouped by embedding width.
// Quantized variants carry a "-q" suffix on the base identifier.
const (
	// 384 dimensions
	AllMiniLML6V2            Model = "sentence-transformers/all-MiniLM-L6-v2"
	AllMiniLML6V2Q           Model = "sentence-transformers/all-MiniLM-L6-v2-q"
	AllMiniLML12V2           Model = "sentence-transformers/all-MiniLM-L12-v2"
	AllMiniLML12V2Q          Model = "sentence-transformers/all-MiniLM-L12-v2-q"
	BGESmallENV15            Model = "BAAI/bge-small-en-v1.5"
	BGESmallENV15Q           Model = "BAAI/bge-small-en-v1.5-q"
	ParaphraseMLMiniLML12V2  Model = "sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2"
	ParaphraseMLMiniLML12V2Q Model = "sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2-q"
	MultilingualE5Small      Model = "intfloat/multilingual-e5-small"

	// 512 dimensions
	BGESmallZHV15 Model = "BAAI/bge-small-zh-v1.5"
	ClipVitB32    Model = "Qdrant/clip-ViT-B-32-text"

	// 768 dimensions
	BGEBaseENV15             Model = "BAAI/bge-base-en-v1.5"
	BGEBaseENV15Q            Model = "BAAI/bge-base-en-v1.5-q"
	NomicEmbedTextV1         Model = "nomic-ai/nomic-embed-text-v1"
	NomicEmbedTextV15        Model = "nomic-ai/nomic-embed-text-v1.5"
	NomicEmbedTextV15Q       Model = "nomic-ai/nomic-embed-text-v1.5-q"
	ParaphraseMLMpnetBaseV2  Model = "sentence-transformers/paraphrase-multilingual-mpnet-base-v2"
	MultilingualE5Base       Model = "intfloat/multilingual-e5-base"
	GTEBaseENV15             Model = "Alibaba-NLP/gte-base-en-v1.5"
	GTEBaseENV15Q            Model = "Alibaba-NLP/gte-base-en-v1.5-q"
	JinaEmbeddingsV2BaseCode Model = "jinaai/jina-embeddings-v2-base-code"

	// 1024 dimensions
	BGELargeENV15       Model = "BAAI/bge-large-en-v1.5"
	BGELargeENV15Q      Model = "BAAI/bge-large-en-v1.5-q"
	MultilingualE5Large Model = "intfloat/multilingual-e5-large"
	MxbaiEmbedLargeV1   Model = "mixedbread-ai/mxbai-embed-large-v1"
	MxbaiEmbedLargeV1Q  Model = "mixedbread-ai/mxbai-embed-large-v1-q"
	GTELargeENV15       Model = "Alibaba-NLP/gte-large-en-v1.5"
	GTELargeENV15Q      Model = "Alibaba-NLP/gte-large-en-v1.5-q"
)

// Info describes one catalog entry. It also labels user-defined models
// registered outside the catalog.
type Info struct {
	Model       Model  `json:"model"`
	Dimensions  int    `json:"dimensions"`
	Description string `json:"description"`
}

// catalog is the single source of truth for the registry. Dimensions come
// from the published model cards; every lookup and listing derives from
// this table.
var catalog = []Info{
	{AllMiniLML6V2, 384, "Sentence Transformer model, MiniLM-L6-v2"},
	{AllMiniLML6V2Q, 384, "Quantized Sentence Transformer model, MiniLM-L6-v2"},
	{AllMiniLML12V2, 384, "Sentence Transformer model, MiniLM-L12-v2"},
	{AllMiniLML12V2Q, 384, "Quantized Sentence Transformer model, MiniLM-L12-v2"},
	{BGESmallENV15, 384, "v1.5 release of the fast and default English model"},
	{BGESmallENV15Q, 384, "Quantized v1.5 release of the fast and default English model"},
	{ParaphraseMLMiniLML12V2, 384, "Multi-lingual paraphrase model"},
	{ParaphraseMLMiniLML12V2Q, 384, "Quantized multi-lingual paraphrase model"},
	{MultilingualE5Small, 384, "Small model of multilingual E5 text embeddings"},

	{BGESmallZHV15, 512, "v1.5 release of the small Chinese model"},
	{ClipVitB32, 512, "CLIP text encoder"},

	{BGEBaseENV15, 768, "v1.5 release of the base English model"},
	{BGEBaseENV15Q, 768, "Quantized v1.5 release of the base English model"},
	{NomicEmbedTextV1, 768, "8192 context length english model"},
	{NomicEmbedTextV15, 768, "v1.5 release of the 8192 context length english model"},
	{NomicEmbedTextV15Q, 768, "Quantized v1.5 release of the 8192 context length english model"},
	{ParaphraseMLMpnetBaseV2, 768, "Sentence-transformers model for clustering and semantic search"},
	{MultilingualE5Base, 768, "Base model of multilingual E5 text embeddings"},
	{GTEBaseENV15, 768, "Base model of the Alibaba-NLP gte series"},
	{GTEBaseENV15Q, 768, "Quantized base model of the Alibaba-NLP gte series"},
	{JinaEmbeddingsV2BaseCode, 768, "Source code embeddings with 8192 context length"},

	{BGELargeENV15, 1024, "v1.5 release of the large English model"},
	{BGELargeENV15Q, 1024, "Quantized v1.5 release of the large English model"},
	{MultilingualE5Large, 1024, "Large model of multilingual E5 text embeddings"},
	{MxbaiEmbedLargeV1, 1024, "Large English embedding model from mixedbread.ai"},
	{MxbaiEmbedLargeV1Q, 1024, "Quantized large English embedding model from mixedbread.ai"},
	{GTELargeENV15, 1024, "Large model of the Alibaba-NLP gte series"},
	{GTELargeENV15Q, 1024, "Quantized large model of the Alibaba-NLP gte series"},
}

// dimensions indexes the catalog by identifier.
var dimensions = make(map[Model]int, len(catalog))

func init() {
	for _, info := range catalog {
		dimensions[info.Model] = info.Dimensions
	}
}

// Dimensions returns the embedding width for a catalog model. It is total
// over the catalog and deterministic; identifiers outside the catalog
// return a wrapped ErrUnknownModel, never a zero width.
func Dimensions(m Model) (int, error) {
	ndims, ok := dimensions[m]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, m)
	}
	return ndims, nil
}

// All returns every catalog identifier in catalog order.
func All() []Model {
	out := make([]Model, len(catalog))
	for i, info := range catalog {
		out[i] = info.Model
	}
	return out
}

// Catalog returns a copy of all catalog entries in catalog order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Parse validates a model identifier string against the catalog.
func Parse(s string) (Model, error) {
	m := Model(s)
	if _, ok := dimensions[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
	}
	return m, nil
}
