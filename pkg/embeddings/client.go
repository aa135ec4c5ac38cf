package embeddings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"github.com/tmc/langchaingo/embeddings"
	"go.uber.org/zap"
)

const (
	// defaultMaxLength is the maximum input sequence length in tokens.
	defaultMaxLength = 512

	// defaultBatchSize is the number of texts per inference batch.
	defaultBatchSize = 256
)

// Config holds configuration for the embedding client.
type Config struct {
	// CacheDir is the directory for downloaded model weights.
	// Defaults to ~/.cache/embedkit/models.
	CacheDir string

	// MaxLength is the maximum input sequence length in tokens. Longer
	// inputs are truncated by the runtime. Defaults to 512.
	MaxLength int

	// BatchSize is the number of texts per inference batch.
	// Defaults to 256.
	BatchSize int

	// ShowDownloadProgress prints a progress bar while model weights
	// download. Defaults to true.
	ShowDownloadProgress *bool

	// Logger receives construction and lifecycle logs.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// ConfigFromEnv creates a Config from environment variables.
//
// Environment variables:
//   - EMBEDKIT_CACHE_DIR: model weight cache directory
//   - EMBEDKIT_MAX_LENGTH: maximum input sequence length
//   - EMBEDKIT_SHOW_PROGRESS: set to "false" or "0" to silence download progress
func ConfigFromEnv() Config {
	cfg := Config{
		CacheDir: os.Getenv("EMBEDKIT_CACHE_DIR"),
	}

	if v := os.Getenv("EMBEDKIT_MAX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLength = n
		}
	}

	if v := os.Getenv("EMBEDKIT_SHOW_PROGRESS"); v != "" {
		show := v != "false" && v != "0"
		cfg.ShowDownloadProgress = &show
	}

	return cfg
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length must not be negative", ErrInvalidConfig)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("%w: batch size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Client constructs embedding models over the bundled fastembed runtime.
// The client holds no backend state itself; every EmbeddingModel call
// initializes its own handle.
type Client struct {
	config  Config
	logger  *zap.Logger
	metrics *Metrics
}

// NewClient creates a client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = defaultMaxLength
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.ShowDownloadProgress == nil {
		show := true
		cfg.ShowDownloadProgress = &show
	}

	return &Client{
		config:  cfg,
		logger:  cfg.Logger,
		metrics: NewMetrics(cfg.Logger),
	}, nil
}

// defaultCacheDir returns the model weight cache location.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "local_cache")
	}
	return filepath.Join(home, ".cache", "embedkit", "models")
}

// EmbeddingModel constructs a model for a catalog identifier. The
// embedding width comes from the catalog; weight download and loading
// happen here and may block for a while on first use.
//
// Catalog identifiers the bundled runtime cannot load return a wrapped
// ErrModelNotSupported; identifiers outside the catalog return
// models.ErrUnknownModel.
func (c *Client) EmbeddingModel(model models.Model) (*EmbeddingModel, error) {
	ndims, err := models.Dimensions(model)
	if err != nil {
		return nil, err
	}
	return c.newModel(model, ndims)
}

// EmbeddingModelWithNdims constructs a model with a caller-declared
// embedding width, skipping the catalog lookup. The width is trusted
// as-is.
func (c *Client) EmbeddingModelWithNdims(model models.Model, ndims int) (*EmbeddingModel, error) {
	if ndims <= 0 {
		return nil, fmt.Errorf("%w: ndims must be positive, got %d", ErrInvalidConfig, ndims)
	}
	return c.newModel(model, ndims)
}

func (c *Client) newModel(model models.Model, ndims int) (*EmbeddingModel, error) {
	backend, err := newFastEmbedBackend(c.config, model)
	if err != nil {
		return nil, err
	}

	c.logger.Info("embedding model ready",
		zap.String("model", string(model)),
		zap.Int("ndims", ndims),
	)

	return &EmbeddingModel{
		backend:   backend,
		model:     model,
		ndims:     ndims,
		batchSize: c.config.BatchSize,
		logger:    c.logger,
		metrics:   c.metrics,
	}, nil
}

// Embedder wraps a catalog model in langchaingo's batching embedder. The
// embedder chunks inputs at MaxDocuments per call and passes the text
// through untouched.
//
// The returned embedder shares one backend handle across all its calls.
func (c *Client) Embedder(model models.Model) (embeddings.Embedder, error) {
	em, err := c.EmbeddingModel(model)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(em,
		embeddings.WithBatchSize(MaxDocuments),
		embeddings.WithStripNewLines(false),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return embedder, nil
}
