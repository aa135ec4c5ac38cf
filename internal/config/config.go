// Package config provides configuration loading for the embedkit CLI.
//
// Configuration is loaded from a YAML file with environment variable
// overrides. Zero values for the runtime knobs defer to the embeddings
// client defaults so there is a single place those live.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/embedkit/internal/logging"
	"github.com/fyrsmithlabs/embedkit/pkg/embeddings"
	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"go.uber.org/zap"
)

// DefaultModel is the catalog model used when none is configured.
const DefaultModel = "BAAI/bge-small-en-v1.5"

// Config holds the complete embedkit CLI configuration.
type Config struct {
	// Model is the catalog identifier to embed with.
	Model string `koanf:"model"`

	// CacheDir is the model weight cache directory. Empty defers to the
	// client default (~/.cache/embedkit/models).
	CacheDir string `koanf:"cache_dir"`

	// MaxLength is the maximum input sequence length in tokens. Zero
	// defers to the client default.
	MaxLength int `koanf:"max_length"`

	// BatchSize is the number of texts per inference batch. Zero defers
	// to the client default.
	BatchSize int `koanf:"batch_size"`

	// ShowProgress prints a progress bar while model weights download.
	// Unset defers to the client default.
	ShowProgress *bool `koanf:"show_progress"`

	// Log configures the CLI logger.
	Log logging.Config `koanf:"log"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate validates the configuration.
//
// Returns an error if:
//   - Model is not a catalog identifier
//   - MaxLength or BatchSize is negative
//   - Log level or format is unknown
func (c *Config) Validate() error {
	if _, err := models.Parse(c.Model); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative, got %d", c.MaxLength)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch_size must not be negative, got %d", c.BatchSize)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	return nil
}

// ClientConfig maps the CLI configuration onto the embeddings client
// configuration.
func (c *Config) ClientConfig(logger *zap.Logger) embeddings.Config {
	return embeddings.Config{
		CacheDir:             c.CacheDir,
		MaxLength:            c.MaxLength,
		BatchSize:            c.BatchSize,
		ShowDownloadProgress: c.ShowProgress,
		Logger:               logger,
	}
}
