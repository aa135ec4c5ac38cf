package embeddings

import (
	"testing"

	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		errMessage string
	}{
		{
			name:   "zero value is valid",
			config: Config{},
		},
		{
			name:   "explicit values",
			config: Config{CacheDir: "/tmp/models", MaxLength: 256, BatchSize: 64},
		},
		{
			name:       "negative max length",
			config:     Config{MaxLength: -1},
			wantErr:    true,
			errMessage: "max length",
		},
		{
			name:       "negative batch size",
			config:     Config{BatchSize: -10},
			wantErr:    true,
			errMessage: "batch size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EMBEDKIT_CACHE_DIR", "/tmp/embedkit-test")
	t.Setenv("EMBEDKIT_MAX_LENGTH", "128")
	t.Setenv("EMBEDKIT_SHOW_PROGRESS", "false")

	cfg := ConfigFromEnv()
	assert.Equal(t, "/tmp/embedkit-test", cfg.CacheDir)
	assert.Equal(t, 128, cfg.MaxLength)
	require.NotNil(t, cfg.ShowDownloadProgress)
	assert.False(t, *cfg.ShowDownloadProgress)
}

func TestConfigFromEnv_Empty(t *testing.T) {
	t.Setenv("EMBEDKIT_CACHE_DIR", "")
	t.Setenv("EMBEDKIT_MAX_LENGTH", "")
	t.Setenv("EMBEDKIT_SHOW_PROGRESS", "")

	cfg := ConfigFromEnv()
	assert.Empty(t, cfg.CacheDir)
	assert.Zero(t, cfg.MaxLength)
	assert.Nil(t, cfg.ShowDownloadProgress, "unset progress flag defers to the client default")
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	assert.NotEmpty(t, client.config.CacheDir)
	assert.Equal(t, defaultMaxLength, client.config.MaxLength)
	assert.Equal(t, defaultBatchSize, client.config.BatchSize)
	require.NotNil(t, client.config.ShowDownloadProgress)
	assert.True(t, *client.config.ShowDownloadProgress, "download progress defaults on")
	assert.NotNil(t, client.logger)
	assert.NotNil(t, client.metrics)
}

func TestNewClient_KeepsExplicitConfig(t *testing.T) {
	show := false
	client, err := NewClient(Config{
		CacheDir:             "/tmp/custom",
		MaxLength:            128,
		BatchSize:            32,
		ShowDownloadProgress: &show,
		Logger:               zap.NewNop(),
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom", client.config.CacheDir)
	assert.Equal(t, 128, client.config.MaxLength)
	assert.Equal(t, 32, client.config.BatchSize)
	assert.False(t, *client.config.ShowDownloadProgress)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(Config{MaxLength: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClient_EmbeddingModel_UnknownModel(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = client.EmbeddingModel("no-such/model")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestClient_EmbeddingModelWithNdims_InvalidNdims(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = client.EmbeddingModelWithNdims(models.AllMiniLML6V2, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = client.EmbeddingModelWithNdims(models.AllMiniLML6V2, -384)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestClient_Embedder_UnknownModel(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = client.Embedder("no-such/model")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownModel)
}
