package embeddings

import "errors"

var (
	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrModelNotSupported indicates a catalog model the bundled runtime
	// cannot load; construct it through NewUserDefinedModel instead
	ErrModelNotSupported = errors.New("model not supported by bundled runtime")

	// ErrBackendUnavailable indicates the bundled runtime is missing from
	// this build (compiled without CGO)
	ErrBackendUnavailable = errors.New("fastembed backend not available (binary built without CGO support)")

	// ErrProvider wraps failures surfaced by the inference backend
	ErrProvider = errors.New("embedding provider error")
)
