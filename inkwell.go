package inkwell

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/inkwell/internal/platform"
	"github.com/aretw0/inkwell/pkg/core"
)

// --- Types ---

// App aggregates the stores over one vault directory.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring Inkwell.
type Option = platform.Option

// WithStorage injects a custom storage backend.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithEnhancer injects a custom enhancement backend.
func WithEnhancer(e core.Enhancer) Option {
	return platform.WithEnhancer(e)
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAutoInit enables automatic creation of the vault directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist requires the vault directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithAPIKey sets an explicit provider API key.
func WithAPIKey(key string) Option {
	return platform.WithAPIKey(key)
}

// WithModel overrides the provider model identifier.
func WithModel(model string) Option {
	return platform.WithModel(model)
}

// WithTemperature overrides the provider sampling temperature.
func WithTemperature(t float64) Option {
	return platform.WithTemperature(t)
}

// WithMaxTokens overrides the provider output-length cap.
func WithMaxTokens(n int) Option {
	return platform.WithMaxTokens(n)
}

// WithTimeout overrides the provider call timeout.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithBaseURL overrides the provider endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithHTTPClient injects a custom HTTP client for the provider call.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// --- Factory ---

// Open creates an App over the vault at path, restoring any persisted
// session, notes, and credential.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	return platform.Open(ctx, path, opts...)
}
