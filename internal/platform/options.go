package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/inkwell/pkg/core"
)

// options holds the internal configuration for the Inkwell app.
type options struct {
	storage  core.Storage
	enhancer core.Enhancer
	logger   *slog.Logger

	autoInit  bool
	mustExist bool

	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	baseURL     string
	httpClient  *http.Client
}

// Option defines a functional option for configuring Inkwell.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit: true,
	}
}

// WithStorage injects a custom storage backend.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithEnhancer injects a custom enhancement backend.
func WithEnhancer(e core.Enhancer) Option {
	return func(o *options) {
		o.enhancer = e
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAutoInit enables automatic creation of the vault directory.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist requires the vault directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithAPIKey sets an explicit provider API key, bypassing the
// credential store.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithModel overrides the provider model identifier.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithTemperature overrides the provider sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// WithMaxTokens overrides the provider output-length cap.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

// WithTimeout overrides the provider call timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithBaseURL overrides the provider endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithHTTPClient injects a custom HTTP client for the provider call.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
