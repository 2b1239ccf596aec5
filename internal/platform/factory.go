package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/inkwell/pkg/adapters/fs"
	"github.com/aretw0/inkwell/pkg/ai"
	"github.com/aretw0/inkwell/pkg/core"
	"github.com/aretw0/inkwell/pkg/credentials"
	"github.com/aretw0/inkwell/pkg/notes"
	"github.com/aretw0/inkwell/pkg/session"
)

// App aggregates the stores over one vault directory.
type App struct {
	path        string
	storage     core.Storage
	sessions    *session.Store
	notes       *notes.Store
	credentials *credentials.Store
	enhancer    core.Enhancer
}

// Path returns the vault directory.
func (a *App) Path() string { return a.path }

// Sessions returns the session store.
func (a *App) Sessions() *session.Store { return a.sessions }

// Notes returns the note store.
func (a *App) Notes() *notes.Store { return a.notes }

// Credentials returns the credential store.
func (a *App) Credentials() *credentials.Store { return a.credentials }

// Storage returns the underlying storage backend.
func (a *App) Storage() core.Storage { return a.storage }

// Enhancer returns the configured enhancement backend.
func (a *App) Enhancer() core.Enhancer { return a.enhancer }

// Open wires storage, enhancement client, and stores for the vault at
// path, restoring persisted state.
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		fsStorage := fs.NewStorage(fs.Config{
			Path:      path,
			AutoInit:  o.autoInit,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
		if err := fsStorage.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		storage = fsStorage
	}

	creds := credentials.NewStore(storage, o.logger)

	enhancer := o.enhancer
	if enhancer == nil {
		cfg, err := resolveAIConfig(path, o)
		if err != nil {
			return nil, err
		}
		cfg.Keys = creds
		enhancer = ai.NewClient(cfg)
	}

	sessions, err := session.Open(ctx, storage, o.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	noteStore, err := notes.Open(ctx, storage, enhancer, o.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open note store: %w", err)
	}

	return &App{
		path:        path,
		storage:     storage,
		sessions:    sessions,
		notes:       noteStore,
		credentials: creds,
		enhancer:    enhancer,
	}, nil
}

// resolveAIConfig layers provider settings: explicit options win over
// the vault's config file, which wins over client defaults.
func resolveAIConfig(path string, o *options) (ai.Config, error) {
	file, err := loadFileConfig(path)
	if err != nil {
		return ai.Config{}, err
	}
	fileTimeout, err := file.timeoutDuration()
	if err != nil {
		return ai.Config{}, err
	}

	cfg := ai.Config{
		APIKey:      o.apiKey,
		Model:       file.Model,
		Temperature: file.Temperature,
		MaxTokens:   file.MaxTokens,
		Timeout:     fileTimeout,
		BaseURL:     file.BaseURL,
		HTTPClient:  o.httpClient,
		Logger:      o.logger,
	}
	if o.model != "" {
		cfg.Model = o.model
	}
	if o.temperature != 0 {
		cfg.Temperature = o.temperature
	}
	if o.maxTokens != 0 {
		cfg.MaxTokens = o.maxTokens
	}
	if o.timeout != 0 {
		cfg.Timeout = o.timeout
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	return cfg, nil
}
