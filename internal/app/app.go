package app

import (
	"context"

	"github.com/teemo-ai/estimation-server/internal/config"
	"github.com/teemo-ai/estimation-server/internal/services/estimation"
	"github.com/teemo-ai/estimation-server/internal/services/storage"
	"github.com/teemo-ai/estimation-server/pkg/logger"

	"go.uber.org/zap"
)

type App struct {
	config     *config.Config
	ctx        context.Context
	cancelFunc context.CancelFunc

	Logger    *zap.Logger
	Storage   storage.Storage
	Estimator estimation.Estimator
}

// Option funcs used to initialize the App struct
type OptionFunc func(app *App) error

func WithStorage() OptionFunc {
	return func(app *App) error {
		store, err := storage.NewStore(app.config, app.Logger)
		if err != nil {
			return err
		}
		app.Storage = store
		return nil
	}
}

func WithEstimator() OptionFunc {
	return func(app *App) error {
		app.Estimator = estimation.NewClient(app.config.Gemini, app.Logger)
		return nil
	}
}

func NewApp(cfg *config.Config, options ...OptionFunc) (*App, error) {
	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		ctx:        ctx,
		config:     cfg,
		Logger:     log,
		cancelFunc: cancel,
	}

	for _, opt := range options {
		if err := opt(app); err != nil {
			cancel()
			return nil, err
		}
	}

	return app, nil
}

func (app *App) Close() {
	app.cancelFunc()
	app.Logger.Sync()
}

func (app *App) Config() *config.Config {
	return app.config
}

func (app *App) Context() context.Context {
	return app.ctx
}
