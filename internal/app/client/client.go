// Package client is the HTTP client side of the CLI: it talks to the
// VanishNote API and exposes the three public operations.
package client

import (
	"context"

	"vanishnote/internal/app/client/config"

	"golang.org/x/exp/slog"
)

// App bundles the configured API client for the CLI commands.
type App struct {
	cfg  *config.Config
	log  *slog.Logger
	http *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	http, err := newHTTPClient(cfg, log)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:  cfg,
		log:  log,
		http: http,
	}, nil
}

type ctxKey struct{}

// IntoContext stores the app for subcommands to pick up.
func IntoContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext returns the app stored by the root command, or nil.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(ctxKey{}).(*App)
	return app
}
