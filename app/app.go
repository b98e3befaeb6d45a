package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sellerdesk/shop-manager/config"
	"github.com/sellerdesk/shop-manager/internal/analytics"
	httpapi "github.com/sellerdesk/shop-manager/internal/api/http"
	"github.com/sellerdesk/shop-manager/internal/store"
)

// App owns the service dependencies and their lifecycle.
type App struct {
	c  *config.Config
	db *store.MYSQLStore
	hs *httpapi.Server
}

func New(c *config.Config) *App {
	return &App{c: c}
}

// Start connects the store, builds the report engine and starts the
// http server.
func (a *App) Start(ctx context.Context) error {
	var err error

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		return fmt.Errorf("cannot connect to mysql: %w", err)
	}
	slog.Default().InfoContext(ctx, "connected to mysql")

	engine := analytics.New(a.c.Analytics, a.db.Orders())

	a.hs = httpapi.New(&a.c.HTTP, engine, a.db)
	if err := a.hs.Start(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("cannot start http server: %w", err)
	}

	return nil
}

// Stop shuts down the http server and closes the store.
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed when the http server exits.
func (a *App) Done() <-chan struct{} {
	if a.hs == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return a.hs.Done()
}
