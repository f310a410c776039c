package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	logger  *slog.Logger
	config  *config.Config
	journal *journal.Journal
	tracer  trace.Tracer
	router  *http.ServeMux
	ws      *config.WebSocket
}

func New(
	logger *slog.Logger,
	cfg *config.Config,
	journal *journal.Journal,
	tracer trace.Tracer,
) (*App, error) {
	ws, err := config.NewWebSocket(cfg.AllowedOrigins...)
	if err != nil {
		return nil, err
	}

	app := &App{
		logger:  logger,
		config:  cfg,
		journal: journal,
		tracer:  tracer,
		router:  http.NewServeMux(),
		ws:      ws,
	}
	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Recover(a.logger),
		middleware.Logging(a.logger),
		middleware.Cors(a.config.AllowedOrigins...),
	)
}

// Start serves until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info("server listening",
		slog.String("addr", a.config.Addr),
		slog.String("base path", a.config.BasePath),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
