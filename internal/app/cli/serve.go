package cli

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"orderflow/internal/app"
	"orderflow/internal/app/config"
	httpapi "orderflow/internal/app/http"
	"orderflow/internal/app/http/handler"
	"orderflow/internal/domain/order"
	"orderflow/internal/infrastructure/db/pg"
)

func newServeCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), rt)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Int("workers", 0, "async workers, 0 runs every listener inline")
	_ = rt.v.BindPFlag(config.KeyHTTPAddr, cmd.Flags().Lookup("addr"))
	_ = rt.v.BindPFlag(config.KeyAsyncWorkers, cmd.Flags().Lookup("workers"))
	return cmd
}

func serve(ctx context.Context, rt *runtime) error {
	cfg, log := rt.cfg, rt.log
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := migrateUp(db, cfg.MigrationsDir); err != nil {
		return err
	}

	pool := app.NewPool(cfg, log)
	events, err := app.NewDispatcher(cfg, log, pool)
	if err != nil {
		return err
	}

	orderSvc := order.NewService(pg.NewTxManager(db), pg.NewOrderRepository(db), events, log)
	router := httpapi.NewRouter(handler.New(orderSvc, events, log), log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if pool != nil {
			err = errors.Join(err, pool.Shutdown(shutdownCtx))
		}
		return err
	})

	return g.Wait()
}
