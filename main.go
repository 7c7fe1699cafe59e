package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/ecommerce-back-end/app/cmd"
	"github.com/Rakhulsr/ecommerce-back-end/app/configs"
	"github.com/Rakhulsr/ecommerce-back-end/app/routes"
	"github.com/Rakhulsr/ecommerce-back-end/app/utils/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {

	env, envErr := configs.LoadEnv()
	log := logger.New(env.AppEnv, env.LogLevel)
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Warn("no .env file, using process environment", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serve := func(ctx context.Context, db *gorm.DB) error {
		server := &http.Server{
			Addr:         env.Port,
			Handler:      routes.NewRouter(db, log),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server starting", zap.String("addr", server.Addr))
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	}

	if err := cmd.NewCli(env, log, serve).Run(ctx, os.Args); err != nil {
		log.Fatal("command failed", zap.Error(err))
	}

}
