// Command stubd runs the in-memory development backend for the userkit CLI.
// Accounts live only as long as the process; activation tokens are printed
// to the log instead of being emailed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/innovativeGem/userkit/pkg/config"
	"github.com/innovativeGem/userkit/pkg/httpserver"
	"github.com/innovativeGem/userkit/pkg/logger"
	"github.com/innovativeGem/userkit/pkg/stubserver"
)

type stubdConfig struct {
	HTTP      httpserver.Config
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
	JWTSecret string     `env:"JWT_SECRET"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg stubdConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "stubd:", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(slog.String("service", "stubd")),
	)

	opts := []stubserver.Option{stubserver.WithLogger(log)}
	if cfg.JWTSecret != "" {
		opts = append(opts, stubserver.WithJWTSecret([]byte(cfg.JWTSecret)))
	}
	backend := stubserver.New(opts...)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, backend.Router()); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		os.Exit(1)
	}
}
