// Command userkit is a terminal front-end for the user-account service:
// signup, activation, login/logout, paged user listing, and profile
// management. The session survives between invocations through the
// configured key-value store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/innovativeGem/userkit/pkg/config"
	"github.com/innovativeGem/userkit/pkg/logger"
)

type appConfig struct {
	APIBaseURL string     `env:"USERKIT_API_URL" envDefault:"http://localhost:8080/api/1.0"`
	DataDir    string     `env:"USERKIT_DATA_DIR"`
	RedisURL   string     `env:"USERKIT_REDIS_URL"`
	LogLevel   slog.Level `env:"USERKIT_LOG_LEVEL" envDefault:"WARN"`

	// ForceLogoutOn401 drops the local session when the backend rejects its
	// token. Off by default: a flaky proxy 401 should not log anyone out.
	ForceLogoutOn401 bool `env:"USERKIT_FORCE_LOGOUT_ON_401" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "userkit:", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(os.Stderr),
	)

	app, err := newApp(ctx, cfg, os.Stdout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "userkit:", err)
		os.Exit(1)
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "userkit:", err)
		os.Exit(1)
	}
}
