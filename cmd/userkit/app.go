package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/innovativeGem/userkit/pkg/apiclient"
	"github.com/innovativeGem/userkit/pkg/i18n"
	"github.com/innovativeGem/userkit/pkg/kv"
	"github.com/innovativeGem/userkit/pkg/logger"
	"github.com/innovativeGem/userkit/pkg/redis"
	"github.com/innovativeGem/userkit/pkg/session"
)

//go:embed translations
var translationFS embed.FS

// languageKey is where the chosen UI language persists, next to the session.
const languageKey = "lang"

type app struct {
	out     io.Writer
	log     *slog.Logger
	storage kv.Store
	session *session.Store
	client  *apiclient.Client
	tr      *i18n.Translator
	locale  *i18n.Locale
}

func newApp(ctx context.Context, cfg appConfig, out io.Writer, log *slog.Logger) (*app, error) {
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(ctx, storage)
	if err != nil {
		return nil, err
	}

	adapter := i18n.NewFSAdapter(i18n.NewJSONParser(), translationFS, "translations")
	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithLogger(log))
	if err != nil {
		return nil, err
	}

	locale := i18n.NewLocale(tr.SupportedLanguages(), i18n.DefaultLanguage)
	var saved string
	if err := storage.Get(ctx, languageKey, &saved); err == nil && saved != "" {
		if err := locale.SetLanguage(saved); err != nil {
			log.WarnContext(ctx, "ignoring persisted language", logger.Error(err))
		}
	}

	a := &app{
		out:     out,
		log:     log,
		storage: storage,
		session: sess,
		tr:      tr,
		locale:  locale,
	}

	opts := []apiclient.Option{
		apiclient.WithAuthHeaderProvider(sess.AuthHeader),
		apiclient.WithLocaleProvider(locale.Language),
	}
	if cfg.ForceLogoutOn401 {
		opts = append(opts, apiclient.WithUnauthorizedHook(func(ctx context.Context) {
			if err := sess.Dispatch(ctx, session.LogoutSuccess{}); err != nil {
				log.ErrorContext(ctx, "forced logout failed", logger.Error(err))
			}
		}))
	}
	a.client, err = apiclient.New(cfg.APIBaseURL, opts...)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func openStorage(ctx context.Context, cfg appConfig) (kv.Store, error) {
	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, redis.Config{
			ConnectionURL:  cfg.RedisURL,
			RetryAttempts:  3,
			RetryInterval:  time.Second,
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return kv.NewRedisStore(client, "userkit:")
	}

	dir := cfg.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		dir = filepath.Join(base, "userkit")
	}
	return kv.NewFileStore(dir)
}

// t translates key for the active language.
func (a *app) t(key string, args ...string) string {
	return a.tr.T(a.locale.Language(), key, args...)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "signup":
		return a.cmdSignUp(ctx, rest)
	case "activate":
		return a.cmdActivate(ctx, rest)
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "users":
		return a.cmdUsers(ctx, rest)
	case "user":
		return a.cmdUser(ctx, rest)
	case "update":
		return a.cmdUpdate(ctx, rest)
	case "delete":
		return a.cmdDelete(ctx, rest)
	case "whoami":
		return a.cmdWhoAmI()
	case "lang":
		return a.cmdLang(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) usage() {
	fmt.Fprintf(a.out, `usage: userkit <command> [flags]

commands:
  signup    -username -email -password -password-repeat
  activate  <token>
  login     -email -password
  logout
  users     [-page N] [-size N]
  user      <id>
  update    <id> -username <name>
  delete    <id>
  whoami
  lang      <code>
`)
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("missing user id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", args[0])
	}
	return id, nil
}
