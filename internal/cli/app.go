package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/interpretive-systems/nxtwatch/internal/auth"
	"github.com/interpretive-systems/nxtwatch/internal/config"
	"github.com/interpretive-systems/nxtwatch/internal/logging"
	"github.com/interpretive-systems/nxtwatch/internal/store"
	"github.com/interpretive-systems/nxtwatch/internal/videos"
)

const envTokenName = auth.EnvToken

// app holds what every subcommand needs, built from the persistent flags.
type app struct {
	cfg         *config.Config
	log         *zap.Logger
	token       string
	tokenSource auth.Source
	store       *store.Store
}

func newApp(cmd *cobra.Command) (*app, error) {
	root := cmd.Root()
	cfg, err := config.Load(mustGetStringFlag(root, "config"))
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging, mustGetBoolFlag(root, "verbose"))
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	token, src, err := auth.Resolve(mustGetStringFlag(root, "token"), cfg.Auth.TokenFile)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Debug("configuration loaded",
		zap.String("api", cfg.API.BaseURL),
		zap.String("token_source", string(src)),
	)

	return &app{cfg: cfg, log: log, token: token, tokenSource: src}, nil
}

// openStore opens the sqlite database on first use.
func (a *app) openStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	st, err := store.Open(a.cfg.Store.Path, a.log)
	if err != nil {
		return nil, err
	}
	a.store = st
	if v, err := st.SchemaVersion(); err == nil {
		a.log.Debug("store opened", zap.String("path", a.cfg.Store.Path), zap.Int("schema_version", v))
	}
	return st, nil
}

// client builds the videos API client. Without a token requests go out
// unauthenticated and the API answers 401.
func (a *app) client() (*videos.Client, error) {
	timeout, err := a.cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	ttl, err := a.cfg.CacheTTL()
	if err != nil {
		return nil, err
	}
	opts := videos.Options{
		BaseURL:   a.cfg.API.BaseURL,
		Timeout:   timeout,
		CacheTTL:  ttl,
		CacheSize: a.cfg.API.CacheSize,
		Logger:    a.log,
	}
	if a.token != "" {
		opts.TokenSource = auth.TokenSource(a.token)
	} else {
		a.log.Warn("no API token configured")
	}
	return videos.New(opts), nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("close store", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
