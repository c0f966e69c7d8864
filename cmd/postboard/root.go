package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/fetch"
	"postboard/internal/logging"
	"postboard/internal/store"
	"postboard/internal/telemetry"
	"postboard/internal/ui"
	"postboard/internal/ui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags are the command-line overrides for config.Config.
type flags struct {
	baseURL string
	limit   int
	debug   bool
	cards   string
	envFile string
}

// env is everything a command needs, built once per invocation.
type env struct {
	cfg       *config.Config
	logger    *zap.Logger
	fetcher   *fetch.Fetcher
	telemetry *telemetry.Provider
	closers   []func() error
}

func (e *env) Close() error {
	var errs []error
	e.fetcher.Wait()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	errs = append(errs, e.telemetry.Shutdown(ctx))
	for _, c := range e.closers {
		errs = append(errs, c())
	}
	_ = e.logger.Sync()
	return errors.Join(errs...)
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "postboard",
		Short: "Browse posts and users, and create local posts",
		Long: `postboard is a terminal dashboard for a JSONPlaceholder-style API.

Run without arguments to start the interactive interface. Pages: Home,
About, Posts and Users. Press SPC for the command menu and ? for help.

Settings come from POSTBOARD_* environment variables (and .env);
flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL (overrides POSTBOARD_BASE_URL)")
	pf.IntVar(&f.limit, "limit", 0, "maximum posts to fetch (overrides POSTBOARD_POSTS_LIMIT)")
	pf.BoolVar(&f.debug, "debug", false, "log at debug level")
	pf.StringVar(&f.cards, "cards", "", "YAML file with featured home cards")
	pf.StringVar(&f.envFile, "env-file", "", "dotenv file to load instead of .env")

	cmd.AddCommand(newPostsCmd(&f), newUsersCmd(&f))
	return cmd
}

// loadConfig applies flags over the environment and validates the result.
func loadConfig(f flags) (*config.Config, error) {
	var files []string
	if f.envFile != "" {
		files = append(files, f.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.limit != 0 {
		cfg.PostsLimit = f.limit
	}
	if f.cards != "" {
		cfg.CardsFile = f.cards
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setup(ctx context.Context, f flags) (*env, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}

	session := logging.NewSessionID()
	logger, err := logging.New(logging.Options{
		Level:     cfg.Log.Level,
		Debug:     f.debug,
		File:      cfg.Log.File,
		SessionID: session,
	})
	if err != nil {
		return nil, err
	}

	tp, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		SessionID:   session,
	})
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		tp, _ = telemetry.Setup(ctx, telemetry.Options{})
	}

	e := &env{cfg: cfg, logger: logger, telemetry: tp}

	var backend cache.Store = cache.NewMemoryStore()
	if cfg.Cache.Type == config.CacheRedis {
		rs, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:      cfg.Cache.RedisAddr,
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			KeyPrefix: cfg.Cache.RedisPrefix,
			MaxAge:    10 * cfg.Revalidate,
		})
		if err != nil {
			logger.Warn("redis unavailable, using memory cache", zap.Error(err))
		} else {
			backend = rs
			e.closers = append(e.closers, rs.Close)
		}
	}

	e.fetcher = fetch.New(cfg.BaseURL,
		fetch.WithPaths(cfg.ItemsPath, cfg.UsersPath),
		fetch.WithLimitParam(cfg.LimitParam),
		fetch.WithRevalidateInterval(cfg.Revalidate),
		fetch.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		fetch.WithStore(backend),
		fetch.WithLogger(logger.Named("fetch")),
		fetch.WithTracer(tp.Tracer("postboard/fetch")),
	)

	logger.Info("postboard starting",
		zap.String("base_url", cfg.BaseURL),
		zap.Int("posts_limit", cfg.PostsLimit),
		zap.String("cache", cfg.Cache.Type),
		zap.Bool("tracing", tp.Enabled()),
	)
	return e, nil
}

func runTUI(ctx context.Context, f flags) error {
	e, err := setup(ctx, f)
	if err != nil {
		return err
	}
	defer e.Close()

	cards, err := config.LoadCards(e.cfg.CardsFile)
	if err != nil {
		return err
	}

	model := ui.NewAppModel(ui.Options{
		Context:    ctx,
		Source:     e.fetcher,
		Store:      store.New(),
		Cards:      toComponentCards(cards),
		PostsLimit: e.cfg.PostsLimit,
		Revalidate: e.cfg.Revalidate,
		Logger:     e.logger.Named("ui"),
	}).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func toComponentCards(cards []config.Card) []component.Card {
	out := make([]component.Card, len(cards))
	for i, c := range cards {
		out[i] = component.Card{Title: c.Title, Content: c.Content}
	}
	return out
}
