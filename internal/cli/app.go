// Package cli wires the icon cache for the favicache command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/repository"
	"github.com/bnema/favicache/internal/infrastructure/cache"
	"github.com/bnema/favicache/internal/infrastructure/config"
	"github.com/bnema/favicache/internal/infrastructure/favicon"
	"github.com/bnema/favicache/internal/infrastructure/metrics"
	"github.com/bnema/favicache/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/favicache/internal/logging"
)

// shutdownTimeout bounds the final flush on Close.
const shutdownTimeout = 10 * time.Second

// Options configure NewApp.
type Options struct {
	// ConfigFile overrides the default config location.
	ConfigFile string
	// MetricsFile, when set, receives a Prometheus text dump on Close.
	MetricsFile string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	Icons    *usecase.ManageIconsUseCase
	IconRepo repository.IconRepository
	Codec    *favicon.Codec
	Registry *prometheus.Registry

	db          *sqlite.LazyDB
	autosaver   *favicon.Autosaver
	writes      *favicon.WriteQueue
	metricsFile string
	privateMode atomic.Bool

	closeOnce sync.Once
	closeErr  error

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the icon cache.
// The database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	registry := prometheus.NewRegistry()
	iconMetrics, err := metrics.NewIconMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	var iconRepo repository.IconRepository = sqlite.NewLazyIconRepository(db)
	if cfg.Favicon.LookupCacheBytes > 0 {
		iconRepo = cache.NewIconRepository(iconRepo, cfg.Favicon.LookupCacheBytes)
	}

	autosaver := favicon.NewAutosaver(cfg.Favicon.Autosave.Delay(), cfg.Favicon.Autosave.MaxDelay())
	writes := favicon.NewWriteQueue(ctx, cfg.Favicon.WriteQueueSize)
	writes.OnDrop(iconMetrics.WriteDropped)

	codec := favicon.NewCodec()
	placeholder := favicon.NewPlaceholder(codec)

	icons := usecase.NewManageIconsUseCase(iconRepo, autosaver, writes, placeholder, cfg.Favicon.IgnoredSchemes)
	icons.SetMetrics(iconMetrics)

	autosaver.Start(logging.WithComponent(ctx, "autosaver"))

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Icons:         icons,
		IconRepo:      iconRepo,
		Codec:         codec,
		Registry:      registry,
		db:            db,
		autosaver:     autosaver,
		writes:        writes,
		metricsFile:   opts.MetricsFile,
		ctx:           ctx,
	}
	app.privateMode.Store(cfg.Privacy.PrivateMode)

	logger.Debug().
		Str("config", mgr.ConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("favicache initialized")

	return app, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// PrivateMode reports whether recording is currently disabled by config.
func (a *App) PrivateMode() bool {
	return a.privateMode.Load()
}

// SchemaVersion returns the applied migration version of the icon database,
// opening it if needed.
func (a *App) SchemaVersion() (int64, error) {
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return 0, err
	}
	return sqlite.SchemaVersion(a.ctx, db)
}

// WatchConfig follows config file edits. Only privacy.private_mode
// takes effect without a restart.
func (a *App) WatchConfig() {
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		if a.privateMode.Swap(cfg.Privacy.PrivateMode) != cfg.Privacy.PrivateMode {
			logging.FromContext(a.ctx).Info().
				Bool("private_mode", cfg.Privacy.PrivateMode).
				Msg("private mode changed")
		}
	})
	a.ConfigManager.Watch()
}

// Close flushes pending icons, waits for them to be stored and releases
// the database. The metrics file, if any, is written last.
// Only the first call does any work.
func (a *App) Close() error {
	a.closeOnce.Do(func() { a.closeErr = a.close() })
	return a.closeErr
}

func (a *App) close() error {
	ctx, cancel := context.WithTimeout(a.ctx, shutdownTimeout)
	defer cancel()

	var errs []error

	a.autosaver.Stop(ctx)
	if err := a.Icons.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	a.writes.Close()

	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}

	if a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, a.Registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}
