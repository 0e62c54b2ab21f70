// Package app wires configuration, storage, the catalog store, the query
// pipeline and the CLI into one runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/futurama-catalog/internal/catalog"
	"github.com/dmitrijs2005/futurama-catalog/internal/cli"
	"github.com/dmitrijs2005/futurama-catalog/internal/config"
	"github.com/dmitrijs2005/futurama-catalog/internal/drafts"
	"github.com/dmitrijs2005/futurama-catalog/internal/filex"
	"github.com/dmitrijs2005/futurama-catalog/internal/logging"
	"github.com/dmitrijs2005/futurama-catalog/internal/query"
	"github.com/dmitrijs2005/futurama-catalog/internal/remote"
	"github.com/dmitrijs2005/futurama-catalog/internal/storage/kv"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	closeKV  func() error
	store    *catalog.Store
	pipeline *query.Pipeline
	cli      *cli.App
}

// NewApp builds every component from c. Logs go to logOut so they do not
// interleave with the REPL on out.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(logOut, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	kvStore, closeKV, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	logger.Info(ctx, "storage ready", "backend", c.Storage)

	source := remote.NewHTTPSource(c.Endpoint, c.FetchTimeout)
	repo := drafts.NewKVRepository(kvStore, logger)
	catalogStore := catalog.New(source, repo, logger)
	pipeline := query.NewPipeline(catalogStore.Entities(), query.NewEngine(c.Locale), c.PageSize)

	return &App{
		config:   c,
		logger:   logger,
		closeKV:  closeKV,
		store:    catalogStore,
		pipeline: pipeline,
		cli:      cli.NewApp(catalogStore, pipeline, logger, in, out),
	}, nil
}

// openStorage returns the kv backend selected by c.Storage and its close
// function.
func openStorage(ctx context.Context, c *config.Config) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch c.Storage {
	case config.StorageMemory:
		return kv.NewMemoryStore(), noop, nil

	case config.StorageSQLite, config.StoragePostgres:
		dialect := kv.SQLite
		if c.Storage == config.StoragePostgres {
			dialect = kv.Postgres
		} else if err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
			return nil, nil, err
		}
		s, err := kv.OpenSQL(ctx, dialect, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.StorageS3:
		s, err := kv.NewS3Store(ctx, kv.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Prefix:       c.S3Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", c.Storage)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves the REPL until the user exits, the input ends or a termination
// signal arrives, then releases storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "endpoint", app.config.Endpoint)
	app.initSignalHandler(ctx, cancelFunc)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.cli.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		app.logger.Info(ctx, "interrupted")
	}

	app.pipeline.Close()
	if err := app.closeKV(); err != nil {
		app.logger.Error(ctx, "failed to close storage", "error", err)
	}
}
