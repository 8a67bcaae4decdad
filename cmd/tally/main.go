package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/project-tally/internal/aggregation"
	corecfg "github.com/aevon-lab/project-tally/internal/core/config"
	"github.com/aevon-lab/project-tally/internal/core/storage"
	"github.com/aevon-lab/project-tally/internal/core/storage/memory"
	"github.com/aevon-lab/project-tally/internal/core/storage/postgres"
	"github.com/aevon-lab/project-tally/internal/ingestion"
	"github.com/aevon-lab/project-tally/internal/migrations"
	"github.com/aevon-lab/project-tally/internal/pivot"
	"github.com/aevon-lab/project-tally/internal/projection"
	"github.com/aevon-lab/project-tally/internal/server"
)

// stores bundles the store contracts of one backend.
type stores struct {
	events   storage.EventStore
	profiles storage.ProfileStore
	rollups  storage.RollupStore
	cursors  storage.CursorStore
	leases   storage.LeaseStore
	health   server.HealthChecker
	close    func() error
}

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger (defaults until config is loaded)
	slog.SetDefault(newLogger(os.Stdout, "text", slog.LevelInfo))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("[Main] Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.Log.Format, cfg.Log.SlogLevel()))
	slog.Info("[Main] Loaded config",
		"database", cfg.Database.Type,
		"rollup_enabled", cfg.Rollup.Enabled,
		"timezone", cfg.Rollup.Timezone)

	loc, err := cfg.Rollup.Location()
	if err != nil {
		slog.Error("[Main] Invalid rollup timezone", "value", cfg.Rollup.Timezone, "error", err)
		os.Exit(1)
	}

	// 2. Initialize Storage
	st, err := openStores(cfg)
	if err != nil {
		slog.Error("[Main] Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.close(); err != nil {
			slog.Error("[Main] Failed to close storage", "error", err)
		}
	}()

	// 3. Initialize Rollup Synchronizer
	syncer := aggregation.NewSynchronizer(st.events, st.rollups, st.cursors, aggregation.Config{
		Location:  loc,
		ChunkSize: cfg.Rollup.ChunkSize,
		LeaseTTL:  cfg.Rollup.LeaseDuration(),
	})
	if cfg.Rollup.LeaseEnabled {
		syncer.WithLeases(st.leases)
	}
	syncOpts := aggregation.SyncOptions{
		BatchSize:  cfg.Rollup.BatchSize,
		MaxBatches: cfg.Rollup.MaxBatches,
	}

	// 4. Initialize Read Paths
	reader := projection.NewService(st.rollups, loc)

	presets, err := pivot.LoadPresets(cfg.Pivot.PresetDir)
	if err != nil {
		slog.Error("[Main] Failed to load pivot presets", "dir", cfg.Pivot.PresetDir, "error", err)
		os.Exit(1)
	}
	engine := pivot.NewEngine(st.events, st.profiles, pivot.Config{
		PageSize:          cfg.Pivot.PageSize,
		MaxDocs:           cfg.Pivot.MaxDocs,
		LookupChunkSize:   cfg.Pivot.LookupChunkSize,
		LookupConcurrency: cfg.Pivot.LookupConcurrency,
		DefaultTopN:       cfg.Pivot.DefaultTopN,
		Location:          loc,
	})
	slog.Info("[Main] Pivot engine initialized",
		"presets", len(presets.List()),
		"max_docs", cfg.Pivot.MaxDocs)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), st.health, cfg.Database.Type, cfg.Server.Mode)
	ingestion.NewService(st.events, cfg.Server.MaxBodySizeMB).RegisterRoutes(srv.Engine)
	aggregation.NewHandler(syncer, syncOpts).RegisterRoutes(srv.Engine)
	reader.RegisterRoutes(srv.Engine)
	pivot.NewHandler(engine, presets).RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	schedulerDone := make(chan struct{})
	if cfg.Rollup.Enabled {
		scheduler := aggregation.NewScheduler(cfg.Rollup.Interval(), syncer, syncOpts)
		go func() {
			defer close(schedulerDone)
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("[Main] Scheduler stopped with error", "error", err)
			}
		}()
	} else {
		close(schedulerDone)
		slog.Info("[Main] Rollup scheduler disabled by config")
	}

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("[Main] Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("[Main] Server stopped with error", "error", err)
		cancel()
	}

	// The scheduler's final sync must finish before storage closes.
	<-schedulerDone
	slog.Info("[Main] Shutdown complete")
}

func openStores(cfg *corecfg.Config) (*stores, error) {
	switch cfg.Database.Type {
	case "memory":
		slog.Warn("[Main] Using in-memory storage; data is lost on exit")
		store := memory.NewStore().WithLookupKeys(cfg.Pivot.LookupChunkSize)
		return &stores{
			events:   store,
			profiles: store,
			rollups:  store,
			cursors:  store,
			leases:   store,
			health:   store,
			close:    func() error { return nil },
		}, nil

	case "postgres":
		db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			return nil, err
		}

		if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		events, err := postgres.NewAdapter(db)
		if err != nil {
			db.Close()
			return nil, err
		}

		rollups := postgres.NewRollupAdapter(db)
		return &stores{
			events:   events,
			profiles: postgres.NewProfileAdapter(db, cfg.Pivot.LookupChunkSize),
			rollups:  rollups,
			cursors:  rollups,
			leases:   rollups,
			health:   events,
			close:    events.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
