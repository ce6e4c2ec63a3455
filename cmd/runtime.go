package cmd

import (
	"fmt"

	"ue-intellisense/core/backup"
	"ue-intellisense/core/config"
	"ue-intellisense/core/database"
	"ue-intellisense/core/logger"
	"ue-intellisense/core/storage"
	"ue-intellisense/feature/cppstandard"
	"ue-intellisense/feature/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command builds from the configuration.
// Optional collaborators are nil when disabled or unreachable.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	store   storage.Client
	history *history.Repository
	backups *backup.Uploader
}

// newRuntime loads configuration and connects the optional backends.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if projectRoot != "" {
		cfg.Project.Root = projectRoot
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: l}

	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Optional database connection failed, history disabled", zap.Error(err))
		} else {
			rt.db = conn
			rt.history = history.NewRepository(conn)
			if err := rt.history.Migrate(); err != nil {
				l.Warn("History migration failed", zap.Error(err))
			}
			l.Debug("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			l.Warn("Failed to create storage client, backups disabled", zap.Error(err))
		} else {
			rt.store = client
			rt.backups = backup.NewUploader(client, cfg.Storage.Bucket, l)
		}
	}

	return rt, nil
}

// cppStandardService wires the reconciliation service to the enabled backends.
func (rt *runtime) cppStandardService() *cppstandard.Service {
	// Typed nils must not leak into the interfaces.
	var h cppstandard.HistoryStore
	if rt.history != nil {
		h = rt.history
	}
	var b cppstandard.BackupStore
	if rt.backups != nil {
		b = rt.backups
	}
	return cppstandard.NewService(rt.cfg.Project, rt.cfg.Reconcile, h, b, rt.log)
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
