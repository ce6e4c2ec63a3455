package integrity

import (
	"context"
	"fmt"

	"ue-intellisense/core/project"
	"ue-intellisense/core/storage"
	"ue-intellisense/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	project project.Config
	client  storage.Client
	bucket  string
	region  string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil when
// storage or the history database are disabled.
func NewService(projectCfg project.Config, client storage.Client, storageCfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		project: projectCfg,
		client:  client,
		bucket:  storageCfg.Bucket,
		region:  storageCfg.Region,
		logger:  logger,
		db:      db,
	}
}

// CheckWorkspace inspects the project layout.
func (s *Service) CheckWorkspace() (*checks.WorkspaceReport, error) {
	return checks.CheckWorkspace(s.project)
}

// CheckStorage inspects the backup bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is disabled")
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates whatever the report lists as missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	if s.client == nil {
		return fmt.Errorf("storage is disabled")
	}
	return checks.FixStorage(ctx, s.client, s.region, s.logger, report)
}

// CheckServer compares the history tables with their models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// FixServer migrates the history tables.
func (s *Service) FixServer() error {
	return checks.FixServer(s.db)
}
