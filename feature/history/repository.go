package history

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DefaultLimit caps List when the caller passes no limit.
const DefaultLimit = 20

// ErrRunNotFound is returned by Get for unknown ids.
var ErrRunNotFound = errors.New("run not found")

// Repository stores reconciliation runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Record inserts a run and its changes in one transaction.
func (r *Repository) Record(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the latest runs, newest first. An empty project lists every project.
func (r *Repository) List(ctx context.Context, project string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := r.db.WithContext(ctx).Preload("Changes").Order("created_at DESC").Limit(limit)
	if project != "" {
		q = q.Where("project = ?", project)
	}

	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run with its changes.
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).Preload("Changes").Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}
