package cppstandard

import (
	"context"
	"fmt"

	"ue-intellisense/core/logger"
	"ue-intellisense/core/project"
	"ue-intellisense/core/reconcile"
	"ue-intellisense/feature/history"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// HistoryStore persists applied runs.
type HistoryStore interface {
	Record(ctx context.Context, run *history.Run) error
}

// BackupStore keeps the original files before they are rewritten.
type BackupStore interface {
	Upload(ctx context.Context, runID, name string, pending []project.PendingWrite) ([]string, error)
}

// Options tune a single inspection or fix.
type Options struct {
	// CppStandard replaces the configured override when non-nil.
	CppStandard *string `json:"cpp_standard"`
	// Backup uploads the original files before saving.
	Backup bool `json:"backup"`
}

// Plan is a reconciled but unsaved project.
type Plan struct {
	Report  *Report
	project *project.Project
}

// Pending returns the files Apply would write.
func (p *Plan) Pending() ([]project.PendingWrite, error) {
	return p.project.Pending()
}

// Service runs the cppStandard reconciliation against the configured project.
type Service struct {
	projectCfg   project.Config
	reconcileCfg reconcile.Config
	history      HistoryStore
	backups      BackupStore
	logger       *zap.Logger
	group        singleflight.Group
}

// NewService creates a new service. history and backups may be nil.
func NewService(projectCfg project.Config, reconcileCfg reconcile.Config, history HistoryStore, backups BackupStore, logger *zap.Logger) *Service {
	return &Service{
		projectCfg:   projectCfg,
		reconcileCfg: reconcileCfg,
		history:      history,
		backups:      backups,
		logger:       logger,
	}
}

// Plan opens the project and reconciles it in memory.
func (s *Service) Plan(ctx context.Context, opts Options) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := s.projectCfg
	if opts.CppStandard != nil {
		cfg.CppStandard = opts.CppStandard
	}

	p, err := project.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID), zap.String("project", p.Name()))

	rec := &reconcile.Recorder{}
	diag := reconcile.Tee(rec, logger.NewDiagnostics(l, "cppstandard"))
	reconcile.NewStandardReconciler(s.reconcileCfg, diag).Reconcile(p)

	var override *string
	if v, ok := p.ExtensionCppStandard(); ok {
		override = &v
	}

	return &Plan{
		Report:  buildReport(runID, p, override, rec),
		project: p,
	}, nil
}

// Apply writes a plan to disk, backing up first when asked, and records it
// in the history. A plan without changes is returned untouched.
func (s *Service) Apply(ctx context.Context, plan *Plan, backup bool) (*Report, error) {
	r := plan.Report
	if len(r.Changes) == 0 {
		return r, nil
	}
	l := s.logger.With(zap.String("run_id", r.RunID), zap.String("project", r.Project))

	if backup {
		if s.backups == nil {
			return nil, fmt.Errorf("backup requested but storage is disabled")
		}
		pending, err := plan.project.Pending()
		if err != nil {
			return nil, fmt.Errorf("failed to render changes: %w", err)
		}
		keys, err := s.backups.Upload(ctx, r.RunID, r.Project, pending)
		if err != nil {
			return nil, fmt.Errorf("failed to back up c_cpp_properties.json: %w", err)
		}
		r.Backups = keys
	}

	saved, err := plan.project.Save()
	r.Saved = saved
	if err != nil {
		return nil, fmt.Errorf("failed to save c_cpp_properties.json: %w", err)
	}
	r.Applied = true
	l.Info("Applied cppStandard changes", zap.Int("changes", len(r.Changes)), zap.Strings("saved", saved))

	if s.history != nil {
		if err := s.history.Record(ctx, toRun(r)); err != nil {
			// The files are already written; history is best effort.
			l.Warn("Failed to record run history", zap.Error(err))
		}
	}
	return r, nil
}

// Inspect reconciles the project without writing anything.
func (s *Service) Inspect(ctx context.Context, opts Options) (*Report, error) {
	plan, err := s.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	return plan.Report, nil
}

// Fix reconciles and saves the project. Concurrent fixes of the same project
// with the same override share one run.
func (s *Service) Fix(ctx context.Context, opts Options) (*Report, error) {
	key := fmt.Sprintf("%s|%v|%t", s.projectCfg.Root, deref(opts.CppStandard), opts.Backup)
	v, err, _ := s.group.Do(key, func() (any, error) {
		plan, err := s.Plan(ctx, opts)
		if err != nil {
			return nil, err
		}
		return s.Apply(ctx, plan, opts.Backup)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

func toRun(r *Report) *history.Run {
	run := &history.Run{
		ID:           r.RunID,
		Project:      r.Project,
		Root:         r.Root,
		Override:     r.Override,
		Special:      r.Special,
		ChangeCount:  len(r.Changes),
		WarningCount: len(r.Warnings()),
		SavedCount:   len(r.Saved),
		BackedUp:     len(r.Backups) > 0,
	}
	for _, c := range r.Changes {
		run.Changes = append(run.Changes, history.RunChange{
			Workspace:     c.Workspace,
			Configuration: c.Configuration,
			Before:        c.Before,
			After:         c.After,
		})
	}
	return run
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
