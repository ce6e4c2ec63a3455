package cmd

import (
	"context"

	"ue-intellisense/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the project and the optional backends",
	Long: `Checks the workspace layout, the backup bucket and the history schema.
Backends that are disabled are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), true, true, true)
	},
}

// workspaceCmd represents the integrity workspace command
var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Check the .code-workspace folders and their c_cpp_properties.json files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), true, false, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the backup bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), false, true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check and fix the history database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(workspaceCmd, storageCmd, serverCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
	serverCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the history tables")
}

func runIntegrityChecks(ctx context.Context, runWorkspace, runStorage, runServer bool) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()
	logg := rt.log

	svc := integrity.NewService(rt.cfg.Project, rt.store, rt.cfg.Storage, logg, rt.db)
	only := runWorkspace != runStorage || runStorage != runServer

	if runWorkspace {
		logg.Info("Checking workspace layout...", zap.String("root", rt.cfg.Project.Root))
		report, err := svc.CheckWorkspace()
		if err != nil {
			return err
		}

		if report.Healthy {
			logg.Info("Workspace is intact.",
				zap.String("main", report.MainWorkspace),
				zap.String("engine", report.EngineWorkspace),
			)
		} else {
			for _, issue := range report.Issues {
				logg.Warn("Workspace issue",
					zap.String("workspace", issue.Workspace),
					zap.String("configuration", issue.Configuration),
					zap.String("problem", issue.Problem),
				)
			}
		}
	}

	if runStorage {
		if rt.store == nil {
			logg.Info("Storage is disabled, skipping bucket check.")
		} else {
			logg.Info("Checking backup bucket...", zap.String("bucket", rt.cfg.Storage.Bucket))
			report, err := svc.CheckStorage(ctx)
			if err != nil {
				return err
			}

			if report.Healthy() {
				logg.Info("Bucket is intact.")
			} else {
				logg.Warn("Bucket is incomplete",
					zap.Bool("bucket_missing", report.BucketMissing),
					zap.Strings("missing_folders", report.MissingFolders),
				)

				if only && fixFlag {
					logg.Info("Fixing backup bucket...")
					if err := svc.FixStorage(ctx, report); err != nil {
						return err
					}
					logg.Info("Bucket fixed successfully.")
				} else if only {
					logg.Info("Run with --fix to create what is missing.")
				}
			}
		}
	}

	if runServer {
		if rt.db == nil {
			logg.Info("History database is disabled, skipping schema check.")
			return nil
		}

		logg.Info("Checking history schema integrity...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}

		if report.Matched {
			logg.Info("History schema matches expected definition.")
			return nil
		}

		logg.Warn("History schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if tblReport.Missing {
				logg.Warn("Missing table", zap.String("table", table))
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}

		if only && fixFlag {
			logg.Info("Migrating history tables...")
			if err := svc.FixServer(); err != nil {
				return err
			}
			logg.Info("History schema fixed successfully.")
		} else if only {
			logg.Info("Run with --fix to migrate the history tables.")
		}
	}

	return nil
}
