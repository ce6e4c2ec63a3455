package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"ue-intellisense/core/utils"
	"ue-intellisense/feature/cppstandard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile cpp-standard command
	cppStandardFlag string
	dryRunReconcile bool
	backupReconcile bool
	yesConfirm      bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile IntelliSense settings with the project configuration",
}

// cppStandardReconcileCmd aligns c_cpp_properties.json with the override.
var cppStandardReconcileCmd = &cobra.Command{
	Use:   "cpp-standard",
	Short: "Align every c_cpp_properties.json cppStandard with this tool's setting",
	Long: `Compares this tool's cppStandard setting with every c_cpp_properties.json
configuration of the game and engine folders and with the cpptools
C_Cpp.default.cppStandard setting.

Reports every disagreement. When a cppStandard is configured, rewrites the
configurations that differ after confirmation.

Examples:
  # Report, then ask before writing
  reconcile cpp-standard

  # Force a standard for this run only
  reconcile cpp-standard --cpp-standard c++20

  # Back up the originals to object storage and apply without prompting
  reconcile cpp-standard --backup --yes

  # Never write
  reconcile cpp-standard --dry-run`,
	RunE: runCppStandardReconcile,
}

func init() {
	reconcileCmd.AddCommand(cppStandardReconcileCmd)

	cppStandardReconcileCmd.Flags().StringVar(&cppStandardFlag, "cpp-standard", "", "Override the configured cppStandard (an empty value defers to cpptools)")
	cppStandardReconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Force dry-run (no writes even with --yes)")
	cppStandardReconcileCmd.Flags().BoolVar(&backupReconcile, "backup", false, "Upload the original files to object storage before writing")
	cppStandardReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runCppStandardReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()
	l := rt.log

	opts := cppstandard.Options{Backup: backupReconcile}
	if cmd.Flags().Changed("cpp-standard") {
		opts.CppStandard = utils.Ptr(cppStandardFlag)
	}

	svc := rt.cppStandardService()

	// Step 1: Plan (always runs)
	plan, err := svc.Plan(ctx, opts)
	if err != nil {
		return err
	}

	// Step 2: Print report
	printReconcileReport(l, plan.Report)

	if len(plan.Report.Changes) == 0 {
		l.Info("No changes required.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if dryRunReconcile {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmWrite() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report, err := svc.Apply(ctx, plan, opts.Backup)
	if err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	l.Info("Successfully updated c_cpp_properties.json",
		zap.String("run_id", report.RunID),
		zap.Strings("saved", report.Saved),
		zap.Strings("backups", report.Backups),
	)
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, r *cppstandard.Report) {
	l.Info("Reconciliation report",
		zap.String("project", r.Project),
		zap.String("main", r.MainWorkspace),
		zap.String("engine", r.EngineWorkspace),
		zap.String("override", utils.DisplayStandard(r.Override)),
		zap.Bool("ue5", r.Special),
		zap.Int("changes", len(r.Changes)),
		zap.Int("warnings", len(r.Warnings())),
	)

	for _, c := range r.Changes {
		l.Info("Planned change",
			zap.String("workspace", c.Workspace),
			zap.String("configuration", c.Configuration),
			zap.String("from", utils.DisplayStandard(c.Before)),
			zap.String("to", utils.DisplayStandard(c.After)),
		)
	}
}

// confirmWrite prompts the user for confirmation or uses --yes flag.
func confirmWrite() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to rewrite c_cpp_properties.json: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
