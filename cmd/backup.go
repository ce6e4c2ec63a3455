package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"ue-intellisense/core/backup"
	"ue-intellisense/core/output"
	"ue-intellisense/core/project"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backupOutput string
	pruneKeep    int
)

// backupCmd is the parent command for the object storage backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage c_cpp_properties.json backups in object storage",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the backups of the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(backupOutput)
		if err != nil {
			return err
		}
		return withBackups(func(ctx context.Context, rt *runtime, p *project.Project) error {
			objects, err := rt.backups.List(ctx, p.Name())
			if err != nil {
				return err
			}
			if objects == nil {
				objects = []backup.Object{}
			}
			return output.NewFormatter(output.DetectFormat(string(format))).Format(os.Stdout, objectList(objects))
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <run-id>",
	Short: "Write the files backed up by a run back to disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackups(func(ctx context.Context, rt *runtime, p *project.Project) error {
			restored, err := rt.backups.Restore(ctx, p, args[0])
			if err != nil {
				return err
			}
			rt.log.Info("Backup restored", zap.String("run_id", args[0]), zap.Strings("files", restored))
			return nil
		})
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pruneKeep < 0 {
			return fmt.Errorf("--keep must not be negative")
		}
		return withBackups(func(ctx context.Context, rt *runtime, p *project.Project) error {
			removed, err := rt.backups.Prune(ctx, p.Name(), pruneKeep)
			if err != nil {
				return err
			}
			rt.log.Info("Backups pruned", zap.Int("kept_runs", pruneKeep), zap.Int("removed", len(removed)))
			return nil
		})
	},
}

func init() {
	backupListCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "Output format (table, json, yaml)")
	backupPruneCmd.Flags().IntVar(&pruneKeep, "keep", 5, "Number of most recent runs to keep")

	backupCmd.AddCommand(backupListCmd, backupRestoreCmd, backupPruneCmd)
	RootCmd.AddCommand(backupCmd)
}

// withBackups builds the runtime, opens the project and hands both to fn.
// It fails when storage is disabled.
func withBackups(fn func(ctx context.Context, rt *runtime, p *project.Project) error) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	if rt.backups == nil {
		return fmt.Errorf("storage is disabled, set STORAGE_ENABLED=true")
	}

	p, err := project.Open(rt.cfg.Project)
	if err != nil {
		return err
	}
	return fn(context.Background(), rt, p)
}

type objectList []backup.Object

func (o objectList) TableData() output.Data {
	data := output.Data{Headers: []string{"Run", "Workspace", "Size", "Modified"}}
	for _, obj := range o {
		data.Rows = append(data.Rows, []string{
			obj.RunID,
			obj.Workspace,
			strconv.FormatInt(obj.Size, 10),
			obj.LastModified.Format("2006-01-02 15:04:05"),
		})
	}
	return data
}
