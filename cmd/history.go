package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"ue-intellisense/core/output"
	"ue-intellisense/core/utils"
	"ue-intellisense/feature/history"

	"github.com/spf13/cobra"
)

var (
	historyProject string
	historyLimit   int
	historyOutput  string
)

// historyCmd lists the applied reconciliations recorded in the database.
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List applied cppStandard reconciliations",
	Long: `Lists the reconciliations recorded in the history database, newest first.
With a run id, shows the configurations that run rewrote.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(historyOutput)
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		if rt.history == nil {
			return fmt.Errorf("history is disabled, set DATABASE_ENABLED=true")
		}

		ctx := context.Background()
		format = output.DetectFormat(string(format))
		formatter := output.NewFormatter(format)

		if len(args) == 1 {
			run, err := rt.history.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if format == output.FormatTable {
				return formatter.Format(os.Stdout, runDetail{run})
			}
			return formatter.Format(os.Stdout, run)
		}

		runs, err := rt.history.List(ctx, historyProject, historyLimit)
		if err != nil {
			return err
		}
		return formatter.Format(os.Stdout, runsTable(runs))
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyProject, "project", "", "Only list runs of this project")
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Maximum number of runs")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output format (table, json, yaml)")
	RootCmd.AddCommand(historyCmd)
}

type runList []history.Run

func (r runList) TableData() output.Data {
	data := output.Data{Headers: []string{"Run", "Project", "Override", "Changes", "Warnings", "Backed Up", "Created"}}
	for _, run := range r {
		data.Rows = append(data.Rows, []string{
			run.ID,
			run.Project,
			utils.DisplayStandard(run.Override),
			strconv.Itoa(run.ChangeCount),
			strconv.Itoa(run.WarningCount),
			strconv.FormatBool(run.BackedUp),
			run.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return data
}

// runsTable keeps JSON and YAML output a plain list.
func runsTable(runs []history.Run) any {
	if runs == nil {
		runs = []history.Run{}
	}
	return runList(runs)
}

// runDetail lays out the changes of a single run.
type runDetail struct {
	run *history.Run
}

func (r runDetail) TableData() output.Data {
	data := output.Data{Headers: []string{"Workspace", "Configuration", "Before", "After"}}
	for _, c := range r.run.Changes {
		data.Rows = append(data.Rows, []string{
			c.Workspace,
			c.Configuration,
			utils.DisplayStandard(c.Before),
			utils.DisplayStandard(c.After),
		})
	}
	return data
}
