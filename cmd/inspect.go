package cmd

import (
	"context"
	"os"

	"ue-intellisense/core/output"
	"ue-intellisense/core/utils"
	"ue-intellisense/feature/cppstandard"

	"github.com/spf13/cobra"
)

var (
	outputFormat       string
	inspectCppStandard string
)

// inspectCmd prints the cppStandard of every configuration without writing.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the cppStandard of every c_cpp_properties.json configuration",
	Long: `Runs the reconciliation in memory and prints, per workspace and
configuration, the current cppStandard, the value a fix would write and the
cpptools setting. Nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		var opts cppstandard.Options
		if cmd.Flags().Changed("cpp-standard") {
			opts.CppStandard = utils.Ptr(inspectCppStandard)
		}

		report, err := rt.cppStandardService().Inspect(context.Background(), opts)
		if err != nil {
			return err
		}

		format = output.DetectFormat(string(format))
		return output.NewFormatter(format).Format(os.Stdout, report)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (table, json, yaml)")
	inspectCmd.Flags().StringVar(&inspectCppStandard, "cpp-standard", "", "Override the configured cppStandard")
	RootCmd.AddCommand(inspectCmd)
}
