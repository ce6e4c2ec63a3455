package cmd

import (
	"fmt"
	"os"

	"ue-intellisense/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configDir is where the .env file is looked up.
	configDir string
	// projectRoot overrides PROJECT_ROOT for a single invocation.
	projectRoot string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ue-intellisense",
	Short: "Keep VS Code IntelliSense in line with Unreal Engine",
	Long: `ue-intellisense keeps the cppStandard of an Unreal project's
c_cpp_properties.json files consistent with the standard configured for this
tool, and reports settings that disagree with what the engine expects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
	RootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", "Project root (overrides PROJECT_ROOT)")
}
