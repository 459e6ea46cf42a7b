package cmd

import (
	"os"

	"git-monthly/internal/logging"

	"github.com/spf13/cobra"
)

// 全局日志标志
var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:          "git-monthly",
	Short:        "Monthly commit bar chart from local repositories",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Output: cmd.ErrOrStderr(),
		})
	},
	RunE: runChart,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: trace/debug/info/warn/error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console/json")
}
