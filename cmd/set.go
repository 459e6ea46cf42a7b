package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"git-monthly/internal/config"

	"github.com/spf13/cobra"
)

// setCmd 查看或修改默认配置。
//  1. git-monthly set - 显示当前配置
//  2. git-monthly set <key> <value> - 设置配置项
var setCmd = newSetCmd()

func init() {
	rootCmd.AddCommand(setCmd)
}

// newSetCmd 构建 set 命令，便于在测试中复用。
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set or show default configuration",
		Long: `View or modify default configuration (email, months, unscaled, width).

Without arguments, displays the current configuration.
With key/value, sets the specified option.`,
		Example: `  git-monthly set
  git-monthly set email me@work.com,me@home.com
  git-monthly set months 24
  git-monthly set unscaled true
  git-monthly set width 40`,
		Args: validateSetArgs,
		RunE: runSet,
	}
}

// validateSetArgs 校验参数个数：0 个（显示）或 2 个（设置）。
func validateSetArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 2 {
		return nil
	}
	return fmt.Errorf("usage: git-monthly set [email|months|unscaled|width] <value>")
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		emails := strings.Join(cfg.Emails, ",")
		if emails == "" {
			emails = "(none)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "email: %s\nmonths: %d\nunscaled: %t\nwidth: %d\n",
			emails, cfg.Months, cfg.Unscaled, cfg.Width)
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(args[0]))
	val := strings.TrimSpace(args[1])

	switch key {
	case "email", "emails":
		cfg.Emails = config.SplitEmails(val)
	case "months":
		months, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid months %q: %w", val, err)
		}
		cfg.Months = months
	case "unscaled":
		unscaled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid unscaled %q: %w", val, err)
		}
		cfg.Unscaled = unscaled
	case "width":
		width, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", val, err)
		}
		cfg.Width = width
	default:
		return fmt.Errorf("unsupported key %q (supported: email, months, unscaled, width)", args[0])
	}

	if issues := config.Validate(cfg); len(issues) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
	}
	return config.Save(*cfg)
}
