package cmd

import (
	"fmt"

	"git-monthly/internal/repo"

	"github.com/spf13/cobra"
)

// listVerify 标志控制是否验证仓库路径的有效性。
var listVerify bool

// listCmd 列出所有已添加的仓库。
// 用法: git-monthly list [--verify]
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List added repositories",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listVerify, "verify", false, "Verify repositories on disk")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	store, err := repo.DefaultStore()
	if err != nil {
		return err
	}
	repos, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(repos) == 0 {
		fmt.Fprintln(out, "no repositories added")
		return nil
	}

	for _, p := range repos {
		// 验证模式下无效仓库标记 (invalid)
		if listVerify && !repo.IsRepo(p) {
			fmt.Fprintf(out, "%s (invalid)\n", p)
			continue
		}
		fmt.Fprintln(out, p)
	}
	return nil
}
