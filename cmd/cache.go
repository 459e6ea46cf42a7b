package cmd

import (
	"fmt"

	"git-monthly/internal/cache"
	"git-monthly/internal/config"

	"github.com/spf13/cobra"
)

// cacheCmd 管理提交缓存。
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached commit lists",
	Args:  cobra.NoArgs,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached commit lists",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	dir, err := config.CacheDir()
	if err != nil {
		return err
	}

	removed, err := cache.New(dir).Clear()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cache file(s)\n", removed)
	return nil
}
