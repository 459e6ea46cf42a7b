package cmd

import (
	"fmt"
	"io"

	"git-monthly/internal/cache"
	"git-monthly/internal/config"
	"git-monthly/internal/repo"

	"github.com/spf13/cobra"
)

// doctorCmd 一站式诊断环境和配置问题。
// 有错误时返回非零退出码，仅警告时返回 0。
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment and configuration issues",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor 按顺序执行诊断检查：
//  1. 配置合法性（months、width、email 格式）
//  2. 仓库路径有效性（路径存在且包含 .git）
//  3. HEAD 可达性
//  4. 读权限（.git/HEAD 可读）
//  5. 性能预警（仓库数量 >50 或 .git 体积 >1GB）
//  6. 缓存占用
func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Running diagnostics...")

	hasError := false

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		hasError = true
		fmt.Fprintf(out, "❌ Config: %v\n", cfgErr)
	} else if issues := config.Validate(cfg); len(issues) == 0 {
		fmt.Fprintln(out, "✅ Config: OK")
	} else {
		fmt.Fprintf(out, "⚠️  Config: %d issue(s)\n", len(issues))
		printLines(out, issues)
	}

	var validRepos, invalidRepos []string
	store, err := repo.DefaultStore()
	if err == nil {
		validRepos, invalidRepos, err = store.Verify()
	}
	if err != nil {
		hasError = true
		fmt.Fprintf(out, "❌ Repositories: %v\n", err)
	} else {
		total := len(validRepos) + len(invalidRepos)
		switch {
		case total == 0:
			fmt.Fprintln(out, "⚠️  Repositories: no repositories added")
		case len(invalidRepos) == 0:
			fmt.Fprintf(out, "✅ Repositories: %d/%d valid\n", len(validRepos), total)
		default:
			hasError = true
			fmt.Fprintf(out, "❌ Repositories: %d/%d valid, %d invalid\n", len(validRepos), total, len(invalidRepos))
			printLines(out, invalidRepos)
		}
	}

	if !checkRepos(out, "HEAD", validRepos, repo.CheckHead) {
		hasError = true
	}
	if !checkRepos(out, "Permissions", validRepos, repo.CheckPermissions) {
		hasError = true
	}

	performanceWarnings := repo.CheckPerformance(validRepos)
	if len(performanceWarnings) == 0 {
		fmt.Fprintln(out, "✅ Performance: OK")
	} else {
		fmt.Fprintf(out, "⚠️  Performance: %d warning(s)\n", len(performanceWarnings))
		printLines(out, performanceWarnings)
	}

	if cacheDir, err := config.CacheDir(); err == nil {
		files, size, err := cache.New(cacheDir).Size()
		if err != nil {
			fmt.Fprintf(out, "⚠️  Cache: %v\n", err)
		} else {
			fmt.Fprintf(out, "✅ Cache: %d file(s), %.1f KB\n", files, float64(size)/1024)
		}
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// checkRepos 对每个有效仓库执行 check，输出结果；存在失败时返回 false。
func checkRepos(out io.Writer, name string, repos []string, check func(string) error) bool {
	if len(repos) == 0 {
		fmt.Fprintf(out, "⚠️  %s: skipped (no valid repositories)\n", name)
		return true
	}

	var failures []string
	for _, repoPath := range repos {
		if err := check(repoPath); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", repoPath, err))
		}
	}
	if len(failures) == 0 {
		fmt.Fprintf(out, "✅ %s: OK\n", name)
		return true
	}
	fmt.Fprintf(out, "❌ %s: %d issue(s)\n", name, len(failures))
	printLines(out, failures)
	return false
}

// printLines 将字符串列表以缩进列表形式输出。
func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "   - %s\n", line)
	}
}
