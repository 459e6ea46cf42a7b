package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git-monthly/internal/activity"
	"git-monthly/internal/chart"
	"git-monthly/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// 命令行标志变量
var (
	chartEmails    []string // 高亮邮箱
	chartMonths    int      // 统计月份数，-1 使用配置值
	chartUnscaled  bool     // 使用原始计数作为柱长
	chartWidth     int      // 缩放模式下的柱宽，0 使用配置值
	chartFormat    string   // 输出格式：table/json/csv
	chartColor     string   // 颜色：auto/always/never
	chartNoSummary bool     // 隐藏摘要（仅 table 输出）
	chartRefresh   bool     // 忽略提交缓存
)

// chartCmd 实现 chart 子命令，按月显示提交柱状图。
// 这是默认命令，不带子命令运行 git-monthly 时也会执行。
// 用法: git-monthly chart [-e email] [-m months] [--unscaled] [-f format]
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show monthly commit bar chart",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	addChartFlags(rootCmd)
	addChartFlags(chartCmd)

	rootCmd.AddCommand(chartCmd)
}

// addChartFlags 为根命令和 chart 子命令注册相同的标志。
func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&chartEmails, "email", "e", nil, "Highlight commits by this email (repeatable)")
	cmd.Flags().IntVarP(&chartMonths, "months", "m", -1, "Months to include, 0 for full history (default: config value)")
	cmd.Flags().BoolVar(&chartUnscaled, "unscaled", false, "Use raw commit counts as bar lengths (default: config value)")
	cmd.Flags().IntVar(&chartWidth, "width", 0, "Bar width in scaled mode (default: config value)")
	cmd.Flags().StringVarP(&chartFormat, "format", "f", "table", "Output format: table/json/csv")
	cmd.Flags().StringVar(&chartColor, "color", "auto", "Colorize bars: auto/always/never")
	cmd.Flags().BoolVar(&chartNoSummary, "no-summary", false, "Hide summary in table output")
	cmd.Flags().BoolVar(&chartRefresh, "refresh", false, "Ignore cached commit lists")
}

// runChart 是 chart 命令的核心逻辑：收集提交、按月聚合，再以指定格式输出。
func runChart(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(strings.TrimSpace(chartFormat))
	switch format {
	case "", "table", "json", "csv":
	default:
		return fmt.Errorf("unsupported format %q (supported: table, json, csv)", chartFormat)
	}
	// 0 表示使用配置值
	if chartWidth < 0 || chartWidth > config.MaxWidth {
		return fmt.Errorf("width must be in [1, %d], got %d", config.MaxWidth, chartWidth)
	}

	out := cmd.OutOrStdout()
	noColor, err := resolveNoColor(chartColor, out)
	if err != nil {
		return err
	}

	runCtx, err := prepareRun(chartEmails, chartMonths)
	if err != nil {
		if errors.Is(err, errNoRepositoriesAdded) {
			fmt.Fprintln(out, "no repositories added")
			return nil
		}
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, collectErr := activity.Collect(ctx, runCtx.Repos, activity.Options{
		Emails:  runCtx.Emails,
		Since:   runCtx.Since,
		Cache:   runCtx.Cache,
		Refresh: chartRefresh,
	})
	if collectErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", collectErr)
	}

	buckets := chart.Aggregate(activity.ToActivities(res.Filtered), activity.ToActivities(res.All))

	opts := chart.Options{
		Unscaled: runCtx.Unscaled,
		Width:    runCtx.Width,
		NoColor:  noColor,
	}
	if cmd.Flags().Changed("unscaled") {
		opts.Unscaled = chartUnscaled
	}
	if chartWidth > 0 {
		opts.Width = chartWidth
	}

	switch format {
	case "json":
		return writeJSON(out, buckets)
	case "csv":
		return writeCSV(out, buckets)
	default:
		return writeTable(out, buckets, opts, !chartNoSummary)
	}
}

// resolveNoColor 根据 --color 取值和输出目标决定是否关闭颜色。
// auto 模式下仅当输出为终端且未设置 NO_COLOR 时着色。
func resolveNoColor(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return false, nil
	case "never":
		return true, nil
	case "", "auto":
		if os.Getenv("NO_COLOR") != "" {
			return true, nil
		}
		f, ok := out.(*os.File)
		if !ok {
			return true, nil
		}
		return !term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (supported: auto, always, never)", mode)
	}
}

// writeTable 输出柱状图（最近的月份在最前），可选附带摘要。
func writeTable(out io.Writer, buckets []chart.MonthBucket, opts chart.Options, withSummary bool) error {
	if len(buckets) == 0 {
		fmt.Fprintln(out, "no commits found")
		return nil
	}

	lines, err := chart.RenderBuckets(buckets, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	if withSummary {
		fmt.Fprint(out, chart.RenderSummary(chart.Summarize(buckets)))
	}
	return nil
}

// monthStat 表示单月的提交统计，用于 JSON 输出。
type monthStat struct {
	Month    string `json:"month"`    // 格式为 YYYY-MM
	Label    string `json:"label"`    // 如 Jan 2015
	Filtered int    `json:"filtered"` // 高亮提交数
	Total    int    `json:"total"`    // 全部提交数
}

// writeJSON 将按月统计以 JSON 数组输出，按时间正序排列。
func writeJSON(out io.Writer, buckets []chart.MonthBucket) error {
	rows := make([]monthStat, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, monthStat{
			Month:    b.Month.Format("2006-01"),
			Label:    b.Label,
			Filtered: b.Filtered,
			Total:    b.Total,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// writeCSV 将按月统计以 CSV 输出，表头为 month,filtered,total，按时间正序排列。
func writeCSV(out io.Writer, buckets []chart.MonthBucket) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"month", "filtered", "total"}); err != nil {
		return err
	}
	for _, b := range buckets {
		if err := w.Write([]string{b.Month.Format("2006-01"), strconv.Itoa(b.Filtered), strconv.Itoa(b.Total)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
