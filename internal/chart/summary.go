package chart

import (
	"fmt"
	"strings"
)

// Summary 表示柱状图的统计摘要。
type Summary struct {
	Total        int
	Filtered     int
	Months       int
	ActiveMonths int
	Busiest      MonthBucket
}

// Summarize 基于月份桶计算摘要信息。
// 总计数相同的月份中，较新的月份视为最活跃月份。
func Summarize(buckets []MonthBucket) Summary {
	out := Summary{Months: len(buckets)}
	for _, b := range buckets {
		out.Total += b.Total
		out.Filtered += b.Filtered
		if b.Total <= 0 {
			continue
		}
		out.ActiveMonths++
		if b.Total >= out.Busiest.Total {
			out.Busiest = b
		}
	}
	return out
}

const summaryRuleLen = 36

// RenderSummary 渲染摘要信息，输出为多行纯文本，可直接输出到终端。
func RenderSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("─", summaryRuleLen))
	b.WriteByte('\n')

	b.WriteString(fmt.Sprintf(
		"Total: %d %s │ Highlighted: %d (%s) │ Active months: %d/%d\n",
		s.Total,
		pluralize(s.Total, "activity", "activities"),
		s.Filtered,
		formatShare(s.Filtered, s.Total),
		s.ActiveMonths,
		s.Months,
	))

	busiest := "-"
	if s.Busiest.Total > 0 {
		busiest = s.Busiest.Label
	}
	b.WriteString(fmt.Sprintf(
		"Busiest month: %s (%d %s)\n",
		busiest,
		s.Busiest.Total,
		pluralize(s.Busiest.Total, "activity", "activities"),
	))

	return b.String()
}

// formatShare 以 1 位小数输出 part/total 的百分比。
// 以 0.1% 为单位做整数四舍五入，不经过浮点数。
func formatShare(part, total int) string {
	if total <= 0 {
		return "0.0%"
	}
	const totalUnits = 1000
	units := (part*totalUnits*2 + total) / (2 * total)
	return fmt.Sprintf("%d.%d%%", units/10, units%10)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
