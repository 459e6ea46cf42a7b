package chart

import (
	"slices"
	"strings"
)

// 柱状图使用的字符。
const (
	filledGlyph   = "█" // 高亮部分
	emptyGlyph    = "∙" // 未高亮部分
	boundaryGlyph = "|" // 柱子右边界
)

// Options 控制柱状图的渲染方式。
type Options struct {
	Unscaled bool // 使用原始计数作为柱长，不缩放
	Width    int  // 缩放模式下的柱宽，<= 0 时使用 FixedWidth
	NoColor  bool // 不输出 ANSI 颜色转义序列
}

// Render 渲染柱状图，返回每月一行的字符串，最近的月份在最前。
// all 为空时返回空结果。
func Render(filtered, all []Activity, unscaled bool) ([]string, error) {
	return RenderWithOptions(filtered, all, Options{Unscaled: unscaled})
}

// RenderWithOptions 按指定选项渲染柱状图。
func RenderWithOptions(filtered, all []Activity, opts Options) ([]string, error) {
	return RenderBuckets(Aggregate(filtered, all), opts)
}

// RenderBuckets 渲染已聚合的月份桶（按时间正序），输出按时间倒序。
// 任一月份 Filtered > Total 时返回 ErrFilteredExceedsTotal。
func RenderBuckets(buckets []MonthBucket, opts Options) ([]string, error) {
	if len(buckets) == 0 {
		return nil, nil
	}

	globalMax := 0
	if !opts.Unscaled {
		globalMax = GlobalMax(buckets)
	}

	lines := make([]string, 0, len(buckets))
	for _, b := range buckets {
		filled, bar, err := BarLengths(b, opts.Unscaled, globalMax, opts.Width)
		if err != nil {
			return nil, err
		}
		lines = append(lines, RenderLine(b.Label, filled, bar, opts.NoColor))
	}

	// 最近的月份显示在最上方
	slices.Reverse(lines)
	return lines, nil
}

// RenderLine 渲染单个月份的一行：
//
//	<label> |█████∙∙∙∙∙|
//
// 每个字符按其水平位置从调色板取色：高亮段第 i 个字符取 palette(i)，
// 未高亮段第 j 个字符取 palette(filled+j)，右边界取 palette(bar+1)。
// bar <= filled 时只输出高亮段，不输出未高亮段和右边界。
func RenderLine(label string, filled, bar int, noColor bool) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" |")

	for i := 0; i < filled; i++ {
		b.WriteString(paint(filledGlyph, i, noColor))
	}

	if bar > filled {
		for j := 0; j < bar-filled; j++ {
			b.WriteString(paint(emptyGlyph, filled+j, noColor))
		}
		b.WriteString(paint(boundaryGlyph, bar+1, noColor))
	}

	return b.String()
}
