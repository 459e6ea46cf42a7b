package chart

import (
	"errors"
	"fmt"
)

// FixedWidth 是缩放模式下每根柱子的字符宽度。
const FixedWidth = 20

// ErrFilteredExceedsTotal 表示某个月的高亮计数大于总计数，违反了 filtered ⊆ all 的调用约定。
var ErrFilteredExceedsTotal = errors.New("filtered count exceeds total count")

// GlobalMax 返回所有月份桶中最大的总计数，空输入返回 0。
func GlobalMax(buckets []MonthBucket) int {
	peak := 0
	for _, b := range buckets {
		if b.Total > peak {
			peak = b.Total
		}
	}
	return peak
}

// BarLengths 计算单个月份实际绘制的 (高亮长度, 柱长)。
//   - unscaled: 直接使用原始计数
//   - 缩放模式: 柱长固定为 width（<= 0 时取 FixedWidth），
//     高亮长度按 Filtered/globalMax 等比缩放并四舍五入
func BarLengths(b MonthBucket, unscaled bool, globalMax, width int) (filled, bar int, err error) {
	if b.Filtered < 0 || b.Total < 0 || b.Filtered > b.Total {
		return 0, 0, fmt.Errorf("%s: %w (filtered=%d, total=%d)", b.Label, ErrFilteredExceedsTotal, b.Filtered, b.Total)
	}

	if unscaled {
		return b.Filtered, b.Total, nil
	}

	if width <= 0 {
		width = FixedWidth
	}
	return scaleCount(b.Filtered, width, globalMax), width, nil
}

// scaleCount 计算 round(count*width/peak)，使用整数运算实现 round-half-up，
// 避免浮点误差在进位边界处让柱子多或少一格。peak <= 0 时返回 0。
func scaleCount(count, width, peak int) int {
	if peak <= 0 {
		return 0
	}
	return (count*width*2 + peak) / (2 * peak)
}
