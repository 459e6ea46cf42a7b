// Package chart 将带日期的活动记录按自然月聚合，并渲染为彩色横向柱状图。
//
// 输入为两组按时间倒序（最新在前）排列的活动：全部活动和其中被高亮的子集。
// 输出为每月一行的字符串，最近的月份在最前。
package chart

import "time"

// monthLabelLayout 是月份标签的格式，如 "Jan 2015"。
const monthLabelLayout = "Jan 2006"

// Activity 是图表的输入记录，渲染时只读取其日期。
type Activity interface {
	Date() time.Time
}

// MonthBucket 表示单个自然月的聚合计数。
type MonthBucket struct {
	Label    string    `json:"month"`
	Month    time.Time `json:"-"` // 当月 1 日 00:00:00
	Filtered int       `json:"filtered"`
	Total    int       `json:"total"`
}

// MonthLabel 返回日期所在月份的标签。
func MonthLabel(t time.Time) string {
	return t.Format(monthLabelLayout)
}

// Aggregate 按月聚合两组活动，返回按时间正序排列的月份桶。
//
// 月份范围取自 all：最后一个元素为最早日期，第一个元素为最新日期，
// 范围内的每个月都会生成一个桶（即使没有任何活动）。
// 调用方需保证 filtered 是 all 的子集，且两者都按时间倒序排列；
// 落在范围之外的 filtered 记录不计数。
func Aggregate(filtered, all []Activity) []MonthBucket {
	if len(all) == 0 {
		return nil
	}

	oldest := all[len(all)-1].Date()
	newest := all[0].Date()

	first := monthIndex(oldest)
	n := monthIndex(newest) - first + 1
	if n <= 0 {
		return nil
	}

	start := time.Date(oldest.Year(), oldest.Month(), 1, 0, 0, 0, 0, oldest.Location())
	buckets := make([]MonthBucket, n)
	for i := range buckets {
		month := start.AddDate(0, i, 0)
		buckets[i] = MonthBucket{Label: MonthLabel(month), Month: month}
	}

	for _, a := range filtered {
		if i := monthIndex(a.Date()) - first; i >= 0 && i < n {
			buckets[i].Filtered++
		}
	}
	for _, a := range all {
		if i := monthIndex(a.Date()) - first; i >= 0 && i < n {
			buckets[i].Total++
		}
	}

	return buckets
}

// monthIndex 将日期映射为连续的月份序号，同年同月的日期序号相同。
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
