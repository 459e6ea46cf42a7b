package activity

import "time"

// timeNow 抽象 time.Now 以便在测试中注入固定时间。
var timeNow = time.Now

// WindowStart 返回最近 months 个自然月（含当月）的起始时间，即
// now 所在月往前 months-1 个月的 1 日 00:00:00。
// months <= 0 返回零值，表示不限制时间范围。
func WindowStart(now time.Time, months int) time.Time {
	if months <= 0 {
		return time.Time{}
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -(months - 1), 0)
}

// Since 返回以当前时间为基准的 WindowStart。
func Since(months int) time.Time {
	return WindowStart(timeNow(), months)
}
