// Package activity 从本地 Git 仓库收集提交记录，作为柱状图的活动数据源。
package activity

import (
	"sort"
	"strings"
	"time"

	"git-monthly/internal/chart"
)

// Commit 是一条提交记录，实现 chart.Activity。
type Commit struct {
	Repo  string    `json:"repo"`
	Hash  string    `json:"hash"`
	Email string    `json:"email"`
	When  time.Time `json:"when"`
}

// Date 返回提交的作者时间。
func (c Commit) Date() time.Time {
	return c.When
}

// ToActivities 将提交列表转换为图表输入，保持原有顺序。
func ToActivities(commits []Commit) []chart.Activity {
	out := make([]chart.Activity, len(commits))
	for i, c := range commits {
		out[i] = c
	}
	return out
}

// SortNewestFirst 按作者时间倒序排列提交；时间相同时按仓库和 hash 排序，保证结果稳定。
func SortNewestFirst(commits []Commit) {
	sort.Slice(commits, func(i, j int) bool {
		a, b := commits[i], commits[j]
		if !a.When.Equal(b.When) {
			return a.When.After(b.When)
		}
		if a.Repo != b.Repo {
			return a.Repo < b.Repo
		}
		return a.Hash < b.Hash
	})
}

// FilterByEmail 返回作者邮箱在 emails 中的提交（忽略大小写和首尾空白），保持原有顺序。
// emails 为空时返回空结果。
func FilterByEmail(commits []Commit, emails []string) []Commit {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = normalizeEmail(email)
		if email == "" {
			continue
		}
		set[email] = struct{}{}
	}
	if len(set) == 0 {
		return []Commit{}
	}

	out := make([]Commit, 0, len(commits))
	for _, c := range commits {
		if _, ok := set[normalizeEmail(c.Email)]; ok {
			out = append(out, c)
		}
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
