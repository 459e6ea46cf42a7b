package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

const (
	repoCountWarnThreshold = 50
	gitSizeWarnThreshold   = int64(1 << 30) // 1GB
)

// CheckHead 检查仓库 HEAD 是否指向一个可读取的提交。
func CheckHead(repoPath string) error {
	r, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("cannot open repo: %w", err)
	}

	headRef, err := r.Head()
	if err != nil {
		return fmt.Errorf("cannot resolve HEAD: %w", err)
	}
	if _, err := r.CommitObject(headRef.Hash()); err != nil {
		return fmt.Errorf("HEAD commit is unreachable: %w", err)
	}
	return nil
}

// CheckPermissions 检查仓库读取权限（通过读取 .git/HEAD）。
func CheckPermissions(repoPath string) error {
	f, err := os.Open(filepath.Join(repoPath, ".git", "HEAD"))
	if err != nil {
		return fmt.Errorf("cannot read .git/HEAD: %w", err)
	}
	return f.Close()
}

// CheckPerformance 返回可能拖慢统计的预警项：仓库数量过多或 .git 体积过大。
func CheckPerformance(repos []string) []string {
	var warnings []string

	if len(repos) > repoCountWarnThreshold {
		warnings = append(warnings, fmt.Sprintf("large number of repos (%d) may slow down collection", len(repos)))
	}

	for _, repoPath := range repos {
		size, err := gitDirSize(repoPath)
		if err != nil {
			continue
		}
		if size > gitSizeWarnThreshold {
			warnings = append(warnings, fmt.Sprintf("%s is large (%.1f GB), may be slow", repoPath, float64(size)/float64(1<<30)))
		}
	}

	return warnings
}

func gitDirSize(repoPath string) (int64, error) {
	var size int64
	err := filepath.WalkDir(filepath.Join(repoPath, ".git"), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	return size, err
}
