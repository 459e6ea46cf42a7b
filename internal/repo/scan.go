package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs 是扫描时总是跳过的目录名。
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
}

// Scan 在 root 下查找 Git 仓库（包含 .git 的目录），返回排序后的绝对路径。
//   - depth: 最大递归深度，-1 表示不限制
//   - excludes: 排除的目录名，或相对 root / 绝对路径
//
// 找到仓库后不再进入其子目录；无权限读取的目录被跳过。
func Scan(root string, depth int, excludes []string) ([]string, error) {
	rootPath, err := normalizePath(root)
	if err != nil {
		return nil, err
	}

	st, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", rootPath)
	}

	excludes = resolveExcludes(rootPath, excludes)

	var repos []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != rootPath {
			if name == ".git" {
				return filepath.SkipDir
			}
			if _, ok := skipDirs[name]; ok {
				return filepath.SkipDir
			}
			if isExcluded(path, name, excludes) {
				return filepath.SkipDir
			}
		}

		if IsRepo(path) {
			repos = append(repos, path)
			return filepath.SkipDir
		}

		if depth >= 0 && relDepth(rootPath, path) >= depth {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(repos)
	return repos, nil
}

// resolveExcludes 将排除项统一为目录名或绝对路径。
func resolveExcludes(rootPath string, excludes []string) []string {
	out := make([]string, 0, len(excludes))
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}
		if !strings.ContainsRune(ex, filepath.Separator) && ex != "~" {
			out = append(out, ex)
			continue
		}
		if ex == "~" || strings.HasPrefix(ex, "~/") {
			if expanded, err := normalizePath(ex); err == nil {
				out = append(out, expanded)
			}
			continue
		}
		if filepath.IsAbs(ex) {
			out = append(out, filepath.Clean(ex))
			continue
		}
		out = append(out, filepath.Join(rootPath, filepath.Clean(ex)))
	}
	return out
}

func isExcluded(path, name string, excludes []string) bool {
	sep := string(filepath.Separator)
	for _, ex := range excludes {
		if !filepath.IsAbs(ex) {
			if ex == name {
				return true
			}
			continue
		}
		if path == ex || strings.HasPrefix(path, ex+sep) {
			return true
		}
	}
	return false
}

// relDepth 返回 path 相对 root 的目录层级，root 本身为 0。
func relDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
