package repo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"git-monthly/internal/config"
)

// reposFileName 是存储仓库列表的文件名。
const reposFileName = "repos"

// Store 将仓库路径按行保存在单个文本文件中。
type Store struct {
	Path string
}

// DefaultStore 返回位于配置目录下的仓库列表存储。
func DefaultStore() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return &Store{Path: filepath.Join(dir, reposFileName)}, nil
}

// normalizePath 标准化路径：去除空白、展开 ~、转换为绝对路径并清理。
func normalizePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// Load 加载仓库列表，返回的路径已去重和标准化。
// 存储文件不存在时返回空列表。
func (s *Store) Load() ([]string, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	seen := make(map[string]struct{}, len(lines))
	repos := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		normalized, err := normalizePath(line)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		repos = append(repos, normalized)
	}

	return repos, nil
}

func (s *Store) save(repos []string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}

	data := strings.Join(repos, "\n")
	if len(repos) > 0 {
		data += "\n"
	}
	return os.WriteFile(s.Path, []byte(data), 0o600)
}

// Add 批量添加仓库，已存在的路径被静默忽略。
// 返回实际新增的路径（标准化后）。
func (s *Store) Add(paths ...string) ([]string, error) {
	repos, err := s.Load()
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(repos))
	for _, p := range repos {
		existing[p] = struct{}{}
	}

	added := make([]string, 0, len(paths))
	for _, path := range paths {
		normalized, err := normalizePath(path)
		if err != nil {
			return nil, err
		}
		if _, ok := existing[normalized]; ok {
			continue
		}
		existing[normalized] = struct{}{}
		added = append(added, normalized)
	}

	if len(added) == 0 {
		return added, nil
	}
	if err := s.save(append(repos, added...)); err != nil {
		return nil, err
	}
	return added, nil
}

// Remove 从列表中移除仓库，返回实际移除的数量。不在列表中的路径被静默忽略。
func (s *Store) Remove(paths ...string) (int, error) {
	drop := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		normalized, err := normalizePath(path)
		if err != nil {
			return 0, err
		}
		drop[normalized] = struct{}{}
	}

	repos, err := s.Load()
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(repos))
	for _, existing := range repos {
		if _, ok := drop[existing]; ok {
			continue
		}
		kept = append(kept, existing)
	}

	removed := len(repos) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save(kept)
}

// Verify 将已添加的仓库分为有效和无效两组。
func (s *Store) Verify() (valid []string, invalid []string, err error) {
	repos, err := s.Load()
	if err != nil {
		return nil, nil, err
	}

	for _, path := range repos {
		if IsRepo(path) {
			valid = append(valid, path)
		} else {
			invalid = append(invalid, path)
		}
	}
	return valid, invalid, nil
}

// IsRepo 检查路径是否为包含 .git 的目录。
func IsRepo(path string) bool {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
