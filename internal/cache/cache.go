// Package cache 提供基于 JSON 文件的提交列表缓存。
// 缓存文件以仓库名 + 参数哈希命名，键中包含 HEAD hash，仓库有新提交时自动失效。
// 缓存保存未经邮箱过滤的完整提交列表，修改高亮邮箱不会导致缓存失效。
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Key 唯一标识一次仓库扫描的上下文参数。
type Key struct {
	RepoPath string    `json:"repo_path"`
	HEADHash string    `json:"head_hash"`
	Since    time.Time `json:"since"` // 零值表示全部历史
}

// Record 是缓存中的单条提交。
type Record struct {
	Hash  string `json:"hash"`
	Email string `json:"email"`
	Unix  int64  `json:"unix"`
}

// Entry 是持久化到磁盘的缓存条目。
type Entry struct {
	Key       Key       `json:"key"`
	Commits   []Record  `json:"commits"`
	CreatedAt time.Time `json:"created_at"`
}

// Store 管理某个目录下的缓存文件。
type Store struct {
	Dir string
}

// New 返回使用 dir 作为缓存目录的 Store。
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// String 返回稳定的短文件名，格式为 "{repoName}_{hash}.json"。
func (k Key) String() string {
	normalized := normalizeKey(k)
	repoName := sanitizeFileComponent(filepath.Base(normalized.RepoPath))
	if repoName == "" {
		repoName = "repo"
	}

	since := "all"
	if !normalized.Since.IsZero() {
		since = strconv.FormatInt(normalized.Since.Unix(), 10)
	}

	payload := strings.Join([]string{
		normalized.RepoPath,
		normalized.HEADHash,
		since,
	}, "\n")
	digest := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("%s_%x.json", repoName, digest[:8])
}

// Load 从磁盘读取一条缓存。未命中时返回的错误满足 os.IsNotExist。
func (s *Store) Load(key Key) (*Entry, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", key.String(), err)
	}
	return &entry, nil
}

// Save 将提交列表写入磁盘。
// 写入使用 tmp + rename 的原子策略，避免并发读到半写文件。
func (s *Store) Save(key Key, commits []Record) error {
	cachePath := s.path(key)
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o700); err != nil {
		return err
	}

	records := make([]Record, len(commits))
	copy(records, commits)

	entry := Entry{
		Key:       normalizeKey(key),
		Commits:   records,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmpPath := cachePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, cachePath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Clear 删除缓存目录下的全部缓存文件，返回删除的文件数。
func (s *Store) Clear() (int, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Size 返回缓存文件数量和总字节数。
func (s *Store) Size() (files int, bytes int64, err error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return 0, 0, err
		}
		files++
		bytes += info.Size()
	}
	return files, bytes, nil
}

func (s *Store) path(key Key) string {
	return filepath.Join(s.Dir, key.String())
}

// normalizeKey 规范化缓存键：清理路径、去除空白、时间统一为 UTC。
func normalizeKey(key Key) Key {
	normalized := key
	normalized.RepoPath = filepath.Clean(strings.TrimSpace(normalized.RepoPath))
	normalized.HEADHash = strings.TrimSpace(normalized.HEADHash)
	if !normalized.Since.IsZero() {
		normalized.Since = normalized.Since.UTC()
	}
	return normalized
}

// sanitizeFileComponent 清理文件名组成部分，将路径分隔符、空格、冒号替换为下划线。
func sanitizeFileComponent(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	replacer := strings.NewReplacer(
		string(filepath.Separator), "_",
		" ", "_",
		":", "_",
	)
	return replacer.Replace(name)
}
