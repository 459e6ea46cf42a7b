package config

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"git-monthly/internal/chart"

	"github.com/spf13/viper"
)

const appName = "git-monthly"

// 配置项默认值。
const (
	DefaultMonths = 0 // 0 表示统计全部历史
	DefaultWidth  = chart.FixedWidth
	MaxWidth      = 200 // 柱宽上限
)

// Config 是持久化的用户配置。
type Config struct {
	Emails   []string // 高亮显示的作者邮箱
	Months   int      // 统计最近 N 个月，0 为全部历史
	Unscaled bool     // 默认使用原始计数作为柱长
	Width    int      // 缩放模式下的柱宽
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// CacheDir 返回提交缓存目录。
func CacheDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Load 读取配置文件，文件不存在时返回默认配置。
func Load() (*Config, error) {
	configFile, err := File()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetDefault("emails", []string{})
	v.SetDefault("months", DefaultMonths)
	v.SetDefault("unscaled", false)
	v.SetDefault("width", DefaultWidth)

	if err := v.ReadInConfig(); err != nil {
		// SetConfigFile 指定的文件不存在时 viper 返回的是 *fs.PathError 而非 ConfigFileNotFoundError
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	return &Config{
		Emails:   NormalizeEmails(v.GetStringSlice("emails")),
		Months:   v.GetInt("months"),
		Unscaled: v.GetBool("unscaled"),
		Width:    v.GetInt("width"),
	}, nil
}

func Save(cfg Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile, err := File()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("emails", NormalizeEmails(cfg.Emails))
	v.Set("months", cfg.Months)
	v.Set("unscaled", cfg.Unscaled)
	v.Set("width", cfg.Width)

	return v.WriteConfigAs(configFile)
}

// Validate 检查配置合法性，返回问题描述列表（为空表示合法）。
func Validate(cfg *Config) []string {
	var issues []string
	if cfg == nil {
		return []string{"config is nil"}
	}

	if cfg.Months < 0 {
		issues = append(issues, fmt.Sprintf("months must be >= 0, got %d", cfg.Months))
	}
	if cfg.Width <= 0 || cfg.Width > MaxWidth {
		issues = append(issues, fmt.Sprintf("width must be in [1, %d], got %d", MaxWidth, cfg.Width))
	}
	for _, email := range cfg.Emails {
		if _, err := mail.ParseAddress(email); err != nil {
			issues = append(issues, fmt.Sprintf("invalid email %q", email))
		}
	}
	return issues
}

// NormalizeEmails 清洗邮箱列表：去空白、转小写、去空串、去重，保持原有顺序。
func NormalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// SplitEmails 将逗号分隔的邮箱字符串拆分并清洗。
func SplitEmails(s string) []string {
	return NormalizeEmails(strings.Split(s, ","))
}
