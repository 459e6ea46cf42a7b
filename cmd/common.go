package cmd

import (
	"errors"
	"time"

	"git-monthly/internal/activity"
	"git-monthly/internal/cache"
	"git-monthly/internal/config"
	"git-monthly/internal/repo"
)

var errNoRepositoriesAdded = errors.New("no repositories added")

// RunContext holds the common initialization result for commands.
type RunContext struct {
	Repos    []string
	Emails   []string
	Since    time.Time
	Unscaled bool
	Width    int
	Cache    *cache.Store
}

// prepareRun performs common command initialization:
// load config, load repos, resolve the history window, merge emails.
// months < 0 means "use the configured value".
func prepareRun(emails []string, months int) (*RunContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := repo.DefaultStore()
	if err != nil {
		return nil, err
	}
	repos, err := store.Load()
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, errNoRepositoriesAdded
	}

	// 命令行邮箱优先，否则使用配置值
	merged := config.NormalizeEmails(emails)
	if len(merged) == 0 {
		merged = cfg.Emails
	}

	if months < 0 {
		months = cfg.Months
	}

	cacheDir, err := config.CacheDir()
	if err != nil {
		return nil, err
	}

	return &RunContext{
		Repos:    repos,
		Emails:   merged,
		Since:    activity.Since(months),
		Unscaled: cfg.Unscaled,
		Width:    cfg.Width,
		Cache:    cache.New(cacheDir),
	}, nil
}
