package activity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"git-monthly/internal/cache"
	"git-monthly/internal/logging"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// maxConcurrency 是并发处理仓库的最大数量，默认为 CPU 核心数。
var maxConcurrency = runtime.NumCPU()

// Options 控制提交收集。
type Options struct {
	Emails   []string       // 高亮邮箱，为空时 Filtered 为空
	Since    time.Time      // 起始时间（包含），零值表示全部历史
	Location *time.Location // 提交时间统一转换到的时区，nil 为 time.Local
	Cache    *cache.Store   // 提交缓存，nil 表示不使用
	Refresh  bool           // 忽略已有缓存重新遍历（仍会写入缓存）
}

// Result 是收集结果，两个列表都按时间倒序排列，Filtered 是 All 的子集。
type Result struct {
	All      []Commit
	Filtered []Commit
}

// Collect 并发收集多个仓库的提交。
// 部分仓库收集失败时，返回已成功收集的数据和聚合的错误。
func Collect(ctx context.Context, repos []string, opts Options) (Result, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := logging.Component("collector")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex // 保护 all
		emu  sync.Mutex // 保护 errs
		pmu  sync.Mutex // 保护进度条
		all  []Commit
		errs []error
	)

	bar := newRepoProgressBar(len(repos))
	if bar != nil {
		defer func() { _ = bar.Finish() }()
	}

	sem := make(chan struct{}, maxConcurrency)

	for _, repoPath := range repos {
		wg.Add(1)
		go func(repoPath string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				emu.Lock()
				errs = append(errs, fmt.Errorf("collect %s: %w", repoPath, ctx.Err()))
				emu.Unlock()
				return
			}
			defer func() { <-sem }()
			defer func() {
				if bar == nil {
					return
				}
				pmu.Lock()
				_ = bar.Add(1)
				pmu.Unlock()
			}()

			commits, err := collectRepo(ctx, repoPath, opts, loc)
			if err != nil {
				// 失败的仓库通过返回的错误报告给调用方，这里只留调试日志
				log.Debug().Err(err).Str("repo", repoPath).Msg("collect failed")
				emu.Lock()
				errs = append(errs, err)
				emu.Unlock()
				return
			}
			log.Debug().Str("repo", repoPath).Int("commits", len(commits)).Msg("collected")

			mu.Lock()
			all = append(all, commits...)
			mu.Unlock()
		}(repoPath)
	}

	wg.Wait()

	if all == nil {
		all = []Commit{}
	}
	SortNewestFirst(all)
	return Result{
		All:      all,
		Filtered: FilterByEmail(all, opts.Emails),
	}, errors.Join(errs...)
}

// newRepoProgressBar 创建仓库处理进度条，仅当仓库数量 > 1 且 stderr 为终端时显示。
func newRepoProgressBar(total int) *progressbar.ProgressBar {
	if total <= 1 {
		return nil
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("collecting commits"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

// collectRepo 收集单个仓库从 HEAD 可达的提交，优先读取缓存。
func collectRepo(ctx context.Context, repoPath string, opts Options, loc *time.Location) ([]Commit, error) {
	if _, err := os.Stat(repoPath); err != nil {
		return nil, fmt.Errorf("stat repo %s: %w", repoPath, err)
	}

	r, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repo %s: %w", repoPath, err)
	}

	ref, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("head repo %s: %w", repoPath, err)
	}

	cacheLog := logging.Component("cache")
	key := cache.Key{RepoPath: repoPath, HEADHash: ref.Hash().String(), Since: opts.Since}
	if opts.Cache != nil && !opts.Refresh {
		if entry, err := opts.Cache.Load(key); err == nil {
			cacheLog.Debug().Str("repo", repoPath).Msg("hit")
			return fromRecords(repoPath, entry.Commits, loc), nil
		} else if !os.IsNotExist(err) {
			cacheLog.Warn().Err(err).Str("repo", repoPath).Msg("ignoring unreadable cache entry")
		}
	}

	iterator, err := r.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("log repo %s: %w", repoPath, err)
	}
	defer iterator.Close()

	var records []cache.Record
	err = iterator.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Log 是按父提交深度优先遍历，作者时间并不单调，不能遇到旧提交就停止
		if !opts.Since.IsZero() && c.Author.When.Before(opts.Since) {
			return nil
		}
		records = append(records, cache.Record{
			Hash:  c.Hash.String(),
			Email: c.Author.Email,
			Unix:  c.Author.When.Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate repo %s: %w", repoPath, err)
	}

	if opts.Cache != nil {
		if err := opts.Cache.Save(key, records); err != nil {
			cacheLog.Warn().Err(err).Str("repo", repoPath).Msg("save failed")
		}
	}

	return fromRecords(repoPath, records, loc), nil
}

func fromRecords(repoPath string, records []cache.Record, loc *time.Location) []Commit {
	out := make([]Commit, 0, len(records))
	for _, rec := range records {
		out = append(out, Commit{
			Repo:  repoPath,
			Hash:  rec.Hash,
			Email: rec.Email,
			When:  time.Unix(rec.Unix, 0).In(loc),
		})
	}
	return out
}
