package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"git-monthly/internal/config"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "")
	return home
}

func writeReposFile(t *testing.T, home string, repos []string) {
	t.Helper()

	dir := filepath.Join(home, ".config", "git-monthly")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	data := strings.Join(repos, "\n")
	if len(repos) > 0 {
		data += "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "repos"), []byte(data), 0o600))
}

func setTestConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	require.NoError(t, config.Save(cfg))
}

// createRepoWithCommits 创建仓库并提交 commits 次，每次间隔一分钟。
func createRepoWithCommits(t *testing.T, path string, commits int, email string, when time.Time) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o755))

	r, err := git.PlainInit(path, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	for i := 0; i < commits; i++ {
		fileName := filepath.Join(path, "file.txt")
		content := []byte(fmt.Sprintf("%s commit %d\n", email, i))
		require.NoError(t, os.WriteFile(fileName, content, 0o644))

		_, err := wt.Add("file.txt")
		require.NoError(t, err)

		sig := &object.Signature{
			Name:  "Test",
			Email: email,
			When:  when.Add(time.Duration(i) * time.Minute),
		}

		_, err = wt.Commit("test commit", &git.CommitOptions{
			Author:    sig,
			Committer: sig,
		})
		require.NoError(t, err)
	}
}

// executeCommand 使用独立的 cobra.Command 执行 run，避免污染 rootCmd 的状态。
func executeCommand(t *testing.T, c *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errBuf bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errBuf)
	// args 为 nil 时 cobra 会回退到 os.Args
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err = c.Execute()
	return out.String(), errBuf.String(), err
}
