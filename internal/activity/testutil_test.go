package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

type commitSpec struct {
	email string
	when  time.Time
}

// createRepoWithCommits 在 path 创建仓库并按给定顺序提交。
func createRepoWithCommits(t *testing.T, path string, commits []commitSpec) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o755))

	r, err := git.PlainInit(path, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	for i, c := range commits {
		fileName := filepath.Join(path, "file.txt")
		require.NoError(t, os.WriteFile(fileName, []byte(fmt.Sprintf("commit %d\n", i)), 0o644))

		_, err := wt.Add("file.txt")
		require.NoError(t, err)

		sig := &object.Signature{Name: "Test", Email: c.email, When: c.when}
		_, err = wt.Commit(fmt.Sprintf("commit %d", i), &git.CommitOptions{
			Author:    sig,
			Committer: sig,
		})
		require.NoError(t, err)
	}
}

func headHash(t *testing.T, path string) string {
	t.Helper()

	r, err := git.PlainOpen(path)
	require.NoError(t, err)
	ref, err := r.Head()
	require.NoError(t, err)
	return ref.Hash().String()
}
