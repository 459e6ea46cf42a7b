package repo

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

func mkRepoDir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(path, ".git"), 0o755))
}

func createRepoWithCommit(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	r, err := git.PlainInit(repoPath, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "file.txt"), []byte(fmt.Sprintln("hello")), 0o644))
	_, err = wt.Add("file.txt")
	require.NoError(t, err)

	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()}
	_, err = wt.Commit("init", &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	return repoPath
}
