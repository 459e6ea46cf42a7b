package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git-monthly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_Healthy(t *testing.T) {
	home := withTempHome(t)
	repoPath := filepath.Join(home, "code", "ok")
	createRepoWithCommits(t, repoPath, 2, "me@example.com", time.Date(2015, 1, 14, 12, 0, 0, 0, time.UTC))
	writeReposFile(t, home, []string{repoPath})

	out, _, err := executeCommand(t, newTestCmd(runDoctor))
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Config: OK")
	assert.Contains(t, out, "✅ Repositories: 1/1 valid")
	assert.Contains(t, out, "✅ HEAD: OK")
	assert.Contains(t, out, "✅ Permissions: OK")
	assert.Contains(t, out, "✅ Performance: OK")
	assert.Contains(t, out, "✅ Cache: 0 file(s)")
}

func TestDoctor_NoRepositories(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newTestCmd(runDoctor))
	require.NoError(t, err)
	assert.Contains(t, out, "⚠️  Repositories: no repositories added")
	assert.Contains(t, out, "⚠️  HEAD: skipped")
}

func TestDoctor_InvalidRepository(t *testing.T) {
	home := withTempHome(t)
	missing := filepath.Join(home, "code", "gone")
	writeReposFile(t, home, []string{missing})

	out, _, err := executeCommand(t, newTestCmd(runDoctor))
	require.Error(t, err)
	assert.Contains(t, out, "❌ Repositories: 0/1 valid, 1 invalid")
	assert.Contains(t, out, "   - "+missing)
}

func TestDoctor_HeadMissing(t *testing.T) {
	home := withTempHome(t)
	bare := filepath.Join(home, "code", "fresh")
	require.NoError(t, os.MkdirAll(filepath.Join(bare, ".git"), 0o755))
	writeReposFile(t, home, []string{bare})

	out, _, err := executeCommand(t, newTestCmd(runDoctor))
	require.Error(t, err)
	assert.Contains(t, out, "❌ HEAD: 1 issue(s)")
}

func TestDoctor_ConfigIssuesAreWarnings(t *testing.T) {
	withTempHome(t)
	setTestConfig(t, config.Config{Months: -1, Width: config.DefaultWidth})

	out, _, err := executeCommand(t, newTestCmd(runDoctor))
	require.NoError(t, err)
	assert.Contains(t, out, "⚠️  Config: 1 issue(s)")
	assert.Contains(t, out, "months must be >= 0")
}
