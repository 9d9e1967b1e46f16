package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brikdesigns/brik/internal/config"
	apperrors "github.com/brikdesigns/brik/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(nil)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func testSettingsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "brik.yaml")
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-30"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-08-30")
}

func TestThemesListMarksPersistedTheme(t *testing.T) {
	path := testSettingsFile(t)
	settings := config.Default()
	settings.Theme = "dark"
	require.NoError(t, config.Save(path, settings))

	output, err := execute(t, "--config", path, "themes")
	require.NoError(t, err)
	require.Contains(t, output, "* dark")
	require.Contains(t, output, "  light")
}

func TestThemesSetPersistsSelection(t *testing.T) {
	path := testSettingsFile(t)

	output, err := execute(t, "--config", path, "themes", "set", "brik")
	require.NoError(t, err)
	require.Contains(t, output, "Theme set to brik")

	settings, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "brik", settings.Theme)
}

func TestThemesSetRejectsUnknownTheme(t *testing.T) {
	path := testSettingsFile(t)

	_, err := execute(t, "--config", path, "themes", "set", "neon")
	require.Error(t, err)
}

func TestTokensCommandPrintsTable(t *testing.T) {
	output, err := execute(t, "--config", testSettingsFile(t), "tokens", "--theme", "light")
	require.NoError(t, err)
	require.Contains(t, output, "TOKEN")
	require.Contains(t, output, "color.primary")
	require.Contains(t, output, "space.md")
}

func TestTokensCommandRejectsUnknownTheme(t *testing.T) {
	_, err := execute(t, "--config", testSettingsFile(t), "tokens", "--theme", "neon")
	require.Error(t, err)
}

func TestTokensCommandResolvesNamedTokens(t *testing.T) {
	output, err := execute(t, "--config", testSettingsFile(t), "tokens", "--theme", "light", "color.primary.base")
	require.NoError(t, err)
	require.Contains(t, output, "color.primary.base")
	require.NotContains(t, output, "space.md")
}

func TestTokensCommandRejectsUnknownToken(t *testing.T) {
	_, err := execute(t, "--config", testSettingsFile(t), "tokens", "--theme", "light", "color.tertiary.base")
	require.Error(t, err)
	var tokErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, "color.tertiary.base", tokErr.Token)
}

func TestCreatePageRequiresToken(t *testing.T) {
	t.Setenv("WEBFLOW_TOKEN", "")

	_, err := execute(t, "--config", testSettingsFile(t), "webflow", "create-page", "--title", "Home")
	require.Error(t, err)
}
