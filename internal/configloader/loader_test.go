package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/edittree/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindProjectConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	want := writeConfig(t, root, ".edittree.yaml", "format:\n  quote: single\n")

	got, err := FindProjectConfig(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindProjectConfig_PrefersYmlExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".edittree.yaml", "")
	want := writeConfig(t, dir, ".edittree.yml", "")

	got, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, ".edittree.yaml", "")

	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
	sub := filepath.Join(repo, "src")
	require.NoError(t, os.MkdirAll(sub, 0755))

	// The config above the repo boundary must not leak in.
	got, err := FindProjectConfig(context.Background(), sub)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindProjectConfig_None(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	got, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Explicit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "format:\n  quote: single\n  space_after_colon: false\n")

	cfg, err := Load(context.Background(), dir, path)
	require.NoError(t, err)
	assert.Equal(t, config.QuoteSingle, cfg.Format.Quote)
	assert.False(t, cfg.Format.SpaceAfterColon)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), t.TempDir(), "/does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	writeConfig(t, dir, ".edittree.yaml", "backups: true\n")

	cfg, err := Load(context.Background(), dir, "")
	require.NoError(t, err)
	assert.True(t, cfg.Backups)
	// Unset fields keep their defaults.
	assert.Equal(t, config.QuoteDouble, cfg.Format.Quote)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yaml", "format: [not a map\n")

	_, err := Load(context.Background(), dir, path)
	require.Error(t, err)
}
