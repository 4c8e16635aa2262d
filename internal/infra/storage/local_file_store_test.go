package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sip/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_SaveProfileImage(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{Dir: dir, BaseURL: "/uploads/"}

	store, err := NewLocalFileStore(cfg)
	require.NoError(t, err)

	ref, err := store.SaveProfileImage(context.Background(), "avatar.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	stored := filepath.Join(dir, filepath.Base(ref))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalFileStore_IgnoresClientPath(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{Dir: dir, BaseURL: "/uploads"}

	store, err := NewLocalFileStore(cfg)
	require.NoError(t, err)

	ref, err := store.SaveProfileImage(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	// Stored name is generated; only the extension survives.
	assert.NotContains(t, ref, "..")
	assert.NotContains(t, filepath.Base(ref), "passwd")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{Dir: dir}

	_, err := NewLocalFileStore(cfg)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
