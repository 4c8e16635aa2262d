// Package storage implements file persistence on the local filesystem.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sip/config"
	"sip/internal/domain/service"
)

const uploadDirPerm = 0o755

// localFileStore implements FileStore on top of a directory served as
// static content by the HTTP server.
type localFileStore struct {
	dir     string
	baseURL string
}

// NewLocalFileStore creates a file store rooted at the configured upload
// directory, creating it if missing.
func NewLocalFileStore(cfg *config.Config) (service.FileStore, error) {
	dir := "uploads"
	baseURL := "/uploads"
	if cfg.Upload != nil {
		if cfg.Upload.Dir != "" {
			dir = cfg.Upload.Dir
		}
		if cfg.Upload.BaseURL != "" {
			baseURL = cfg.Upload.BaseURL
		}
	}

	if err := os.MkdirAll(dir, uploadDirPerm); err != nil {
		return nil, errors.Wrap(err, "create upload directory")
	}

	return &localFileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveProfileImage writes the uploaded content under a random name that
// keeps the original extension, and returns the public reference path.
func (s *localFileStore) SaveProfileImage(_ context.Context, filename string, content io.Reader) (string, error) {
	// The client-supplied name is only trusted for its extension.
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	stored := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", errors.Wrap(err, "create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "write upload file")
	}

	return path.Join(s.baseURL, stored), nil
}
