package service

import (
	"context"
	"io"
)

// FileStore defines the interface for persisting uploaded files.
type FileStore interface {
	// SaveProfileImage stores the uploaded image under a unique name and
	// returns the public reference path for the stored file.
	SaveProfileImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
