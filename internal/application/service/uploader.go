package service

import (
	"context"
	"io"
)

// Uploader stores one uploaded file under the given name and returns the
// public path or URL clients should reference it by.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}
