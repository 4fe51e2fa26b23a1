package media_storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minhvu/portfolio-cms/internal/application/service"
)

// localAdapter writes uploads to a directory served statically by the router
// under /uploads.
type localAdapter struct {
	dir string
}

func NewLocalAdapter(dir string) (service.Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create upload directory %s: %w", dir, err)
	}
	return &localAdapter{dir: dir}, nil
}

func (a *localAdapter) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	dst, err := os.Create(filepath.Join(a.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return "/uploads/" + filename, nil
}
