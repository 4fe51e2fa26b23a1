package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

// fileStore keeps the whole document in one pretty-printed JSON file. A
// single mutex serializes read-modify-write cycles so two requests cannot
// allocate the same id or drop each other's changes. Writes go through a
// temp file plus rename, so a crash mid-write leaves the old document intact.
type fileStore struct {
	path   string
	mu     sync.Mutex
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) portfolio.Store {
	return &fileStore{path: path, logger: log}
}

func (s *fileStore) Read(ctx context.Context) (*portfolio.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *fileStore) Update(ctx context.Context, mutate func(*portfolio.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}

	if err := mutate(doc); err != nil {
		return err
	}

	return s.writeLocked(doc)
}

func (s *fileStore) readLocked() (*portfolio.Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc, seedErr := SeedDocument()
		if seedErr != nil {
			return nil, apperror.NewInternal("failed to build seed document", seedErr)
		}
		if writeErr := s.writeLocked(doc); writeErr != nil {
			return nil, writeErr
		}
		s.logger.Info("store file absent, seeded demo content", zap.String("path", s.path))
		return doc, nil
	}
	if err != nil {
		return nil, apperror.NewInternal("failed to read store file", err)
	}

	doc := &portfolio.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, apperror.NewInternal("store file is not valid JSON", err)
	}
	return doc, nil
}

func (s *fileStore) writeLocked(doc *portfolio.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperror.NewInternal("failed to serialize document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperror.NewInternal("failed to create store directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperror.NewInternal("failed to create temp store file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewInternal("failed to write store file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewInternal("failed to close store file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperror.NewInternal(fmt.Sprintf("failed to replace store file %s", s.path), err)
	}
	return nil
}
