package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/minhvu/portfolio-cms/internal/config"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

const redisDocumentKey = "portfolio:document"

func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	return rdb, nil
}

// redisStore holds the whole document serialized under a single key. Same
// contract as the file store; the mutex is process-local, which is enough
// for the single-instance deployment this targets.
type redisStore struct {
	client *redis.Client
	mu     sync.Mutex
	logger logger.Logger
}

func NewRedisStore(client *redis.Client, log logger.Logger) portfolio.Store {
	return &redisStore{client: client, logger: log}
}

func (s *redisStore) Read(ctx context.Context) (*portfolio.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(ctx)
}

func (s *redisStore) Update(ctx context.Context, mutate func(*portfolio.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked(ctx)
	if err != nil {
		return err
	}

	if err := mutate(doc); err != nil {
		return err
	}

	return s.writeLocked(ctx, doc)
}

func (s *redisStore) readLocked(ctx context.Context) (*portfolio.Document, error) {
	raw, err := s.client.Get(ctx, redisDocumentKey).Bytes()
	if errors.Is(err, redis.Nil) {
		doc, seedErr := SeedDocument()
		if seedErr != nil {
			return nil, apperror.NewInternal("failed to build seed document", seedErr)
		}
		if writeErr := s.writeLocked(ctx, doc); writeErr != nil {
			return nil, writeErr
		}
		s.logger.Info("store key absent, seeded demo content")
		return doc, nil
	}
	if err != nil {
		return nil, apperror.NewInternal("failed to read document from redis", err)
	}

	doc := &portfolio.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, apperror.NewInternal("stored document is not valid JSON", err)
	}
	return doc, nil
}

func (s *redisStore) writeLocked(ctx context.Context, doc *portfolio.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return apperror.NewInternal("failed to serialize document", err)
	}
	if err := s.client.Set(ctx, redisDocumentKey, raw, 0).Err(); err != nil {
		return apperror.NewInternal("failed to write document to redis", err)
	}
	return nil
}
