// Package content implements the CRUD use cases for the portfolio
// collections. All five collections share the same lifecycle, so the
// operations are written once over the document's entity types; each entity
// gets a thin constructor binding its document slice.
package content

import (
	"context"

	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
)

type CollectionUseCase[T portfolio.Entity] struct {
	store  portfolio.Store
	events event.Publisher
	entity string
	slice  func(*portfolio.Document) *[]T
	withID func(T, int) T
}

func (uc *CollectionUseCase[T]) List(ctx context.Context) ([]T, error) {
	doc, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return *uc.slice(doc), nil
}

func (uc *CollectionUseCase[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	doc, err := uc.store.Read(ctx)
	if err != nil {
		return zero, err
	}

	items := *uc.slice(doc)
	idx := portfolio.IndexOf(items, id)
	if idx < 0 {
		return zero, apperror.NewNotFound(uc.entity, id)
	}
	return items[idx], nil
}

// Create allocates the id inside the store's critical section, appends and
// persists. The returned id is the one assigned, whatever the payload carried.
func (uc *CollectionUseCase[T]) Create(ctx context.Context, item T) (int, error) {
	var newID int
	err := uc.store.Update(ctx, func(doc *portfolio.Document) error {
		items := uc.slice(doc)
		newID = portfolio.NextID(*items)
		*items = append(*items, uc.withID(item, newID))
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.events.Publish(ctx, uc.entity, "created", newID)
	return newID, nil
}

// Update replaces the element wholesale. The path id always wins over any id
// in the payload.
func (uc *CollectionUseCase[T]) Update(ctx context.Context, id int, item T) error {
	err := uc.store.Update(ctx, func(doc *portfolio.Document) error {
		items := uc.slice(doc)
		idx := portfolio.IndexOf(*items, id)
		if idx < 0 {
			return apperror.NewNotFound(uc.entity, id)
		}
		(*items)[idx] = uc.withID(item, id)
		return nil
	})
	if err != nil {
		return err
	}

	uc.events.Publish(ctx, uc.entity, "updated", id)
	return nil
}

func (uc *CollectionUseCase[T]) Delete(ctx context.Context, id int) error {
	err := uc.store.Update(ctx, func(doc *portfolio.Document) error {
		items := uc.slice(doc)
		idx := portfolio.IndexOf(*items, id)
		if idx < 0 {
			return apperror.NewNotFound(uc.entity, id)
		}
		*items = append((*items)[:idx], (*items)[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	uc.events.Publish(ctx, uc.entity, "deleted", id)
	return nil
}
