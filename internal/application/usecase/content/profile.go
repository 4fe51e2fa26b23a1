package content

import (
	"context"

	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

// ProfileUseCase handles the profile singleton. There is no id and no
// create/delete; updates replace it wholesale.
type ProfileUseCase struct {
	store  portfolio.Store
	events event.Publisher
}

func NewProfileUseCase(store portfolio.Store, events event.Publisher) *ProfileUseCase {
	return &ProfileUseCase{store: store, events: events}
}

func (uc *ProfileUseCase) Get(ctx context.Context) (*portfolio.Profile, error) {
	doc, err := uc.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &doc.Profile, nil
}

func (uc *ProfileUseCase) Update(ctx context.Context, p portfolio.Profile) error {
	err := uc.store.Update(ctx, func(doc *portfolio.Document) error {
		doc.Profile = p
		return nil
	})
	if err != nil {
		return err
	}

	uc.events.Publish(ctx, "profile", "updated", 0)
	return nil
}
