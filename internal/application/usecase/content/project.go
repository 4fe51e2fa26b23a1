package content

import (
	"context"

	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

type ProjectUseCase struct {
	*CollectionUseCase[portfolio.Project]
}

func NewProjectUseCase(store portfolio.Store, events event.Publisher) *ProjectUseCase {
	return &ProjectUseCase{
		CollectionUseCase: &CollectionUseCase[portfolio.Project]{
			store:  store,
			events: events,
			entity: "project",
			slice:  func(doc *portfolio.Document) *[]portfolio.Project { return &doc.Projects },
			withID: func(p portfolio.Project, id int) portfolio.Project { p.ID = id; return p },
		},
	}
}

// ListFeatured keeps only featured projects, preserving their relative order.
func (uc *ProjectUseCase) ListFeatured(ctx context.Context) ([]portfolio.Project, error) {
	all, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]portfolio.Project, 0, len(all))
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}
