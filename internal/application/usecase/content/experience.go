package content

import (
	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

func NewExperienceUseCase(store portfolio.Store, events event.Publisher) *CollectionUseCase[portfolio.Experience] {
	return &CollectionUseCase[portfolio.Experience]{
		store:  store,
		events: events,
		entity: "experience",
		slice:  func(doc *portfolio.Document) *[]portfolio.Experience { return &doc.Experiences },
		withID: func(e portfolio.Experience, id int) portfolio.Experience { e.ID = id; return e },
	}
}
