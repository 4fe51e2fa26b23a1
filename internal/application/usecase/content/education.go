package content

import (
	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

func NewEducationUseCase(store portfolio.Store, events event.Publisher) *CollectionUseCase[portfolio.Education] {
	return &CollectionUseCase[portfolio.Education]{
		store:  store,
		events: events,
		entity: "education",
		slice:  func(doc *portfolio.Document) *[]portfolio.Education { return &doc.Education },
		withID: func(e portfolio.Education, id int) portfolio.Education { e.ID = id; return e },
	}
}

func NewCertificationUseCase(store portfolio.Store, events event.Publisher) *CollectionUseCase[portfolio.Certification] {
	return &CollectionUseCase[portfolio.Certification]{
		store:  store,
		events: events,
		entity: "certification",
		slice:  func(doc *portfolio.Document) *[]portfolio.Certification { return &doc.Certifications },
		withID: func(c portfolio.Certification, id int) portfolio.Certification { c.ID = id; return c },
	}
}

func NewSkillGroupUseCase(store portfolio.Store, events event.Publisher) *CollectionUseCase[portfolio.SkillGroup] {
	return &CollectionUseCase[portfolio.SkillGroup]{
		store:  store,
		events: events,
		entity: "skillGroup",
		slice:  func(doc *portfolio.Document) *[]portfolio.SkillGroup { return &doc.SkillGroups },
		withID: func(s portfolio.SkillGroup, id int) portfolio.SkillGroup { s.ID = id; return s },
	}
}
