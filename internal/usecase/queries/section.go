package queries

//go:generate mockgen -source=section.go -destination=../../../tests/mock/queries/section_mock.go -package=queriesmock

import "context"

type SectionQueries interface {
	ListSections(ctx context.Context) ([]*SectionView, error)
}

type sectionQueriesImpl struct {
	store TableReadStore
}

func NewSectionQueries(store TableReadStore) SectionQueries {
	return &sectionQueriesImpl{store: store}
}

func (q *sectionQueriesImpl) ListSections(ctx context.Context) ([]*SectionView, error) {
	return q.store.ListSections(ctx)
}
