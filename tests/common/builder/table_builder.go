//go:build unit || e2e

package builder

import (
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/usecase/queries"
)

type TableBuilder struct {
	ID          int64
	Number      int
	Capacity    int
	SectionID   int64
	SectionName string
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:          1,
		Number:      1,
		Capacity:    4,
		SectionID:   1,
		SectionName: "Main Floor",
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) BuildDomain() *table.Table {
	return table.Reconstruct(b.ID, b.Number, b.Capacity, b.SectionID)
}

func (b *TableBuilder) BuildView() *queries.TableView {
	return &queries.TableView{
		ID:          b.ID,
		Number:      b.Number,
		Capacity:    b.Capacity,
		SectionID:   b.SectionID,
		SectionName: b.SectionName,
	}
}
