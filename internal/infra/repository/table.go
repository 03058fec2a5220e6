package repository

import (
	"context"

	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository/converter"
	"restaurant-booking/internal/pkg/pgconv"
)

const lockTableByID = `
SELECT id, number, capacity, section_id
FROM tables
WHERE id = $1
FOR UPDATE`

type TableRepository struct{}

func NewTableRepository() *TableRepository {
	return &TableRepository{}
}

func (r *TableRepository) LockByID(ctx context.Context, tx db.DBTX, id int64) (*table.Table, error) {
	var row converter.TableRow
	err := tx.QueryRow(ctx, lockTableByID, id).Scan(&row.ID, &row.Number, &row.Capacity, &row.SectionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock table", err)
	}
	return converter.TableToDomain(row), nil
}
