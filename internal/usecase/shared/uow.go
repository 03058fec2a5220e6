package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Tables() TableRepository
	Customers() CustomerRepository
	Reservations() ReservationRepository
	DB() db.DBTX
}

type TableRepository interface {
	// LockByID takes a row lock that serializes every booking against the table.
	LockByID(ctx context.Context, tx db.DBTX, id int64) (*table.Table, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id int64) (*customer.Customer, error)
	FindByEmail(ctx context.Context, tx db.DBTX, email string) (*customer.Customer, error)
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error
}

type ReservationRepository interface {
	LockByID(ctx context.Context, tx db.DBTX, id int64) (*reservation.Reservation, error)
	ListConfirmedForTable(ctx context.Context, tx db.DBTX, tableID int64, date reservation.Date) ([]reservation.Booked, error)
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error)
	Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}
