package repository

import (
	"context"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository/converter"
	"restaurant-booking/internal/pkg/pgconv"
)

const (
	getCustomerByID = `
SELECT id, name, email, phone FROM customers WHERE id = $1`

	getCustomerByEmail = `
SELECT id, name, email, phone FROM customers WHERE email = $1`

	// DO NOTHING leaves the existing record untouched; no row comes back in that case
	insertCustomer = `
INSERT INTO customers (name, email, phone) VALUES ($1, $2, $3)
ON CONFLICT (email) DO NOTHING
RETURNING id`

	updateCustomer = `
UPDATE customers SET name = $2, email = $3, phone = $4 WHERE id = $1`
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*customer.Customer, error) {
	return r.findOne(ctx, tx, getCustomerByID, id)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, tx db.DBTX, email string) (*customer.Customer, error) {
	return r.findOne(ctx, tx, getCustomerByEmail, email)
}

func (r *CustomerRepository) findOne(ctx context.Context, tx db.DBTX, query string, arg any) (*customer.Customer, error) {
	var row converter.CustomerRow
	err := tx.QueryRow(ctx, query, arg).Scan(&row.ID, &row.Name, &row.Email, &row.Phone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return converter.CustomerToDomain(row), nil
}

// Create returns a DUPLICATE_KEY error when another transaction already owns the email.
func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertCustomer, c.Name(), c.Email(), c.Phone()).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("customer email already registered", nil, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error {
	tag, err := tx.Exec(ctx, updateCustomer, c.ID(), c.Name(), c.Email(), c.Phone())
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
