package commands

import (
	"context"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

var ErrEmailTaken = errs.Conflict("email already belongs to another customer")

type ContactInput struct {
	Name  string
	Email string
	Phone string
}

// resolveCustomer returns the customer owning the contact's email, creating it
// when absent. An existing record is returned as stored.
func resolveCustomer(ctx context.Context, repo shared.CustomerRepository, tx db.DBTX, contact customer.Contact) (*customer.Customer, error) {
	existing, err := repo.FindByEmail(ctx, tx, contact.Email().Value())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	created := customer.NewCustomer(contact)
	id, err := repo.Create(ctx, tx, created)
	if err != nil {
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		// lost the insert race; the winner's row is visible once its transaction commits
		return repo.FindByEmail(ctx, tx, contact.Email().Value())
	}
	created.AssignID(id)
	return created, nil
}
