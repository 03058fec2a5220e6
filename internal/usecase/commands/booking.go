package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/patch"
	"restaurant-booking/internal/usecase/shared"
)

type CreateReservationInput struct {
	Contact    ContactInput
	TableID    int64
	Date       reservation.Date
	Time       reservation.TimeOfDay
	GuestCount int
}

// UpdateReservationInput carries optional fields; nil keeps the stored value.
type UpdateReservationInput struct {
	Name       *string
	Email      *string
	Phone      *string
	TableID    *int64
	Date       *reservation.Date
	Time       *reservation.TimeOfDay
	GuestCount *int
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, in UpdateReservationInput) (*reservation.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	invalidator shared.CacheInvalidator
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, invalidator shared.CacheInvalidator) BookingCommands {
	if invalidator == nil {
		invalidator = shared.NopInvalidator{}
	}
	return &bookingCommandsImpl{
		uow:         uow,
		clock:       clk,
		invalidator: invalidator,
	}
}

func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	contact, err := customer.NewContact(in.Contact.Name, in.Contact.Email, in.Contact.Phone)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuestCount(in.GuestCount)
	if err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, reservation.ErrInvalidDate
	}
	if in.TableID <= 0 {
		return nil, reservation.ErrMissingTable
	}

	var created *reservation.Reservation
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := b.ensureSlotFree(ctx, tx, in.TableID, in.Date, in.Time, guests, 0); err != nil {
			return err
		}

		owner, err := resolveCustomer(ctx, tx.Customers(), tx.DB(), contact)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(in.TableID, owner.ID(), in.Date, in.Time, guests, b.clock.Now())
		if err != nil {
			return err
		}
		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		res.AssignID(id)
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"table_id", created.TableID(),
		"date", created.Date().String(),
		"time", created.Time().String(),
		"guests", created.GuestCount().Int())
	b.invalidator.Invalidate(ctx)
	return created, nil
}

func (b *bookingCommandsImpl) UpdateReservation(ctx context.Context, id int64, in UpdateReservationInput) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		owner, err := tx.Customers().FindByID(ctx, tx.DB(), current.CustomerID())
		if err != nil {
			return err
		}

		contact, err := customer.NewContact(
			patch.CoalesceText(in.Name, owner.Name()),
			patch.CoalesceText(in.Email, owner.Email()),
			patch.CoalesceText(in.Phone, owner.Phone()),
		)
		if err != nil {
			return err
		}
		guests, err := reservation.NewGuestCount(patch.Coalesce(in.GuestCount, current.GuestCount().Int()))
		if err != nil {
			return err
		}
		tableID := patch.Coalesce(in.TableID, current.TableID())
		date := patch.Coalesce(in.Date, current.Date())
		at := patch.Coalesce(in.Time, current.Time())

		if err := b.ensureSlotFree(ctx, tx, tableID, date, at, guests, current.ID()); err != nil {
			return err
		}
		if err := current.Reschedule(tableID, date, at, guests); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), current); err != nil {
			return err
		}

		if err := b.applyContact(ctx, tx, owner, contact); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation updated", "reservation_id", updated.ID(), "table_id", updated.TableID())
	b.invalidator.Invalidate(ctx)
	return updated, nil
}

func (b *bookingCommandsImpl) DeleteReservation(ctx context.Context, id int64) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return err
	}

	slog.Info("reservation deleted", "reservation_id", id)
	b.invalidator.Invalidate(ctx)
	return nil
}

// ensureSlotFree locks the table row and checks capacity and the conflict
// window against the table's confirmed reservations. exclude skips the
// reservation being moved.
func (b *bookingCommandsImpl) ensureSlotFree(ctx context.Context, tx shared.Tx, tableID int64, date reservation.Date, at reservation.TimeOfDay, guests reservation.GuestCount, exclude int64) error {
	tbl, err := tx.Tables().LockByID(ctx, tx.DB(), tableID)
	if err != nil {
		return err
	}
	if !tbl.CanSeat(guests.Int()) {
		return reservation.ErrInsufficientCapacity
	}

	booked, err := tx.Reservations().ListConfirmedForTable(ctx, tx.DB(), tableID, date)
	if err != nil {
		return err
	}
	if hit, found := reservation.FindConflict(at, booked, exclude); found {
		slog.Debug("slot conflict",
			"table_id", tableID,
			"date", date.String(),
			"requested", at.String(),
			"existing_reservation_id", hit.ReservationID,
			"existing_time", hit.Time.String())
		return reservation.ErrTableUnavailable
	}
	return nil
}

// applyContact writes the contact onto the customer record shared by all of its
// reservations. An email owned by someone else is refused.
func (b *bookingCommandsImpl) applyContact(ctx context.Context, tx shared.Tx, owner *customer.Customer, contact customer.Contact) error {
	if contact.Email().Value() != owner.Email() {
		other, err := tx.Customers().FindByEmail(ctx, tx.DB(), contact.Email().Value())
		switch {
		case err == nil && other.ID() != owner.ID():
			return ErrEmailTaken
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}
	}

	owner.UpdateContact(contact)
	if err := tx.Customers().Update(ctx, tx.DB(), owner); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
