package workflow

//go:generate mockgen -source=machine.go -destination=../../../tests/mock/workflow/machine_mock.go -package=workflowmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/customer"
	"restaurant-booking/internal/domain/reservation"
	wf "restaurant-booking/internal/domain/workflow"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

const (
	msgContactRequired = "name, email and phone are required"
	msgPastDate        = "date cannot be in the past"
	msgNoTables        = "no tables available"
	msgUnknownTable    = "selected table is not among the available tables"
	msgStoreFailure    = "the reservation could not be saved, please try again"
)

type Notice struct {
	Level   NoticeLevel
	Message string
}

// Step is the outcome of one trigger: the session to carry forward and an
// optional message for the client.
type Step struct {
	Session wf.Session
	Notice  *Notice
}

type Machine interface {
	Start(ctx context.Context) Step
	StartEdit(ctx context.Context, reservationID int64) (Step, error)
	CheckAvailability(ctx context.Context, s wf.Session, d wf.Details) Step
	Confirm(ctx context.Context, s wf.Session, tableID int64) Step
	Back(s wf.Session) Step
}

type machineImpl struct {
	availability queries.AvailabilityQueries
	reservations queries.ReservationQueries
	booking      commands.BookingCommands
	clock        clock.Clock
	loc          *time.Location
}

func NewMachine(
	availability queries.AvailabilityQueries,
	reservations queries.ReservationQueries,
	booking commands.BookingCommands,
	clk clock.Clock,
	loc *time.Location,
) Machine {
	if loc == nil {
		loc = time.UTC
	}
	return &machineImpl{
		availability: availability,
		reservations: reservations,
		booking:      booking,
		clock:        clk,
		loc:          loc,
	}
}

func (m *machineImpl) Start(_ context.Context) Step {
	return Step{Session: wf.NewBooking(uuid.NewString())}
}

// StartEdit fails only when the reservation cannot be loaded; there is no
// session to attach a notice to yet.
func (m *machineImpl) StartEdit(ctx context.Context, reservationID int64) (Step, error) {
	view, err := m.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return Step{}, err
	}
	current := wf.Details{
		Name:       view.CustomerName,
		Email:      view.CustomerEmail,
		Phone:      view.CustomerPhone,
		Date:       view.Date.String(),
		Time:       view.Time.String(),
		GuestCount: view.GuestCount,
	}
	return Step{Session: wf.NewEdit(uuid.NewString(), view.ID, current)}, nil
}

func (m *machineImpl) CheckAvailability(ctx context.Context, s wf.Session, d wf.Details) Step {
	remembered, err := s.Remember(d)
	if err != nil {
		return withError(s, err)
	}

	date, at, guests, err := m.parseDetails(d)
	if err != nil {
		return withError(remembered, err)
	}

	var tables []*queries.TableView
	if s.State.IsEditing() {
		tables, err = m.availability.FindTablesForMove(ctx, s.ReservationID, date, at, guests.Int())
	} else {
		tables, err = m.availability.FindAvailableTables(ctx, date, at, guests.Int())
	}
	if err != nil {
		return m.failed(remembered, err)
	}
	if len(tables) == 0 {
		return Step{Session: remembered, Notice: &Notice{Level: NoticeWarning, Message: msgNoTables}}
	}

	candidates := make([]wf.Candidate, 0, len(tables))
	for _, t := range tables {
		candidates = append(candidates, wf.Candidate{
			TableID:  t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			Section:  t.SectionName,
		})
	}
	next, err := s.SelectFrom(d, candidates)
	if err != nil {
		return withError(remembered, err)
	}
	return Step{
		Session: next,
		Notice:  &Notice{Level: NoticeInfo, Message: fmt.Sprintf("%d tables available", len(candidates))},
	}
}

func (m *machineImpl) Confirm(ctx context.Context, s wf.Session, tableID int64) Step {
	if s.State != wf.StateSelectingTable && s.State != wf.StateEditSelectingTable {
		return withError(s, wf.ErrInvalidTransition)
	}
	if _, ok := s.Candidate(tableID); !ok {
		return Step{Session: s, Notice: &Notice{Level: NoticeError, Message: msgUnknownTable}}
	}
	if s.Details == nil {
		return withError(s, wf.ErrInvalidTransition)
	}
	d := *s.Details

	date, at, guests, err := m.parseDetails(d)
	if err != nil {
		return withError(s, err)
	}

	var (
		saved   int64
		message string
	)
	if s.State == wf.StateEditSelectingTable {
		guestCount := guests.Int()
		res, err := m.booking.UpdateReservation(ctx, s.ReservationID, commands.UpdateReservationInput{
			Name:       &d.Name,
			Email:      &d.Email,
			Phone:      &d.Phone,
			TableID:    &tableID,
			Date:       &date,
			Time:       &at,
			GuestCount: &guestCount,
		})
		if err != nil {
			return m.failed(s, err)
		}
		saved, message = res.ID(), "reservation updated"
	} else {
		res, err := m.booking.CreateReservation(ctx, commands.CreateReservationInput{
			Contact:    commands.ContactInput{Name: d.Name, Email: d.Email, Phone: d.Phone},
			TableID:    tableID,
			Date:       date,
			Time:       at,
			GuestCount: guests.Int(),
		})
		if err != nil {
			return m.failed(s, err)
		}
		saved, message = res.ID(), "reservation confirmed"
	}

	done, err := s.Complete(saved)
	if err != nil {
		return withError(s, err)
	}
	return Step{Session: done, Notice: &Notice{Level: NoticeSuccess, Message: message}}
}

func (m *machineImpl) Back(s wf.Session) Step {
	prev, err := s.Back()
	if err != nil {
		return withError(s, err)
	}
	return Step{Session: prev}
}

// parseDetails applies the form rules: every contact field present and
// well-formed, a party size in range, and a date no earlier than today in the
// restaurant's zone.
func (m *machineImpl) parseDetails(d wf.Details) (reservation.Date, reservation.TimeOfDay, reservation.GuestCount, error) {
	if !d.HasContact() {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, errs.Validation(msgContactRequired)
	}
	if _, err := customer.NewContact(d.Name, d.Email, d.Phone); err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, err
	}
	date, err := reservation.ParseDate(d.Date)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, err
	}
	if date.Before(reservation.DateOf(m.clock.Now().In(m.loc))) {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, errs.Validation(msgPastDate)
	}
	at, err := reservation.ParseTimeOfDay(d.Time)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, err
	}
	guests, err := reservation.NewGuestCount(d.GuestCount)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, reservation.GuestCount{}, err
	}
	return date, at, guests, nil
}

// failed turns a use case error into a notice. Store failures are logged and
// reported generically.
func (m *machineImpl) failed(s wf.Session, err error) Step {
	if errs.Category(err) == nil || errs.Is(err, errs.ErrStore) {
		slog.Error("workflow step failed", "session_id", s.ID, "state", string(s.State), "error", err.Error())
		return Step{Session: s, Notice: &Notice{Level: NoticeError, Message: msgStoreFailure}}
	}
	return withError(s, err)
}

func withError(s wf.Session, err error) Step {
	return Step{Session: s, Notice: &Notice{Level: NoticeError, Message: err.Error()}}
}
