package workflow

import (
	"strings"

	"restaurant-booking/internal/pkg/errs"
)

type State string

const (
	StateEnteringDetails     State = "entering_details"
	StateSelectingTable      State = "selecting_table"
	StateConfirmed           State = "confirmed"
	StateEditEnteringDetails State = "edit_entering_details"
	StateEditSelectingTable  State = "edit_selecting_table"
	StateUpdated             State = "updated"
)

var ErrInvalidTransition = errs.Validation("action is not allowed in the current step")

func (s State) IsValid() bool {
	switch s {
	case StateEnteringDetails, StateSelectingTable, StateConfirmed,
		StateEditEnteringDetails, StateEditSelectingTable, StateUpdated:
		return true
	default:
		return false
	}
}

func (s State) IsEditing() bool {
	return s == StateEditEnteringDetails || s == StateEditSelectingTable || s == StateUpdated
}

func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateUpdated
}

func (s State) isEnteringDetails() bool {
	return s == StateEnteringDetails || s == StateEditEnteringDetails
}

func (s State) isSelectingTable() bool {
	return s == StateSelectingTable || s == StateEditSelectingTable
}

// Details is what the client typed in the first step, kept verbatim so the
// form can be shown again after going back.
type Details struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	GuestCount int    `json:"guestCount"`
}

func (d Details) HasContact() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Phone) != ""
}

type Candidate struct {
	TableID  int64  `json:"tableId"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Section  string `json:"section"`
}

// Session is one client's progress through a booking or edit. It is a plain
// value; every transition returns a new Session and leaves the receiver as is.
type Session struct {
	ID            string      `json:"id"`
	State         State       `json:"state"`
	ReservationID int64       `json:"reservationId,omitempty"`
	Details       *Details    `json:"details,omitempty"`
	Candidates    []Candidate `json:"candidates,omitempty"`
	ResultID      int64       `json:"resultId,omitempty"`
}

func NewBooking(id string) Session {
	return Session{ID: id, State: StateEnteringDetails}
}

// NewEdit starts the edit path for an existing reservation, pre-filled with
// its current details.
func NewEdit(id string, reservationID int64, current Details) Session {
	return Session{
		ID:            id,
		State:         StateEditEnteringDetails,
		ReservationID: reservationID,
		Details:       &current,
	}
}

// Remember keeps the typed details without changing state, so a failed check
// still shows the form as it was submitted.
func (s Session) Remember(d Details) (Session, error) {
	if !s.State.isEnteringDetails() {
		return s, ErrInvalidTransition
	}
	s.Details = &d
	return s, nil
}

func (s Session) SelectFrom(d Details, candidates []Candidate) (Session, error) {
	if !s.State.isEnteringDetails() || len(candidates) == 0 {
		return s, ErrInvalidTransition
	}
	next := s
	next.Details = &d
	next.Candidates = append([]Candidate(nil), candidates...)
	if s.State == StateEditEnteringDetails {
		next.State = StateEditSelectingTable
	} else {
		next.State = StateSelectingTable
	}
	return next, nil
}

func (s Session) Back() (Session, error) {
	if !s.State.isSelectingTable() {
		return s, ErrInvalidTransition
	}
	next := s
	next.Candidates = nil
	if s.State == StateEditSelectingTable {
		next.State = StateEditEnteringDetails
	} else {
		next.State = StateEnteringDetails
	}
	return next, nil
}

func (s Session) Candidate(tableID int64) (Candidate, bool) {
	for _, c := range s.Candidates {
		if c.TableID == tableID {
			return c, true
		}
	}
	return Candidate{}, false
}

// Complete ends the session. All transient data is dropped and only the id
// of the resulting reservation is kept.
func (s Session) Complete(reservationID int64) (Session, error) {
	if !s.State.isSelectingTable() {
		return s, ErrInvalidTransition
	}
	state := StateConfirmed
	if s.State == StateEditSelectingTable {
		state = StateUpdated
	}
	return Session{ID: s.ID, State: state, ResultID: reservationID}, nil
}
