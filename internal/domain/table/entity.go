package table

import (
	"strings"

	"restaurant-booking/internal/pkg/errs"
)

var (
	ErrEmptySectionName   = errs.Validation("section name cannot be empty")
	ErrSectionNameTooLong = errs.Validation("section name is too long (max 50 characters)")
	ErrInvalidNumber      = errs.Validation("table number must be positive")
	ErrInvalidCapacity    = errs.Validation("table capacity must be positive")
)

const MaxSectionNameLength = 50

type Section struct {
	id          int64
	name        string
	description string
}

func NewSection(name, description string) (*Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySectionName
	}
	if len(name) > MaxSectionNameLength {
		return nil, ErrSectionNameTooLong
	}
	return &Section{name: name, description: strings.TrimSpace(description)}, nil
}

func ReconstructSection(id int64, name, description string) *Section {
	return &Section{id: id, name: name, description: description}
}

func (s *Section) ID() int64           { return s.id }
func (s *Section) Name() string        { return s.name }
func (s *Section) Description() string { return s.description }

// Table capacity is fixed business data and never changes after seeding.
type Table struct {
	id        int64
	number    int
	capacity  int
	sectionID int64
}

func NewTable(number, capacity int, sectionID int64) (*Table, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{number: number, capacity: capacity, sectionID: sectionID}, nil
}

func Reconstruct(id int64, number, capacity int, sectionID int64) *Table {
	return &Table{id: id, number: number, capacity: capacity, sectionID: sectionID}
}

func (t *Table) CanSeat(guests int) bool {
	return guests > 0 && guests <= t.capacity
}

func (t *Table) ID() int64        { return t.id }
func (t *Table) Number() int      { return t.number }
func (t *Table) Capacity() int    { return t.capacity }
func (t *Table) SectionID() int64 { return t.sectionID }
