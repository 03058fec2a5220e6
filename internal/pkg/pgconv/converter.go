package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"restaurant-booking/internal/domain/reservation"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d reservation.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: !d.IsZero()}
}

func DateFromPgtype(pd pgtype.Date) reservation.Date {
	if !pd.Valid {
		return reservation.Date{}
	}
	return reservation.DateOf(pd.Time)
}

func TimeOfDayToPgtype(t reservation.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) reservation.TimeOfDay {
	return reservation.TimeOfDayFromDuration(time.Duration(pt.Microseconds) * time.Microsecond)
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
