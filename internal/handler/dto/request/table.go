package request

import "restaurant-booking/internal/domain/reservation"

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required" example:"2025-12-24"`
	Time      string `form:"time" binding:"required" example:"19:00"`
	PartySize int    `form:"partySize"`
}

func (q *AvailabilityQuery) ToDomain() (reservation.Date, reservation.TimeOfDay, error) {
	date, err := reservation.ParseDate(q.Date)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, err
	}
	at, err := reservation.ParseTimeOfDay(q.Time)
	if err != nil {
		return reservation.Date{}, reservation.TimeOfDay{}, err
	}
	return date, at, nil
}
