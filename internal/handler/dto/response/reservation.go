package response

import (
	"time"

	"restaurant-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"durationMinutes"`
	TableID         int64     `json:"tableId"`
	TableNumber     int       `json:"tableNumber"`
	Section         string    `json:"section"`
	CustomerID      int64     `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	GuestCount      int       `json:"guestCount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		Date:            v.Date.String(),
		Time:            v.Time.String(),
		DurationMinutes: v.DurationMinutes,
		TableID:         v.TableID,
		TableNumber:     v.TableNumber,
		Section:         v.SectionName,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   v.CustomerPhone,
		GuestCount:      v.GuestCount,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
