package request

import (
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/usecase/commands"
)

type CreateReservationRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=100"`
	Phone      string `json:"phone" binding:"required,max=20"`
	TableID    int64  `json:"tableId" binding:"required,min=1"`
	Date       string `json:"date" binding:"required" example:"2025-12-24"`
	Time       string `json:"time" binding:"required" example:"19:00"`
	GuestCount int    `json:"guestCount" binding:"required,min=1,max=20"`
}

func (r *CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	at, err := reservation.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		Contact: commands.ContactInput{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		TableID:    r.TableID,
		Date:       date,
		Time:       at,
		GuestCount: r.GuestCount,
	}, nil
}

// UpdateReservationRequest fields are optional; omitted ones keep their stored value.
type UpdateReservationRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email,max=100"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	TableID    *int64  `json:"tableId" binding:"omitempty,min=1"`
	Date       *string `json:"date" example:"2025-12-24"`
	Time       *string `json:"time" example:"19:00"`
	GuestCount *int    `json:"guestCount" binding:"omitempty,min=1,max=20"`
}

func (r *UpdateReservationRequest) ToInput() (commands.UpdateReservationInput, error) {
	in := commands.UpdateReservationInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		TableID:    r.TableID,
		GuestCount: r.GuestCount,
	}
	if r.Date != nil {
		date, err := reservation.ParseDate(*r.Date)
		if err != nil {
			return commands.UpdateReservationInput{}, err
		}
		in.Date = &date
	}
	if r.Time != nil {
		at, err := reservation.ParseTimeOfDay(*r.Time)
		if err != nil {
			return commands.UpdateReservationInput{}, err
		}
		in.Time = &at
	}
	return in, nil
}
