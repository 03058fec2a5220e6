package request

import "restaurant-booking/internal/domain/workflow"

type DetailsRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date" example:"2025-12-24"`
	Time       string `json:"time" example:"19:00"`
	GuestCount int    `json:"guestCount"`
}

func (d DetailsRequest) ToDomain() workflow.Details {
	return workflow.Details{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Date:       d.Date,
		Time:       d.Time,
		GuestCount: d.GuestCount,
	}
}

type CheckAvailabilityRequest struct {
	Token   string         `json:"token" binding:"required"`
	Details DetailsRequest `json:"details"`
}

type ConfirmRequest struct {
	Token   string `json:"token" binding:"required"`
	TableID int64  `json:"tableId" binding:"required"`
}

type BackRequest struct {
	Token string `json:"token" binding:"required"`
}
