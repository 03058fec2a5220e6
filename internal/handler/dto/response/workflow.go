package response

import (
	"restaurant-booking/internal/domain/workflow"
	usecaseflow "restaurant-booking/internal/usecase/workflow"
)

type NoticeResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type CandidateResponse struct {
	TableID  int64  `json:"tableId"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Section  string `json:"section"`
}

// StepResponse exposes the session to the client. The token carries the same
// session and must be sent back with the next step.
type StepResponse struct {
	Token         string              `json:"token"`
	State         string              `json:"state"`
	ReservationID *int64              `json:"reservationId,omitempty"`
	Details       *workflow.Details   `json:"details,omitempty"`
	Candidates    []CandidateResponse `json:"candidates"`
	ResultID      *int64              `json:"resultId,omitempty"`
	Notice        *NoticeResponse     `json:"notice,omitempty"`
}

func FromStep(token string, step usecaseflow.Step) *StepResponse {
	s := step.Session
	out := &StepResponse{
		Token:      token,
		State:      string(s.State),
		Details:    s.Details,
		Candidates: make([]CandidateResponse, len(s.Candidates)),
	}
	for i, c := range s.Candidates {
		out.Candidates[i] = CandidateResponse(c)
	}
	if s.ReservationID != 0 {
		id := s.ReservationID
		out.ReservationID = &id
	}
	if s.ResultID != 0 {
		id := s.ResultID
		out.ResultID = &id
	}
	if step.Notice != nil {
		out.Notice = &NoticeResponse{Level: string(step.Notice.Level), Message: step.Notice.Message}
	}
	return out
}
