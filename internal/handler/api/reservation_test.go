//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/handler/api"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/common/testutil"
	commandsmock "restaurant-booking/tests/mock/commands"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PUT("/reservations/:id", s.handler.Update)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	created := builder.NewReservationBuilder().WithID(42).BuildDomain()
	view := builder.NewReservationBuilder().WithID(42).BuildView()

	bound := []testCaseReservation{
		{name: "guestCount boundary OK (1)", mutate: testutil.Field("guestCount", 1), expectCode: http.StatusCreated},
		{name: "guestCount boundary OK (20)", mutate: testutil.Field("guestCount", 20), expectCode: http.StatusCreated},
		{name: "guestCount boundary invalid (0)", mutate: testutil.Field("guestCount", 0), expectCode: http.StatusBadRequest},
		{name: "guestCount boundary invalid (21)", mutate: testutil.Field("guestCount", 21), expectCode: http.StatusBadRequest},
		{name: "name length OK (100 chars)", mutate: testutil.Field("name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "name length invalid (101 chars)", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "phone length invalid (21 chars)", mutate: testutil.Field("phone", strings.Repeat("1", 21)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone (required)", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: tableId (required)", mutate: testutil.Field("tableId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
	}

	format := []testCaseReservation{
		{name: "invalid email", mutate: testutil.Field("email", "hanako.example.com"), expectCode: http.StatusBadRequest},
		{name: "invalid date", mutate: testutil.Field("date", "2030/06/15"), expectCode: http.StatusBadRequest},
		{name: "invalid time", mutate: testutil.Field("time", "7pm"), expectCode: http.StatusBadRequest},
		{name: "time with seconds is accepted", mutate: testutil.Field("time", "19:00:00"), expectCode: http.StatusCreated},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing, format}

	s.Run("success: returns 201 Created with the stored reservation", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*reservation.Reservation, error) {
				s.Equal("hanako@example.com", in.Contact.Email)
				s.Equal("2030-06-15", in.Date.String())
				s.Equal("19:00", in.Time.String())
				return created, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		if diff := cmp.Diff(*resdto.FromReservationView(view), body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/42"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(view, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: use case failures map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "slot taken", err: reservation.ErrTableUnavailable, expectCode: http.StatusConflict, expectMsg: "already reserved"},
			{name: "table too small", err: reservation.ErrInsufficientCapacity, expectCode: http.StatusConflict, expectMsg: "capacity"},
			{name: "unknown table", err: infra.WrapRepoErr("table not found", nil, infra.KindNotFound), expectCode: http.StatusNotFound, expectMsg: "Table not found"},
			{name: "domain validation", err: reservation.ErrInvalidGuestCount, expectCode: http.StatusBadRequest, expectMsg: "guest count"},
			{name: "store failure", err: infra.WrapRepoErr("failed to insert reservation", errors.New("connection reset")), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
			{name: "uncategorized", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation", func() {
		view := builder.NewReservationBuilder().WithID(7).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/7", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("2030-06-15", body.Date)
		s.Equal("19:00", body.Time)
		s.Equal(120, body.DurationMinutes)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(8)).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/8", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	for _, id := range []string{"abc", "0", "-1"} {
		s.Run(fmt.Sprintf("error: 400 for id %q", id), func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		})
	}
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: empty store is an empty array", func() {
		s.mockQueries.EXPECT().ListCurrent(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	s.Run("success: only provided fields are passed on", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, in commands.UpdateReservationInput) (*reservation.Reservation, error) {
				s.Nil(in.Name)
				s.Nil(in.TableID)
				s.Require().NotNil(in.Time)
				s.Equal("20:30", in.Time.String())
				s.Require().NotNil(in.GuestCount)
				s.Equal(3, *in.GuestCount)
				return builder.NewReservationBuilder().WithID(7).BuildDomain(), nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(builder.NewReservationBuilder().WithID(7).WithSlot("2030-06-15", "20:30").WithGuests(3).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/7",
			map[string]any{"time": "20:30", "guestCount": 3})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("20:30", body.Time)
		s.Equal(3, body.GuestCount)
	})

	s.Run("error: 409 when the email belongs to someone else", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), int64(7), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/7",
			map[string]any{"email": "taken@example.com"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already belongs")
	})

	s.Run("error: 400 on malformed fields", func() {
		for _, body := range []map[string]any{
			{"email": "nope"},
			{"guestCount": 0},
			{"date": "tomorrow"},
			{"time": "25:61"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/7", body)
			s.Equal(http.StatusBadRequest, rec.Code, "%v: %s", body, rec.Body.String())
		}
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), int64(7)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), int64(7)).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/7", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
