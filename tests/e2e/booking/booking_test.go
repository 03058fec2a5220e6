//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/dbtest"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/%d"
	availableURL    = "/api/tables/available?date=%s&time=%s&partySize=%d"
	sectionsURL     = "/api/sections"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createReservation(t *testing.T, req request.CreateReservationRequest) response.ReservationResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
	var created response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func tableNumbers(tables []response.TableResponse) []int {
	numbers := make([]int, 0, len(tables))
	for _, tbl := range tables {
		numbers = append(numbers, tbl.Number)
	}
	return numbers
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: reservation is created with the customer", func() {
		t := s.T()
		tableID := dbtest.TableID(t, s.DB, 3)

		req := builder.NewReservationBuilder().
			WithTable(tableID, 3).
			WithContact("Hanako Yamada", "Hanako@Example.com", "090-1234-5678").
			WithGuests(5).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, fmt.Sprintf(reservationURL, created.ID), w.Header().Get("Location"))

		want := response.ReservationResponse{
			Date:            "2030-06-15",
			Time:            "19:00",
			DurationMinutes: 120,
			TableID:         tableID,
			TableNumber:     3,
			Section:         "Main Floor",
			CustomerName:    "Hanako Yamada",
			CustomerEmail:   "hanako@example.com",
			CustomerPhone:   "090-1234-5678",
			GuestCount:      5,
			Status:          "confirmed",
		}
		opts := cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CustomerID", "CreatedAt")
		if diff := cmp.Diff(want, created, opts); diff != "" {
			t.Errorf("created reservation mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Normal case: the same email reuses the customer", func() {
		t := s.T()
		tableID := dbtest.TableID(t, s.DB, 1)

		first := s.createReservation(t, builder.NewReservationBuilder().
			WithTable(tableID, 1).WithSlot("2030-06-15", "12:00").BuildCreateRequestDTO())
		second := s.createReservation(t, builder.NewReservationBuilder().
			WithTable(tableID, 1).WithSlot("2030-06-16", "12:00").
			WithContact("Someone Else", "HANAKO@example.com", "000").BuildCreateRequestDTO())

		require.Equal(t, first.CustomerID, second.CustomerID)
		require.Equal(t, "Hanako Yamada", second.CustomerName, "existing record is kept as stored")
	})

	s.Run("Conflict: 19:30 overlaps 18:00 but 22:30 does not", func() {
		t := s.T()
		tableID := dbtest.TableID(t, s.DB, 1)
		base := func() *builder.ReservationBuilder {
			return builder.NewReservationBuilder().WithTable(tableID, 1).WithGuests(2)
		}

		s.createReservation(t, base().WithSlot("2030-06-15", "18:00").BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			base().WithSlot("2030-06-15", "19:30").BuildCreateRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reserved")

		s.createReservation(t, base().WithSlot("2030-06-15", "22:30").BuildCreateRequestDTO())
		s.createReservation(t, base().WithSlot("2030-06-16", "19:30").BuildCreateRequestDTO())
		require.Equal(t, 3, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Conflict: cancelled reservations do not block the slot", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Taro", "taro@example.com", "111")
		dbtest.CreateTestReservation(t, s.DB, 1, customerID, "2030-06-15", "19:00", 2, "cancelled")

		s.createReservation(t, builder.NewReservationBuilder().
			WithTable(dbtest.TableID(t, s.DB, 1), 1).WithGuests(2).BuildCreateRequestDTO())
	})

	s.Run("Conflict: party larger than the table", func() {
		t := s.T()
		req := builder.NewReservationBuilder().WithTable(dbtest.TableID(t, s.DB, 4), 4).WithGuests(3).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "capacity")
	})

	s.Run("Not found: unknown table", func() {
		t := s.T()
		req := builder.NewReservationBuilder().WithTable(9999, 0).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Validation: bad input is rejected", func() {
		t := s.T()
		cases := []struct {
			name   string
			mutate func(b *builder.ReservationBuilder)
		}{
			{name: "bad email", mutate: func(b *builder.ReservationBuilder) { b.Email = "not-an-email" }},
			{name: "zero guests", mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 }},
			{name: "too many guests", mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 21 }},
			{name: "bad date", mutate: func(b *builder.ReservationBuilder) { b.Date = "15/06/2030" }},
			{name: "bad time", mutate: func(b *builder.ReservationBuilder) { b.Time = "25:00" }},
			{name: "missing name", mutate: func(b *builder.ReservationBuilder) { b.Name = "" }},
		}
		for _, tc := range cases {
			req := builder.NewReservationBuilder().With(tc.mutate).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
			require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", tc.name, w.Body.String())
		}
		require.Equal(t, 0, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Concurrency: only one of many identical requests wins", func() {
		t := s.T()
		req := builder.NewReservationBuilder().WithTable(dbtest.TableID(t, s.DB, 2), 2).BuildCreateRequestDTO()
		body, err := json.Marshal(req)
		require.NoError(t, err)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r := nethttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(body))
				r.Header.Set("Content-Type", "application/json")
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, r)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicted, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountReservations(t, s.DB))
	})
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: booked and small tables are excluded", func() {
		t := s.T()
		s.createReservation(t, builder.NewReservationBuilder().
			WithTable(dbtest.TableID(t, s.DB, 1), 1).WithSlot("2030-06-15", "18:00").WithGuests(2).BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availableURL, "2030-06-15", "19:30", 4), nil)
		var tables []response.TableResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tables)

		if diff := cmp.Diff([]int{2, 3, 5, 6}, tableNumbers(tables)); diff != "" {
			t.Errorf("available tables mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Edge case: a party nobody can seat gets an empty list", func() {
		t := s.T()
		for _, size := range []int{0, 9} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availableURL, "2030-06-15", "19:00", size), nil)
			var tables []response.TableResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &tables)
			require.NotNil(t, tables)
			require.Empty(t, tables)
		}
	})

	s.Run("Validation: malformed date", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availableURL, "tomorrow", "19:00", 2), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("Normal case: sections list the seeded floor plan", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sectionsURL, nil)
		var sections []response.SectionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sections)

		require.Len(t, sections, 3)
		total := 0
		for _, sec := range sections {
			total += len(sec.Tables)
		}
		require.Equal(t, 6, total)
	})
}

// =============================================================================
// TestUpdateAndDeleteReservation
// =============================================================================

func (s *BookingSuite) TestUpdateReservation() {
	s.Run("Normal case: moving the reservation ignores its own slot", func() {
		t := s.T()
		created := s.createReservation(t, builder.NewReservationBuilder().
			WithTable(dbtest.TableID(t, s.DB, 1), 1).WithGuests(2).BuildCreateRequestDTO())

		newTime := "20:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID),
			request.UpdateReservationRequest{Time: &newTime})
		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)

		require.Equal(t, "20:00", updated.Time)
		require.Equal(t, created.TableID, updated.TableID)
		require.Equal(t, 2, updated.GuestCount)
	})

	s.Run("Normal case: contact changes reach the customer", func() {
		t := s.T()
		created := s.createReservation(t, builder.NewReservationBuilder().
			WithTable(dbtest.TableID(t, s.DB, 1), 1).WithGuests(2).BuildCreateRequestDTO())

		phone := "080-9999-0000"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID),
			request.UpdateReservationRequest{Phone: &phone})
		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)

		require.Equal(t, phone, updated.CustomerPhone)
		require.Equal(t, created.CustomerID, updated.CustomerID)
	})

	s.Run("Conflict: moving onto a booked slot", func() {
		t := s.T()
		tableID := dbtest.TableID(t, s.DB, 1)
		s.createReservation(t, builder.NewReservationBuilder().
			WithTable(tableID, 1).WithSlot("2030-06-15", "12:00").WithGuests(2).BuildCreateRequestDTO())
		other := s.createReservation(t, builder.NewReservationBuilder().
			WithTable(tableID, 1).WithSlot("2030-06-15", "19:00").WithGuests(2).
			WithContact("Taro", "taro@example.com", "111").BuildCreateRequestDTO())

		moved := "13:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, other.ID),
			request.UpdateReservationRequest{Time: &moved})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reserved")
	})

	s.Run("Not found: unknown reservation", func() {
		t := s.T()
		guests := 2
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, 424242),
			request.UpdateReservationRequest{GuestCount: &guests})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})
}

func (s *BookingSuite) TestDeleteReservation() {
	s.Run("Normal case: delete frees the slot", func() {
		t := s.T()
		req := builder.NewReservationBuilder().WithTable(dbtest.TableID(t, s.DB, 1), 1).WithGuests(2).BuildCreateRequestDTO()
		created := s.createReservation(t, req)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, created.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

		s.createReservation(t, req)
	})

	s.Run("Not found: unknown reservation", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, 424242), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("Normal case: list returns reservations ordered by id", func() {
		t := s.T()
		tableID := dbtest.TableID(t, s.DB, 1)
		a := s.createReservation(t, builder.NewReservationBuilder().WithTable(tableID, 1).WithSlot("2030-06-15", "12:00").WithGuests(2).BuildCreateRequestDTO())
		b := s.createReservation(t, builder.NewReservationBuilder().WithTable(tableID, 1).WithSlot("2030-06-15", "18:00").WithGuests(2).BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil)
		var list []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		require.Equal(t, []int64{a.ID, b.ID}, []int64{list[0].ID, list[1].ID})
	})
}
