//go:build e2e

package analytics_test

import (
	"context"
	"net/http"
	"testing"

	"restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/dbtest"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const juneURL = "/api/analytics?from=2030-06-01&to=2030-06-30"

type AnalyticsSuite struct {
	e2e.SharedSuite
}

func (s *AnalyticsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAnalyticsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AnalyticsSuite))
}

// seeds three confirmed June reservations plus rows every filter must ignore
func (s *AnalyticsSuite) seedJune(t *testing.T) {
	t.Helper()
	hanako := dbtest.CreateTestCustomer(t, s.DB, "Hanako Yamada", "hanako@example.com", "090-1234-5678")
	taro := dbtest.CreateTestCustomer(t, s.DB, "Taro Suzuki", "taro@example.com", "03-0000-0000")

	dbtest.CreateTestReservation(t, s.DB, 1, hanako, "2030-06-03", "18:00", 2, "confirmed")
	dbtest.CreateTestReservation(t, s.DB, 2, taro, "2030-06-03", "19:00", 4, "confirmed")
	dbtest.CreateTestReservation(t, s.DB, 5, hanako, "2030-06-04", "19:00", 6, "confirmed")

	dbtest.CreateTestReservation(t, s.DB, 6, taro, "2030-06-05", "19:00", 8, "cancelled")
	dbtest.CreateTestReservation(t, s.DB, 6, taro, "2030-07-01", "19:00", 8, "confirmed")
}

func (s *AnalyticsSuite) getAnalytics(t *testing.T, url string) response.AnalyticsResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
	var body response.AnalyticsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

func (s *AnalyticsSuite) TestMetrics() {
	s.Run("Normal case: every metric over the date range", func() {
		t := s.T()
		s.seedJune(t)

		got := s.getAnalytics(t, juneURL)

		require.Equal(t, 3, got.TotalReservations)
		require.InDelta(t, 4.0, got.AvgPartySize, 0.001)
		require.InDelta(t, 50.0, got.TableUtilization, 0.001)
		require.NotNil(t, got.BusiestDate)
		require.Equal(t, "2030-06-03", *got.BusiestDate)
		require.NotNil(t, got.PeakTime)
		require.Equal(t, "19:00", *got.PeakTime)
		require.NotNil(t, got.PopularSection)
		require.Equal(t, "Main Floor", *got.PopularSection)

		wantBuckets := []response.BucketCountResponse{
			{Label: "1-2", Count: 1}, {Label: "3-4", Count: 1}, {Label: "5-6", Count: 1}, {Label: "7+", Count: 0},
		}
		if diff := cmp.Diff(wantBuckets, got.PartySizes); diff != "" {
			t.Errorf("party sizes mismatch (-want +got):\n%s", diff)
		}
		wantDaily := []response.DailyCountResponse{{Date: "2030-06-03", Count: 2}, {Date: "2030-06-04", Count: 1}}
		if diff := cmp.Diff(wantDaily, got.Daily); diff != "" {
			t.Errorf("daily mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: section and party size filters narrow every metric", func() {
		t := s.T()
		s.seedJune(t)

		patio := s.getAnalytics(t, juneURL+"&section=Patio")
		require.Equal(t, 1, patio.TotalReservations)
		require.Equal(t, []response.SectionCountResponse{{Section: "Patio", Count: 1}}, patio.Sections)

		large := s.getAnalytics(t, juneURL+"&minGuests=4")
		require.Equal(t, 2, large.TotalReservations)
		require.InDelta(t, 5.0, large.AvgPartySize, 0.001)
	})

	s.Run("Edge case: nothing matched", func() {
		t := s.T()

		got := s.getAnalytics(t, juneURL)

		require.Equal(t, 0, got.TotalReservations)
		require.Nil(t, got.BusiestDate)
		require.Nil(t, got.PeakTime)
		require.Nil(t, got.PopularSection)
		require.Empty(t, got.Daily)
		require.Len(t, got.PartySizes, 4)
	})

	s.Run("Validation: reversed range", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/analytics?from=2030-06-30&to=2030-06-01", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "start date must not be after end date")
	})
}

func (s *AnalyticsSuite) TestCache() {
	s.Run("Normal case: a booking through the API invalidates cached metrics", func() {
		t := s.T()
		s.seedJune(t)

		require.Equal(t, 3, s.getAnalytics(t, juneURL).TotalReservations)
		keys, err := s.Redis.Keys(context.Background(), "analytics:*").Result()
		require.NoError(t, err)
		require.NotEmpty(t, keys, "metrics should be cached after the first read")

		req := builder.NewReservationBuilder().
			WithTable(dbtest.TableID(t, s.DB, 3), 3).
			WithSlot("2030-06-10", "12:00").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.Equal(t, 4, s.getAnalytics(t, juneURL).TotalReservations)
	})
}
