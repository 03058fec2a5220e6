package api

import (
	"net/http"
	"time"

	"restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q     queries.AnalyticsQueries
	clock clock.Clock
	loc   *time.Location
}

func NewAnalyticsHandler(q queries.AnalyticsQueries, clk clock.Clock, loc *time.Location) *AnalyticsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsHandler{q: q, clock: clk, loc: loc}
}

// @Summary Reservation analytics
// @Description Metrics over confirmed reservations. Dates default to the current month.
// @Tags analytics
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param section query string false "Section name"
// @Param minGuests query int false "Minimum party size"
// @Param maxGuests query int false "Maximum party size"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	var q reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := q.ToFilter(reservation.DateOf(h.clock.Now().In(h.loc)))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	bundle, err := h.q.GetAnalytics(c.Request.Context(), filter)
	if err != nil {
		abortWithUseCaseError(c, err, "Not found")
		return
	}
	resp, err := resdto.FromMetricsBundle(bundle)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build analytics", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
