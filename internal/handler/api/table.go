package api

import (
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	availability queries.AvailabilityQueries
	sections     queries.SectionQueries
}

func NewTableHandler(availability queries.AvailabilityQueries, sections queries.SectionQueries) *TableHandler {
	return &TableHandler{availability: availability, sections: sections}
}

// @Summary Available tables
// @Description Tables seating the party with no confirmed reservation in the conflict window
// @Tags tables
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Param partySize query int true "Party size"
// @Success 200 {array} resdto.TableResponse
// @Failure 400 {object} httperr.Response
// @Router /api/tables/available [get]
func (h *TableHandler) Available(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, at, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	tables, err := h.availability.FindAvailableTables(c.Request.Context(), date, at, q.PartySize)
	if err != nil {
		abortWithUseCaseError(c, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTableViews(tables))
}

// @Summary List sections
// @Description Sections with their tables
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.SectionResponse
// @Router /api/sections [get]
func (h *TableHandler) Sections(c *gin.Context) {
	sections, err := h.sections.ListSections(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list sections", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSectionViews(sections))
}
