package api

import (
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/jwt"
	usecaseflow "restaurant-booking/internal/usecase/workflow"

	"github.com/gin-gonic/gin"
)

type WorkflowHandler struct {
	machine usecaseflow.Machine
	signer  *jwt.SessionSigner
}

func NewWorkflowHandler(machine usecaseflow.Machine, signer *jwt.SessionSigner) *WorkflowHandler {
	return &WorkflowHandler{machine: machine, signer: signer}
}

// @Summary Start booking
// @Tags workflow
// @Produce json
// @Success 201 {object} resdto.StepResponse
// @Router /api/workflow/sessions [post]
func (h *WorkflowHandler) Start(c *gin.Context) {
	h.respond(c, http.StatusCreated, h.machine.Start(c.Request.Context()))
}

// @Summary Start editing a reservation
// @Description The session is pre-filled with the reservation's current details
// @Tags workflow
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 201 {object} resdto.StepResponse
// @Failure 404 {object} httperr.Response
// @Router /api/workflow/sessions/edit/{id} [post]
func (h *WorkflowHandler) StartEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	step, err := h.machine.StartEdit(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	h.respond(c, http.StatusCreated, step)
}

// @Summary Check availability
// @Description Validates the details and lists candidate tables
// @Tags workflow
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Session token and details"
// @Success 200 {object} resdto.StepResponse
// @Failure 400 {object} httperr.Response
// @Router /api/workflow/check-availability [post]
func (h *WorkflowHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session, err := h.signer.Parse(req.Token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	h.respond(c, http.StatusOK, h.machine.CheckAvailability(c.Request.Context(), session, req.Details.ToDomain()))
}

// @Summary Confirm table
// @Description Books the chosen candidate, or applies the edit
// @Tags workflow
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Session token and table"
// @Success 200 {object} resdto.StepResponse
// @Failure 400 {object} httperr.Response
// @Router /api/workflow/confirm [post]
func (h *WorkflowHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session, err := h.signer.Parse(req.Token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	h.respond(c, http.StatusOK, h.machine.Confirm(c.Request.Context(), session, req.TableID))
}

// @Summary Back to details
// @Tags workflow
// @Accept json
// @Produce json
// @Param request body reqdto.BackRequest true "Session token"
// @Success 200 {object} resdto.StepResponse
// @Failure 400 {object} httperr.Response
// @Router /api/workflow/back [post]
func (h *WorkflowHandler) Back(c *gin.Context) {
	var req reqdto.BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	session, err := h.signer.Parse(req.Token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	h.respond(c, http.StatusOK, h.machine.Back(session))
}

func (h *WorkflowHandler) respond(c *gin.Context, status int, step usecaseflow.Step) {
	token, err := h.signer.Sign(step.Session)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue session token", nil)
		return
	}
	c.JSON(status, resdto.FromStep(token, step))
}
