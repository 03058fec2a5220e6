package api

import (
	"net/http"

	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps an error category onto a status. Client errors
// carry the error's own message; anything else is reported generically.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch errs.Category(err) {
	case errs.ErrValidation:
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.ErrNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, fallback, nil)
	case errs.ErrConflict:
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
