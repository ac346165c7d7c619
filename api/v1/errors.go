package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kamuz-01/Sistema-Feira/services"
)

// respondError translates the service error taxonomy into a status code
// and JSON payload. Validation errors keep their field keys; everything
// else becomes a single detail message.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, validation.Fields)
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno do servidor."})
	}
}

// respondBindingError reports a malformed or invalid request body
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}

// parseID reads the numeric id path parameter. Non-numeric values are
// indistinguishable from missing rows, so they map to not found.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, services.ErrNotFound
	}
	return uint(id), nil
}
