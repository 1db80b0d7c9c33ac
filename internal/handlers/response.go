package handlers

import (
	"errors"
	"log"
	"net/http"

	"storefront/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy to HTTP statuses: validation and
// constraint violations are client errors, not-found is 404, everything else
// is a 500 with a generic message (detail goes to the log only).
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var constraintErr *apperrors.ConstraintViolation
	var notFoundErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
	case errors.As(err, &constraintErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constraintErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFoundErr.Error()})
	default:
		var internalErr *apperrors.InternalError
		if errors.As(err, &internalErr) {
			log.Printf("Internal error: %v", internalErr.Err)
		} else {
			log.Printf("Unclassified error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}
