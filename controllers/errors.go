package controllers

import (
	"errors"
	"net/http"

	"github.com/OJESH-DHK/SoupMandu/logger"
	"github.com/OJESH-DHK/SoupMandu/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps the service error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an external failure (classifier, storage) and is
// surfaced verbatim as a bad gateway.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidPortionType):
		logger.Error("portion type integrity violation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logger.Error("external failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
