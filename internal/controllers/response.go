package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter; it responds with 400 and returns false when it is not a positive integer
func parseID(ctx *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(
			models.NewAPIError(models.ErrBadRequest, fmt.Sprintf("Invalid %s ID format", entity)),
		))
		return 0, false
	}
	return uint(id), true
}

// respondWithBindingError reports request shape violations as 400 VALIDATION_FAILED
func respondWithBindingError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(
		models.NewAPIError(models.ErrValidationFailed, "Validation failed"),
		validationMessages(err)...,
	))
}

// respondWithServiceError maps a store failure to its transport response.
// Unclassified failures are logged and hidden behind failureMessage.
func respondWithServiceError(ctx *gin.Context, err error, failureMessage string) {
	_ = ctx.Error(err)

	var conflict *services.ConflictError
	var invalid *services.InvalidReferenceError
	switch {
	case errors.Is(err, services.ErrToppingNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(
			models.NewAPIError(models.ErrToppingNotFound, "Topping not found"),
		))
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(
			models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"),
		))
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, models.NewErrorResponse(
			models.NewAPIError(models.ErrConflict, conflict.Error(), map[string]interface{}{
				"field": conflict.Field,
				"value": conflict.Value,
			}),
		))
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(
			models.NewAPIError(models.ErrInvalidReference, invalid.Error(), map[string]interface{}{
				"invalid_topping_ids": invalid.IDs,
			}),
		))
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
		}).Error(failureMessage)
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			models.NewAPIError(models.ErrInternalServer, failureMessage),
		))
	}
}

// RouteNotFound answers requests for paths no route serves
func RouteNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.NewErrorResponse(
		models.NewAPIError(models.ErrNotFound, fmt.Sprintf("No route for %s %s", ctx.Request.Method, ctx.Request.URL.Path)),
	))
}
