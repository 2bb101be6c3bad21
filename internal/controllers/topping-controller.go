package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ToppingController handles HTTP requests related to toppings
type ToppingController interface {
	// GetAllToppings retrieves all toppings
	GetAllToppings(c *gin.Context)
	// GetToppingByID retrieves a topping by its ID
	GetToppingByID(c *gin.Context)
	// CreateTopping creates a new topping
	CreateTopping(c *gin.Context)
	// UpdateTopping updates an existing topping
	UpdateTopping(c *gin.Context)
	// DeleteTopping deletes a topping by its ID
	DeleteTopping(c *gin.Context)
}

type toppingController struct {
	service services.ToppingService
}

// NewToppingController creates a new instance of ToppingController
func NewToppingController(service services.ToppingService) ToppingController {
	return &toppingController{service: service}
}

// GetAllToppings godoc
// @Summary Get all toppings
// @Description Get every topping ordered by name
// @Tags toppings
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Topping}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/toppings [get]
func (c *toppingController) GetAllToppings(ctx *gin.Context) {
	toppings, err := c.service.GetAllToppings(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while retrieving toppings")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(toppings, "Toppings retrieved successfully"))
}

// GetToppingByID godoc
// @Summary Get topping by ID
// @Description Get a single topping by its ID
// @Tags toppings
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.APIResponse{data=models.Topping}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/toppings/{id} [get]
func (c *toppingController) GetToppingByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "topping")
	if !ok {
		return
	}

	topping, err := c.service.GetToppingByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while retrieving the topping")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(topping, "Topping retrieved successfully"))
}

// CreateTopping godoc
// @Summary Create a new topping
// @Description Create a topping; the name is stored title-cased and must be unique
// @Tags toppings
// @Accept json
// @Produce json
// @Param topping body models.CreateToppingRequest true "Topping to create"
// @Success 201 {object} models.APIResponse{data=models.Topping}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/toppings [post]
func (c *toppingController) CreateTopping(ctx *gin.Context) {
	var req models.CreateToppingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(ctx, err)
		return
	}

	topping, err := c.service.CreateTopping(ctx.Request.Context(), req.ToTopping())
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while creating the topping")
		return
	}
	ctx.Header("Location", fmt.Sprintf("/api/v1/toppings/%d", topping.ID))
	ctx.JSON(http.StatusCreated, models.NewSuccessResponse(topping, "Topping created successfully"))
}

// UpdateTopping godoc
// @Summary Update a topping
// @Description Update the supplied fields of a topping; omitted fields keep their value
// @Tags toppings
// @Accept json
// @Produce json
// @Param id path int true "Topping ID"
// @Param topping body models.UpdateToppingRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.Topping}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/toppings/{id} [put]
func (c *toppingController) UpdateTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "topping")
	if !ok {
		return
	}

	var req models.UpdateToppingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(ctx, err)
		return
	}

	topping, err := c.service.UpdateTopping(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while updating the topping")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(topping, "Topping updated successfully"))
}

// DeleteTopping godoc
// @Summary Delete a topping
// @Description Delete a topping; it is removed from every pizza that used it
// @Tags toppings
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/toppings/{id} [delete]
func (c *toppingController) DeleteTopping(ctx *gin.Context) {
	id, ok := parseID(ctx, "topping")
	if !ok {
		return
	}

	if err := c.service.DeleteTopping(ctx.Request.Context(), id); err != nil {
		respondWithServiceError(ctx, err, "An error occurred while deleting the topping")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(nil, "Topping deleted successfully"))
}
