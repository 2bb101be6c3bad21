package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// UpdatePizzaToppings replaces the toppings of a pizza
	UpdatePizzaToppings(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza ordered by name, with its toppings and total price
// @Tags pizzas
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Pizza}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while retrieving pizzas")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(pizzas, "Pizzas retrieved successfully"))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID, with its toppings and total price
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.APIResponse{data=models.Pizza}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while retrieving the pizza")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(pizza, "Pizza retrieved successfully"))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza; every topping ID must exist and the name must be unique
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaRequest true "Pizza to create"
// @Success 201 {object} models.APIResponse{data=models.Pizza}
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req models.CreatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(ctx, err)
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), req.ToPizza(), req.ToppingIDs)
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while creating the pizza")
		return
	}
	ctx.Header("Location", fmt.Sprintf("/api/v1/pizzas/%d", pizza.ID))
	ctx.JSON(http.StatusCreated, models.NewSuccessResponse(pizza, "Pizza created successfully"))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Update the supplied attributes of a pizza; toppings are changed through /toppings
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.UpdatePizzaRequest true "Fields to change"
// @Success 200 {object} models.APIResponse{data=models.Pizza}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/pizzas/{id} [put]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	var req models.UpdatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(ctx, err)
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while updating the pizza")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(pizza, "Pizza updated successfully"))
}

// UpdatePizzaToppings godoc
// @Summary Replace pizza toppings
// @Description Replace the whole topping set of a pizza; nothing changes if any ID is unknown
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param toppings body models.UpdatePizzaToppingsRequest true "New topping IDs"
// @Success 200 {object} models.APIResponse{data=models.Pizza}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/pizzas/{id}/toppings [put]
func (c *pizzaController) UpdatePizzaToppings(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	var req models.UpdatePizzaToppingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(ctx, err)
		return
	}

	pizza, err := c.service.ReplacePizzaToppings(ctx.Request.Context(), id, req.ToppingIDs)
	if err != nil {
		respondWithServiceError(ctx, err, "An error occurred while updating pizza toppings")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(pizza, "Pizza toppings updated successfully"))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondWithServiceError(ctx, err, "An error occurred while deleting the pizza")
		return
	}
	ctx.JSON(http.StatusOK, models.NewSuccessResponse(nil, "Pizza deleted successfully"))
}
