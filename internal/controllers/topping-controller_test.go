package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToppingEndpoint(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/toppings", gin.H{
		"name":        "ham",
		"description": "Sweet Filipino-style ham",
		"price":       35.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	topping := decodeData[models.Topping](t, w)
	assert.Equal(t, "Ham", topping.Name)
	assert.True(t, dec("35").Equal(topping.Price))
	assert.True(t, topping.IsAvailable, "isAvailable defaults to true")
	assert.Equal(t, "/api/v1/toppings/1", w.Header().Get("Location"))
	assert.Equal(t, "Topping created successfully", decode(t, w).Message)
}

func TestCreateToppingEndpointConflict(t *testing.T) {
	api := setupAPI(t)
	api.createTopping(t, "ham", 35)

	w := api.do(t, http.MethodPost, "/api/v1/toppings", gin.H{"name": "Ham", "price": 20})
	require.Equal(t, http.StatusConflict, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, models.ErrConflict, env.Error.Code)
	assert.Equal(t, "name", env.Error.Details["field"])
	assert.Contains(t, env.Message, "already exists")
}

func TestCreateToppingEndpointValidation(t *testing.T) {
	testCases := []struct {
		name    string
		body    interface{}
		message string
	}{
		{name: "missing name", body: gin.H{"price": 10}, message: "name is required"},
		{name: "blank name", body: gin.H{"name": "   ", "price": 10}, message: "name is required"},
		{name: "name too long", body: gin.H{"name": strings.Repeat("x", 51), "price": 10}, message: "name cannot exceed 50 characters"},
		{name: "description too long", body: gin.H{"name": "ham", "price": 10, "description": strings.Repeat("x", 201)}, message: "description cannot exceed 200 characters"},
		{name: "missing price", body: gin.H{"name": "ham"}, message: "price is required"},
		{name: "price too high", body: gin.H{"name": "ham", "price": 1000}, message: "price must be at most 999.99"},
		{name: "price too low", body: gin.H{"name": "ham", "price": -5}, message: "price must be at least 0.01"},
		{name: "fraction of a cent", body: gin.H{"name": "truffle", "price": 12.345}, message: "price cannot have more than 2 decimal places"},
		{name: "tenth of a cent", body: gin.H{"name": "ham", "price": 0.001}, message: "price cannot have more than 2 decimal places"},
		{name: "malformed json", body: `{"name": `, message: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			api := setupAPI(t)

			w := api.do(t, http.MethodPost, "/api/v1/toppings", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			env := decode(t, w)
			require.NotNil(t, env.Error)
			assert.Equal(t, models.ErrValidationFailed, env.Error.Code)
			assert.NotEmpty(t, env.Errors)
			if tt.message != "" {
				assert.Contains(t, env.Errors, tt.message)
			}
		})
	}
}

func TestGetAllToppingsEndpoint(t *testing.T) {
	api := setupAPI(t)
	api.createTopping(t, "spinach", 20)
	api.createTopping(t, "bacon", 40)

	w := api.do(t, http.MethodGet, "/api/v1/toppings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	toppings := decodeData[[]models.Topping](t, w)
	require.Len(t, toppings, 2)
	assert.Equal(t, "Bacon", toppings[0].Name)
	assert.Equal(t, "Spinach", toppings[1].Name)
}

func TestGetToppingEndpoint(t *testing.T) {
	api := setupAPI(t)
	ham := api.createTopping(t, "ham", 35)

	w := api.do(t, http.MethodGet, "/api/v1/toppings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ham.ID, decodeData[models.Topping](t, w).ID)

	w = api.do(t, http.MethodGet, "/api/v1/toppings/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrToppingNotFound, decode(t, w).Error.Code)

	w = api.do(t, http.MethodGet, "/api/v1/toppings/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrBadRequest, decode(t, w).Error.Code)
}

func TestUpdateToppingEndpointPartial(t *testing.T) {
	api := setupAPI(t)
	w := api.do(t, http.MethodPost, "/api/v1/toppings", gin.H{
		"name": "ham", "description": "Sweet ham", "price": 35, "isAvailable": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/toppings/1", gin.H{"price": 38.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeData[models.Topping](t, w)
	assert.True(t, dec("38.5").Equal(updated.Price))
	assert.Equal(t, "Ham", updated.Name)
	assert.Equal(t, "Sweet ham", updated.Description)
	assert.False(t, updated.IsAvailable)
}

func TestUpdateToppingEndpointErrors(t *testing.T) {
	api := setupAPI(t)
	api.createTopping(t, "ham", 35)
	api.createTopping(t, "bacon", 40)

	w := api.do(t, http.MethodPut, "/api/v1/toppings/1", gin.H{"name": "BACON"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/toppings/42", gin.H{"name": "tofu"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/toppings/1", gin.H{"price": 5000})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/toppings/1", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/toppings/1", gin.H{"price": 35.999})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Errors, "price cannot have more than 2 decimal places")
}

func TestDeleteToppingEndpoint(t *testing.T) {
	api := setupAPI(t)
	api.createTopping(t, "ham", 35)

	w := api.do(t, http.MethodDelete, "/api/v1/toppings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Topping deleted successfully", decode(t, w).Message)

	w = api.do(t, http.MethodDelete, "/api/v1/toppings/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// failingToppingService fails every call with an infrastructure error
type failingToppingService struct {
	services.ToppingService
}

func (failingToppingService) GetAllToppings(context.Context) ([]models.Topping, error) {
	return nil, errors.New("connection refused")
}

func TestToppingEndpointHidesInternalErrors(t *testing.T) {
	router := newRouter(nil, failingToppingService{})

	w := serve(t, router, http.MethodGet, "/api/v1/toppings", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	env := decode(t, w)
	assert.Equal(t, models.ErrInternalServer, env.Error.Code)
	assert.Equal(t, "An error occurred while retrieving toppings", env.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestUnknownRoute(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/sauces", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, models.ErrNotFound, env.Error.Code)
	assert.Equal(t, "No route for GET /api/v1/sauces", env.Message)
}
