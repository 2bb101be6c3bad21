package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createHawaiian stores ham and pineapple and a pizza topped with both
func (a testAPI) createHawaiian(t *testing.T) (models.Pizza, models.Topping, models.Topping) {
	t.Helper()
	ham := a.createTopping(t, "ham", 35)
	pineapple := a.createTopping(t, "pineapple", 25)

	w := a.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{
		"name":       "hawaiian delight",
		"basePrice":  249,
		"toppingIds": []uint{ham.ID, pineapple.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[models.Pizza](t, w), ham, pineapple
}

func TestCreatePizzaEndpoint(t *testing.T) {
	api := setupAPI(t)
	pizza, ham, pineapple := api.createHawaiian(t)

	assert.Equal(t, "Hawaiian Delight", pizza.Name)
	assert.Equal(t, models.SizeMedium, pizza.Size)
	assert.True(t, pizza.IsAvailable)
	assert.True(t, dec("309").Equal(pizza.TotalPrice), "total was %s", pizza.TotalPrice)
	assert.ElementsMatch(t, []uint{ham.ID, pineapple.ID}, pizza.ToppingIDs())
}

func TestCreatePizzaEndpointWithoutToppings(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{
		"name": "margherita", "basePrice": 199, "size": "Large",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	pizza := decodeData[models.Pizza](t, w)
	assert.Equal(t, models.SizeLarge, pizza.Size)
	assert.NotNil(t, pizza.Toppings)
	assert.Empty(t, pizza.Toppings)
	assert.True(t, dec("199").Equal(pizza.TotalPrice))
	assert.Equal(t, fmt.Sprintf("/api/v1/pizzas/%d", pizza.ID), w.Header().Get("Location"))
}

func TestCreatePizzaEndpointInvalidReference(t *testing.T) {
	api := setupAPI(t)
	ham := api.createTopping(t, "ham", 35)

	w := api.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{
		"name": "ghost", "basePrice": 100, "toppingIds": []uint{ham.ID, 999},
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	env := decode(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, models.ErrInvalidReference, env.Error.Code)
	assert.Equal(t, []interface{}{float64(999)}, env.Error.Details["invalid_topping_ids"])

	w = api.do(t, http.MethodGet, "/api/v1/pizzas", nil)
	assert.Empty(t, decodeData[[]models.Pizza](t, w))
}

func TestCreatePizzaEndpointValidation(t *testing.T) {
	testCases := []struct {
		name    string
		body    interface{}
		message string
	}{
		{name: "unknown size", body: gin.H{"name": "x", "basePrice": 100, "size": "Huge"}, message: "size must be one of: Small, Medium, Large"},
		{name: "missing base price", body: gin.H{"name": "x"}, message: "basePrice is required"},
		{name: "base price too high", body: gin.H{"name": "x", "basePrice": 1000}, message: "basePrice must be at most 999.99"},
		{name: "blank name", body: gin.H{"name": "\t", "basePrice": 100}, message: "name is required"},
		{name: "base price below a cent", body: gin.H{"name": "x", "basePrice": 249.005}, message: "basePrice cannot have more than 2 decimal places"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			api := setupAPI(t)

			w := api.do(t, http.MethodPost, "/api/v1/pizzas", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			env := decode(t, w)
			assert.Equal(t, models.ErrValidationFailed, env.Error.Code)
			assert.Contains(t, env.Errors, tt.message)
		})
	}
}

func TestCreatePizzaEndpointConflict(t *testing.T) {
	api := setupAPI(t)
	api.createHawaiian(t)

	w := api.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{"name": "  HAWAIIAN DELIGHT ", "basePrice": 100})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Hawaiian Delight", decode(t, w).Error.Details["value"])
}

func TestGetPizzaEndpoints(t *testing.T) {
	api := setupAPI(t)
	hawaiian, _, _ := api.createHawaiian(t)
	w := api.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{"name": "aloha", "basePrice": 150})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/pizzas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	pizzas := decodeData[[]models.Pizza](t, w)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Aloha", pizzas[0].Name)
	assert.Equal(t, "Hawaiian Delight", pizzas[1].Name)
	assert.Len(t, pizzas[1].Toppings, 2)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/pizzas/%d", hawaiian.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, dec("309").Equal(decodeData[models.Pizza](t, w).TotalPrice))

	w = api.do(t, http.MethodGet, "/api/v1/pizzas/404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrPizzaNotFound, decode(t, w).Error.Code)

	w = api.do(t, http.MethodGet, "/api/v1/pizzas/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePizzaEndpoint(t *testing.T) {
	api := setupAPI(t)
	hawaiian, _, _ := api.createHawaiian(t)
	path := fmt.Sprintf("/api/v1/pizzas/%d", hawaiian.ID)

	w := api.do(t, http.MethodPut, path, gin.H{"basePrice": 259, "size": "Small"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeData[models.Pizza](t, w)
	assert.Equal(t, models.SizeSmall, updated.Size)
	assert.Equal(t, "Hawaiian Delight", updated.Name)
	assert.Len(t, updated.Toppings, 2, "attribute updates keep the toppings")
	assert.True(t, dec("319").Equal(updated.TotalPrice))

	w = api.do(t, http.MethodPost, "/api/v1/pizzas", gin.H{"name": "aloha", "basePrice": 150})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPut, path, gin.H{"name": "ALOHA"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(t, http.MethodPut, path, gin.H{"size": "Family"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/pizzas/77", gin.H{"basePrice": 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePizzaToppingsEndpoint(t *testing.T) {
	api := setupAPI(t)
	hawaiian, ham, _ := api.createHawaiian(t)
	bacon := api.createTopping(t, "bacon", 40)
	path := fmt.Sprintf("/api/v1/pizzas/%d/toppings", hawaiian.ID)

	w := api.do(t, http.MethodPut, path, gin.H{"toppingIds": []uint{ham.ID, bacon.ID}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pizza := decodeData[models.Pizza](t, w)
	assert.ElementsMatch(t, []uint{ham.ID, bacon.ID}, pizza.ToppingIDs())
	assert.True(t, dec("324").Equal(pizza.TotalPrice))

	t.Run("unknown id leaves the set unchanged", func(t *testing.T) {
		w := api.do(t, http.MethodPut, path, gin.H{"toppingIds": []uint{ham.ID, 999}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.ErrInvalidReference, decode(t, w).Error.Code)

		w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/pizzas/%d", hawaiian.ID), nil)
		assert.ElementsMatch(t, []uint{ham.ID, bacon.ID}, decodeData[models.Pizza](t, w).ToppingIDs())
	})

	t.Run("missing list is rejected", func(t *testing.T) {
		w := api.do(t, http.MethodPut, path, gin.H{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Errors, "toppingIds is required")
	})

	t.Run("empty list clears the toppings", func(t *testing.T) {
		w := api.do(t, http.MethodPut, path, gin.H{"toppingIds": []uint{}})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		pizza := decodeData[models.Pizza](t, w)
		assert.Empty(t, pizza.Toppings)
		assert.True(t, dec("249").Equal(pizza.TotalPrice))
	})

	t.Run("unknown pizza", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/pizzas/999/toppings", gin.H{"toppingIds": []uint{ham.ID}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePizzaEndpoint(t *testing.T) {
	api := setupAPI(t)
	hawaiian, ham, _ := api.createHawaiian(t)
	path := fmt.Sprintf("/api/v1/pizzas/%d", hawaiian.ID)

	w := api.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pizza deleted successfully", decode(t, w).Message)

	w = api.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/toppings/%d", ham.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code, "toppings outlive the pizzas using them")
}

func TestDeleteToppingEndpointUpdatesPizzas(t *testing.T) {
	api := setupAPI(t)
	hawaiian, _, pineapple := api.createHawaiian(t)

	w := api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/toppings/%d", pineapple.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/pizzas/%d", hawaiian.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	pizza := decodeData[models.Pizza](t, w)
	require.Len(t, pizza.Toppings, 1)
	assert.Equal(t, "Ham", pizza.Toppings[0].Name)
	assert.True(t, dec("284").Equal(pizza.TotalPrice))
}
