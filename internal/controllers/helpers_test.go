package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-store-api/internal/database"
	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/franciscosanchezn/pizza-store-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router   *gin.Engine
	toppings services.ToppingService
	pizzas   services.PizzaService
}

type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *models.APIError `json:"error"`
	Errors  []string         `json:"errors"`
}

func setupAPI(t *testing.T) testAPI {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	toppings := services.NewToppingService(db)
	pizzas := services.NewPizzaService(db, toppings)
	return testAPI{
		router:   newRouter(pizzas, toppings),
		toppings: toppings,
		pizzas:   pizzas,
	}
}

func newRouter(pizzas services.PizzaService, toppings services.ToppingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, NewPizzaController(pizzas), NewToppingController(toppings))
	router.NoRoute(RouteNotFound)
	return router
}

func (a testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, a.router, method, path, body)
}

func serve(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	env := decode(t, w)
	require.True(t, env.Success, w.Body.String())

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func (a testAPI) createTopping(t *testing.T, name string, price float64) models.Topping {
	t.Helper()
	w := a.do(t, "POST", "/api/v1/toppings", gin.H{"name": name, "price": price})
	require.Equal(t, 201, w.Code, w.Body.String())
	return decodeData[models.Topping](t, w)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
