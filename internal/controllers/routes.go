package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the catalog endpoints on router
func RegisterRoutes(router gin.IRouter, pizzas PizzaController, toppings ToppingController) {
	v1 := router.Group("/api/v1")
	{
		toppingsAPI := v1.Group("/toppings")
		{
			toppingsAPI.GET("", toppings.GetAllToppings)
			toppingsAPI.GET("/:id", toppings.GetToppingByID)
			toppingsAPI.POST("", toppings.CreateTopping)
			toppingsAPI.PUT("/:id", toppings.UpdateTopping)
			toppingsAPI.DELETE("/:id", toppings.DeleteTopping)
		}

		pizzasAPI := v1.Group("/pizzas")
		{
			pizzasAPI.GET("", pizzas.GetAllPizzas)
			pizzasAPI.GET("/:id", pizzas.GetPizzaByID)
			pizzasAPI.POST("", pizzas.CreatePizza)
			pizzasAPI.PUT("/:id", pizzas.UpdatePizza)
			pizzasAPI.PUT("/:id/toppings", pizzas.UpdatePizzaToppings)
			pizzasAPI.DELETE("/:id", pizzas.DeletePizza)
		}
	}
}
