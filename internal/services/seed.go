package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/shopspring/decimal"
)

type seedPizza struct {
	pizza    models.Pizza
	toppings []string
}

func defaultToppings() []models.Topping {
	return []models.Topping{
		{Name: "Ham", Description: "Sweet Filipino-style ham", Price: decimal.NewFromInt(35), IsAvailable: true},
		{Name: "Pineapple", Description: "Fresh pineapple chunks - Filipino favorite!", Price: decimal.NewFromInt(25), IsAvailable: true},
		{Name: "Longganisa", Description: "Filipino sweet sausage", Price: decimal.NewFromInt(45), IsAvailable: true},
		{Name: "Bacon", Description: "Crispy bacon strips", Price: decimal.NewFromInt(40), IsAvailable: true},
		{Name: "Kesong Puti", Description: "Filipino white cheese", Price: decimal.NewFromInt(30), IsAvailable: true},
		{Name: "Spinach", Description: "Fresh spinach leaves", Price: decimal.NewFromInt(20), IsAvailable: true},
		{Name: "Chorizo de Bilbao", Description: "Spanish-style sausage", Price: decimal.NewFromInt(50), IsAvailable: true},
		{Name: "Mushrooms", Description: "Fresh button mushrooms", Price: decimal.NewFromInt(25), IsAvailable: true},
	}
}

func defaultPizzas() []seedPizza {
	return []seedPizza{
		{
			pizza: models.Pizza{
				Name:        "All Meat Special",
				Description: "Loaded with ham, bacon, longganisa, and chorizo - meat lover's dream",
				BasePrice:   decimal.NewFromInt(299),
				Size:        models.SizeMedium,
				IsAvailable: true,
			},
			toppings: []string{"Ham", "Longganisa", "Bacon", "Chorizo de Bilbao"},
		},
		{
			pizza: models.Pizza{
				Name:        "Hawaiian Delight",
				Description: "Classic ham and pineapple combination - Filipino style",
				BasePrice:   decimal.NewFromInt(249),
				Size:        models.SizeMedium,
				IsAvailable: true,
			},
			toppings: []string{"Ham", "Pineapple"},
		},
		{
			pizza: models.Pizza{
				Name:        "Spinach Garden",
				Description: "Fresh spinach with kesong puti and mushrooms",
				BasePrice:   decimal.NewFromInt(229),
				Size:        models.SizeMedium,
				IsAvailable: true,
			},
			toppings: []string{"Spinach", "Kesong Puti", "Mushrooms"},
		},
	}
}

// SeedCatalog fills an empty catalog with the house toppings and pizzas.
// It reports false and changes nothing when any topping or pizza already exists.
func SeedCatalog(ctx context.Context, toppings ToppingService, pizzas PizzaService) (bool, error) {
	existingToppings, err := toppings.GetAllToppings(ctx)
	if err != nil {
		return false, err
	}
	existingPizzas, err := pizzas.GetAllPizzas(ctx)
	if err != nil {
		return false, err
	}
	if len(existingToppings) > 0 || len(existingPizzas) > 0 {
		return false, nil
	}

	ids := make(map[string]uint)
	for _, topping := range defaultToppings() {
		created, err := toppings.CreateTopping(ctx, topping)
		if err != nil {
			return false, fmt.Errorf("seeding topping %q: %w", topping.Name, err)
		}
		ids[topping.Name] = created.ID
	}

	for _, seed := range defaultPizzas() {
		toppingIDs := make([]uint, 0, len(seed.toppings))
		for _, name := range seed.toppings {
			toppingIDs = append(toppingIDs, ids[name])
		}
		if _, err := pizzas.CreatePizza(ctx, seed.pizza, toppingIDs); err != nil {
			return false, fmt.Errorf("seeding pizza %q: %w", seed.pizza.Name, err)
		}
	}
	return true, nil
}
