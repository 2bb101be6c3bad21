package models

import "github.com/shopspring/decimal"

// CreateToppingRequest is the payload accepted when creating a topping
type CreateToppingRequest struct {
	Name        string          `json:"name" binding:"required,notblank,max=50" example:"Ham"`
	Description string          `json:"description" binding:"max=200" example:"Sweet Filipino-style ham"`
	Price       decimal.Decimal `json:"price" binding:"required,cents,min=0.01,max=999.99" swaggertype:"number" example:"35.00"`
	IsAvailable *bool           `json:"isAvailable" example:"true"`
}

// ToTopping builds the topping described by the request
func (r CreateToppingRequest) ToTopping() Topping {
	return Topping{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsAvailable: boolOrDefault(r.IsAvailable, true),
	}
}

// UpdateToppingRequest is the payload accepted when updating a topping.
// Omitted fields are left unchanged.
type UpdateToppingRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank,max=50"`
	Description *string          `json:"description" binding:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,cents,min=0.01,max=999.99" swaggertype:"number"`
	IsAvailable *bool            `json:"isAvailable"`
}

// ToPatch converts the request into a topping patch
func (r UpdateToppingRequest) ToPatch() ToppingPatch {
	return ToppingPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
	}
}

// CreatePizzaRequest is the payload accepted when creating a pizza
type CreatePizzaRequest struct {
	Name        string          `json:"name" binding:"required,notblank,max=50" example:"Hawaiian Delight"`
	Description string          `json:"description" binding:"max=500"`
	BasePrice   decimal.Decimal `json:"basePrice" binding:"required,cents,min=0.01,max=999.99" swaggertype:"number" example:"249.00"`
	Size        PizzaSize       `json:"size" binding:"omitempty,oneof=Small Medium Large" enums:"Small,Medium,Large" example:"Medium"`
	ToppingIDs  []uint          `json:"toppingIds" example:"1,2"`
	IsAvailable *bool           `json:"isAvailable" example:"true"`
}

// ToPizza builds the pizza described by the request, without its toppings
func (r CreatePizzaRequest) ToPizza() Pizza {
	size := r.Size
	if size == "" {
		size = SizeMedium
	}
	return Pizza{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Size:        size,
		IsAvailable: boolOrDefault(r.IsAvailable, true),
	}
}

// UpdatePizzaRequest is the payload accepted when updating pizza attributes.
// Toppings are replaced through UpdatePizzaToppingsRequest instead.
type UpdatePizzaRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank,max=50"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	BasePrice   *decimal.Decimal `json:"basePrice" binding:"omitempty,cents,min=0.01,max=999.99" swaggertype:"number"`
	Size        *PizzaSize       `json:"size" binding:"omitempty,oneof=Small Medium Large" enums:"Small,Medium,Large"`
	IsAvailable *bool            `json:"isAvailable"`
}

// ToPatch converts the request into a pizza patch
func (r UpdatePizzaRequest) ToPatch() PizzaPatch {
	return PizzaPatch{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Size:        r.Size,
		IsAvailable: r.IsAvailable,
	}
}

// UpdatePizzaToppingsRequest replaces the full topping set of a pizza.
// An empty list removes every topping.
type UpdatePizzaToppingsRequest struct {
	ToppingIDs []uint `json:"toppingIds" binding:"required" example:"1,2"`
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
