package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PizzaSize is the size a pizza is sold in
type PizzaSize string

const (
	SizeSmall  PizzaSize = "Small"
	SizeMedium PizzaSize = "Medium"
	SizeLarge  PizzaSize = "Large"
)

// Pizza represents a pizza with its properties.
// Toppings and TotalPrice are read-time projections and are never persisted.
type Pizza struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Description string          `json:"description,omitempty" gorm:"size:500"`
	BasePrice   decimal.Decimal `json:"basePrice" gorm:"type:decimal(6,2);not null"`
	Size        PizzaSize       `json:"size" gorm:"size:10;not null"`
	IsAvailable bool            `json:"isAvailable" gorm:"not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Toppings   []Topping       `json:"toppings" gorm:"-"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"-"`
}

// ApplyToppings sets the resolved toppings of the pizza and recomputes its total price
func (p *Pizza) ApplyToppings(toppings []Topping) {
	if toppings == nil {
		toppings = []Topping{}
	}
	total := p.BasePrice
	for _, t := range toppings {
		total = total.Add(t.Price)
	}
	p.Toppings = toppings
	p.TotalPrice = total
}

// ToppingIDs returns the ids of the resolved toppings
func (p Pizza) ToppingIDs() []uint {
	ids := make([]uint, 0, len(p.Toppings))
	for _, t := range p.Toppings {
		ids = append(ids, t.ID)
	}
	return ids
}

// PizzaPatch holds the pizza attributes supplied in a partial update.
// Nil fields keep their stored value.
type PizzaPatch struct {
	Name        *string
	Description *string
	BasePrice   *decimal.Decimal
	Size        *PizzaSize
	IsAvailable *bool
}
