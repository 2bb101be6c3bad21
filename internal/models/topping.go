package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices are rendered as JSON numbers rather than quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Topping represents an ingredient that can be put on pizzas
type Topping struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Description string          `json:"description,omitempty" gorm:"size:200"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null"`
	IsAvailable bool            `json:"isAvailable" gorm:"not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToppingPatch holds the topping fields supplied in a partial update
type ToppingPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	IsAvailable *bool
}

// PizzaTopping links a pizza to one of its toppings.
// The pair (PizzaID, ToppingID) is the key; each side has its own index.
// Both sides are foreign keys, so a link can never outlive its pizza or its topping.
type PizzaTopping struct {
	PizzaID   uint `gorm:"primaryKey;autoIncrement:false;index"`
	ToppingID uint `gorm:"primaryKey;autoIncrement:false;index"`

	Pizza   Pizza   `json:"-" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
	Topping Topping `json:"-" gorm:"foreignKey:ToppingID;constraint:OnDelete:CASCADE"`
}

func (PizzaTopping) TableName() string {
	return "pizza_toppings"
}
