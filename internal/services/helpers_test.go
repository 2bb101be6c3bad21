package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-store-api/internal/database"
	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func mustCreateTopping(t *testing.T, svc ToppingService, name, amount string) models.Topping {
	t.Helper()
	topping, err := svc.CreateTopping(context.Background(), models.Topping{
		Name:        name,
		Price:       price(amount),
		IsAvailable: true,
	})
	require.NoError(t, err)
	return topping
}
