package services

import (
	"context"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"gorm.io/gorm"
)

// ToppingService provides methods to manage toppings in the database
type ToppingService interface {
	// GetAllToppings retrieves all toppings ordered by name
	GetAllToppings(ctx context.Context) ([]models.Topping, error)
	// GetToppingByID retrieves a topping by its ID
	GetToppingByID(ctx context.Context, id uint) (models.Topping, error)
	// GetToppingByName retrieves a topping by its name, ignoring case and surrounding whitespace
	GetToppingByName(ctx context.Context, name string) (models.Topping, error)
	// GetToppingsByIDs retrieves the toppings whose ID is in ids.
	// Duplicate ids yield a single topping and unknown ids are skipped.
	GetToppingsByIDs(ctx context.Context, ids []uint) ([]models.Topping, error)
	// ToppingExistsByName reports whether the normalized name is used by a topping other than excludeID
	ToppingExistsByName(ctx context.Context, name string, excludeID *uint) (bool, error)
	// CreateTopping normalizes the name and stores a new topping
	CreateTopping(ctx context.Context, topping models.Topping) (models.Topping, error)
	// UpdateTopping applies the supplied fields of patch to an existing topping
	UpdateTopping(ctx context.Context, id uint, patch models.ToppingPatch) (models.Topping, error)
	// DeleteTopping deletes a topping together with its pizza associations
	DeleteTopping(ctx context.Context, id uint) error
	// WithTx returns a ToppingService bound to the given transaction
	WithTx(tx *gorm.DB) ToppingService
}

// toppingService is the implementation of the ToppingService interface
type toppingService struct {
	db *gorm.DB
}

// NewToppingService creates a new instance of ToppingService
func NewToppingService(db *gorm.DB) ToppingService {
	return &toppingService{db: db}
}

func (s *toppingService) WithTx(tx *gorm.DB) ToppingService {
	return &toppingService{db: tx}
}

func (s *toppingService) GetAllToppings(ctx context.Context) ([]models.Topping, error) {
	var toppings []models.Topping
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("listing toppings: %w", err)
	}
	return toppings, nil
}

func (s *toppingService) GetToppingByID(ctx context.Context, id uint) (models.Topping, error) {
	var topping models.Topping
	if err := s.db.WithContext(ctx).First(&topping, id).Error; err != nil {
		return models.Topping{}, notFound(err, ErrToppingNotFound)
	}
	return topping, nil
}

func (s *toppingService) GetToppingByName(ctx context.Context, name string) (models.Topping, error) {
	var topping models.Topping
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", NormalizeName(name)).
		First(&topping).Error
	if err != nil {
		return models.Topping{}, notFound(err, ErrToppingNotFound)
	}
	return topping, nil
}

func (s *toppingService) GetToppingsByIDs(ctx context.Context, ids []uint) ([]models.Topping, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []models.Topping{}, nil
	}

	var toppings []models.Topping
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&toppings).Error; err != nil {
		return nil, fmt.Errorf("resolving toppings: %w", err)
	}
	return toppings, nil
}

func (s *toppingService) ToppingExistsByName(ctx context.Context, name string, excludeID *uint) (bool, error) {
	return nameTaken(s.db.WithContext(ctx), &models.Topping{}, name, excludeID)
}

func (s *toppingService) CreateTopping(ctx context.Context, topping models.Topping) (models.Topping, error) {
	now := time.Now().UTC()
	topping.ID = 0
	topping.Name = NormalizeName(topping.Name)
	topping.CreatedAt = now
	topping.UpdatedAt = now

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, &models.Topping{}, topping.Name, nil)
		if err != nil {
			return err
		}
		if taken {
			return &ConflictError{Entity: "topping", Field: "name", Value: topping.Name}
		}
		return tx.Create(&topping).Error
	})
	if err != nil {
		return models.Topping{}, nameConflict(err, "topping", topping.Name)
	}
	return topping, nil
}

func (s *toppingService) UpdateTopping(ctx context.Context, id uint, patch models.ToppingPatch) (models.Topping, error) {
	var updated models.Topping
	var name string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Topping
		if err := tx.First(&existing, id).Error; err != nil {
			return notFound(err, ErrToppingNotFound)
		}

		updates := map[string]interface{}{"updated_at": time.Now().UTC()}
		if patch.Name != nil {
			name = NormalizeName(*patch.Name)
			taken, err := nameTaken(tx, &models.Topping{}, name, &id)
			if err != nil {
				return err
			}
			if taken {
				return &ConflictError{Entity: "topping", Field: "name", Value: name}
			}
			updates["name"] = name
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.IsAvailable != nil {
			updates["is_available"] = *patch.IsAvailable
		}

		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return models.Topping{}, nameConflict(err, "topping", name)
	}
	return updated, nil
}

func (s *toppingService) DeleteTopping(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Topping{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrToppingNotFound
		}
		return tx.Where("topping_id = ?", id).Delete(&models.PizzaTopping{}).Error
	})
}
