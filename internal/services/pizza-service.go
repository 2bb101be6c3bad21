package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/franciscosanchezn/pizza-store-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PizzaService provides methods to interact with the pizza database.
// Every returned pizza carries its resolved toppings and a freshly computed total price.
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by name
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// GetPizzaByName retrieves a pizza by its name, ignoring case and surrounding whitespace
	GetPizzaByName(ctx context.Context, name string) (models.Pizza, error)
	// PizzaExistsByName reports whether the normalized name is used by a pizza other than excludeID
	PizzaExistsByName(ctx context.Context, name string, excludeID *uint) (bool, error)
	// CreatePizza stores a new pizza topped with the given toppings
	CreatePizza(ctx context.Context, pizza models.Pizza, toppingIDs []uint) (models.Pizza, error)
	// UpdatePizza applies the supplied fields of patch; toppings are left untouched
	UpdatePizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error)
	// ReplacePizzaToppings swaps the whole topping set of a pizza
	ReplacePizzaToppings(ctx context.Context, id uint, toppingIDs []uint) (models.Pizza, error)
	// DeletePizza deletes a pizza together with its topping associations
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db       *gorm.DB
	toppings ToppingService
}

// NewPizzaService creates a new instance of PizzaService.
// Topping references are validated and resolved through toppings.
func NewPizzaService(db *gorm.DB, toppings ToppingService) PizzaService {
	return &pizzaService{db: db, toppings: toppings}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("name ASC").Find(&pizzas).Error; err != nil {
			return err
		}
		return s.resolveToppings(ctx, tx, pizzas)
	})
	if err != nil {
		return nil, fmt.Errorf("listing pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		pizza, err = s.loadPizza(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) GetPizzaByName(ctx context.Context, name string) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("LOWER(name) = LOWER(?)", NormalizeName(name)).First(&pizza).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}
		pizzas := []models.Pizza{pizza}
		if err := s.resolveToppings(ctx, tx, pizzas); err != nil {
			return err
		}
		pizza = pizzas[0]
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) PizzaExistsByName(ctx context.Context, name string, excludeID *uint) (bool, error) {
	return nameTaken(s.db.WithContext(ctx), &models.Pizza{}, name, excludeID)
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza, toppingIDs []uint) (models.Pizza, error) {
	now := time.Now().UTC()
	pizza.ID = 0
	pizza.Name = NormalizeName(pizza.Name)
	if pizza.Size == "" {
		pizza.Size = models.SizeMedium
	}
	pizza.CreatedAt = now
	pizza.UpdatedAt = now

	var created models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, &models.Pizza{}, pizza.Name, nil)
		if err != nil {
			return err
		}
		if taken {
			return &ConflictError{Entity: "pizza", Field: "name", Value: pizza.Name}
		}

		ids, err := s.validateToppingIDs(ctx, tx, toppingIDs)
		if err != nil {
			return err
		}

		if err := tx.Create(&pizza).Error; err != nil {
			return err
		}
		if err := linkToppings(tx, pizza.ID, ids); err != nil {
			return err
		}

		created, err = s.loadPizza(ctx, tx, pizza.ID)
		return err
	})
	if err != nil {
		err = s.referenceFailure(ctx, err, 0, toppingIDs)
		return models.Pizza{}, nameConflict(err, "pizza", pizza.Name)
	}
	return created, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error) {
	var updated models.Pizza
	var name string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Pizza
		if err := tx.First(&existing, id).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}

		updates := map[string]interface{}{"updated_at": time.Now().UTC()}
		if patch.Name != nil {
			name = NormalizeName(*patch.Name)
			taken, err := nameTaken(tx, &models.Pizza{}, name, &id)
			if err != nil {
				return err
			}
			if taken {
				return &ConflictError{Entity: "pizza", Field: "name", Value: name}
			}
			updates["name"] = name
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.BasePrice != nil {
			updates["base_price"] = *patch.BasePrice
		}
		if patch.Size != nil {
			updates["size"] = *patch.Size
		}
		if patch.IsAvailable != nil {
			updates["is_available"] = *patch.IsAvailable
		}

		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		var err error
		updated, err = s.loadPizza(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Pizza{}, nameConflict(err, "pizza", name)
	}
	return updated, nil
}

func (s *pizzaService) ReplacePizzaToppings(ctx context.Context, id uint, toppingIDs []uint) (models.Pizza, error) {
	var updated models.Pizza

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// concurrent replacements of the same pizza queue up behind this lock
		var existing models.Pizza
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, id).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}

		// nothing is removed until every id has resolved
		ids, err := s.validateToppingIDs(ctx, tx, toppingIDs)
		if err != nil {
			return err
		}

		if err := tx.Where("pizza_id = ?", id).Delete(&models.PizzaTopping{}).Error; err != nil {
			return err
		}
		if err := linkToppings(tx, id, ids); err != nil {
			return err
		}
		if err := tx.Model(&existing).Update("updated_at", time.Now().UTC()).Error; err != nil {
			return err
		}

		updated, err = s.loadPizza(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Pizza{}, s.referenceFailure(ctx, err, id, toppingIDs)
	}
	return updated, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Pizza{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPizzaNotFound
		}
		return tx.Where("pizza_id = ?", id).Delete(&models.PizzaTopping{}).Error
	})
}

// validateToppingIDs collapses duplicates and checks that every id names an existing topping.
// Lookup failures are returned unchanged.
func (s *pizzaService) validateToppingIDs(ctx context.Context, tx *gorm.DB, toppingIDs []uint) ([]uint, error) {
	ids := uniqueIDs(toppingIDs)
	if len(ids) == 0 {
		return ids, nil
	}

	found, err := s.toppings.WithTx(tx).GetToppingsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) == len(ids) {
		return ids, nil
	}

	known := make(map[uint]struct{}, len(found))
	for _, t := range found {
		known[t.ID] = struct{}{}
	}
	missing := make([]uint, 0, len(ids)-len(found))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return nil, &InvalidReferenceError{IDs: missing}
}

// referenceFailure explains a foreign key violation raised while linking toppings.
// A topping or pizza deleted by a concurrent writer after validation is reported
// the same way as one that never existed.
func (s *pizzaService) referenceFailure(ctx context.Context, err error, pizzaID uint, toppingIDs []uint) error {
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	if _, verr := s.validateToppingIDs(ctx, s.db.WithContext(ctx), toppingIDs); verr != nil {
		return verr
	}
	if pizzaID != 0 {
		return ErrPizzaNotFound
	}
	return err
}

// loadPizza reads a single pizza and resolves its toppings
func (s *pizzaService) loadPizza(ctx context.Context, tx *gorm.DB, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := tx.First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound)
	}

	pizzas := []models.Pizza{pizza}
	if err := s.resolveToppings(ctx, tx, pizzas); err != nil {
		return models.Pizza{}, err
	}
	return pizzas[0], nil
}

// resolveToppings fills Toppings and TotalPrice of every pizza from the join table
func (s *pizzaService) resolveToppings(ctx context.Context, tx *gorm.DB, pizzas []models.Pizza) error {
	if len(pizzas) == 0 {
		return nil
	}

	pizzaIDs := make([]uint, 0, len(pizzas))
	for _, p := range pizzas {
		pizzaIDs = append(pizzaIDs, p.ID)
	}

	var links []models.PizzaTopping
	if err := tx.Where("pizza_id IN ?", pizzaIDs).Find(&links).Error; err != nil {
		return err
	}

	toppingIDs := make([]uint, 0, len(links))
	for _, link := range links {
		toppingIDs = append(toppingIDs, link.ToppingID)
	}
	toppings, err := s.toppings.WithTx(tx).GetToppingsByIDs(ctx, toppingIDs)
	if err != nil {
		return err
	}

	byID := make(map[uint]models.Topping, len(toppings))
	for _, t := range toppings {
		byID[t.ID] = t
	}
	byPizza := make(map[uint][]models.Topping, len(pizzas))
	for _, link := range links {
		if t, ok := byID[link.ToppingID]; ok {
			byPizza[link.PizzaID] = append(byPizza[link.PizzaID], t)
		}
	}

	for i := range pizzas {
		resolved := byPizza[pizzas[i].ID]
		sort.Slice(resolved, func(a, b int) bool { return resolved[a].Name < resolved[b].Name })
		pizzas[i].ApplyToppings(resolved)
	}
	return nil
}

func linkToppings(tx *gorm.DB, pizzaID uint, toppingIDs []uint) error {
	if len(toppingIDs) == 0 {
		return nil
	}
	links := make([]models.PizzaTopping, 0, len(toppingIDs))
	for _, id := range toppingIDs {
		links = append(links, models.PizzaTopping{PizzaID: pizzaID, ToppingID: id})
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}
