package menus

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/bookcafe/internal/database"
	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all menus ordered by ID.
func (r *Repository) List(ctx context.Context) ([]entities.Menu, error) {
	var menus []entities.Menu
	err := r.db.WithContext(ctx).Order("id").Find(&menus).Error
	return menus, database.TranslateError(err)
}

// Get returns a menu by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &menu, nil
}

// Create stores a new menu.
func (r *Repository) Create(ctx context.Context, menu *entities.Menu) error {
	return database.TranslateError(r.db.WithContext(ctx).Create(menu).Error)
}

// Update applies the supplied column changes.
func (r *Repository) Update(ctx context.Context, id uint, changes patch.Changes) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu entities.Menu
		if err := tx.Select("id").First(&menu, id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&entities.Menu{}).Where("id = ?", id).Updates(changes.Map()).Error
	})
	return database.TranslateError(err)
}

// Delete removes a menu together with every order item referencing it.
// The order items are removed first, in the same transaction, so the
// restrict rule on order_items.menu_id never fires.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu entities.Menu
		if err := tx.Select("id").First(&menu, id).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Menu{}, id).Error
	})
	return database.TranslateError(err)
}
