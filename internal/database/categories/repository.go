package categories

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

// List returns all categories ordered by name.
func (r *Repository) List(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, database.TranslateError(err)
}

// Get returns a category by ID.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &category, nil
}

// Create stores a new category.
func (r *Repository) Create(ctx context.Context, category *entities.Category) error {
	return database.TranslateError(r.db.WithContext(ctx).Create(category).Error)
}

// Update applies the supplied column changes.
func (r *Repository) Update(ctx context.Context, id uint, changes patch.Changes) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category entities.Category
		if err := tx.Select("id").First(&category, id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&entities.Category{}).Where("id = ?", id).Updates(changes.Map()).Error
	})
	return database.TranslateError(err)
}

// Delete removes a category. A category still linked to a book is refused
// with database.ErrConstraintViolation.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Category{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
