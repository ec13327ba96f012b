package books

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

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

// List returns all books ordered by title, each with its categories.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	db := r.db.WithContext(ctx)
	if err := db.Order("title").Find(&books).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	if err := loadCategories(db, books); err != nil {
		return nil, database.TranslateError(err)
	}
	return books, nil
}

// Get returns a single book with its categories.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	db := r.db.WithContext(ctx)
	if err := db.First(&book, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	books := []entities.Book{book}
	if err := loadCategories(db, books); err != nil {
		return nil, database.TranslateError(err)
	}
	return &books[0], nil
}

// Create stores a new book linked to the given categories. Every category
// must exist, otherwise nothing is written and a *database.MissingReferenceError
// is returned.
func (r *Repository) Create(ctx context.Context, book *entities.Book, categoryIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := resolveCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(book).Error; err != nil {
			return err
		}
		if err := link(tx, book.ID, categories); err != nil {
			return err
		}
		book.Categories = categories
		return nil
	})
	return database.TranslateError(err)
}

// Update applies the supplied column changes and refreshes updated_on.
//
// categories controls the category links: absent leaves them alone, null
// removes all of them, an empty list is ignored and any other list replaces
// the current set.
func (r *Repository) Update(ctx context.Context, id uint, changes patch.Changes, categories patch.Field[[]uint]) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.Select("id").First(&book, id).Error; err != nil {
			return err
		}

		replace := false
		var resolved []entities.Category
		switch {
		case !categories.Set:
		case categories.Null:
			replace = true
		case len(categories.Value) == 0:
			logrus.WithField("book_id", id).Info("empty categories list supplied, links left unchanged; send null to clear them")
		default:
			var err error
			if resolved, err = resolveCategories(tx, categories.Value); err != nil {
				return err
			}
			replace = true
		}

		values := changes.Map()
		values["updated_on"] = time.Now()
		if err := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(values).Error; err != nil {
			return err
		}

		if !replace {
			return nil
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.BookCategory{}).Error; err != nil {
			return err
		}
		return link(tx, id, resolved)
	})
	return database.TranslateError(err)
}

// Delete removes a book. Its category links are removed by the database.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// resolveCategories loads the categories for ids, keeping request order and
// dropping duplicates. The first id without a category is reported.
func resolveCategories(tx *gorm.DB, ids []uint) ([]entities.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []entities.Category
	if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]entities.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	seen := make(map[uint]bool, len(ids))
	categories := make([]entities.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, &database.MissingReferenceError{Resource: "category", ID: id}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		categories = append(categories, c)
	}
	return categories, nil
}

func link(tx *gorm.DB, bookID uint, categories []entities.Category) error {
	if len(categories) == 0 {
		return nil
	}
	links := make([]entities.BookCategory, 0, len(categories))
	for _, c := range categories {
		links = append(links, entities.BookCategory{BookID: bookID, CategoryID: c.ID})
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

type categoryRow struct {
	BookID uint
	entities.Category
}

// loadCategories fills Categories on every book with one join query.
func loadCategories(db *gorm.DB, books []entities.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]uint, len(books))
	index := make(map[uint]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
		index[books[i].ID] = i
		books[i].Categories = []entities.Category{}
	}

	var rows []categoryRow
	err := db.Table("categories").
		Select("categories.*, book_category.book_id").
		Joins("JOIN book_category ON book_category.category_id = categories.id").
		Where("book_category.book_id IN ?", ids).
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		i := index[row.BookID]
		books[i].Categories = append(books[i].Categories, row.Category)
	}
	return nil
}
