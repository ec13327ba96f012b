package orders

import (
	"context"

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

// List returns all orders, most recent first, with their items and menus.
func (r *Repository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	db := r.db.WithContext(ctx)
	if err := db.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	if err := loadItems(db, orders); err != nil {
		return nil, database.TranslateError(err)
	}
	return orders, nil
}

// Get returns an order with its items and menus.
func (r *Repository) Get(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	db := r.db.WithContext(ctx)
	if err := db.First(&order, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	orders := []entities.Order{order}
	if err := loadItems(db, orders); err != nil {
		return nil, database.TranslateError(err)
	}
	return &orders[0], nil
}

// Create places an order. Every referenced menu is checked before anything
// is written; the order and its items are inserted in one transaction, so a
// duplicate menu in items leaves no trace. Item prices are stored as given.
func (r *Repository) Create(ctx context.Context, order *entities.Order, items []entities.OrderItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkMenus(tx, items); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		if err := insertItems(tx, order.ID, items); err != nil {
			return err
		}
		orders := []entities.Order{*order}
		if err := loadItems(tx, orders); err != nil {
			return err
		}
		order.Items = orders[0].Items
		return nil
	})
	return database.TranslateError(err)
}

// Update applies the supplied column changes. When items is set the whole
// item list is replaced by it: existing items are deleted and the new ones
// inserted. An empty list removes every item.
func (r *Repository) Update(ctx context.Context, id uint, changes patch.Changes, items patch.Field[[]entities.OrderItem]) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entities.Order
		if err := tx.Select("id").First(&order, id).Error; err != nil {
			return err
		}
		if items.Set {
			if err := checkMenus(tx, items.Value); err != nil {
				return err
			}
		}

		if len(changes) > 0 {
			if err := tx.Model(&entities.Order{}).Where("id = ?", id).Updates(changes.Map()).Error; err != nil {
				return err
			}
		}

		if !items.Set {
			return nil
		}
		if err := tx.Where("order_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		return insertItems(tx, id, items.Value)
	})
	return database.TranslateError(err)
}

// Delete removes an order. Its items are removed by the database.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Order{}, id)
	if result.Error != nil {
		return database.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// checkMenus reports the first item whose menu does not exist.
func checkMenus(tx *gorm.DB, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuID)
	}

	var found []uint
	if err := tx.Model(&entities.Menu{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}
	exists := make(map[uint]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	for _, item := range items {
		if !exists[item.MenuID] {
			return &database.MissingReferenceError{Resource: "menu", ID: item.MenuID}
		}
	}
	return nil
}

func insertItems(tx *gorm.DB, orderID uint, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]entities.OrderItem, len(items))
	for i, item := range items {
		rows[i] = entities.OrderItem{
			OrderID:        orderID,
			MenuID:         item.MenuID,
			Amount:         item.Amount,
			Price:          item.Price,
			AdditionalInfo: item.AdditionalInfo,
		}
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

// loadItems fills Items on every order, preloading each item's menu.
func loadItems(db *gorm.DB, orders []entities.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uint, len(orders))
	index := make(map[uint]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []entities.OrderItem{}
	}

	var items []entities.OrderItem
	err := db.Preload("Menu").
		Where("order_id IN ?", ids).
		Order("order_id, menu_id").
		Find(&items).Error
	if err != nil {
		return err
	}

	for _, item := range items {
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return nil
}
