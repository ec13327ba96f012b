package http

import (
	"context"

	"github.com/mrlokans/bookcafe/internal/audit"
	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Implementations live in internal/database/<resource>.

// BookStore provides persistence for books and their category links.
type BookStore interface {
	List(ctx context.Context) ([]entities.Book, error)
	Get(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, book *entities.Book, categoryIDs []uint) error
	Update(ctx context.Context, id uint, changes patch.Changes, categories patch.Field[[]uint]) error
	Delete(ctx context.Context, id uint) error
}

// CategoryStore provides persistence for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]entities.Category, error)
	Get(ctx context.Context, id uint) (*entities.Category, error)
	Create(ctx context.Context, category *entities.Category) error
	Update(ctx context.Context, id uint, changes patch.Changes) error
	Delete(ctx context.Context, id uint) error
}

// MenuStore provides persistence for menus.
type MenuStore interface {
	List(ctx context.Context) ([]entities.Menu, error)
	Get(ctx context.Context, id uint) (*entities.Menu, error)
	Create(ctx context.Context, menu *entities.Menu) error
	Update(ctx context.Context, id uint, changes patch.Changes) error
	Delete(ctx context.Context, id uint) error
}

// OrderStore provides persistence for orders and their items.
type OrderStore interface {
	List(ctx context.Context) ([]entities.Order, error)
	Get(ctx context.Context, id uint) (*entities.Order, error)
	Create(ctx context.Context, order *entities.Order, items []entities.OrderItem) error
	Update(ctx context.Context, id uint, changes patch.Changes, items patch.Field[[]entities.OrderItem]) error
	Delete(ctx context.Context, id uint) error
}

// MutationRecorder receives successful writes for the audit trail.
type MutationRecorder interface {
	LogMutation(m audit.Mutation)
}
