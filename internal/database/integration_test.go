//go:build integration

package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/database"
	"github.com/mrlokans/bookcafe/internal/database/books"
	"github.com/mrlokans/bookcafe/internal/database/categories"
	"github.com/mrlokans/bookcafe/internal/database/menus"
	"github.com/mrlokans/bookcafe/internal/database/orders"
	"github.com/mrlokans/bookcafe/internal/entities"
)

// setupPostgres starts a PostgreSQL container and migrates the schema into it.
func setupPostgres(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("bookcafe"),
		tcpostgres.WithUsername("cafe"),
		tcpostgres.WithPassword("cafe"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverPostgres,
		DSN:      dsn,
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestPostgres_ConstraintTranslation(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, db.Ping(ctx))

	categoryRepo := categories.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	menuRepo := menus.NewRepository(db.DB)
	orderRepo := orders.NewRepository(db.DB)

	poetry := &entities.Category{Name: "Poetry"}
	require.NoError(t, categoryRepo.Create(ctx, poetry))

	book := &entities.Book{Title: "Leaves of Grass", Author: "Walt Whitman", Year: 1855}
	require.NoError(t, bookRepo.Create(ctx, book, []uint{poetry.ID}))

	t.Run("restricted category delete", func(t *testing.T) {
		err := categoryRepo.Delete(ctx, poetry.ID)

		require.ErrorIs(t, err, database.ErrConstraintViolation)
		var constraint *database.ConstraintError
		require.True(t, errors.As(err, &constraint))
		assert.Equal(t, database.ConstraintForeignKey, constraint.Kind)
	})

	t.Run("missing category rolls back book", func(t *testing.T) {
		err := bookRepo.Create(ctx, &entities.Book{Title: "Ghost", Author: "Nobody", Year: 2000}, []uint{poetry.ID, 999})

		var missing *database.MissingReferenceError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, uint(999), missing.ID)

		list, err := bookRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("duplicate order item", func(t *testing.T) {
		latte := &entities.Menu{Name: "Latte", Price: 3.5}
		require.NoError(t, menuRepo.Create(ctx, latte))

		order := &entities.Order{FirstName: "Walt", LastName: "Whitman", Phone: "555-0100"}
		err := orderRepo.Create(ctx, order, []entities.OrderItem{
			{MenuID: latte.ID, Amount: 1, Price: 3.5},
			{MenuID: latte.ID, Amount: 2, Price: 3.5},
		})

		require.ErrorIs(t, err, database.ErrConstraintViolation)
		placed, err := orderRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, placed)
	})

	t.Run("book delete cascades to links", func(t *testing.T) {
		require.NoError(t, bookRepo.Delete(ctx, book.ID))
		require.NoError(t, categoryRepo.Delete(ctx, poetry.ID))

		var links int64
		require.NoError(t, db.DB.Model(&entities.BookCategory{}).Count(&links).Error)
		assert.Zero(t, links)
	})
}
