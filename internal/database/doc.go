// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, dialect selection, migrations
//	├── errors.go        # Error taxonomy and driver error translation
//	├── books/           # Books and their category links
//	├── categories/      # Category CRUD
//	├── menus/           # Menu CRUD, delete removes order history
//	├── orders/          # Orders and their line items
//	└── audit/           # Audit event storage and retention
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	booksRepo := books.NewRepository(db.DB)
//	ordersRepo := orders.NewRepository(db.DB)
//
//	book, err := booksRepo.Get(ctx, 42)
//	if errors.Is(err, database.ErrNotFound) { ... }
//
// # Referential Integrity
//
// Foreign keys are declared on the link records (BookCategory, OrderItem)
// and enforced by the store. Deleting a book or an order cascades to its
// links; deleting a category or a menu that is still referenced is
// restricted. The menus repository removes dependent order items itself
// before deleting a menu.
//
// Repositories pass every error through TranslateError so callers can rely
// on ErrNotFound, ErrConstraintViolation and *MissingReferenceError
// regardless of the configured driver.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add compile-time interface check: var _ http.SomeStore = (*Repository)(nil)
//     in the consumer's tests
package database
