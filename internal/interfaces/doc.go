// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore, CategoryStore, MenuStore, OrderStore: CRUD used by the
//     handlers (internal/http/stores.go), implemented by the repositories in
//     internal/database/{books,categories,menus,orders}
//   - Pinger: database reachability for /health (internal/http/health.go)
//   - CategoryCreator, BookCreator, MenuCreator, OrderCreator: writes used by
//     the demo seeder (internal/demo/seed.go)
//
// ## Audit Trail
//
//   - MutationRecorder: receives every successful API write (internal/http/stores.go)
//   - AuditEventCleaner: retention sweep run by the task queue (internal/tasks/cleanup_audit.go)
//
// ## Background Work
//
//   - TaskEnqueuer: backlite queue the cron scheduler pushes into (internal/scheduler/audit_cleanup.go)
//
// # Adding a New Resource
//
//  1. Add the entity to internal/entities and to database.Models().
//
//  2. Create sub-package internal/database/<resource>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//     Return database.TranslateError(err) from every write so constraint
//     failures reach the handlers as ErrConstraintViolation.
//
//  3. Declare the store interface and controller in internal/http/, register
//     the routes in router.go and pass the repository from entrypoint.go.
//
//  4. Add compile-time check:
//
//     var _ http.ResourceStore = (*resource.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current list.
package interfaces
