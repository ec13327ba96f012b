package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookcafe/internal/audit"
	"github.com/mrlokans/bookcafe/internal/database"
	"github.com/mrlokans/bookcafe/internal/database/books"
	"github.com/mrlokans/bookcafe/internal/database/categories"
	"github.com/mrlokans/bookcafe/internal/database/menus"
	"github.com/mrlokans/bookcafe/internal/database/orders"
	"github.com/mrlokans/bookcafe/internal/demo"
	"github.com/mrlokans/bookcafe/internal/http"
	"github.com/mrlokans/bookcafe/internal/scheduler"
	"github.com/mrlokans/bookcafe/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.BookStore = (*books.Repository)(nil)
var _ http.CategoryStore = (*categories.Repository)(nil)
var _ http.MenuStore = (*menus.Repository)(nil)
var _ http.OrderStore = (*orders.Repository)(nil)

var _ http.Pinger = (*database.Database)(nil)

// Demo seeding
var _ demo.CategoryCreator = (*categories.Repository)(nil)
var _ demo.BookCreator = (*books.Repository)(nil)
var _ demo.MenuCreator = (*menus.Repository)(nil)
var _ demo.OrderCreator = (*orders.Repository)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ http.MutationRecorder = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)
