package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

type bookCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Author      string  `json:"author" binding:"required,max=255"`
	Year        *int    `json:"year" binding:"required,notfuture"`
	IsPublished bool    `json:"is_published"`
	Image       *string `json:"image" binding:"omitempty,max=2048"`
	Summary     *string `json:"summary"`
	Details     *string `json:"details"`
	Categories  []uint  `json:"categories"`
}

type bookUpdateRequest struct {
	Title       patch.Field[string] `json:"title" binding:"omitempty,max=255" patch:"required"`
	Author      patch.Field[string] `json:"author" binding:"omitempty,max=255" patch:"required"`
	Year        patch.Field[int]    `json:"year" binding:"omitempty,notfuture"`
	IsPublished patch.Field[bool]   `json:"is_published"`
	Image       patch.Field[string] `json:"image" binding:"omitempty,max=2048" patch:"nullable"`
	Summary     patch.Field[string] `json:"summary" patch:"nullable"`
	Details     patch.Field[string] `json:"details" patch:"nullable"`

	// null clears every category, [] leaves them untouched.
	Categories patch.Field[[]uint] `json:"categories" patch:"nullable"`
}

func (r bookUpdateRequest) changes() patch.Changes {
	changes := patch.Changes{}
	patch.Put(changes, "title", r.Title)
	patch.Put(changes, "author", r.Author)
	patch.Put(changes, "year", r.Year)
	patch.Put(changes, "is_published", r.IsPublished)
	patch.Put(changes, "image", r.Image)
	patch.Put(changes, "summary", r.Summary)
	patch.Put(changes, "details", r.Details)
	return changes
}

type BooksController struct {
	store BookStore
	audit MutationRecorder
}

func NewBooksController(store BookStore, audit MutationRecorder) *BooksController {
	return &BooksController{store: store, audit: audit}
}

// List returns every book with its categories, ordered by title.
// GET /api/v1/books
func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Book", "retrieve books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get returns a single book.
// GET /api/v1/books/:id
func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Book", "retrieve book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Create adds a book linked to the requested categories.
// POST /api/v1/books
func (controller *BooksController) Create(c *gin.Context) {
	var req bookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	book := &entities.Book{
		Title:       req.Title,
		Author:      req.Author,
		Year:        *req.Year,
		IsPublished: req.IsPublished,
		Image:       req.Image,
		Summary:     req.Summary,
		Details:     req.Details,
	}
	if err := controller.store.Create(c.Request.Context(), book, req.Categories); err != nil {
		respondStoreError(c, err, "Book", "create book")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionCreate, "book", book.ID, book.Title, nil)
	respondCreated(c, "Book created successfully", book.ID, nil)
}

// Update applies a partial update to a book.
// PATCH /api/v1/books/:id
func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	changes := req.changes()
	if err := controller.store.Update(c.Request.Context(), id, changes, req.Categories); err != nil {
		respondStoreError(c, err, "Book", "update book")
		return
	}

	fields := changes.Columns()
	if req.Categories.Set {
		fields = append(fields, "categories")
	}
	recordMutation(c, controller.audit, entities.AuditActionUpdate, "book", id, "", fields)
	respondUpdated(c, "Book updated successfully", id)
}

// Delete removes a book and its category links.
// DELETE /api/v1/books/:id
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Book", "delete book")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionDelete, "book", id, "", nil)
	respondSuccess(c, "Book deleted successfully")
}
