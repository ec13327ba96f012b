package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

type categoryCreateRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Detail *string `json:"detail"`
}

type categoryUpdateRequest struct {
	Name   patch.Field[string] `json:"name" binding:"omitempty,max=255" patch:"required"`
	Detail patch.Field[string] `json:"detail" patch:"nullable"`
}

func (r categoryUpdateRequest) changes() patch.Changes {
	changes := patch.Changes{}
	patch.Put(changes, "name", r.Name)
	patch.Put(changes, "detail", r.Detail)
	return changes
}

type CategoriesController struct {
	store CategoryStore
	audit MutationRecorder
}

func NewCategoriesController(store CategoryStore, audit MutationRecorder) *CategoriesController {
	return &CategoriesController{store: store, audit: audit}
}

// List returns all categories ordered by name.
// GET /api/v1/categories
func (controller *CategoriesController) List(c *gin.Context) {
	categories, err := controller.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Category", "retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get returns a single category.
// GET /api/v1/categories/:id
func (controller *CategoriesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Category", "retrieve category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// Create adds a category.
// POST /api/v1/categories
func (controller *CategoriesController) Create(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	category := &entities.Category{Name: req.Name, Detail: req.Detail}
	if err := controller.store.Create(c.Request.Context(), category); err != nil {
		respondStoreError(c, err, "Category", "create category")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionCreate, "category", category.ID, category.Name, nil)
	respondCreated(c, "Category created successfully", category.ID, nil)
}

// Update applies a partial update to a category.
// PATCH /api/v1/categories/:id
func (controller *CategoriesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	changes := req.changes()
	if err := controller.store.Update(c.Request.Context(), id, changes); err != nil {
		respondStoreError(c, err, "Category", "update category")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionUpdate, "category", id, "", changes.Columns())
	respondUpdated(c, "Category updated successfully", id)
}

// Delete removes a category. Categories still linked to a book are refused.
// DELETE /api/v1/categories/:id
func (controller *CategoriesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Category", "delete category")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionDelete, "category", id, "", nil)
	respondSuccess(c, "Category deleted successfully")
}
