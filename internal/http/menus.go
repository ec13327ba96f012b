package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

type menuCreateRequest struct {
	Name    string   `json:"name" binding:"required,max=255"`
	Details *string  `json:"details"`
	Price   *float64 `json:"price" binding:"required"`
	Image   *string  `json:"image" binding:"omitempty,max=2048"`
}

type menuUpdateRequest struct {
	Name    patch.Field[string]  `json:"name" binding:"omitempty,max=255" patch:"required"`
	Details patch.Field[string]  `json:"details" patch:"nullable"`
	Price   patch.Field[float64] `json:"price"`
	Image   patch.Field[string]  `json:"image" binding:"omitempty,max=2048" patch:"nullable"`
}

func (r menuUpdateRequest) changes() patch.Changes {
	changes := patch.Changes{}
	patch.Put(changes, "name", r.Name)
	patch.Put(changes, "details", r.Details)
	patch.Put(changes, "price", r.Price)
	patch.Put(changes, "image", r.Image)
	return changes
}

type MenusController struct {
	store MenuStore
	audit MutationRecorder
}

func NewMenusController(store MenuStore, audit MutationRecorder) *MenusController {
	return &MenusController{store: store, audit: audit}
}

// List returns all menus.
// GET /api/v1/menus
func (controller *MenusController) List(c *gin.Context) {
	menus, err := controller.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Menu", "retrieve menus")
		return
	}
	c.JSON(http.StatusOK, menus)
}

// Get returns a single menu.
// GET /api/v1/menus/:id
func (controller *MenusController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	menu, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Menu", "retrieve menu")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// Create adds a menu.
// POST /api/v1/menus
func (controller *MenusController) Create(c *gin.Context) {
	var req menuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	menu := &entities.Menu{
		Name:    req.Name,
		Details: req.Details,
		Price:   *req.Price,
		Image:   req.Image,
	}
	if err := controller.store.Create(c.Request.Context(), menu); err != nil {
		respondStoreError(c, err, "Menu", "create menu")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionCreate, "menu", menu.ID, menu.Name, nil)
	respondCreated(c, "Menu created successfully", menu.ID, nil)
}

// Update applies a partial update to a menu.
// PATCH /api/v1/menus/:id
func (controller *MenusController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req menuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	changes := req.changes()
	if err := controller.store.Update(c.Request.Context(), id, changes); err != nil {
		respondStoreError(c, err, "Menu", "update menu")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionUpdate, "menu", id, "", changes.Columns())
	respondUpdated(c, "Menu updated successfully", id)
}

// Delete removes a menu together with every order item that references it.
// DELETE /api/v1/menus/:id
func (controller *MenusController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Menu", "delete menu")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionDelete, "menu", id, "", nil)
	respondSuccess(c, "Menu deleted successfully")
}
