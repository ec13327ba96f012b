package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/entities"
	"github.com/mrlokans/bookcafe/internal/patch"
)

type orderItemRequest struct {
	MenuID         uint     `json:"menu_id" binding:"required"`
	Amount         *int     `json:"amount" binding:"required"`
	Price          *float64 `json:"price" binding:"required"`
	AdditionalInfo *string  `json:"additional_info"`
}

type orderCreateRequest struct {
	FirstName  string             `json:"first_name" binding:"required,max=255"`
	LastName   string             `json:"last_name" binding:"required,max=255"`
	Phone      string             `json:"phone" binding:"required,max=32"`
	OrderItems []orderItemRequest `json:"order_items" binding:"dive"`
}

type orderUpdateRequest struct {
	FirstName patch.Field[string] `json:"first_name" binding:"omitempty,max=255" patch:"required"`
	LastName  patch.Field[string] `json:"last_name" binding:"omitempty,max=255" patch:"required"`
	Phone     patch.Field[string] `json:"phone" binding:"omitempty,max=32" patch:"required"`

	// A list replaces every item of the order; [] removes them all.
	OrderItems patch.Field[[]orderItemRequest] `json:"order_items" binding:"omitempty,dive"`
}

func (r orderUpdateRequest) changes() patch.Changes {
	changes := patch.Changes{}
	patch.Put(changes, "first_name", r.FirstName)
	patch.Put(changes, "last_name", r.LastName)
	patch.Put(changes, "phone", r.Phone)
	return changes
}

func (r orderUpdateRequest) items() patch.Field[[]entities.OrderItem] {
	if !r.OrderItems.Set {
		return patch.Field[[]entities.OrderItem]{}
	}
	return patch.Of(toOrderItems(r.OrderItems.Value))
}

func toOrderItems(reqs []orderItemRequest) []entities.OrderItem {
	items := make([]entities.OrderItem, len(reqs))
	for i, req := range reqs {
		items[i] = entities.OrderItem{
			MenuID:         req.MenuID,
			Amount:         *req.Amount,
			Price:          *req.Price,
			AdditionalInfo: req.AdditionalInfo,
		}
	}
	return items
}

type OrdersController struct {
	store OrderStore
	audit MutationRecorder
}

func NewOrdersController(store OrderStore, audit MutationRecorder) *OrdersController {
	return &OrdersController{store: store, audit: audit}
}

// List returns all orders, newest first, with their items and menus.
// GET /api/v1/orders
func (controller *OrdersController) List(c *gin.Context) {
	orders, err := controller.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Order", "retrieve orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get returns a single order.
// GET /api/v1/orders/:id
func (controller *OrdersController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := controller.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Order", "retrieve order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create places an order with its items and returns it.
// POST /api/v1/orders
func (controller *OrdersController) Create(c *gin.Context) {
	var req orderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	order := &entities.Order{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := controller.store.Create(c.Request.Context(), order, toOrderItems(req.OrderItems)); err != nil {
		respondStoreError(c, err, "Order", "create order")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionCreate, "order", order.ID, order.FirstName+" "+order.LastName, nil)
	respondCreated(c, "Order created successfully", order.ID, order)
}

// Update applies a partial update to an order, optionally replacing its items.
// PATCH /api/v1/orders/:id
func (controller *OrdersController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	changes := req.changes()
	if err := controller.store.Update(c.Request.Context(), id, changes, req.items()); err != nil {
		respondStoreError(c, err, "Order", "update order")
		return
	}

	fields := changes.Columns()
	if req.OrderItems.Set {
		fields = append(fields, "order_items")
	}
	recordMutation(c, controller.audit, entities.AuditActionUpdate, "order", id, "", fields)
	respondUpdated(c, "Order updated successfully", id)
}

// Delete removes an order and its items.
// DELETE /api/v1/orders/:id
func (controller *OrdersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Order", "delete order")
		return
	}

	recordMutation(c, controller.audit, entities.AuditActionDelete, "order", id, "", nil)
	respondSuccess(c, "Order deleted successfully")
}
