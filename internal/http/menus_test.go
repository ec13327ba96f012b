package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcafe/internal/entities"
)

func getMenu(t *testing.T, env *testEnv, id uint) entities.Menu {
	t.Helper()
	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var menu entities.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	return menu
}

func TestMenusController_Create(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("creates a menu", func(t *testing.T) {
		id := env.create(t, "/api/v1/menus", map[string]any{"name": "Latte", "price": 3.5, "details": "Oat milk"})

		menu := getMenu(t, env, id)
		assert.Equal(t, "Latte", menu.Name)
		assert.Equal(t, 3.5, menu.Price)
		require.NotNil(t, menu.Details)
		assert.Nil(t, menu.Image)
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		id := env.create(t, "/api/v1/menus", map[string]any{"name": "Water", "price": 0})
		assert.Equal(t, 0.0, getMenu(t, env, id).Price)
	})

	t.Run("price is required", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/menus", `{"name": "Mocha"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "is required", decodeDetails(t, w)["price"])
	})
}

func TestMenusController_ListAndUpdate(t *testing.T) {
	env := setupTestEnv(t)
	first := env.create(t, "/api/v1/menus", map[string]any{"name": "Latte", "price": 3.5, "image": "latte.png"})
	env.create(t, "/api/v1/menus", map[string]any{"name": "Espresso", "price": 2})

	w := env.do(t, http.MethodGet, "/api/v1/menus", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []entities.Menu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/menus/%d", first), `{"price": 4.25, "image": null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	menu := getMenu(t, env, first)
	assert.Equal(t, 4.25, menu.Price)
	assert.Nil(t, menu.Image)
	assert.Equal(t, "Latte", menu.Name)

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/menus/%d", first), `{"price": null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot be null", decodeDetails(t, w)["price"])

	w = env.do(t, http.MethodPatch, "/api/v1/menus/404", `{"price": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Menu not found", decodeError(t, w).Error)
}

func TestMenusController_DeleteRemovesOrderItems(t *testing.T) {
	env := setupTestEnv(t)
	latte := env.create(t, "/api/v1/menus", map[string]any{"name": "Latte", "price": 3.5})
	scone := env.create(t, "/api/v1/menus", map[string]any{"name": "Scone", "price": 2.75})
	order := env.create(t, "/api/v1/orders", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace", "phone": "555-0100",
		"order_items": []map[string]any{
			{"menu_id": latte, "amount": 1, "price": 3.5},
			{"menu_id": scone, "amount": 2, "price": 2.75},
		},
	})

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/menus/%d", latte), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Menu deleted successfully"}`, w.Body.String())

	got := getOrder(t, env, order)
	require.Len(t, got.Items, 1)
	assert.Equal(t, scone, got.Items[0].MenuID)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/menus/%d", latte), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
