package controllers_test

import (
	"net/http"
	"testing"

	"belalbarber-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService_MissingFields(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	w := doJSON(r, http.MethodPost, "/api/services", map[string]interface{}{
		"title": "حلاقة",
	}, admin)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateService_ActiveByDefault(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	w := doJSON(r, http.MethodPost, "/api/services", map[string]interface{}{
		"title":       "حلاقة احترافية",
		"description": "وصف",
		"price":       "ابتداءً من 50 جنيه",
		"duration":    "30 دقيقة",
		"icon":        "✂️",
	}, admin)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_active"])
}

func TestServiceDeactivation_HiddenFromPublicOnly(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)
	service := createTestService(t, "ساونا", true)

	w := doJSON(r, http.MethodPut, "/api/services?id="+service.ID.String(),
		map[string]interface{}{"is_active": false}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	public := doJSON(r, http.MethodGet, "/services", nil, "")
	require.Equal(t, http.StatusOK, public.Code)
	assert.Empty(t, decodeBody(t, public)["data"])

	adminList := doJSON(r, http.MethodGet, "/api/services", nil, admin)
	require.Equal(t, http.StatusOK, adminList.Code)
	assert.Len(t, decodeBody(t, adminList)["data"], 1)
}

func TestUpdateService_PartialUpdate(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)
	service := createTestService(t, "حمام مغربي", true)

	w := doJSON(r, http.MethodPut, "/api/services?id="+service.ID.String(),
		map[string]interface{}{"price": "ابتداءً من 150 جنيه"}, admin)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ابتداءً من 150 جنيه", data["price"])
	assert.Equal(t, "حمام مغربي", data["title"]) // untouched fields stay
}

func TestUpdateService_NotFound(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	w := doJSON(r, http.MethodPut, "/api/services?id="+uuid.New().String(),
		map[string]interface{}{"price": "100"}, admin)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteService_NotFound(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)

	w := doJSON(r, http.MethodDelete, "/api/services?id="+uuid.New().String(), nil, admin)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteService_LeavesOrphanedReservation(t *testing.T) {
	r := setupRouter(t)
	admin := tokenFor(t, models.RoleAdmin)
	service := createTestService(t, "حمام تركي", true)

	created := doJSON(r, http.MethodPost, "/reservations", validReservation(service.ID.String()), "")
	require.Equal(t, http.StatusCreated, created.Code)

	deleted := doJSON(r, http.MethodDelete, "/api/services?id="+service.ID.String(), nil, admin)
	require.Equal(t, http.StatusOK, deleted.Code)

	// the reservation survives and its listing falls back to a placeholder
	w := doJSON(r, http.MethodGet, "/api/reservations", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "service removed", data[0].(map[string]interface{})["service_title"])
}

func TestPublicServices_OrderedByCreation(t *testing.T) {
	r := setupRouter(t)
	first := createTestService(t, "الأولى", true)
	second := createTestService(t, "الثانية", true)

	w := doJSON(r, http.MethodGet, "/services", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, first.Title, data[0].(map[string]interface{})["title"])
	assert.Equal(t, second.Title, data[1].(map[string]interface{})["title"])
}
