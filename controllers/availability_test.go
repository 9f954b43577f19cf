package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailability_RequiresDate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/availability", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailability_ExcludesBookedSlot(t *testing.T) {
	r := setupRouter(t)
	service := createTestService(t, "حلاقة", true)

	created := doJSON(r, http.MethodPost, "/reservations", validReservation(service.ID.String()), "")
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(r, http.MethodGet, "/availability?date=2026-10-01", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 25) // 26-slot grid for 9-22 minus the booked one
	assert.NotContains(t, data, "10:00")
	assert.Contains(t, data, "09:00")
}

func TestGetAvailability_FullGridWhenFree(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/availability?date=2026-10-02", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 26)
	assert.Equal(t, "09:00", data[0])
	assert.Equal(t, "21:30", data[25])
}
