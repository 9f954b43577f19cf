package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"belalbarber-backend/config"
	"belalbarber-backend/models"
	"belalbarber-backend/routes"
	"belalbarber-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the real router against a fresh in-memory database
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SITE_CONTENT", "")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Reservation{},
		&models.Contact{},
	))
	config.DB = db

	return routes.SetupRouter(config.LoadSiteContent())
}

// tokenFor issues a session token with the given role claim
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(uuid.New().String(), role)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the router and returns the recorder
func doJSON(r *gin.Engine, method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validReservation(serviceID string) map[string]interface{} {
	return map[string]interface{}{
		"name":             "أحمد محمد",
		"phone":            "01012345678",
		"service_id":       serviceID,
		"appointment_date": "2026-10-01",
		"appointment_time": "10:00",
	}
}

func createTestService(t *testing.T, title string, active bool) models.Service {
	t.Helper()
	service := models.Service{
		Title:       title,
		Description: "وصف الخدمة",
		Price:       "ابتداءً من 50 جنيه",
		Duration:    "30 دقيقة",
		Icon:        "✂️",
		IsActive:    active,
	}
	require.NoError(t, config.DB.Create(&service).Error)
	if !active {
		// the default:true tag makes GORM skip a false IsActive on
		// insert, so flip it with an explicit update
		require.NoError(t, config.DB.Model(&service).Update("is_active", false).Error)
	}

	var stored models.Service
	require.NoError(t, config.DB.First(&stored, "id = ?", service.ID).Error)
	require.Equal(t, active, stored.IsActive)
	return stored
}
