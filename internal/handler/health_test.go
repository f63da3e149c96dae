package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apitracker/internal/dto"
	"apitracker/internal/service"

	"github.com/gin-gonic/gin"
)

func TestHealthNotReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", NewHealthHandler(service.NewHealthService()).Health)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before ready, got %d", res.Code)
	}
}

func TestHealthReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	healthService := service.NewHealthService()
	healthService.SetReady(true)

	router := gin.New()
	router.GET("/health", NewHealthHandler(healthService).Health)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", res.Code)
	}

	var body dto.HealthResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", body.Timestamp)
	}
}
