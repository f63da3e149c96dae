package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apitracker/config"
	"apitracker/internal/database/client"
	"apitracker/internal/database/sqlstore/model"
	"apitracker/internal/database/sqlstore/repository"
	"apitracker/internal/dto"
	"apitracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.APIRequestRepository) {
	t.Helper()

	sqlClient, cleanup, err := client.NewSQLClient(zap.NewNop(), &config.Configuration{
		Database: config.Database{DSN: ":memory:", MaxOpenConns: 1},
	})
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(cleanup)

	repo := repository.NewAPIRequestRepository(zap.NewNop(), sqlClient)
	handler := NewAnalyticsHandler(service.NewAnalyticsService(zap.NewNop(), repo))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	analytics := api.Group("/analytics")
	analytics.GET("/most-used", handler.MostUsed)
	analytics.GET("/error-rates", handler.ErrorRates)
	analytics.GET("/response-times", handler.ResponseTimes)
	analytics.GET("/summary", handler.Summary)
	api.GET("/requests", handler.Recent)

	return router, repo
}

func seedRecord(t *testing.T, repo *repository.APIRequestRepository, endpoint string, statusCode int) {
	t.Helper()
	err := repo.Insert(context.Background(), &model.APIRequest{
		Endpoint:   endpoint,
		Method:     "GET",
		StatusCode: statusCode,
		LatencyMs:  12.5,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed %s: %v", endpoint, err)
	}
}

func doGet(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestMostUsedResponseShape(t *testing.T) {
	router, repo := newTestRouter(t)
	seedRecord(t, repo, "/api/users", 200)
	seedRecord(t, repo, "/api/users", 200)
	seedRecord(t, repo, "/api/orders", 200)

	res := doGet(t, router, "/api/analytics/most-used?limit=1&hours=48")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var body dto.MostUsedResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.TimeframeHours != 48 {
		t.Errorf("expected timeframe_hours 48, got %d", body.TimeframeHours)
	}
	if len(body.Results) != 1 {
		t.Fatalf("expected limit=1 to cap results, got %d", len(body.Results))
	}
	if body.Results[0].Endpoint != "/api/users" || body.Results[0].RequestCount != 2 {
		t.Errorf("unexpected top group: %+v", body.Results[0])
	}
}

func TestMostUsedBadParamsFallBackToDefaults(t *testing.T) {
	router, repo := newTestRouter(t)
	seedRecord(t, repo, "/api/users", 200)

	res := doGet(t, router, "/api/analytics/most-used?limit=abc&hours=-no")
	if res.Code != http.StatusOK {
		t.Fatalf("expected malformed params to fall back, got %d", res.Code)
	}

	var body dto.MostUsedResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.TimeframeHours != service.DefaultWindowHours {
		t.Errorf("expected default timeframe %d, got %d", service.DefaultWindowHours, body.TimeframeHours)
	}
}

func TestErrorRatesResponseShape(t *testing.T) {
	router, repo := newTestRouter(t)
	seedRecord(t, repo, "/api/users", 200)
	seedRecord(t, repo, "/api/users", 500)

	res := doGet(t, router, "/api/analytics/error-rates")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var body dto.ErrorRatesResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 group, got %d", len(body.Results))
	}
	if body.Results[0].ErrorRatePercent != 50.0 {
		t.Errorf("expected 50%% error rate, got %v", body.Results[0].ErrorRatePercent)
	}
}

func TestSummaryEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t)

	res := doGet(t, router, "/api/analytics/summary")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 on empty store, got %d", res.Code)
	}

	var body dto.SummaryResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Summary.TotalRequests != 0 || body.Summary.ErrorRatePercent != 0 {
		t.Errorf("expected zeroed summary, got %+v", body.Summary)
	}
}

func TestRecentCountMatchesReturnedRows(t *testing.T) {
	router, repo := newTestRouter(t)
	for i := 0; i < 3; i++ {
		seedRecord(t, repo, "/api/users", 200)
	}

	res := doGet(t, router, "/api/requests?limit=2")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var body dto.RecentRequestsResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Count != 2 || len(body.Requests) != 2 {
		t.Fatalf("expected count to equal returned rows (2), got count=%d rows=%d", body.Count, len(body.Requests))
	}
}

func TestIntQueryDefault(t *testing.T) {
	cases := []struct {
		raw      string
		def      int
		expected int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"-3", 10, -3},
		{"2.5", 10, 10},
	}
	for _, c := range cases {
		if got := intQueryDefault(c.raw, c.def); got != c.expected {
			t.Errorf("intQueryDefault(%q, %d) = %d, expected %d", c.raw, c.def, got, c.expected)
		}
	}
}
