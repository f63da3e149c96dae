package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"apitracker/config"
	"apitracker/internal/database/client"
	cloudwatchRepo "apitracker/internal/database/cloudwatch/repository"
	sqlstoreRepo "apitracker/internal/database/sqlstore/repository"
	"apitracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// capturingSink 收下每一行,可設定為固定失敗
type capturingSink struct {
	lines []string
	err   error
}

func (s *capturingSink) PutLine(_ context.Context, _ time.Time, message string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, message)
	return nil
}

func (s *capturingSink) Close() error { return nil }

func newTestRecorder(t *testing.T, sink client.SinkClient) (*Recorder, *sqlstoreRepo.APIRequestRepository, *client.SQLClient) {
	t.Helper()

	conf := &config.Configuration{
		Database: config.Database{DSN: ":memory:", MaxOpenConns: 1},
	}

	sqlClient, cleanup, err := client.NewSQLClient(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(cleanup)

	trace, err := telemetry.NewTrace(conf)
	if err != nil {
		t.Fatalf("build trace: %v", err)
	}
	metric := telemetry.NewMetric(conf)

	apiRequestRepository := sqlstoreRepo.NewAPIRequestRepository(zap.NewNop(), sqlClient)
	accessLogRepository := cloudwatchRepo.NewAccessLogRepository(conf, sink)

	return NewRecorder(zap.NewNop(), trace, metric, apiRequestRepository, accessLogRepository), apiRequestRepository, sqlClient
}

func serveOnce(recorder *Recorder, method, target, remoteAddr, userAgent string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(recorder.RecorderHandler())
	router.Handle(method, "/*any", handler)

	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = remoteAddr
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestRecorderPersistsRequest(t *testing.T) {
	sink := &capturingSink{}
	recorder, repo, _ := newTestRecorder(t, sink)

	res := serveOnce(recorder, http.MethodGet, "/api/users", "198.51.100.9:43210", "test-agent/1.0",
		func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	records, err := repo.Recent(context.Background(), time.Now().UTC().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(records))
	}

	record := records[0]
	if record.Endpoint != "/api/users" || record.Method != "GET" || record.StatusCode != 200 {
		t.Errorf("unexpected record: %+v", record)
	}
	if record.IPAddress != "198.51.100.9" {
		t.Errorf("expected host part of remote addr, got %q", record.IPAddress)
	}
	if record.UserAgent != "test-agent/1.0" {
		t.Errorf("unexpected user agent: %q", record.UserAgent)
	}
	if record.LatencyMs < 0 {
		t.Errorf("negative latency: %v", record.LatencyMs)
	}

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 mirrored line, got %d", len(sink.lines))
	}
	if !strings.HasPrefix(sink.lines[0], "GET /api/users - 200 - ") || !strings.HasSuffix(sink.lines[0], "ms") {
		t.Errorf("unexpected mirrored line: %q", sink.lines[0])
	}
}

func TestRecorderSinkFailureDoesNotAffectResponse(t *testing.T) {
	sink := &capturingSink{err: errors.New("sink unavailable")}
	recorder, repo, _ := newTestRecorder(t, sink)

	res := serveOnce(recorder, http.MethodGet, "/api/users", "198.51.100.9:43210", "",
		func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 despite sink failure, got %d", res.Code)
	}
	if res.Body.String() != "ok" {
		t.Fatalf("expected untouched body, got %q", res.Body.String())
	}

	// sink 掛掉不影響持久化
	records, err := repo.Recent(context.Background(), time.Now().UTC().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected record persisted despite sink failure, got %d", len(records))
	}
}

func TestRecorderStoreFailureDoesNotAffectResponse(t *testing.T) {
	sink := &capturingSink{}
	recorder, _, sqlClient := newTestRecorder(t, sink)

	// 關掉連線池,讓持久化必定失敗
	if err := sqlClient.Close(); err != nil {
		t.Fatalf("close pool: %v", err)
	}

	res := serveOnce(recorder, http.MethodGet, "/api/users", "198.51.100.9:43210", "",
		func(c *gin.Context) { c.String(http.StatusOK, "payload") })

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 despite store failure, got %d", res.Code)
	}
	if res.Body.String() != "payload" {
		t.Fatalf("expected untouched body, got %q", res.Body.String())
	}

	// store 掛掉不影響 sink 鏡射
	if len(sink.lines) != 1 {
		t.Fatalf("expected mirrored line despite store failure, got %d", len(sink.lines))
	}
}

func TestRecorderSkipsOperationalRoutes(t *testing.T) {
	sink := &capturingSink{}
	recorder, repo, _ := newTestRecorder(t, sink)

	res := serveOnce(recorder, http.MethodGet, "/metrics", "198.51.100.9:43210", "",
		func(c *gin.Context) { c.String(http.StatusOK, "metrics") })

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	records, err := repo.Recent(context.Background(), time.Now().UTC().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected /metrics to be skipped, got %d records", len(records))
	}
	if len(sink.lines) != 0 {
		t.Fatalf("expected no mirrored lines for /metrics, got %d", len(sink.lines))
	}
}

func TestRecorderSkipMatchesExactPaths(t *testing.T) {
	sink := &capturingSink{}
	recorder, repo, _ := newTestRecorder(t, sink)

	// /metrics 只跳過完全相同的路徑;相似前綴照常記錄
	res := serveOnce(recorder, http.MethodGet, "/metricsfoo", "198.51.100.9:43210", "",
		func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	records, err := repo.Recent(context.Background(), time.Now().UTC().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 || records[0].Endpoint != "/metricsfoo" {
		t.Fatalf("expected /metricsfoo to be recorded, got %+v", records)
	}
}

func TestRecorderTruncatesOversizedFields(t *testing.T) {
	sink := &capturingSink{}
	recorder, repo, _ := newTestRecorder(t, sink)

	longAgent := strings.Repeat("a", 600)
	res := serveOnce(recorder, http.MethodGet, "/api/users", "198.51.100.9:43210", longAgent,
		func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	records, err := repo.Recent(context.Background(), time.Now().UTC().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := len(records[0].UserAgent); got != 500 {
		t.Errorf("expected user agent truncated to 500 bytes, got %d", got)
	}
}
