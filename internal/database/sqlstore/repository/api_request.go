package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"apitracker/internal/core"
	"apitracker/internal/database/client"
	"apitracker/internal/database/sqlstore/model"

	"go.uber.org/zap"
)

// APIRequestRepository owns the api_requests append log: the recorder appends
// through it, the analytics queries read through it. Rows are never updated
// or deleted here.
type APIRequestRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewAPIRequestRepository(logger *zap.Logger, sqlClient *client.SQLClient) *APIRequestRepository {
	repository := &APIRequestRepository{
		db:     sqlClient.DB(),
		logger: logger,
	}
	// 啟動時建表（冪等、存在即跳過）；失敗只警告，交由後續操作回報
	if err := repository.ensureSchema(context.Background()); err != nil {
		logger.Warn("record store initialization warning", zap.Error(err))
	} else {
		logger.Info("record store schema initialized")
	}
	return repository
}

func (repository *APIRequestRepository) ensureSchema(ctx context.Context) error {
	_, err := repository.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			endpoint    VARCHAR(500) NOT NULL,
			method      VARCHAR(10)  NOT NULL,
			status_code INTEGER      NOT NULL,
			latency_ms  REAL         NOT NULL,
			timestamp   VARCHAR(26)  NOT NULL,
			ip_address  VARCHAR(45),
			user_agent  VARCHAR(500)
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_endpoint ON %[1]s(endpoint);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_method ON %[1]s(method);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_status_code ON %[1]s(status_code);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_timestamp ON %[1]s(timestamp);
	`, core.TableAPIRequests))
	return err
}

// Insert 在獨立交易中 append 一筆紀錄；成功時回填 store 配發的 id
func (repository *APIRequestRepository) Insert(ctx context.Context, record *model.APIRequest) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	tx, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (endpoint, method, status_code, latency_ms, timestamp, ip_address, user_agent)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, core.TableAPIRequests),
		record.Endpoint, record.Method, record.StatusCode, record.LatencyMs,
		record.Timestamp.UTC().Format(core.TimestampLayout),
		record.IPAddress, record.UserAgent,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	record.ID = id
	return nil
}

// MostUsed 回傳 window 內呼叫次數最多的 (endpoint, method) 前 limit 組
func (repository *APIRequestRepository) MostUsed(ctx context.Context, since time.Time, limit int) ([]model.EndpointCount, error) {
	rows, err := repository.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT endpoint, method, COUNT(id) AS request_count
		FROM %s
		WHERE timestamp >= ?
		GROUP BY endpoint, method
		ORDER BY request_count DESC
		LIMIT ?`, core.TableAPIRequests),
		formatSince(since), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.EndpointCount{}
	for rows.Next() {
		var r model.EndpointCount
		if err := rows.Scan(&r.Endpoint, &r.Method, &r.RequestCount); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ErrorRates 回傳 window 內每組 (endpoint, method) 的錯誤率，錯誤率高者在前。
// 以條件式計數取代 outer join：沒有錯誤列的組合會得到 0，而不是消失。
func (repository *APIRequestRepository) ErrorRates(ctx context.Context, since time.Time) ([]model.EndpointErrorRate, error) {
	rows, err := repository.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT endpoint, method,
		       COUNT(id) AS total,
		       SUM(CASE WHEN status_code >= 400 THEN 1 ELSE 0 END) AS errors,
		       ROUND(SUM(CASE WHEN status_code >= 400 THEN 1 ELSE 0 END) * 100.0 / COUNT(id), 2) AS error_rate_percent
		FROM %s
		WHERE timestamp >= ?
		GROUP BY endpoint, method
		ORDER BY error_rate_percent DESC`, core.TableAPIRequests),
		formatSince(since),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.EndpointErrorRate{}
	for rows.Next() {
		var r model.EndpointErrorRate
		if err := rows.Scan(&r.Endpoint, &r.Method, &r.TotalRequests, &r.ErrorCount, &r.ErrorRatePercent); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ResponseTimes 回傳 window 內每組 (endpoint, method) 的延遲統計，平均高者在前
func (repository *APIRequestRepository) ResponseTimes(ctx context.Context, since time.Time) ([]model.EndpointLatency, error) {
	rows, err := repository.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT endpoint, method,
		       ROUND(AVG(latency_ms), 2) AS avg_latency,
		       ROUND(MIN(latency_ms), 2) AS min_latency,
		       ROUND(MAX(latency_ms), 2) AS max_latency,
		       COUNT(id) AS request_count
		FROM %s
		WHERE timestamp >= ?
		GROUP BY endpoint, method
		ORDER BY avg_latency DESC`, core.TableAPIRequests),
		formatSince(since),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.EndpointLatency{}
	for rows.Next() {
		var r model.EndpointLatency
		if err := rows.Scan(&r.Endpoint, &r.Method, &r.AvgLatencyMs, &r.MinLatencyMs, &r.MaxLatencyMs, &r.RequestCount); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Summary 回傳 window 的整體統計；空 window 得到全零，不會除以零
func (repository *APIRequestRepository) Summary(ctx context.Context, since time.Time) (*model.Summary, error) {
	row := repository.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT COUNT(id),
		       COALESCE(SUM(CASE WHEN status_code >= 400 THEN 1 ELSE 0 END), 0),
		       ROUND(COALESCE(AVG(latency_ms), 0), 2),
		       COUNT(DISTINCT endpoint)
		FROM %s
		WHERE timestamp >= ?`, core.TableAPIRequests),
		formatSince(since),
	)

	summary := &model.Summary{}
	if err := row.Scan(&summary.TotalRequests, &summary.ErrorCount, &summary.AvgLatencyMs, &summary.UniqueEndpoints); err != nil {
		return nil, err
	}

	denominator := summary.TotalRequests
	if denominator == 0 {
		denominator = 1
	}
	summary.ErrorRatePercent = math.Round(float64(summary.ErrorCount)*100.0/float64(denominator)*100) / 100
	return summary, nil
}

// Recent 回傳 window 內最近的 limit 筆完整紀錄，新者在前
func (repository *APIRequestRepository) Recent(ctx context.Context, since time.Time, limit int) ([]model.APIRequest, error) {
	rows, err := repository.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, endpoint, method, status_code, latency_ms, timestamp, ip_address, user_agent
		FROM %s
		WHERE timestamp >= ?
		ORDER BY timestamp DESC
		LIMIT ?`, core.TableAPIRequests),
		formatSince(since), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.APIRequest{}
	for rows.Next() {
		var r model.APIRequest
		var ts string
		var ip, ua sql.NullString
		if err := rows.Scan(&r.ID, &r.Endpoint, &r.Method, &r.StatusCode, &r.LatencyMs, &ts, &ip, &ua); err != nil {
			return nil, err
		}
		parsed, err := time.ParseInLocation(core.TimestampLayout, ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("scanning record timestamp: %w", err)
		}
		r.Timestamp = parsed
		r.IPAddress = ip.String
		r.UserAgent = ua.String
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func formatSince(since time.Time) string {
	return since.UTC().Format(core.TimestampLayout)
}
