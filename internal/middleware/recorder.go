package middleware

import (
	"context"
	"net"
	"strings"
	"time"

	"apitracker/internal/core"
	cloudwatchModel "apitracker/internal/database/cloudwatch/model"
	cloudwatchRepo "apitracker/internal/database/cloudwatch/repository"
	sqlstoreModel "apitracker/internal/database/sqlstore/model"
	sqlstoreRepo "apitracker/internal/database/sqlstore/repository"
	"apitracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recorder 觀測每一組 request/response 並轉成一筆持久化紀錄加一行外部 log。
// 兩個副作用各自隔離：任何失敗都記下來後吞掉，絕不影響原始回應。
type Recorder struct {
	logger               *zap.Logger
	trace                *telemetry.Trace
	metric               *telemetry.Metric
	apiRequestRepository *sqlstoreRepo.APIRequestRepository
	accessLogRepository  *cloudwatchRepo.AccessLogRepository
}

func NewRecorder(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	apiRequestRepository *sqlstoreRepo.APIRequestRepository,
	accessLogRepository *cloudwatchRepo.AccessLogRepository,
) *Recorder {
	return &Recorder{
		logger:               logger,
		trace:                trace,
		metric:               metric,
		apiRequestRepository: apiRequestRepository,
		accessLogRepository:  accessLogRepository,
	}
}

// RecorderHandler 記錄每個請求；營運用路由（/metrics、pprof）除外
func (m *Recorder) RecorderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.Request.URL.Path
		if endpoint == "/metrics" ||
			strings.HasPrefix(endpoint, "/debug/") {
			c.Next()
			return
		}

		start := time.Now().UTC()
		if entryTime, exists := c.Get("requestStart"); exists {
			if t, ok := entryTime.(time.Time); ok {
				start = t
			}
		}

		// 執行下游（panic 由 Recovery 處理，回來時 status 已定）
		c.Next()

		latencyMs := float64(time.Since(start)) / float64(time.Millisecond)
		method := c.Request.Method
		statusCode := c.Writer.Status()
		ipAddress := truncate(remoteIP(c.Request.RemoteAddr), core.MaxIPAddressLen)
		userAgent := truncate(c.Request.UserAgent(), core.MaxUserAgentLen)

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), core.SpanRecorderMiddleware)
		defer end(nil)
		m.trace.ApplyTraceAttributes(span, core.TraceRecordMeta{
			Endpoint:   endpoint,
			Method:     method,
			StatusCode: statusCode,
			LatencyMs:  latencyMs,
			ClientIP:   ipAddress,
			UserAgent:  userAgent,
		})

		// 紀錄路徑不能被呼叫端斷線取消
		ctx = context.WithoutCancel(ctx)

		// 外部 sink 鏡射：失敗警告後吞掉
		emitCtx, _, endEmit := m.trace.WithSpan(ctx, core.SpanSinkEmit)
		emitErr := m.accessLogRepository.EmitAccess(emitCtx, cloudwatchModel.AccessLine{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: statusCode,
			LatencyMs:  latencyMs,
			Timestamp:  time.Now().UTC(),
		})
		endEmit(emitErr)
		if emitErr != nil {
			m.logger.Warn("failed to mirror access line to sink", zap.Error(emitErr))
			if m.metric.SinkEmitFailTotal != nil {
				m.metric.SinkEmitFailTotal.Inc()
			}
		}

		// 持久化：失敗記 error 後吞掉，原始回應不變
		record := &sqlstoreModel.APIRequest{
			Endpoint:   truncate(endpoint, core.MaxEndpointLen),
			Method:     method,
			StatusCode: statusCode,
			LatencyMs:  latencyMs,
			Timestamp:  time.Now().UTC(),
			IPAddress:  ipAddress,
			UserAgent:  userAgent,
		}
		persistCtx, _, endPersist := m.trace.WithSpan(ctx, core.SpanRecordPersist)
		persistErr := m.apiRequestRepository.Insert(persistCtx, record)
		endPersist(persistErr)
		if persistErr != nil {
			m.logger.Error("failed to log request to store", zap.Error(persistErr))
			if m.metric.RecordPersistTotal != nil {
				m.metric.RecordPersistTotal.WithLabelValues("fail").Inc()
			}
			return
		}
		if m.metric.RecordPersistTotal != nil {
			m.metric.RecordPersistTotal.WithLabelValues("ok").Inc()
		}
	}
}

// remoteIP 取連線對端位址（不看 proxy header）
func remoteIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
