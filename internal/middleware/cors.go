package middleware

import (
	"strings"

	"apitracker/internal/core"
	"apitracker/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
}

func NewCors(trace *telemetry.Trace) *Cors {
	return &Cors{trace: trace}
}

// CorsHandler 全開放 CORS（分析端點供前端 dashboard 直接取用）
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
	corsHandler := cors.New(cfg)

	return func(c *gin.Context) {
		endpoint := c.Request.URL.Path

		// 營運路徑不做 tracing，但仍套用 CORS（避免 preflight 失敗）
		if endpoint == "/metrics" ||
			strings.HasPrefix(endpoint, "/debug/") {
			corsHandler(c)
			return
		}

		_, _, end := m.trace.WithSpan(m.trace.GetTraceContext(c), core.SpanCorsMiddleware)
		defer end(nil)

		corsHandler(c)
	}
}
