package router

import (
	"apitracker/config"
	"apitracker/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewAnalyticsRouter,
)

// NewRouter 組裝 middleware chain 與所有路由。
// Recorder 放在 Recovery 外層：panic 被 Recovery 收掉後，Recorder 仍照 500 入帳。
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recorder *middleware.Recorder,
	cors *middleware.Cors,
	recovery *middleware.Recovery,
	healthRouter *HealthRouter,
	analyticsRouter *AnalyticsRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(recorder.RecorderHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthRouter.RegisterRoutes(router)
	analyticsRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}
