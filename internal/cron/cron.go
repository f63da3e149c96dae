package cron

import (
	"context"

	conf "apitracker/config"
	"apitracker/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	config           *conf.Configuration
	analyticsService *service.AnalyticsService
	server           *cron.Cron
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	config *conf.Configuration,
	analyticsService *service.AnalyticsService,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		config:           config,
		analyticsService: analyticsService,
		server:           server,
	}
}

func (c *Cron) Run() error {
	// 流量摘要 heartbeat：只輸出 log，不做任何快取或預聚合
	if spec := c.config.Cron.SummarySpec; spec != "" {
		if _, err := c.server.AddFunc(spec, c.logTrafficSummary); err != nil {
			return err
		}
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) logTrafficSummary() {
	result, err := c.analyticsService.Summary(context.Background(), service.DefaultWindowHours)
	if err != nil {
		c.logger.Warn("traffic summary heartbeat failed", zap.Error(err))
		return
	}
	c.logger.Info("traffic summary",
		zap.Int("timeframe_hours", result.TimeframeHours),
		zap.Int64("total_requests", result.Summary.TotalRequests),
		zap.Int64("error_count", result.Summary.ErrorCount),
		zap.Float64("error_rate_percent", result.Summary.ErrorRatePercent),
		zap.Float64("avg_latency_ms", result.Summary.AvgLatencyMs),
		zap.Int64("unique_endpoints", result.Summary.UniqueEndpoints),
	)
}
