package service

import (
	"context"
	"time"

	"apitracker/internal/database/sqlstore/repository"
	"apitracker/internal/dto"
	cErr "apitracker/internal/pkg/error"

	"go.uber.org/zap"
)

// 各查詢的預設參數
const (
	DefaultMostUsedLimit = 10
	DefaultRecentLimit   = 100
	DefaultWindowHours   = 24
	DefaultRecentHours   = 1
)

// AnalyticsService 聚合引擎：五種唯讀查詢，window 於每次呼叫時以 now 重算。
// 自身無狀態，可無上限併發呼叫。
type AnalyticsService struct {
	logger               *zap.Logger
	apiRequestRepository *repository.APIRequestRepository
}

func NewAnalyticsService(
	logger *zap.Logger,
	apiRequestRepository *repository.APIRequestRepository,
) *AnalyticsService {
	return &AnalyticsService{
		logger:               logger,
		apiRequestRepository: apiRequestRepository,
	}
}

// windowStart 回傳 [now - hours, now] 的下界（含）
func windowStart(hours int) time.Time {
	return time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
}

func (service *AnalyticsService) MostUsed(ctx context.Context, limit, hours int) (*dto.MostUsedResponse, error) {
	results, err := service.apiRequestRepository.MostUsed(ctx, windowStart(hours), limit)
	if err != nil {
		service.logger.Error("most-used query failed", zap.Error(err))
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.MostUsedResponse{TimeframeHours: hours, Results: results}, nil
}

func (service *AnalyticsService) ErrorRates(ctx context.Context, hours int) (*dto.ErrorRatesResponse, error) {
	results, err := service.apiRequestRepository.ErrorRates(ctx, windowStart(hours))
	if err != nil {
		service.logger.Error("error-rates query failed", zap.Error(err))
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.ErrorRatesResponse{TimeframeHours: hours, Results: results}, nil
}

func (service *AnalyticsService) ResponseTimes(ctx context.Context, hours int) (*dto.ResponseTimesResponse, error) {
	results, err := service.apiRequestRepository.ResponseTimes(ctx, windowStart(hours))
	if err != nil {
		service.logger.Error("response-times query failed", zap.Error(err))
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.ResponseTimesResponse{TimeframeHours: hours, Results: results}, nil
}

func (service *AnalyticsService) Summary(ctx context.Context, hours int) (*dto.SummaryResponse, error) {
	summary, err := service.apiRequestRepository.Summary(ctx, windowStart(hours))
	if err != nil {
		service.logger.Error("summary query failed", zap.Error(err))
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.SummaryResponse{TimeframeHours: hours, Summary: *summary}, nil
}

// Recent 的 count 是實際回傳筆數，不是 window 內總數
func (service *AnalyticsService) Recent(ctx context.Context, limit, hours int) (*dto.RecentRequestsResponse, error) {
	requests, err := service.apiRequestRepository.Recent(ctx, windowStart(hours), limit)
	if err != nil {
		service.logger.Error("recent-requests query failed", zap.Error(err))
		return nil, cErr.DatabaseError(err.Error())
	}
	return &dto.RecentRequestsResponse{Count: len(requests), Requests: requests}, nil
}
