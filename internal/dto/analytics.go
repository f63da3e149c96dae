package dto

import (
	"apitracker/internal/database/sqlstore/model"
)

// 對外回應格式；欄位順序與命名即介面規格

type MostUsedResponse struct {
	TimeframeHours int                   `json:"timeframe_hours"`
	Results        []model.EndpointCount `json:"results"`
}

type ErrorRatesResponse struct {
	TimeframeHours int                       `json:"timeframe_hours"`
	Results        []model.EndpointErrorRate `json:"results"`
}

type ResponseTimesResponse struct {
	TimeframeHours int                     `json:"timeframe_hours"`
	Results        []model.EndpointLatency `json:"results"`
}

type SummaryResponse struct {
	TimeframeHours int           `json:"timeframe_hours"`
	Summary        model.Summary `json:"summary"`
}

type RecentRequestsResponse struct {
	Count    int                `json:"count"`
	Requests []model.APIRequest `json:"requests"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
