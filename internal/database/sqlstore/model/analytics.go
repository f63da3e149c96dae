package model

// 聚合查詢的結果列；欄位名即對外 JSON 欄位名

type EndpointCount struct {
	Endpoint     string `json:"endpoint"`
	Method       string `json:"method"`
	RequestCount int64  `json:"request_count"`
}

type EndpointErrorRate struct {
	Endpoint         string  `json:"endpoint"`
	Method           string  `json:"method"`
	TotalRequests    int64   `json:"total_requests"`
	ErrorCount       int64   `json:"error_count"`
	ErrorRatePercent float64 `json:"error_rate_percent"`
}

type EndpointLatency struct {
	Endpoint     string  `json:"endpoint"`
	Method       string  `json:"method"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	MinLatencyMs float64 `json:"min_latency_ms"`
	MaxLatencyMs float64 `json:"max_latency_ms"`
	RequestCount int64   `json:"request_count"`
}

type Summary struct {
	TotalRequests    int64   `json:"total_requests"`
	ErrorCount       int64   `json:"error_count"`
	ErrorRatePercent float64 `json:"error_rate_percent"`
	AvgLatencyMs     float64 `json:"avg_latency_ms"`
	UniqueEndpoints  int64   `json:"unique_endpoints"`
}
