package model

import (
	"fmt"
	"time"
)

// AccessLine 鏡射到外部 sink 的單行存取紀錄
type AccessLine struct {
	Method     string
	Endpoint   string
	StatusCode int
	LatencyMs  float64
	Timestamp  time.Time
}

// Line 產生 sink 的標準格式，例如 "GET /api/users - 200 - 12.34ms"
func (l AccessLine) Line() string {
	return fmt.Sprintf("%s %s - %d - %.2fms", l.Method, l.Endpoint, l.StatusCode, l.LatencyMs)
}
