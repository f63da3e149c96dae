package model

import "time"

// APIRequest 一筆完成的請求觀測；append-only，寫入後不再變動
type APIRequest struct {
	ID         int64     `json:"id"`
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	StatusCode int       `json:"status_code"`
	LatencyMs  float64   `json:"latency_ms"`
	Timestamp  time.Time `json:"timestamp"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
}
