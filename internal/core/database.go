package core

// ─── SQL Store ─────────────────────────────────────────────────────────────────

type SQLTable string

const (
	TableAPIRequests SQLTable = "api_requests"
)

// TimestampLayout 固定寬度 UTC 時間格式，文字排序即時間排序
const TimestampLayout = "2006-01-02 15:04:05.000000"

// 欄位長度上限（超過即截斷，不拒絕）
const (
	MaxEndpointLen  = 500
	MaxIPAddressLen = 45
	MaxUserAgentLen = 500
)

// ─── CloudWatch Logs ───────────────────────────────────────────────────────────

const (
	DefaultLogGroup  = "api-behavior-tracker"
	DefaultLogStream = "api-requests"
	DefaultAWSRegion = "us-east-1"
)
