package config

type Cron struct {
	// SummarySpec 為空字串時不排程流量摘要 heartbeat
	// 例如 "0 0 * * * *"（每小時整點，含秒欄位）
	SummarySpec string `mapstructure:"SUMMARY_SPEC" json:"summarySpec" yaml:"summarySpec"`
}
