package config

type Database struct {
	// 連線字串，例如 file:api_tracker.db 或 :memory:
	DSN string `mapstructure:"DSN" json:"dsn" yaml:"dsn"`
	// 連線池上限，0 表示交由 driver 預設
	MaxOpenConns int `mapstructure:"MAX_OPEN_CONNS" json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns int `mapstructure:"MAX_IDLE_CONNS" json:"maxIdleConns" yaml:"maxIdleConns"`
}
