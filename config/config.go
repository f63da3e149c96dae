package config

type Configuration struct {
	App        App             `mapstructure:"APP" json:"app" yaml:"app"`
	Database   Database        `mapstructure:"DATABASE" json:"database" yaml:"database"`
	CloudWatch CloudWatch      `mapstructure:"CLOUDWATCH" json:"cloudwatch" yaml:"cloudwatch"`
	Log        Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Telemetry  TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Cron       Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
}
