package config

type CloudWatch struct {
	// AccessKeyID 為空時不啟用 CloudWatch 鏡射
	AccessKeyID     string `mapstructure:"ACCESS_KEY_ID" json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `mapstructure:"SECRET_ACCESS_KEY" json:"secretAccessKey" yaml:"secretAccessKey"`
	Region          string `mapstructure:"REGION" json:"region" yaml:"region"`
	LogGroup        string `mapstructure:"LOG_GROUP" json:"logGroup" yaml:"logGroup"`
	LogStream       string `mapstructure:"LOG_STREAM" json:"logStream" yaml:"logStream"`
	// 測試用 endpoint override（localstack 等）
	Endpoint string `mapstructure:"ENDPOINT" json:"endpoint" yaml:"endpoint"`
	// 單次送出的逾時（毫秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
