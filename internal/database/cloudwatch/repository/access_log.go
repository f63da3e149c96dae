package repository

import (
	"context"
	"time"

	conf "apitracker/config"
	"apitracker/internal/database/client"
	"apitracker/internal/database/cloudwatch/model"
)

const defaultEmitTimeout = 2 * time.Second

// AccessLogRepository 統一負責發送 access line 到外部 sink。
// 送出必須有時間上限，逾時與其他失敗同等處理，由呼叫端吞掉。
type AccessLogRepository struct {
	sinkClient client.SinkClient
	timeout    time.Duration
}

func NewAccessLogRepository(config *conf.Configuration, sinkClient client.SinkClient) *AccessLogRepository {
	timeout := defaultEmitTimeout
	if config.CloudWatch.Timeout > 0 {
		timeout = time.Duration(config.CloudWatch.Timeout) * time.Millisecond
	}
	return &AccessLogRepository{sinkClient: sinkClient, timeout: timeout}
}

func (repository *AccessLogRepository) EmitAccess(ctx context.Context, line model.AccessLine) error {
	if line.Timestamp.IsZero() {
		line.Timestamp = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(ctx, repository.timeout)
	defer cancel()
	return repository.sinkClient.PutLine(ctx, line.Timestamp, line.Line())
}
