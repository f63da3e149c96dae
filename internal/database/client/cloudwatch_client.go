package client

import (
	"context"
	"errors"
	"time"

	conf "apitracker/config"
	"apitracker/internal/core"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"go.uber.org/zap"
)

// SinkClient is a minimal interface to allow mocking in tests.
type SinkClient interface {
	PutLine(ctx context.Context, ts time.Time, message string) error
	Close() error
}

// CloudWatchClient implements SinkClient on top of CloudWatch Logs.
type CloudWatchClient struct {
	client    *cloudwatchlogs.Client
	logGroup  string
	logStream string
}

// NewSinkClient 建立外部 log sink；未設定 AWS 憑證時退回 Noop（鏡射停用，不是錯誤）
func NewSinkClient(logger *zap.Logger, config *conf.Configuration) (SinkClient, func(), error) {
	if config.CloudWatch.AccessKeyID == "" || config.CloudWatch.SecretAccessKey == "" {
		logger.Info("cloudwatch mirroring disabled (no credentials configured)")
		noop := &NoopSinkClient{}
		return noop, func() {}, nil
	}

	region := config.CloudWatch.Region
	if region == "" {
		region = core.DefaultAWSRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.CloudWatch.AccessKeyID,
			config.CloudWatch.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		logger.Error("failed to load AWS config", zap.Error(err))
		return nil, nil, err
	}

	options := func(o *cloudwatchlogs.Options) {
		if config.CloudWatch.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.CloudWatch.Endpoint)
		}
	}

	cwClient := &CloudWatchClient{
		client:    cloudwatchlogs.NewFromConfig(awsCfg, options),
		logGroup:  config.CloudWatch.LogGroup,
		logStream: config.CloudWatch.LogStream,
	}
	if cwClient.logGroup == "" {
		cwClient.logGroup = core.DefaultLogGroup
	}
	if cwClient.logStream == "" {
		cwClient.logStream = core.DefaultLogStream
	}

	// group/stream 可能已存在，視為正常
	if err := cwClient.ensureLogTargets(context.Background()); err != nil {
		logger.Warn("cloudwatch initialization warning", zap.Error(err))
	} else {
		logger.Info("Connected to CloudWatch Logs",
			zap.String("log_group", cwClient.logGroup),
			zap.String("log_stream", cwClient.logStream),
		)
	}

	return cwClient, func() {}, nil
}

func (c *CloudWatchClient) ensureLogTargets(ctx context.Context) error {
	var exists *types.ResourceAlreadyExistsException

	_, err := c.client.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(c.logGroup),
	})
	if err != nil && !errors.As(err, &exists) {
		return err
	}

	_, err = c.client.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(c.logGroup),
		LogStreamName: aws.String(c.logStream),
	})
	if err != nil && !errors.As(err, &exists) {
		return err
	}
	return nil
}

// PutLine sends one formatted log line to the configured stream.
func (c *CloudWatchClient) PutLine(ctx context.Context, ts time.Time, message string) error {
	_, err := c.client.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
		LogGroupName:  aws.String(c.logGroup),
		LogStreamName: aws.String(c.logStream),
		LogEvents: []types.InputLogEvent{
			{
				Timestamp: aws.Int64(ts.UnixMilli()),
				Message:   aws.String(message),
			},
		},
	})
	return err
}

func (c *CloudWatchClient) Close() error { return nil }

// --------------------
// Noop client (disabled mode)
// --------------------

type NoopSinkClient struct{}

func (n *NoopSinkClient) PutLine(ctx context.Context, ts time.Time, message string) error {
	return nil
}
func (n *NoopSinkClient) Close() error { return nil }
