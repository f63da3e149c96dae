package repository

import (
	"context"
	"testing"
	"time"

	conf "apitracker/config"
	"apitracker/internal/database/cloudwatch/model"
)

type recordingSink struct {
	timestamp time.Time
	message   string
	deadline  bool
}

func (s *recordingSink) PutLine(ctx context.Context, timestamp time.Time, message string) error {
	s.timestamp = timestamp
	s.message = message
	_, s.deadline = ctx.Deadline()
	return nil
}

func (s *recordingSink) Close() error { return nil }

func TestEmitAccessAppliesTimeout(t *testing.T) {
	sink := &recordingSink{}
	repo := NewAccessLogRepository(&conf.Configuration{}, sink)

	err := repo.EmitAccess(context.Background(), model.AccessLine{
		Method:     "GET",
		Endpoint:   "/api/users",
		StatusCode: 200,
		LatencyMs:  1.5,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if !sink.deadline {
		t.Error("expected a deadline on the sink context")
	}
	if sink.message != "GET /api/users - 200 - 1.50ms" {
		t.Errorf("unexpected line: %q", sink.message)
	}
	if sink.timestamp.IsZero() {
		t.Error("expected zero timestamp to be defaulted")
	}
}

func TestEmitAccessHonorsConfiguredTimeout(t *testing.T) {
	configuration := &conf.Configuration{}
	configuration.CloudWatch.Timeout = 250

	repo := NewAccessLogRepository(configuration, &recordingSink{})
	if repo.timeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms timeout, got %v", repo.timeout)
	}
}
