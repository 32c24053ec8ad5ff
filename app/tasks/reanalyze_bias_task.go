package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rkawale/mediawatch/app/ingest"
)

type ReanalyzeBiasTask struct {
	Task
	pipeline *ingest.Pipeline
}

func NewReanalyzeBiasTask(pipeline *ingest.Pipeline) *ReanalyzeBiasTask {
	return &ReanalyzeBiasTask{
		Task:     NewTask(TaskTypeReanalyzeBias, "all"),
		pipeline: pipeline,
	}
}

func (t *ReanalyzeBiasTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result, err := t.pipeline.ReanalyzeAllBias(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-analyze bias: %w", err)
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"processed", result.Processed,
		"low", result.Low,
		"medium", result.Medium,
		"high", result.High,
		"failed", result.Failed)

	return nil
}
