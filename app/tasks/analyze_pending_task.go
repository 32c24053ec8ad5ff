package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rkawale/mediawatch/app/ingest"
)

type AnalyzePendingTask struct {
	Task
	BatchSize int
	pipeline  *ingest.Pipeline
}

func NewAnalyzePendingTask(batchSize int, pipeline *ingest.Pipeline) *AnalyzePendingTask {
	return &AnalyzePendingTask{
		Task:      NewTask(TaskTypeAnalyzePending, "pending"),
		BatchSize: batchSize,
		pipeline:  pipeline,
	}
}

func (t *AnalyzePendingTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	analyzed, err := t.pipeline.AnalyzePending(ctx, t.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to analyze pending articles: %w", err)
	}

	if analyzed > 0 {
		slog.Info("Task completed",
			"type", t.GetType(),
			"duration", t.GetDuration(),
			"analyzed", analyzed)
	}

	return nil
}
