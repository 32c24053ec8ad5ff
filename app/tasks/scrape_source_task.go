package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/ingest"
)

type ScrapeSourceTask struct {
	Task
	Source   database.MediaSource
	pipeline *ingest.Pipeline
}

func NewScrapeSourceTask(source database.MediaSource, pipeline *ingest.Pipeline) *ScrapeSourceTask {
	return &ScrapeSourceTask{
		Task:     NewTask(TaskTypeScrapeSource, source.Name),
		Source:   source,
		pipeline: pipeline,
	}
}

func (t *ScrapeSourceTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result := t.pipeline.ScrapeSource(ctx, t.Source)
	if result.Error != "" {
		return fmt.Errorf("failed to scrape source: %s", result.Error)
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"source", t.Source.Name,
		"duration", t.GetDuration(),
		"found", result.Found,
		"saved", result.Saved)

	return nil
}
