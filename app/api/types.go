package api

import (
	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/events"
	"github.com/rkawale/mediawatch/app/ingest"
	"github.com/rkawale/mediawatch/app/tasks"
)

type Handler struct {
	sourceRepo   database.SourceRepository
	articleRepo  database.ArticleRepository
	analysisRepo database.AnalysisRepository
	notifRepo    database.NotificationRepository
	pipeline     *ingest.Pipeline
	scheduler    tasks.TaskSchedulerInterface
	hub          *events.Hub
}

type scrapeRequest struct {
	SourceID string `json:"source_id"`
}

type analyzePendingRequest struct {
	BatchSize int `json:"batch_size"`
}

type detectBiasRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ArticleID string `json:"article_id"`
}

type categorizeRequest struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type notifyRequest struct {
	ArticleID string `json:"article_id"`
	Type      string `json:"type"`
}
