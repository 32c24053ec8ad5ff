package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/ingest"
)

const extractionBatch = 10

// ExtractContentTask fetches full pages for articles whose feed content was
// too short to analyze, and replaces their content with the extracted text.
type ExtractContentTask struct {
	Task
	articleRepo      database.ArticleRepository
	fetcher          *ingest.Fetcher
	contentExtractor *ingest.ContentExtractor
}

func NewExtractContentTask(articleRepo database.ArticleRepository, fetcher *ingest.Fetcher, contentExtractor *ingest.ContentExtractor) *ExtractContentTask {
	return &ExtractContentTask{
		Task:             NewTask(TaskTypeExtractContent, "short-content"),
		articleRepo:      articleRepo,
		fetcher:          fetcher,
		contentExtractor: contentExtractor,
	}
}

func (t *ExtractContentTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	articles, err := t.articleRepo.GetArticlesForExtraction(extractionBatch)
	if err != nil {
		return fmt.Errorf("failed to get articles for content extraction: %w", err)
	}

	if len(articles) == 0 {
		slog.Debug("No articles need content extraction")
		return nil
	}

	successCount := 0
	errorCount := 0

	for _, article := range articles {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := t.extractForArticle(ctx, article)
		now := time.Now().UTC()

		if err != nil {
			slog.Error("Failed to extract content for article",
				"article", article.ID, "url", article.URL, "error", err)
			errorCount++

			if updErr := t.articleRepo.UpdateExtraction(article.ID, database.ExtractionFailed, "", err.Error(), &now); updErr != nil {
				slog.Error("Failed to update extraction status", "article", article.ID, "error", updErr)
			}
		} else {
			successCount++
		}
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"success", successCount,
		"errors", errorCount)

	return nil
}

func (t *ExtractContentTask) extractForArticle(ctx context.Context, article database.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article has no URL")
	}

	data, err := t.fetcher.Fetch(ctx, article.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch article page: %w", err)
	}

	content, err := t.contentExtractor.Run(data)
	if err != nil {
		return fmt.Errorf("failed to extract content: %w", err)
	}

	now := time.Now().UTC()
	if err := t.articleRepo.UpdateExtraction(article.ID, database.ExtractionSuccess, content, "", &now); err != nil {
		return fmt.Errorf("failed to store extracted content: %w", err)
	}

	return nil
}
