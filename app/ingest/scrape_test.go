package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rkawale/mediawatch/app/categorize"
	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/events"
	"github.com/rkawale/mediawatch/app/notify"
	"github.com/rkawale/mediawatch/app/translate"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>New hospital wing inaugurated in Pune</title>
      <link>https://example.com/news/1</link>
      <description>The health department opened a new wing with improved facilities.</description>
    </item>
    <item>
      <title>Road repairs delayed after monsoon damage</title>
      <link>https://example.com/news/2</link>
      <description>Residents filed complaints over the delay in pothole repairs.</description>
    </item>
    <item>
      <title>School exam results announced</title>
      <link>https://example.com/news/3</link>
      <description>Students across the district received their results today.</description>
    </item>
  </channel>
</rss>`

func newTestPipeline(t *testing.T) (*Pipeline, *database.DB) {
	t.Helper()

	db, err := database.NewMemoryConnection()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := database.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	officerRepo := database.NewOfficerRepository(db)
	pipeline := NewPipeline(PipelineDeps{
		SourceRepo:   database.NewSourceRepository(db),
		ArticleRepo:  database.NewArticleRepository(db),
		AnalysisRepo: database.NewAnalysisRepository(db),
		JobRepo:      database.NewJobRepository(db),
		Fetcher:      NewFetcher(&http.Client{}, "test-agent"),
		Categorizer:  categorize.NewCategorizer(database.NewDepartmentRepository(db)),
		Notifier:     notify.NewEngine(officerRepo, database.NewNotificationRepository(db)),
		Translator:   translate.NewNoopTranslator(),
		Hub:          events.NewHub(),
	})
	return pipeline, db
}

func TestScrapeSourceTwiceAddsNoDuplicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	pipeline, db := newTestPipeline(t)
	sourceRepo := database.NewSourceRepository(db)
	articleRepo := database.NewArticleRepository(db)

	id, err := sourceRepo.UpsertSource(database.MediaSource{
		Name: "Test Feed", Type: "online", Language: "en",
		FeedURL: server.URL, Active: true, FetchInterval: 3600,
	})
	if err != nil {
		t.Fatalf("Failed to seed source: %v", err)
	}
	src, err := sourceRepo.GetSource(id)
	if err != nil || src == nil {
		t.Fatalf("Failed to load source: %v", err)
	}

	first := pipeline.ScrapeSource(context.Background(), *src)
	if first.Error != "" {
		t.Fatalf("First scrape failed: %s", first.Error)
	}
	if first.Found != 3 || first.Saved != 3 {
		t.Errorf("Expected 3 found and 3 saved on first run, got %d/%d", first.Found, first.Saved)
	}

	second := pipeline.ScrapeSource(context.Background(), *src)
	if second.Error != "" {
		t.Fatalf("Second scrape failed: %s", second.Error)
	}
	if second.Saved != 0 {
		t.Errorf("Expected 0 saved on second run over identical items, got %d", second.Saved)
	}

	count, err := articleRepo.GetArticleCount()
	if err != nil {
		t.Fatalf("Failed to count articles: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 articles after two runs, got %d", count)
	}
}

func TestScrapeSourceAnalyzesSynchronously(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	pipeline, db := newTestPipeline(t)
	sourceRepo := database.NewSourceRepository(db)
	articleRepo := database.NewArticleRepository(db)
	analysisRepo := database.NewAnalysisRepository(db)

	id, err := sourceRepo.UpsertSource(database.MediaSource{
		Name: "Sync Feed", Type: "online", Language: "en",
		FeedURL: server.URL + "/sync", Active: true, FetchInterval: 3600,
	})
	if err != nil {
		t.Fatalf("Failed to seed source: %v", err)
	}
	src, _ := sourceRepo.GetSource(id)

	result := pipeline.ScrapeSource(context.Background(), *src)
	if result.Error != "" {
		t.Fatalf("Scrape failed: %s", result.Error)
	}

	analyzed, err := articleRepo.GetArticlesByStatus(database.StatusAnalyzed, 10)
	if err != nil {
		t.Fatalf("Failed to load analyzed articles: %v", err)
	}
	if len(analyzed) != 3 {
		t.Fatalf("Expected 3 analyzed articles, got %d", len(analyzed))
	}

	for _, article := range analyzed {
		record, err := analysisRepo.GetAnalysisByArticle(article.ID)
		if err != nil {
			t.Fatalf("Failed to load analysis: %v", err)
		}
		if record == nil {
			t.Fatalf("Expected an analysis record for %s", article.Title)
		}
		if record.BiasStrategy != "baseline" {
			t.Errorf("Expected baseline strategy on the ingestion path, got %s", record.BiasStrategy)
		}
		if record.BiasOverall < 0 || record.BiasOverall > 100 {
			t.Errorf("Bias overall %f out of [0, 100]", record.BiasOverall)
		}
	}
}
