package database

import (
	"fmt"
	"testing"
	"time"
)

// Each test gets its own named in-memory database so counts never leak
// between tests.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db := &DB{DB: sqlDB, Ephemeral: true}

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertArticleDeduplicatesByURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	article := &Article{
		Title:    "Bridge inaugurated",
		Content:  "The new bridge opened on Monday.",
		Language: "en",
		URL:      "https://example.com/news/bridge",
	}

	inserted, err := repo.InsertArticle(article)
	if err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if !inserted {
		t.Error("Expected first insert to write a row")
	}

	// Same URL again, as a second ingestion run would produce
	duplicate := &Article{
		Title:    "Bridge inaugurated (repost)",
		Content:  "Different content, same URL.",
		Language: "en",
		URL:      "https://example.com/news/bridge",
	}
	inserted, err = repo.InsertArticle(duplicate)
	if err != nil {
		t.Fatalf("Second insert failed: %v", err)
	}
	if inserted {
		t.Error("Expected second insert to be a silent no-op")
	}

	count, err := repo.GetArticleCount()
	if err != nil {
		t.Fatalf("Failed to count articles: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 article after duplicate insert, got %d", count)
	}

	// The surviving row is the first one
	stored, err := repo.GetArticleByURL("https://example.com/news/bridge")
	if err != nil {
		t.Fatalf("Failed to load article: %v", err)
	}
	if stored == nil || stored.Title != "Bridge inaugurated" {
		t.Errorf("Expected original article to survive, got %+v", stored)
	}
}

func TestInsertArticleDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	article := &Article{Title: "Untitled", URL: "https://example.com/a"}
	if _, err := repo.InsertArticle(article); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if article.ID == "" {
		t.Error("Expected an ID to be assigned")
	}

	stored, err := repo.GetArticle(article.ID)
	if err != nil {
		t.Fatalf("Failed to load article: %v", err)
	}
	if stored.Status != StatusPending {
		t.Errorf("Expected default status pending, got %s", stored.Status)
	}
	if stored.ExtractionStatus != ExtractionPending {
		t.Errorf("Expected default extraction status pending, got %s", stored.ExtractionStatus)
	}
}

func TestListArticlesFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	for i, status := range []string{StatusPending, StatusAnalyzed, StatusAnalyzed} {
		article := &Article{
			Title:    fmt.Sprintf("Article %d", i),
			URL:      fmt.Sprintf("https://example.com/%d", i),
			Language: "en",
			Region:   "south",
			Status:   status,
		}
		if _, err := repo.InsertArticle(article); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	analyzed, err := repo.ListArticles(ArticleFilter{Status: StatusAnalyzed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(analyzed) != 2 {
		t.Errorf("Expected 2 analyzed articles, got %d", len(analyzed))
	}

	none, err := repo.ListArticles(ArticleFilter{Status: StatusAnalyzed, Region: "north"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected 0 articles for region north, got %d", len(none))
	}
}

func TestUpsertAnalysisReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	articleRepo := NewArticleRepository(db)
	analysisRepo := NewAnalysisRepository(db)

	article := &Article{Title: "Test", URL: "https://example.com/x"}
	if _, err := articleRepo.InsertArticle(article); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	first := &AnalysisRecord{
		ArticleID:          article.ID,
		SentimentScore:     -0.4,
		SentimentLabel:     "negative",
		BiasOverall:        30,
		BiasClassification: "Low Bias",
		BiasStrategy:       "baseline",
		Topics:             []string{"Health"},
	}
	if err := analysisRepo.UpsertAnalysis(first); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	second := &AnalysisRecord{
		ArticleID:          article.ID,
		SentimentScore:     0.1,
		SentimentLabel:     "neutral",
		BiasOverall:        50,
		BiasClassification: "Medium Bias",
		BiasStrategy:       "refined",
		Topics:             []string{"Health", "Politics"},
	}
	if err := analysisRepo.UpsertAnalysis(second); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	count, err := analysisRepo.GetAnalysisCount()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 analysis record after re-analysis, got %d", count)
	}

	stored, err := analysisRepo.GetAnalysisByArticle(article.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored.BiasStrategy != "refined" {
		t.Errorf("Expected strategy refined after upsert, got %s", stored.BiasStrategy)
	}
	if stored.BiasOverall != 50 {
		t.Errorf("Expected bias overall 50 after upsert, got %f", stored.BiasOverall)
	}
	if len(stored.Topics) != 2 {
		t.Errorf("Expected 2 topics after upsert, got %v", stored.Topics)
	}
}

func TestDepartmentsSeeded(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)

	departments, err := repo.GetDepartments()
	if err != nil {
		t.Fatalf("Failed to load departments: %v", err)
	}
	if len(departments) < 8 {
		t.Errorf("Expected at least 8 seeded departments, got %d", len(departments))
	}

	pwd, err := repo.GetDepartment("dept-pwd")
	if err != nil {
		t.Fatalf("Failed to load department: %v", err)
	}
	if pwd == nil {
		t.Fatal("Expected dept-pwd to be seeded")
	}
	if len(pwd.Keywords) == 0 {
		t.Error("Expected seeded department to carry keywords")
	}
}

func TestUpsertSourceKeyedByFeedURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewSourceRepository(db)

	src := MediaSource{
		Name:          "Test Source",
		Type:          "online",
		Language:      "en",
		FeedURL:       "https://example.com/feed.xml",
		Active:        true,
		FetchInterval: 3600,
	}

	firstID, err := repo.UpsertSource(src)
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	src.Name = "Renamed Source"
	secondID, err := repo.UpsertSource(src)
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}
	if firstID != secondID {
		t.Errorf("Expected upsert to reuse source id, got %s and %s", firstID, secondID)
	}

	count, err := repo.GetSourceCount()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 source after re-seed, got %d", count)
	}
}

func TestGetPreferenceMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfficerRepository(db)

	pref, err := repo.GetPreference("no-such-officer")
	if err != nil {
		t.Fatalf("Expected missing preference to not be an error, got %v", err)
	}
	if pref != nil {
		t.Errorf("Expected nil preference, got %+v", pref)
	}
}

func TestJobLifecycle(t *testing.T) {
	db := newTestDB(t)
	sourceRepo := NewSourceRepository(db)
	jobRepo := NewJobRepository(db)

	id, err := sourceRepo.UpsertSource(MediaSource{
		Name: "Job Source", FeedURL: "https://example.com/jobs.xml", Active: true, FetchInterval: 3600,
	})
	if err != nil {
		t.Fatalf("Source upsert failed: %v", err)
	}

	job := &ScrapingJob{SourceID: id, JobType: "rss"}
	if err := jobRepo.CreateJob(job); err != nil {
		t.Fatalf("Create job failed: %v", err)
	}
	if job.ID == "" {
		t.Error("Expected job ID to be assigned")
	}

	if err := jobRepo.CompleteJob(job.ID, 10, 4); err != nil {
		t.Fatalf("Complete job failed: %v", err)
	}

	failed := &ScrapingJob{SourceID: id, JobType: "rss"}
	if err := jobRepo.CreateJob(failed); err != nil {
		t.Fatalf("Create job failed: %v", err)
	}
	if err := jobRepo.FailJob(failed.ID, "connection refused"); err != nil {
		t.Fatalf("Fail job failed: %v", err)
	}
}

func TestUpdateExtractionBookkeeping(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)

	article := &Article{Title: "Short", Content: "tiny", URL: "https://example.com/short"}
	if _, err := repo.InsertArticle(article); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	due, err := repo.GetArticlesForExtraction(10)
	if err != nil {
		t.Fatalf("Extraction query failed: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("Expected 1 article due for extraction, got %d", len(due))
	}

	now := time.Now().UTC()
	if err := repo.UpdateExtraction(article.ID, ExtractionSuccess, "Full extracted body of the article.", "", &now); err != nil {
		t.Fatalf("Update extraction failed: %v", err)
	}

	stored, err := repo.GetArticle(article.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored.ExtractionStatus != ExtractionSuccess {
		t.Errorf("Expected extraction status success, got %s", stored.ExtractionStatus)
	}
	if stored.ExtractionAttempts != 1 {
		t.Errorf("Expected 1 extraction attempt, got %d", stored.ExtractionAttempts)
	}
	if stored.Content != "Full extracted body of the article." {
		t.Errorf("Expected content replaced, got %q", stored.Content)
	}

	due, err = repo.GetArticlesForExtraction(10)
	if err != nil {
		t.Fatalf("Extraction query failed: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("Expected no articles due after extraction, got %d", len(due))
	}
}
