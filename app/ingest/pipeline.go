package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/rkawale/mediawatch/app/analysis"
	"github.com/rkawale/mediawatch/app/bias"
	"github.com/rkawale/mediawatch/app/categorize"
	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/events"
	"github.com/rkawale/mediawatch/app/notify"
	"github.com/rkawale/mediawatch/app/translate"
)

// At most this many items are taken from a single feed fetch.
const maxItemsPerFetch = 10

// Concurrent source fetches during a scrape-all run.
const scrapeConcurrency = 5

const defaultAnalyzeBatch = 10
const maxAnalyzeBatch = 20

// SourceResult reports one source's outcome within a scrape run.
type SourceResult struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	Found      int    `json:"found"`
	Saved      int    `json:"saved"`
	Error      string `json:"error,omitempty"`
}

// ReanalyzeResult carries the progress counts of a bias backfill run.
type ReanalyzeResult struct {
	Processed int `json:"processed"`
	Low       int `json:"low"`
	Medium    int `json:"medium"`
	High      int `json:"high"`
	Failed    int `json:"failed"`
}

// Pipeline drives ingestion end to end: fetch, parse, dedup, persist,
// extract, score, categorize, decide notifications. Each article is processed
// serially within its source; sources fan out with bounded concurrency.
type Pipeline struct {
	sourceRepo   database.SourceRepository
	articleRepo  database.ArticleRepository
	analysisRepo database.AnalysisRepository
	jobRepo      database.JobRepository

	fetcher    *Fetcher
	feedParser *gofeed.Parser

	extractor       *analysis.Extractor
	strictExtractor *analysis.Extractor
	baseline        bias.Scorer
	refined         bias.Scorer
	batchRefined    bias.Scorer

	categorizer *categorize.Categorizer
	notifier    *notify.Engine
	translator  translate.Translator
	hub         *events.Hub
}

type PipelineDeps struct {
	SourceRepo   database.SourceRepository
	ArticleRepo  database.ArticleRepository
	AnalysisRepo database.AnalysisRepository
	JobRepo      database.JobRepository
	Fetcher      *Fetcher
	Categorizer  *categorize.Categorizer
	Notifier     *notify.Engine
	Translator   translate.Translator
	Hub          *events.Hub
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		sourceRepo:      deps.SourceRepo,
		articleRepo:     deps.ArticleRepo,
		analysisRepo:    deps.AnalysisRepo,
		jobRepo:         deps.JobRepo,
		fetcher:         deps.Fetcher,
		feedParser:      gofeed.NewParser(),
		extractor:       analysis.NewExtractor(),
		strictExtractor: analysis.NewExtractorWithPolicy(analysis.LabelPolicyStrict),
		baseline:        bias.NewBaselineScorer(),
		refined:         bias.NewRefinedScorer(),
		batchRefined:    bias.NewBatchRefinedScorer(),
		categorizer:     deps.Categorizer,
		notifier:        deps.Notifier,
		translator:      deps.Translator,
		hub:             deps.Hub,
	}
}

// ScrapeAll scrapes one source when sourceID is given, otherwise every active
// source with a feed, ordered by language. One source's failure never aborts
// the others.
func (p *Pipeline) ScrapeAll(ctx context.Context, sourceID string) ([]SourceResult, error) {
	var sources []database.MediaSource

	if sourceID != "" {
		src, err := p.sourceRepo.GetSource(sourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load source: %w", err)
		}
		if src == nil {
			return nil, fmt.Errorf("source %s not found", sourceID)
		}
		sources = []database.MediaSource{*src}
	} else {
		var err error
		sources, err = p.sourceRepo.GetActiveSourcesWithFeeds()
		if err != nil {
			return nil, fmt.Errorf("failed to load sources: %w", err)
		}
	}

	results := make([]SourceResult, len(sources))
	sem := make(chan struct{}, scrapeConcurrency)
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src database.MediaSource) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = p.ScrapeSource(ctx, src)
		}(i, src)
	}
	wg.Wait()

	return results, nil
}

// ScrapeSource runs one source end to end under a job record. Errors finalize
// the job as failed and are reported in the result, not returned; the caller
// always gets a usable per-source summary.
func (p *Pipeline) ScrapeSource(ctx context.Context, src database.MediaSource) SourceResult {
	result := SourceResult{SourceID: src.ID, SourceName: src.Name}

	job := &database.ScrapingJob{SourceID: src.ID, JobType: "rss"}
	if err := p.jobRepo.CreateJob(job); err != nil {
		slog.Error("Failed to create scraping job", "source", src.Name, "error", err)
		result.Error = err.Error()
		return result
	}

	found, saved, err := p.scrapeFeed(ctx, src)
	result.Found = found
	result.Saved = saved

	if err != nil {
		slog.Error("Source scrape failed", "source", src.Name, "error", err)
		result.Error = err.Error()
		if jobErr := p.jobRepo.FailJob(job.ID, err.Error()); jobErr != nil {
			slog.Error("Failed to finalize job", "source", src.Name, "error", jobErr)
		}
		return result
	}

	if err := p.jobRepo.CompleteJob(job.ID, found, saved); err != nil {
		slog.Error("Failed to finalize job", "source", src.Name, "error", err)
	}

	nextFetch := time.Now().UTC().Add(time.Duration(src.FetchInterval) * time.Second)
	if err := p.sourceRepo.UpdateFetchStatus(src.ID, nextFetch); err != nil {
		slog.Warn("Failed to update source fetch status", "source", src.Name, "error", err)
	}

	slog.Info("Source scraped", "source", src.Name, "found", found, "saved", saved)
	return result
}

func (p *Pipeline) scrapeFeed(ctx context.Context, src database.MediaSource) (found, saved int, err error) {
	data, err := p.fetcher.Fetch(ctx, src.FeedURL)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := p.feedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > maxItemsPerFetch {
		items = items[:maxItemsPerFetch]
	}

	for _, item := range items {
		if item == nil || item.Link == "" {
			continue
		}
		found++

		inserted, err := p.processItem(ctx, src, item)
		if err != nil {
			// Per-article isolation: log and move to the next item.
			slog.Warn("Failed to process feed item", "source", src.Name, "link", item.Link, "error", err)
			continue
		}
		if inserted {
			saved++
		}
	}

	return found, saved, nil
}

// processItem persists one feed item and runs the synchronous ingestion-time
// analysis. Returns false when the URL already exists (silent skip).
func (p *Pipeline) processItem(ctx context.Context, src database.MediaSource, item *gofeed.Item) (bool, error) {
	existing, err := p.articleRepo.GetArticleByURL(item.Link)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	raw := item.Content // content:encoded
	if raw == "" {
		raw = item.Description
	}
	content := CleanContent(raw, item.Title)

	var publishedAt *time.Time
	if item.PublishedParsed != nil {
		publishedAt = item.PublishedParsed
	} else {
		now := time.Now().UTC()
		publishedAt = &now
	}

	article := &database.Article{
		SourceID:    src.ID,
		Title:       strings.TrimSpace(item.Title),
		Content:     content,
		Summary:     makeSummary(item.Title, content),
		Language:    analysis.DetectLanguage(item.Title + " " + content),
		URL:         item.Link,
		Region:      src.Region,
		Status:      database.StatusProcessing,
		PublishedAt: publishedAt,
	}

	inserted, err := p.articleRepo.InsertArticle(article)
	if err != nil {
		return false, fmt.Errorf("failed to insert article: %w", err)
	}
	if !inserted {
		// Lost a concurrent-ingestion race for the same URL; not an error.
		return false, nil
	}

	p.hub.Publish(events.ArticleCreated, article.ID)

	// Ingestion hot path scores with the baseline strategy.
	if err := p.analyzeArticle(article, p.extractor, p.baseline); err != nil {
		return true, fmt.Errorf("failed to analyze article: %w", err)
	}

	if err := p.categorizeAndNotify(article); err != nil {
		slog.Warn("Post-analysis steps failed", "article", article.ID, "error", err)
	}

	return true, nil
}

// analyzeArticle runs extractor+scorer, persists the analysis record and
// marks the article analyzed.
func (p *Pipeline) analyzeArticle(article *database.Article, extractor *analysis.Extractor, scorer bias.Scorer) error {
	text := article.Content
	if article.TranslatedContent != "" {
		text = article.TranslatedContent
	}

	extracted := extractor.Run(article.Title, text)
	scored := scorer.Score(article.Title, text)

	record := buildRecord(article.ID, extracted, scored)
	if err := p.analysisRepo.UpsertAnalysis(record); err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}

	if err := p.articleRepo.UpdateArticleStatus(article.ID, database.StatusAnalyzed); err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}
	article.Status = database.StatusAnalyzed

	p.hub.Publish(events.ArticleAnalyzed, article.ID)
	return nil
}

func (p *Pipeline) categorizeAndNotify(article *database.Article) error {
	assignment, err := p.categorizer.Run(article.Title, article.Content)
	if err != nil {
		return fmt.Errorf("failed to categorize: %w", err)
	}
	if assignment.PrimaryDepartmentID != "" {
		if err := p.articleRepo.UpdateDepartments(article.ID, assignment.PrimaryDepartmentID, assignment.Related); err != nil {
			return fmt.Errorf("failed to persist departments: %w", err)
		}
		article.PrimaryDepartmentID = assignment.PrimaryDepartmentID
		article.RelatedDepartments = assignment.Related
	}

	record, err := p.analysisRepo.GetAnalysisByArticle(article.ID)
	if err != nil || record == nil {
		return fmt.Errorf("failed to load analysis for notification: %w", err)
	}

	if _, err := p.notifier.Run(article, record, "auto"); err != nil {
		return fmt.Errorf("failed to evaluate notifications: %w", err)
	}
	return nil
}

// AnalyzePending sweeps pending and processing articles: translates
// non-English content, analyzes, and marks them analyzed. This is the
// explicit analyze action for manually entered articles.
func (p *Pipeline) AnalyzePending(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultAnalyzeBatch
	}
	if batchSize > maxAnalyzeBatch {
		batchSize = maxAnalyzeBatch
	}

	articles, err := p.articleRepo.GetArticlesByStatus(database.StatusPending, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending articles: %w", err)
	}
	if len(articles) < batchSize {
		processing, err := p.articleRepo.GetArticlesByStatus(database.StatusProcessing, batchSize-len(articles))
		if err != nil {
			return 0, fmt.Errorf("failed to load processing articles: %w", err)
		}
		articles = append(articles, processing...)
	}

	analyzed := 0
	for i := range articles {
		article := &articles[i]

		if article.Language != "en" && article.TranslatedContent == "" {
			translated := p.translator.Translate(ctx, article.Content, article.Language)
			if err := p.articleRepo.UpdateTranslation(article.ID, translated); err != nil {
				slog.Warn("Failed to persist translation", "article", article.ID, "error", err)
			} else {
				article.TranslatedContent = translated
			}
		}

		if err := p.analyzeArticle(article, p.extractor, p.refined); err != nil {
			slog.Warn("Failed to analyze pending article", "article", article.ID, "error", err)
			continue
		}
		if err := p.categorizeAndNotify(article); err != nil {
			slog.Warn("Post-analysis steps failed", "article", article.ID, "error", err)
		}
		analyzed++
	}

	return analyzed, nil
}

// DetectBias runs the interactive request-time analysis: strict sentiment
// labels, refined bias scoring. With an article id it persists the record and
// marks the article analyzed; without one it is a dry run.
func (p *Pipeline) DetectBias(title, content, articleID string) (analysis.Result, bias.Result, error) {
	extracted := p.strictExtractor.Run(title, content)
	scored := p.refined.Score(title, content)

	if articleID == "" {
		return extracted, scored, nil
	}

	article, err := p.articleRepo.GetArticle(articleID)
	if err != nil {
		return extracted, scored, fmt.Errorf("failed to load article: %w", err)
	}
	if article == nil {
		return extracted, scored, fmt.Errorf("article %s not found", articleID)
	}

	record := buildRecord(articleID, extracted, scored)
	if err := p.analysisRepo.UpsertAnalysis(record); err != nil {
		return extracted, scored, fmt.Errorf("failed to persist analysis: %w", err)
	}
	if err := p.articleRepo.UpdateArticleStatus(articleID, database.StatusAnalyzed); err != nil {
		return extracted, scored, fmt.Errorf("failed to update article status: %w", err)
	}

	p.hub.Publish(events.AnalysisUpdated, articleID)
	return extracted, scored, nil
}

// CategorizeArticle assigns departments for one article and persists the
// assignment. Idempotent for fixed keyword sets and text.
func (p *Pipeline) CategorizeArticle(articleID, title, content string) (*categorize.Assignment, error) {
	assignment, err := p.categorizer.Run(title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to categorize: %w", err)
	}

	if err := p.articleRepo.UpdateDepartments(articleID, assignment.PrimaryDepartmentID, assignment.Related); err != nil {
		return nil, fmt.Errorf("failed to persist departments: %w", err)
	}
	return assignment, nil
}

// Notify re-evaluates the decision engine for one article on demand.
func (p *Pipeline) Notify(articleID, notifType string) (int, error) {
	article, err := p.articleRepo.GetArticle(articleID)
	if err != nil {
		return 0, fmt.Errorf("failed to load article: %w", err)
	}
	if article == nil {
		return 0, fmt.Errorf("article %s not found", articleID)
	}

	record, err := p.analysisRepo.GetAnalysisByArticle(articleID)
	if err != nil {
		return 0, fmt.Errorf("failed to load analysis: %w", err)
	}
	if record == nil {
		return 0, fmt.Errorf("article %s has no analysis record", articleID)
	}

	return p.notifier.Run(article, record, notifType)
}

// ReanalyzeAllBias re-runs bias scoring over every analyzed article with the
// batch refined scorer. Per-item failures are counted, never fatal.
func (p *Pipeline) ReanalyzeAllBias(ctx context.Context) (ReanalyzeResult, error) {
	var result ReanalyzeResult

	articles, err := p.articleRepo.GetArticlesByStatus(database.StatusAnalyzed, 1000)
	if err != nil {
		return result, fmt.Errorf("failed to load analyzed articles: %w", err)
	}

	for i := range articles {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		article := &articles[i]
		if err := p.rescoreBias(article); err != nil {
			slog.Warn("Failed to re-analyze article", "article", article.ID, "error", err)
			result.Failed++
			continue
		}

		record, err := p.analysisRepo.GetAnalysisByArticle(article.ID)
		if err != nil || record == nil {
			result.Failed++
			continue
		}
		switch record.BiasClassification {
		case bias.ClassHigh:
			result.High++
		case bias.ClassMedium:
			result.Medium++
		default:
			result.Low++
		}
		result.Processed++
	}

	return result, nil
}

func (p *Pipeline) rescoreBias(article *database.Article) error {
	text := article.Content
	if article.TranslatedContent != "" {
		text = article.TranslatedContent
	}

	record, err := p.analysisRepo.GetAnalysisByArticle(article.ID)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	scored := p.batchRefined.Score(article.Title, text)

	if record == nil {
		// Article was marked analyzed but lost its record; rebuild fully.
		record = buildRecord(article.ID, p.extractor.Run(article.Title, text), scored)
	} else {
		applyBias(record, scored)
	}

	if err := p.analysisRepo.UpsertAnalysis(record); err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}

	p.hub.Publish(events.AnalysisUpdated, article.ID)
	return nil
}

// makeSummary derives a short summary; absent or tiny content degrades to a
// title-templated one rather than failing.
func makeSummary(title, content string) string {
	content = strings.TrimSpace(content)
	if len(content) < 20 {
		return fmt.Sprintf("News update: %s.", strings.TrimSuffix(strings.TrimSpace(title), "."))
	}
	return Truncate(content, 200)
}

// buildRecord maps extractor and scorer outputs onto a persistable record.
func buildRecord(articleID string, extracted analysis.Result, scored bias.Result) *database.AnalysisRecord {
	record := &database.AnalysisRecord{
		ArticleID:      articleID,
		SentimentScore: extracted.Score,
		SentimentLabel: extracted.Label,
		Confidence:     extracted.Confidence,
		Topics:         extracted.Topics,
		Keywords:       extracted.Keywords,
		Entities:       extracted.Entities,
		Language:       extracted.Language,
	}
	applyBias(record, scored)
	return record
}

func applyBias(record *database.AnalysisRecord, scored bias.Result) {
	normalized := scored.Normalized()
	detail := make(map[string]database.AxisDetail, 6)
	for _, a := range scored.Axes() {
		detail[a.Name] = database.AxisDetail{
			Score:       a.Axis.Score,
			Evidence:    a.Axis.Evidence,
			Explanation: a.Axis.Explanation,
			Indicators:  a.Axis.Indicators,
		}
	}

	record.BiasOverall = scored.Overall
	record.BiasClassification = scored.Classification
	record.BiasStrategy = scored.Strategy
	record.Bias = database.BiasIndicators{
		Political:         normalized["political"],
		Regional:          normalized["regional"],
		Sentiment:         normalized["sentiment"],
		SourceReliability: normalized["source_reliability"],
		Representation:    normalized["representation"],
		Language:          normalized["language"],
		Detail:            detail,
	}
}
