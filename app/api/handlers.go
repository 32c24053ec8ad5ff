package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/events"
	"github.com/rkawale/mediawatch/app/ingest"
	"github.com/rkawale/mediawatch/app/tasks"
)

func NewHandler(sourceRepo database.SourceRepository, articleRepo database.ArticleRepository,
	analysisRepo database.AnalysisRepository, notifRepo database.NotificationRepository,
	pipeline *ingest.Pipeline, scheduler tasks.TaskSchedulerInterface, hub *events.Hub) *Handler {
	return &Handler{
		sourceRepo:   sourceRepo,
		articleRepo:  articleRepo,
		analysisRepo: analysisRepo,
		notifRepo:    notifRepo,
		pipeline:     pipeline,
		scheduler:    scheduler,
		hub:          hub,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		health["sources"] = sourceCount
	}
	if articleCount, err := h.articleRepo.GetArticleCount(); err == nil {
		health["articles"] = articleCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		stats["sources"] = sourceCount
	}
	if articleCount, err := h.articleRepo.GetArticleCount(); err == nil {
		stats["articles"] = articleCount
	}
	if analysisCount, err := h.analysisRepo.GetAnalysisCount(); err == nil {
		stats["analyses"] = analysisCount
	}
	if byClass, err := h.analysisRepo.CountByClassification(); err == nil {
		stats["bias_classifications"] = byClass
	}

	c.JSON(http.StatusOK, stats)
}

// APIScrape triggers a scrape run. With a source_id only that source is
// scraped; otherwise all active sources. Runs synchronously and returns the
// per-source results.
func (h *Handler) APIScrape(c *gin.Context) {
	var req scrapeRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	results, err := h.pipeline.ScrapeAll(c.Request.Context(), req.SourceID)
	if err != nil {
		slog.Error("Scrape run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	found, saved := 0, 0
	for _, r := range results {
		found += r.Found
		saved += r.Saved
	}

	c.JSON(http.StatusOK, gin.H{
		"sources": results,
		"found":   found,
		"saved":   saved,
	})
}

func (h *Handler) APIAnalyzePending(c *gin.Context) {
	var req analyzePendingRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	analyzed, err := h.pipeline.AnalyzePending(c.Request.Context(), req.BatchSize)
	if err != nil {
		slog.Error("Pending analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyzed": analyzed})
}

func (h *Handler) APIDetectBias(c *gin.Context) {
	var req detectBiasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title or content is required"})
		return
	}

	extracted, scored, err := h.pipeline.DetectBias(req.Title, req.Content, req.ArticleID)
	if err != nil {
		slog.Error("Bias detection failed", "article", req.ArticleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sentiment": extracted,
		"bias":      scored,
		"persisted": req.ArticleID != "",
	})
}

func (h *Handler) APICategorize(c *gin.Context) {
	var req categorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ArticleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article_id is required"})
		return
	}

	title, content := req.Title, req.Content
	if title == "" && content == "" {
		article, err := h.articleRepo.GetArticle(req.ArticleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if article == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		title, content = article.Title, article.Content
	}

	assignment, err := h.pipeline.CategorizeArticle(req.ArticleID, title, content)
	if err != nil {
		slog.Error("Categorization failed", "article", req.ArticleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"primary_department": assignment.PrimaryDepartmentID,
		"related":            assignment.Related,
		"matches":            assignment.Matches,
	})
}

func (h *Handler) APIReanalyzeBias(c *gin.Context) {
	result, err := h.pipeline.ReanalyzeAllBias(c.Request.Context())
	if err != nil {
		slog.Error("Bias re-analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) APINotify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ArticleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article_id is required"})
		return
	}
	if req.Type == "" {
		req.Type = "manual"
	}

	notified, err := h.pipeline.Notify(req.ArticleID, req.Type)
	if err != nil {
		slog.Error("Notification run failed", "article", req.ArticleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notified": notified})
}

func (h *Handler) APIListArticles(c *gin.Context) {
	filter := database.ArticleFilter{
		Status:   c.Query("status"),
		SourceID: c.Query("source_id"),
		Language: c.Query("language"),
		Region:   c.Query("region"),
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		filter.Limit = n
	}

	articles, err := h.articleRepo.ListArticles(filter)
	if err != nil {
		slog.Error("Database error", "operation", "list_articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

func (h *Handler) APIGetArticle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing article id parameter"})
		return
	}

	article, err := h.articleRepo.GetArticle(id)
	if err != nil {
		slog.Error("Database error", "operation", "get_article", "article", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	response := gin.H{"article": article}

	if analysis, err := h.analysisRepo.GetAnalysisByArticle(id); err == nil && analysis != nil {
		response["analysis"] = analysis
	}
	if notifications, err := h.notifRepo.GetNotificationsByArticle(id); err == nil && len(notifications) > 0 {
		response["notifications"] = notifications
	}

	c.JSON(http.StatusOK, response)
}

// APIEvents streams pipeline events as server-sent events until the client
// disconnects.
func (h *Handler) APIEvents(c *gin.Context) {
	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				return true
			}
			c.SSEvent("message", string(data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
