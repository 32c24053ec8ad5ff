package database

import (
	"time"

	"github.com/rkawale/mediawatch/app/analysis"
)

// Article status lifecycle. Ingestion-created articles jump straight to
// analyzed once the synchronous baseline analysis completes; manually entered
// ones stay pending/processing until an explicit analyze action.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusAnalyzed   = "analyzed"
	StatusValidated  = "validated"
	StatusArchived   = "archived"
)

// Content-extraction bookkeeping for the readability pass.
const (
	ExtractionPending = "pending"
	ExtractionSuccess = "success"
	ExtractionFailed  = "failed"
	ExtractionSkipped = "skipped"
)

// MediaSource is a configured feed. Created and edited by the admin surface;
// the ingestion pipeline only ever reads active sources with a feed URL.
type MediaSource struct {
	ID               string
	Name             string
	Type             string // newspaper, tv, radio, social, online, magazine, youtube
	Language         string
	Region           string
	FeedURL          string
	YouTubeChannelID string
	CredibilityScore float64 // 0..1
	Active           bool
	FetchInterval    int // seconds
	NextFetchAt      *time.Time
	LastFetchedAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Article is one collected feedback item. URL is globally unique and serves
// as the deduplication key.
type Article struct {
	ID                  string
	SourceID            string
	Title               string
	Content             string
	TranslatedContent   string
	Summary             string
	Language            string
	Category            string
	PrimaryDepartmentID string
	RelatedDepartments  []string
	URL                 string
	Region              string
	Status              string
	CollectedAt         time.Time
	PublishedAt         *time.Time
	ExtractionStatus    string
	ExtractionAttempts  int
	ExtractionError     string
	ExtractedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// BiasIndicators is the typed form of the per-article bias assessment. Six
// named axis fields carry the normalized 0..1 scores; Detail keeps the full
// per-axis breakdown.
type BiasIndicators struct {
	Political         float64               `json:"political"`
	Regional          float64               `json:"regional"`
	Sentiment         float64               `json:"sentiment"`
	SourceReliability float64               `json:"source_reliability"`
	Representation    float64               `json:"representation"`
	Language          float64               `json:"language"`
	Detail            map[string]AxisDetail `json:"detail"`
}

// AxisDetail mirrors bias.AxisScore for persistence.
type AxisDetail struct {
	Score       float64            `json:"score"`
	Evidence    []string           `json:"evidence"`
	Explanation string             `json:"explanation"`
	Indicators  map[string]float64 `json:"indicators"`
}

// AnalysisRecord is one-to-one with Article, upserted on article-id conflict:
// re-analysis replaces, never duplicates.
type AnalysisRecord struct {
	ID                 string
	ArticleID          string
	SentimentScore     float64 // -1..1
	SentimentLabel     string
	Confidence         float64 // 0..1
	Topics             []string
	Keywords           []string
	Entities           []analysis.Entity
	Language           string
	BiasOverall        float64 // 0..100
	BiasClassification string
	BiasStrategy       string
	Bias               BiasIndicators
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Department struct {
	ID                  string
	Name                string
	ShortName           string
	Keywords            []string
	ContactEmail        string
	ContactPhone        string
	NotificationEnabled bool
}

type Officer struct {
	ID           string
	DepartmentID string
	Name         string
	Email        string
	Phone        string
	Role         string
	Active       bool
}

// NotificationPreference defaults: alert when sentiment < -0.3 or overall
// bias > 60.
type NotificationPreference struct {
	ID                 string
	OfficerID          string
	Enabled            bool
	Channels           []string
	SentimentThreshold float64
	BiasThreshold      float64
}

// ScrapingJob is an ephemeral per-source run record, kept for observability
// only; nothing downstream reads it.
type ScrapingJob struct {
	ID            string
	SourceID      string
	JobType       string
	Status        string // running, completed, failed
	ArticlesFound int
	ArticlesSaved int
	ErrorMessage  string
	StartedAt     time.Time
	CompletedAt   *time.Time
}

const (
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

type NotificationLog struct {
	ID        string
	ArticleID string
	OfficerID string
	Channel   string
	Type      string
	Status    string // sent, pending, failed
	Message   string
	CreatedAt time.Time
}
