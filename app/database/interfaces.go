package database

import "time"

type SourceRepository interface {
	GetSource(id string) (*MediaSource, error)
	GetActiveSourcesWithFeeds() ([]MediaSource, error)
	GetSourcesDueForFetch() ([]MediaSource, error)
	UpsertSource(src MediaSource) (string, error)
	UpdateFetchStatus(id string, nextFetch time.Time) error
	GetSourceCount() (int, error)
}

// ArticleFilter drives the dynamic listing query. Zero values mean
// "no constraint".
type ArticleFilter struct {
	Status   string
	SourceID string
	Language string
	Region   string
	Limit    int
}

type ArticleRepository interface {
	GetArticle(id string) (*Article, error)
	GetArticleByURL(url string) (*Article, error)
	// InsertArticle inserts a new article; a URL conflict is a silent no-op
	// and returns false.
	InsertArticle(a *Article) (bool, error)
	UpdateArticleStatus(id, status string) error
	UpdateTranslation(id, translated string) error
	UpdateDepartments(id string, primaryDepartmentID string, related []string) error
	GetArticlesByStatus(status string, limit int) ([]Article, error)
	ListArticles(filter ArticleFilter) ([]Article, error)
	GetArticleCount() (int, error)

	GetArticlesForExtraction(limit int) ([]Article, error)
	UpdateExtraction(id, status, content, errMsg string, extractedAt *time.Time) error
}

type AnalysisRepository interface {
	// UpsertAnalysis replaces any existing record for the same article id.
	UpsertAnalysis(rec *AnalysisRecord) error
	GetAnalysisByArticle(articleID string) (*AnalysisRecord, error)
	GetAnalysisCount() (int, error)
	CountByClassification() (map[string]int, error)
}

type DepartmentRepository interface {
	GetDepartments() ([]Department, error)
	GetDepartment(id string) (*Department, error)
}

type OfficerRepository interface {
	GetActiveOfficersByDepartment(departmentID string) ([]Officer, error)
	GetPreference(officerID string) (*NotificationPreference, error)
}

type JobRepository interface {
	CreateJob(job *ScrapingJob) error
	CompleteJob(id string, found, saved int) error
	FailJob(id string, errMsg string) error
}

type NotificationRepository interface {
	LogNotification(entry *NotificationLog) error
	GetNotificationsByArticle(articleID string) ([]NotificationLog, error)
}
