package database

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// SQLArticleRepository handles article records.
type SQLArticleRepository struct {
	db *DB
}

var _ ArticleRepository = (*SQLArticleRepository)(nil)

func NewArticleRepository(db *DB) *SQLArticleRepository {
	return &SQLArticleRepository{db: db}
}

const articleColumns = `id, COALESCE(source_id, ''), title, content, translated_content, summary,
       language, category, COALESCE(primary_department_id, ''), related_departments, url, region, status,
       collected_at, published_at, extraction_status, extraction_attempts, extraction_error, extracted_at,
       created_at, updated_at`

func (r *SQLArticleRepository) GetArticle(id string) (*Article, error) {
	row := r.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

func (r *SQLArticleRepository) GetArticleByURL(url string) (*Article, error) {
	row := r.db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE url = ?`, url)
	return scanArticle(row)
}

// InsertArticle inserts a new article. A URL conflict is a no-op: under
// concurrent ingestion of the same URL the second writer loses silently.
// Returns whether a row was actually written; assigns the ID on the way in.
func (r *SQLArticleRepository) InsertArticle(a *Article) (bool, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CollectedAt.IsZero() {
		a.CollectedAt = now
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.ExtractionStatus == "" {
		a.ExtractionStatus = ExtractionPending
	}

	res, err := r.db.Exec(`
		INSERT INTO articles (id, source_id, title, content, translated_content, summary,
		                      language, category, related_departments, url, region, status,
		                      collected_at, published_at, extraction_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (url) DO NOTHING
	`, a.ID, nullable(a.SourceID), a.Title, a.Content, a.TranslatedContent, a.Summary,
		a.Language, a.Category, marshalJSON(a.RelatedDepartments), a.URL, a.Region, a.Status,
		a.CollectedAt, a.PublishedAt, a.ExtractionStatus, now, now)
	if err != nil {
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLArticleRepository) UpdateArticleStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE articles SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}
	return nil
}

func (r *SQLArticleRepository) UpdateTranslation(id, translated string) error {
	_, err := r.db.Exec(`UPDATE articles SET translated_content = ?, updated_at = ? WHERE id = ?`,
		translated, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update translation: %w", err)
	}
	return nil
}

func (r *SQLArticleRepository) UpdateDepartments(id string, primaryDepartmentID string, related []string) error {
	_, err := r.db.Exec(`
		UPDATE articles SET primary_department_id = ?, related_departments = ?, updated_at = ?
		WHERE id = ?
	`, nullable(primaryDepartmentID), marshalJSON(related), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update departments: %w", err)
	}
	return nil
}

func (r *SQLArticleRepository) GetArticlesByStatus(status string, limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE status = ?
		ORDER BY collected_at
		LIMIT ?
	`, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles by status: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

// ListArticles builds the listing query dynamically from the filter.
func (r *SQLArticleRepository) ListArticles(filter ArticleFilter) ([]Article, error) {
	builder := sq.Select(articleColumns).
		From("articles").
		OrderBy("collected_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.SourceID != "" {
		builder = builder.Where(sq.Eq{"source_id": filter.SourceID})
	}
	if filter.Language != "" {
		builder = builder.Where(sq.Eq{"language": filter.Language})
	}
	if filter.Region != "" {
		builder = builder.Where(sq.Eq{"region": filter.Region})
	}
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	builder = builder.Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build listing query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *SQLArticleRepository) GetArticleCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}

// GetArticlesForExtraction returns articles with short content that have not
// yet been through the readability pass.
func (r *SQLArticleRepository) GetArticlesForExtraction(limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE extraction_status = ? AND LENGTH(content) < 300 AND extraction_attempts < 3
		ORDER BY collected_at
		LIMIT ?
	`, ExtractionPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles for extraction: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *SQLArticleRepository) UpdateExtraction(id, status, content, errMsg string, extractedAt *time.Time) error {
	var err error
	if content != "" {
		_, err = r.db.Exec(`
			UPDATE articles
			SET extraction_status = ?, content = ?, extraction_error = ?, extracted_at = ?,
			    extraction_attempts = extraction_attempts + 1, updated_at = ?
			WHERE id = ?
		`, status, content, errMsg, extractedAt, time.Now().UTC(), id)
	} else {
		_, err = r.db.Exec(`
			UPDATE articles
			SET extraction_status = ?, extraction_error = ?, extracted_at = ?,
			    extraction_attempts = extraction_attempts + 1, updated_at = ?
			WHERE id = ?
		`, status, errMsg, extractedAt, time.Now().UTC(), id)
	}
	if err != nil {
		return fmt.Errorf("failed to update extraction status: %w", err)
	}
	return nil
}

func scanArticle(row rowScanner) (*Article, error) {
	var a Article
	var related string
	err := row.Scan(
		&a.ID, &a.SourceID, &a.Title, &a.Content, &a.TranslatedContent, &a.Summary,
		&a.Language, &a.Category, &a.PrimaryDepartmentID, &related, &a.URL, &a.Region, &a.Status,
		&a.CollectedAt, &a.PublishedAt, &a.ExtractionStatus, &a.ExtractionAttempts, &a.ExtractionError,
		&a.ExtractedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan article row: %w", err)
	}
	a.RelatedDepartments = unmarshalStrings(related)
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]Article, error) {
	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}
