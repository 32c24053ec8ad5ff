package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLAnalysisRepository handles analysis records.
type SQLAnalysisRepository struct {
	db *DB
}

var _ AnalysisRepository = (*SQLAnalysisRepository)(nil)

func NewAnalysisRepository(db *DB) *SQLAnalysisRepository {
	return &SQLAnalysisRepository{db: db}
}

// UpsertAnalysis writes the record keyed by article id; re-analysis replaces
// the previous record in place.
func (r *SQLAnalysisRepository) UpsertAnalysis(rec *AnalysisRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO analysis_records (id, article_id, sentiment_score, sentiment_label, confidence,
		                              topics, keywords, entities, language,
		                              bias_overall, bias_classification, bias_strategy, bias_indicators,
		                              created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (article_id) DO UPDATE SET
			sentiment_score = excluded.sentiment_score,
			sentiment_label = excluded.sentiment_label,
			confidence = excluded.confidence,
			topics = excluded.topics,
			keywords = excluded.keywords,
			entities = excluded.entities,
			language = excluded.language,
			bias_overall = excluded.bias_overall,
			bias_classification = excluded.bias_classification,
			bias_strategy = excluded.bias_strategy,
			bias_indicators = excluded.bias_indicators,
			updated_at = excluded.updated_at
	`, rec.ID, rec.ArticleID, rec.SentimentScore, rec.SentimentLabel, rec.Confidence,
		marshalJSON(rec.Topics), marshalJSON(rec.Keywords), marshalJSON(rec.Entities), rec.Language,
		rec.BiasOverall, rec.BiasClassification, rec.BiasStrategy, marshalJSON(rec.Bias),
		now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert analysis: %w", err)
	}
	return nil
}

func (r *SQLAnalysisRepository) GetAnalysisByArticle(articleID string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var topics, keywords, entities, indicators string
	err := r.db.QueryRow(`
		SELECT id, article_id, sentiment_score, sentiment_label, confidence,
		       topics, keywords, entities, language,
		       bias_overall, bias_classification, bias_strategy, bias_indicators,
		       created_at, updated_at
		FROM analysis_records
		WHERE article_id = ?
	`, articleID).Scan(
		&rec.ID, &rec.ArticleID, &rec.SentimentScore, &rec.SentimentLabel, &rec.Confidence,
		&topics, &keywords, &entities, &rec.Language,
		&rec.BiasOverall, &rec.BiasClassification, &rec.BiasStrategy, &indicators,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	rec.Topics = unmarshalStrings(topics)
	rec.Keywords = unmarshalStrings(keywords)
	unmarshalJSON(entities, &rec.Entities)
	unmarshalJSON(indicators, &rec.Bias)
	return &rec, nil
}

func (r *SQLAnalysisRepository) GetAnalysisCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get analysis count: %w", err)
	}
	return count, nil
}

func (r *SQLAnalysisRepository) CountByClassification() (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT bias_classification, COUNT(*)
		FROM analysis_records
		GROUP BY bias_classification
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count classifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var class string
		var count int
		if err := rows.Scan(&class, &count); err != nil {
			return nil, fmt.Errorf("failed to scan classification row: %w", err)
		}
		counts[class] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classification rows: %w", err)
	}
	return counts, nil
}
