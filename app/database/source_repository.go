package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLSourceRepository handles media source records.
type SQLSourceRepository struct {
	db *DB
}

var _ SourceRepository = (*SQLSourceRepository)(nil)

func NewSourceRepository(db *DB) *SQLSourceRepository {
	return &SQLSourceRepository{db: db}
}

const sourceColumns = `id, name, type, language, region, COALESCE(feed_url, ''), COALESCE(youtube_channel_id, ''),
       credibility_score, active, fetch_interval, next_fetch_at, last_fetched_at, created_at, updated_at`

func (r *SQLSourceRepository) GetSource(id string) (*MediaSource, error) {
	row := r.db.QueryRow(`SELECT `+sourceColumns+` FROM media_sources WHERE id = ?`, id)
	return scanSource(row)
}

// GetActiveSourcesWithFeeds returns every active source with a configured
// feed, ordered by language. This is the scrape-all source set.
func (r *SQLSourceRepository) GetActiveSourcesWithFeeds() ([]MediaSource, error) {
	rows, err := r.db.Query(`
		SELECT ` + sourceColumns + `
		FROM media_sources
		WHERE active = 1 AND feed_url IS NOT NULL AND feed_url != ''
		ORDER BY language, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get active sources: %w", err)
	}
	defer rows.Close()
	return scanSources(rows)
}

func (r *SQLSourceRepository) GetSourcesDueForFetch() ([]MediaSource, error) {
	rows, err := r.db.Query(`
		SELECT `+sourceColumns+`
		FROM media_sources
		WHERE active = 1 AND feed_url IS NOT NULL AND feed_url != ''
		  AND (next_fetch_at IS NULL OR next_fetch_at <= ?)
		ORDER BY language, name
	`, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get due sources: %w", err)
	}
	defer rows.Close()
	return scanSources(rows)
}

// UpsertSource inserts or updates a source keyed by feed URL. Used by the
// seed-file loader at startup; the admin surface owns sources afterwards.
func (r *SQLSourceRepository) UpsertSource(src MediaSource) (string, error) {
	existing, err := r.getSourceByFeedURL(src.FeedURL)
	if err != nil {
		return "", fmt.Errorf("failed to check existing source: %w", err)
	}

	now := time.Now().UTC()
	if existing != nil {
		_, err = r.db.Exec(`
			UPDATE media_sources
			SET name = ?, type = ?, language = ?, region = ?, credibility_score = ?,
			    active = ?, fetch_interval = ?, updated_at = ?
			WHERE id = ?
		`, src.Name, src.Type, src.Language, src.Region, src.CredibilityScore,
			src.Active, src.FetchInterval, now, existing.ID)
		if err != nil {
			return "", fmt.Errorf("failed to update source: %w", err)
		}
		return existing.ID, nil
	}

	id := uuid.NewString()
	_, err = r.db.Exec(`
		INSERT INTO media_sources (id, name, type, language, region, feed_url, youtube_channel_id,
		                           credibility_score, active, fetch_interval, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, src.Name, src.Type, src.Language, src.Region, nullable(src.FeedURL), nullable(src.YouTubeChannelID),
		src.CredibilityScore, src.Active, src.FetchInterval, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert source: %w", err)
	}
	return id, nil
}

func (r *SQLSourceRepository) UpdateFetchStatus(id string, nextFetch time.Time) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE media_sources
		SET last_fetched_at = ?, next_fetch_at = ?, updated_at = ?
		WHERE id = ?
	`, now, nextFetch, now, id)
	if err != nil {
		return fmt.Errorf("failed to update fetch status: %w", err)
	}
	return nil
}

func (r *SQLSourceRepository) GetSourceCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM media_sources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get source count: %w", err)
	}
	return count, nil
}

func (r *SQLSourceRepository) getSourceByFeedURL(feedURL string) (*MediaSource, error) {
	if feedURL == "" {
		return nil, nil
	}
	row := r.db.QueryRow(`SELECT `+sourceColumns+` FROM media_sources WHERE feed_url = ?`, feedURL)
	return scanSource(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSource(row rowScanner) (*MediaSource, error) {
	var src MediaSource
	err := row.Scan(
		&src.ID, &src.Name, &src.Type, &src.Language, &src.Region, &src.FeedURL,
		&src.YouTubeChannelID, &src.CredibilityScore, &src.Active, &src.FetchInterval,
		&src.NextFetchAt, &src.LastFetchedAt, &src.CreatedAt, &src.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan source row: %w", err)
	}
	return &src, nil
}

func scanSources(rows *sql.Rows) ([]MediaSource, error) {
	var sources []MediaSource
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}
	return sources, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
