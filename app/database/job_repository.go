package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLJobRepository writes scraping job run records.
type SQLJobRepository struct {
	db *DB
}

var _ JobRepository = (*SQLJobRepository)(nil)

func NewJobRepository(db *DB) *SQLJobRepository {
	return &SQLJobRepository{db: db}
}

func (r *SQLJobRepository) CreateJob(job *ScrapingJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = JobRunning
	}
	if job.StartedAt.IsZero() {
		job.StartedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO scraping_jobs (id, source_id, job_type, status, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, job.ID, job.SourceID, job.JobType, job.Status, job.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *SQLJobRepository) CompleteJob(id string, found, saved int) error {
	_, err := r.db.Exec(`
		UPDATE scraping_jobs
		SET status = ?, articles_found = ?, articles_saved = ?, completed_at = ?
		WHERE id = ?
	`, JobCompleted, found, saved, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	return nil
}

func (r *SQLJobRepository) FailJob(id string, errMsg string) error {
	_, err := r.db.Exec(`
		UPDATE scraping_jobs
		SET status = ?, error_message = ?, completed_at = ?
		WHERE id = ?
	`, JobFailed, errMsg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}
