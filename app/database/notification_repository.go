package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLNotificationRepository writes notification delivery-log entries. The
// decision engine's responsibility ends here; dispatch is external.
type SQLNotificationRepository struct {
	db *DB
}

var _ NotificationRepository = (*SQLNotificationRepository)(nil)

func NewNotificationRepository(db *DB) *SQLNotificationRepository {
	return &SQLNotificationRepository{db: db}
}

func (r *SQLNotificationRepository) LogNotification(entry *NotificationLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO notification_logs (id, article_id, officer_id, channel, type, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.ArticleID, entry.OfficerID, entry.Channel, entry.Type,
		entry.Status, entry.Message, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log notification: %w", err)
	}
	return nil
}

func (r *SQLNotificationRepository) GetNotificationsByArticle(articleID string) ([]NotificationLog, error) {
	rows, err := r.db.Query(`
		SELECT id, article_id, officer_id, channel, type, status, message, created_at
		FROM notification_logs
		WHERE article_id = ?
		ORDER BY created_at
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var logs []NotificationLog
	for rows.Next() {
		var l NotificationLog
		if err := rows.Scan(&l.ID, &l.ArticleID, &l.OfficerID, &l.Channel, &l.Type,
			&l.Status, &l.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return logs, nil
}
