package database

import (
	"database/sql"
	"fmt"
)

// SQLOfficerRepository reads officers and their notification preferences.
type SQLOfficerRepository struct {
	db *DB
}

var _ OfficerRepository = (*SQLOfficerRepository)(nil)

func NewOfficerRepository(db *DB) *SQLOfficerRepository {
	return &SQLOfficerRepository{db: db}
}

func (r *SQLOfficerRepository) GetActiveOfficersByDepartment(departmentID string) ([]Officer, error) {
	rows, err := r.db.Query(`
		SELECT id, department_id, name, email, phone, role, active
		FROM officers
		WHERE department_id = ? AND active = 1
		ORDER BY name
	`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get officers: %w", err)
	}
	defer rows.Close()

	var officers []Officer
	for rows.Next() {
		var o Officer
		if err := rows.Scan(&o.ID, &o.DepartmentID, &o.Name, &o.Email, &o.Phone, &o.Role, &o.Active); err != nil {
			return nil, fmt.Errorf("failed to scan officer row: %w", err)
		}
		officers = append(officers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating officer rows: %w", err)
	}
	return officers, nil
}

// GetPreference returns nil without error when the officer has no preference
// row; the notification engine treats that as "do not notify".
func (r *SQLOfficerRepository) GetPreference(officerID string) (*NotificationPreference, error) {
	var pref NotificationPreference
	var channels string
	err := r.db.QueryRow(`
		SELECT id, officer_id, enabled, channels, sentiment_threshold, bias_threshold
		FROM notification_preferences
		WHERE officer_id = ?
	`, officerID).Scan(&pref.ID, &pref.OfficerID, &pref.Enabled, &channels,
		&pref.SentimentThreshold, &pref.BiasThreshold)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	pref.Channels = unmarshalStrings(channels)
	return &pref, nil
}
