package database

import (
	"database/sql"
	"fmt"
)

// SQLDepartmentRepository reads department records. Departments are seeded by
// migration and managed by the admin surface; the pipeline only reads them.
type SQLDepartmentRepository struct {
	db *DB
}

var _ DepartmentRepository = (*SQLDepartmentRepository)(nil)

func NewDepartmentRepository(db *DB) *SQLDepartmentRepository {
	return &SQLDepartmentRepository{db: db}
}

const departmentColumns = `id, name, short_name, keywords, contact_email, contact_phone, notification_enabled`

func (r *SQLDepartmentRepository) GetDepartments() ([]Department, error) {
	rows, err := r.db.Query(`SELECT ` + departmentColumns + ` FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

func (r *SQLDepartmentRepository) GetDepartment(id string) (*Department, error) {
	row := r.db.QueryRow(`SELECT `+departmentColumns+` FROM departments WHERE id = ?`, id)
	return scanDepartment(row)
}

func scanDepartment(row rowScanner) (*Department, error) {
	var dept Department
	var keywords string
	err := row.Scan(&dept.ID, &dept.Name, &dept.ShortName, &keywords,
		&dept.ContactEmail, &dept.ContactPhone, &dept.NotificationEnabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan department row: %w", err)
	}
	dept.Keywords = unmarshalStrings(keywords)
	return &dept, nil
}
