package repositories

import (
	"database/sql"
	"fmt"

	"gamyam/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (id, name, email, phone, company, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query, lead.ID, lead.Name, lead.Email, lead.Phone,
		lead.Company, lead.Status, lead.Notes, lead.CreatedAt, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) GetByID(id string) (*models.Lead, error) {
	const query = `
		SELECT id, name, email, phone, company, status, notes, created_at, updated_at
		FROM leads WHERE id=$1
	`
	lead := &models.Lead{}
	err := r.db.QueryRow(query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Status,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) Update(lead *models.Lead) error {
	const query = `
		UPDATE leads
		SET name=$1, email=$2, phone=$3, company=$4, status=$5, notes=$6, updated_at=$7
		WHERE id=$8
	`
	_, err := r.db.Exec(query, lead.Name, lead.Email, lead.Phone, lead.Company,
		lead.Status, lead.Notes, lead.UpdatedAt, lead.ID)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAll returns leads most recently touched first.
func (r *LeadRepository) ListAll() ([]models.Lead, error) {
	const query = `
		SELECT id, name, email, phone, company, status, notes, created_at, updated_at
		FROM leads ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company,
			&l.Status, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) CountByStatus() (map[models.LeadStatus]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.LeadStatus]int)
	for rows.Next() {
		var status models.LeadStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
