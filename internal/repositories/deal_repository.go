package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"gamyam/internal/models"
)

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

const dealColumns = `id, title, description, value, currency, stage, probability,
        expected_close_date, customer_id, assigned_to, notes, attachments, tags,
        created_at, updated_at`

func scanDeal(row interface{ Scan(...any) error }) (*models.Deal, error) {
	d := &models.Deal{}
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Value,
		&d.Currency,
		&d.Stage,
		&d.Probability,
		&d.ExpectedCloseDate,
		&d.CustomerID,
		&d.AssignedTo,
		pq.Array(&d.Notes),
		pq.Array(&d.Attachments),
		pq.Array(&d.Tags),
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DealRepository) Create(deal *models.Deal) error {
	query := `
        INSERT INTO deals (` + dealColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err := r.db.Exec(
		query,
		deal.ID,
		deal.Title,
		deal.Description,
		deal.Value,
		deal.Currency,
		deal.Stage,
		deal.Probability,
		deal.ExpectedCloseDate,
		deal.CustomerID,
		deal.AssignedTo,
		pq.Array(deal.Notes),
		pq.Array(deal.Attachments),
		pq.Array(deal.Tags),
		deal.CreatedAt,
		deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deal: %w", err)
	}
	return nil
}

func (r *DealRepository) GetByID(id string) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id=$1`
	deal, err := scanDeal(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deal by id: %w", err)
	}
	return deal, nil
}

func (r *DealRepository) Update(deal *models.Deal) error {
	query := `
        UPDATE deals
        SET title=$1, description=$2, value=$3, currency=$4, stage=$5,
            probability=$6, expected_close_date=$7, customer_id=$8,
            assigned_to=$9, notes=$10, attachments=$11, tags=$12, updated_at=$13
        WHERE id=$14
    `
	_, err := r.db.Exec(
		query,
		deal.Title,
		deal.Description,
		deal.Value,
		deal.Currency,
		deal.Stage,
		deal.Probability,
		deal.ExpectedCloseDate,
		deal.CustomerID,
		deal.AssignedTo,
		pq.Array(deal.Notes),
		pq.Array(deal.Attachments),
		pq.Array(deal.Tags),
		deal.UpdatedAt,
		deal.ID,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

func (r *DealRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM deals WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAll returns every deal in creation order.
func (r *DealRepository) ListAll() ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

// Filter mirrors the client-side filter fields in SQL, plus paging.
func (r *DealRepository) Filter(stage, assignedTo, from, to string, minValue, maxValue float64, limit, offset int) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE 1=1`
	args := []interface{}{}
	i := 1

	if stage != "" {
		query += fmt.Sprintf(" AND stage = $%d", i)
		args = append(args, stage)
		i++
	}
	if assignedTo != "" {
		query += fmt.Sprintf(" AND assigned_to = $%d", i)
		args = append(args, assignedTo)
		i++
	}
	if from != "" {
		query += fmt.Sprintf(" AND expected_close_date >= $%d", i)
		args = append(args, from)
		i++
	}
	if to != "" {
		query += fmt.Sprintf(" AND expected_close_date <= $%d", i)
		args = append(args, to)
		i++
	}
	if minValue > 0 {
		query += fmt.Sprintf(" AND value >= $%d", i)
		args = append(args, minValue)
		i++
	}
	if maxValue > 0 {
		query += fmt.Sprintf(" AND value <= $%d", i)
		args = append(args, maxValue)
		i++
	}

	query += fmt.Sprintf(" ORDER BY created_at ASC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}
