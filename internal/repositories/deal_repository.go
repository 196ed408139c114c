package repositories

import (
	"database/sql"
	"fmt"

	"estateoffice/internal/models"
)

var dealSpec = EntitySpec[models.Deal, int]{
	Table:     "deals",
	KeyColumn: "id",
	Columns:   []string{"id", "deal_type", "real_estate_id", "client_id", "employee_id", "deal_date", "amount", "status"},
	ScanRow: func(row rowScanner) (*models.Deal, error) {
		var d models.Deal
		if err := row.Scan(&d.ID, &d.DealType, &d.RealEstateID, &d.ClientID, &d.EmployeeID, &d.DealDate, &d.Amount, &d.Status); err != nil {
			return nil, err
		}
		return &d, nil
	},
	InsertColumns: []string{"deal_type", "real_estate_id", "client_id", "employee_id", "deal_date", "amount", "status"},
	InsertArgs: func(d *models.Deal) []any {
		return []any{d.DealType, d.RealEstateID, d.ClientID, d.EmployeeID, d.DealDate, d.Amount, d.Status}
	},
	UpdateColumns: []string{"deal_type", "real_estate_id", "client_id", "employee_id", "deal_date", "amount", "status"},
	UpdateArgs: func(d *models.Deal) []any {
		return []any{d.DealType, d.RealEstateID, d.ClientID, d.EmployeeID, d.DealDate, d.Amount, d.Status}
	},
	Key:       func(d *models.Deal) int { return d.ID },
	AssignKey: func(d *models.Deal, id int) { d.ID = id },
}

type DealRepository struct {
	*Repository[models.Deal, int]
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{NewRepository(db, dealSpec)}
}

// GetSummary resolves the deal together with the names of its parties and
// the property address, for the PDF export.
func (r *DealRepository) GetSummary(id int) (*models.DealSummary, error) {
	const q = `
                SELECT d.id, d.deal_type, d.deal_date, d.amount, COALESCE(d.status, ''),
                       c.full_name, o.address, u.full_name
                FROM deals d
                JOIN clients c ON c.id = d.client_id
                JOIN real_estate_objects o ON o.id = d.real_estate_id
                JOIN users u ON u.id = d.employee_id
                WHERE d.id = $1
        `
	var s models.DealSummary
	err := r.db.QueryRow(q, id).Scan(
		&s.DealID,
		&s.DealType,
		&s.DealDate,
		&s.Amount,
		&s.Status,
		&s.ClientName,
		&s.Address,
		&s.EmployeeName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deal summary: %w", err)
	}
	return &s, nil
}
