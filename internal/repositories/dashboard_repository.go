package repositories

import (
	"database/sql"
	"fmt"

	"estateoffice/internal/models"
)

// DashboardRepository holds the handful of aggregate queries behind the
// summary screen. Everything is recomputed per call, nothing is cached.
type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountProperties() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM real_estate_objects`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

func (r *DashboardRepository) CountClients() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func (r *DashboardRepository) CountActiveDeals() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM deals WHERE status = 'active'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active deals: %w", err)
	}
	return n, nil
}

// RecentDeals returns the most recently dated deals joined to the client
// name and property address, newest first.
func (r *DashboardRepository) RecentDeals(limit int) ([]models.RecentDeal, error) {
	const q = `
                SELECT c.full_name, o.address, d.amount
                FROM deals d
                JOIN clients c ON c.id = d.client_id
                JOIN real_estate_objects o ON o.id = d.real_estate_id
                ORDER BY d.deal_date DESC
                LIMIT $1
        `
	rows, err := r.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent deals: %w", err)
	}
	defer rows.Close()

	res := make([]models.RecentDeal, 0, limit)
	for rows.Next() {
		var d models.RecentDeal
		if err := rows.Scan(&d.Client, &d.Property, &d.Amount); err != nil {
			return nil, fmt.Errorf("recent deals: %w", err)
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

// NewProperties returns the latest additions to the books, newest first
// by id.
func (r *DashboardRepository) NewProperties(limit int) ([]models.NewProperty, error) {
	const q = `
                SELECT address, type, price
                FROM real_estate_objects
                ORDER BY id DESC
                LIMIT $1
        `
	rows, err := r.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("new properties: %w", err)
	}
	defer rows.Close()

	res := make([]models.NewProperty, 0, limit)
	for rows.Next() {
		var p models.NewProperty
		if err := rows.Scan(&p.Address, &p.Type, &p.Price); err != nil {
			return nil, fmt.Errorf("new properties: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
