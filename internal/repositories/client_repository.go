package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var clientSpec = EntitySpec[models.Client, int]{
	Table:     "clients",
	KeyColumn: "id",
	Columns:   []string{"id", "full_name", "phone", "email", "client_type", "created_at"},
	ScanRow: func(row rowScanner) (*models.Client, error) {
		var c models.Client
		if err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.ClientType, &c.CreatedAt); err != nil {
			return nil, err
		}
		return &c, nil
	},
	InsertColumns: []string{"full_name", "phone", "email", "client_type", "created_at"},
	InsertArgs: func(c *models.Client) []any {
		return []any{c.FullName, c.Phone, c.Email, c.ClientType, c.CreatedAt}
	},
	UpdateColumns: []string{"full_name", "phone", "email", "client_type"},
	UpdateArgs: func(c *models.Client) []any {
		return []any{c.FullName, c.Phone, c.Email, c.ClientType}
	},
	Key:       func(c *models.Client) int { return c.ID },
	AssignKey: func(c *models.Client, id int) { c.ID = id },
}

type ClientRepository struct {
	*Repository[models.Client, int]
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{NewRepository(db, clientSpec)}
}

func (r *ClientRepository) GetByEmail(email string) (*models.Client, error) {
	return r.GetBy("email", email)
}

func (r *ClientRepository) GetByPhone(phone string) (*models.Client, error) {
	return r.GetBy("phone", phone)
}
