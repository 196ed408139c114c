package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var ownershipTypeSpec = EntitySpec[models.OwnershipType, string]{
	Table:     "ownership_types",
	KeyColumn: "code",
	Columns:   []string{"code", "name", "description"},
	ScanRow: func(row rowScanner) (*models.OwnershipType, error) {
		var t models.OwnershipType
		if err := row.Scan(&t.Code, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		return &t, nil
	},
	InsertColumns: []string{"code", "name", "description"},
	InsertArgs: func(t *models.OwnershipType) []any {
		return []any{t.Code, t.Name, t.Description}
	},
	UpdateColumns: []string{"name", "description"},
	UpdateArgs: func(t *models.OwnershipType) []any {
		return []any{t.Name, t.Description}
	},
	Key: func(t *models.OwnershipType) string { return t.Code },
	// natural key, supplied by the caller
	AssignKey: nil,
}

type OwnershipTypeRepository struct {
	*Repository[models.OwnershipType, string]
}

func NewOwnershipTypeRepository(db *sql.DB) *OwnershipTypeRepository {
	return &OwnershipTypeRepository{NewRepository(db, ownershipTypeSpec)}
}
