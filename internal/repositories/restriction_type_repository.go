package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var restrictionTypeSpec = EntitySpec[models.RestrictionType, string]{
	Table:     "restriction_types",
	KeyColumn: "code",
	Columns:   []string{"code", "name", "description"},
	ScanRow: func(row rowScanner) (*models.RestrictionType, error) {
		var t models.RestrictionType
		if err := row.Scan(&t.Code, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		return &t, nil
	},
	InsertColumns: []string{"code", "name", "description"},
	InsertArgs: func(t *models.RestrictionType) []any {
		return []any{t.Code, t.Name, t.Description}
	},
	UpdateColumns: []string{"name", "description"},
	UpdateArgs: func(t *models.RestrictionType) []any {
		return []any{t.Name, t.Description}
	},
	Key:       func(t *models.RestrictionType) string { return t.Code },
	AssignKey: nil,
}

type RestrictionTypeRepository struct {
	*Repository[models.RestrictionType, string]
}

func NewRestrictionTypeRepository(db *sql.DB) *RestrictionTypeRepository {
	return &RestrictionTypeRepository{NewRepository(db, restrictionTypeSpec)}
}
