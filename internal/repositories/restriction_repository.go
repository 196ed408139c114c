package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var restrictionSpec = EntitySpec[models.Restriction, int]{
	Table:     "restrictions",
	KeyColumn: "id",
	Columns:   []string{"id", "real_estate_id", "restriction_type_code", "imposed_date", "removed_date", "basis"},
	ScanRow: func(row rowScanner) (*models.Restriction, error) {
		var r models.Restriction
		if err := row.Scan(&r.ID, &r.RealEstateID, &r.RestrictionTypeCode, &r.ImposedDate, &r.RemovedDate, &r.Basis); err != nil {
			return nil, err
		}
		return &r, nil
	},
	InsertColumns: []string{"real_estate_id", "restriction_type_code", "imposed_date", "removed_date", "basis"},
	InsertArgs: func(r *models.Restriction) []any {
		return []any{r.RealEstateID, r.RestrictionTypeCode, r.ImposedDate, r.RemovedDate, r.Basis}
	},
	UpdateColumns: []string{"real_estate_id", "restriction_type_code", "imposed_date", "removed_date", "basis"},
	UpdateArgs: func(r *models.Restriction) []any {
		return []any{r.RealEstateID, r.RestrictionTypeCode, r.ImposedDate, r.RemovedDate, r.Basis}
	},
	Key:       func(r *models.Restriction) int { return r.ID },
	AssignKey: func(r *models.Restriction, id int) { r.ID = id },
}

type RestrictionRepository struct {
	*Repository[models.Restriction, int]
}

func NewRestrictionRepository(db *sql.DB) *RestrictionRepository {
	return &RestrictionRepository{NewRepository(db, restrictionSpec)}
}
