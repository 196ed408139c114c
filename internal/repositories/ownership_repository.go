package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var ownershipSpec = EntitySpec[models.Ownership, int]{
	Table:     "ownership",
	KeyColumn: "id",
	Columns:   []string{"id", "real_estate_id", "ownership_type_code", "owner_id", "registration_date", "document_reference"},
	ScanRow: func(row rowScanner) (*models.Ownership, error) {
		var o models.Ownership
		if err := row.Scan(&o.ID, &o.RealEstateID, &o.OwnershipTypeCode, &o.OwnerID, &o.RegistrationDate, &o.DocumentReference); err != nil {
			return nil, err
		}
		return &o, nil
	},
	InsertColumns: []string{"real_estate_id", "ownership_type_code", "owner_id", "registration_date", "document_reference"},
	InsertArgs: func(o *models.Ownership) []any {
		return []any{o.RealEstateID, o.OwnershipTypeCode, o.OwnerID, o.RegistrationDate, o.DocumentReference}
	},
	UpdateColumns: []string{"real_estate_id", "ownership_type_code", "owner_id", "registration_date", "document_reference"},
	UpdateArgs: func(o *models.Ownership) []any {
		return []any{o.RealEstateID, o.OwnershipTypeCode, o.OwnerID, o.RegistrationDate, o.DocumentReference}
	},
	Key:       func(o *models.Ownership) int { return o.ID },
	AssignKey: func(o *models.Ownership, id int) { o.ID = id },
}

type OwnershipRepository struct {
	*Repository[models.Ownership, int]
}

func NewOwnershipRepository(db *sql.DB) *OwnershipRepository {
	return &OwnershipRepository{NewRepository(db, ownershipSpec)}
}
