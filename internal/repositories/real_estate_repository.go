package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var realEstateSpec = EntitySpec[models.RealEstate, int]{
	Table:     "real_estate_objects",
	KeyColumn: "id",
	Columns:   []string{"id", "type", "address", "area", "rooms", "floor", "price", "description", "status"},
	ScanRow: func(row rowScanner) (*models.RealEstate, error) {
		var o models.RealEstate
		if err := row.Scan(&o.ID, &o.Type, &o.Address, &o.Area, &o.Rooms, &o.Floor, &o.Price, &o.Description, &o.Status); err != nil {
			return nil, err
		}
		return &o, nil
	},
	InsertColumns: []string{"type", "address", "area", "rooms", "floor", "price", "description", "status"},
	InsertArgs: func(o *models.RealEstate) []any {
		return []any{o.Type, o.Address, o.Area, o.Rooms, o.Floor, o.Price, o.Description, o.Status}
	},
	UpdateColumns: []string{"type", "address", "area", "rooms", "floor", "price", "description", "status"},
	UpdateArgs: func(o *models.RealEstate) []any {
		return []any{o.Type, o.Address, o.Area, o.Rooms, o.Floor, o.Price, o.Description, o.Status}
	},
	Key:       func(o *models.RealEstate) int { return o.ID },
	AssignKey: func(o *models.RealEstate, id int) { o.ID = id },
}

type RealEstateRepository struct {
	*Repository[models.RealEstate, int]
}

func NewRealEstateRepository(db *sql.DB) *RealEstateRepository {
	return &RealEstateRepository{NewRepository(db, realEstateSpec)}
}
