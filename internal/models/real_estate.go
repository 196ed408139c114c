package models

// RealEstate is a property object on the agency's books.
type RealEstate struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Address     string   `json:"address"`
	Area        float64  `json:"area"`
	Rooms       *int     `json:"rooms"`
	Floor       *int     `json:"floor"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
}

type RealEstatePatch struct {
	Type        *string  `json:"type"`
	Address     *string  `json:"address"`
	Area        *float64 `json:"area"`
	Rooms       *int     `json:"rooms"`
	Floor       *int     `json:"floor"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
}

func (p *RealEstatePatch) Apply(r *RealEstate) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Area != nil {
		r.Area = *p.Area
	}
	if p.Rooms != nil {
		r.Rooms = p.Rooms
	}
	if p.Floor != nil {
		r.Floor = p.Floor
	}
	if p.Price != nil {
		r.Price = p.Price
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Status != nil {
		r.Status = p.Status
	}
}
