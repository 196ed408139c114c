package models

// Restriction is a legal encumbrance imposed on a property.
type Restriction struct {
	ID                  int     `json:"id"`
	RealEstateID        int     `json:"real_estate_id"`
	RestrictionTypeCode string  `json:"restriction_type_code"`
	ImposedDate         Date    `json:"imposed_date"`
	RemovedDate         *Date   `json:"removed_date"`
	Basis               *string `json:"basis"`
}

type RestrictionPatch struct {
	RealEstateID        *int    `json:"real_estate_id"`
	RestrictionTypeCode *string `json:"restriction_type_code"`
	ImposedDate         *Date   `json:"imposed_date"`
	RemovedDate         *Date   `json:"removed_date"`
	Basis               *string `json:"basis"`
}

func (p *RestrictionPatch) Apply(r *Restriction) {
	if p.RealEstateID != nil {
		r.RealEstateID = *p.RealEstateID
	}
	if p.RestrictionTypeCode != nil {
		r.RestrictionTypeCode = *p.RestrictionTypeCode
	}
	if p.ImposedDate != nil {
		r.ImposedDate = *p.ImposedDate
	}
	if p.RemovedDate != nil {
		r.RemovedDate = p.RemovedDate
	}
	if p.Basis != nil {
		r.Basis = p.Basis
	}
}
