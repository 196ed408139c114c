package models

// Ownership links a client to a property through a registered right.
type Ownership struct {
	ID                int     `json:"id"`
	RealEstateID      int     `json:"real_estate_id"`
	OwnershipTypeCode string  `json:"ownership_type_code"`
	OwnerID           int     `json:"owner_id"`
	RegistrationDate  Date    `json:"registration_date"`
	DocumentReference *string `json:"document_reference"`
}

type OwnershipPatch struct {
	RealEstateID      *int    `json:"real_estate_id"`
	OwnershipTypeCode *string `json:"ownership_type_code"`
	OwnerID           *int    `json:"owner_id"`
	RegistrationDate  *Date   `json:"registration_date"`
	DocumentReference *string `json:"document_reference"`
}

func (p *OwnershipPatch) Apply(o *Ownership) {
	if p.RealEstateID != nil {
		o.RealEstateID = *p.RealEstateID
	}
	if p.OwnershipTypeCode != nil {
		o.OwnershipTypeCode = *p.OwnershipTypeCode
	}
	if p.OwnerID != nil {
		o.OwnerID = *p.OwnerID
	}
	if p.RegistrationDate != nil {
		o.RegistrationDate = *p.RegistrationDate
	}
	if p.DocumentReference != nil {
		o.DocumentReference = p.DocumentReference
	}
}
