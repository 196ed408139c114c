package models

// Deal records a sale, purchase or rent transaction.
type Deal struct {
	ID           int     `json:"id"`
	DealType     string  `json:"deal_type"`
	RealEstateID int     `json:"real_estate_id"`
	ClientID     int     `json:"client_id"`
	EmployeeID   int     `json:"employee_id"`
	DealDate     Date    `json:"deal_date"`
	Amount       Amount  `json:"amount"`
	Status       *string `json:"status"`
}

type DealPatch struct {
	DealType     *string `json:"deal_type"`
	RealEstateID *int    `json:"real_estate_id"`
	ClientID     *int    `json:"client_id"`
	EmployeeID   *int    `json:"employee_id"`
	DealDate     *Date   `json:"deal_date"`
	Amount       *Amount `json:"amount"`
	Status       *string `json:"status"`
}

func (p *DealPatch) Apply(d *Deal) {
	if p.DealType != nil {
		d.DealType = *p.DealType
	}
	if p.RealEstateID != nil {
		d.RealEstateID = *p.RealEstateID
	}
	if p.ClientID != nil {
		d.ClientID = *p.ClientID
	}
	if p.EmployeeID != nil {
		d.EmployeeID = *p.EmployeeID
	}
	if p.DealDate != nil {
		d.DealDate = *p.DealDate
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Status != nil {
		d.Status = p.Status
	}
}

// DealSummary is the joined view used for the PDF export.
type DealSummary struct {
	DealID       int
	DealType     string
	DealDate     Date
	Amount       string
	Status       string
	ClientName   string
	Address      string
	EmployeeName string
}
