package models

import "time"

// Client is a buyer, seller or tenant the agency works with.
type Client struct {
	ID         int       `json:"id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email"`
	ClientType string    `json:"client_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type ClientPatch struct {
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	ClientType *string `json:"client_type"`
}

func (p *ClientPatch) Apply(c *Client) {
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.ClientType != nil {
		c.ClientType = *p.ClientType
	}
}
