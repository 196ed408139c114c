package models

// OwnershipType is a reference entry keyed by its code, e.g. "private"
// or "joint".
type OwnershipType struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// OwnershipTypePatch cannot rewrite the code: it is the identity.
type OwnershipTypePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p *OwnershipTypePatch) Apply(t *OwnershipType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = p.Description
	}
}
