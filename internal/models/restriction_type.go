package models

// RestrictionType is a reference entry keyed by its code, e.g. "mortgage"
// or "arrest".
type RestrictionType struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type RestrictionTypePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p *RestrictionTypePatch) Apply(t *RestrictionType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = p.Description
	}
}
