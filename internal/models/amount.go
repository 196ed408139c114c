package models

import (
	"encoding/json"
	"fmt"
)

// Amount is a monetary value carried as the exact decimal text of the
// numeric column. Clients send it either as a JSON number or as a string;
// both decode to the same representation, and it always serializes back as
// a string.
type Amount string

func (a Amount) String() string { return string(a) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*a = Amount(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}
