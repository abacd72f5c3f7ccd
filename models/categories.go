package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Categories is an ordered list of category names stored as JSON text.
//
// Reads never fail: NULL, malformed JSON, or JSON that is not a list of
// strings all decode to an empty list.
type Categories []string

// Value implements driver.Valuer
func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		c = Categories{}
	}
	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (c *Categories) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = Categories{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("categories: unsupported column type %T", src)
	}
	*c = ParseCategories(raw)
	return nil
}

// MarshalJSON keeps an empty list as [] rather than null
func (c Categories) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

// ParseCategories decodes JSON text into a list, falling back to an empty list.
func ParseCategories(raw []byte) Categories {
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return Categories{}
	}
	return Categories(out)
}
