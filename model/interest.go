package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InterestList is a set of interest labels stored as a JSON column.
// Insertion order is kept for display but carries no meaning.
type InterestList []string

func (l InterestList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *InterestList) Scan(src interface{}) error {
	if src == nil {
		*l = InterestList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported interests column type %T", src)
	}

	if len(data) == 0 {
		*l = InterestList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
