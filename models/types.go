package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap stores free-form JSON objects (product specs, cart customization
// details) in a jsonb column. The contents are persisted and returned
// verbatim; the server never interprets them.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}
}

func (JSONMap) GormDataType() string { return "jsonb" }

// StringList stores a slice of strings as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

func (StringList) GormDataType() string { return "jsonb" }
