package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONChecks stores a check list as a JSON column in PostgreSQL.
type JSONChecks []CheckResult

// Value implements the driver.Valuer interface for JSONChecks
func (j JSONChecks) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONChecks
func (j *JSONChecks) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}
