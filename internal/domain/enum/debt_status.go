package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DebtStatus represents the lifecycle state of a debt. A paid debt is
// terminal; it is never reopened.
type DebtStatus string

const (
	DebtStatusUnpaid DebtStatus = "unpaid"
	DebtStatusPaid   DebtStatus = "paid"
)

func (s DebtStatus) String() string {
	return string(s)
}

func (s DebtStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *DebtStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = DebtStatus(str)
	return nil
}

func (s DebtStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *DebtStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DebtStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = DebtStatus(v)
	case []byte:
		*s = DebtStatus(string(v))
	}
	return nil
}
