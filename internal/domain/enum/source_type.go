package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SourceType identifies where a debt originated. Manual debts have no
// linked source transaction.
type SourceType string

const (
	SourceTypeExpense   SourceType = "expense"
	SourceTypePurchase  SourceType = "purchase"
	SourceTypeTransport SourceType = "transport"
	SourceTypeManual    SourceType = "manual"
)

func (t SourceType) String() string {
	return string(t)
}

func (t SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *SourceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = SourceType(str)
	return nil
}

func (t SourceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *SourceType) Scan(value interface{}) error {
	if value == nil {
		*t = SourceTypeManual
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = SourceType(v)
	case []byte:
		*t = SourceType(string(v))
	}
	return nil
}
