package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents the discount policy applied to a transaction.
// Exactly one selection is active per transaction.
type DiscountType int

const (
	DiscountNone      DiscountType = 0
	DiscountSeniorPWD DiscountType = 1
	DiscountCustom    DiscountType = 2
)

func (d DiscountType) IsValid() bool {
	return d >= DiscountNone && d <= DiscountCustom
}

func (d DiscountType) String() string {
	names := [...]string{"None", "SeniorPWD", "Custom"}
	if int(d) < 0 || int(d) >= len(names) {
		return "None"
	}
	return names[d]
}

func (d DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = DiscountType(i)
		return nil
	}
	switch str {
	case "None":
		*d = DiscountNone
	case "SeniorPWD":
		*d = DiscountSeniorPWD
	case "Custom":
		*d = DiscountCustom
	}
	return nil
}

func (d DiscountType) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*d = DiscountNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = DiscountType(v)
	case int:
		*d = DiscountType(v)
	}
	return nil
}
