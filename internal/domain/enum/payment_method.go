package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a sale was paid.
type PaymentMethod int

const (
	PaymentCash  PaymentMethod = 0
	PaymentCard  PaymentMethod = 1
	PaymentOther PaymentMethod = 2
)

func (p PaymentMethod) String() string {
	names := [...]string{"CASH", "CARD", "OTHER"}
	if int(p) < 0 || int(p) >= len(names) {
		return "OTHER"
	}
	return names[p]
}

// ParsePaymentMethod maps a wire string to a PaymentMethod, defaulting to OTHER.
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "CASH":
		return PaymentCash
	case "CARD":
		return PaymentCard
	default:
		return PaymentOther
	}
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentMethod(i)
		return nil
	}
	*p = ParsePaymentMethod(str)
	return nil
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentMethod(v)
	case int:
		*p = PaymentMethod(v)
	}
	return nil
}
