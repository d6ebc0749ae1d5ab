package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PrescriptionStatus represents the fulfillment state of a prescription.
type PrescriptionStatus int

const (
	PrescriptionPending   PrescriptionStatus = 0
	PrescriptionFilled    PrescriptionStatus = 1
	PrescriptionCancelled PrescriptionStatus = 2
)

func (s PrescriptionStatus) String() string {
	names := [...]string{"PENDING", "FILLED", "CANCELLED"}
	if int(s) < 0 || int(s) >= len(names) {
		return "PENDING"
	}
	return names[s]
}

func (s PrescriptionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PrescriptionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PrescriptionStatus(i)
		return nil
	}
	switch str {
	case "PENDING":
		*s = PrescriptionPending
	case "FILLED":
		*s = PrescriptionFilled
	case "CANCELLED":
		*s = PrescriptionCancelled
	}
	return nil
}

func (s PrescriptionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PrescriptionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PrescriptionPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PrescriptionStatus(v)
	case int:
		*s = PrescriptionStatus(v)
	}
	return nil
}
