package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Open transactions live in a terminal's cart; Held transactions live in the
// hold/recall registry; Completed and Voided transactions are immutable sale
// records.
type TransactionStatus int

const (
	TransactionOpen      TransactionStatus = 0
	TransactionHeld      TransactionStatus = 1
	TransactionCompleted TransactionStatus = 2
	TransactionVoided    TransactionStatus = 3
)

func (s TransactionStatus) String() string {
	names := [...]string{"Open", "Held", "Completed", "Voided"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Open"
	}
	return names[s]
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = TransactionOpen
	case "Held":
		*s = TransactionHeld
	case "Completed":
		*s = TransactionCompleted
	case "Voided":
		*s = TransactionVoided
	}
	return nil
}

func (s TransactionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransactionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransactionOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransactionStatus(v)
	case int:
		*s = TransactionStatus(v)
	}
	return nil
}
