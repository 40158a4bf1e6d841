package syntax

import (
	"database/sql/driver"
	"fmt"
)

// Stored as a 64-bit integer column.
func (c CIK) Value() (driver.Value, error) {
	return int64(c.v), nil
}

// Scans integer or text columns. NULL is an error; use *CIK for nullable columns.
func (c *CIK) Scan(src interface{}) error {
	var (
		cik CIK
		err error
	)
	switch v := src.(type) {
	case int64:
		if v < 0 {
			return fmt.Errorf("cannot scan negative value %d into CIK", v)
		}
		cik, err = CIKFromInteger(uint64(v))
	case uint64:
		cik, err = CIKFromInteger(v)
	case []byte:
		cik, err = ParseCIK(string(v))
	case string:
		cik, err = ParseCIK(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into CIK")
	default:
		return fmt.Errorf("cannot scan %T into CIK", src)
	}
	if err != nil {
		return err
	}
	*c = cik
	return nil
}
