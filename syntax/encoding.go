package syntax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

func (c CIK) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CIK) UnmarshalText(text []byte) error {
	cik, err := ParseCIK(string(text))
	if err != nil {
		return err
	}
	*c = cik
	return nil
}

// CIKs are encoded as JSON numbers.
func (c CIK) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, c.v, 10), nil
}

// Accepts either a JSON number or a JSON string. A string goes through [ParseCIK], so leading zeros are allowed there.
func (c *CIK) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	// only plain non-negative integers; "-1", "1.0" and "1e3" are all rejected
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("CIK JSON value must be a non-negative integer or string, got %s", b)
	}
	cik, err := CIKFromInteger(v)
	if err != nil {
		return err
	}
	*c = cik
	return nil
}
