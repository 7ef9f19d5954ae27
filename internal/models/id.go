package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a remote identifier. The API serialises GraphQL IDs as strings and
// foreign keys such as carId as integers, so both forms decode into ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())

	return nil
}

func (id ID) String() string {
	return string(id)
}

// Int returns the numeric form the booking mutations expect.
func (id ID) Int() (int, error) {
	return strconv.Atoi(string(id))
}
