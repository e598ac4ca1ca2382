package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Flag is a boolean the backend sends either as a JSON bool or as a
// string ("true", "false", "" and "0"/"1" seen in the wild).
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(value)
	case float64:
		*f = value != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "oui":
			*f = true
		case "", "false", "0", "no", "non":
			*f = false
		default:
			return fmt.Errorf("invalid flag value %q", value)
		}
	default:
		return fmt.Errorf("invalid flag value %v", value)
	}
	return nil
}
