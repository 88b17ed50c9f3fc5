package utils

import (
	"strconv"
	"strings"

	"github.com/Shahid-Raza547/civiltech-backend/models"
)

// Web clients routinely submit "", "undefined" or "null" for fields
// they left blank. These helpers turn such tokens into true absence
// before anything reaches the database. They accept interface{}
// because the same JSON field may arrive as a string or as a number
// depending on the client.

func isAbsent(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "undefined", "null":
		return true
	}
	return false
}

// OptionalString returns nil for absent values, the trimmed string otherwise.
func OptionalString(v interface{}) *string {
	s, ok := v.(string)
	if !ok || isAbsent(s) {
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// OptionalFloat parses numeric strings and passes JSON numbers through.
// Absent or unparseable values become nil.
func OptionalFloat(v interface{}) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	case string:
		if isAbsent(x) {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// OptionalUint handles foreign-key references submitted as strings or numbers.
func OptionalUint(v interface{}) *uint {
	switch x := v.(type) {
	case float64:
		if x < 0 {
			return nil
		}
		u := uint(x)
		return &u
	case string:
		if isAbsent(x) {
			return nil
		}
		n, err := strconv.ParseUint(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil
		}
		u := uint(n)
		return &u
	default:
		return nil
	}
}

// OptionalDate parses date strings through the model's lenient layouts.
func OptionalDate(v interface{}) *models.JSONTime {
	s, ok := v.(string)
	if !ok || isAbsent(s) {
		return nil
	}
	var jt models.JSONTime
	if err := jt.Scan(strings.TrimSpace(s)); err != nil {
		return nil
	}
	return &jt
}

// CoerceFloat turns whatever the driver handed back into a float64,
// with non-numeric and absent values collapsing to zero. Chart series
// rely on this so a row never renders as NaN or null.
func CoerceFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case []byte:
		f, _ := strconv.ParseFloat(string(x), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	default:
		return 0
	}
}
