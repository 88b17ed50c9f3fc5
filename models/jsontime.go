package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONTime wraps time.Time so we can control both
// JSON un/marshaling and SQL driver encoding. Clients send
// dates in several shapes (RFC3339, date-only, no timezone),
// all of which must land in the same column.
type JSONTime time.Time

var jsonTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseJSONTime(s string) (time.Time, error) {
	for _, layout := range jsonTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as time", s)
}

func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := parseJSONTime(s)
	if err != nil {
		return fmt.Errorf("JSONTime.UnmarshalJSON: %w", err)
	}
	*jt = JSONTime(t)
	return nil
}

// MarshalJSON always emits full RFC3339.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(jt).Format(time.RFC3339))
}

// Value implements driver.Valuer so GORM can bind JSONTime
// as a timestamp parameter.
func (jt JSONTime) Value() (driver.Value, error) {
	return time.Time(jt), nil
}

// Scan implements sql.Scanner so GORM can read timestamps
// back into JSONTime when querying.
func (jt *JSONTime) Scan(src interface{}) error {
	if src == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}
	switch v := src.(type) {
	case time.Time:
		*jt = JSONTime(v)
		return nil
	case []byte:
		t, err := parseJSONTime(string(v))
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: %w", err)
		}
		*jt = JSONTime(t)
		return nil
	case string:
		t, err := parseJSONTime(v)
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: %w", err)
		}
		*jt = JSONTime(t)
		return nil
	default:
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", src)
	}
}

// GormDBDataType picks the timestamp column type per dialect so the
// same models migrate on postgres and on the sqlite test databases.
func (JSONTime) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "timestamptz"
	default:
		return "datetime"
	}
}

func (jt JSONTime) Time() time.Time { return time.Time(jt) }
