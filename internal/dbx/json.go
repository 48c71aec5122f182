package dbx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONColumn adapts a Go value for a jsonb column. As a query argument it
// marshals the value; as a scan target it unmarshals into the pointer it
// wraps.
//
//	row.Scan(&p.ID, dbx.JSON(&p.Categories))
//	db.ExecContext(ctx, q, dbx.JSON(p.Categories))
type JSONColumn struct {
	v any
}

// JSON wraps v. Pass a pointer when scanning.
func JSON(v any) JSONColumn {
	return JSONColumn{v: v}
}

// Value implements driver.Valuer.
func (j JSONColumn) Value() (driver.Value, error) {
	b, err := json.Marshal(j.v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j JSONColumn) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
	if err := json.Unmarshal(b, j.v); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
