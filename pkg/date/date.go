// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar-day type shared by the JSON API and the
PostgreSQL DATE columns.

[Date] marshals as "2006-01-02" and implements the pgtype DateScanner and
DateValuer interfaces, so pgx reads and writes it without conversion code in
the repositories. A nil *Date maps to SQL NULL and JSON null.
*/
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/taibuivan/hojadevida/pkg/pointer"
)

// Layout is the wire format of a [Date].
const Layout = "2006-01-02"

// Date is a day without time of day or location.
type Date struct {
	time.Time
}

// New returns the Date for the given calendar day.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates t to its calendar day.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day in local time.
func Today() Date {
	return Of(time.Now())
}

// Parse reads a "2006-01-02" string.
func Parse(value string) (Date, error) {
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return Date{Time: parsed}, nil
}

// String renders the date in [Layout].
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// Ptr returns the underlying time of a set date, or nil.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	return pointer.To(d.Time)
}

// # JSON

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. Empty strings and null leave
// the zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// # PostgreSQL

// ScanDate implements pgtype.DateScanner.
func (d *Date) ScanDate(value pgtype.Date) error {
	if !value.Valid {
		*d = Date{}
		return nil
	}
	*d = Of(value.Time)
	return nil
}

// DateValue implements pgtype.DateValuer.
func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() {
		return pgtype.Date{}, nil
	}
	return pgtype.Date{Time: d.Time, Valid: true}, nil
}
