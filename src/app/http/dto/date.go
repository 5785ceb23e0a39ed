package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"employeedir/src/core/domain"
)

// ErrInvalidHireDate is returned when a hireDate value is present but unparseable.
var ErrInvalidHireDate = errors.New("Invalid Hire Date.")

// acceptedDateLayouts are tried in order when decoding a Date.
var acceptedDateLayouts = []string{
	domain.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a calendar date encoded as "YYYY-MM-DD".
// Null, missing or empty values decode to the zero Date.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{Time: domain.DateOnly(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(domain.DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidHireDate
	}

	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = domain.DateOnly(t)
			return nil
		}
	}
	return ErrInvalidHireDate
}
