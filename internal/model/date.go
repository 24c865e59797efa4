package model

import (
	"fmt"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day such as a rental due date. It travels as
// "YYYY-MM-DD" and as null when zero.
type Date struct {
	time.Time
}

// DateOf drops the clock part of t, keeping its location.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}

	raw, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("date must be a string, got %s", s)
	}

	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return fmt.Errorf("date %q is not YYYY-MM-DD", raw)
	}
	d.Time = t
	return nil
}
