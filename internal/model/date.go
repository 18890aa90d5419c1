package model

import (
	"encoding/json"
	"time"

	"github.com/questx-lab/person-api/pkg/dateutil"
)

// Date is a calendar date. It is written as YYYY-MM-DD and held as midnight UTC.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: dateutil.TruncateToDate(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateutil.DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := dateutil.ParseDate(s)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}
