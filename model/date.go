package model

import (
	"fmt"
	"strings"
	"time"
)

// CustomDate holds a calendar day. The API sends either "2006-01-02" or a
// full timestamp; both decode to the date part.
type CustomDate struct {
	time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
}

func ParseDate(s string) (CustomDate, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CustomDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
		}
	}
	return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == `null` || str == `""` {
		*d = CustomDate{}
		return nil
	}
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// String formats for <input type="date">.
func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// LocalDateTime is the value of an <input type="datetime-local">, which the
// API also uses for schedule start and end times.
type LocalDateTime struct {
	time.Time
}

const localDateTimeLayout = "2006-01-02T15:04"

var dateTimeLayouts = []string{
	localDateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	time.RFC3339Nano,
}

func ParseDateTime(s string) (LocalDateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalDateTime{t}, nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("invalid datetime format: %s", s)
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "null" || str == "" {
		*d = LocalDateTime{}
		return nil
	}
	parsed, err := ParseDateTime(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02T15:04:05") + `"`), nil
}

func (d LocalDateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(localDateTimeLayout)
}
