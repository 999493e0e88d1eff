package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

var cst = loadCST()

func loadCST() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// TimeNowCST returns the current time in the exchange time zone (China Standard Time).
func TimeNowCST() time.Time {
	return time.Now().In(cst)
}

// ParseDate parses an ISO date (YYYY-MM-DD) as midnight exchange time, or an RFC3339 timestamp
// with its own offset.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, value, cst); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// PrettyDate formats t in exchange time for notifications.
func PrettyDate(t time.Time) string {
	return t.In(cst).Format("02 Jan 2006 15:04 MST")
}
