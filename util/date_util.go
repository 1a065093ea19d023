package util

import "time"

var (
	reportLayout  = "02/01/2006\n15:04"
	displayLayout = "02/01/2006 15:04:05"
	dayLayout     = "2006-01-02"
)

// IST is the market timezone. Price points are day-stamped in IST.
var IST = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// NormalizeDay truncates t to midnight of its IST calendar day.
func NormalizeDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// Today returns the current IST day at midnight.
func Today() time.Time {
	return NormalizeDay(time.Now())
}

// SameDay reports whether a and b fall on the same IST calendar day.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b))
}

// ParseDay parses a yyyy-mm-dd string as an IST day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, IST)
}

// FormatReportTime renders a timestamp for report table cells, date and
// time on separate lines.
func FormatReportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(IST).Format(reportLayout)
}

// FormatDisplayTime renders a timestamp for flat exports and JSON rows.
func FormatDisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(IST).Format(displayLayout)
}
