package calendar

import "time"

var weekdayJA = [...]string{
	time.Sunday:    "日",
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
}

// WeekdayJA returns the one-character Japanese name of the date's weekday.
func WeekdayJA(t time.Time) string {
	return weekdayJA[t.Weekday()]
}
