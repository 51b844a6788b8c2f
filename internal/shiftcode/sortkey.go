package shiftcode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ErrMalformedTime is matched by every *TimeFormatError.
var ErrMalformedTime = errors.New("malformed time")

// TimeFormatError identifies a time token that cannot be turned into a start
// time. Date, Employee and Store are filled in by callers that know them.
type TimeFormatError struct {
	Token    string
	Date     string
	Employee string
	Store    string
}

func (e *TimeFormatError) Error() string {
	msg := fmt.Sprintf("malformed time %q", e.Token)
	if e.Date != "" {
		msg += " on " + e.Date
	}
	if e.Employee != "" {
		msg += " for " + e.Employee
	}
	if e.Store != "" {
		msg += " at " + e.Store
	}
	return msg + " (expected H, H半, H:MM or a range like 10-12)"
}

func (e *TimeFormatError) Is(target error) bool {
	return target == ErrMalformedTime
}

var hourMinute = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// StartMinute converts a time token to minutes after midnight of its start:
// "10-12" is 600, "9半" is 570, "13" is 780.
func StartMinute(token string) (int, error) {
	s := width.Narrow.String(strings.TrimSpace(token))
	if i := strings.IndexAny(s, "-~"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = strings.Replace(s, "時", "", 1)
	s = strings.Replace(s, "半", ":30", 1)
	if !strings.Contains(s, ":") {
		s += ":00"
	}

	m := hourMinute.FindStringSubmatch(s)
	if m == nil {
		return 0, &TimeFormatError{Token: token}
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 24 || mm > 59 {
		return 0, &TimeFormatError{Token: token}
	}
	return h*60 + mm, nil
}
