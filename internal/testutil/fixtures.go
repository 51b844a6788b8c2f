package testutil

import (
	"time"

	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// Date returns midnight UTC for y-m-d.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Shift options
type ShiftOption func(*domain.ShiftRecord)

func WithAbsentCode() ShiftOption {
	return func(s *domain.ShiftRecord) {
		s.Raw = shiftcode.Absent()
	}
}

func WithEmployee(name string) ShiftOption {
	return func(s *domain.ShiftRecord) {
		s.Employee = name
	}
}

// NewTestShift builds a record for 佐渡 unless overridden.
func NewTestShift(date time.Time, code string, opts ...ShiftOption) *domain.ShiftRecord {
	s := &domain.ShiftRecord{
		Date:     date,
		Employee: "佐渡",
		Raw:      shiftcode.RawOf(code),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Help request options
type HelpRequestOption func(*domain.HelpRequest)

func WithStore(store string) HelpRequestOption {
	return func(h *domain.HelpRequest) {
		h.Store = store
	}
}

// NewTestHelpRequest builds a request for 本店 unless overridden.
func NewTestHelpRequest(date time.Time, helpTime string, opts ...HelpRequestOption) *domain.HelpRequest {
	h := &domain.HelpRequest{
		Date:     date,
		Store:    "本店",
		HelpTime: helpTime,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
