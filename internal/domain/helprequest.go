package domain

import (
	"fmt"
	"strings"
	"time"
)

// HelpRequest is a store's request for help on a date. HelpTime is free text
// such as "10-15"; empty means no request.
type HelpRequest struct {
	Date      time.Time
	Store     string
	HelpTime  string
	UpdatedAt *time.Time
}

func (h *HelpRequest) Validate() error {
	if h.Date.IsZero() {
		return fmt.Errorf("request date is required")
	}
	if strings.TrimSpace(h.Store) == "" {
		return fmt.Errorf("store is required")
	}
	return nil
}

// Requested reports whether the store actually asked for help.
func (h *HelpRequest) Requested() bool {
	t := strings.TrimSpace(h.HelpTime)
	return t != "" && t != "-"
}
