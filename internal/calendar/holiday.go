package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// DefaultHolidaysURL serves {"YYYY-MM-DD": "name"} for Japanese holidays.
const DefaultHolidaysURL = "https://holidays-jp.github.io/api/v1/date.json"

// Holidays is a set of named public holidays keyed by date. It satisfies
// shiftcode.HolidayOracle. The zero value has no holidays.
type Holidays struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewHolidays builds a set from a date→name map.
func NewHolidays(names map[string]string) *Holidays {
	h := &Holidays{}
	h.Merge(names)
	return h
}

// IsHoliday reports whether date is a registered holiday.
func (h *Holidays) IsHoliday(date time.Time) bool {
	_, ok := h.Name(date)
	return ok
}

// Name returns the holiday name for date.
func (h *Holidays) Name(date time.Time) (string, bool) {
	if h == nil {
		return "", false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	name, ok := h.names[date.Format(DateLayout)]
	return name, ok
}

// Len returns the number of holidays known.
func (h *Holidays) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.names)
}

// Merge adds holidays, replacing names for dates already present.
func (h *Holidays) Merge(names map[string]string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.names == nil {
		h.names = make(map[string]string, len(names))
	}
	for d, n := range names {
		h.names[d] = n
	}
}

// LoadHolidaysFile reads a {"YYYY-MM-DD": "name"} JSON file.
func LoadHolidaysFile(path string) (*Holidays, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening holidays file: %w", err)
	}
	defer f.Close()
	names, err := decodeHolidays(f)
	if err != nil {
		return nil, fmt.Errorf("holidays file %s: %w", path, err)
	}
	return NewHolidays(names), nil
}

// FetchHolidays downloads the holiday feed at url.
func FetchHolidays(ctx context.Context, client *http.Client, url string) (*Holidays, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating holidays request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching holidays: unexpected status %d", resp.StatusCode)
	}
	names, err := decodeHolidays(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays: %w", err)
	}
	return NewHolidays(names), nil
}

func decodeHolidays(r io.Reader) (map[string]string, error) {
	var names map[string]string
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("decoding holidays: %w", err)
	}
	for d := range names {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q", d)
		}
	}
	return names, nil
}

// Names returns a copy of the date→name map.
func (h *Holidays) Names() map[string]string {
	out := make(map[string]string)
	if h == nil {
		return out
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for d, n := range h.names {
		out[d] = n
	}
	return out
}

// FetchHolidaysCached serves the feed from cachePath while it is younger
// than maxAge, refetching otherwise. A failed fetch falls back to a stale
// cache when one exists.
func FetchHolidaysCached(ctx context.Context, client *http.Client, url, cachePath string, maxAge time.Duration) (*Holidays, error) {
	info, statErr := os.Stat(cachePath)
	if statErr == nil && time.Since(info.ModTime()) < maxAge {
		if h, err := LoadHolidaysFile(cachePath); err == nil {
			return h, nil
		}
	}

	h, err := FetchHolidays(ctx, client, url)
	if err != nil {
		if statErr == nil {
			if stale, lerr := LoadHolidaysFile(cachePath); lerr == nil {
				return stale, nil
			}
		}
		return nil, err
	}

	if err := writeHolidaysFile(cachePath, h); err != nil {
		return h, fmt.Errorf("caching holidays: %w", err)
	}
	return h, nil
}

func writeHolidaysFile(path string, h *Holidays) error {
	b, err := json.MarshalIndent(h.Names(), "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
