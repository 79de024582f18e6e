// Package biztime keeps every stored timestamp in UTC and uses the business
// timezone only to compute calendar boundaries such as "today".
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the business timezone used when none is configured.
const DefaultTimezone = "Asia/Kolkata"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
	nowFunc     = time.Now
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		return time.UTC
	}
	return Location()
}

// NowUTC returns the current time in UTC, truncated to milliseconds to match
// the storage precision.
func NowUTC() time.Time {
	mu.RLock()
	f := nowFunc
	mu.RUnlock()
	return f().UTC().Truncate(time.Millisecond)
}

// SetNowFunc overrides the clock. It returns a function restoring the previous clock.
func SetNowFunc(f func() time.Time) (restore func()) {
	mu.Lock()
	prev := nowFunc
	nowFunc = f
	mu.Unlock()
	return func() {
		mu.Lock()
		nowFunc = prev
		mu.Unlock()
	}
}

// StartOfDayUTC returns midnight of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	biz := t.In(Location())
	return time.Date(biz.Year(), biz.Month(), biz.Day(), 0, 0, 0, 0, Location()).UTC()
}

// FromMillis converts a stored epoch-millisecond value back to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatRFC3339 formats t in UTC for API payloads.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
