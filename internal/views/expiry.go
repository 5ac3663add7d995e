package views

import (
	"fmt"
	"math"
	"time"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Expiry thresholds in days.
const (
	ExpiredBefore  = 0
	ExpiringWithin = 7
	WarningWithin  = 30
)

// ExpiryLevel classifies how close an item is to its expiry date.
type ExpiryLevel string

const (
	LevelExpired  ExpiryLevel = "expired"
	LevelExpiring ExpiryLevel = "expiring"
	LevelWarning  ExpiryLevel = "warning"
	LevelGood     ExpiryLevel = "good"
)

// ExpiryStatus is the level plus the day count. For expired items Days is the
// number of days since expiry.
type ExpiryStatus struct {
	Status ExpiryLevel `json:"status"`
	Days   int         `json:"days"`
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at midnight in loc. RFC3339 timestamps
// are accepted as well.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DaysUntil returns the number of days from now until expiry, rounded up.
// The result is negative once the date has passed.
func DaysUntil(expiry string, now time.Time) (int, error) {
	t, err := ParseDate(expiry, now.Location())
	if err != nil {
		return 0, err
	}
	days := math.Ceil(t.Sub(now).Hours() / 24)
	return int(days), nil
}

// Expiry classifies expiry relative to now.
func Expiry(expiry string, now time.Time) (ExpiryStatus, error) {
	days, err := DaysUntil(expiry, now)
	if err != nil {
		return ExpiryStatus{}, err
	}
	switch {
	case days < ExpiredBefore:
		return ExpiryStatus{Status: LevelExpired, Days: -days}, nil
	case days <= ExpiringWithin:
		return ExpiryStatus{Status: LevelExpiring, Days: days}, nil
	case days <= WarningWithin:
		return ExpiryStatus{Status: LevelWarning, Days: days}, nil
	}
	return ExpiryStatus{Status: LevelGood, Days: days}, nil
}

// ExpiringSoon returns the pantry items that expire within the given number
// of days, including items already expired. Items with unparsable dates are
// skipped.
func ExpiringSoon(items []types.PantryItem, now time.Time, within int) []types.PantryItem {
	var out []types.PantryItem
	for _, it := range items {
		days, err := DaysUntil(it.ExpiryDate, now)
		if err != nil {
			continue
		}
		if days <= within {
			out = append(out, it)
		}
	}
	return out
}

// LowStock returns the pantry items whose quantity is below their minimum.
func LowStock(items []types.PantryItem) []types.PantryItem {
	var out []types.PantryItem
	for _, it := range items {
		if it.Quantity < it.MinQuantity {
			out = append(out, it)
		}
	}
	return out
}
