// Package expiry maps an expiry date to a freshness status.
package expiry

import (
	"fmt"
	"time"
)

// Policy constants.
const (
	// FrozenThresholdDays is the headroom above which a frozen item is shown
	// as frozen instead of on the freshness scale.
	FrozenThresholdDays = 30
	// WarningWindowDays is how many days before expiry an item is "soon".
	WarningWindowDays = 3
	// DateLayout is used for "expires on" texts.
	DateLayout = "2006-01-02"
)

// Severity is the freshness bucket of an item.
type Severity string

// Severity buckets.
const (
	SeverityFrozen  Severity = "frozen"
	SeverityFresh   Severity = "fresh"
	SeveritySoon    Severity = "soon"
	SeverityExpired Severity = "expired"
)

// Display icons per severity.
const (
	IconSnowflake = "fa-snowflake"
	IconWarning   = "fa-triangle-exclamation"
	IconHourglass = "fa-hourglass-half"
	IconLeaf      = "fa-leaf"
)

// Status describes how an item is doing.
type Status struct {
	Text     string
	Severity Severity
	Icon     string
	DaysLeft int
}

// Classify computes the status of an item expiring at expiryDate as seen at now.
// Both times are reduced to their calendar date in now's location first.
func Classify(expiryDate time.Time, isFrozen bool, now time.Time) Status {
	days := DaysBetween(now, expiryDate)

	switch {
	case isFrozen && days > FrozenThresholdDays:
		return Status{
			Text:     "expires on " + expiryDate.In(now.Location()).Format(DateLayout),
			Severity: SeverityFrozen,
			Icon:     IconSnowflake,
			DaysLeft: days,
		}
	case days < 0:
		return Status{
			Text:     fmt.Sprintf("expired %d days ago", -days),
			Severity: SeverityExpired,
			Icon:     IconWarning,
			DaysLeft: days,
		}
	case days == 0:
		return Status{
			Text:     "expires today",
			Severity: SeverityExpired,
			Icon:     IconWarning,
			DaysLeft: days,
		}
	case days <= WarningWindowDays:
		return Status{
			Text:     fmt.Sprintf("expires in %d days", days),
			Severity: SeveritySoon,
			Icon:     IconHourglass,
			DaysLeft: days,
		}
	default:
		return Status{
			Text:     "expires on " + expiryDate.In(now.Location()).Format(DateLayout),
			Severity: SeverityFresh,
			Icon:     IconLeaf,
			DaysLeft: days,
		}
	}
}

// DaysBetween returns the number of calendar days from from to to, using
// from's location. Time of day is ignored, so DST shifts never add a day.
func DaysBetween(from, to time.Time) int {
	loc := from.Location()
	a := dateOnly(from, loc)
	b := dateOnly(to.In(loc), loc)
	return int(b.Sub(a).Hours() / 24)
}

// dateOnly re-anchors t's calendar date at UTC midnight so that differences
// are exact multiples of 24h.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
