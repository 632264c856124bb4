package expiry

import (
	"fmt"
	"time"
)

const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusDanger  = "Danger"
	StatusExpired = "Expired"
)

// DaysRemaining returns the calendar-day difference between now and the
// expiry date. Each operand is reduced to the calendar date it carries
// and both dates are compared in one fixed frame, so the result depends
// on neither time of day nor the zones of the two values. Negative means
// already expired.
func DaysRemaining(expiryDate, now time.Time) int {
	expiry := calendarDay(expiryDate)
	today := calendarDay(now)
	return int(expiry.Sub(today).Hours() / 24)
}

// Classify maps an expiry date to a status category. An item expiring
// today is Danger, not Expired.
func Classify(expiryDate, now time.Time) string {
	days := DaysRemaining(expiryDate, now)
	switch {
	case days < 0:
		return StatusExpired
	case days <= 3:
		return StatusDanger
	case days <= 7:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// Phrase renders a day count the way reminder messages expect it.
func Phrase(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("expired %d days ago", -days)
	case days == -1:
		return "expired 1 day ago"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires tomorrow"
	default:
		return fmt.Sprintf("expires in %d days", days)
	}
}

// calendarDay pins a timestamp's own calendar date to UTC midnight. UTC
// carries no DST transitions, so differences between two such values are
// always whole multiples of 24 hours.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
