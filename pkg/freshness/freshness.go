package freshness

import (
	"fmt"
	"time"
)

const (
	StatusFresh   = "fresh"
	StatusSoon    = "soon"
	StatusExpired = "expired"
)

// DefaultSoonThresholdDays is the day count below which an item counts as
// expiring soon.
const DefaultSoonThresholdDays = 3

// dayNumber projects a time onto its calendar date, counted in whole days
// since the Unix epoch. Comparing day numbers instead of subtracting instants
// keeps the count exact when the two sides carry different locations (dates
// parsed from "2006-01-02" are UTC, time.Now() is local) or cross a DST shift.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// DaysUntil returns the whole calendar days from today to the expiration
// date, negative once past.
func DaysUntil(expirationDate, today time.Time) int {
	return dayNumber(expirationDate) - dayNumber(today)
}

// Classify returns the freshness status of an item given its expiration date.
// Both dates are normalized to their calendar day before comparison; time of
// day and location never affect the result. A zero expiration date is treated
// as fresh rather than failing, so a bad row cannot break a list render.
func Classify(expirationDate, today time.Time, soonThresholdDays int) string {
	if expirationDate.IsZero() {
		return StatusFresh
	}
	diffDays := DaysUntil(expirationDate, today)
	if diffDays < 0 {
		return StatusExpired
	}
	if diffDays <= soonThresholdDays {
		return StatusSoon
	}
	return StatusFresh
}

// RelativeDaysLabel renders the countdown shown next to an item: "Périmé"
// once past, "J-0" on the day itself, "J-N" before. Uses the same day
// normalization as Classify so the two never disagree.
func RelativeDaysLabel(expirationDate, today time.Time) string {
	if expirationDate.IsZero() {
		return "Date ?"
	}
	diff := DaysUntil(expirationDate, today)
	if diff < 0 {
		return "Périmé"
	}
	return fmt.Sprintf("J-%d", diff)
}

// FormatDateShort renders a DD/MM date.
func FormatDateShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}
