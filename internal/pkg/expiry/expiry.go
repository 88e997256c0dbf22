// Package expiry converts share duration requests into absolute expiry
// instants and renders the time left on a share for display.
package expiry

import (
	"fmt"
	"strconv"
	"time"
)

const defaultQuantity = 60

var multipliers = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,

	"seconds": 1,
	"minutes": 60,
	"hours":   3600,
	"days":    86400,
}

// Seconds resolves a (quantity, unit) request into a non-negative duration in
// seconds. A missing or non-numeric quantity falls back to 60, negative values
// are coerced with absolute value, and an unrecognized unit counts as minutes.
func Seconds(quantity, unit string) int64 {
	qty := int64(defaultQuantity)
	if parsed, err := strconv.ParseInt(quantity, 10, 64); err == nil {
		qty = parsed
	}
	if qty < 0 {
		qty = -qty
	}
	mult := int64(60)
	if m, ok := multipliers[unit]; ok {
		mult = m
	}
	return qty * mult
}

// At returns the absolute unix expiry instant for a share created or extended
// at now.
func At(now time.Time, quantity, unit string) int64 {
	return now.Unix() + Seconds(quantity, unit)
}

// Remaining renders the time left until expiresAt in whole days, hours and
// minutes. Seconds are never shown; a positive remainder under one minute
// reads "1 minute" rather than "0 minutes".
func Remaining(expiresAt int64, now time.Time) string {
	diff := expiresAt - now.Unix()
	if diff < 0 {
		return "Expired"
	}
	days := diff / 86400
	hours := (diff - days*86400) / 3600
	minutes := (diff - days*86400 - hours*3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%s, %s, %s", plural(days, "day"), plural(hours, "hour"), plural(minutes, "minute"))
	case hours > 0:
		return fmt.Sprintf("%s, %s", plural(hours, "hour"), plural(minutes, "minute"))
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "1 minute"
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
