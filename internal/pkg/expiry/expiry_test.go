package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		unit     string
		want     int64
	}{
		{"seconds", "5", "seconds", 5},
		{"minutes", "5", "minutes", 300},
		{"hours", "2", "hours", 7200},
		{"days", "3", "days", 259200},
		{"short unit forms", "5", "m", 300},
		{"negative coerced to absolute", "-5", "seconds", 5},
		{"missing quantity defaults to 60", "", "seconds", 60},
		{"non-numeric quantity defaults to 60", "soon", "seconds", 60},
		{"unknown unit counts as minutes", "2", "fortnights", 120},
		{"everything missing", "", "", 3600},
		{"zero stays zero", "0", "days", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Seconds(tt.quantity, tt.unit))
		})
	}
}

func TestSecondsNeverNegative(t *testing.T) {
	require.Equal(t, Seconds("5", "days"), Seconds("-5", "days"))
	require.GreaterOrEqual(t, Seconds("-9999", "hours"), int64(0))
}

func TestAt(t *testing.T) {
	now := time.Unix(1700000000, 0)
	require.Equal(t, now.Unix()+300, At(now, "5", "minutes"))
	require.Equal(t, now.Unix()+60, At(now, "", "seconds"))
}

func TestRemaining(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		name string
		diff int64
		want string
	}{
		{"expired long ago", -86400 * 30, "Expired"},
		{"expired one second ago", -1, "Expired"},
		{"exactly now", 0, "1 minute"},
		{"under a minute", 30, "1 minute"},
		{"ninety seconds", 90, "1 minute"},
		{"two minutes", 120, "2 minutes"},
		{"hour and a bit", 3661, "1 hour, 1 minute"},
		{"hours with zero minutes", 7200, "2 hours, 0 minutes"},
		{"full form", 90061, "1 day, 1 hour, 1 minute"},
		{"days with zero rest", 172800, "2 days, 0 hours, 0 minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Remaining(now.Unix()+tt.diff, now))
		})
	}
}
