package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Thresholds(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysFrom int
		want     string
	}{
		{"yesterday is expired", -1, StatusExpired},
		{"today is danger, not expired", 0, StatusDanger},
		{"three days out is danger", 3, StatusDanger},
		{"four days out is warning", 4, StatusWarning},
		{"seven days out is warning", 7, StatusWarning},
		{"eight days out is safe", 8, StatusSafe},
		{"far future is safe", 120, StatusSafe},
		{"long expired", -40, StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := now.AddDate(0, 0, tt.daysFrom)
			assert.Equal(t, tt.want, Classify(expiry, now))
		})
	}
}

func TestClassify_TimeOfDayIndependent(t *testing.T) {
	expiry := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	morning := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Classify(expiry, morning), Classify(expiry, evening))

	// Same calendar expiry date at different clock times classifies the same.
	expiryLate := time.Date(2025, 6, 18, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, Classify(expiry, morning), Classify(expiryLate, morning))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysRemaining(now, now))
	assert.Equal(t, 1, DaysRemaining(now.AddDate(0, 0, 1), now))
	assert.Equal(t, -1, DaysRemaining(now.AddDate(0, 0, -1), now))

	// An expiry late tonight still counts as zero days out.
	tonight := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysRemaining(tonight, now))
}

func TestClassify_ZoneIndependent(t *testing.T) {
	// Expiry dates arrive as bare YYYY-MM-DD strings and parse to UTC
	// midnight, while now is server-local. The classification must only
	// see the calendar dates, whatever zone the server runs in.
	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, west)

	fourOut, err := time.Parse("2006-01-02", "2026-03-14")
	assert.NoError(t, err)
	assert.Equal(t, 4, DaysRemaining(fourOut, now))
	assert.Equal(t, StatusWarning, Classify(fourOut, now))

	eightOut, err := time.Parse("2006-01-02", "2026-03-18")
	assert.NoError(t, err)
	assert.Equal(t, 8, DaysRemaining(eightOut, now))
	assert.Equal(t, StatusSafe, Classify(eightOut, now))

	east := time.FixedZone("UTC+13", 13*60*60)
	earlyMorning := time.Date(2026, 3, 10, 0, 30, 0, 0, east)
	tomorrow, err := time.Parse("2006-01-02", "2026-03-11")
	assert.NoError(t, err)
	assert.Equal(t, 1, DaysRemaining(tomorrow, earlyMorning))
	assert.Equal(t, StatusDanger, Classify(tomorrow, earlyMorning))
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "expires today", Phrase(0))
	assert.Equal(t, "expires tomorrow", Phrase(1))
	assert.Equal(t, "expires in 3 days", Phrase(3))
	assert.Equal(t, "expired 1 day ago", Phrase(-1))
	assert.Equal(t, "expired 5 days ago", Phrase(-5))
}
