package bookings

import (
	"regexp"
	"testing"
	"time"

	"wayfare/internal/travel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferenceFormat(t *testing.T) {
	at := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^[A-Z]{2}\d{12}[A-Z0-9]{4}$`)

	tests := []struct {
		travelType travel.TravelType
		prefix     string
	}{
		{travel.TypeFlight, "FL"},
		{travel.TypeTrain, "TR"},
		{travel.TypeBus, "BU"},
	}

	for _, tt := range tests {
		t.Run(string(tt.travelType), func(t *testing.T) {
			ref, err := GenerateReference(tt.travelType, at)
			require.NoError(t, err)

			assert.Len(t, ref, 18)
			assert.Regexp(t, pattern, ref)
			assert.Equal(t, tt.prefix, ref[:2])
			assert.Equal(t, "202601151430", ref[2:14])
		})
	}
}

func TestGenerateReferenceSuffixVaries(t *testing.T) {
	at := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		ref, err := GenerateReference(travel.TypeFlight, at)
		require.NoError(t, err)
		seen[ref] = true
	}

	// 36^4 suffixes for a fixed minute; 10k draws should stay comfortably
	// below heavy collision. The generator never promises full uniqueness,
	// the database constraint does.
	assert.Greater(t, len(seen), 9900)
}

func TestGenerateReferenceUsesMinutePrecision(t *testing.T) {
	a := time.Date(2026, 1, 15, 14, 30, 1, 0, time.UTC)
	b := time.Date(2026, 1, 15, 14, 30, 59, 0, time.UTC)

	refA, err := GenerateReference(travel.TypeBus, a)
	require.NoError(t, err)
	refB, err := GenerateReference(travel.TypeBus, b)
	require.NoError(t, err)

	assert.Equal(t, refA[2:14], refB[2:14])
}
