package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange_ExtendedSubstitution(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rng, err := ResolveDateRange("", "", now)
	require.NoError(t, err)

	assert.True(t, rng.Extended)
	assert.Equal(t, now, rng.End)
	assert.Equal(t, now.Add(-90*24*time.Hour), rng.Start)
}

func TestResolveDateRange_ExplicitBounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "start only defaults end to now",
			start:     "2025-05-01T00:00:00Z",
			wantStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   now,
		},
		{
			name:      "end only defaults start to trailing 30 days",
			end:       "2025-05-20T00:00:00Z",
			wantStart: now.Add(-30 * 24 * time.Hour),
			wantEnd:   time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "both bounds honored",
			start:     "2025-04-01T00:00:00Z",
			end:       "2025-04-15T00:00:00Z",
			wantStart: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "bare calendar date accepted",
			start:     "2025-05-10",
			wantStart: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveDateRange(tt.start, tt.end, now)
			require.NoError(t, err)

			assert.False(t, rng.Extended, "explicit bounds must never trigger the extended substitution")
			assert.True(t, rng.Start.Equal(tt.wantStart), "start got %v, want %v", rng.Start, tt.wantStart)
			assert.True(t, rng.End.Equal(tt.wantEnd), "end got %v, want %v", rng.End, tt.wantEnd)
		})
	}
}

func TestResolveDateRange_InvalidBounds(t *testing.T) {
	now := time.Now()

	_, err := ResolveDateRange("not-a-date", "", now)
	assert.Error(t, err)

	_, err = ResolveDateRange("", "13/01/2025", now)
	assert.Error(t, err)
}
