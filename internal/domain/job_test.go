package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/fieldops/crew-scheduler/pkg/util/errorutil"
)

func mustJob(t *testing.T, name string, start, end time.Time) *Job {
	t.Helper()
	j, err := NewJob(name, start, end)
	require.NoError(t, err)
	return j
}

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 30, hour, min, 0, 0, time.UTC)
}

func TestNewJob(t *testing.T) {
	t.Parallel()

	j := mustJob(t, "  Morning Shift  ", at(8, 0), at(16, 0))
	require.True(t, strings.HasPrefix(j.ID, "JOB"))
	require.Equal(t, "Morning Shift", j.Name)
	require.InDelta(t, 8.0, j.DurationHours(), 1e-9)
}

func TestNewJobValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		jobName string
		start   time.Time
		end     time.Time
	}{
		{"empty name", "   ", at(8, 0), at(16, 0)},
		{"name too short", "ab", at(8, 0), at(16, 0)},
		{"name too long", strings.Repeat("a", 201), at(8, 0), at(16, 0)},
		{"end equals start", "Morning Shift", at(8, 0), at(8, 0)},
		{"end before start", "Morning Shift", at(16, 0), at(8, 0)},
		{"below minimum duration", "Morning Shift", at(8, 0), at(8, 15)},
		{"above maximum duration", "Marathon Shift", at(8, 0), at(8, 0).Add(25 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewJob(tt.jobName, tt.start, tt.end)
			require.Error(t, err)

			var de *apperrors.DomainError
			require.ErrorAs(t, err, &de)
			require.Equal(t, "VALIDATION_FAILED", de.Code)
		})
	}
}

func TestNewJobNameLengthCountsRunes(t *testing.T) {
	t.Parallel()

	_, err := NewJob(strings.Repeat("é", 200), at(8, 0), at(16, 0))
	require.NoError(t, err)
	_, err = NewJob(strings.Repeat("é", 201), at(8, 0), at(16, 0))
	require.Error(t, err)
}

func TestNewJobDurationBounds(t *testing.T) {
	t.Parallel()

	// Exactly 30 minutes and exactly 24 hours are both allowed.
	_, err := NewJob("Short Shift", at(8, 0), at(8, 30))
	require.NoError(t, err)
	_, err = NewJob("Full Day Shift", at(0, 0), at(0, 0).Add(24*time.Hour))
	require.NoError(t, err)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		start1, end1, start2, end2 time.Time
		want                       bool
	}{
		{"disjoint", at(8, 0), at(10, 0), at(12, 0), at(14, 0), false},
		{"touching edges do not overlap", at(8, 0), at(16, 0), at(16, 0), at(23, 0), false},
		{"touching edges reversed", at(16, 0), at(23, 0), at(8, 0), at(16, 0), false},
		{"partial overlap", at(8, 0), at(16, 0), at(15, 0), at(23, 0), true},
		{"contained", at(8, 0), at(16, 0), at(10, 0), at(12, 0), true},
		{"identical", at(8, 0), at(16, 0), at(8, 0), at(16, 0), true},
		{"one minute overlap", at(8, 0), at(16, 1), at(16, 0), at(23, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Overlaps(tt.start1, tt.end1, tt.start2, tt.end2)
			require.Equal(t, tt.want, got)
			// Overlap is symmetric.
			require.Equal(t, tt.want, Overlaps(tt.start2, tt.end2, tt.start1, tt.end1))
		})
	}
}

func TestJobOverlapsWith(t *testing.T) {
	t.Parallel()

	a := mustJob(t, "Morning Shift", at(8, 0), at(16, 0))
	b := mustJob(t, "Evening Shift", at(15, 0), at(23, 0))
	c := mustJob(t, "Night Shift", at(16, 0), at(23, 0))

	require.True(t, a.OverlapsWith(b))
	require.False(t, a.OverlapsWith(c))
}
