package reminder

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "0 0 9 * * *"},
		{name: "evening", input: "18:30", want: "0 30 18 * * *"},
		{name: "midnight", input: "00:00", want: "0 0 0 * * *"},
		{name: "missing minute", input: "09", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:61", wantErr: true},
		{name: "not numeric", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := buildDailySpec(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestScheduleDailyRejectsBadTime(t *testing.T) {
	s := NewScheduler(time.UTC)
	_, err := s.ScheduleDaily("nonsense", func() {})
	assert.Error(t, err)
}

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	s := NewScheduler(time.UTC)
	_, err := s.ScheduleInterval(0, func() {})
	assert.Error(t, err)
	_, err = s.ScheduleInterval(-time.Minute, func() {})
	assert.Error(t, err)
}

func TestScheduleIntervalRuns(t *testing.T) {
	s := NewScheduler(time.UTC)

	var fired atomic.Int32
	_, err := s.ScheduleInterval(time.Second, func() {
		fired.Add(1)
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStopWaitsForRunningJobs(t *testing.T) {
	s := NewScheduler(time.UTC)
	s.Start()
	s.Stop() // must not deadlock with no jobs registered
}
