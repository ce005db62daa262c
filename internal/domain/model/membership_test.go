package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     time.Time
	}{
		{"thirty days", date(2024, time.January, 1), 30, date(2024, time.January, 31)},
		{"ninety days across leap february", date(2024, time.January, 1), 90, date(2024, time.March, 31)},
		{"one day", date(2024, time.January, 31), 1, date(2024, time.February, 1)},
		{"full year", date(2023, time.March, 15), 365, date(2024, time.March, 14)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEndDate(tt.start, tt.duration))
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	now := date(2024, time.June, 1)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"five days out", now.Add(5 * 24 * time.Hour), 5},
		{"partial day rounds up", now.Add(5*24*time.Hour + time.Hour), 6},
		{"exactly seven days", now.Add(7 * 24 * time.Hour), 7},
		{"eight days", now.Add(8 * 24 * time.Hour), 8},
		{"expires now", now, 0},
		{"already expired", now.Add(-36 * time.Hour), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilExpiry(tt.end, now))
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, Gender("male").Valid())
	assert.False(t, Gender("unknown").Valid())
	assert.True(t, MemberStatus("inactive").Valid())
	assert.False(t, MemberStatus("paused").Valid())
	assert.True(t, MembershipStatus("cancelled").Valid())
	assert.False(t, MembershipStatus("deleted").Valid())
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superadmin"))
}
