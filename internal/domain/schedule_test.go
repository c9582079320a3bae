package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo int
		want                   bool
	}{
		{name: "disjoint", aFrom: 540, aTo: 600, bFrom: 660, bTo: 720, want: false},
		{name: "touching endpoints do not overlap", aFrom: 540, aTo: 600, bFrom: 600, bTo: 660, want: false},
		{name: "partial overlap", aFrom: 540, aTo: 630, bFrom: 600, bTo: 660, want: true},
		{name: "contained", aFrom: 540, aTo: 720, bFrom: 600, bTo: 660, want: true},
		{name: "identical", aFrom: 540, aTo: 600, bFrom: 540, bTo: 600, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aFrom, tt.aTo, tt.bFrom, tt.bTo))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, RangesOverlap(tt.bFrom, tt.bTo, tt.aFrom, tt.aTo))
		})
	}
}

func TestMarginContains(t *testing.T) {
	margin := Margin{OpensAt: "09:00", ClosesAt: "13:00"}

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{name: "fits inside", start: 10 * 60, end: 11 * 60, want: true},
		{name: "exact fit", start: 9 * 60, end: 13 * 60, want: true},
		{name: "ends at close", start: 12 * 60, end: 13 * 60, want: true},
		{name: "spills past close", start: 12*60 + 30, end: 13*60 + 30, want: false},
		{name: "starts before open", start: 8 * 60, end: 9 * 60, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := margin.Contains(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDayIsOpen(t *testing.T) {
	enabled := Margin{Enabled: true, OpensAt: "09:00", ClosesAt: "13:00"}
	disabled := Margin{Enabled: false, OpensAt: "14:00", ClosesAt: "18:00"}

	day := WorkingDay{Weekday: time.Monday, Enabled: true, Margins: []Margin{enabled, disabled}}
	assert.True(t, day.IsOpen())
	assert.Len(t, day.EnabledMargins(), 1)

	day.Enabled = false
	assert.False(t, day.IsOpen())

	day.Enabled = true
	day.Margins = []Margin{disabled}
	assert.False(t, day.IsOpen())
}
