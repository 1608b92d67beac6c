package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EV-ChargingService/pkg/types"
)

func TestFindConflict(t *testing.T) {
	booked := []*Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: StatusScheduled},
	}

	tests := []struct {
		name     string
		window   types.TimeRange
		conflict bool
	}{
		{"starts inside", types.TimeRange{Start: "09:30", End: "10:30"}, true},
		{"ends inside", types.TimeRange{Start: "08:30", End: "09:30"}, true},
		{"contained", types.TimeRange{Start: "09:15", End: "09:45"}, true},
		{"contains", types.TimeRange{Start: "08:00", End: "11:00"}, true},
		{"same window", types.TimeRange{Start: "09:00", End: "10:00"}, true},
		{"abuts after", types.TimeRange{Start: "10:00", End: "11:00"}, false},
		{"abuts before", types.TimeRange{Start: "08:00", End: "09:00"}, false},
		{"disjoint", types.TimeRange{Start: "12:00", End: "13:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(tt.window, booked, nil)
			assert.Equal(t, tt.conflict, got != nil)

			// пересечение симметрично
			reversed := []*Booking{{ID: 2, StartTime: tt.window.Start, EndTime: tt.window.End, Status: StatusActive}}
			got = FindConflict(booked[0].Window(), reversed, nil)
			assert.Equal(t, tt.conflict, got != nil)
		})
	}
}

func TestFindConflict_IgnoresTerminalAndExcluded(t *testing.T) {
	window := types.TimeRange{Start: "09:00", End: "10:00"}
	excluded := int64(2)

	bookings := []*Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: StatusCancelled},
		{ID: 2, StartTime: "09:00", EndTime: "10:00", Status: StatusScheduled},
		{ID: 3, StartTime: "09:00", EndTime: "10:00", Status: StatusNoShow},
		{ID: 4, StartTime: "09:00", EndTime: "10:00", Status: StatusCompleted},
	}

	assert.Nil(t, FindConflict(window, bookings, &excluded))
	assert.Equal(t, int64(2), FindConflict(window, bookings, nil).ID)
}
