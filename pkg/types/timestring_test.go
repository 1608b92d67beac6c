package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeString
		wantErr error
	}{
		{in: "09:00", want: "09:00"},
		{in: "09:00:00", want: "09:00"},
		{in: "23:59", want: "23:59"},
		{in: "24:00", want: "24:00"},
		{in: "24:00:00", want: "24:00"},
		{in: " 06:30 ", want: "06:30"},
		{in: "24:01", wantErr: ErrTimeOutOfRange},
		{in: "9:00", wantErr: ErrInvalidTimeString},
		{in: "09:60", wantErr: ErrInvalidTimeString},
		{in: "25:00", wantErr: ErrInvalidTimeString},
		{in: "ab:cd", wantErr: ErrInvalidTimeString},
		{in: "", wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, MinutesPerDay, TimeString("24:00").Minutes())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("21:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	a, b := TimeString("09:00"), TimeString("10:30")
	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.Equal(t, 90, a.MinutesUntil(b))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), TimeString("09:30").On(date))
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), TimeString("24:00").On(date))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:05:00"))
	assert.Equal(t, TimeString("14:05"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 22, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("22:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("10:99").Value()
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	assert.Equal(t, TimeString("07:05"), NewTimeString(time.Date(2024, 1, 1, 7, 5, 59, 0, time.UTC)))
}
