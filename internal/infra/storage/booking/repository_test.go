package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/pkg/ptr"
	"github.com/m04kA/EV-ChargingService/pkg/types"
)

const selectColumns = "SELECT id, user_id, charging_point_id, booking_date, start_time, end_time, status, created_at, updated_at FROM bookings"

func TestOverlappingQuery(t *testing.T) {
	window := types.TimeRange{Start: "09:00", End: "10:00"}
	q := domain.OverlapQuery{
		ChargingPointID:  7,
		Date:             time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Window:           &window,
		ExcludeBookingID: ptr.Ptr(int64(3)),
	}

	query, args, err := overlappingQuery(q, true).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE booking_date = $1 AND charging_point_id = $2 AND status IN ($3,$4)"+
		" AND (start_time < $5 AND end_time > $6) AND id <> $7"+
		" ORDER BY start_time ASC, id ASC FOR UPDATE", query)
	assert.Equal(t, []interface{}{
		"2024-05-01", int64(7), "scheduled", "active",
		types.TimeString("10:00"), types.TimeString("09:00"), int64(3),
	}, args)
}

func TestOverlappingQuery_WholeDayWithoutLock(t *testing.T) {
	q := domain.OverlapQuery{
		ChargingPointID: 7,
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	query, _, err := overlappingQuery(q, false).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "start_time <")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Contains(t, query, "status IN ($3,$4)")
}

func TestStaleQuery(t *testing.T) {
	cutoff := time.Date(2024, 5, 1, 9, 50, 30, 0, time.UTC)

	query, args, err := staleQuery(cutoff).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE status = $1 AND (booking_date < $2 OR (booking_date = $3 AND start_time < $4))"+
		" ORDER BY booking_date ASC, start_time ASC, id ASC", query)
	assert.Equal(t, []interface{}{
		domain.StatusScheduled, "2024-05-01", "2024-05-01", types.TimeString("09:50"),
	}, args)
}

func TestFilterQuery(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	status := domain.StatusScheduled

	query, args, err := filterQuery(domain.BookingsFilter{
		ChargingPointID: ptr.Ptr(int64(2)),
		Date:            &date,
		Status:          &status,
		Limit:           10,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, selectColumns+
		" WHERE charging_point_id = $1 AND booking_date = $2 AND status = $3"+
		" ORDER BY start_time ASC, id ASC LIMIT 10", query)
	assert.Equal(t, []interface{}{int64(2), "2024-05-01", domain.StatusScheduled}, args)

	query, args, err = filterQuery(domain.BookingsFilter{}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" ORDER BY booking_date DESC, start_time DESC, id DESC", query)
	assert.Empty(t, args)
}
