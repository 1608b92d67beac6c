package start_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/testutil"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
	"github.com/m04kA/EV-ChargingService/pkg/metrics"
)

var now = time.Date(2024, 6, 1, 9, 2, 0, 0, time.UTC)

func newUseCase(store *testutil.Store) *UseCase {
	var m *metrics.Metrics
	uc := NewUseCase(
		testutil.BookingRepo{Store: store},
		testutil.StationRepo{Store: store},
		testutil.LogRepo{Store: store},
		m,
		testutil.NewTxManager(store),
		logger.NewNop(),
	)
	uc.timeProvider = testutil.NewClock(now)
	return uc
}

func addBooking(store *testutil.Store, pointID int64, status domain.BookingStatus) *domain.Booking {
	return store.AddBooking(domain.Booking{
		UserID:          7,
		ChargingPointID: pointID,
		BookingDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:00",
		Status:          status,
	})
}

func TestExecute(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointReserved)
	booking := addBooking(store, point.ID, domain.StatusScheduled)

	resp, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, booking.ID, resp.BookingID)
	assert.Equal(t, point.ID, resp.ChargingPointID)
	assert.Equal(t, now, resp.StartTime)
	assert.Equal(t, string(domain.LogInProgress), resp.Status)

	assert.Equal(t, domain.StatusActive, store.Booking(booking.ID).Status)
	assert.Equal(t, domain.PointInUse, store.Point(point.ID).Status)

	log := store.Log(resp.LogID)
	assert.Equal(t, domain.LogInProgress, log.Status)
	assert.Equal(t, int64(7), log.UserID)
	assert.Nil(t, log.EndTime)
}

func TestExecute_AdminStartsForeignBooking(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointReserved)
	booking := addBooking(store, point.ID, domain.StatusScheduled)

	_, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 1, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, store.Booking(booking.ID).Status)
}

func TestExecute_InvalidState(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			store := testutil.NewStore()
			point := store.AddPoint(domain.PointAvailable)
			booking := addBooking(store, point.ID, status)

			_, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 7})
			assert.ErrorIs(t, err, ErrInvalidStatus)
			assert.ErrorIs(t, err, domain.ErrInvalidState)

			assert.Equal(t, status, store.Booking(booking.ID).Status)
			assert.Equal(t, domain.PointAvailable, store.Point(point.ID).Status)
			assert.Empty(t, store.Logs)
		})
	}
}

func TestExecute_PointUnderMaintenance(t *testing.T) {
	store := testutil.NewStore()
	// Точку перевели на обслуживание, пока бронирование ждало начала
	point := store.AddPoint(domain.PointMaintenance)
	booking := addBooking(store, point.ID, domain.StatusScheduled)

	_, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 7})
	assert.ErrorIs(t, err, ErrPointUnderMaintenance)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, domain.StatusScheduled, store.Booking(booking.ID).Status)
	assert.Equal(t, domain.PointMaintenance, store.Point(point.ID).Status)
	assert.Empty(t, store.Logs)
}

func TestExecute_NotFound(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointReserved)
	booking := addBooking(store, point.ID, domain.StatusScheduled)
	uc := newUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 999, UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 8})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, domain.StatusScheduled, store.Booking(booking.ID).Status)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageFailureRollsBack(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointReserved)
	booking := addBooking(store, point.ID, domain.StatusScheduled)
	store.Fail("CreateLog", context.DeadlineExceeded)

	_, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 7})
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	assert.Equal(t, domain.StatusScheduled, store.Booking(booking.ID).Status)
	assert.Equal(t, domain.PointReserved, store.Point(point.ID).Status)
	assert.Empty(t, store.Logs)
}

func TestExecute_InternalError(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointReserved)
	booking := addBooking(store, point.ID, domain.StatusScheduled)
	store.Fail("SyncPointStatus", testutil.ErrInjected)

	_, err := newUseCase(store).Execute(context.Background(), &Request{BookingID: booking.ID, UserID: 7})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, domain.KindOf(err))
}
