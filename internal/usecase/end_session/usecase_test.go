package end_session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/testutil"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
	"github.com/m04kA/EV-ChargingService/pkg/metrics"
)

var (
	started = time.Date(2024, 6, 1, 9, 2, 0, 0, time.UTC)
	now     = time.Date(2024, 6, 1, 9, 50, 0, 0, time.UTC)
)

type env struct {
	store    *testutil.Store
	notifier *testutil.Notifier
	uc       *UseCase
	pointID  int64
	booking  *domain.Booking
	log      *domain.ChargingLog
}

func newEnv() *env {
	store := testutil.NewStore()
	notifier := &testutil.Notifier{}

	point := store.AddPoint(domain.PointInUse)
	booking := store.AddBooking(domain.Booking{
		UserID:          7,
		ChargingPointID: point.ID,
		BookingDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		EndTime:         "10:00",
		Status:          domain.StatusActive,
	})
	log := store.AddLog(domain.ChargingLog{
		BookingID:       booking.ID,
		UserID:          7,
		ChargingPointID: point.ID,
		StartTime:       started,
		Status:          domain.LogInProgress,
	})

	var m *metrics.Metrics
	uc := NewUseCase(
		testutil.BookingRepo{Store: store},
		testutil.StationRepo{Store: store},
		testutil.LogRepo{Store: store},
		notifier,
		m,
		testutil.NewTxManager(store),
		domain.DefaultBookingSettings(),
		logger.NewNop(),
	)
	uc.timeProvider = testutil.NewClock(now)

	return &env{store: store, notifier: notifier, uc: uc, pointID: point.ID, booking: booking, log: log}
}

func TestExecute(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 10})
	require.NoError(t, err)

	assert.Equal(t, 3.5, resp.Cost)
	assert.Equal(t, 10.0, resp.EnergyConsumed)
	assert.Equal(t, now, resp.EndTime)
	assert.Equal(t, started, resp.StartTime)
	assert.Equal(t, string(domain.LogCompleted), resp.Status)

	log := e.store.Log(e.log.ID)
	assert.Equal(t, domain.LogCompleted, log.Status)
	require.NotNil(t, log.EndTime)
	assert.Equal(t, 48*time.Minute, log.Duration())

	assert.Equal(t, domain.StatusCompleted, e.store.Booking(e.booking.ID).Status)
	assert.Equal(t, domain.PointAvailable, e.store.Point(e.pointID).Status)

	sent := e.notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, domain.NotificationSystem, sent[0].Type)
	assert.Equal(t, domain.SessionEndedMessage(10, 3.5), sent[0].Message)
}

func TestExecute_NextReservationKeepsPointReserved(t *testing.T) {
	e := newEnv()
	next := e.store.AddBooking(domain.Booking{
		UserID: 8, ChargingPointID: e.pointID, BookingDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00", EndTime: "11:00", Status: domain.StatusScheduled,
	})

	_, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 10})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, e.store.Booking(e.booking.ID).Status)
	assert.Equal(t, domain.StatusScheduled, e.store.Booking(next.ID).Status)
	assert.Equal(t, domain.PointReserved, e.store.Point(e.pointID).Status)
}

func TestExecute_CostRounding(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 0.12345})
	require.NoError(t, err)
	assert.Equal(t, 0.0432, resp.Cost)
}

func TestExecute_ZeroEnergy(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Cost)
}

func TestExecute_SecondEndIsInvalidState(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 10})
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 20})
	assert.ErrorIs(t, err, ErrSessionNotInProgress)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	log := e.store.Log(e.log.ID)
	assert.Equal(t, 10.0, log.EnergyConsumed)
	assert.Len(t, e.notifier.Sent(), 1)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		energy float64
	}{
		{name: "negative", energy: -0.1},
		{name: "too large", energy: domain.MaxEnergyKwh + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()

			_, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: tt.energy})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, domain.LogInProgress, e.store.Log(e.log.ID).Status)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.uc.Execute(context.Background(), &Request{LogID: 999, UserID: 7, EnergyConsumed: 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 8, EnergyConsumed: 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 8, IsAdmin: true, EnergyConsumed: 1})
	assert.NoError(t, err)
}

func TestExecute_StorageFailureRollsBack(t *testing.T) {
	e := newEnv()
	e.store.Fail("SyncPointStatus", context.DeadlineExceeded)

	_, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 5})
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	assert.Equal(t, domain.LogInProgress, e.store.Log(e.log.ID).Status)
	assert.Nil(t, e.store.Log(e.log.ID).EndTime)
	assert.Equal(t, domain.StatusActive, e.store.Booking(e.booking.ID).Status)
	assert.Equal(t, domain.PointInUse, e.store.Point(e.pointID).Status)
	assert.Empty(t, e.notifier.Sent())
}

func TestExecute_NotificationFailureKeepsResult(t *testing.T) {
	e := newEnv()
	e.notifier.Err = errors.New("redis down")

	_, err := e.uc.Execute(context.Background(), &Request{LogID: e.log.ID, UserID: 7, EnergyConsumed: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.LogCompleted, e.store.Log(e.log.ID).Status)
}
