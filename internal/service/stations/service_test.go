package stations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
	"github.com/m04kA/EV-ChargingService/internal/service/stations/models"
	"github.com/m04kA/EV-ChargingService/internal/testutil"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

func newService(store *testutil.Store) *Service {
	return NewService(testutil.StationRepo{Store: store}, logger.NewNop())
}

func TestCatalogue(t *testing.T) {
	store := testutil.NewStore()
	svc := newService(store)
	ctx := context.Background()

	station, err := svc.CreateStation(ctx, &models.CreateStationRequest{Name: "Piazza Duomo", AddressCity: "Milano"})
	require.NoError(t, err)

	column, err := svc.CreateColumn(ctx, &models.CreateColumnRequest{
		StationID: station.ID, ColumnNumber: 1, PowerKW: 50, ConnectorType: "CCS2",
	})
	require.NoError(t, err)

	var pointIDs []int64
	for n := 1; n <= 3; n++ {
		point, err := svc.CreatePoint(ctx, &models.CreatePointRequest{ColumnID: column.ID, PointNumber: n})
		require.NoError(t, err)
		assert.Equal(t, string(domain.PointAvailable), point.Status)
		assert.Equal(t, station.ID, point.StationID)
		pointIDs = append(pointIDs, point.ID)
	}

	_, err = svc.SetPointStatus(ctx, pointIDs[0], &models.SetPointStatusRequest{Status: "maintenance"})
	require.NoError(t, err)

	list, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list.Stations, 1)
	assert.Equal(t, 3, *list.Stations[0].TotalPoints)
	assert.Equal(t, 2, *list.Stations[0].AvailablePoints)
	assert.Equal(t, 67, *list.Stations[0].AvailabilityPercentage)

	status, err := svc.GetStatus(ctx, station.ID)
	require.NoError(t, err)
	assert.Equal(t, "Piazza Duomo", status.Station.Name)
	require.Len(t, status.Points, 3)
	assert.Equal(t, string(domain.PointMaintenance), status.Points[0].Status)
	assert.Equal(t, 50.0, *status.Points[0].PowerKW)
	assert.Equal(t, "CCS2", *status.Points[0].ConnectorType)
}

func TestList_OnlyAvailable(t *testing.T) {
	store := testutil.NewStore()
	store.AddPoint(domain.PointAvailable)
	store.AddPoint(domain.PointInUse)

	list, err := newService(store).List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list.Stations, 1)
	assert.Equal(t, 100, *list.Stations[0].AvailabilityPercentage)
}

func TestCreate_Errors(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointAvailable)
	svc := newService(store)
	ctx := context.Background()

	_, err := svc.CreateStation(ctx, &models.CreateStationRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateColumn(ctx, &models.CreateColumnRequest{StationID: 999, ColumnNumber: 1, PowerKW: 22, ConnectorType: "Type 2"})
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = svc.CreateColumn(ctx, &models.CreateColumnRequest{StationID: point.StationID, ColumnNumber: 1, PowerKW: 22, ConnectorType: "Type 2"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.CreateColumn(ctx, &models.CreateColumnRequest{StationID: point.StationID, ColumnNumber: 2, PowerKW: 0, ConnectorType: "Type 2"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreatePoint(ctx, &models.CreatePointRequest{ColumnID: point.ColumnID, PointNumber: 1})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.CreatePoint(ctx, &models.CreatePointRequest{ColumnID: 999, PointNumber: 1})
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = svc.GetStatus(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.Fail("ListStationSummaries", context.DeadlineExceeded)
	_, err = svc.List(ctx, false)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestSetPointStatus(t *testing.T) {
	tests := []struct {
		name    string
		initial domain.PointStatus
		target  string
		want    domain.PointStatus
		wantErr error
	}{
		{name: "available to maintenance", initial: domain.PointAvailable, target: "maintenance", want: domain.PointMaintenance},
		{name: "maintenance to available", initial: domain.PointMaintenance, target: "available", want: domain.PointAvailable},
		{name: "reserved cannot enter maintenance", initial: domain.PointReserved, target: "maintenance", want: domain.PointReserved, wantErr: ErrPointBusy},
		{name: "in use cannot enter maintenance", initial: domain.PointInUse, target: "maintenance", want: domain.PointInUse, wantErr: ErrPointBusy},
		{name: "available is already available", initial: domain.PointAvailable, target: "available", want: domain.PointAvailable, wantErr: ErrPointBusy},
		{name: "unsupported target", initial: domain.PointAvailable, target: "in_use", want: domain.PointAvailable, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			point := store.AddPoint(tt.initial)

			_, err := newService(store).SetPointStatus(context.Background(), point.ID, &models.SetPointStatusRequest{Status: tt.target})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, store.Point(point.ID).Status)
		})
	}
}

func TestSetPointStatus_NotFound(t *testing.T) {
	_, err := newService(testutil.NewStore()).SetPointStatus(context.Background(), 42, &models.SetPointStatusRequest{Status: "maintenance"})
	assert.ErrorIs(t, err, ErrPointNotFound)
}

func TestSetPointStatus_LeavingMaintenanceRestoresReservation(t *testing.T) {
	store := testutil.NewStore()
	point := store.AddPoint(domain.PointMaintenance)
	store.AddBooking(domain.Booking{
		UserID: 7, ChargingPointID: point.ID, BookingDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00", EndTime: "10:00", Status: domain.StatusScheduled,
	})

	resp, err := newService(store).SetPointStatus(context.Background(), point.ID, &models.SetPointStatusRequest{Status: "available"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.PointReserved), resp.Status)
	assert.Equal(t, domain.PointReserved, store.Point(point.ID).Status)
}
