package get_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/service/bookings"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings/models"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeService struct {
	got *models.GetBookingsRequest
	err error
}

func (f *fakeService) GetBookings(_ context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}}}, nil
}

func serve(svc BookingService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?"+query, nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "pointId=3&userId=7&date=2024-06-01&status=scheduled&limit=10")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.got.ChargingPointID)
	assert.Equal(t, int64(3), *svc.got.ChargingPointID)
	require.NotNil(t, svc.got.UserID)
	assert.Equal(t, int64(7), *svc.got.UserID)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2024-06-01", svc.got.Date.Format("2006-01-02"))
	assert.Equal(t, uint64(10), svc.got.Limit)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}
	require.Equal(t, http.StatusOK, serve(svc, "").Code)
	assert.Nil(t, svc.got.ChargingPointID)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "pointId=x").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "date=tomorrow").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: bookings.ErrInvalidInput}, "status=unknown").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: bookings.ErrStorage}, "").Code)
}
