package check_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/EV-ChargingService/internal/usecase/check_availability"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
	"github.com/m04kA/EV-ChargingService/pkg/ptr"
)

type fakeUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func serve(uc CheckAvailabilityUseCase, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charging-points/3/availability?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"pointId": "3"})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Available(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{Available: true}}
	rec := serve(uc, "date=2024-06-01&start=09:00&end=10:00&excludeBookingId=12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":true}`, rec.Body.String())
	require.NotNil(t, uc.got.ExcludeBookingID)
	assert.Equal(t, int64(12), *uc.got.ExcludeBookingID)
	assert.Equal(t, "09:00", uc.got.StartTime.String())
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{ConflictBookingID: ptr.Ptr(int64(4))}}
	rec := serve(uc, "date=2024-06-01&start=09:00&end=10:00")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false,"conflictBookingId":4}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "start=09:00&end=10:00").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "date=2024-06-01&excludeBookingId=x").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: checkAvailability.ErrInvalidInput}, "date=2024-06-01&start=10:00&end=09:00").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: checkAvailability.ErrPointNotFound}, "date=2024-06-01&start=09:00&end=10:00").Code)
}
