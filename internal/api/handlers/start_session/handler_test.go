package start_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	startSession "github.com/m04kA/EV-ChargingService/internal/usecase/start_session"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeUseCase struct {
	got *startSession.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *startSession.Request) (*startSession.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &startSession.Response{
		LogID:     30,
		BookingID: req.BookingID,
		UserID:    req.UserID,
		StartTime: time.Date(2024, 6, 1, 9, 2, 0, 0, time.UTC),
		Status:    "in_progress",
	}, nil
}

func serve(uc StartSessionUseCase, id, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+id+"/sessions", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	req = req.WithContext(middleware.WithUser(req.Context(), 7, role))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "12", middleware.RoleAdmin)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.got.IsAdmin)
	assert.Equal(t, int64(7), uc.got.UserID)
	assert.JSONEq(t, `{"id":30,"bookingId":12,"userId":7,"chargingPointId":0,
		"startTime":"2024-06-01T09:02:00Z","status":"in_progress"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "abc", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: startSession.ErrBookingNotFound}, "12", "").Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeUseCase{err: startSession.ErrInvalidStatus}, "12", "").Code)
	assert.Equal(t, http.StatusConflict, serve(&fakeUseCase{err: startSession.ErrPointUnderMaintenance}, "12", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeUseCase{err: startSession.ErrStorage}, "12", "").Code)
}
