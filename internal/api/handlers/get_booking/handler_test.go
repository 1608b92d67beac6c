package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings"
	"github.com/m04kA/EV-ChargingService/internal/service/bookings/models"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeService struct {
	status     string
	isAdmin    bool
	err        error
	session    *models.SessionResponse
	sessionErr error
	sessionFor []int64
}

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	f.isAdmin = isAdmin
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == "" {
		status = "scheduled"
	}
	return &models.BookingResponse{ID: id, UserID: userID, Status: status}, nil
}

func (f *fakeService) GetSession(_ context.Context, bookingID int64) (*models.SessionResponse, error) {
	f.sessionFor = append(f.sessionFor, bookingID)
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return f.session, nil
}

func serve(svc BookingService, id, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	req = req.WithContext(middleware.WithUser(req.Context(), 7, role))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "5", middleware.RoleAdmin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.isAdmin)
	assert.Empty(t, svc.sessionFor, "scheduled booking has no session to look up")

	var resp BookingDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Nil(t, resp.Session)
	assert.NotContains(t, rec.Body.String(), `"session"`)
}

func TestHandle_WithSession(t *testing.T) {
	end := time.Date(2024, 6, 1, 9, 45, 0, 0, time.UTC)
	svc := &fakeService{
		status: "completed",
		session: &models.SessionResponse{
			ID:              11,
			StartTime:       end.Add(-45 * time.Minute),
			EndTime:         &end,
			DurationMinutes: 45,
			EnergyConsumed:  20,
			Cost:            7,
			Status:          "completed",
		},
	}
	rec := serve(svc, "5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{5}, svc.sessionFor)

	var resp BookingDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.Session)
	assert.Equal(t, int64(11), resp.Session.ID)
	assert.Equal(t, 45, resp.Session.DurationMinutes)
	assert.Equal(t, 7.0, resp.Session.Cost)
}

func TestHandle_ActiveBookingWithoutSession(t *testing.T) {
	rec := serve(&fakeService{status: "active", sessionErr: bookings.ErrSessionNotFound}, "5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"session"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: bookings.ErrBookingNotFound}, "5", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: bookings.ErrAccessDenied}, "5", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: bookings.ErrStorage}, "5", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		serve(&fakeService{status: "active", sessionErr: bookings.ErrStorage}, "5", "").Code)
}
