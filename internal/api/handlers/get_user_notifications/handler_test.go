package get_user_notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/api/middleware"
	"github.com/m04kA/EV-ChargingService/internal/service/notifications"
	"github.com/m04kA/EV-ChargingService/internal/service/notifications/models"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeService struct {
	limit int
	err   error
}

func (f *fakeService) List(_ context.Context, userID int64, limit int) (*models.NotificationListResponse, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.NotificationListResponse{
		Notifications: []models.NotificationResponse{{ID: "n1", UserID: userID, Type: "booking", Message: "ok"}},
	}, nil
}

func serve(svc NotificationService, pathUser, query string, caller int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+pathUser+"/notifications?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"userId": pathUser})
	req = req.WithContext(middleware.WithUser(req.Context(), caller, ""))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "7", "limit=5", 7)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.limit)
	assert.Contains(t, rec.Body.String(), `"id":"n1"`)

	svc = &fakeService{}
	require.Equal(t, http.StatusOK, serve(svc, "7", "", 7).Code)
	assert.Equal(t, 0, svc.limit)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{}, "8", "", 7).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "7", "limit=ten", 7).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: notifications.ErrInvalidInput}, "7", "limit=1000", 7).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeService{err: notifications.ErrUnavailable}, "7", "", 7).Code)
}
