package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/domain"
)

func TestUserKey(t *testing.T) {
	assert.Equal(t, "notifications:user:42", userKey(42))
}

func TestEncodeDecode(t *testing.T) {
	n := domain.Notification{
		ID:        "b4b0b1c2-0000-4000-8000-000000000001",
		UserID:    42,
		Type:      domain.NotificationBooking,
		Message:   "hello",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	data, err := encode(n)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"booking"`)

	decoded, err := decodeAll([]string{string(data)})
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, n, decoded[0])
}

func TestDecodeAll_Invalid(t *testing.T) {
	_, err := decodeAll([]string{"{broken"})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestNewStore_DefaultCap(t *testing.T) {
	s := NewStore(nil, time.Hour, 0)
	assert.Equal(t, int64(domain.MaxNotificationsLimit), s.maxItems)
}

func TestNopStore(t *testing.T) {
	var s NopStore
	require.NoError(t, s.Push(context.Background(), domain.Notification{UserID: 1}))

	list, err := s.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
