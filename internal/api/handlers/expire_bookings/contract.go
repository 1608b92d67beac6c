package expire_bookings

import (
	"context"

	expireBookings "github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

type ExpireBookingsUseCase interface {
	Execute(ctx context.Context, req *expireBookings.Request) (*expireBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
