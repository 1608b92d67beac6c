// Package expiration периодически переводит неначатые бронирования в no_show.
package expiration

import (
	"context"
	"time"

	"github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
)

// Worker фоновый sweeper просроченных бронирований
type Worker struct {
	expirer  Expirer
	interval time.Duration
	timeout  time.Duration
	logger   Logger
}

// NewWorker создает sweeper с периодом interval, каждый прогон ограничен timeout
func NewWorker(expirer Expirer, interval, timeout time.Duration, logger Logger) *Worker {
	return &Worker{
		expirer:  expirer,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Run выполняет прогон сразу и затем каждые interval до отмены ctx.
// Ошибка прогона логируется, следующий прогон повторит работу.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("ExpirationWorker: started, interval=%s, timeout=%s", w.interval, w.timeout)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error("ExpirationWorker: sweep failed: %v", err)
		}

		select {
		case <-ctx.Done():
			w.logger.Info("ExpirationWorker: stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce выполняет один прогон с таймаутом и возвращает ID истекших бронирований
func (w *Worker) RunOnce(ctx context.Context) ([]int64, error) {
	runCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	resp, err := w.expirer.Execute(runCtx, &expire_bookings.Request{})
	if err != nil {
		return nil, err
	}

	if len(resp.ExpiredIDs) > 0 {
		w.logger.Info("ExpirationWorker: %d bookings marked no_show (cutoff %s)",
			len(resp.ExpiredIDs), resp.Cutoff.Format(time.RFC3339))
	}
	return resp.ExpiredIDs, nil
}
