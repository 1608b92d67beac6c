package expiration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EV-ChargingService/internal/usecase/expire_bookings"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

type fakeExpirer struct {
	mu        sync.Mutex
	calls     int
	deadlines []bool
	err       error
	ids       []int64
}

func (f *fakeExpirer) Execute(ctx context.Context, _ *expire_bookings.Request) (*expire_bookings.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	_, ok := ctx.Deadline()
	f.deadlines = append(f.deadlines, ok)
	if f.err != nil {
		return nil, f.err
	}
	return &expire_bookings.Response{ExpiredIDs: f.ids}, nil
}

func (f *fakeExpirer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRunOnce(t *testing.T) {
	expirer := &fakeExpirer{ids: []int64{3, 5}}
	w := NewWorker(expirer, time.Minute, time.Second, logger.NewNop())

	ids, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, ids)
	assert.Equal(t, []bool{true}, expirer.deadlines, "run must carry a deadline")
}

func TestRunOnce_Error(t *testing.T) {
	expirer := &fakeExpirer{err: errors.New("db down")}
	w := NewWorker(expirer, time.Minute, 0, logger.NewNop())

	_, err := w.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []bool{false}, expirer.deadlines)
}

func TestRun_RepeatsUntilCancelled(t *testing.T) {
	expirer := &fakeExpirer{err: errors.New("db down")}
	w := NewWorker(expirer, 5*time.Millisecond, time.Second, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return expirer.Calls() >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
