package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(context.Context) (int64, error) {
	p.calls.Add(1)
	if p.err != nil {
		return 0, p.err
	}
	return 3, nil
}

func TestRunOnce(t *testing.T) {
	p := &countingPurger{}
	purger := NewShareLinkPurger(p, time.Minute)

	assert.Equal(t, int64(3), purger.RunOnce(context.Background()))
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestRunOnceError(t *testing.T) {
	p := &countingPurger{err: errors.New("db down")}
	purger := NewShareLinkPurger(p, time.Minute)

	assert.Equal(t, int64(0), purger.RunOnce(context.Background()))
}

func TestStartTicksUntilCancelled(t *testing.T) {
	p := &countingPurger{}
	purger := NewShareLinkPurger(p, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := purger.Start(ctx)

	require.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purger did not stop after cancel")
	}
	stopped := p.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, p.calls.Load())
}

func TestNewShareLinkPurgerDefaultsInterval(t *testing.T) {
	purger := NewShareLinkPurger(&countingPurger{}, 0)
	assert.Equal(t, time.Hour, purger.interval)
}
