package worker

import (
	"context"
	"time"

	"big-brain-backend/internal/logger"
)

// ExpiredLinkPurger is the part of the share link service the purger needs
type ExpiredLinkPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// ShareLinkPurger deletes expired share links on a fixed interval
type ShareLinkPurger struct {
	purger   ExpiredLinkPurger
	interval time.Duration
}

// NewShareLinkPurger creates a purger running every interval (one hour when interval is not positive)
func NewShareLinkPurger(purger ExpiredLinkPurger, interval time.Duration) *ShareLinkPurger {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ShareLinkPurger{purger: purger, interval: interval}
}

// Start runs the purge loop in a goroutine until ctx is cancelled.
// The returned channel is closed once the loop has exited.
func (p *ShareLinkPurger) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.RunOnce(ctx)
			}
		}
	}()
	return done
}

// RunOnce performs a single purge and logs the outcome
func (p *ShareLinkPurger) RunOnce(ctx context.Context) int64 {
	log := logger.WithContext(ctx).WithField("job", "share_link_purge")
	n, err := p.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.WithError(err).Error("Share link purge failed")
		}
		return 0
	}
	if n > 0 {
		log.WithField("deleted", n).Info("Purged expired share links")
	} else {
		log.Debug("No expired share links to purge")
	}
	return n
}
