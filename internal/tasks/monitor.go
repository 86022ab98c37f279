package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"selektah/internal/services"
	"selektah/internal/shared"
)

// indeterminatePercent is shown while a job is running but cannot report a
// determinate fraction yet.
const indeterminatePercent = 30

// Update is one progress event from a running background job.
type Update struct {
	Percent       int    // 0..100
	Message       string // service-provided status line
	Indeterminate bool   // Percent is a placeholder, not real progress
	Done          bool   // job finished; channel closes after the cooldown
	Err           error  // poll failure; channel closes immediately
}

// Monitor starts background jobs on the service and polls their status at a
// fixed interval, translating each poll into an [Update]. Only one job runs
// at a time: the service executes jobs serially and the monitor mirrors that
// by refusing to start a second one.
//
// On completion the monitor holds the channel open for a cooldown so the
// surface can show the finished bar before controls re-enable.
type Monitor struct {
	svc      services.Service
	hub      *Hub
	interval time.Duration
	cooldown time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func NewMonitor(svc services.Service, hub *Hub, interval, cooldown time.Duration) *Monitor {
	if interval <= 0 {
		interval = 1500 * time.Millisecond
	}
	return &Monitor{svc: svc, hub: hub, interval: interval, cooldown: cooldown}
}

// Running reports whether a job is being tracked, cooldown included.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start kicks off the named job and returns a channel of progress updates.
// The channel closes when the job finishes (after the cooldown) or when a
// poll fails.
func (m *Monitor) Start(ctx context.Context, job services.SyncJob) (<-chan Update, error) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s not started", shared.ErrJobActive, job)
	}
	m.running = true
	m.mu.Unlock()

	if err := m.svc.StartSync(ctx, job); err != nil {
		m.setStopped()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	updates := make(chan Update, 8)
	go m.poll(ctx, updates)
	return updates, nil
}

// Stop cancels the polling loop. The job itself keeps running server-side.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (m *Monitor) setStopped() {
	m.mu.Lock()
	m.running = false
	m.cancel = nil
	m.mu.Unlock()
}

func (m *Monitor) poll(ctx context.Context, updates chan<- Update) {
	defer close(updates)
	defer m.setStopped()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		status, err := m.svc.SyncStatus(ctx)
		if err != nil {
			// One failed poll ends tracking so controls come back; no
			// forced 100% since the job may still be going.
			updates <- Update{Err: err}
			return
		}

		if !status.InProgress {
			updates <- Update{Percent: 100, Message: status.Message, Done: true}
			if m.hub != nil {
				m.hub.Publish(Event{Kind: EventStatsStale})
				m.hub.Publish(Event{Kind: EventHistoryStale})
			}
			select {
			case <-time.After(m.cooldown):
			case <-ctx.Done():
			}
			return
		}

		u := Update{Message: status.Message}
		if status.Total > 0 {
			u.Percent = status.Current * 100 / status.Total
		} else {
			u.Percent = indeterminatePercent
			u.Indeterminate = true
		}
		select {
		case updates <- u:
		default:
			// A stalled consumer skips a tick instead of blocking the poll.
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
