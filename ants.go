package selection

import (
	"sync"
	"time"
)

// Handle identifies a scheduled frame callback.
type Handle int64

// FrameScheduler is the minimal host capability driving the marching
// ants redraw loop: Schedule registers a callback invoked once per host
// frame until Cancel is called with the returned handle. The core has no
// other host dependency.
type FrameScheduler interface {
	Schedule(tick func()) Handle
	Cancel(h Handle)
}

// StartAnts attaches the cosmetic marching-ants loop to a scheduler.
// Each frame advances the dash phase and invokes onFrame with it; the
// host redraws the outline (see Mask.IsBoundary) at that phase. The loop
// never touches mask semantics.
//
// Starting while a loop is already running first cancels the prior one,
// so callbacks are never duplicated or leaked.
func (m *Manager) StartAnts(s FrameScheduler, onFrame func(phase int)) {
	if s == nil || onFrame == nil {
		return
	}
	if m.antsOn {
		m.antsSched.Cancel(m.antsHandle)
	}
	m.antsSched = s
	m.antsPhase = 0
	m.antsHandle = s.Schedule(func() {
		m.antsPhase++
		onFrame(m.antsPhase)
	})
	m.antsOn = true
}

// StopAnts detaches the marching-ants loop. Stopping an already stopped
// loop is a no-op.
func (m *Manager) StopAnts() {
	if !m.antsOn {
		return
	}
	m.antsSched.Cancel(m.antsHandle)
	m.antsSched = nil
	m.antsOn = false
}

// AntsRunning reports whether the marching-ants loop is attached.
func (m *Manager) AntsRunning() bool {
	return m.antsOn
}

// IntervalScheduler is a FrameScheduler for hosts without a native frame
// callback. It drives each scheduled tick from its own ticker goroutine.
type IntervalScheduler struct {
	// Interval between ticks. Zero defaults to 100ms, a typical
	// marching-ants cadence.
	Interval time.Duration

	mu    sync.Mutex
	next  Handle
	stops map[Handle]chan struct{}
}

// Schedule starts delivering ticks at the configured interval until the
// returned handle is canceled.
func (s *IntervalScheduler) Schedule(tick func()) Handle {
	s.mu.Lock()
	if s.stops == nil {
		s.stops = make(map[Handle]chan struct{})
	}
	s.next++
	h := s.next
	stop := make(chan struct{})
	s.stops[h] = stop
	s.mu.Unlock()

	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
	return h
}

// Cancel stops a scheduled tick. Unknown or already canceled handles are
// ignored.
func (s *IntervalScheduler) Cancel(h Handle) {
	s.mu.Lock()
	if stop, ok := s.stops[h]; ok {
		close(stop)
		delete(s.stops, h)
	}
	s.mu.Unlock()
}
