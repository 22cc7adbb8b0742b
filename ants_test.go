package selection

import "testing"

type fakeScheduler struct {
	next     Handle
	ticks    map[Handle]func()
	canceled []Handle
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{ticks: map[Handle]func(){}}
}

func (s *fakeScheduler) Schedule(tick func()) Handle {
	s.next++
	s.ticks[s.next] = tick
	return s.next
}

func (s *fakeScheduler) Cancel(h Handle) {
	s.canceled = append(s.canceled, h)
	delete(s.ticks, h)
}

func (s *fakeScheduler) fire() {
	for _, tick := range s.ticks {
		tick()
	}
}

func TestStartAntsAdvancesPhase(t *testing.T) {
	sel := NewManager(50, 50)
	sched := newFakeScheduler()

	var phases []int
	sel.StartAnts(sched, func(phase int) { phases = append(phases, phase) })
	if !sel.AntsRunning() {
		t.Fatal("ants should be running after start")
	}

	sched.fire()
	sched.fire()
	sched.fire()

	if len(phases) != 3 || phases[0] != 1 || phases[2] != 3 {
		t.Errorf("expected phases [1 2 3], got %v", phases)
	}
}

func TestStartAntsCancelsPriorLoop(t *testing.T) {
	sel := NewManager(50, 50)
	sched := newFakeScheduler()

	first := 0
	sel.StartAnts(sched, func(int) { first++ })
	second := 0
	sel.StartAnts(sched, func(int) { second++ })

	if len(sched.canceled) != 1 {
		t.Fatalf("restart should cancel the prior handle, canceled=%v", sched.canceled)
	}
	sched.fire()
	if first != 0 {
		t.Error("canceled loop must not receive ticks")
	}
	if second != 1 {
		t.Errorf("active loop should tick once, got %d", second)
	}

	// Restart resets the phase
	var phase int
	sel.StartAnts(sched, func(p int) { phase = p })
	sched.fire()
	if phase != 1 {
		t.Errorf("restarted loop should begin at phase 1, got %d", phase)
	}
}

func TestStopAntsIdempotent(t *testing.T) {
	sel := NewManager(50, 50)
	sched := newFakeScheduler()

	sel.StopAnts() // never started

	sel.StartAnts(sched, func(int) {})
	sel.StopAnts()
	if sel.AntsRunning() {
		t.Error("ants should be stopped")
	}
	if len(sched.canceled) != 1 {
		t.Errorf("stop should cancel exactly once, canceled=%v", sched.canceled)
	}

	sel.StopAnts()
	if len(sched.canceled) != 1 {
		t.Error("repeated stop must not cancel again")
	}
	if len(sched.ticks) != 0 {
		t.Error("no callbacks should remain scheduled")
	}
}

func TestStartAntsNilGuards(t *testing.T) {
	sel := NewManager(50, 50)
	sched := newFakeScheduler()

	sel.StartAnts(nil, func(int) {})
	sel.StartAnts(sched, nil)
	if sel.AntsRunning() {
		t.Error("start with missing collaborators should be ignored")
	}
	if len(sched.ticks) != 0 {
		t.Error("nothing should have been scheduled")
	}
}

func TestIntervalSchedulerCancel(t *testing.T) {
	s := &IntervalScheduler{}
	h := s.Schedule(func() {})
	s.Cancel(h)
	// Unknown and repeated handles are ignored
	s.Cancel(h)
	s.Cancel(Handle(999))
}
