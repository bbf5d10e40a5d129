package entity

// timerEpsilon absorbs the rounding left by subtracting a fixed step that is
// not exactly representable (1/60 s).
const timerEpsilon = 1e-9

// Timer is a tick-driven countdown. It replaces "wait N seconds then run"
// with state carried across ticks so it can be cancelled or restarted.
type Timer struct {
	remaining float64
	active    bool
	onDone    func()
}

// NewTimer creates an idle timer that calls onDone once per completed run.
// onDone may be nil.
func NewTimer(onDone func()) Timer {
	return Timer{onDone: onDone}
}

// Start arms the timer for duration seconds, discarding any pending run.
func (t *Timer) Start(duration float64) {
	t.remaining = duration
	t.active = true
}

// Tick advances the timer by dt seconds. It returns true on the tick the
// countdown crosses zero; the completion callback fires exactly then.
func (t *Timer) Tick(dt float64) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining > timerEpsilon {
		return false
	}
	t.remaining = 0
	t.active = false
	if t.onDone != nil {
		t.onDone()
	}
	return true
}

// Cancel stops the timer without firing completion.
func (t *Timer) Cancel() {
	t.active = false
	t.remaining = 0
}

// Active reports whether a run is pending
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the seconds left in the pending run (0 when idle)
func (t *Timer) Remaining() float64 {
	return t.remaining
}
