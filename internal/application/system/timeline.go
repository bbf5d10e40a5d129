package system

import "github.com/younwookim/swordstep/internal/domain/entity"

// AttackEvents are the entry points an attack animation re-enters.
type AttackEvents interface {
	OnLungeWindowClosed()
	OnAttackAnimationEnd()
}

// AttackTimeline plays attack clips in response to animator parameters.
//
// It sits between Locomotion and the next sink. A rising IsAttacking starts
// the clip for the current AttackCount. The lunge window closes at
// lungeFraction of the clip and the attack ends at its full length.
type AttackTimeline struct {
	clips         []float64
	lungeFraction float64
	next          AnimationSink
	target        AttackEvents

	attacking bool
	count     int
	clip      int
	lunge     entity.Timer
	end       entity.Timer
}

// NewAttackTimeline creates a timeline forwarding writes to next (may be nil).
// Call Bind before the first Tick.
func NewAttackTimeline(clips []float64, lungeFraction float64, next AnimationSink) *AttackTimeline {
	return &AttackTimeline{
		clips:         append([]float64(nil), clips...),
		lungeFraction: lungeFraction,
		next:          next,
		clip:          -1,
	}
}

// Bind sets the receiver of timeline events.
func (t *AttackTimeline) Bind(target AttackEvents) {
	t.target = target
}

// SetClips replaces clip lengths for the next swing
func (t *AttackTimeline) SetClips(clips []float64, lungeFraction float64) {
	t.clips = append(t.clips[:0], clips...)
	t.lungeFraction = lungeFraction
}

// SetBool implements AnimationSink
func (t *AttackTimeline) SetBool(name string, value bool) {
	if name == ParamIsAttacking {
		switch {
		case value && !t.attacking:
			t.start()
		case !value && t.attacking:
			t.stop()
		}
		t.attacking = value
	}
	if t.next != nil {
		t.next.SetBool(name, value)
	}
}

// SetInteger implements AnimationSink
func (t *AttackTimeline) SetInteger(name string, value int) {
	if name == ParamAttackCount {
		t.count = value
	}
	if t.next != nil {
		t.next.SetInteger(name, value)
	}
}

func (t *AttackTimeline) start() {
	if len(t.clips) == 0 {
		return
	}
	idx := t.count
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.clips) {
		idx = len(t.clips) - 1
	}
	length := t.clips[idx]
	t.clip = idx
	t.lunge.Start(length * t.lungeFraction)
	t.end.Start(length)
}

func (t *AttackTimeline) stop() {
	t.lunge.Cancel()
	t.end.Cancel()
	t.clip = -1
}

// Tick advances the playing clip. The lunge window always closes before or
// on the same tick as the end.
func (t *AttackTimeline) Tick(dt float64) {
	if t.target == nil {
		return
	}
	if t.lunge.Tick(dt) {
		t.target.OnLungeWindowClosed()
	}
	if t.end.Tick(dt) {
		t.target.OnAttackAnimationEnd()
	}
}

// Playing reports whether a clip is running
func (t *AttackTimeline) Playing() bool { return t.end.Active() }

// Clip returns the index of the playing clip, or -1
func (t *AttackTimeline) Clip() int { return t.clip }
