package system

// Animator parameter names written by Locomotion
const (
	ParamWalking     = "Walking"
	ParamJumping     = "Jumping"
	ParamDashing     = "Dashing"
	ParamIsAttacking = "IsAttacking"
	ParamAttackCount = "AttackCount"
)

// AnimationSink receives animator parameters.
type AnimationSink interface {
	SetBool(name string, value bool)
	SetInteger(name string, value int)
}

// AnimParams is the animator-facing snapshot of a character.
type AnimParams struct {
	Walking     bool
	Jumping     bool
	Dashing     bool
	IsAttacking bool
	AttackCount int
}

// paramOrder is the write order. AttackCount precedes IsAttacking so a sink
// observing the attack start already knows which swing it is.
var paramOrder = []string{
	ParamWalking,
	ParamJumping,
	ParamDashing,
	ParamAttackCount,
	ParamIsAttacking,
}

// Diff returns the names of parameters that differ from prev, in write order.
func (p AnimParams) Diff(prev AnimParams) []string {
	var changed []string
	for _, name := range paramOrder {
		if !p.equal(prev, name) {
			changed = append(changed, name)
		}
	}
	return changed
}

// WriteTo writes the named parameters to sink.
func (p AnimParams) WriteTo(sink AnimationSink, names []string) {
	for _, name := range names {
		switch name {
		case ParamWalking:
			sink.SetBool(name, p.Walking)
		case ParamJumping:
			sink.SetBool(name, p.Jumping)
		case ParamDashing:
			sink.SetBool(name, p.Dashing)
		case ParamIsAttacking:
			sink.SetBool(name, p.IsAttacking)
		case ParamAttackCount:
			sink.SetInteger(name, p.AttackCount)
		}
	}
}

func (p AnimParams) equal(o AnimParams, name string) bool {
	switch name {
	case ParamWalking:
		return p.Walking == o.Walking
	case ParamJumping:
		return p.Jumping == o.Jumping
	case ParamDashing:
		return p.Dashing == o.Dashing
	case ParamIsAttacking:
		return p.IsAttacking == o.IsAttacking
	case ParamAttackCount:
		return p.AttackCount == o.AttackCount
	}
	return true
}

// ParamBoard is an in-memory animator. It keeps the latest value of every
// parameter, counts writes, and forwards each write to an optional next sink.
type ParamBoard struct {
	bools  map[string]bool
	ints   map[string]int
	writes int
	next   AnimationSink
}

// NewParamBoard creates an empty board. next may be nil.
func NewParamBoard(next AnimationSink) *ParamBoard {
	return &ParamBoard{
		bools: make(map[string]bool),
		ints:  make(map[string]int),
		next:  next,
	}
}

// SetBool implements AnimationSink
func (b *ParamBoard) SetBool(name string, value bool) {
	b.bools[name] = value
	b.writes++
	if b.next != nil {
		b.next.SetBool(name, value)
	}
}

// SetInteger implements AnimationSink
func (b *ParamBoard) SetInteger(name string, value int) {
	b.ints[name] = value
	b.writes++
	if b.next != nil {
		b.next.SetInteger(name, value)
	}
}

// Bool returns the last written value of a boolean parameter
func (b *ParamBoard) Bool(name string) bool { return b.bools[name] }

// Integer returns the last written value of an integer parameter
func (b *ParamBoard) Integer(name string) int { return b.ints[name] }

// Writes returns the number of parameter writes received
func (b *ParamBoard) Writes() int { return b.writes }
