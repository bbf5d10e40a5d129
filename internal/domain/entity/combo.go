package entity

const (
	// MaxComboCount is the last step of the attack chain.
	MaxComboCount = 3

	// DefaultComboResetDelay is how long after an attack ends the chain survives.
	DefaultComboResetDelay = 0.5
)

// ComboAttack sequences a chained melee attack.
//
// The chain count only advances when an attack starts while a reset is still
// pending. A fresh chain therefore opens at count 0 and the next attacks walk
// it through 1, 2 and 3.
type ComboAttack struct {
	count      int
	attacking  bool
	canLunge   bool
	resetDelay float64
	reset      Timer
}

// NewComboAttack creates an idle chain. A non-positive resetDelay falls back
// to DefaultComboResetDelay.
func NewComboAttack(resetDelay float64) *ComboAttack {
	if resetDelay <= 0 {
		resetDelay = DefaultComboResetDelay
	}
	return &ComboAttack{resetDelay: resetDelay}
}

// SetResetDelay changes the delay used by the next armed reset.
func (c *ComboAttack) SetResetDelay(d float64) {
	if d > 0 {
		c.resetDelay = d
	}
}

// OnAttackPressed starts an attack. It is ignored while airborne or while an
// attack is already playing. Returns true when an attack started.
func (c *ComboAttack) OnAttackPressed(grounded bool) bool {
	if !grounded || c.attacking {
		return false
	}
	c.attacking = true
	c.canLunge = true
	if c.count < MaxComboCount && c.reset.Active() {
		c.reset.Cancel()
		c.count++
	}
	return true
}

// OnAnimationHalfway closes the lunge window of the current swing.
func (c *ComboAttack) OnAnimationHalfway() {
	c.canLunge = false
}

// OnAttackAnimationEnd finishes the current swing and arms the chain reset.
// Reaching the last step resets the count immediately.
func (c *ComboAttack) OnAttackAnimationEnd() {
	if !c.attacking {
		return
	}
	c.attacking = false
	c.reset.Start(c.resetDelay)
	if c.count == MaxComboCount {
		c.count = 0
	}
}

// Tick advances the pending reset. The chain drops to 0 when it fires.
func (c *ComboAttack) Tick(dt float64) {
	if c.reset.Tick(dt) {
		c.count = 0
	}
}

// Reset abandons the current swing and chain without arming a reset.
func (c *ComboAttack) Reset() {
	c.reset.Cancel()
	c.count = 0
	c.attacking = false
	c.canLunge = false
}

// Count returns the chain step (0..MaxComboCount)
func (c *ComboAttack) Count() int { return c.count }

// IsAttacking reports whether a swing is playing
func (c *ComboAttack) IsAttacking() bool { return c.attacking }

// CanLunge reports whether the swing is still in its lunge window
func (c *ComboAttack) CanLunge() bool { return c.canLunge }

// ResetPending reports whether the chain reset timer is armed
func (c *ComboAttack) ResetPending() bool { return c.reset.Active() }
