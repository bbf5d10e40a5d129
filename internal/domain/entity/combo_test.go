package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// swing runs one full attack: press, lunge window closes, animation ends.
func swing(c *ComboAttack) {
	c.OnAttackPressed(true)
	c.OnAnimationHalfway()
	c.OnAttackAnimationEnd()
}

func TestComboAttack_PressRequiresGroundedAndIdle(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	assert.False(t, c.OnAttackPressed(false), "airborne press is ignored")
	assert.False(t, c.IsAttacking())

	assert.True(t, c.OnAttackPressed(true))
	assert.True(t, c.IsAttacking())
	assert.True(t, c.CanLunge())

	assert.False(t, c.OnAttackPressed(true), "press during an attack is ignored")
}

func TestComboAttack_FreshChainDoesNotIncrement(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	c.OnAttackPressed(true)

	assert.Equal(t, 0, c.Count())
	assert.False(t, c.ResetPending())
}

func TestComboAttack_HalfwayClosesLungeWindow(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	c.OnAttackPressed(true)
	c.OnAnimationHalfway()

	assert.True(t, c.IsAttacking())
	assert.False(t, c.CanLunge())
}

func TestComboAttack_ChainWithinResetWindow(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	// Opening swing arms the reset without counting
	swing(c)
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.ResetPending())

	for _, want := range []int{1, 2} {
		c.Tick(0.2)
		c.OnAttackPressed(true)
		assert.Equal(t, want, c.Count())
		assert.False(t, c.ResetPending(), "new attack cancels pending reset")
		c.OnAnimationHalfway()
		c.OnAttackAnimationEnd()
		assert.Equal(t, want, c.Count())
	}

	c.Tick(0.2)
	c.OnAttackPressed(true)
	assert.Equal(t, 3, c.Count())

	// Reaching the cap resets synchronously on the same end event
	c.OnAttackAnimationEnd()
	assert.Equal(t, 0, c.Count())
	assert.True(t, c.ResetPending())
}

func TestComboAttack_IdleResetViaTimer(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	swing(c)
	c.Tick(0.2)
	swing(c)
	assert.Equal(t, 1, c.Count())

	c.Tick(0.25)
	assert.Equal(t, 1, c.Count(), "reset not yet due")

	c.Tick(0.3)
	assert.Equal(t, 0, c.Count())
	assert.False(t, c.ResetPending())

	// Timer fired, so the next attack opens a fresh chain
	c.OnAttackPressed(true)
	assert.Equal(t, 0, c.Count())
}

func TestComboAttack_EndWithoutAttackIsNoop(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	c.OnAttackAnimationEnd()

	assert.False(t, c.ResetPending())
	assert.Equal(t, 0, c.Count())
}

func TestComboAttack_LungeFlagSurvivesEndWithoutHalfway(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)

	c.OnAttackPressed(true)
	c.OnAttackAnimationEnd()

	// canLunge only matters while attacking
	assert.False(t, c.IsAttacking())
	assert.True(t, c.CanLunge())
}

func TestComboAttack_ResetDelay(t *testing.T) {
	c := NewComboAttack(0)
	swing(c)
	c.Tick(DefaultComboResetDelay - 0.01)
	assert.True(t, c.ResetPending(), "non-positive delay falls back to default")

	c = NewComboAttack(1.0)
	c.SetResetDelay(-1)
	swing(c)
	c.Tick(0.75)
	assert.True(t, c.ResetPending())
	c.Tick(0.5)
	assert.False(t, c.ResetPending())
}

func TestComboAttack_ResetDropsChain(t *testing.T) {
	c := NewComboAttack(DefaultComboResetDelay)
	swing(c)
	c.Tick(0.2)
	c.OnAttackPressed(true)
	assert.Equal(t, 1, c.Count())

	c.Reset()

	assert.Equal(t, 0, c.Count())
	assert.False(t, c.IsAttacking())
	assert.False(t, c.CanLunge())
	assert.False(t, c.ResetPending())

	// The next attack opens a fresh chain
	c.OnAttackPressed(true)
	assert.Equal(t, 0, c.Count())
}
