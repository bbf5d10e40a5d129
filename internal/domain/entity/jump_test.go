package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJumpArc(t *testing.T) *JumpArc {
	t.Helper()
	j, err := NewJumpArc(DefaultJumpConstants())
	require.NoError(t, err)
	return j
}

func TestApexGravity_Scenario(t *testing.T) {
	g, v0, err := ApexGravity(1, 0.7)
	require.NoError(t, err)

	assert.InDelta(t, -16.33, g, 0.01)
	assert.InDelta(t, 5.71, v0, 0.01)
}

func TestApexGravity_SignsAndClosedFormApex(t *testing.T) {
	tests := []struct {
		height, time float64
	}{
		{1, 0.7},
		{0.25, 0.3},
		{3, 1.2},
		{10, 2},
		{0.01, 5},
	}

	for _, tt := range tests {
		g, v0, err := ApexGravity(tt.height, tt.time)
		require.NoError(t, err)

		assert.Less(t, g, 0.0)
		assert.Greater(t, v0, 0.0)

		// Standard kinematics with the derived constants peaks at maxHeight, maxTime/2
		assert.InDelta(t, tt.height, v0*v0/(2*-g), 1e-9)
		assert.InDelta(t, tt.time/2, v0/-g, 1e-9)
	}
}

func TestApexGravity_RejectsInvalidConstants(t *testing.T) {
	tests := []struct {
		name         string
		height, time float64
	}{
		{"zero time", 1, 0},
		{"negative time", 1, -0.5},
		{"NaN time", 1, math.NaN()},
		{"infinite time", 1, math.Inf(1)},
		{"zero height", 0, 0.7},
		{"negative height", -1, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ApexGravity(tt.height, tt.time)
			assert.ErrorIs(t, err, ErrInvalidJumpConfig)

			j, err := NewJumpArc(JumpConstants{MaxHeight: tt.height, MaxTime: tt.time})
			assert.ErrorIs(t, err, ErrInvalidJumpConfig)
			assert.Nil(t, j)
		})
	}
}

func TestJumpArc_LaunchUsesHalfImpulse(t *testing.T) {
	j := newTestJumpArc(t)

	j.SetJumpPressed(true)
	j.Tick(1.0/60.0, true)

	assert.True(t, j.IsJumping())
	assert.True(t, j.IsJumpAnimating())
	assert.InDelta(t, 2.857, j.VelocityY(), 0.001)
	assert.InDelta(t, j.InitialVelocity()*0.5, j.VelocityY(), 1e-12)
}

func TestJumpArc_NoLaunchWhileAirborne(t *testing.T) {
	j := newTestJumpArc(t)

	j.SetJumpPressed(true)
	j.Tick(1.0/60.0, false)

	assert.False(t, j.IsJumping())
	assert.Less(t, j.VelocityY(), 0.0, "airborne body keeps falling")
}

func TestJumpArc_GroundedForcesGroundedGravity(t *testing.T) {
	priors := []float64{12, 0.3, 0, -0.5, -40}

	for _, prior := range priors {
		j := newTestJumpArc(t)
		j.velocityY = prior

		j.Tick(1.0/60.0, true)

		assert.Equal(t, DefaultGroundedGravity, j.VelocityY(), "prior velocity %v", prior)
	}
}

func TestJumpArc_AveragedIntegration(t *testing.T) {
	j := newTestJumpArc(t)
	dt := 0.01

	// Rising: half of one gravity step per tick
	j.velocityY = 2
	j.Tick(dt, false)
	assert.InDelta(t, 2+j.Gravity()*dt*0.5, j.VelocityY(), 1e-12)

	// Falling: fall multiplier doubles gravity before averaging
	j.velocityY = 0
	j.Tick(dt, false)
	assert.InDelta(t, j.Gravity()*DefaultFallMultiplier*dt*0.5, j.VelocityY(), 1e-12)
}

func TestJumpArc_ApexReachedAtHalfJumpTime(t *testing.T) {
	j := newTestJumpArc(t)
	dt := 1.0 / 600.0

	j.SetJumpPressed(true)
	j.Tick(dt, true)
	j.SetJumpPressed(false)

	height, peak, apexTime := 0.0, 0.0, 0.0
	for tick := 1; tick <= 600; tick++ {
		height += j.VelocityY() * dt
		if height > peak {
			peak = height
			apexTime = float64(tick) * dt
		}
		if height < 0 {
			break
		}
		j.Tick(dt, false)
	}

	assert.InDelta(t, 0.35, apexTime, 0.01)
	// Half impulse plus averaged gravity peaks at half the closed-form height
	assert.InDelta(t, 0.5, peak, 0.01)
}

func TestJumpArc_LandingEndsJump(t *testing.T) {
	j := newTestJumpArc(t)
	dt := 1.0 / 60.0

	j.SetJumpPressed(true)
	j.Tick(dt, true)
	j.SetJumpPressed(false)
	j.Tick(dt, false)

	assert.True(t, j.IsJumping(), "release alone does not end the jump")
	assert.True(t, j.IsJumpAnimating())

	j.Tick(dt, true)

	assert.False(t, j.IsJumping())
	assert.False(t, j.IsJumpAnimating())
	assert.Equal(t, DefaultGroundedGravity, j.VelocityY())
}

func TestJumpArc_HeldJumpRelaunchesOnLanding(t *testing.T) {
	j := newTestJumpArc(t)
	dt := 1.0 / 60.0

	j.SetJumpPressed(true)
	j.Tick(dt, true)
	j.Tick(dt, false)
	j.Tick(dt, true) // lands while the button is still held

	assert.True(t, j.IsJumping())
	assert.InDelta(t, j.InitialVelocity()*0.5, j.VelocityY(), 1e-12)
}

func TestJumpArc_DeterministicForSameGroundedValue(t *testing.T) {
	a := newTestJumpArc(t)
	b := newTestJumpArc(t)
	grounded := []bool{true, true, false, false, false, true, false}

	a.SetJumpPressed(true)
	b.SetJumpPressed(true)
	for _, g := range grounded {
		a.Tick(1.0/60.0, g)
		b.Tick(1.0/60.0, g)
		assert.Equal(t, a.VelocityY(), b.VelocityY())
		assert.Equal(t, a.IsJumping(), b.IsJumping())
	}
}

func TestJumpArc_ConfigureRecomputesOnlyOnChange(t *testing.T) {
	j := newTestJumpArc(t)
	g, v0 := j.Gravity(), j.InitialVelocity()

	require.NoError(t, j.Configure(DefaultJumpConstants()))
	assert.Equal(t, g, j.Gravity())
	assert.Equal(t, v0, j.InitialVelocity())

	c := DefaultJumpConstants()
	c.MaxHeight = 2
	require.NoError(t, j.Configure(c))
	assert.InDelta(t, 2*g, j.Gravity(), 1e-9)
	assert.InDelta(t, 2*v0, j.InitialVelocity(), 1e-9)

	// Invalid constants leave the previous derivation in place
	bad := c
	bad.MaxTime = 0
	assert.ErrorIs(t, j.Configure(bad), ErrInvalidJumpConfig)
	assert.Equal(t, c, j.Constants())
}

func TestJumpArc_ResetMidJump(t *testing.T) {
	j := newTestJumpArc(t)
	dt := 1.0 / 60.0

	j.SetJumpPressed(true)
	j.Tick(dt, true)
	for i := 0; i < 5; i++ {
		j.Tick(dt, false)
	}
	require.True(t, j.IsJumping())
	require.Greater(t, j.VelocityY(), 0.0)

	j.Reset()

	assert.Equal(t, DefaultGroundedGravity, j.VelocityY())
	assert.False(t, j.IsJumping())
	assert.False(t, j.IsJumpAnimating())
	assert.False(t, j.JumpPressed())

	// No relaunch from the stale button level
	j.Tick(dt, true)
	assert.False(t, j.IsJumping())
}
