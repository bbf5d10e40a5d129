package entity

const (
	// DefaultDashTime is how long dash motion lasts.
	DefaultDashTime = 0.3

	// DefaultDashCooldown is the lock between dash starts.
	DefaultDashCooldown = 2.0
)

// DashConstants configure dash timing.
type DashConstants struct {
	Time         float64 // seconds of dash motion
	CooldownTime float64 // seconds from dash start until the next dash may start
}

// Dash tracks dash activation, duration and cooldown.
// Duration and cooldown run concurrently from the same start.
type Dash struct {
	constants DashConstants
	dashing   bool
	cooling   bool
	vector    Vec3
	duration  Timer
	cooldown  Timer
}

// NewDash creates an idle dash controller.
func NewDash(c DashConstants) *Dash {
	return &Dash{constants: c}
}

// SetConstants applies new timings to the next dash.
func (d *Dash) SetConstants(c DashConstants) {
	d.constants = c
}

// Request starts a dash along the movement intent. It is ignored unless the
// character is grounded, moving, not dashing and off cooldown.
// Returns true when a dash started.
func (d *Dash) Request(intent MovementIntent, grounded bool) bool {
	if !grounded || !intent.IsNonZero() || d.dashing || d.cooling {
		return false
	}
	d.vector = intent.Direction().Normalized()
	d.cooldown.Start(d.constants.CooldownTime)
	d.duration.Start(d.constants.Time)
	d.dashing = true
	d.cooling = true
	return true
}

// Tick advances both timers.
func (d *Dash) Tick(dt float64) {
	if d.duration.Tick(dt) {
		d.dashing = false
	}
	if d.cooldown.Tick(dt) {
		d.cooling = false
	}
}

// Reset ends dash motion and clears the cooldown.
func (d *Dash) Reset() {
	d.duration.Cancel()
	d.cooldown.Cancel()
	d.dashing = false
	d.cooling = false
	d.vector = Vec3{}
}

// IsDashing reports whether dash motion is active
func (d *Dash) IsDashing() bool { return d.dashing }

// IsOnCooldown reports whether a new dash is locked out
func (d *Dash) IsOnCooldown() bool { return d.cooling }

// Vector returns the unit direction recorded at dash start
func (d *Dash) Vector() Vec3 { return d.vector }

// CooldownRemaining returns seconds until the next dash may start
func (d *Dash) CooldownRemaining() float64 { return d.cooldown.Remaining() }

// Constants returns the active timings
func (d *Dash) Constants() DashConstants { return d.constants }
