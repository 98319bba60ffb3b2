package railcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minFollowSpeed = 1e-4
	minTickDelta   = 1e-5

	// Squared look-vector lengths below which orientation is left alone.
	authoringLookEpsilon = 1e-3
	runtimeLookEpsilon   = 1e-4
)

// Up is the world's vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// PositionProvider reports the followed player's world position. ok is false
// when there is no player to follow.
type PositionProvider interface {
	PlayerPosition() (pos mgl64.Vec3, ok bool)
}

// DeltaSource reports the seconds elapsed since the previous tick.
type DeltaSource interface {
	TickDelta() float64
}

// PositionFunc adapts a function to PositionProvider.
type PositionFunc func() (mgl64.Vec3, bool)

func (f PositionFunc) PlayerPosition() (mgl64.Vec3, bool) { return f() }

// DeltaFunc adapts a function to DeltaSource.
type DeltaFunc func() float64

func (f DeltaFunc) TickDelta() float64 { return f() }

// FixedDelta is a DeltaSource for a fixed-rate loop.
type FixedDelta float64

func (d FixedDelta) TickDelta() float64 { return float64(d) }

// Pose is the camera's world transform. Rotation maps +Z onto the view
// direction.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// CameraRigState is a snapshot of the driver's follow and blend state.
type CameraRigState struct {
	CurrentAngle    [3]float64
	CurrentDistance float64
	TargetAngle     [3]float64
	TargetDistance  float64
	StartAngle      [3]float64
	StartDistance   float64
	Transitioning   bool
	Elapsed         float64
	Duration        float64

	ConstrainedAnchor mgl64.Vec3
	RailAnchor        mgl64.Vec3
	Desired           mgl64.Vec3
	Limits            Limits
}

// DebugInfo exposes the anchors and box extents for visualization. Sizes are
// full extents centred on the matching anchor.
type DebugInfo struct {
	ConstrainedAnchor mgl64.Vec3
	RailAnchor        mgl64.Vec3
	DeadzoneSize      mgl64.Vec3
	LimitSize         mgl64.Vec3
	Camera            mgl64.Vec3
}

// Option configures a Driver.
type Option func(*Driver)

// WithRail sets the rail the camera starts on, without a transition.
func WithRail(r RailInfo) Option {
	return func(d *Driver) { d.applyForEditing(r) }
}

// WithFollowSpeeds sets the exponential smoothing rates for position and
// rotation. Higher is faster.
func WithFollowSpeeds(position, rotation float64) Option {
	return func(d *Driver) {
		d.followPosition = position
		d.followRotation = rotation
	}
}

// WithResetOnRailChange controls whether activating a rail re-bases both
// anchors on the player.
func WithResetOnRailChange(reset bool) Option {
	return func(d *Driver) { d.resetOnRailChange = reset }
}

// WithPose sets the camera's starting pose.
func WithPose(p Pose) Option {
	return func(d *Driver) { d.pose = p }
}

// Driver produces the camera pose each tick from the player position and the
// active rail.
type Driver struct {
	player PositionProvider
	clock  DeltaSource

	// Editable rail settings. Authoring mode follows these directly and a
	// finished transition writes its target back into them.
	angle    [3]float64
	distance float64

	followPosition    float64
	followRotation    float64
	resetOnRailChange bool

	authoring   bool
	attached    bool
	initialized bool

	rig   CameraRigState
	blend Blend
	pose  Pose
}

func NewDriver(player PositionProvider, clock DeltaSource, opts ...Option) *Driver {
	d := &Driver{
		player:            player,
		clock:             clock,
		followPosition:    10,
		followRotation:    10,
		resetOnRailChange: true,
		attached:          true,
		pose:              Pose{Rotation: mgl64.QuatIdent()},
	}
	d.applyForEditing(DefaultRailInfo())
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Tick advances the camera by one frame. It does nothing while the player or
// camera is unavailable.
func (d *Driver) Tick() {
	if d.player == nil || d.clock == nil || !d.attached {
		return
	}
	player, ok := d.player.PlayerPosition()
	if !ok {
		return
	}
	if !d.initialized {
		d.rig.ConstrainedAnchor = player
		d.rig.RailAnchor = player
		d.initialized = true
	}
	dt := d.clock.TickDelta()

	d.rig.ConstrainedAnchor = UpdateConstrained(player, d.rig.RailAnchor, d.rig.ConstrainedAnchor, d.rig.Limits)

	if d.authoring {
		d.rig.CurrentAngle = d.angle
		d.rig.CurrentDistance = d.distance
	} else if d.rig.Transitioning {
		d.advance(dt)
	}

	d.rig.Desired = d.rig.ConstrainedAnchor.Add(OffsetFor(d.rig.CurrentAngle, d.rig.CurrentDistance))

	if d.authoring {
		d.snap()
		return
	}
	d.smooth(dt)
}

func (d *Driver) advance(dt float64) {
	angle, distance, done := d.blend.Advance(dt)
	d.rig.Elapsed = d.blend.Elapsed
	if done {
		d.rig.CurrentAngle = d.rig.TargetAngle
		d.rig.CurrentDistance = d.rig.TargetDistance
		d.angle = d.rig.TargetAngle
		d.distance = d.rig.TargetDistance
		d.rig.Transitioning = false
		return
	}
	d.rig.CurrentAngle = angle
	d.rig.CurrentDistance = distance
}

func (d *Driver) snap() {
	d.pose.Position = d.rig.Desired
	look := d.rig.ConstrainedAnchor.Sub(d.pose.Position)
	if look.Dot(look) > authoringLookEpsilon {
		d.pose.Rotation = LookRotation(look, Up)
	}
}

func (d *Driver) smooth(dt float64) {
	dt = max(dt, minTickDelta)

	d.pose.Position = lerpVec(d.pose.Position, d.rig.Desired, SmoothingFactor(d.followPosition, dt))

	look := d.rig.ConstrainedAnchor.Sub(d.pose.Position)
	if look.Dot(look) <= runtimeLookEpsilon {
		return
	}
	target := LookRotation(look, Up)
	d.pose.Rotation = mgl64.QuatSlerp(d.pose.Rotation, target, SmoothingFactor(d.followRotation, dt))
}

// Activate switches the camera to a new rail. The blend starts from the
// current, possibly mid-transition, values.
func (d *Driver) Activate(cfg RailInfo) {
	d.blend = Activate(cfg, d.rig.CurrentAngle, d.rig.CurrentDistance)

	d.rig.StartAngle = d.blend.StartAngle
	d.rig.StartDistance = d.blend.StartDistance
	d.rig.TargetAngle = cfg.Angle
	d.rig.TargetDistance = cfg.Distance
	d.rig.Duration = cfg.TransitionDuration
	d.rig.Limits = cfg.Limits

	if d.resetOnRailChange {
		d.ResetFollow()
	}

	d.rig.Transitioning = true
	d.rig.Elapsed = 0
}

// ResetFollow re-bases the constrained and rail anchors on the player.
func (d *Driver) ResetFollow() {
	if d.player == nil {
		return
	}
	p, ok := d.player.PlayerPosition()
	if !ok {
		return
	}
	d.rig.ConstrainedAnchor = p
	d.rig.RailAnchor = p
	d.initialized = true
}

// SetAuthoring switches between snapping to the editable settings and
// runtime smoothing. Entering authoring ends any blend in progress.
func (d *Driver) SetAuthoring(on bool) {
	d.authoring = on
	if on {
		d.rig.CurrentAngle = d.angle
		d.rig.TargetAngle = d.angle
		d.rig.CurrentDistance = d.distance
		d.rig.TargetDistance = d.distance
		d.rig.Transitioning = false
	}
}

func (d *Driver) Authoring() bool { return d.authoring }

// ApplyForEditing loads cfg as the camera's settings without a transition.
func (d *Driver) ApplyForEditing(cfg RailInfo) {
	d.applyForEditing(cfg)
}

func (d *Driver) applyForEditing(cfg RailInfo) {
	d.angle = cfg.Angle
	d.distance = cfg.Distance
	d.rig.CurrentAngle = cfg.Angle
	d.rig.TargetAngle = cfg.Angle
	d.rig.CurrentDistance = cfg.Distance
	d.rig.TargetDistance = cfg.Distance
	d.rig.Limits = cfg.Limits
	d.rig.Transitioning = false
}

// CopyCurrent exports the editable settings and active limits as a rail.
// Transition fields take the defaults.
func (d *Driver) CopyCurrent() RailInfo {
	r := DefaultRailInfo()
	r.Angle = d.angle
	r.Distance = d.distance
	r.Limits = d.rig.Limits
	return r
}

// Nudge changes the editable settings by the given deltas. Distance never
// goes below zero.
func (d *Driver) Nudge(pan, tilt, distance float64) {
	d.angle[1] += pan
	d.angle[0] += tilt
	d.distance = max(d.distance+distance, 0)
}

func (d *Driver) SetFollowSpeeds(position, rotation float64) {
	d.followPosition = position
	d.followRotation = rotation
}

func (d *Driver) SetResetOnRailChange(reset bool) { d.resetOnRailChange = reset }

// AttachCamera places the camera at p and resumes updates.
func (d *Driver) AttachCamera(p Pose) {
	d.pose = p
	d.attached = true
}

// DetachCamera suspends updates until AttachCamera is called.
func (d *Driver) DetachCamera() { d.attached = false }

func (d *Driver) Pose() Pose            { return d.pose }
func (d *Driver) State() CameraRigState { return d.rig }
func (d *Driver) Transitioning() bool   { return d.rig.Transitioning }

func (d *Driver) Debug() DebugInfo {
	l := d.rig.Limits
	info := DebugInfo{
		ConstrainedAnchor: d.rig.ConstrainedAnchor,
		RailAnchor:        d.rig.RailAnchor,
		Camera:            d.pose.Position,
	}
	if l.HorizontalOnly {
		info.DeadzoneSize = mgl64.Vec3{l.HorizontalDeadzone * 2, 0.5, 0.5}
		info.LimitSize = mgl64.Vec3{l.MaxHorizontalOffset * 2, 2, 2}
	} else {
		info.DeadzoneSize = mgl64.Vec3{l.HorizontalDeadzone * 2, l.VerticalDeadzone * 2, 0.5}
		info.LimitSize = mgl64.Vec3{l.MaxHorizontalOffset * 2, l.MaxVerticalOffset * 2, 2}
	}
	return info
}

// SmoothingFactor is the frame-rate independent lerp fraction for a follow
// speed over dt seconds.
func SmoothingFactor(speed, dt float64) float64 {
	return 1 - math.Exp(-max(speed, minFollowSpeed)*dt)
}

// LookRotation returns the rotation that maps +Z onto forward with +Y as
// close to up as possible.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	z := forward.Normalize()
	x := up.Cross(z)
	if x.Dot(x) < 1e-12 {
		x = mgl64.Vec3{1, 0, 0}
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
