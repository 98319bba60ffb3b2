package systems

import (
	"image/color"
	"math"

	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/automoto/railcam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gridStep is the spacing of the floor grid in world units.
const gridStep = 2.0

// projector maps world points to screen pixels through the camera pose.
// The pose's local +Z is the view direction and local +X points to the
// camera's left.
type projector struct {
	pose  railcam.Pose
	inv   mgl64.Quat
	w, h  float64
	focal float64
	near  float64
}

func newProjector(pose railcam.Pose, w, h int, fovDeg, near float64) projector {
	half := mgl64.DegToRad(fovDeg) / 2
	return projector{
		pose:  pose,
		inv:   pose.Rotation.Conjugate(),
		w:     float64(w),
		h:     float64(h),
		focal: (float64(h) / 2) / math.Tan(half),
		near:  near,
	}
}

// project returns the screen position of p, or false when p is behind the
// near plane.
func (pr projector) project(p mgl64.Vec3) (x, y float64, ok bool) {
	v := pr.inv.Rotate(p.Sub(pr.pose.Position))
	if v[2] < pr.near {
		return 0, 0, false
	}
	x = pr.w/2 - v[0]*pr.focal/v[2]
	y = pr.h/2 - v[1]*pr.focal/v[2]
	return x, y, true
}

// line draws a world-space segment, skipping it when either end is clipped.
func (pr projector) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, c color.Color) {
	ax, ay, okA := pr.project(a)
	bx, by, okB := pr.project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, c, true)
}

// quad outlines the four corners in order.
func (pr projector) quad(screen *ebiten.Image, corners [4]mgl64.Vec3, width float32, c color.Color) {
	for i := range corners {
		pr.line(screen, corners[i], corners[(i+1)%4], width, c)
	}
}

// wireBox outlines an axis-aligned box.
func (pr projector) wireBox(screen *ebiten.Image, center, size mgl64.Vec3, c color.Color) {
	h := size.Mul(0.5)
	corner := func(sx, sy, sz float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{sx * h[0], sy * h[1], sz * h[2]})
	}
	for _, z := range []float64{-1, 1} {
		pr.quad(screen, [4]mgl64.Vec3{
			corner(-1, -1, z), corner(1, -1, z), corner(1, 1, z), corner(-1, 1, z),
		}, 1, c)
	}
	for _, xy := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		pr.line(screen, corner(xy[0], xy[1], -1), corner(xy[0], xy[1], 1), 1, c)
	}
}

// marker draws a small cross centred on p.
func (pr projector) marker(screen *ebiten.Image, p mgl64.Vec3, size float64, c color.Color) {
	pr.line(screen, p.Sub(mgl64.Vec3{size, 0, 0}), p.Add(mgl64.Vec3{size, 0, 0}), 2, c)
	pr.line(screen, p.Sub(mgl64.Vec3{0, size, 0}), p.Add(mgl64.Vec3{0, size, 0}), 2, c)
	pr.line(screen, p.Sub(mgl64.Vec3{0, 0, size}), p.Add(mgl64.Vec3{0, 0, size}), 2, c)
}

func cameraProjector(e *ecs.ECS, screen *ebiten.Image) (projector, *components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return projector{}, nil, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return newProjector(camera.Pose, width, height, cfg.Camera.FieldOfView, cfg.Camera.NearPlane), camera, true
}

// DrawWorld renders the floor grid, the rail volumes and the player through
// the rail camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	pr, camera, ok := cameraProjector(e, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	drawGrid(screen, pr, level)

	depth := cfg.Level.PlayerDepth
	tags.RailTrigger.Each(e.World, func(entry *donburi.Entry) {
		trigger := components.RailTrigger.Get(entry)
		obj := components.Object.Get(entry)
		c := cfg.Colors.Rail
		width := float32(1)
		if trigger.Name == camera.ActiveRail {
			c = cfg.Colors.ActiveRail
			width = 2
		}
		pr.quad(screen, railCorners(level, obj.X, obj.Y, obj.W, obj.H, depth), width, c)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry).Position
		size := cfg.Player.Size
		pr.wireBox(screen, p, mgl64.Vec3{size, size, size}, cfg.Colors.Player)
	}
}

func drawGrid(screen *ebiten.Image, pr projector, level *leveldata.RailLevel) {
	ppu := cfg.Level.PixelsPerUnit
	maxX := float64(level.MapWidth) / ppu
	maxY := float64(level.MapHeight) / ppu
	depth := cfg.Level.PlayerDepth
	c := color.RGBA{R: 40, G: 40, B: 52, A: 255}

	for x := 0.0; x <= maxX; x += gridStep {
		pr.line(screen, mgl64.Vec3{x, 0, depth}, mgl64.Vec3{x, maxY, depth}, 1, c)
	}
	for y := 0.0; y <= maxY; y += gridStep {
		pr.line(screen, mgl64.Vec3{0, y, depth}, mgl64.Vec3{maxX, y, depth}, 1, c)
	}
}

// railCorners converts a map-pixel rectangle to its world-space corners.
func railCorners(level *leveldata.RailLevel, x, y, w, h, depth float64) [4]mgl64.Vec3 {
	ppu := cfg.Level.PixelsPerUnit
	return [4]mgl64.Vec3{
		level.ToWorld(x, y, ppu, depth),
		level.ToWorld(x+w, y, ppu, depth),
		level.ToWorld(x+w, y+h, ppu, depth),
		level.ToWorld(x, y+h, ppu, depth),
	}
}
