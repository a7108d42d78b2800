// Package app is the interactive alignment viewer: it renders the two
// scan meshes, lets the user pick a reference face on each, shows the
// resulting cross-section contours and animates the two-phase alignment
// rotation.
package app

import (
	"fmt"
	"math"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/scanalign/pkg/align"
	"github.com/philipparndt/scanalign/pkg/animate"
	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
	"github.com/philipparndt/scanalign/pkg/slicing"
	"github.com/philipparndt/scanalign/pkg/stl"
	"github.com/philipparndt/scanalign/pkg/watcher"
	"github.com/philipparndt/scanalign/version"
)

// pick is one confirmed face selection with its derived plane and the
// contour shown as highlight
type pick struct {
	target  *mesh.Mesh
	face    align.PickedFace
	plane   geometry.Plane
	contour []slicing.Polyline
}

// App holds the viewer state
type App struct {
	fixed      *mesh.Mesh
	moving     *mesh.Mesh
	fixedPath  string
	movingPath string

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3
	defaultDist    float32

	mouseDownPos rl.Vector2
	mouseMoved   bool

	picks     []pick
	landmarks [2]geometry.Vector3

	alignment *align.Alignment
	animator  *animate.Animator
	animAxis  align.Axis
	angleX    float64 // applied assembly rotation about X (phase 1)
	angleZ    float64 // applied assembly rotation about Z (phase 2)

	fileWatcher *watcher.FileWatcher
	reloadMu    sync.Mutex
	reloadPaths []string

	status string
}

// Run loads both scans and enters the viewer loop
func Run(fixedPath, movingPath string) error {
	fixed, err := stl.Load(fixedPath)
	if err != nil {
		return fmt.Errorf("loading fixed scan: %w", err)
	}
	moving, err := stl.Load(movingPath)
	if err != nil {
		return fmt.Errorf("loading moving scan: %w", err)
	}

	app := &App{
		fixed:      fixed,
		moving:     moving,
		fixedPath:  fixedPath,
		movingPath: movingPath,
		animator:   animate.New(animate.DefaultDuration),
		status:     "Pick a reference face on each scan",
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "scanalign "+version.GetVersion())
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app.setupCamera()

	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: file watching unavailable: %v\n", err)
	} else {
		defer app.fileWatcher.Close()
	}

	for !rl.WindowShouldClose() {
		app.applyPendingReloads()
		app.handleInput()
		app.advanceAnimation(time.Now())
		app.draw()
	}
	return nil
}

// setupCamera frames both meshes
func (app *App) setupCamera() {
	bbox := app.fixed.BoundingBox()
	bbox.ExtendBox(app.moving.BoundingBox())
	center := bbox.Center()
	maxDim := math.Max(bbox.Size().X, math.Max(bbox.Size().Y, bbox.Size().Z))

	app.cameraTarget = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.cameraDistance = float32(maxDim * 2.0)
	app.defaultDist = app.cameraDistance
	app.cameraAngleX = 0.3
	app.cameraAngleY = 0.3

	app.camera = rl.Camera3D{
		Position:   rl.Vector3{Z: app.cameraDistance},
		Target:     app.cameraTarget,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// setupFileWatcher reloads a scan when its file changes on disk
func (app *App) setupFileWatcher() error {
	fw, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		return err
	}
	if err := fw.Watch([]string{app.fixedPath, app.movingPath}, func(path string) {
		app.reloadMu.Lock()
		app.reloadPaths = append(app.reloadPaths, path)
		app.reloadMu.Unlock()
	}); err != nil {
		fw.Close()
		return err
	}
	app.fileWatcher = fw
	return nil
}

// applyPendingReloads picks up watcher events on the render thread
func (app *App) applyPendingReloads() {
	app.reloadMu.Lock()
	paths := app.reloadPaths
	app.reloadPaths = nil
	app.reloadMu.Unlock()

	for _, path := range paths {
		m, err := stl.Load(path)
		if err != nil {
			fmt.Printf("Reload of %s failed: %v\n", path, err)
			continue
		}
		if path == app.fixedPath || m.Name == app.fixed.Name {
			app.fixed = m
		} else {
			app.moving = m
		}
		fmt.Printf("Reloaded %s (%d triangles)\n", path, m.TriangleCount())
		app.reset()
	}
}

// reset clears picks, alignment progress and assembly rotation
func (app *App) reset() {
	app.picks = nil
	app.alignment = nil
	app.animator = animate.New(animate.DefaultDuration)
	app.angleX = 0
	app.angleZ = 0
	app.applyAssemblyTransform()
	app.status = "Pick a reference face on each scan"
}

// assemblyTransform is the rotation currently applied to both scans
func (app *App) assemblyTransform() geometry.Matrix4 {
	return geometry.RotationZ(app.angleZ).Mul(geometry.RotationX(app.angleX))
}

func (app *App) applyAssemblyTransform() {
	t := app.assemblyTransform()
	app.fixed.SetWorldTransform(t)
	app.moving.SetWorldTransform(t)
}

// solve derives landmarks from the two picked planes and starts the
// first rotation
func (app *App) solve() {
	p1, p2, err := align.Landmarks(
		app.picks[0].target, app.picks[0].plane,
		app.picks[1].target, app.picks[1].plane)
	if err != nil {
		app.status = fmt.Sprintf("Alignment unavailable: %v", err)
		return
	}
	app.landmarks = [2]geometry.Vector3{p1, p2}

	app.alignment = align.NewAlignment(p1, p2)
	rotation, err := app.alignment.Start()
	if err != nil {
		app.status = fmt.Sprintf("Alignment failed: %v", err)
		return
	}
	app.startRotation(rotation)
	app.status = fmt.Sprintf("Rotating about %s by %.3f rad", rotation.Axis, rotation.Angle)
}

// startRotation hands one single-axis rotation to the animator
func (app *App) startRotation(rotation align.Rotation) {
	app.animAxis = rotation.Axis
	app.animator.Start(time.Now(), 0, rotation.Angle, app.onRotationComplete)
}

// onRotationComplete advances the alignment state machine; the second
// phase starts only on this real completion signal
func (app *App) onRotationComplete() {
	if app.alignment == nil {
		return
	}
	if err := app.alignment.RotationComplete(); err != nil {
		fmt.Printf("Alignment state error: %v\n", err)
		return
	}
	switch app.alignment.Phase() {
	case align.PhaseAwaitingSecond:
		rotation, err := app.alignment.BeginSecond()
		if err != nil {
			fmt.Printf("Alignment state error: %v\n", err)
			return
		}
		app.startRotation(rotation)
		app.status = fmt.Sprintf("Rotating about %s by %.3f rad", rotation.Axis, rotation.Angle)
	case align.PhaseDone:
		app.status = "Alignment done (R to reset)"
	}
}

// advanceAnimation applies the in-flight rotation for this frame
func (app *App) advanceAnimation(now time.Time) {
	if !app.animator.Running() {
		return
	}
	// Capture the axis first: the completion callback inside Value may
	// already start the next phase on the other axis
	axis := app.animAxis
	value := app.animator.Value(now)
	switch axis {
	case align.AxisX:
		app.angleX = value
	case align.AxisZ:
		app.angleZ = value
	}
	app.applyAssemblyTransform()
}
