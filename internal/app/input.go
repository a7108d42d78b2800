package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/scanalign/pkg/align"
	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
	"github.com/philipparndt/scanalign/pkg/slicing"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyR) {
		app.reset()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.mouseDownPos = rl.GetMousePosition()
		app.mouseMoved = false
	}

	// Camera rotation with mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.cameraAngleY += delta.X * 0.01
			app.cameraAngleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.cameraAngleX > 1.5 {
				app.cameraAngleX = 1.5
			}
			if app.cameraAngleX < -1.5 {
				app.cameraAngleX = -1.5
			}
		}
	}

	// Face pick on click (if mouse didn't move much)
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		currentPos := rl.GetMousePosition()
		dragDistance := rl.Vector2Distance(app.mouseDownPos, currentPos)
		if !app.mouseMoved && dragDistance < 5.0 {
			app.pickFace(currentPos)
		}
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= (1.0 - wheel*0.05)
		if app.cameraDistance < 0.1 {
			app.cameraDistance = 0.1
		}
	}
}

// pickFace casts the mouse ray against both scans and records the
// nearest face hit as a reference selection. The second confirmed pick
// starts the alignment.
func (app *App) pickFace(mousePos rl.Vector2) {
	if len(app.picks) >= 2 || (app.animator != nil && app.animator.Running()) {
		return
	}

	ray := rl.GetMouseRay(mousePos, app.camera)
	origin := geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z))
	dir := geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)).Normalize()

	var best *pick
	bestT := math.Inf(1)
	for _, m := range []*mesh.Mesh{app.fixed, app.moving} {
		if len(app.picks) == 1 && app.picks[0].target == m {
			continue // each scan contributes one reference face
		}
		face, t, ok := nearestFaceHit(m, origin, dir)
		if ok && t < bestT {
			bestT = t
			best = &pick{target: m, face: face}
		}
	}
	if best == nil {
		return
	}

	best.plane = align.SelectionPlane(best.target, best.face)

	segments, err := slicing.ExtractContour(best.target, best.plane)
	if err != nil {
		fmt.Printf("Contour extraction failed: %v\n", err)
	} else {
		// Store the highlight in the mesh local frame so it follows the
		// alignment rotation later on
		best.contour = toLocalFrame(slicing.Stitch(segments, slicing.StitchTolerance), best.target)
	}

	app.picks = append(app.picks, *best)
	if len(app.picks) == 2 {
		app.solve()
	} else {
		app.status = fmt.Sprintf("Picked a face on %s, now pick one on the other scan", best.target.Name)
	}
}

// toLocalFrame maps world-space polylines into the mesh local frame
func toLocalFrame(polylines []slicing.Polyline, m *mesh.Mesh) []slicing.Polyline {
	inverse, err := m.WorldTransform().Inverse()
	if err != nil {
		return polylines
	}
	local := make([]slicing.Polyline, len(polylines))
	for i, polyline := range polylines {
		points := make([]geometry.Vector3, len(polyline.Points))
		for j, p := range polyline.Points {
			points[j] = inverse.MulPoint(p)
		}
		local[i] = slicing.Polyline{Points: points, Closed: polyline.Closed}
	}
	return local
}

// nearestFaceHit intersects a world-space ray with a mesh and returns
// the nearest hit as a local-frame face pick
func nearestFaceHit(m *mesh.Mesh, origin, dir geometry.Vector3) (align.PickedFace, float64, bool) {
	inverse, err := m.WorldTransform().Inverse()
	if err != nil {
		return align.PickedFace{}, 0, false
	}
	localOrigin := inverse.MulPoint(origin)
	localDir := inverse.MulDirection(dir).Normalize()

	bestT := math.Inf(1)
	bestIdx := -1
	for _, i := range m.SpatialIndex().CandidatesAlongRay(localOrigin, localDir) {
		if t, ok := m.Triangles[i].IntersectRay(localOrigin, localDir); ok && t < bestT {
			bestT = t
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return align.PickedFace{}, 0, false
	}

	normal := m.Triangles[bestIdx].CalculateNormal()
	// Orient the normal toward the viewer
	if normal.Dot(localDir) > 0 {
		normal = normal.Mul(-1)
	}
	face := align.PickedFace{
		Point:  localOrigin.Add(localDir.Mul(bestT)),
		Normal: normal,
	}
	return face, bestT, true
}
