package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/scanalign/pkg/geometry"
	"github.com/philipparndt/scanalign/pkg/mesh"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// draw renders one frame
func (app *App) draw() {
	app.updateCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(32, 32, 38, 255))

	rl.BeginMode3D(app.camera)

	app.drawMesh(app.fixed, rl.NewColor(150, 150, 150, 255))
	app.drawMesh(app.moving, rl.NewColor(100, 160, 230, 255))

	for _, p := range app.picks {
		app.drawContour(p)
	}
	if app.alignment != nil {
		app.drawLandmarks()
	}

	rl.EndMode3D()

	rl.DrawText(app.status, 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("%s: %d triangles   %s: %d triangles",
		app.fixed.Name, app.fixed.TriangleCount(),
		app.moving.Name, app.moving.TriangleCount()),
		10, 36, 10, rl.LightGray)
	rl.DrawText("drag: orbit   wheel: zoom   click: pick face   R: reset", 10, 52, 10, rl.LightGray)

	rl.EndDrawing()
}

// drawMesh renders a scan as a wireframe in its current world transform
func (app *App) drawMesh(m *mesh.Mesh, color rl.Color) {
	world := m.WorldTransform()
	for _, t := range m.Triangles {
		v1 := toRaylib(world.MulPoint(t.V1))
		v2 := toRaylib(world.MulPoint(t.V2))
		v3 := toRaylib(world.MulPoint(t.V3))
		rl.DrawLine3D(v1, v2, color)
		rl.DrawLine3D(v2, v3, color)
		rl.DrawLine3D(v3, v1, color)
	}
}

// drawContour highlights the cross-section polylines of a pick. The
// contour is stored in the mesh local frame and drawn in the current
// world transform, so it rotates with the assembly.
func (app *App) drawContour(p pick) {
	world := p.target.WorldTransform()
	color := rl.NewColor(230, 80, 80, 255)
	for _, polyline := range p.contour {
		for i := 0; i+1 < len(polyline.Points); i++ {
			a := world.MulPoint(polyline.Points[i])
			b := world.MulPoint(polyline.Points[i+1])
			rl.DrawLine3D(toRaylib(a), toRaylib(b), color)
		}
		if polyline.Closed && len(polyline.Points) > 2 {
			a := world.MulPoint(polyline.Points[len(polyline.Points)-1])
			b := world.MulPoint(polyline.Points[0])
			rl.DrawLine3D(toRaylib(a), toRaylib(b), color)
		}
	}
}

// drawLandmarks renders the two alignment anchor points, rotated along
// with the assembly
func (app *App) drawLandmarks() {
	t := app.assemblyTransform()
	radius := app.defaultDist * 0.008
	rl.DrawSphere(toRaylib(t.MulPoint(app.landmarks[0])), radius, rl.NewColor(240, 200, 60, 255))
	rl.DrawSphere(toRaylib(t.MulPoint(app.landmarks[1])), radius, rl.NewColor(240, 130, 50, 255))
}
