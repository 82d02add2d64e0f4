package render3d

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
)

const (
	groundTiles = 40
	groundTile  = 5.0
)

// Renderer3D draws the arena with a software rasterising pipeline on top
// of ebiten triangles
type Renderer3D struct {
	Camera    *Camera3D
	Lighting  LightingSetup
	Particles *ParticleSystem

	// Internal
	whiteImg *ebiten.Image
	time     float64

	hulls   map[core.WeaponKind]*Mesh3D
	barrels map[core.WeaponKind]*Mesh3D
	shots   map[core.WeaponKind]*Mesh3D
	parts   map[core.Part]*Mesh3D
	ground  *Mesh3D

	tris []drawTri
}

// drawTri is one projected triangle waiting for the painter sort
type drawTri struct {
	v     [3]ebiten.Vertex
	depth float64
}

// NewRenderer3D creates the 3D renderer
func NewRenderer3D(screenW, screenH int) *Renderer3D {
	r := &Renderer3D{
		Camera:    NewCamera3D(screenW, screenH),
		Lighting:  DefaultLighting(),
		Particles: NewParticleSystem(),
		hulls:     make(map[core.WeaponKind]*Mesh3D),
		barrels:   make(map[core.WeaponKind]*Mesh3D),
		shots:     make(map[core.WeaponKind]*Mesh3D),
		parts:     make(map[core.Part]*Mesh3D),
	}

	// 1x1 white image for colored triangle rendering
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// Update advances time-based effects
func (r *Renderer3D) Update(dt float64) {
	r.time += dt
	r.Particles.Update(dt)
}

// Follow lets the renderer stand in as the simulation camera
func (r *Renderer3D) Follow(target mgl64.Vec3, yaw float64) {
	r.Camera.Follow(target, yaw)
}

// DrawSkyGradient fills the screen with a pale horizon gradient
func (r *Renderer3D) DrawSkyGradient(screen *ebiten.Image) {
	h := r.Camera.ScreenH
	w := r.Camera.ScreenW
	// Draw in bands for efficiency
	bands := 32
	bandH := h / bands
	if bandH < 1 {
		bandH = 1
	}
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		cr := uint8(120 + t*100)
		cg := uint8(160 + t*70)
		cb := uint8(210 + t*30)
		by := i * bandH
		bh := bandH
		if i == bands-1 {
			bh = h - by
		}
		vector.DrawFilledRect(screen, 0, float32(by), float32(w), float32(bh), color.RGBA{cr, cg, cb, 255}, false)
	}
}

// DrawScene renders the ground, every entity the scene knows about, the
// heat ray beams and particles
func (r *Renderer3D) DrawScene(screen *ebiten.Image, world *core.World, scene *Scene) {
	r.DrawSkyGradient(screen)

	if r.ground == nil {
		r.ground = GenerateGroundMesh(groundTiles, groundTile)
	}
	r.tris = r.tris[:0]
	r.collect(r.ground)
	r.flush(screen, false)

	for _, v := range world.Vehicles() {
		if _, ok := scene.Entity(v.ID); !ok {
			continue
		}
		r.collectVehicle(v, scene)
	}
	for _, e := range world.Enemies() {
		if _, ok := scene.Entity(e.ID); !ok {
			continue
		}
		r.collectEnemy(e, scene)
	}
	for _, p := range world.Projectiles() {
		if _, ok := scene.Entity(p.ID); !ok {
			continue
		}
		r.collect(r.shotMesh(p.Weapon).Transform(mgl64.Translate3D(p.Pos.Elem())))
	}
	for _, b := range scene.Beams() {
		r.collectBeam(b)
	}
	r.collect(r.Particles.GenerateParticleMeshes())
	r.flush(screen, true)

	for _, v := range world.AliveVehicles() {
		sx, sy, _, ok := r.Camera.Project(v.Pos.Add(mgl64.Vec3{0, 2, 0}))
		if ok {
			r.DrawHealthBar(screen, int(sx), int(sy), v.Health.Ratio(), 40)
		}
	}
}

func (r *Renderer3D) collectVehicle(v *core.Vehicle, scene *Scene) {
	hull, ok := r.hulls[v.Weapon]
	if !ok {
		hull = MakeHull(v.Weapon)
		r.hulls[v.Weapon] = hull
	}
	barrel, ok := r.barrels[v.Weapon]
	if !ok {
		barrel = MakeBarrel(v.Weapon)
		r.barrels[v.Weapon] = barrel
	}

	hullM := mgl64.Translate3D(v.Pos.Elem()).Mul4(v.Rotation().Mat4())
	placed := hull.Transform(hullM)
	placed.Apply(SurfaceFor(scene.Look(v.ID, core.PartHull), HullColor(v.Weapon)))
	r.collect(placed)

	pivot := geom.LocalToWorld(v.Pos, v.Rotation(), v.Weapon.Spec().Pivot)
	barrelM := mgl64.Translate3D(pivot.Elem()).Mul4(v.BarrelRotation().Mat4())
	placed = barrel.Transform(barrelM)
	placed.Apply(SurfaceFor(scene.Look(v.ID, core.PartBarrel), ColorBarrel))
	r.collect(placed)
}

func (r *Renderer3D) collectEnemy(e *core.Enemy, scene *Scene) {
	at := mgl64.Translate3D(e.Pos.Elem())
	for _, part := range core.EnemyParts {
		mesh := r.partMesh(part)
		fallback := ColorTripod
		if part == core.PartEmitter {
			fallback = ColorEmitter
		}
		placed := mesh.Transform(at)
		placed.Apply(SurfaceFor(scene.Look(e.ID, part), fallback))
		r.collect(placed)
	}
}

func (r *Renderer3D) collectBeam(b core.Beam) {
	if b.Length <= 0 {
		return
	}
	m := mgl64.Translate3D(b.Mid.Elem()).Mul4(b.Orientation.Mat4())
	c := FromRGBA(b.Color)
	placed := MakeBeam(b.Length).Transform(m)
	placed.Apply(Surface{Base: c, Emissive: c, Opacity: b.Opacity})
	r.collect(placed)
}

func (r *Renderer3D) partMesh(part core.Part) *Mesh3D {
	if m, ok := r.parts[part]; ok {
		return m
	}
	var m *Mesh3D
	switch part {
	case core.PartBody:
		m = MakeTripodBody()
	case core.PartEmitter:
		m = MakeEmitter()
	default:
		m = MakeTripodLeg(int(part - core.PartLeg1))
	}
	r.parts[part] = m
	return m
}

func (r *Renderer3D) shotMesh(kind core.WeaponKind) *Mesh3D {
	if m, ok := r.shots[kind]; ok {
		return m
	}
	m := MakeProjectile(kind)
	r.shots[kind] = m
	return m
}

// collect projects and lights a world-space mesh into the pending batch
func (r *Renderer3D) collect(mesh *Mesh3D) {
	if len(mesh.Triangles) == 0 {
		return
	}
	sw := float64(r.Camera.ScreenW)
	sh := float64(r.Camera.ScreenH)
	surface := Surface{Emissive: mesh.Emissive, Opacity: mesh.Opacity}

	for _, tri := range mesh.Triangles {
		var dt drawTri
		allOffScreen := true
		visible := true

		for i := 0; i < 3; i++ {
			v := tri.V[i]
			sx, sy, depth, ok := r.Camera.Project(v.Pos)
			if !ok {
				visible = false
				break
			}
			if sx >= -100 && sx <= sw+100 && sy >= -100 && sy <= sh+100 {
				allOffScreen = false
			}
			surface.Base = v.Color
			lit := r.Lighting.Shade(v.Normal, surface)

			dt.depth += depth / 3
			dt.v[i] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(lit.R),
				ColorG: float32(lit.G),
				ColorB: float32(lit.B),
				ColorA: float32(mesh.Opacity),
			}
		}
		if !visible || allOffScreen {
			continue
		}

		// Degenerate after projection
		ax := dt.v[1].DstX - dt.v[0].DstX
		ay := dt.v[1].DstY - dt.v[0].DstY
		bx := dt.v[2].DstX - dt.v[0].DstX
		by := dt.v[2].DstY - dt.v[0].DstY
		cross := ax*by - ay*bx
		if cross < 0.01 && cross > -0.01 {
			continue
		}
		r.tris = append(r.tris, dt)
	}
}

// flush draws the pending triangles, farthest first when sorted is set
func (r *Renderer3D) flush(screen *ebiten.Image, sorted bool) {
	if sorted {
		sort.SliceStable(r.tris, func(i, j int) bool {
			return r.tris[i].depth > r.tris[j].depth
		})
	}

	vertices := make([]ebiten.Vertex, 0, len(r.tris)*3)
	indices := make([]uint16, 0, len(r.tris)*3)
	for _, t := range r.tris {
		base := uint16(len(vertices))
		vertices = append(vertices, t.v[0], t.v[1], t.v[2])
		indices = append(indices, base, base+1, base+2)

		// Flush if approaching uint16 limit
		if len(vertices) >= 65000 {
			screen.DrawTriangles(vertices, indices, r.whiteImg, nil)
			vertices = vertices[:0]
			indices = indices[:0]
		}
	}
	if len(vertices) > 0 {
		screen.DrawTriangles(vertices, indices, r.whiteImg, nil)
	}
	r.tris = r.tris[:0]
}

// DrawHealthBar draws a health bar at screen position
func (r *Renderer3D) DrawHealthBar(screen *ebiten.Image, sx, sy int, ratio float64, width int) {
	barH := float32(4)
	barW := float32(width)
	bx := float32(sx) - barW/2
	by := float32(sy) - 5

	// Background
	vector.DrawFilledRect(screen, bx, by, barW, barH, color.RGBA{40, 40, 40, 200}, false)

	vector.DrawFilledRect(screen, bx, by, barW*float32(ratio), barH, HealthColor(ratio), false)
}

// HealthColor grades a fill ratio green, amber or red
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return color.RGBA{0, 200, 0, 255}
	case ratio > 0.3:
		return color.RGBA{255, 200, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
