package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex3D is a vertex with position, normal, and color
type Vertex3D struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	Color  Color3
}

// Triangle3D is three vertices
type Triangle3D struct {
	V [3]Vertex3D
}

// Mesh3D is a collection of triangles sharing one surface
type Mesh3D struct {
	Triangles []Triangle3D
	Emissive  Color3
	Opacity   float64
}

func NewMesh() *Mesh3D { return &Mesh3D{Opacity: 1} }

func (m *Mesh3D) AddTriangle(v0, v1, v2 Vertex3D) {
	m.Triangles = append(m.Triangles, Triangle3D{V: [3]Vertex3D{v0, v1, v2}})
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

// Transform returns a copy of m with every vertex mapped through mat
func (m *Mesh3D) Transform(mat mgl64.Mat4) *Mesh3D {
	out := &Mesh3D{
		Triangles: make([]Triangle3D, len(m.Triangles)),
		Emissive:  m.Emissive,
		Opacity:   m.Opacity,
	}
	for i, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			out.Triangles[i].V[j] = tri.V[j]
			out.Triangles[i].V[j].Pos = mgl64.TransformCoordinate(tri.V[j].Pos, mat)
			n := mgl64.TransformNormal(tri.V[j].Normal, mat)
			if n.Len() > 0 {
				n = n.Normalize()
			}
			out.Triangles[i].V[j].Normal = n
		}
	}
	return out
}

func (m *Mesh3D) Append(other *Mesh3D) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Apply repaints the mesh with a resolved surface
func (m *Mesh3D) Apply(s Surface) *Mesh3D {
	for i := range m.Triangles {
		for j := 0; j < 3; j++ {
			m.Triangles[i].V[j].Color = s.Base
		}
	}
	m.Emissive = s.Emissive
	m.Opacity = s.Opacity
	return m
}

// --- Primitive generators ---

func MakeBox(w, h, d float64, c Color3) *Mesh3D {
	m := NewMesh()
	hw, hh, hd := w/2, h/2, d/2

	v := [8]mgl64.Vec3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}

	faces := [][4]int{
		{0, 1, 2, 3}, // front
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	normals := []mgl64.Vec3{
		{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}

	for fi, f := range faces {
		n := normals[fi]
		m.AddQuad(
			Vertex3D{Pos: v[f[0]], Normal: n, Color: c},
			Vertex3D{Pos: v[f[1]], Normal: n, Color: c},
			Vertex3D{Pos: v[f[2]], Normal: n, Color: c},
			Vertex3D{Pos: v[f[3]], Normal: n, Color: c},
		)
	}
	return m
}

// MakeCylinder builds a Y-axis cylinder centred on the origin
func MakeCylinder(radius, height float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 6 {
		segments = 6
	}
	hh := height / 2
	top := mgl64.Vec3{0, hh, 0}
	bot := mgl64.Vec3{0, -hh, 0}
	topN := mgl64.Vec3{0, 1, 0}
	botN := mgl64.Vec3{0, -1, 0}

	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		x0, z0 := radius*math.Cos(a0), radius*math.Sin(a0)
		x1, z1 := radius*math.Cos(a1), radius*math.Sin(a1)

		p0t := mgl64.Vec3{x0, hh, z0}
		p1t := mgl64.Vec3{x1, hh, z1}
		p0b := mgl64.Vec3{x0, -hh, z0}
		p1b := mgl64.Vec3{x1, -hh, z1}

		n0 := mgl64.Vec3{math.Cos(a0), 0, math.Sin(a0)}
		n1 := mgl64.Vec3{math.Cos(a1), 0, math.Sin(a1)}

		m.AddQuad(
			Vertex3D{Pos: p0b, Normal: n0, Color: c},
			Vertex3D{Pos: p1b, Normal: n1, Color: c},
			Vertex3D{Pos: p1t, Normal: n1, Color: c},
			Vertex3D{Pos: p0t, Normal: n0, Color: c},
		)
		m.AddTriangle(
			Vertex3D{Pos: top, Normal: topN, Color: c},
			Vertex3D{Pos: p0t, Normal: topN, Color: c},
			Vertex3D{Pos: p1t, Normal: topN, Color: c},
		)
		m.AddTriangle(
			Vertex3D{Pos: bot, Normal: botN, Color: c},
			Vertex3D{Pos: p1b, Normal: botN, Color: c},
			Vertex3D{Pos: p0b, Normal: botN, Color: c},
		)
	}
	return m
}

// MakeSphere builds a UV sphere centred on the origin
func MakeSphere(radius float64, rings, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if rings < 3 {
		rings = 3
	}
	if segments < 6 {
		segments = 6
	}
	point := func(ring, seg int) Vertex3D {
		phi := float64(ring) / float64(rings) * math.Pi
		theta := float64(seg) / float64(segments) * 2 * math.Pi
		n := mgl64.Vec3{
			math.Sin(phi) * math.Cos(theta),
			math.Cos(phi),
			math.Sin(phi) * math.Sin(theta),
		}
		return Vertex3D{Pos: n.Mul(radius), Normal: n, Color: c}
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			m.AddQuad(point(r, s), point(r, s+1), point(r+1, s+1), point(r+1, s))
		}
	}
	return m
}
