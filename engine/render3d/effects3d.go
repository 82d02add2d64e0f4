package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle represents a single particle in 3D space
type Particle struct {
	Pos     mgl64.Vec3
	Vel     mgl64.Vec3
	Color   Color3
	Alpha   float64
	Size    float64
	Life    float64
	MaxLife float64
}

// ParticleSystem manages particles
type ParticleSystem struct {
	Particles []Particle
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// AddExplosion spawns a fireball and smoke around a point
func (ps *ParticleSystem) AddExplosion(at mgl64.Vec3) {
	for i := 0; i < 24; i++ {
		angle := float64(i) / 24.0 * 2 * math.Pi
		speed := 1.5 + float64(i%5)*0.6
		ps.Particles = append(ps.Particles, Particle{
			Pos:     at,
			Vel:     mgl64.Vec3{math.Cos(angle) * speed, 2.0 + float64(i%3), math.Sin(angle) * speed},
			Color:   Color3{1.0, 0.5 + float64(i%5)*0.08, 0.1},
			Alpha:   1.0,
			Size:    0.5 + float64(i%3)*0.2,
			MaxLife: 0.6 + float64(i%4)*0.15,
		})
	}
	for i := 0; i < 10; i++ {
		angle := float64(i) / 10.0 * 2 * math.Pi
		ps.Particles = append(ps.Particles, Particle{
			Pos:     at,
			Vel:     mgl64.Vec3{math.Cos(angle) * 0.6, 1.5, math.Sin(angle) * 0.6},
			Color:   Color3{0.3, 0.3, 0.3},
			Alpha:   0.7,
			Size:    0.8,
			MaxLife: 1.2 + float64(i%3)*0.3,
		})
	}
}

// AddMuzzleFlash spawns a brief muzzle flash
func (ps *ParticleSystem) AddMuzzleFlash(at mgl64.Vec3) {
	ps.Particles = append(ps.Particles, Particle{
		Pos:     at,
		Vel:     mgl64.Vec3{0, 0.1, 0},
		Color:   Color3{1.0, 0.9, 0.3},
		Alpha:   1.0,
		Size:    0.4,
		MaxLife: 0.1,
	})
}

// Update advances particles
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.Particles[:0]
	for i := range ps.Particles {
		p := &ps.Particles[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Vel[1] -= 2.0 * dt // gravity
		p.Alpha = 1.0 - p.Life/p.MaxLife
		alive = append(alive, *p)
	}
	ps.Particles = alive
}

// GenerateParticleMeshes creates renderable quads for all particles (billboard approximation)
func (ps *ParticleSystem) GenerateParticleMeshes() *Mesh3D {
	mesh := NewMesh()
	up := mgl64.Vec3{0, 1, 0}

	for _, p := range ps.Particles {
		if p.Alpha < 0.01 {
			continue
		}
		// Simple flat quad on XZ plane at particle height
		hs := p.Size / 2
		c := p.Color.Scale(p.Alpha)
		x, y, z := p.Pos.Elem()
		mesh.AddQuad(
			Vertex3D{Pos: mgl64.Vec3{x - hs, y, z - hs}, Normal: up, Color: c},
			Vertex3D{Pos: mgl64.Vec3{x + hs, y, z - hs}, Normal: up, Color: c},
			Vertex3D{Pos: mgl64.Vec3{x + hs, y, z + hs}, Normal: up, Color: c},
			Vertex3D{Pos: mgl64.Vec3{x - hs, y, z + hs}, Normal: up, Color: c},
		)
	}
	return mesh
}
