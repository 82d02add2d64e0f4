package render3d

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// Model palette
var (
	ColorMachineGunHull = Color3{0.82, 0.71, 0.55}
	ColorCannonHull     = Color3{0.29, 0.44, 0.65}
	ColorBarrel         = Color3{0.2, 0.2, 0.2}
	ColorTripod         = Color3{0.75, 0.75, 0.78}
	ColorEmitter        = Color3{0.6, 0.1, 0.1}
	ColorTracer         = Color3{1.0, 0.9, 0.3}
	ColorShell          = Color3{0.15, 0.15, 0.15}
	ColorBeam           = Color3{1, 1, 1}
)

// HullColor is the default paint of a vehicle by weapon
func HullColor(kind core.WeaponKind) Color3 {
	if kind == core.WeaponCannon {
		return ColorCannonHull
	}
	return ColorMachineGunHull
}

// MakeHull returns the vehicle body in hull-local space
func MakeHull(kind core.WeaponKind) *Mesh3D {
	hull := MakeBox(2, 1, 3, HullColor(kind))
	turret := MakeBox(1.2, 0.5, 1.2, HullColor(kind)).Transform(mgl64.Translate3D(0, 0.5, 0))
	hull.Append(turret)
	return hull
}

// MakeBarrel returns the barrel in pivot-local space, pointing along -Z
func MakeBarrel(kind core.WeaponKind) *Mesh3D {
	spec := kind.Spec()
	length := -spec.Barrel.Z()
	radius := 0.1
	if kind == core.WeaponCannon {
		radius = 0.2
	}
	// cylinder axis Y turned onto -Z, then centred along the barrel
	return MakeCylinder(radius, length, 8, ColorBarrel).
		Transform(mgl64.Translate3D(0, 0, -length/2).Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(90))))
}

// Enemy part meshes in enemy-local space
func MakeTripodBody() *Mesh3D {
	return MakeSphere(core.BodyRadius, 8, 12, ColorTripod).
		Transform(mgl64.Translate3D(core.BodyOffset.Elem()))
}

func MakeTripodLeg(i int) *Mesh3D {
	a := core.LegOffsets[i]
	return MakeCylinder(core.LegRadius, 2*core.LegHalfHeight, 8, ColorTripod).
		Transform(mgl64.Translate3D(a.Elem()))
}

func MakeEmitter() *Mesh3D {
	return MakeSphere(0.5, 6, 8, ColorEmitter).
		Transform(mgl64.Translate3D(core.EmitterOffset.Elem()))
}

// MakeProjectile returns a shot centred on the origin
func MakeProjectile(kind core.WeaponKind) *Mesh3D {
	if kind == core.WeaponCannon {
		return MakeSphere(0.3, 4, 6, ColorShell)
	}
	return MakeBox(0.15, 0.15, 0.5, ColorTracer)
}

// MakeBeam returns a unit-radius beam for a segment
func MakeBeam(length float64) *Mesh3D {
	return MakeCylinder(0.1, length, 6, ColorBeam)
}

// GenerateGroundMesh builds a checkerboard plane of size×size tiles
// centred on the origin
func GenerateGroundMesh(size int, tile float64) *Mesh3D {
	mesh := NewMesh()
	up := mgl64.Vec3{0, 1, 0}
	light := Color3{0.85, 0.76, 0.58}
	dark := Color3{0.78, 0.69, 0.52}
	half := float64(size) * tile / 2

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			c := light
			if (x+z)%2 == 1 {
				c = dark
			}
			x0 := float64(x)*tile - half
			z0 := float64(z)*tile - half
			mesh.AddQuad(
				Vertex3D{Pos: mgl64.Vec3{x0, 0, z0}, Normal: up, Color: c},
				Vertex3D{Pos: mgl64.Vec3{x0, 0, z0 + tile}, Normal: up, Color: c},
				Vertex3D{Pos: mgl64.Vec3{x0 + tile, 0, z0 + tile}, Normal: up, Color: c},
				Vertex3D{Pos: mgl64.Vec3{x0 + tile, 0, z0}, Normal: up, Color: c},
			)
		}
	}
	return mesh
}
