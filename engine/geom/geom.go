package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes: X = east, Y = up, Z = south. Entities face -Z at yaw 0.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, -1}
	RightX  = mgl64.Vec3{1, 0, 0}
)

// V3 is shorthand for building a vector
func V3(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

// YawQuat returns the rotation about the up axis
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// PitchQuat returns the rotation about the local X axis. Positive pitch
// lifts the forward axis toward +Y.
func PitchQuat(pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(pitch, RightX)
}

// ForwardFromYaw returns the unit facing vector for a yaw angle
func ForwardFromYaw(yaw float64) mgl64.Vec3 {
	return YawQuat(yaw).Rotate(Forward)
}

// LocalToWorld maps a local offset through an entity transform
func LocalToWorld(pos mgl64.Vec3, rot mgl64.Quat, local mgl64.Vec3) mgl64.Vec3 {
	return pos.Add(rot.Rotate(local))
}

// Flatten drops the vertical component
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Distance is the euclidean distance between two points
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// HorizontalDist is the distance on the XZ plane
func HorizontalDist(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dz*dz)
}

// Lerp interpolates between a and b
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Segment describes a straight span between two points, used to place
// stretched meshes (cylinders whose local +Y runs along the span).
type Segment struct {
	From, To    mgl64.Vec3
	Mid         mgl64.Vec3
	Length      float64
	Orientation mgl64.Quat
}

// NewSegment computes midpoint, length and the rotation taking +Y onto
// the from->to direction
func NewSegment(from, to mgl64.Vec3) Segment {
	d := to.Sub(from)
	s := Segment{
		From:        from,
		To:          to,
		Mid:         Lerp(from, to, 0.5),
		Length:      d.Len(),
		Orientation: mgl64.QuatIdent(),
	}
	if s.Length > 1e-9 {
		s.Orientation = mgl64.QuatBetweenVectors(Up, d.Mul(1/s.Length))
	}
	return s
}
