package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
)

// Effective hit radii
const (
	BodyHitRadius = core.BodyRadius + core.HitBuffer
	LegHitRadius  = core.LegRadius + core.HitBuffer
)

// BodyHit tests a point against the tripod body sphere
func BodyHit(pos mgl64.Vec3, e *core.Enemy) bool {
	return geom.Distance(pos, e.BodyCenter()) < BodyHitRadius
}

// LegHit tests a point against a vertical leg cylinder centred on anchor
func LegHit(pos, anchor mgl64.Vec3) bool {
	if geom.HorizontalDist(pos, anchor) >= LegHitRadius {
		return false
	}
	return pos.Y() >= anchor.Y()-core.LegHalfHeight && pos.Y() <= anchor.Y()+core.LegHalfHeight
}

// TestHit reports whether pos is inside any part of e and which part was
// struck. The body is checked before the legs; the first match wins.
func TestHit(pos mgl64.Vec3, e *core.Enemy) (bool, core.Part) {
	if BodyHit(pos, e) {
		return true, core.PartBody
	}
	for i := range core.LegOffsets {
		if LegHit(pos, e.LegAnchor(i)) {
			return true, core.LegPart(i)
		}
	}
	return false, 0
}
