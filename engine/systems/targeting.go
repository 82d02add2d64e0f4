package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
)

// ClosestVehicle finds the nearest alive vehicle to from. Ties go to the
// vehicle created first.
func ClosestVehicle(w *core.World, from mgl64.Vec3) (*core.Vehicle, float64, bool) {
	var best *core.Vehicle
	bestDist := 0.0
	for _, v := range w.AliveVehicles() {
		d := geom.Distance(from, v.Pos)
		if best == nil || d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, bestDist, best != nil
}
