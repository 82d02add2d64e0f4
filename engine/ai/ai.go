package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
	"github.com/1siamBot/tripod-arena/engine/systems"
)

// Tripod behaviour tuning
const (
	DefaultRecognitionRange = 20.0
	WanderRadius            = 10.0
	WanderMinInterval       = 2.0 // seconds
	WanderIntervalSpread    = 3.0
	ArrivalDistance         = 0.5
	SeparationDistance      = 6.0
	SpeedFactor             = 0.5 // relative to vehicle move speed
)

// AISystem steers every alive tripod toward the nearest vehicle when it is
// recognised, and wanders otherwise
type AISystem struct {
	RecognitionRange float64
}

func (s *AISystem) Priority() int { return 20 }

func (s *AISystem) Update(w *core.World, dt float64) {
	for _, e := range w.AliveEnemies() {
		s.Think(w, e, dt)
	}
}

// Think runs one decision and movement step for a single tripod
func (s *AISystem) Think(w *core.World, e *core.Enemy, dt float64) {
	target, dist, ok := systems.ClosestVehicle(w, e.Pos)
	if !ok {
		return
	}

	var goal mgl64.Vec3
	if dist < s.recognitionRange() {
		goal = target.Pos
	} else {
		goal = wander(w, e, dt)
	}

	dir := geom.Flatten(goal.Sub(e.Pos))
	if dir.Len() <= ArrivalDistance {
		return
	}
	step := dir.Normalize().Mul(systems.VehicleMoveSpeed * SpeedFactor * dt)
	next := e.Pos.Add(step)
	if CanMove(w, e, next) {
		e.Pos = next
	}
}

func (s *AISystem) recognitionRange() float64 {
	if s.RecognitionRange > 0 {
		return s.RecognitionRange
	}
	return DefaultRecognitionRange
}

// wander counts down the wander timer and picks a fresh ground target
// around the tripod when it expires
func wander(w *core.World, e *core.Enemy, dt float64) mgl64.Vec3 {
	e.WanderTimer -= dt
	if e.WanderTimer <= 0 {
		e.WanderTarget = mgl64.Vec3{
			e.Pos.X() + (w.Rand.Float64()-0.5)*2*WanderRadius,
			0,
			e.Pos.Z() + (w.Rand.Float64()-0.5)*2*WanderRadius,
		}
		e.WanderTimer = WanderMinInterval + w.Rand.Float64()*WanderIntervalSpread
	}
	return e.WanderTarget
}

// CanMove reports whether next keeps e at least SeparationDistance from
// every other alive tripod's current position
func CanMove(w *core.World, e *core.Enemy, next mgl64.Vec3) bool {
	for _, other := range w.AliveEnemies() {
		if other.ID == e.ID {
			continue
		}
		if geom.Distance(next, other.Pos) < SeparationDistance {
			return false
		}
	}
	return true
}
