package systems

import (
	"math"
	"time"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
)

const (
	HeatRayDPS       = 5.0
	DefaultRayRange  = 20.0
	BeamTargetHeight = 1.0
)

// HeatRaySystem runs each tripod's beam weapon: charge while a vehicle is
// in range, then burn it until it leaves
type HeatRaySystem struct {
	EventBus *core.EventBus
	Visuals  core.Visuals
	Combat   *Combat
	Range    float64
}

func (s *HeatRaySystem) Priority() int { return 40 }

func (s *HeatRaySystem) Update(w *core.World, dt float64) {
	rng := s.Range
	if rng <= 0 {
		rng = DefaultRayRange
	}
	now := w.Now()
	for _, e := range w.AliveEnemies() {
		target, dist, ok := ClosestVehicle(w, e.Pos)
		if !ok {
			continue
		}
		if dist < rng {
			s.engage(w, e, target, now, dt)
		} else {
			s.disengage(w, e)
		}
	}
}

func (s *HeatRaySystem) engage(w *core.World, e *core.Enemy, target *core.Vehicle, now time.Time, dt float64) {
	if e.HeatRaySince == nil {
		t := now
		e.HeatRaySince = &t
	}
	elapsed, _ := e.HeatRayElapsed(now)
	state := e.HeatRayState(now)
	if state != e.RayState {
		e.RayState = state
		s.emitState(w, e, target.ID)
	}

	look := core.Look{Opacity: 1}
	beam := core.Beam{State: state}
	if state == core.HeatRayFiring {
		s.Combat.DamageVehicle(w, target, HeatRayDPS*dt)
		look.Color, look.Emissive = core.Red, core.Red
		look.Intensity = 1 + math.Sin(float64(now.UnixMilli())*0.01)*0.5
		beam.Color, beam.Opacity = core.Red, 0.6
	} else {
		look.Color, look.Emissive = core.White, core.White
		look.Intensity = 0.5 + elapsed.Seconds()*0.5
		beam.Color, beam.Opacity = core.White, 0.3
	}
	s.Visuals.SetLook(e.ID, core.PartEmitter, look)

	to := target.Pos
	to[1] = BeamTargetHeight
	beam.Segment = geom.NewSegment(e.Emitter(), to)
	s.Visuals.SetBeam(e.ID, beam)
	e.HasBeam = true
}

func (s *HeatRaySystem) disengage(w *core.World, e *core.Enemy) {
	if e.HeatRaySince == nil && !e.HasBeam {
		return
	}
	e.HeatRaySince = nil
	e.RayState = core.HeatRayIdle
	s.Visuals.SetLook(e.ID, core.PartEmitter, core.LookEmitterIdle)
	if e.HasBeam {
		s.Visuals.ClearBeam(e.ID)
		e.HasBeam = false
	}
	s.emitState(w, e, 0)
}

func (s *HeatRaySystem) emitState(w *core.World, e *core.Enemy, target core.EntityID) {
	t := core.EvtHeatRayIdle
	switch e.RayState {
	case core.HeatRayCharging:
		t = core.EvtHeatRayCharging
	case core.HeatRayFiring:
		t = core.EvtHeatRayFiring
	}
	s.EventBus.Emit(core.Event{Type: t, Tick: w.TickCount, Entity: e.ID, Other: target})
}
