// Package sim wires the world, systems and collaborators into one match
// and advances it frame by frame.
package sim

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/1siamBot/tripod-arena/engine/ai"
	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/systems"
)

const DefaultEnemyCount = 4

// Arena spawn layout
var (
	MachineGunSpawn = mgl64.Vec3{0, core.VehicleRideHeight, 0}
	CannonSpawn     = mgl64.Vec3{10, core.VehicleRideHeight, 0}
)

const (
	enemySpreadX = 60.0
	enemyNearZ   = -30.0
	enemyDepthZ  = 50.0
)

// Options tune a match
type Options struct {
	Seed             int64 // 0 picks a time-based seed
	EnemyCount       int
	RecognitionRange float64
	HeatRayRange     float64
}

// Collaborators are the display and sound sinks. Nil fields become no-ops.
type Collaborators struct {
	UI      core.UI
	Visuals core.Visuals
	Sound   core.Sound
	Camera  core.Camera
}

func (c *Collaborators) fill() {
	if c.UI == nil {
		c.UI = core.NopUI{}
	}
	if c.Visuals == nil {
		c.Visuals = core.NopVisuals{}
	}
	if c.Sound == nil {
		c.Sound = core.NopSound{}
	}
	if c.Camera == nil {
		c.Camera = core.NopCamera{}
	}
}

// Simulation is one match: world state, ordered systems and the
// collaborators they report to
type Simulation struct {
	ID    uuid.UUID
	World *core.World
	Bus   *core.EventBus

	Combat   *systems.Combat
	Weapons  *systems.WeaponSystem
	Movement *systems.MovementSystem
	AI       *ai.AISystem
	HeatRay  *systems.HeatRaySystem
	systems  core.Systems

	collab  Collaborators
	log     zerolog.Logger
	pending core.Controls
}

// New builds a match and spawns its vehicles and tripods
func New(opts Options, collab Collaborators, clock core.Clock, log zerolog.Logger) *Simulation {
	collab.fill()
	if opts.EnemyCount <= 0 {
		opts.EnemyCount = DefaultEnemyCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.New()
	bus := core.NewEventBus()
	combat := systems.NewCombat(bus, collab.UI, collab.Visuals)
	s := &Simulation{
		ID:      id,
		World:   core.NewWorld(clock, rand.New(rand.NewSource(seed))),
		Bus:     bus,
		Combat:  combat,
		Weapons: systems.NewWeaponSystem(bus, collab.Visuals, collab.Sound),
		Movement: &systems.MovementSystem{
			UI: collab.UI,
		},
		AI: &ai.AISystem{RecognitionRange: opts.RecognitionRange},
		HeatRay: &systems.HeatRaySystem{
			EventBus: bus,
			Visuals:  collab.Visuals,
			Combat:   combat,
			Range:    opts.HeatRayRange,
		},
		collab: collab,
		log:    log.With().Str("match", id.String()).Logger(),
	}
	s.systems.Add(s.Movement)
	s.systems.Add(s.Weapons)
	s.systems.Add(s.AI)
	s.systems.Add(&systems.ProjectileSystem{EventBus: bus, Visuals: collab.Visuals, Combat: combat})
	s.systems.Add(s.HeatRay)

	s.subscribeLogging()
	s.spawn(opts.EnemyCount)
	s.log.Info().Int64("seed", seed).Int("enemies", opts.EnemyCount).Msg("match started")
	return s
}

func (s *Simulation) spawn(enemies int) {
	w := s.World
	for _, sp := range []struct {
		pos  mgl64.Vec3
		kind core.WeaponKind
	}{
		{MachineGunSpawn, core.WeaponMachineGun},
		{CannonSpawn, core.WeaponCannon},
	} {
		v := w.AddVehicle(sp.pos, 0, sp.kind)
		s.collab.Visuals.Spawn(v.ID, core.KindVehicle)
		s.collab.UI.SetVehicleHealth(v.Slot, v.Health.Current)
	}

	for i := 0; i < enemies; i++ {
		x := (w.Rand.Float64() - 0.5) * enemySpreadX
		z := enemyNearZ - w.Rand.Float64()*enemyDepthZ
		e := w.AddEnemy(x, z)
		s.collab.Visuals.Spawn(e.ID, core.KindEnemy)
		s.collab.Visuals.SetLook(e.ID, core.PartEmitter, core.LookEmitterIdle)
	}
	w.TotalEnemies = enemies

	s.collab.UI.SetScore(0)
	s.collab.UI.SetPauseIndicator(false)
	if v := w.Active(); v != nil {
		s.announceActive(v)
	}
	s.syncCamera()
}

// SetControls stores input for the next Frame
func (s *Simulation) SetControls(c core.Controls) {
	s.pending = c
}

// Frame advances one rendered frame with the stored controls. Edge
// triggered inputs are consumed.
func (s *Simulation) Frame(dt float64) {
	s.Step(dt, s.pending)
	s.pending = s.pending.Edges()
}

// Step runs timers, applies edge inputs, then the ordered systems unless
// the match is paused or every vehicle is gone. The camera always syncs.
func (s *Simulation) Step(dt float64, c core.Controls) {
	w := s.World
	w.PumpTimers()

	if c.PausePressed {
		s.TogglePause()
	}
	if c.Select > 0 {
		s.SelectVehicle(c.Select)
	}
	if c.FirePressed {
		s.Fire()
	}

	if !w.Paused && w.AnyVehicleAlive() {
		s.Movement.Controls = c
		s.Weapons.TriggerHeld = c.FireHeld
		s.systems.Update(w, dt)
		w.TickCount++
	}

	s.syncCamera()
	s.Bus.Dispatch()
}

// Fire pulls the active vehicle's trigger once
func (s *Simulation) Fire() *core.Projectile {
	return s.Weapons.TryFire(s.World, s.World.ActiveID)
}

// TogglePause flips the pause flag
func (s *Simulation) TogglePause() {
	w := s.World
	w.Paused = !w.Paused
	s.collab.UI.SetPauseIndicator(w.Paused)
	s.Bus.Emit(core.Event{Type: core.EvtPauseToggled, Tick: w.TickCount})
}

// SelectVehicle hands control to the vehicle in slot if it is alive
func (s *Simulation) SelectVehicle(slot int) bool {
	w := s.World
	v, ok := w.VehicleBySlot(slot)
	if !ok || !w.SetActive(v.ID) {
		return false
	}
	s.announceActive(v)
	s.Bus.Emit(core.Event{Type: core.EvtActiveVehicleChanged, Tick: w.TickCount, Entity: v.ID})
	return true
}

func (s *Simulation) announceActive(v *core.Vehicle) {
	s.collab.UI.SetActiveVehicleLabel(v.Slot, v.Weapon)
	if v.Weapon.Spec().Elevates {
		s.collab.UI.SetCannonAngleDisplay(v.AimDegrees())
	}
}

func (s *Simulation) syncCamera() {
	if v := s.World.Active(); v != nil {
		s.collab.Camera.Follow(v.Pos, v.Yaw)
	}
}

// Outcome reports how the match ended, if it has
func (s *Simulation) Outcome() core.Outcome {
	return s.World.Outcome
}

func (s *Simulation) subscribeLogging() {
	s.Bus.OnAny(func(e core.Event) {
		s.log.Trace().
			Str("event", e.Type.String()).
			Uint64("tick", e.Tick).
			Uint64("entity", uint64(e.Entity)).
			Msg("event")
	})
	s.Bus.On(core.EvtEnemyDestroyed, func(e core.Event) {
		s.log.Info().
			Uint64("enemy", uint64(e.Entity)).
			Int("score", s.World.Score).
			Int("total", s.World.TotalEnemies).
			Msg("tripod destroyed")
	})
	s.Bus.On(core.EvtVehicleDestroyed, func(e core.Event) {
		s.log.Info().Uint64("vehicle", uint64(e.Entity)).Msg("vehicle destroyed")
	})
	s.Bus.On(core.EvtActiveVehicleChanged, func(e core.Event) {
		if v, ok := s.World.Vehicle(e.Entity); ok {
			s.log.Info().Int("slot", v.Slot).Str("weapon", v.Weapon.String()).Msg("active vehicle changed")
		}
	})
	s.Bus.On(core.EvtHeatRayFiring, func(e core.Event) {
		s.log.Debug().Uint64("enemy", uint64(e.Entity)).Uint64("target", uint64(e.Other)).Msg("heat ray firing")
	})
	s.Bus.On(core.EvtPauseToggled, func(core.Event) {
		s.log.Debug().Bool("paused", s.World.Paused).Msg("pause toggled")
	})
	s.Bus.On(core.EvtVictory, func(core.Event) {
		s.log.Info().Int("score", s.World.Score).Msg("victory")
	})
	s.Bus.On(core.EvtDefeat, func(core.Event) {
		s.log.Info().Int("score", s.World.Score).Msg("defeat")
	})
}
