package systems

import (
	"time"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// Lifecycle delays
const (
	HitFlashDuration = 200 * time.Millisecond
	RemoveDelay      = 1000 * time.Millisecond
	VictoryDelay     = 500 * time.Millisecond
)

// Combat applies damage and runs the destruction sequences shared by
// projectiles and heat rays
type Combat struct {
	EventBus *core.EventBus
	UI       core.UI
	Visuals  core.Visuals
}

// NewCombat fills nil collaborators with no-ops
func NewCombat(bus *core.EventBus, ui core.UI, vis core.Visuals) *Combat {
	if ui == nil {
		ui = core.NopUI{}
	}
	if vis == nil {
		vis = core.NopVisuals{}
	}
	return &Combat{EventBus: bus, UI: ui, Visuals: vis}
}

// DamageVehicle reduces vehicle health and starts the death sequence at zero
func (c *Combat) DamageVehicle(w *core.World, v *core.Vehicle, amount float64) {
	if !v.Alive {
		return
	}
	hp := v.Health.Damage(amount)
	c.UI.SetVehicleHealth(v.Slot, hp)
	c.EventBus.Emit(core.Event{Type: core.EvtVehicleDamaged, Tick: w.TickCount, Entity: v.ID, Amount: amount})
	if !v.Health.Depleted() {
		return
	}

	v.Alive = false
	v.Gen++
	c.Visuals.SetLook(v.ID, core.PartHull, core.LookVehicleDestroyed)
	c.EventBus.Emit(core.Event{Type: core.EvtVehicleDestroyed, Tick: w.TickCount, Entity: v.ID})

	id := v.ID
	w.After(RemoveDelay, id, v.Gen, func() { c.removeVehicle(w, id) })
}

func (c *Combat) removeVehicle(w *core.World, id core.EntityID) {
	wasActive := w.ActiveID == id
	if !w.RemoveVehicle(id) {
		return
	}
	c.Visuals.Remove(id)
	c.EventBus.Emit(core.Event{Type: core.EvtVehicleRemoved, Tick: w.TickCount, Entity: id})

	alive := w.AliveVehicles()
	if len(alive) == 0 {
		if w.Outcome == core.OutcomeNone {
			w.Outcome = core.OutcomeDefeat
			c.UI.ShowDefeatScreen()
			c.EventBus.Emit(core.Event{Type: core.EvtDefeat, Tick: w.TickCount})
		}
		return
	}
	if wasActive || w.ActiveID == 0 {
		next := alive[0]
		w.SetActive(next.ID)
		c.UI.SetActiveVehicleLabel(next.Slot, next.Weapon)
		c.EventBus.Emit(core.Event{Type: core.EvtActiveVehicleChanged, Tick: w.TickCount, Entity: next.ID, Other: id})
	}
}

// HitEnemy applies a projectile hit to one part of an enemy
func (c *Combat) HitEnemy(w *core.World, e *core.Enemy, damage float64, part core.Part, source core.EntityID) {
	if !e.Alive {
		return
	}
	w.LastAttacked = e.ID
	hp := e.Health.Damage(damage)
	e.LimbHits++
	c.UI.SetEnemyHealth(hp, e.Health.Max)
	c.EventBus.Emit(core.Event{Type: core.EvtEnemyHit, Tick: w.TickCount, Entity: e.ID, Other: source, Part: part, Amount: damage})

	c.Visuals.SetLook(e.ID, part, core.LookHitFlash)
	w.After(HitFlashDuration, e.ID, e.Gen, func() {
		if e.Alive {
			c.Visuals.SetLook(e.ID, part, core.LookEnemyNormal)
		}
	})

	if e.Health.Depleted() {
		c.DestroyEnemy(w, e)
	}
}

// DestroyEnemy runs the enemy death sequence. Calling it twice is a no-op.
func (c *Combat) DestroyEnemy(w *core.World, e *core.Enemy) {
	if !e.Alive {
		return
	}
	e.Alive = false
	e.Gen++
	w.Score++
	c.UI.SetScore(w.Score)

	for _, p := range core.EnemyParts {
		c.Visuals.SetLook(e.ID, p, core.LookEnemyDestroyed)
	}
	if e.HasBeam {
		c.Visuals.ClearBeam(e.ID)
		e.HasBeam = false
	}
	e.HeatRaySince = nil
	e.RayState = core.HeatRayIdle

	if w.LastAttacked == e.ID {
		c.UI.HideEnemyPanel()
		w.LastAttacked = 0
	}
	c.EventBus.Emit(core.Event{Type: core.EvtEnemyDestroyed, Tick: w.TickCount, Entity: e.ID, Amount: float64(w.Score)})

	if w.Score >= w.TotalEnemies {
		w.After(VictoryDelay, 0, 0, func() { c.checkVictory(w) })
	}

	id := e.ID
	w.After(RemoveDelay, id, e.Gen, func() {
		if w.RemoveEnemy(id) {
			c.Visuals.Remove(id)
			c.EventBus.Emit(core.Event{Type: core.EvtEnemyRemoved, Tick: w.TickCount, Entity: id})
		}
	})
}

func (c *Combat) checkVictory(w *core.World) {
	if w.Outcome != core.OutcomeNone || !w.AnyVehicleAlive() {
		return
	}
	w.Outcome = core.OutcomeVictory
	c.UI.ShowVictoryScreen()
	c.EventBus.Emit(core.Event{Type: core.EvtVictory, Tick: w.TickCount})
}
