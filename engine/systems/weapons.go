package systems

import (
	"github.com/1siamBot/tripod-arena/engine/core"
)

// WeaponSystem spawns projectiles from the active vehicle. As a system it
// handles the held trigger; key presses call TryFire directly.
type WeaponSystem struct {
	EventBus    *core.EventBus
	Visuals     core.Visuals
	Sound       core.Sound
	TriggerHeld bool
}

func NewWeaponSystem(bus *core.EventBus, vis core.Visuals, snd core.Sound) *WeaponSystem {
	if vis == nil {
		vis = core.NopVisuals{}
	}
	if snd == nil {
		snd = core.NopSound{}
	}
	return &WeaponSystem{EventBus: bus, Visuals: vis, Sound: snd}
}

func (s *WeaponSystem) Priority() int { return 15 }

func (s *WeaponSystem) Update(w *core.World, dt float64) {
	if s.TriggerHeld {
		s.TryFire(w, w.ActiveID)
	}
}

// Fire launches one projectile from vehicle id, ignoring the cooldown.
// Only the alive active vehicle of an unpaused world can fire.
func (s *WeaponSystem) Fire(w *core.World, id core.EntityID) *core.Projectile {
	v, ok := w.Vehicle(id)
	if !ok || !v.Alive || w.ActiveID != id || w.Paused {
		return nil
	}
	spec := v.Weapon.Spec()
	p := w.AddProjectile(core.Projectile{
		Source:  v.ID,
		Weapon:  v.Weapon,
		Pos:     v.Muzzle(),
		Vel:     v.AimDirection().Mul(spec.Speed),
		Gravity: spec.Gravity,
		Damage:  spec.Damage,
	})
	s.Visuals.Spawn(p.ID, core.KindProjectile)
	s.Sound.PlayShot(v.Weapon)
	s.EventBus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: w.TickCount, Entity: p.ID, Other: v.ID})
	return p
}

// TryFire fires only when more than the weapon cooldown has passed since
// the vehicle's last shot
func (s *WeaponSystem) TryFire(w *core.World, id core.EntityID) *core.Projectile {
	v, ok := w.Vehicle(id)
	if !ok {
		return nil
	}
	now := w.Now()
	if !v.LastShot.IsZero() && now.Sub(v.LastShot) <= v.Weapon.Spec().Cooldown {
		return nil
	}
	p := s.Fire(w, id)
	if p != nil {
		v.LastShot = now
	}
	return p
}
