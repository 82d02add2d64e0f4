package systems

import (
	"github.com/1siamBot/tripod-arena/engine/core"
)

const (
	Gravity         = 0.03  // vertical velocity lost per tick
	ProjectileRange = 100.0 // distance from origin at which shots expire
)

// ProjectileSystem integrates shots and resolves hits. Motion is per tick,
// not scaled by dt.
type ProjectileSystem struct {
	EventBus *core.EventBus
	Visuals  core.Visuals
	Combat   *Combat
}

func (s *ProjectileSystem) Priority() int { return 30 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	for _, p := range w.Projectiles() {
		s.step(w, p)
	}
}

func (s *ProjectileSystem) step(w *core.World, p *core.Projectile) {
	if p.Gravity {
		p.Vel[1] -= Gravity
	}
	p.Pos = p.Pos.Add(p.Vel)

	for _, e := range w.AliveEnemies() {
		if hit, part := TestHit(p.Pos, e); hit {
			s.remove(w, p)
			s.Combat.HitEnemy(w, e, p.Damage, part, p.Source)
			return
		}
	}

	if (p.Gravity && p.Pos.Y() <= 0) || p.Pos.Len() > ProjectileRange {
		s.remove(w, p)
		s.EventBus.Emit(core.Event{Type: core.EvtProjectileExpired, Tick: w.TickCount, Entity: p.ID})
	}
}

func (s *ProjectileSystem) remove(w *core.World, p *core.Projectile) {
	w.RemoveProjectile(p.ID)
	s.Visuals.Remove(p.ID)
}
