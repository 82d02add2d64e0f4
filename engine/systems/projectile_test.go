package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/tripod-arena/engine/core"
)

func TestCannonBodyHit(t *testing.T) {
	r := newRig()
	v := r.w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponCannon)
	p := r.weapons.Fire(r.w, v.ID)
	require.NotNil(t, p)

	impact := p.Pos.Add(p.Vel).Sub(mgl64.Vec3{0, Gravity, 0})
	e := r.w.AddEnemy(0, 0)
	e.Pos = impact.Sub(core.BodyOffset).Add(mgl64.Vec3{1.5, 0, 0})

	r.proj.Update(r.w, 0.016)

	assert.Equal(t, 180.0, e.Health.Current)
	assert.Equal(t, 1, e.LimbHits)
	assert.Empty(t, r.w.Projectiles())
	assert.Contains(t, r.vis.Removed, p.ID)
	assert.Equal(t, e.ID, r.w.LastAttacked)
	assert.True(t, r.ui.EnemyPanel)
	assert.Equal(t, 180.0, r.ui.EnemyHP)
	assert.Equal(t, 200.0, r.ui.EnemyMaxHP)

	look, ok := r.vis.Look(e.ID, core.PartBody)
	require.True(t, ok)
	assert.Equal(t, core.LookHitFlash, look)
	assert.Equal(t, 1, r.count(core.EvtEnemyHit))
	assert.Zero(t, r.count(core.EvtProjectileExpired))
}

func TestProjectileCreditsOneEnemy(t *testing.T) {
	r := newRig()
	a := r.w.AddEnemy(0, 0)
	b := r.w.AddEnemy(0, 0)
	r.w.AddProjectile(core.Projectile{Pos: mgl64.Vec3{0, 8, 1}, Vel: mgl64.Vec3{0, 0, -1}, Damage: 10})

	r.proj.Update(r.w, 0.016)
	r.proj.Update(r.w, 0.016)

	assert.Equal(t, 190.0, a.Health.Current)
	assert.Equal(t, 200.0, b.Health.Current)
	assert.Equal(t, 1, r.ui.EnemyHPUpdates)
}

func TestProjectileExpiry(t *testing.T) {
	tests := []struct {
		name    string
		proj    core.Projectile
		expired bool
	}{
		{"cannon reaches ground", core.Projectile{Pos: mgl64.Vec3{0, 0.01, 0}, Vel: mgl64.Vec3{0, 0, -1}, Gravity: true}, true},
		{"cannon in flight", core.Projectile{Pos: mgl64.Vec3{0, 3, 0}, Vel: mgl64.Vec3{0, 0.5, -1}, Gravity: true}, false},
		{"machine gun below ground", core.Projectile{Pos: mgl64.Vec3{0, -5, 0}, Vel: mgl64.Vec3{1, 0, 0}}, false},
		{"out of range", core.Projectile{Pos: mgl64.Vec3{99.5, 1, 0}, Vel: mgl64.Vec3{1, 0, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			p := r.w.AddProjectile(tt.proj)
			r.proj.Update(r.w, 0.016)

			_, alive := r.w.Projectile(p.ID)
			assert.Equal(t, !tt.expired, alive)
			if tt.expired {
				assert.Equal(t, 1, r.count(core.EvtProjectileExpired))
			}
		})
	}
}

func TestGravityBendsTrajectory(t *testing.T) {
	r := newRig()
	p := r.w.AddProjectile(core.Projectile{Pos: mgl64.Vec3{0, 5, 0}, Vel: mgl64.Vec3{0, 0, -1}, Gravity: true})

	r.proj.Update(r.w, 0.016)
	r.proj.Update(r.w, 0.016)

	assert.InDelta(t, -0.06, p.Vel.Y(), 1e-9)
	assert.InDelta(t, 5-0.03-0.06, p.Pos.Y(), 1e-9)
	assert.InDelta(t, -2, p.Pos.Z(), 1e-9)
}

func TestHitFlashReverts(t *testing.T) {
	r := newRig()
	e := r.w.AddEnemy(0, 0)
	r.combat.HitEnemy(r.w, e, 10, core.PartLeg1, 0)

	r.advance(199 * time.Millisecond)
	look, _ := r.vis.Look(e.ID, core.PartLeg1)
	assert.Equal(t, core.LookHitFlash, look)

	r.advance(time.Millisecond)
	look, _ = r.vis.Look(e.ID, core.PartLeg1)
	assert.Equal(t, core.LookEnemyNormal, look)
}

func TestHitFlashSkippedAfterDeath(t *testing.T) {
	r := newRig()
	e := r.w.AddEnemy(0, 0)
	e.Health.Current = 5
	r.combat.HitEnemy(r.w, e, 10, core.PartBody, 0)
	require.False(t, e.Alive)

	r.advance(200 * time.Millisecond)
	look, _ := r.vis.Look(e.ID, core.PartBody)
	assert.Equal(t, core.LookEnemyDestroyed, look)
}
