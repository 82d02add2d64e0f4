package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/tripod-arena/engine/core"
)

func TestFireSpawnsAtMuzzle(t *testing.T) {
	r := newRig()
	v := r.w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)

	p := r.weapons.Fire(r.w, v.ID)
	require.NotNil(t, p)
	assert.InDelta(t, 0, p.Pos.X(), 1e-9)
	assert.InDelta(t, 1.0, p.Pos.Y(), 1e-9)
	assert.InDelta(t, -2, p.Pos.Z(), 1e-9)
	assert.InDelta(t, -1.5, p.Vel.Z(), 1e-9)
	assert.False(t, p.Gravity)
	assert.Equal(t, 10.0, p.Damage)
	assert.Equal(t, []core.WeaponKind{core.WeaponMachineGun}, r.snd.Shots)
	assert.Equal(t, core.KindProjectile, r.vis.Spawned[p.ID])
	assert.Equal(t, 1, r.count(core.EvtProjectileFired))
}

func TestFireRequiresActiveAliveUnpaused(t *testing.T) {
	r := newRig()
	a := r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	b := r.w.AddVehicle(mgl64.Vec3{10, 0.5, 0}, 0, core.WeaponCannon)

	assert.Nil(t, r.weapons.Fire(r.w, b.ID), "inactive vehicle")

	r.w.Paused = true
	assert.Nil(t, r.weapons.Fire(r.w, a.ID), "paused")
	r.w.Paused = false

	a.Alive = false
	assert.Nil(t, r.weapons.Fire(r.w, a.ID), "dead")
	assert.Nil(t, r.weapons.Fire(r.w, 999), "unknown")
	assert.Empty(t, r.w.Projectiles())
}

func TestTryFireCooldown(t *testing.T) {
	tests := []struct {
		kind     core.WeaponKind
		cooldown time.Duration
	}{
		{core.WeaponMachineGun, 250 * time.Millisecond},
		{core.WeaponCannon, 1000 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r := newRig()
			v := r.w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, tt.kind)

			require.NotNil(t, r.weapons.TryFire(r.w, v.ID))
			r.clock.Advance(tt.cooldown / 2)
			assert.Nil(t, r.weapons.TryFire(r.w, v.ID))
			r.clock.Advance(tt.cooldown / 2)
			assert.Nil(t, r.weapons.TryFire(r.w, v.ID), "exactly at cooldown")
			r.clock.Advance(time.Millisecond)
			assert.NotNil(t, r.weapons.TryFire(r.w, v.ID))
			assert.Len(t, r.w.Projectiles(), 2)
		})
	}
}

func TestHeldTriggerFiresActiveVehicle(t *testing.T) {
	r := newRig()
	r.w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)

	r.weapons.TriggerHeld = true
	for i := 0; i < 10; i++ {
		r.weapons.Update(r.w, 0.016)
		r.clock.Advance(16 * time.Millisecond)
	}
	// 160ms of held fire stays inside one cooldown window
	assert.Len(t, r.w.Projectiles(), 1)
}

func TestCannonAimElevatesShot(t *testing.T) {
	r := newRig()
	r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	v := r.w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponCannon)
	require.True(t, r.w.SetActive(v.ID))
	v.Aim = core.MaxAimAngle / 2

	p := r.weapons.Fire(r.w, v.ID)
	require.NotNil(t, p)
	assert.True(t, p.Gravity)
	assert.Greater(t, p.Vel.Y(), 0.0)
	assert.Less(t, p.Vel.Z(), 0.0)
	assert.InDelta(t, 1.0, p.Vel.Len(), 1e-9)
}
