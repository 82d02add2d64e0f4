package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/tripod-arena/engine/core"
)

func TestEnemyDestroyedAtExactlyZero(t *testing.T) {
	tests := []struct {
		hp        float64
		destroyed bool
	}{
		{10, true},
		{11, false},
		{5, true},
	}
	for _, tt := range tests {
		r := newRig()
		e := r.w.AddEnemy(0, 0)
		e.Health.Current = tt.hp
		r.combat.HitEnemy(r.w, e, 10, core.PartBody, 0)

		assert.Equal(t, tt.destroyed, !e.Alive, "hp %v", tt.hp)
		assert.GreaterOrEqual(t, e.Health.Current, 0.0)
	}
}

func TestDestroyEnemySequence(t *testing.T) {
	r := newRig()
	r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	e := r.w.AddEnemy(0, 0)
	e.HasBeam = true
	r.combat.HitEnemy(r.w, e, 200, core.PartLeg2, 0)

	require.False(t, e.Alive)
	assert.Equal(t, 1, r.w.Score)
	assert.Equal(t, 1, r.ui.Score)
	assert.False(t, r.ui.EnemyPanel)
	assert.Zero(t, r.w.LastAttacked)
	assert.False(t, e.HasBeam)
	assert.Contains(t, r.vis.Cleared, e.ID)
	for _, p := range core.EnemyParts {
		look, _ := r.vis.Look(e.ID, p)
		assert.Equal(t, core.LookEnemyDestroyed, look, p.String())
	}

	// second destroy is ignored
	r.combat.DestroyEnemy(r.w, e)
	assert.Equal(t, 1, r.w.Score)

	r.advance(999 * time.Millisecond)
	_, ok := r.w.Enemy(e.ID)
	assert.True(t, ok)
	r.advance(time.Millisecond)
	_, ok = r.w.Enemy(e.ID)
	assert.False(t, ok)
	assert.Contains(t, r.vis.Removed, e.ID)
	assert.Equal(t, 1, r.count(core.EvtEnemyRemoved))
}

func TestVictoryAfterDelay(t *testing.T) {
	r := newRig()
	r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	e := r.w.AddEnemy(0, 0)
	r.w.Score = 3

	r.combat.DestroyEnemy(r.w, e)
	r.advance(499 * time.Millisecond)
	assert.Zero(t, r.ui.Victory)
	assert.Equal(t, core.OutcomeNone, r.w.Outcome)

	r.advance(time.Millisecond)
	assert.Equal(t, 1, r.ui.Victory)
	assert.Equal(t, core.OutcomeVictory, r.w.Outcome)
	assert.Equal(t, 1, r.count(core.EvtVictory))
}

func TestNoVictoryWithoutSurvivors(t *testing.T) {
	r := newRig()
	v := r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	e := r.w.AddEnemy(0, 0)
	r.w.Score = 3

	r.combat.DestroyEnemy(r.w, e)
	r.combat.DamageVehicle(r.w, v, 100)
	r.advance(time.Second)

	assert.Zero(t, r.ui.Victory)
	assert.Equal(t, 1, r.ui.Defeat)
	assert.Equal(t, core.OutcomeDefeat, r.w.Outcome)
}

func TestVehicleDamageClamps(t *testing.T) {
	r := newRig()
	v := r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)

	r.combat.DamageVehicle(r.w, v, 30)
	assert.Equal(t, 70.0, r.ui.VehicleHP[1])
	assert.True(t, v.Alive)

	r.combat.DamageVehicle(r.w, v, 150)
	assert.Equal(t, 0.0, v.Health.Current)
	assert.Equal(t, 0.0, r.ui.VehicleHP[1])
	assert.False(t, v.Alive)

	look, _ := r.vis.Look(v.ID, core.PartHull)
	assert.Equal(t, core.LookVehicleDestroyed, look)

	// dead vehicles take no further damage
	r.combat.DamageVehicle(r.w, v, 10)
	assert.Equal(t, 1, r.count(core.EvtVehicleDestroyed))
}

func TestActiveVehicleDeathSwitchesControl(t *testing.T) {
	r := newRig()
	a := r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	b := r.w.AddVehicle(mgl64.Vec3{10, 0.5, 0}, 0, core.WeaponCannon)

	r.combat.DamageVehicle(r.w, a, 100)
	r.advance(999 * time.Millisecond)
	assert.Equal(t, a.ID, r.w.ActiveID)

	r.advance(time.Millisecond)
	assert.Equal(t, b.ID, r.w.ActiveID)
	assert.Equal(t, 2, r.ui.ActiveSlot)
	assert.Equal(t, core.WeaponCannon, r.ui.ActiveKind)
	assert.Zero(t, r.ui.Defeat)
	_, ok := r.w.Vehicle(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, r.count(core.EvtActiveVehicleChanged))
}

func TestInactiveVehicleDeathKeepsControl(t *testing.T) {
	r := newRig()
	a := r.w.AddVehicle(mgl64.Vec3{}, 0, core.WeaponMachineGun)
	b := r.w.AddVehicle(mgl64.Vec3{10, 0.5, 0}, 0, core.WeaponCannon)

	r.combat.DamageVehicle(r.w, b, 100)
	r.advance(time.Second)

	assert.Equal(t, a.ID, r.w.ActiveID)
	assert.Zero(t, r.count(core.EvtActiveVehicleChanged))
}

func TestClosestVehicleTieGoesToFirst(t *testing.T) {
	r := newRig()
	a := r.w.AddVehicle(mgl64.Vec3{5, 0, 0}, 0, core.WeaponMachineGun)
	r.w.AddVehicle(mgl64.Vec3{-5, 0, 0}, 0, core.WeaponCannon)

	v, d, ok := ClosestVehicle(r.w, mgl64.Vec3{})
	require.True(t, ok)
	assert.Equal(t, a.ID, v.ID)
	assert.InDelta(t, 5, d, 1e-9)

	a.Alive = false
	v, _, _ = ClosestVehicle(r.w, mgl64.Vec3{})
	assert.NotEqual(t, a.ID, v.ID)
}
