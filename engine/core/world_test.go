package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() (*World, *ManualClock) {
	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewWorld(clock, rand.New(rand.NewSource(1))), clock
}

func TestAddVehicleAssignsStableSlots(t *testing.T) {
	w, _ := newTestWorld()
	a := w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, WeaponMachineGun)
	b := w.AddVehicle(mgl64.Vec3{10, 0.5, 0}, 0, WeaponCannon)

	assert.Equal(t, 1, a.Slot)
	assert.Equal(t, 2, b.Slot)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID, w.ActiveID, "first vehicle becomes active")
	assert.Equal(t, float64(VehicleMaxHealth), a.Health.Current)

	require.True(t, w.RemoveVehicle(a.ID))
	got, ok := w.VehicleBySlot(2)
	require.True(t, ok)
	assert.Equal(t, b.ID, got.ID, "slot survives removal of earlier vehicles")
	_, ok = w.VehicleBySlot(1)
	assert.False(t, ok)
	assert.Zero(t, w.ActiveID)
}

func TestSetActiveRequiresAliveVehicle(t *testing.T) {
	w, _ := newTestWorld()
	a := w.AddVehicle(mgl64.Vec3{}, 0, WeaponMachineGun)
	b := w.AddVehicle(mgl64.Vec3{}, 0, WeaponCannon)

	b.Alive = false
	assert.False(t, w.SetActive(b.ID))
	assert.Equal(t, a.ID, w.ActiveID)

	b.Alive = true
	assert.True(t, w.SetActive(b.ID))
	assert.Equal(t, b, w.Active())
	assert.False(t, w.SetActive(999))
}

func TestAliveFilters(t *testing.T) {
	w, _ := newTestWorld()
	w.AddVehicle(mgl64.Vec3{}, 0, WeaponMachineGun).Alive = false
	v := w.AddVehicle(mgl64.Vec3{}, 0, WeaponCannon)
	e1 := w.AddEnemy(0, -30)
	e2 := w.AddEnemy(5, -40)
	e1.Alive = false

	assert.Equal(t, []*Vehicle{v}, w.AliveVehicles())
	assert.Equal(t, []*Enemy{e2}, w.AliveEnemies())
	assert.Len(t, w.Enemies(), 2)
	assert.True(t, w.AnyVehicleAlive())

	v.Alive = false
	assert.False(t, w.AnyVehicleAlive())
}

func TestAddEnemyInitialState(t *testing.T) {
	w, _ := newTestWorld()
	e := w.AddEnemy(3, -40)

	assert.Equal(t, mgl64.Vec3{3, 0, -40}, e.Pos)
	assert.Equal(t, e.Pos, e.WanderTarget)
	assert.GreaterOrEqual(t, e.WanderTimer, 0.0)
	assert.Less(t, e.WanderTimer, 3.0)
	assert.Equal(t, float64(EnemyMaxHealth), e.Health.Current)
	assert.Nil(t, e.HeatRaySince)
	assert.Equal(t, mgl64.Vec3{3, 8, -40}, e.BodyCenter())
	leg := e.LegAnchor(1)
	assert.InDelta(t, 4.7, leg.X(), 1e-9)
	assert.InDelta(t, 4, leg.Y(), 1e-9)
	assert.InDelta(t, -39, leg.Z(), 1e-9)
}

func TestRemoveEnemyClearsLastAttacked(t *testing.T) {
	w, _ := newTestWorld()
	e := w.AddEnemy(0, 0)
	w.LastAttacked = e.ID

	require.True(t, w.RemoveEnemy(e.ID))
	assert.Zero(t, w.LastAttacked)
	assert.False(t, w.RemoveEnemy(e.ID))
}

func TestProjectilesKeepSpawnOrder(t *testing.T) {
	w, _ := newTestWorld()
	p1 := w.AddProjectile(Projectile{Damage: 10})
	p2 := w.AddProjectile(Projectile{Damage: 20})
	p3 := w.AddProjectile(Projectile{Damage: 30})

	require.True(t, w.RemoveProjectile(p2.ID))
	got := w.Projectiles()
	require.Len(t, got, 2)
	assert.Equal(t, p1.ID, got[0].ID)
	assert.Equal(t, p3.ID, got[1].ID)
	assert.Equal(t, 2, w.EntityCount())
}

func TestValidTracksGeneration(t *testing.T) {
	w, _ := newTestWorld()
	e := w.AddEnemy(0, 0)

	assert.True(t, w.Valid(e.ID, 0))
	e.Gen++
	assert.False(t, w.Valid(e.ID, 0))
	assert.True(t, w.Valid(e.ID, 1))
	w.RemoveEnemy(e.ID)
	assert.False(t, w.Valid(e.ID, 1))
}

func TestWorldTimersSkipStaleTargets(t *testing.T) {
	w, clock := newTestWorld()
	e := w.AddEnemy(0, 0)

	var fired []string
	w.After(200*time.Millisecond, e.ID, e.Gen, func() { fired = append(fired, "flash") })
	w.After(500*time.Millisecond, 0, 0, func() { fired = append(fired, "global") })
	e.Gen++
	w.After(time.Second, e.ID, e.Gen, func() { fired = append(fired, "cleanup") })

	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, w.PumpTimers())
	assert.Equal(t, []string{"global", "cleanup"}, fired)
}
