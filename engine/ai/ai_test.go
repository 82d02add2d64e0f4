package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/1siamBot/tripod-arena/engine/core"
)

func newWorld() *core.World {
	clock := core.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return core.NewWorld(clock, rand.New(rand.NewSource(7)))
}

func TestChasesRecognisedVehicle(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)
	e := w.AddEnemy(0, -10)

	s := &AISystem{}
	s.Update(w, 0.1)

	assert.InDelta(t, -9.5, e.Pos.Z(), 1e-9)
	assert.InDelta(t, 0, e.Pos.X(), 1e-9)
	assert.Equal(t, 0.0, e.Pos.Y())
}

func TestChasesNearestVehicle(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{-15, 0.5, 0}, 0, core.WeaponMachineGun)
	w.AddVehicle(mgl64.Vec3{5, 0.5, 0}, 0, core.WeaponCannon)
	e := w.AddEnemy(0, 0)

	(&AISystem{}).Update(w, 0.2)
	assert.InDelta(t, 1, e.Pos.X(), 1e-9)
}

func TestStopsOnArrival(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{0, 0.5, 0.3}, 0, core.WeaponMachineGun)
	e := w.AddEnemy(0, 0)

	(&AISystem{}).Update(w, 0.1)
	assert.Equal(t, mgl64.Vec3{}, e.Pos)
}

func TestWandersOutsideRange(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)
	e := w.AddEnemy(0, -50)
	e.WanderTimer = 0

	(&AISystem{}).Think(w, e, 0.1)

	assert.InDelta(t, 0, e.WanderTarget.X(), WanderRadius)
	assert.InDelta(t, -50, e.WanderTarget.Z(), WanderRadius)
	assert.Equal(t, 0.0, e.WanderTarget.Y())
	assert.GreaterOrEqual(t, e.WanderTimer, WanderMinInterval)
	assert.Less(t, e.WanderTimer, WanderMinInterval+WanderIntervalSpread)

	target := e.WanderTarget
	timer := e.WanderTimer
	(&AISystem{}).Think(w, e, 0.1)
	assert.Equal(t, target, e.WanderTarget, "target holds until the timer expires")
	assert.InDelta(t, timer-0.1, e.WanderTimer, 1e-9)
}

func TestRecognitionRangeIsConfigurable(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)
	e := w.AddEnemy(0, -25)
	e.WanderTimer = 100
	e.WanderTarget = e.Pos

	(&AISystem{}).Update(w, 0.1)
	assert.InDelta(t, -25, e.Pos.Z(), 1e-9, "default range ignores the vehicle")

	(&AISystem{RecognitionRange: 30}).Update(w, 0.1)
	assert.InDelta(t, -24.5, e.Pos.Z(), 1e-9)
}

func TestSeparationBlocksMove(t *testing.T) {
	w := newWorld()
	w.AddVehicle(mgl64.Vec3{0, 0.5, 0}, 0, core.WeaponMachineGun)
	blocker := w.AddEnemy(0, -7)
	e := w.AddEnemy(0, -13)
	blocker.Pos = mgl64.Vec3{0, 0, -7}

	s := &AISystem{}
	s.Think(w, e, 0.5)
	assert.Equal(t, -13.0, e.Pos.Z(), "next position would be within 6 of the blocker")

	assert.True(t, CanMove(w, e, mgl64.Vec3{0, 0, -13.5}))
	assert.False(t, CanMove(w, e, mgl64.Vec3{0, 0, -12.9}))
}

func TestDeadEnemiesDoNotBlock(t *testing.T) {
	w := newWorld()
	blocker := w.AddEnemy(0, 0)
	e := w.AddEnemy(0, 3)
	blocker.Alive = false

	assert.True(t, CanMove(w, e, mgl64.Vec3{0, 0, 2}))
}

func TestNoVehiclesNoAction(t *testing.T) {
	w := newWorld()
	e := w.AddEnemy(4, -4)
	e.WanderTimer = 0

	(&AISystem{}).Update(w, 0.1)
	assert.Equal(t, mgl64.Vec3{4, 0, -4}, e.Pos)
	assert.Equal(t, 0.0, e.WanderTimer)
}
