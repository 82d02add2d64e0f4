package systems

import (
	"math/rand"
	"time"

	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/testutil"
)

type rig struct {
	w       *core.World
	clock   *core.ManualClock
	bus     *core.EventBus
	ui      *testutil.UIRecorder
	vis     *testutil.VisualsRecorder
	snd     *testutil.SoundRecorder
	combat  *Combat
	weapons *WeaponSystem
	proj    *ProjectileSystem
	ray     *HeatRaySystem
	events  []core.Event
}

func newRig() *rig {
	clock := core.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	r := &rig{
		w:     core.NewWorld(clock, rand.New(rand.NewSource(1))),
		clock: clock,
		bus:   core.NewEventBus(),
		ui:    testutil.NewUIRecorder(),
		vis:   testutil.NewVisualsRecorder(),
		snd:   &testutil.SoundRecorder{},
	}
	r.w.TotalEnemies = 4
	r.combat = NewCombat(r.bus, r.ui, r.vis)
	r.weapons = NewWeaponSystem(r.bus, r.vis, r.snd)
	r.proj = &ProjectileSystem{EventBus: r.bus, Visuals: r.vis, Combat: r.combat}
	r.ray = &HeatRaySystem{EventBus: r.bus, Visuals: r.vis, Combat: r.combat, Range: DefaultRayRange}
	r.bus.OnAny(func(e core.Event) { r.events = append(r.events, e) })
	return r
}

// advance moves the clock and runs due timers
func (r *rig) advance(d time.Duration) {
	r.clock.Advance(d)
	r.w.PumpTimers()
	r.bus.Dispatch()
}

func (r *rig) count(t core.EventType) int {
	r.bus.Dispatch()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
