package core

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for game entities. Ids are never reused
// within a World.
type EntityID uint64

// Outcome is the terminal state of a match
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// World holds all entities plus global match flags
type World struct {
	Clock Clock
	Sched *Scheduler
	Rand  *rand.Rand

	vehicles     map[EntityID]*Vehicle
	vehicleOrder []EntityID
	enemies      map[EntityID]*Enemy
	enemyOrder   []EntityID
	projectiles  map[EntityID]*Projectile
	projOrder    []EntityID

	ActiveID     EntityID
	LastAttacked EntityID
	Paused       bool
	Score        int
	TotalEnemies int
	Outcome      Outcome
	TickCount    uint64

	nextID   uint64
	nextSlot int
}

// NewWorld creates an empty world. A nil clock means wall time; a nil rng
// gets a time-seeded source.
func NewWorld(clock Clock, rng *rand.Rand) *World {
	if clock == nil {
		clock = RealClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		Clock:       clock,
		Sched:       NewScheduler(),
		Rand:        rng,
		vehicles:    make(map[EntityID]*Vehicle),
		enemies:     make(map[EntityID]*Enemy),
		projectiles: make(map[EntityID]*Projectile),
	}
}

func (w *World) newID() EntityID {
	w.nextID++
	return EntityID(w.nextID)
}

// Now is the world's current time
func (w *World) Now() time.Time {
	return w.Clock.Now()
}

// After schedules fn d from now, bound to an entity generation
func (w *World) After(d time.Duration, target EntityID, gen uint64, fn func()) {
	w.Sched.At(w.Now().Add(d), target, gen, fn)
}

// PumpTimers runs due scheduled effects
func (w *World) PumpTimers() int {
	return w.Sched.Pump(w.Now(), w.Valid)
}

// Valid reports whether id still exists at generation gen
func (w *World) Valid(id EntityID, gen uint64) bool {
	if v, ok := w.vehicles[id]; ok {
		return v.Gen == gen
	}
	if e, ok := w.enemies[id]; ok {
		return e.Gen == gen
	}
	if _, ok := w.projectiles[id]; ok {
		return gen == 0
	}
	return false
}

// ---- Vehicles ----

// AddVehicle spawns a vehicle. The first vehicle becomes active.
func (w *World) AddVehicle(pos mgl64.Vec3, yaw float64, kind WeaponKind) *Vehicle {
	w.nextSlot++
	v := &Vehicle{
		ID:     w.newID(),
		Slot:   w.nextSlot,
		Pos:    pos,
		Yaw:    yaw,
		Weapon: kind,
		Health: NewHealth(VehicleMaxHealth),
		Alive:  true,
	}
	w.vehicles[v.ID] = v
	w.vehicleOrder = append(w.vehicleOrder, v.ID)
	if w.ActiveID == 0 {
		w.ActiveID = v.ID
	}
	return v
}

func (w *World) Vehicle(id EntityID) (*Vehicle, bool) {
	v, ok := w.vehicles[id]
	return v, ok
}

// VehicleBySlot finds a live-collection vehicle by display slot
func (w *World) VehicleBySlot(slot int) (*Vehicle, bool) {
	for _, id := range w.vehicleOrder {
		if v := w.vehicles[id]; v.Slot == slot {
			return v, true
		}
	}
	return nil, false
}

// Vehicles returns vehicles in creation order
func (w *World) Vehicles() []*Vehicle {
	out := make([]*Vehicle, 0, len(w.vehicleOrder))
	for _, id := range w.vehicleOrder {
		out = append(out, w.vehicles[id])
	}
	return out
}

// AliveVehicles returns alive vehicles in creation order
func (w *World) AliveVehicles() []*Vehicle {
	var out []*Vehicle
	for _, id := range w.vehicleOrder {
		if v := w.vehicles[id]; v.Alive {
			out = append(out, v)
		}
	}
	return out
}

func (w *World) AnyVehicleAlive() bool {
	for _, id := range w.vehicleOrder {
		if w.vehicles[id].Alive {
			return true
		}
	}
	return false
}

// Active returns the controlled vehicle, or nil
func (w *World) Active() *Vehicle {
	return w.vehicles[w.ActiveID]
}

// SetActive switches control. Only alive vehicles can be selected.
func (w *World) SetActive(id EntityID) bool {
	v, ok := w.vehicles[id]
	if !ok || !v.Alive {
		return false
	}
	w.ActiveID = id
	return true
}

func (w *World) RemoveVehicle(id EntityID) bool {
	if _, ok := w.vehicles[id]; !ok {
		return false
	}
	delete(w.vehicles, id)
	w.vehicleOrder = without(w.vehicleOrder, id)
	if w.ActiveID == id {
		w.ActiveID = 0
	}
	return true
}

// ---- Enemies ----

// AddEnemy spawns a tripod on the ground at (x, z)
func (w *World) AddEnemy(x, z float64) *Enemy {
	pos := mgl64.Vec3{x, 0, z}
	e := &Enemy{
		ID:           w.newID(),
		Pos:          pos,
		Health:       NewHealth(EnemyMaxHealth),
		Alive:        true,
		WanderTarget: pos,
		WanderTimer:  w.Rand.Float64() * 3,
	}
	w.enemies[e.ID] = e
	w.enemyOrder = append(w.enemyOrder, e.ID)
	return e
}

func (w *World) Enemy(id EntityID) (*Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// Enemies returns enemies in creation order
func (w *World) Enemies() []*Enemy {
	out := make([]*Enemy, 0, len(w.enemyOrder))
	for _, id := range w.enemyOrder {
		out = append(out, w.enemies[id])
	}
	return out
}

// AliveEnemies returns alive enemies in creation order
func (w *World) AliveEnemies() []*Enemy {
	var out []*Enemy
	for _, id := range w.enemyOrder {
		if e := w.enemies[id]; e.Alive {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) RemoveEnemy(id EntityID) bool {
	if _, ok := w.enemies[id]; !ok {
		return false
	}
	delete(w.enemies, id)
	w.enemyOrder = without(w.enemyOrder, id)
	if w.LastAttacked == id {
		w.LastAttacked = 0
	}
	return true
}

// ---- Projectiles ----

// AddProjectile registers a shot and assigns its id
func (w *World) AddProjectile(p Projectile) *Projectile {
	p.ID = w.newID()
	proj := &p
	w.projectiles[p.ID] = proj
	w.projOrder = append(w.projOrder, p.ID)
	return proj
}

func (w *World) Projectile(id EntityID) (*Projectile, bool) {
	p, ok := w.projectiles[id]
	return p, ok
}

// Projectiles returns live projectiles in spawn order
func (w *World) Projectiles() []*Projectile {
	out := make([]*Projectile, 0, len(w.projOrder))
	for _, id := range w.projOrder {
		out = append(out, w.projectiles[id])
	}
	return out
}

func (w *World) RemoveProjectile(id EntityID) bool {
	if _, ok := w.projectiles[id]; !ok {
		return false
	}
	delete(w.projectiles, id)
	w.projOrder = without(w.projOrder, id)
	return true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.vehicles) + len(w.enemies) + len(w.projectiles)
}

func without(ids []EntityID, id EntityID) []EntityID {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
