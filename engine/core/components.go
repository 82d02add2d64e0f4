package core

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/geom"
)

// EntityKind tells collaborators what an id refers to
type EntityKind uint8

const (
	KindVehicle EntityKind = iota
	KindEnemy
	KindProjectile
)

// ---- Health ----

// Health represents hit points
type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount and clamps at zero. Returns the new value.
func (h *Health) Damage(amount float64) float64 {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current
}

func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func (h Health) Depleted() bool {
	return h.Current <= 0
}

// ---- Weapons ----

// WeaponKind selects a row of the weapon table
type WeaponKind uint8

const (
	WeaponMachineGun WeaponKind = iota
	WeaponCannon
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponCannon:
		return "cannon"
	default:
		return "machinegun"
	}
}

// Label is the human readable weapon name
func (k WeaponKind) Label() string {
	switch k {
	case WeaponCannon:
		return "Cannon"
	default:
		return "Machine Gun"
	}
}

// ParseWeaponKind accepts the names produced by String
func ParseWeaponKind(s string) (WeaponKind, error) {
	switch s {
	case "machinegun":
		return WeaponMachineGun, nil
	case "cannon":
		return WeaponCannon, nil
	}
	return 0, fmt.Errorf("unknown weapon kind %q", s)
}

// WeaponSpec is the per-kind firing profile
type WeaponSpec struct {
	Kind     WeaponKind
	Speed    float64 // world units per tick
	Damage   float64
	Gravity  bool
	Cooldown time.Duration
	Pivot    mgl64.Vec3 // barrel pivot, hull-local
	Barrel   mgl64.Vec3 // muzzle, pivot-local
	Elevates bool       // muzzle direction follows the aim angle
}

var weaponSpecs = [...]WeaponSpec{
	WeaponMachineGun: {
		Kind:     WeaponMachineGun,
		Speed:    1.5,
		Damage:   10,
		Cooldown: 250 * time.Millisecond,
		Pivot:    mgl64.Vec3{0, 0.5, 0},
		Barrel:   mgl64.Vec3{0, 0, -2},
	},
	WeaponCannon: {
		Kind:     WeaponCannon,
		Speed:    1.0,
		Damage:   20,
		Gravity:  true,
		Cooldown: 1000 * time.Millisecond,
		Pivot:    mgl64.Vec3{0, 0.5, -0.5},
		Barrel:   mgl64.Vec3{0, 0, -1.5},
		Elevates: true,
	},
}

// Spec returns the firing profile for a weapon kind
func (k WeaponKind) Spec() WeaponSpec {
	if int(k) < len(weaponSpecs) {
		return weaponSpecs[k]
	}
	return weaponSpecs[WeaponMachineGun]
}

// ---- Vehicle ----

const (
	VehicleMaxHealth  = 100
	VehicleRideHeight = 0.5
	MaxAimAngle       = math.Pi / 2
)

// Vehicle is a player-controllable unit
type Vehicle struct {
	ID       EntityID
	Slot     int // 1-based display number, stable for the vehicle's lifetime
	Pos      mgl64.Vec3
	Yaw      float64
	Weapon   WeaponKind
	Health   Health
	Alive    bool
	Aim      float64 // barrel elevation in radians, cannon only
	LastShot time.Time
	Gen      uint64
}

func (v *Vehicle) Rotation() mgl64.Quat {
	return geom.YawQuat(v.Yaw)
}

// BarrelRotation is the world orientation of the barrel pivot
func (v *Vehicle) BarrelRotation() mgl64.Quat {
	rot := v.Rotation()
	if v.Weapon.Spec().Elevates {
		rot = rot.Mul(geom.PitchQuat(v.Aim))
	}
	return rot
}

// Muzzle returns the world position where shots spawn
func (v *Vehicle) Muzzle() mgl64.Vec3 {
	spec := v.Weapon.Spec()
	pivot := geom.LocalToWorld(v.Pos, v.Rotation(), spec.Pivot)
	return geom.LocalToWorld(pivot, v.BarrelRotation(), spec.Barrel)
}

// AimDirection is the unit direction shots travel in
func (v *Vehicle) AimDirection() mgl64.Vec3 {
	return v.BarrelRotation().Rotate(geom.Forward)
}

// AimDegrees is the elevation rounded for display
func (v *Vehicle) AimDegrees() int {
	return int(math.Round(mgl64.RadToDeg(v.Aim)))
}

// ---- Enemy (tripod) ----

// Part names a hittable or tintable piece of an entity
type Part uint8

const (
	PartHull Part = iota
	PartBarrel
	PartBody
	PartLeg1
	PartLeg2
	PartLeg3
	PartEmitter
)

// LegPart maps a leg index to its Part
func LegPart(i int) Part {
	return PartLeg1 + Part(i)
}

func (p Part) String() string {
	switch p {
	case PartHull:
		return "hull"
	case PartBarrel:
		return "barrel"
	case PartBody:
		return "body"
	case PartLeg1, PartLeg2, PartLeg3:
		return fmt.Sprintf("leg%d", int(p-PartLeg1)+1)
	case PartEmitter:
		return "emitter"
	}
	return "unknown"
}

// EnemyParts lists every part that gets recoloured on destruction
var EnemyParts = []Part{PartBody, PartLeg1, PartLeg2, PartLeg3, PartEmitter}

const (
	EnemyMaxHealth = 200
	BodyRadius     = 1.5
	LegRadius      = 0.3
	LegHalfHeight  = 4.0
	HitBuffer      = 0.5
)

var (
	BodyOffset    = mgl64.Vec3{0, 8, 0}
	EmitterOffset = mgl64.Vec3{0, 7, 0}
	LegOffsets    = [3]mgl64.Vec3{
		{0, 4, -2},
		{1.7, 4, 1},
		{-1.7, 4, 1},
	}
)

// HeatRayState is the beam weapon phase of an enemy
type HeatRayState uint8

const (
	HeatRayIdle HeatRayState = iota
	HeatRayCharging
	HeatRayFiring
)

func (s HeatRayState) String() string {
	switch s {
	case HeatRayCharging:
		return "charging"
	case HeatRayFiring:
		return "firing"
	}
	return "idle"
}

// HeatRayChargeTime is how long a target must stay in range before the beam hurts
const HeatRayChargeTime = 1000 * time.Millisecond

// Enemy is an AI tripod
type Enemy struct {
	ID           EntityID
	Pos          mgl64.Vec3
	Health       Health
	Alive        bool
	LimbHits     int
	HeatRaySince *time.Time // nil while no target is in range
	RayState     HeatRayState
	WanderTarget mgl64.Vec3
	WanderTimer  float64 // seconds until a new wander target
	HasBeam      bool
	Gen          uint64
}

// Tripods never rotate, so local offsets are plain translations.

func (e *Enemy) BodyCenter() mgl64.Vec3 { return e.Pos.Add(BodyOffset) }
func (e *Enemy) Emitter() mgl64.Vec3    { return e.Pos.Add(EmitterOffset) }
func (e *Enemy) LegAnchor(i int) mgl64.Vec3 {
	return e.Pos.Add(LegOffsets[i])
}

// HeatRayElapsed returns how long the current target has been in range
func (e *Enemy) HeatRayElapsed(now time.Time) (time.Duration, bool) {
	if e.HeatRaySince == nil {
		return 0, false
	}
	return now.Sub(*e.HeatRaySince), true
}

// HeatRayState derives the beam phase at the given time
func (e *Enemy) HeatRayState(now time.Time) HeatRayState {
	elapsed, ok := e.HeatRayElapsed(now)
	switch {
	case !ok:
		return HeatRayIdle
	case elapsed >= HeatRayChargeTime:
		return HeatRayFiring
	default:
		return HeatRayCharging
	}
}

// ---- Projectile ----

// Projectile is a live shot in flight
type Projectile struct {
	ID      EntityID
	Source  EntityID
	Weapon  WeaponKind
	Pos     mgl64.Vec3
	Vel     mgl64.Vec3
	Gravity bool
	Damage  float64
}
