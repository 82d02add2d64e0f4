package core

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/geom"
)

// UI receives display-facing updates from the simulation
type UI interface {
	SetVehicleHealth(slot int, hp float64)
	SetEnemyHealth(hp, maxHP float64)
	HideEnemyPanel()
	SetScore(n int)
	SetActiveVehicleLabel(slot int, kind WeaponKind)
	SetPauseIndicator(paused bool)
	SetCannonAngleDisplay(degrees int)
	ShowVictoryScreen()
	ShowDefeatScreen()
}

// Visuals owns the renderable representation of entities
type Visuals interface {
	Spawn(id EntityID, kind EntityKind)
	Remove(id EntityID)
	SetLook(id EntityID, part Part, look Look)
	SetBeam(id EntityID, beam Beam)
	ClearBeam(id EntityID)
}

// Sound plays fire-and-forget cues
type Sound interface {
	PlayShot(kind WeaponKind)
}

// Camera tracks the controlled vehicle
type Camera interface {
	Follow(target mgl64.Vec3, yaw float64)
}

// Look is the material state of one part
type Look struct {
	Color     color.RGBA
	Emissive  color.RGBA
	Intensity float64
	Opacity   float64
}

// Beam is the heat ray warning mesh of one enemy
type Beam struct {
	geom.Segment
	State   HeatRayState
	Color   color.RGBA
	Opacity float64
}

var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Named looks shared by systems and the scene
var (
	LookEnemyNormal      = Look{Color: White, Emissive: Black, Intensity: 0, Opacity: 1}
	LookHitFlash         = Look{Color: Red, Emissive: Red, Intensity: 0.8, Opacity: 1}
	LookEnemyDestroyed   = Look{Color: Red, Emissive: Red, Intensity: 1, Opacity: 1}
	LookVehicleDestroyed = Look{Color: Red, Emissive: Red, Intensity: 0.5, Opacity: 1}
	LookEmitterIdle      = Look{Color: Red, Emissive: Red, Intensity: 0.5, Opacity: 1}
)

// NopUI discards every update
type NopUI struct{}

func (NopUI) SetVehicleHealth(int, float64)         {}
func (NopUI) SetEnemyHealth(float64, float64)       {}
func (NopUI) HideEnemyPanel()                       {}
func (NopUI) SetScore(int)                          {}
func (NopUI) SetActiveVehicleLabel(int, WeaponKind) {}
func (NopUI) SetPauseIndicator(bool)                {}
func (NopUI) SetCannonAngleDisplay(int)             {}
func (NopUI) ShowVictoryScreen()                    {}
func (NopUI) ShowDefeatScreen()                     {}

// NopVisuals discards every update
type NopVisuals struct{}

func (NopVisuals) Spawn(EntityID, EntityKind)    {}
func (NopVisuals) Remove(EntityID)               {}
func (NopVisuals) SetLook(EntityID, Part, Look)  {}
func (NopVisuals) SetBeam(EntityID, Beam)        {}
func (NopVisuals) ClearBeam(EntityID)            {}

// NopSound is silent
type NopSound struct{}

func (NopSound) PlayShot(WeaponKind) {}

// NopCamera ignores follow requests
type NopCamera struct{}

func (NopCamera) Follow(mgl64.Vec3, float64) {}
