// Package testutil provides recording collaborators for simulation tests.
package testutil

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// UIRecorder captures every UI call
type UIRecorder struct {
	VehicleHP      map[int]float64
	EnemyHP        float64
	EnemyMaxHP     float64
	EnemyPanel     bool
	Score          int
	ActiveSlot     int
	ActiveKind     core.WeaponKind
	Paused         bool
	CannonAngle    int
	Victory        int
	Defeat         int
	EnemyHPUpdates int
}

func NewUIRecorder() *UIRecorder {
	return &UIRecorder{VehicleHP: make(map[int]float64)}
}

func (r *UIRecorder) SetVehicleHealth(slot int, hp float64) { r.VehicleHP[slot] = hp }
func (r *UIRecorder) SetEnemyHealth(hp, maxHP float64) {
	r.EnemyHP, r.EnemyMaxHP = hp, maxHP
	r.EnemyPanel = true
	r.EnemyHPUpdates++
}
func (r *UIRecorder) HideEnemyPanel() { r.EnemyPanel = false }
func (r *UIRecorder) SetScore(n int)  { r.Score = n }
func (r *UIRecorder) SetActiveVehicleLabel(slot int, kind core.WeaponKind) {
	r.ActiveSlot, r.ActiveKind = slot, kind
}
func (r *UIRecorder) SetPauseIndicator(paused bool) { r.Paused = paused }
func (r *UIRecorder) SetCannonAngleDisplay(deg int) { r.CannonAngle = deg }
func (r *UIRecorder) ShowVictoryScreen()            { r.Victory++ }
func (r *UIRecorder) ShowDefeatScreen()             { r.Defeat++ }

// LookKey addresses one part of one entity
type LookKey struct {
	ID   core.EntityID
	Part core.Part
}

// VisualsRecorder keeps the latest visual state per entity
type VisualsRecorder struct {
	Spawned map[core.EntityID]core.EntityKind
	Removed []core.EntityID
	Looks   map[LookKey]core.Look
	Beams   map[core.EntityID]core.Beam
	Cleared []core.EntityID
}

func NewVisualsRecorder() *VisualsRecorder {
	return &VisualsRecorder{
		Spawned: make(map[core.EntityID]core.EntityKind),
		Looks:   make(map[LookKey]core.Look),
		Beams:   make(map[core.EntityID]core.Beam),
	}
}

func (r *VisualsRecorder) Spawn(id core.EntityID, kind core.EntityKind) { r.Spawned[id] = kind }
func (r *VisualsRecorder) Remove(id core.EntityID) {
	delete(r.Spawned, id)
	delete(r.Beams, id)
	r.Removed = append(r.Removed, id)
}
func (r *VisualsRecorder) SetLook(id core.EntityID, part core.Part, look core.Look) {
	r.Looks[LookKey{id, part}] = look
}
func (r *VisualsRecorder) SetBeam(id core.EntityID, beam core.Beam) { r.Beams[id] = beam }
func (r *VisualsRecorder) ClearBeam(id core.EntityID) {
	delete(r.Beams, id)
	r.Cleared = append(r.Cleared, id)
}

// Look returns the recorded look for a part
func (r *VisualsRecorder) Look(id core.EntityID, part core.Part) (core.Look, bool) {
	l, ok := r.Looks[LookKey{id, part}]
	return l, ok
}

// SoundRecorder counts shot cues per weapon
type SoundRecorder struct {
	Shots []core.WeaponKind
}

func (r *SoundRecorder) PlayShot(kind core.WeaponKind) { r.Shots = append(r.Shots, kind) }

// CameraRecorder stores the last follow target
type CameraRecorder struct {
	Target  mgl64.Vec3
	Yaw     float64
	Follows int
}

func (r *CameraRecorder) Follow(target mgl64.Vec3, yaw float64) {
	r.Target, r.Yaw = target, yaw
	r.Follows++
}
