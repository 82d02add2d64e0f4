package systems

import (
	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/geom"
)

// Vehicle handling, per second
const (
	VehicleMoveSpeed = 10.0
	VehicleTurnSpeed = 2.0
	AimSpeed         = 1.5
)

// MovementSystem drives the active vehicle from the current controls
type MovementSystem struct {
	UI       core.UI
	Controls core.Controls
}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	if v := w.Active(); v != nil && v.Alive {
		s.drive(v, dt)
	}
	for _, v := range w.AliveVehicles() {
		v.Pos[1] = core.VehicleRideHeight
	}
}

func (s *MovementSystem) drive(v *core.Vehicle, dt float64) {
	c := s.Controls
	forward := geom.ForwardFromYaw(v.Yaw)
	step := VehicleMoveSpeed * dt
	if c.Forward {
		v.Pos = v.Pos.Add(forward.Mul(step))
	}
	if c.Back {
		v.Pos = v.Pos.Sub(forward.Mul(step))
	}
	if c.TurnLeft {
		v.Yaw += VehicleTurnSpeed * dt
	}
	if c.TurnRight {
		v.Yaw -= VehicleTurnSpeed * dt
	}

	if !v.Weapon.Spec().Elevates {
		return
	}
	aim := v.Aim
	if c.AimUp {
		aim += AimSpeed * dt
	}
	if c.AimDown {
		aim -= AimSpeed * dt
	}
	v.Aim = geom.Clamp(aim, 0, core.MaxAimAngle)
	if s.UI != nil {
		s.UI.SetCannonAngleDisplay(v.AimDegrees())
	}
}
