package showcase

import (
	"github.com/chewxy/math32"

	"github.com/sean-bowman/portfolio/math"
	"github.com/sean-bowman/portfolio/scene"
)

const (
	defaultOrbitDistance = 4.0
	defaultOrbitPitch    = 0.3
	defaultAutoRotate    = 0.5 // radians per second
	defaultDamping       = 5.0 // velocity decay per second
	minOrbitDistance     = 0.5
	maxOrbitPitch        = 1.5
)

// OrbitControls orbits a camera around a target point from pointer drag and
// scroll input, with inertial damping and constant auto-rotation.
type OrbitControls struct {
	Target   math.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	AutoRotateSpeed float32 // constant yaw drift, radians/sec
	DampingFactor   float32 // velocity decay per second

	camera   *scene.Camera
	yawVel   float32
	pitchVel float32
	detached bool
}

func NewOrbitControls(camera *scene.Camera) *OrbitControls {
	c := &OrbitControls{
		Target:          math.Vec3Zero,
		Distance:        defaultOrbitDistance,
		Pitch:           defaultOrbitPitch,
		AutoRotateSpeed: defaultAutoRotate,
		DampingFactor:   defaultDamping,
		camera:          camera,
	}
	c.apply()
	return c
}

// Drag feeds a pointer delta into the orbit velocity.
func (c *OrbitControls) Drag(dx, dy float32) {
	if c.detached {
		return
	}
	c.yawVel += dx
	c.pitchVel += dy
}

// Zoom moves the camera toward or away from the target.
func (c *OrbitControls) Zoom(delta float32) {
	if c.detached {
		return
	}
	c.Distance += delta
	if c.Distance < minOrbitDistance {
		c.Distance = minOrbitDistance
	}
	c.apply()
}

// Update advances auto-rotation and damped drag velocity, then repositions
// the camera. Called once per rendered frame.
func (c *OrbitControls) Update(dt float32) {
	if c.detached {
		return
	}

	c.Yaw += c.AutoRotateSpeed*dt + c.yawVel*dt
	c.Pitch += c.pitchVel * dt

	decay := 1 - c.DampingFactor*dt
	if decay < 0 {
		decay = 0
	}
	c.yawVel *= decay
	c.pitchVel *= decay

	c.apply()
}

// Reset restores the fixed default viewpoint.
func (c *OrbitControls) Reset() {
	c.Target = math.Vec3Zero
	c.Distance = defaultOrbitDistance
	c.Yaw = 0
	c.Pitch = defaultOrbitPitch
	c.yawVel = 0
	c.pitchVel = 0
	c.apply()
}

// Detach disconnects the controls from the camera; all further input and
// updates are ignored.
func (c *OrbitControls) Detach() {
	c.detached = true
	c.camera = nil
}

// apply clamps the pitch and positions the camera on the orbit sphere.
func (c *OrbitControls) apply() {
	if c.camera == nil {
		return
	}

	if c.Pitch > maxOrbitPitch {
		c.Pitch = maxOrbitPitch
	}
	if c.Pitch < -maxOrbitPitch {
		c.Pitch = -maxOrbitPitch
	}

	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	offset := math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	}

	c.camera.SetPosition(c.Target.Add(offset))
	c.camera.LookAt(c.Target)
}
