package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"

	"github.com/DiedFrog/bowlworld/common"
)

// pitchLimit keeps the view off the poles, where the front vector would
// become collinear with world up and the view matrix would degenerate.
const pitchLimit = 89.0

// cameraControllerImpl is the single implementation of CameraController.
// Mouse-look modifies yaw/pitch; Move translates position along the local
// axes derived from them. Forward motion follows the full view direction,
// so a pitched camera flies toward whatever it is looking at.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position ms3.Vec

	// View angles in degrees
	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32

	// Last cursor sample for mouse-look deltas. Invalid until the first
	// Look call after construction or ResetLook.
	lastCursorX    float64
	lastCursorY    float64
	cursorAnchored bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new first-person camera controller with
// sensible defaults: positioned a few units back from the origin, looking
// down the negative z axis.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: ms3.Vec{X: 0, Y: 0, Z: 4},

		yaw:   -90.0,
		pitch: 0.0,

		movementSpeed:    2.5,
		mouseSensitivity: 0.1,
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

// --- internal helpers ---

// front derives the unit view direction from yaw and pitch.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) front() ms3.Vec {
	yaw := common.Radians(cc.yaw)
	pitch := common.Radians(cc.pitch)
	return ms3.Unit(ms3.Vec{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	})
}

// right derives the unit local right axis from the front vector and world up.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) right() ms3.Vec {
	return ms3.Unit(ms3.Cross(cc.front(), ms3.Vec{X: 0, Y: 1, Z: 0}))
}

// clampPitch bounds a pitch angle to the pitch limits.
func clampPitch(pitch float32) float32 {
	if pitch > pitchLimit {
		return pitchLimit
	}
	if pitch < -pitchLimit {
		return -pitchLimit
	}
	return pitch
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position.X, cc.position.Y, cc.position.Z
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = ms3.Vec{X: x, Y: y, Z: z}
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	t := ms3.Add(cc.position, cc.front())
	return t.X, t.Y, t.Z
}

func (cc *cameraControllerImpl) Front() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	f := cc.front()
	return f.X, f.Y, f.Z
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) SetPitch(pitch float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = clampPitch(pitch)
}

func (cc *cameraControllerImpl) MovementSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.movementSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *cameraControllerImpl) Move(direction MoveDirection, deltaTime float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	velocity := cc.movementSpeed * deltaTime

	var step ms3.Vec
	switch direction {
	case MoveForward:
		step = cc.front()
	case MoveBackward:
		step = ms3.Scale(-1, cc.front())
	case MoveLeft:
		step = ms3.Scale(-1, cc.right())
	case MoveRight:
		step = cc.right()
	case MoveUp:
		step = ms3.Vec{X: 0, Y: 1, Z: 0}
	case MoveDown:
		step = ms3.Vec{X: 0, Y: -1, Z: 0}
	default:
		return
	}

	cc.position = ms3.Add(cc.position, ms3.Scale(velocity, step))
}

func (cc *cameraControllerImpl) Look(cursorX, cursorY float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if !cc.cursorAnchored {
		cc.lastCursorX = cursorX
		cc.lastCursorY = cursorY
		cc.cursorAnchored = true
		return
	}

	dx := float32(cursorX - cc.lastCursorX)
	// Screen y grows downward; pitch grows upward.
	dy := float32(cc.lastCursorY - cursorY)
	cc.lastCursorX = cursorX
	cc.lastCursorY = cursorY

	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch = clampPitch(cc.pitch + dy*cc.mouseSensitivity)
}

func (cc *cameraControllerImpl) ResetLook() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cursorAnchored = false
}
