package camera

// MoveDirection identifies one of the controller's six translation directions.
type MoveDirection int

const (
	// MoveForward translates along the view direction.
	MoveForward MoveDirection = iota
	// MoveBackward translates opposite the view direction.
	MoveBackward
	// MoveLeft strafes along the negative local right axis.
	MoveLeft
	// MoveRight strafes along the local right axis.
	MoveRight
	// MoveUp translates along world up.
	MoveUp
	// MoveDown translates along world down.
	MoveDown
)

// CameraController defines the interface for first-person camera control.
// Controllers own positional state (position, yaw, pitch). Camera reads
// position and target from the controller and computes view/projection
// matrices. Orientation comes from yaw/pitch angles driven by mouse-look;
// translation comes from Move calls driven by held keys.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Target returns the look-at point, which is always position + front.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Front returns the unit view direction derived from yaw and pitch.
	//
	// Returns:
	//   - x, y, z: unit front vector components
	Front() (x, y, z float32)

	// Yaw returns the horizontal view angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// SetYaw sets the horizontal view angle directly.
	//
	// Parameters:
	//   - yaw: new yaw in degrees
	SetYaw(yaw float32)

	// Pitch returns the vertical view angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetPitch sets the vertical view angle, clamped to the pitch limits.
	//
	// Parameters:
	//   - pitch: new pitch in degrees
	SetPitch(pitch float32)

	// MovementSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// MouseSensitivity returns the degrees-per-pixel mouse-look multiplier.
	//
	// Returns:
	//   - float32: mouse sensitivity
	MouseSensitivity() float32

	// Move translates the camera in the given direction, scaled by movement
	// speed and the elapsed frame time so motion is frame-rate independent.
	// Forward and backward movement follows the full view direction, so a
	// pitched camera gains or loses height; vertical movement uses world up.
	//
	// Parameters:
	//   - direction: which of the six directions to move
	//   - deltaTime: seconds elapsed since the previous frame
	Move(direction MoveDirection, deltaTime float32)

	// Look steers yaw and pitch from an absolute cursor position. The first
	// call after construction (or after ResetLook) only records the position,
	// producing no rotation, so the view cannot jump when the cursor state is
	// unknown. Pitch is clamped to the pitch limits.
	//
	// Parameters:
	//   - cursorX, cursorY: absolute cursor position in screen coordinates
	Look(cursorX, cursorY float64)

	// ResetLook forgets the last cursor position so the next Look call
	// re-anchors without rotating. Call this when the cursor is recaptured.
	ResetLook()
}
