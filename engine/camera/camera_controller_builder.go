package camera

// CameraControllerOption is a functional option for configuring a cameraControllerImpl.
// Use the With* functions to create options.
type CameraControllerOption func(cc *cameraControllerImpl)

// WithPosition sets the controller's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position.X = x
		cc.position.Y = y
		cc.position.Z = z
	}
}

// WithYaw sets the initial horizontal view angle in degrees.
//
// Parameters:
//   - yaw: yaw in degrees
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
	}
}

// WithPitch sets the initial vertical view angle in degrees, clamped to the
// pitch limits.
//
// Parameters:
//   - pitch: pitch in degrees
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = clampPitch(pitch)
	}
}

// WithMovementSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMovementSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the degrees-per-pixel mouse-look multiplier.
//
// Parameters:
//   - sensitivity: mouse sensitivity
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
