package scene

import (
	"fmt"
	"sync"

	"github.com/DiedFrog/bowlworld/engine/camera"
	"github.com/DiedFrog/bowlworld/engine/curvature"
	"github.com/DiedFrog/bowlworld/engine/game_object"
)

// Scene defines the interface for a drawable collection of game objects plus
// the camera and curvature settings that frame them. The ground object is held
// separately from the registry and always draws first; remaining objects draw
// in insertion order. Every object in a scene shares the same curvature
// amount, so the whole world bends consistently.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the scene's name.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is updated and drawn by the engine.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is updated and drawn by the engine.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Camera returns the attached camera, or nil if not set.
	//
	// Returns:
	//   - camera.Camera: the attached camera or nil
	Camera() camera.Camera

	// SetCamera attaches a camera to the scene.
	//
	// Parameters:
	//   - cam: the camera to attach
	SetCamera(cam camera.Camera)

	// Curvature returns the scene's curvature parameters.
	//
	// Returns:
	//   - curvature.Params: the current curvature parameters
	Curvature() curvature.Params

	// SetCurvature sets the scene's curvature parameters. The new amount
	// applies to every object from the next draw onward.
	//
	// Parameters:
	//   - params: the curvature parameters to use
	SetCurvature(params curvature.Params)

	// Ground returns the dedicated ground object, or nil if not set.
	//
	// Returns:
	//   - game_object.GameObject: the ground object or nil
	Ground() game_object.GameObject

	// SetGround sets the dedicated ground object. The ground is always drawn
	// before the registry objects and is not assigned an ID.
	//
	// Parameters:
	//   - obj: the ground object
	SetGround(obj game_object.GameObject)

	// Add registers a game object and assigns it a unique ID. Objects draw
	// in the order they were added.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object registered under the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove unregisters the object with the given ID. Unknown IDs are ignored.
	// The removed object is not released; the caller keeps ownership.
	//
	// Parameters:
	//   - id: the object ID to remove
	Remove(id uint64)

	// Count returns the number of registered objects, excluding the ground.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Update advances per-frame state: the camera matrices and every
	// object's rotation.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous frame
	Update(deltaTime float32)

	// DrawCalls issues one draw per enabled object: ground first, then the
	// registry in insertion order. For each object the program is bound, the
	// model/view/projection matrices and the shared curvature amount are
	// uploaded, the object's static uniforms are applied, and the mesh drawn.
	// Objects without a mesh or program are skipped.
	//
	// Returns:
	//   - error: an error if the scene has no camera attached
	DrawCalls() error

	// Clear removes every object, including the ground, releasing each one.
	Clear()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	ground   game_object.GameObject
	registry map[uint64]game_object.GameObject
	order    []uint64 // draw order for registry objects
	nextID   uint64

	cam   camera.Camera
	curve curvature.Params

	// Scratch model matrix reused each draw to avoid per-object allocations.
	modelScratch [16]float32
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera. The camera is required
// and NewScene panics if it is nil: a scene without a camera has no view or
// projection to draw with.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		active:   false,
		cam:      cam,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Curvature() curvature.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.curve
}

func (s *scene) SetCurvature(params curvature.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.curve = params
}

func (s *scene) Ground() game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ground
}

func (s *scene) SetGround(obj game_object.GameObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ground = obj
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	obj.SetID(id)
	s.registry[id] = obj
	s.order = append(s.order, id)
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry[id]; !ok {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Update(deltaTime float32) {
	s.mu.RLock()
	cam := s.cam
	objects := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		objects = append(objects, s.registry[id])
	}
	s.mu.RUnlock()

	if cam != nil {
		cam.Update()
	}
	for _, obj := range objects {
		obj.AdvanceRotation(deltaTime)
	}
}

func (s *scene) DrawCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cam == nil {
		return fmt.Errorf("scene %q has no camera attached", s.name)
	}

	view := s.cam.ViewMatrix()
	projection := s.cam.ProjectionMatrix()

	if s.ground != nil {
		s.drawObject(s.ground, view[:], projection[:])
	}
	for _, id := range s.order {
		s.drawObject(s.registry[id], view[:], projection[:])
	}

	return nil
}

// drawObject issues a single draw for one object. Objects that are disabled
// or missing a mesh or program are skipped. Caller must hold the mutex.
func (s *scene) drawObject(obj game_object.GameObject, view, projection []float32) {
	if obj == nil || !obj.Enabled() {
		return
	}
	msh := obj.Mesh()
	program := obj.Program()
	if msh == nil || program == nil {
		return
	}

	program.Bind()

	obj.ModelMatrix(s.modelScratch[:])
	program.SetMat4("model", s.modelScratch[:])
	program.SetMat4("view", view)
	program.SetMat4("projection", projection)
	program.SetFloat(curvature.UniformName, s.curve.CurveAmount)
	obj.ApplyStaticUniforms()

	msh.Draw()
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ground != nil {
		s.ground.Release()
		s.ground = nil
	}
	for _, obj := range s.registry {
		obj.Release()
	}
	s.registry = make(map[uint64]game_object.GameObject)
	s.order = s.order[:0]
}
