package scene

import (
	"github.com/DiedFrog/bowlworld/engine/curvature"
	"github.com/DiedFrog/bowlworld/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a scene during construction.
type SceneBuilderOption func(*scene)

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: true to start active
//
// Returns:
//   - SceneBuilderOption: functional option to set the active state
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCurvature sets the scene's initial curvature parameters.
//
// Parameters:
//   - params: the curvature parameters to use
//
// Returns:
//   - SceneBuilderOption: functional option to set the curvature
func WithCurvature(params curvature.Params) SceneBuilderOption {
	return func(s *scene) {
		s.curve = params
	}
}

// WithGround sets the scene's dedicated ground object.
//
// Parameters:
//   - obj: the ground object
//
// Returns:
//   - SceneBuilderOption: functional option to set the ground
func WithGround(obj game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.ground = obj
	}
}

// WithObjects adds the given objects to the scene in order, assigning IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: functional option to add the objects
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			id := s.nextID
			s.nextID++
			obj.SetID(id)
			s.registry[id] = obj
			s.order = append(s.order, id)
		}
	}
}
