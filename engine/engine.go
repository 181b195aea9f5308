package engine

import (
	"log"
	"sort"
	"sync"

	"github.com/DiedFrog/bowlworld/engine/profiler"
	"github.com/DiedFrog/bowlworld/engine/renderer"
	"github.com/DiedFrog/bowlworld/engine/scene"
	"github.com/DiedFrog/bowlworld/engine/window"
)

// engine implements the Engine interface.
// The whole frame lifecycle runs on the window's OS thread: the GL context is
// bound to that thread, so update and draw share one loop instead of separate
// goroutines.
type engine struct {
	window window.Window
	r      renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	lastFrameTime float64
	quitOnce      sync.Once
}

// Engine is the main entry point. It owns the frame loop: input polling,
// per-frame updates, and draw submission for every active scene.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the attached renderer, or nil if not set.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance or nil
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame before
	// scenes update. Use this for input processing and game logic.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given z-index key.
	// Scenes are drawn in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining draw order (lower draws first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the frame loop. Blocks until the window closes, then
	// releases scene resources.
	Run()

	// Quit requests the window to close, ending the frame loop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window must be supplied via WithWindow before Run is called; the resize
// fan-out to the renderer viewport and scene cameras is wired here.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:           make(map[int]scene.Scene),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if height == 0 {
				return
			}
			if e.r != nil {
				e.r.Resize(uint32(width), uint32(height))
			}
			for _, s := range e.scenes {
				if c := s.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.r
}

func (e *engine) Run() {
	if e.window == nil {
		log.Println("engine: Run called without a window, nothing to do")
		return
	}

	e.lastFrameTime = e.window.Time()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	// The loop has ended; tear down scene resources while the GL context is
	// still current.
	for _, s := range e.scenes {
		s.Clear()
	}
	if e.r != nil {
		e.r.Release()
	}
}

// frame executes one iteration of the frame lifecycle: delta time, tick
// callback, scene updates, then draw submission and buffer swap.
func (e *engine) frame() {
	now := e.window.Time()
	dt := float32(now - e.lastFrameTime)
	e.lastFrameTime = now

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	// Update and draw active scenes in ascending z-index order.
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if e.r != nil {
		e.r.BeginFrame()
	}
	for _, k := range keys {
		s := e.scenes[k]
		if !s.Active() {
			continue
		}
		s.Update(dt)
		if err := s.DrawCalls(); err != nil {
			log.Printf("engine: draw failed for scene %q: %v", s.Name(), err)
		}
	}
	e.window.SwapBuffers()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// Quit requests the window to close, ending the frame loop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("engine: failed to close window: %v", err)
			}
		}
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called once per frame.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
