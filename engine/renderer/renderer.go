package renderer

import (
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/DiedFrog/bowlworld/engine/renderer/shader"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	programCache map[string]shader.Program

	clearColor [4]float32
	depthTest  bool
}

// Renderer owns the fixed-function pipeline state and the shader program
// cache. It must be created and used on the thread that owns the GL context.
type Renderer interface {
	// Program retrieves the cached Program associated with the given key.
	// If the Program does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Program to retrieve
	//
	// Returns:
	//   - shader.Program: the Program associated with the key, or nil if not found
	Program(key string) shader.Program

	// RegisterProgram compiles and links a program from the given sources and
	// caches it under the key. Keys that are already registered are skipped to
	// avoid duplicate GPU resource creation. A program that fails to compile
	// or link is still cached and returned together with the error; every
	// call on it is a safe no-op, so the caller decides whether the failure
	// is fatal.
	//
	// Parameters:
	//   - key: the unique identifier for the program
	//   - vertexSource, fragmentSource: GLSL sources for the two stages
	//
	// Returns:
	//   - shader.Program: the cached or newly created program
	//   - error: an error if compilation or linking fails
	RegisterProgram(key, vertexSource, fragmentSource string) (shader.Program, error)

	// SetProgram adds or updates a Program in the cache with the given key.
	//
	// Parameters:
	//   - key: the unique identifier for the Program to add or update in the cache
	//   - p: the Program to add or update in the cache
	SetProgram(key string, p shader.Program)

	// BeginFrame clears the color and depth buffers, readying the default
	// framebuffer for a new frame.
	BeginFrame()

	// Resize configures the viewport to a new framebuffer size.
	// This should be called when the window framebuffer size changes.
	//
	// Parameters:
	//   - width: the new width of the framebuffer in pixels
	//   - height: the new height of the framebuffer in pixels
	Resize(width, height uint32)

	// Release deletes every cached program and empties the cache.
	Release()
}

var _ Renderer = &renderer{}

// newProgram builds programs for RegisterProgram. Indirected so tests can
// substitute a constructor that does not need a GL context.
var newProgram = shader.NewProgram

// NewRenderer initializes the GL pipeline state and returns a Renderer.
// A current GL context is required; call this after window creation on the
// same thread.
//
// Parameters:
//   - opts: optional RendererBuilderOption functions to configure the renderer
//
// Returns:
//   - Renderer: the configured Renderer
func NewRenderer(opts ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:           &sync.Mutex{},
		programCache: make(map[string]shader.Program),
		clearColor:   [4]float32{0.53, 0.81, 0.92, 1.0},
		depthTest:    true,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])

	return r
}

func (r *renderer) Program(key string) shader.Program {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.programCache[key]
}

func (r *renderer) RegisterProgram(key, vertexSource, fragmentSource string) (shader.Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.programCache[key]; ok {
		return p, nil
	}

	p := newProgram(key, vertexSource, fragmentSource)
	r.programCache[key] = p
	return p, p.Err()
}

func (r *renderer) SetProgram(key string, p shader.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programCache[key] = p
}

func (r *renderer) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *renderer) Resize(width, height uint32) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.programCache {
		p.Release()
	}
	r.programCache = make(map[string]shader.Program)
}
