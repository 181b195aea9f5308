// Package shader wraps GLSL program compilation, linking, and named uniform
// upload. A Program either links completely or ends up in a failed state that
// turns every subsequent call into a safe no-op; partial linkage is never
// observable.
package shader

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Stage identifiers used in compile diagnostics.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
)

// CompileError reports a single shader stage failing to compile. The stage
// name and the driver's info log are preserved so vertex and fragment
// failures stay distinguishable.
type CompileError struct {
	// Stage is StageVertex or StageFragment.
	Stage string
	// Log is the compiler diagnostic text from the driver.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s stage compilation failed: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n"))
}

// LinkError reports the program link step failing after both stages compiled.
type LinkError struct {
	// Log is the linker diagnostic text from the driver.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: program linking failed: %s", strings.TrimRight(e.Log, "\x00\n"))
}

// Program owns one compiled and linked GPU program and exposes uniform upload
// keyed by name. Uniform names that do not resolve against the linked program
// are silent no-ops, matching the GLSL convention that unused uniforms may be
// optimized away. All methods on a failed program are no-ops.
type Program interface {
	// Name returns the identifier given at construction, used in log output.
	//
	// Returns:
	//   - string: the program name
	Name() string

	// Failed reports whether compilation or linking failed.
	//
	// Returns:
	//   - bool: true if the program is unusable
	Failed() bool

	// Err returns the compile or link error that put the program into the
	// failed state, or nil for a usable program.
	//
	// Returns:
	//   - error: *CompileError, *LinkError, or nil
	Err() error

	// Bind makes this the active program for subsequent uniform uploads and
	// draw calls.
	Bind()

	// SetMat4 uploads a 4x4 column-major matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader source
	//   - m: the matrix (at least 16 elements, column-major)
	SetMat4(name string, m []float32)

	// SetVec3 uploads a vec3 uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader source
	//   - x, y, z: the vector components
	SetVec3(name string, x, y, z float32)

	// SetFloat uploads a float uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader source
	//   - value: the scalar value
	SetFloat(name string, value float32)

	// Release deletes the GPU program. Safe to call more than once.
	Release()
}

// glProgram is the GL implementation of Program with a uniform location
// cache. Unresolved names cache -1 so the lookup cost is paid once.
type glProgram struct {
	name      string
	handle    uint32
	err       error
	locations map[string]int32
	warnOnce  sync.Once
	released  bool
}

var _ Program = &glProgram{}

// NewProgram compiles the vertex and fragment sources and links them into one
// program. Failure is non-fatal: the error is logged, the returned Program is
// in the failed state, and every call on it is a no-op. Use Err to retrieve
// the typed failure.
//
// Must be called on the thread owning the GL context.
//
// Parameters:
//   - name: identifier for log output
//   - vertexSource: GLSL vertex shader source
//   - fragmentSource: GLSL fragment shader source
//
// Returns:
//   - Program: the linked program, or a failed no-op program
func NewProgram(name, vertexSource, fragmentSource string) Program {
	p := &glProgram{
		name:      name,
		locations: make(map[string]int32),
	}

	vert, err := compileStage(StageVertex, gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		p.err = err
		log.Printf("shader %q: %v", name, err)
		return p
	}
	frag, err := compileStage(StageFragment, gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vert)
		p.err = err
		log.Printf("shader %q: %v", name, err)
		return p
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	// The stage objects are no longer needed once linked (or failed to link).
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		p.err = &LinkError{Log: infoLog}
		log.Printf("shader %q: %v", name, p.err)
		return p
	}

	p.handle = handle
	return p
}

// compileStage compiles one shader stage and returns its handle or a
// *CompileError carrying the driver diagnostic.
func compileStage(stage string, glType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(glType)

	csources, free := gl.Strs(nullTerminate(source))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, &CompileError{Stage: stage, Log: infoLog}
	}
	return handle, nil
}

// nullTerminate appends the terminator the GL string API expects, unless the
// source already carries one.
func nullTerminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (p *glProgram) Name() string {
	return p.name
}

func (p *glProgram) Failed() bool {
	return p.err != nil
}

func (p *glProgram) Err() error {
	return p.err
}

func (p *glProgram) Bind() {
	if p.unusable() {
		return
	}
	gl.UseProgram(p.handle)
}

func (p *glProgram) SetMat4(name string, m []float32) {
	if p.unusable() {
		return
	}
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *glProgram) SetVec3(name string, x, y, z float32) {
	if p.unusable() {
		return
	}
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (p *glProgram) SetFloat(name string, value float32) {
	if p.unusable() {
		return
	}
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (p *glProgram) Release() {
	if p.released || p.err != nil {
		return
	}
	p.released = true
	gl.DeleteProgram(p.handle)
}

// unusable reports whether calls should no-op, logging the reason once per
// program so a failed shader does not flood the log every frame.
func (p *glProgram) unusable() bool {
	if p.err != nil {
		p.warnOnce.Do(func() {
			log.Printf("shader %q: ignoring calls on failed program", p.name)
		})
		return true
	}
	if p.released {
		p.warnOnce.Do(func() {
			log.Printf("shader %q: ignoring calls on released program", p.name)
		})
		return true
	}
	return false
}

// location resolves and caches the uniform location for name. Unresolved
// names cache -1, making every later set for that name a silent no-op.
func (p *glProgram) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(nullTerminate(name)))
	p.locations[name] = loc
	return loc
}
