package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithClearColor sets the background color used when clearing the frame.
// When not specified, the default is a daytime sky blue.
//
// Parameters:
//   - r, g, b, a: the clear color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(r, g, b, a float32) RendererBuilderOption {
	return func(rd *renderer) {
		rd.clearColor = [4]float32{r, g, b, a}
	}
}

// WithDepthTest toggles depth testing. When not specified, depth testing is
// enabled, which is required for correct occlusion between solid objects.
//
// Parameters:
//   - enabled: whether to enable the depth test
//
// Returns:
//   - RendererBuilderOption: a function that applies the depth test option to a renderer
func WithDepthTest(enabled bool) RendererBuilderOption {
	return func(rd *renderer) {
		rd.depthTest = enabled
	}
}
