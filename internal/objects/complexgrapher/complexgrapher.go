// Package complexgrapher plots a complex function over the whole viewport by
// domain coloring: hue follows the argument and brightness bands follow the
// log of the modulus.
package complexgrapher

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/gpu"
)

// DefaultExtent is the half-width of the plotted region along the shorter axis.
const DefaultExtent = 2.5

// Screen covers clip space with two triangles.
var Screen = []mgl32.Vec3{
	{-1, -1, 0},
	{-1, 1, 0},
	{1, 1, 0},
	{1, -1, 0},
}

// ScreenIndices lists the quad's triangles counter-clockwise.
var ScreenIndices = []uint16{0, 3, 2, 2, 1, 0}

// Layout is the vertex buffer layout: position only.
var Layout = gpu.NewVertexLayout(gpu.Float32x3)

// Grapher is an engine object drawing the plot behind everything registered after it.
type Grapher struct {
	engine.BaseObject

	extent       float32
	module       gpu.ShaderModule
	pipeline     gpu.RenderPipeline
	vertexBuffer gpu.Buffer
	indexBuffer  gpu.Buffer
}

var (
	_ engine.Object   = (*Grapher)(nil)
	_ engine.Releaser = (*Grapher)(nil)
)

// New returns a grapher plotting [-extent, extent] along the shorter viewport
// axis. A non-positive extent selects DefaultExtent.
func New(extent float32) *Grapher {
	if extent <= 0 {
		extent = DefaultExtent
	}
	return &Grapher{extent: extent}
}

// Extent returns the plotted half-width.
func (g *Grapher) Extent() float32 {
	return g.extent
}

// Start builds the pipeline and uploads the screen quad.
func (g *Grapher) Start(host engine.Host) error {
	device := host.Device()

	var err error
	g.module, err = device.CreateShaderModule(gpu.ShaderSource{
		Label:         "complex shader",
		Vertex:        vertexShaderSource,
		Fragment:      fragmentShaderSource(g.extent),
		UniformBlocks: map[string]uint32{"Frame": 0},
	})
	if err != nil {
		return fmt.Errorf("complex shader: %w", err)
	}

	g.pipeline, err = device.CreateRenderPipeline(gpu.RenderPipelineDescriptor{
		Label:            "Complex Graph",
		Module:           g.module,
		BindGroupLayouts: []gpu.BindGroupLayout{host.UniformLayout()},
		Vertex:           Layout,
		Format:           host.SurfaceFormat(),
		SampleCount:      host.SampleCount(),
		Topology:         gpu.TriangleList,
		Cull:             gpu.CullBack,
		Blend:            gpu.BlendReplace,
	})
	if err != nil {
		g.Release()
		return fmt.Errorf("complex pipeline: %w", err)
	}

	flat := make([]float32, 0, len(Screen)*3)
	for _, v := range Screen {
		flat = append(flat, v[:]...)
	}
	g.vertexBuffer, err = device.CreateBufferInit("Clear Screen", gpu.BufferUsageVertex, gpu.Float32Bytes(flat))
	if err != nil {
		g.Release()
		return fmt.Errorf("complex vertices: %w", err)
	}

	g.indexBuffer, err = device.CreateBufferInit("Clear Screen Indices", gpu.BufferUsageIndex, gpu.Uint16Bytes(ScreenIndices))
	if err != nil {
		g.Release()
		return fmt.Errorf("complex indices: %w", err)
	}

	return nil
}

func (g *Grapher) Render() (engine.RenderDescriptor, bool) {
	return engine.RenderDescriptor{
		Pipeline:     g.pipeline,
		VertexBuffer: g.vertexBuffer,
		IndexBuffer:  g.indexBuffer,
		NumIndices:   uint32(len(ScreenIndices)),
	}, true
}

func (g *Grapher) Release() {
	for _, b := range []gpu.Buffer{g.vertexBuffer, g.indexBuffer} {
		if b != nil {
			b.Destroy()
		}
	}
	if g.pipeline != nil {
		g.pipeline.Destroy()
	}
	if g.module != nil {
		g.module.Destroy()
	}
}
