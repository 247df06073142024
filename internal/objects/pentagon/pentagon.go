// Package pentagon draws a rotating regular pentagon.
package pentagon

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/gpu"
)

const (
	// NumVertices is the number of pentagon corners.
	NumVertices = 5
	radius      = 0.5
	// firstCorner is the angle of vertex 0 in degrees; corners follow counter-clockwise.
	firstCorner = 100
)

// Indices fan the pentagon from its last corner, counter-clockwise.
var Indices = []uint16{0, 1, 4, 1, 2, 4, 2, 3, 4}

// Color is the fill color of every corner.
var Color = mgl32.Vec3{0.5, 0.0, 0.5}

// Vertex is one corner of the pentagon as laid out in the vertex buffer.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Layout is the vertex buffer layout: position then color.
var Layout = gpu.NewVertexLayout(gpu.Float32x3, gpu.Float32x3)

// Vertices returns the pentagon corners on a circle of radius 0.5.
func Vertices() []Vertex {
	out := make([]Vertex, NumVertices)
	start := mgl32.Vec2{radius, 0}
	for i := range out {
		angle := mgl32.DegToRad(float32(firstCorner + i*360/NumVertices))
		p := mgl32.Rotate2D(angle).Mul2x1(start)
		out[i] = Vertex{Position: p.Vec3(0), Color: Color}
	}
	return out
}

func vertexBytes(vertices []Vertex) []byte {
	flat := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		flat = append(flat, v.Position[:]...)
		flat = append(flat, v.Color[:]...)
	}
	return gpu.Float32Bytes(flat)
}

// Pentagon is an engine object drawing an indexed pentagon that rotates with
// the engine run time.
type Pentagon struct {
	engine.BaseObject

	module       gpu.ShaderModule
	pipeline     gpu.RenderPipeline
	vertexBuffer gpu.Buffer
	indexBuffer  gpu.Buffer
}

var (
	_ engine.Object   = (*Pentagon)(nil)
	_ engine.Releaser = (*Pentagon)(nil)
)

// New returns a pentagon whose GPU resources are created on Start.
func New() *Pentagon {
	return &Pentagon{}
}

// Start builds the pipeline and uploads the geometry.
func (p *Pentagon) Start(host engine.Host) error {
	device := host.Device()

	var err error
	p.module, err = device.CreateShaderModule(gpu.ShaderSource{
		Label:         "pentagon shader",
		Vertex:        vertexShaderSource,
		Fragment:      fragmentShaderSource,
		UniformBlocks: map[string]uint32{"Frame": 0},
	})
	if err != nil {
		return fmt.Errorf("pentagon shader: %w", err)
	}

	p.pipeline, err = device.CreateRenderPipeline(gpu.RenderPipelineDescriptor{
		Label:            "Render Pentagon",
		Module:           p.module,
		BindGroupLayouts: []gpu.BindGroupLayout{host.UniformLayout()},
		Vertex:           Layout,
		Format:           host.SurfaceFormat(),
		SampleCount:      host.SampleCount(),
		Topology:         gpu.TriangleList,
		Cull:             gpu.CullBack,
		Blend:            gpu.BlendAlpha,
	})
	if err != nil {
		p.Release()
		return fmt.Errorf("pentagon pipeline: %w", err)
	}

	p.vertexBuffer, err = device.CreateBufferInit("Vertex Buffer", gpu.BufferUsageVertex, vertexBytes(Vertices()))
	if err != nil {
		p.Release()
		return fmt.Errorf("pentagon vertices: %w", err)
	}

	p.indexBuffer, err = device.CreateBufferInit("Index Buffer", gpu.BufferUsageIndex, gpu.Uint16Bytes(Indices))
	if err != nil {
		p.Release()
		return fmt.Errorf("pentagon indices: %w", err)
	}

	return nil
}

// Render draws the pentagon with indexed triangles.
func (p *Pentagon) Render() (engine.RenderDescriptor, bool) {
	return engine.RenderDescriptor{
		Pipeline:     p.pipeline,
		VertexBuffer: p.vertexBuffer,
		IndexBuffer:  p.indexBuffer,
		NumIndices:   uint32(len(Indices)),
	}, true
}

// Release destroys the buffers, then the pipeline and its shader module.
func (p *Pentagon) Release() {
	for _, b := range []gpu.Buffer{p.vertexBuffer, p.indexBuffer} {
		if b != nil {
			b.Destroy()
		}
	}
	if p.pipeline != nil {
		p.pipeline.Destroy()
	}
	if p.module != nil {
		p.module.Destroy()
	}
}
