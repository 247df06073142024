// Package uiquad draws a translucent square panel as an indexed triangle strip.
package uiquad

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/gpu"
)

const halfSize = 0.25

// Corners of the panel in strip order: bottom edge, then top edge.
var Corners = []mgl32.Vec3{
	{-halfSize, -halfSize, 0},
	{halfSize, -halfSize, 0},
	{-halfSize, halfSize, 0},
	{halfSize, halfSize, 0},
}

// Indices walk the strip once; the second triangle reuses corners 1 and 2.
var Indices = []uint16{0, 1, 2, 3}

// Layout is the vertex buffer layout: position only.
var Layout = gpu.NewVertexLayout(gpu.Float32x3)

func vertexBytes() []byte {
	flat := make([]float32, 0, len(Corners)*3)
	for _, c := range Corners {
		flat = append(flat, c[:]...)
	}
	return gpu.Float32Bytes(flat)
}

// Quad is an engine object blending a panel over whatever was drawn before it.
type Quad struct {
	engine.BaseObject

	module       gpu.ShaderModule
	pipeline     gpu.RenderPipeline
	vertexBuffer gpu.Buffer
	indexBuffer  gpu.Buffer
}

var (
	_ engine.Object   = (*Quad)(nil)
	_ engine.Releaser = (*Quad)(nil)
)

func New() *Quad {
	return &Quad{}
}

// Start builds the strip pipeline and uploads the corners.
func (q *Quad) Start(host engine.Host) error {
	device := host.Device()

	var err error
	q.module, err = device.CreateShaderModule(gpu.ShaderSource{
		Label:         "ui quad shader",
		Vertex:        vertexShaderSource,
		Fragment:      fragmentShaderSource,
		UniformBlocks: map[string]uint32{"Frame": 0},
	})
	if err != nil {
		return fmt.Errorf("ui quad shader: %w", err)
	}

	q.pipeline, err = device.CreateRenderPipeline(gpu.RenderPipelineDescriptor{
		Label:            "Render UI Quad",
		Module:           q.module,
		BindGroupLayouts: []gpu.BindGroupLayout{host.UniformLayout()},
		Vertex:           Layout,
		Format:           host.SurfaceFormat(),
		SampleCount:      host.SampleCount(),
		Topology:         gpu.TriangleStrip,
		Cull:             gpu.CullBack,
		Blend:            gpu.BlendAlpha,
	})
	if err != nil {
		q.Release()
		return fmt.Errorf("ui quad pipeline: %w", err)
	}

	q.vertexBuffer, err = device.CreateBufferInit("UI Quad Vertices", gpu.BufferUsageVertex, vertexBytes())
	if err != nil {
		q.Release()
		return fmt.Errorf("ui quad vertices: %w", err)
	}

	q.indexBuffer, err = device.CreateBufferInit("UI Quad Indices", gpu.BufferUsageIndex, gpu.Uint16Bytes(Indices))
	if err != nil {
		q.Release()
		return fmt.Errorf("ui quad indices: %w", err)
	}

	return nil
}

func (q *Quad) Render() (engine.RenderDescriptor, bool) {
	return engine.RenderDescriptor{
		Pipeline:     q.pipeline,
		VertexBuffer: q.vertexBuffer,
		IndexBuffer:  q.indexBuffer,
		NumIndices:   uint32(len(Indices)),
	}, true
}

func (q *Quad) Release() {
	for _, b := range []gpu.Buffer{q.vertexBuffer, q.indexBuffer} {
		if b != nil {
			b.Destroy()
		}
	}
	if q.pipeline != nil {
		q.pipeline.Destroy()
	}
	if q.module != nil {
		q.module.Destroy()
	}
}
