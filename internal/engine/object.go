package engine

import (
	"github.com/google/uuid"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Host is the read-only view of the engine an Object receives in Start.
// It carries everything needed to build pipelines that match the live
// engine configuration.
type Host interface {
	Device() gpu.Device
	Queue() gpu.Queue
	UniformLayout() gpu.BindGroupLayout
	SurfaceFormat() gpu.TextureFormat
	SampleCount() uint32
}

// Object is a registered participant in the frame loop. Embed BaseObject to
// get no-op defaults for the hooks an object does not need.
type Object interface {
	// Start runs once, right after registration. GPU handles taken from host
	// must not be kept past Start, apart from the resources the object creates.
	Start(host Host) error
	// Update runs once per frame before any Render, in registration order.
	Update()
	// Render returns what to draw this frame, or false to draw nothing.
	// It must not touch engine or GPU state.
	Render() (RenderDescriptor, bool)
}

// BaseObject implements every Object hook as a no-op.
type BaseObject struct{}

func (BaseObject) Start(Host) error { return nil }

func (BaseObject) Update() {}

func (BaseObject) Render() (RenderDescriptor, bool) { return RenderDescriptor{}, false }

// Releaser is implemented by objects holding GPU resources to free on shutdown.
type Releaser interface {
	Release()
}

// RenderDescriptor references the GPU state one object draws with this
// frame. It is only valid for the render pass that consumes it.
type RenderDescriptor struct {
	Pipeline     gpu.RenderPipeline
	VertexBuffer gpu.Buffer
	// IndexBuffer holds uint16 indices. Nil selects a non-indexed draw of NumVertices.
	IndexBuffer gpu.Buffer
	NumVertices uint32
	NumIndices  uint32
}

// Handle identifies a registered object.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

type entry struct {
	handle Handle
	object Object
}

// registry keeps objects in registration order.
type registry struct {
	entries []entry
	index   map[Handle]int
}

func newRegistry() *registry {
	return &registry{index: make(map[Handle]int)}
}

func (r *registry) add(obj Object) Handle {
	h := Handle(uuid.New())
	r.index[h] = len(r.entries)
	r.entries = append(r.entries, entry{handle: h, object: obj})
	return h
}

func (r *registry) get(h Handle) (Object, bool) {
	i, ok := r.index[h]
	if !ok {
		return nil, false
	}
	return r.entries[i].object, true
}

func (r *registry) len() int {
	return len(r.entries)
}
