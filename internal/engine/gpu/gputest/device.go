package gputest

import (
	"fmt"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Device records every resource it creates.
type Device struct {
	gpu *GPU

	MaxSampleCount uint32

	Buffers   []*Buffer
	Textures  []*Texture
	Modules   []*Module
	Pipelines []*Pipeline
	Encoders  []*Encoder

	// PipelineErr, when set, is returned by CreateRenderPipeline.
	PipelineErr error
	// TextureErr, when set, is returned by CreateTexture.
	TextureErr error
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) CreateBuffer(desc gpu.BufferDescriptor) (gpu.Buffer, error) {
	b := &Buffer{label: newLabel("buffer", desc.Label), usage: desc.Usage, Data: make([]byte, desc.Size)}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) CreateBufferInit(label string, usage gpu.BufferUsage, contents []byte) (gpu.Buffer, error) {
	b := &Buffer{label: newLabel("buffer", label), usage: usage, Data: append([]byte(nil), contents...)}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) CreateBindGroupLayout(desc gpu.BindGroupLayoutDescriptor) (gpu.BindGroupLayout, error) {
	return &layout{label: desc.Label, entries: desc.Entries}, nil
}

func (d *Device) CreateBindGroup(desc gpu.BindGroupDescriptor) (gpu.BindGroup, error) {
	if desc.Layout == nil {
		return nil, fmt.Errorf("bind group %q: nil layout", desc.Label)
	}
	return &BindGroup{Desc: desc}, nil
}

func (d *Device) CreateShaderModule(src gpu.ShaderSource) (gpu.ShaderModule, error) {
	src.Label = newLabel("shader", src.Label)
	m := &Module{Source: src}
	d.Modules = append(d.Modules, m)
	return m, nil
}

func (d *Device) CreateRenderPipeline(desc gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	if d.PipelineErr != nil {
		return nil, d.PipelineErr
	}
	p := &Pipeline{Desc: desc}
	d.Pipelines = append(d.Pipelines, p)
	return p, nil
}

func (d *Device) CreateTexture(desc gpu.TextureDescriptor) (gpu.Texture, error) {
	if d.TextureErr != nil {
		return nil, d.TextureErr
	}
	if desc.SampleCount > d.MaxSampleCount {
		return nil, fmt.Errorf("texture %q: sample count %d exceeds %d", desc.Label, desc.SampleCount, d.MaxSampleCount)
	}
	t := &Texture{Desc: desc}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *Device) CreateCommandEncoder(label string) gpu.CommandEncoder {
	e := &Encoder{label: newLabel("encoder", label)}
	d.Encoders = append(d.Encoders, e)
	return e
}

func (d *Device) Limits() gpu.Limits {
	return gpu.Limits{MaxSampleCount: d.MaxSampleCount}
}

// LiveTextures returns the textures that have not been destroyed.
func (d *Device) LiveTextures() []*Texture {
	var live []*Texture
	for _, t := range d.Textures {
		if !t.Destroyed {
			live = append(live, t)
		}
	}
	return live
}

// Write is one recorded Queue.WriteBuffer call.
type Write struct {
	Buffer gpu.Buffer
	Offset uint64
	Data   []byte
}

// Queue records writes and submissions.
type Queue struct {
	gpu *GPU

	Writes    []Write
	Submitted []*CommandBuffer
}

var _ gpu.Queue = (*Queue)(nil)

func (q *Queue) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) {
	q.Writes = append(q.Writes, Write{Buffer: buf, Offset: offset, Data: append([]byte(nil), data...)})
	if b, ok := buf.(*Buffer); ok {
		copy(b.Data[offset:], data)
	}
	q.gpu.record("write %d bytes", len(data))
}

func (q *Queue) Submit(buffers ...gpu.CommandBuffer) {
	for _, cb := range buffers {
		q.Submitted = append(q.Submitted, cb.(*CommandBuffer))
		q.gpu.record("submit %s", cb.Label())
	}
}

// Commands returns the commands of every submitted buffer in order.
func (q *Queue) Commands() []Command {
	var out []Command
	for _, cb := range q.Submitted {
		out = append(out, cb.Commands...)
	}
	return out
}

// Count returns how many submitted commands have the given op.
func (q *Queue) Count(op Op) int {
	n := 0
	for _, c := range q.Commands() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded writes and submissions.
func (q *Queue) Reset() {
	q.Writes = nil
	q.Submitted = nil
}
