package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Device creates GL objects. It has no state beyond its limits: the GL
// context itself is the device.
type Device struct {
	limits gpu.Limits
}

var _ gpu.Device = (*Device)(nil)

func (d *Device) Limits() gpu.Limits {
	return d.limits
}

func (d *Device) CreateBuffer(desc gpu.BufferDescriptor) (gpu.Buffer, error) {
	b, err := newBuffer(desc.Label, desc.Usage, int(desc.Size), nil)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Device) CreateBufferInit(label string, usage gpu.BufferUsage, contents []byte) (gpu.Buffer, error) {
	b, err := newBuffer(label, usage, len(contents), contents)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Device) CreateBindGroupLayout(desc gpu.BindGroupLayoutDescriptor) (gpu.BindGroupLayout, error) {
	for _, e := range desc.Entries {
		if e.Binding >= bindingsPerGroup {
			return nil, fmt.Errorf("bind group layout %q: binding %d exceeds %d", desc.Label, e.Binding, bindingsPerGroup-1)
		}
	}
	return &bindGroupLayout{label: desc.Label, entries: desc.Entries}, nil
}

func (d *Device) CreateBindGroup(desc gpu.BindGroupDescriptor) (gpu.BindGroup, error) {
	if desc.Layout == nil {
		return nil, fmt.Errorf("bind group %q: nil layout", desc.Label)
	}
	g := &bindGroup{label: desc.Label, layout: desc.Layout}
	for _, e := range desc.Entries {
		buf, ok := e.Buffer.(*buffer)
		if !ok {
			return nil, fmt.Errorf("bind group %q: binding %d is not a GL buffer", desc.Label, e.Binding)
		}
		g.entries = append(g.entries, boundBuffer{binding: e.Binding, buffer: buf})
	}
	return g, nil
}

func (d *Device) CreateShaderModule(src gpu.ShaderSource) (gpu.ShaderModule, error) {
	program, err := compileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", src.Label, err)
	}
	m := &shaderModule{label: src.Label, program: program}
	for name, slot := range src.UniformBlocks {
		idx := gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
		if idx == gl.INVALID_INDEX {
			// Unused blocks are optimized away by the compiler.
			continue
		}
		gl.UniformBlockBinding(program, idx, slot*bindingsPerGroup)
	}
	return m, nil
}

func (d *Device) CreateRenderPipeline(desc gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	module, ok := desc.Module.(*shaderModule)
	if !ok {
		return nil, fmt.Errorf("pipeline %q: module is not a GL shader module", desc.Label)
	}
	if desc.SampleCount > d.limits.MaxSampleCount {
		return nil, fmt.Errorf("pipeline %q: sample count %d exceeds %d", desc.Label, desc.SampleCount, d.limits.MaxSampleCount)
	}

	p := &pipeline{
		label:    desc.Label,
		program:  module.program,
		layout:   desc.Vertex,
		topology: glTopology(desc.Topology),
		cull:     desc.Cull,
		blend:    desc.Blend,
	}
	gl.GenVertexArrays(1, &p.vao)
	return p, nil
}

func (d *Device) CreateTexture(desc gpu.TextureDescriptor) (gpu.Texture, error) {
	if desc.SampleCount > d.limits.MaxSampleCount {
		return nil, fmt.Errorf("texture %q: sample count %d exceeds %d", desc.Label, desc.SampleCount, d.limits.MaxSampleCount)
	}
	t, err := newTexture(desc)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Device) CreateCommandEncoder(label string) gpu.CommandEncoder {
	return &encoder{label: label}
}

type bindGroupLayout struct {
	label   string
	entries []gpu.BindGroupLayoutEntry
}

func (l *bindGroupLayout) Entries() []gpu.BindGroupLayoutEntry { return l.entries }

type boundBuffer struct {
	binding uint32
	buffer  *buffer
}

type bindGroup struct {
	label   string
	layout  gpu.BindGroupLayout
	entries []boundBuffer
}

func (g *bindGroup) Layout() gpu.BindGroupLayout { return g.layout }

func (g *bindGroup) bind(slot uint32) {
	for _, e := range g.entries {
		gl.BindBufferBase(gl.UNIFORM_BUFFER, slot*bindingsPerGroup+e.binding, e.buffer.id)
	}
}
