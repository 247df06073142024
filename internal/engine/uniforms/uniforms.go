// Package uniforms manages the per-frame uniform block shared by every shader.
package uniforms

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/logger"
)

// Size is the encoded size of FrameUniforms in bytes.
const Size = 16

// BlockName is the uniform block name shaders declare to receive FrameUniforms.
const BlockName = "Frame"

// FrameUniforms is the engine-wide uniform block. Field order is the GPU layout:
// four consecutive 32-bit floats.
type FrameUniforms struct {
	DeltaTime      float32
	RunTime        float32
	ViewportWidth  float32
	ViewportHeight float32
}

// Bytes encodes the block in its GPU layout.
func (u FrameUniforms) Bytes() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(u.DeltaTime))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(u.RunTime))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(u.ViewportWidth))
	binary.LittleEndian.PutUint32(b[12:], math.Float32bits(u.ViewportHeight))
	return b
}

// Manager owns the in-memory FrameUniforms and its GPU mirror.
type Manager struct {
	uniforms  FrameUniforms
	buffer    gpu.Buffer
	layout    gpu.BindGroupLayout
	bindGroup gpu.BindGroup
}

// New creates the uniform buffer, its bind group layout and bind group.
// The block starts zeroed except for the viewport size.
func New(device gpu.Device, width, height uint32) (*Manager, error) {
	m := &Manager{
		uniforms: FrameUniforms{
			ViewportWidth:  float32(width),
			ViewportHeight: float32(height),
		},
	}

	var err error
	m.buffer, err = device.CreateBufferInit("Uniform Buffer", gpu.BufferUsageUniform|gpu.BufferUsageCopyDst, m.uniforms.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating uniform buffer: %w", err)
	}

	m.layout, err = device.CreateBindGroupLayout(gpu.BindGroupLayoutDescriptor{
		Label: "uniform_buffer_layout",
		Entries: []gpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gpu.ShaderStageVertex | gpu.ShaderStageFragment,
			Type:       gpu.BindingUniformBuffer,
		}},
	})
	if err != nil {
		m.buffer.Destroy()
		return nil, fmt.Errorf("creating uniform layout: %w", err)
	}

	m.bindGroup, err = device.CreateBindGroup(gpu.BindGroupDescriptor{
		Label:   "uniform_bind_group",
		Layout:  m.layout,
		Entries: []gpu.BindGroupEntry{{Binding: 0, Buffer: m.buffer}},
	})
	if err != nil {
		m.buffer.Destroy()
		return nil, fmt.Errorf("creating uniform bind group: %w", err)
	}

	logger.Debug("uniform block created",
		zap.Uint32("width", width),
		zap.Uint32("height", height),
	)
	return m, nil
}

// SetRunTime sets the seconds since engine start.
func (m *Manager) SetRunTime(seconds float32) {
	m.uniforms.RunTime = seconds
}

// SetDeltaTime sets the seconds since the previous frame.
func (m *Manager) SetDeltaTime(seconds float32) {
	m.uniforms.DeltaTime = seconds
}

// SetWidth sets the viewport width in pixels.
func (m *Manager) SetWidth(width float32) {
	m.uniforms.ViewportWidth = width
}

// SetHeight sets the viewport height in pixels.
func (m *Manager) SetHeight(height float32) {
	m.uniforms.ViewportHeight = height
}

// Uniforms returns a copy of the in-memory block.
func (m *Manager) Uniforms() FrameUniforms {
	return m.uniforms
}

// Write uploads the whole block through queue. Call it after every setter
// for the frame and before the render pass is recorded.
func (m *Manager) Write(queue gpu.Queue) {
	queue.WriteBuffer(m.buffer, 0, m.uniforms.Bytes())
}

// Layout returns the bind group layout objects compile their pipelines against.
func (m *Manager) Layout() gpu.BindGroupLayout {
	return m.layout
}

// BindGroup returns the bind group bound at slot 0 every frame.
func (m *Manager) BindGroup() gpu.BindGroup {
	return m.bindGroup
}

// Release destroys the GPU buffer.
func (m *Manager) Release() {
	if m.buffer != nil {
		m.buffer.Destroy()
		m.buffer = nil
	}
}
