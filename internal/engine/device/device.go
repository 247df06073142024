// Package device wraps the logical GPU device and its command queue.
package device

import (
	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Manager owns the device and queue and scopes command recording.
type Manager struct {
	device gpu.Device
	queue  gpu.Queue
}

// New wraps an already negotiated device and queue.
func New(device gpu.Device, queue gpu.Queue) *Manager {
	return &Manager{device: device, queue: queue}
}

// Device returns the logical device.
func (m *Manager) Device() gpu.Device {
	return m.device
}

// Queue returns the command queue.
func (m *Manager) Queue() gpu.Queue {
	return m.queue
}

// Record opens a command encoder, passes it to record, then finishes the
// encoder and submits it. Submission happens on every exit path, including
// an error return or a panic inside record.
func (m *Manager) Record(label string, record func(enc gpu.CommandEncoder) error) error {
	enc := m.device.CreateCommandEncoder(label)
	defer func() {
		m.queue.Submit(enc.Finish())
	}()
	return record(enc)
}

// RenderPass begins a render pass on enc, runs draw, and ends the pass on
// every exit path.
func RenderPass(enc gpu.CommandEncoder, desc gpu.RenderPassDescriptor, draw func(pass gpu.RenderPass)) {
	pass := enc.BeginRenderPass(desc)
	defer pass.End()
	draw(pass)
}
