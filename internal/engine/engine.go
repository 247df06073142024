// Package engine drives the frame loop: it owns the device, surface, uniform
// block and clock, dispatches window events, and updates and renders every
// registered Object once per frame.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine/clock"
	"github.com/Faultbox/argand/internal/engine/device"
	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/surface"
	"github.com/Faultbox/argand/internal/engine/uniforms"
	"github.com/Faultbox/argand/internal/logger"
)

// Config is the engine-level configuration.
type Config struct {
	// MSAA is the multisample count. 0 or 1 disables multisampling.
	MSAA uint32
}

// SampleCount returns the effective sample count, at least 1.
func (c Config) SampleCount() uint32 {
	if c.MSAA == 0 {
		return 1
	}
	return c.MSAA
}

// Backend is a negotiated device, its queue, and the window surface at its
// initial drawable size.
type Backend struct {
	Device  gpu.Device
	Queue   gpu.Queue
	Surface gpu.Surface
	Width   uint32
	Height  uint32
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c *clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

var _ Host = (*Engine)(nil)

// Engine is the frame loop orchestrator.
type Engine struct {
	config   Config
	device   *device.Manager
	surface  *surface.Manager
	uniforms *uniforms.Manager
	clock    *clock.Clock
	objects  *registry

	state   State
	err     error
	frames  uint64
	redraws uint64
	log    *zap.Logger
}

// New builds the engine on top of backend.
func New(cfg Config, backend Backend, opts ...Option) (*Engine, error) {
	if backend.Device == nil || backend.Queue == nil || backend.Surface == nil {
		return nil, fmt.Errorf("incomplete backend: %w", gpu.ErrNoAdapter)
	}

	e := &Engine{
		config:  cfg,
		device:  device.New(backend.Device, backend.Queue),
		objects: newRegistry(),
		log:     logger.Named("engine"),
	}

	var err error
	e.surface, err = surface.New(backend.Device, backend.Surface, backend.Width, backend.Height, cfg.SampleCount())
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}

	e.uniforms, err = uniforms.New(backend.Device, backend.Width, backend.Height)
	if err != nil {
		e.surface.Release()
		return nil, fmt.Errorf("creating uniforms: %w", err)
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = clock.New()
	}

	e.log.Info("engine initialized",
		zap.Uint32("width", backend.Width),
		zap.Uint32("height", backend.Height),
		zap.Uint32("samples", cfg.SampleCount()),
	)
	return e, nil
}

// AddObject registers obj and runs its Start hook. An object whose Start
// fails is not registered.
func (e *Engine) AddObject(obj Object) (Handle, error) {
	if err := obj.Start(e); err != nil {
		return Handle{}, fmt.Errorf("starting object %T: %w", obj, err)
	}
	h := e.objects.add(obj)
	e.log.Debug("object registered",
		zap.Stringer("handle", h),
		zap.String("type", fmt.Sprintf("%T", obj)),
	)
	return h, nil
}

// Object returns the registered object for h.
func (e *Engine) Object(h Handle) (Object, bool) {
	return e.objects.get(h)
}

// NumObjects returns how many objects are registered.
func (e *Engine) NumObjects() int {
	return e.objects.len()
}

// Run processes events and renders frames until the engine exits. It returns
// nil on a user exit and an error wrapping gpu.ErrOutOfMemory, or a surface
// configuration error, when it exits because of a fatal failure.
func (e *Engine) Run(events EventSource) error {
	e.log.Info("starting frame loop")

	for {
		redraws := e.redraws
		for _, ev := range events.PollEvents() {
			e.HandleEvent(ev)
			if e.state == StateExiting {
				break
			}
		}
		if e.state == StateExiting {
			break
		}
		// An expose in this batch already drew the frame.
		if e.redraws == redraws {
			e.Redraw()
		}
	}

	e.log.Info("frame loop stopped", zap.Uint64("frames", e.frames), zap.Error(e.err))
	return e.err
}

// HandleEvent applies one window event.
func (e *Engine) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventResize:
		e.Resize(ev.Width, ev.Height)
	case EventCloseRequested:
		e.Exit(nil)
	case EventKeyPressed:
		if ev.Key == KeyEscape {
			e.Exit(nil)
		}
	case EventRedrawRequested:
		e.Redraw()
	}
}

// Resize reconfigures the surface and the uniform viewport. Sizes with a
// zero dimension are ignored.
func (e *Engine) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	if err := e.surface.Configure(width, height); err != nil {
		e.Exit(err)
		return
	}
	e.uniforms.SetWidth(float32(width))
	e.uniforms.SetHeight(float32(height))
}

// Exit moves the engine to StateExiting. A non-nil err is returned by Run.
func (e *Engine) Exit(err error) {
	if e.state == StateExiting {
		return
	}
	if err != nil {
		e.log.Error("exiting on fatal error", zap.Error(err))
	}
	e.err = err
	e.state = StateExiting
}

// Redraw renders one frame: acquire, update, upload uniforms, record and
// submit the render pass, present.
func (e *Engine) Redraw() {
	if e.state == StateExiting {
		return
	}
	e.redraws++
	e.state = StateFrameRequested

	frame, err := e.surface.Acquire()
	if err != nil {
		e.handleAcquireError(err)
		return
	}

	e.state = StateUpdating
	dt := e.clock.Tick()
	for _, en := range e.objects.entries {
		en.object.Update()
	}

	e.uniforms.SetRunTime(e.clock.RunTime())
	e.uniforms.SetDeltaTime(dt)
	e.uniforms.Write(e.device.Queue())

	e.state = StateRendering
	err = e.device.Record("Main render encoder", func(enc gpu.CommandEncoder) error {
		device.RenderPass(enc, gpu.RenderPassDescriptor{
			Label: "Main Render Pass",
			Color: e.surface.ColorAttachment(frame),
		}, e.draw)
		return nil
	})
	if err != nil {
		e.log.Warn("frame recording failed", zap.Error(err))
	}

	e.surface.Present(frame)
	e.state = StatePresented
	e.frames++
	e.state = StateIdle
}

func (e *Engine) draw(pass gpu.RenderPass) {
	pass.SetBindGroup(0, e.uniforms.BindGroup())

	for _, en := range e.objects.entries {
		desc, ok := en.object.Render()
		if !ok {
			continue
		}
		if desc.Pipeline != nil {
			pass.SetPipeline(desc.Pipeline)
		}
		if desc.VertexBuffer != nil {
			pass.SetVertexBuffer(0, desc.VertexBuffer)
		}
		if desc.IndexBuffer != nil {
			pass.SetIndexBuffer(desc.IndexBuffer, gpu.IndexUint16)
			pass.DrawIndexed(desc.NumIndices, 1)
		} else {
			pass.Draw(desc.NumVertices, 1)
		}
	}
}

func (e *Engine) handleAcquireError(err error) {
	var unavailable *surface.UnavailableError
	if !errors.As(err, &unavailable) {
		unavailable = &surface.UnavailableError{Reason: surface.ReasonTransient, Err: err}
	}

	switch unavailable.Reason {
	case surface.ReasonLost:
		e.log.Debug("surface lost, reconfiguring")
		e.state = StateIdle
		e.Resize(e.surface.Size())
	case surface.ReasonOutOfMemory:
		e.Exit(unavailable)
	default:
		e.log.Warn("skipping frame", zap.Error(unavailable))
		e.state = StateIdle
	}
}

// Close releases engine-owned GPU resources and every object implementing
// Releaser, in reverse registration order.
func (e *Engine) Close() {
	for i := len(e.objects.entries) - 1; i >= 0; i-- {
		if r, ok := e.objects.entries[i].object.(Releaser); ok {
			r.Release()
		}
	}
	e.uniforms.Release()
	e.surface.Release()
	e.log.Info("engine closed")
}

// Device returns the logical GPU device.
func (e *Engine) Device() gpu.Device {
	return e.device.Device()
}

// Queue returns the command queue.
func (e *Engine) Queue() gpu.Queue {
	return e.device.Queue()
}

// UniformLayout returns the bind group layout of the shared uniform block,
// bound at slot 0.
func (e *Engine) UniformLayout() gpu.BindGroupLayout {
	return e.uniforms.Layout()
}

// SurfaceFormat returns the negotiated surface pixel format.
func (e *Engine) SurfaceFormat() gpu.TextureFormat {
	return e.surface.Format()
}

// SampleCount returns the configured sample count.
func (e *Engine) SampleCount() uint32 {
	return e.config.SampleCount()
}

// Size returns the configured surface size.
func (e *Engine) Size() (width, height uint32) {
	return e.surface.Size()
}

// Uniforms returns the in-memory uniform block.
func (e *Engine) Uniforms() uniforms.FrameUniforms {
	return e.uniforms.Uniforms()
}

// State returns the current frame state.
func (e *Engine) State() State {
	return e.state
}

// Frames returns how many frames have been presented.
func (e *Engine) Frames() uint64 {
	return e.frames
}
