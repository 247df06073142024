// Package surface manages the presentable surface, its configuration and the
// optional multisample target the render pass draws into.
package surface

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/logger"
)

// Manager owns the surface configuration and the multisample target derived
// from it.
type Manager struct {
	surface     gpu.Surface
	device      gpu.Device
	config      gpu.SurfaceConfig
	sampleCount uint32
	msaa        *MultisampleTarget
	log         *zap.Logger
}

// New negotiates a configuration from the surface capabilities and
// configures the surface at width x height. A sampleCount above 1 enables
// multisampling with resolve on present.
func New(device gpu.Device, surface gpu.Surface, width, height, sampleCount uint32) (*Manager, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("initial surface size %dx%d: dimensions must be positive", width, height)
	}
	if sampleCount == 0 {
		sampleCount = 1
	}
	if limit := device.Limits().MaxSampleCount; sampleCount > limit {
		return nil, fmt.Errorf("sample count %d exceeds device maximum %d: %w", sampleCount, limit, gpu.ErrNoAdapter)
	}

	caps := surface.Capabilities()
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("surface reports no formats: %w", gpu.ErrNoAdapter)
	}

	m := &Manager{
		surface:     surface,
		device:      device,
		sampleCount: sampleCount,
		config: gpu.SurfaceConfig{
			Format:      ChooseFormat(caps.Formats),
			PresentMode: gpu.PresentFifo,
			AlphaMode:   gpu.AlphaOpaque,
		},
		log: logger.Named("surface"),
	}
	if len(caps.PresentModes) > 0 {
		m.config.PresentMode = caps.PresentModes[0]
	}
	if len(caps.AlphaModes) > 0 {
		m.config.AlphaMode = caps.AlphaModes[0]
	}

	if err := m.Configure(width, height); err != nil {
		return nil, err
	}

	m.log.Info("surface negotiated",
		zap.Stringer("format", m.config.Format),
		zap.Stringer("present_mode", m.config.PresentMode),
		zap.Stringer("alpha_mode", m.config.AlphaMode),
		zap.Uint32("samples", m.sampleCount),
	)
	return m, nil
}

// ChooseFormat prefers the first sRGB format and falls back to the first one.
func ChooseFormat(formats []gpu.TextureFormat) gpu.TextureFormat {
	for _, f := range formats {
		if f.IsSRGB() {
			return f
		}
	}
	if len(formats) == 0 {
		return gpu.FormatUndefined
	}
	return formats[0]
}

// Configure reconfigures the surface and rebuilds the multisample target at
// the new size. A zero dimension is ignored and the last valid
// configuration stays in place.
func (m *Manager) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		m.log.Debug("ignoring zero-sized configure",
			zap.Uint32("width", width),
			zap.Uint32("height", height),
		)
		return nil
	}

	cfg := m.config
	cfg.Width = width
	cfg.Height = height

	// Nothing is committed until both the target and the surface succeed.
	var target *MultisampleTarget
	if m.sampleCount > 1 {
		var err error
		target, err = newMultisampleTarget(m.device, cfg, m.sampleCount)
		if err != nil {
			return err
		}
	}
	if err := m.surface.Configure(cfg); err != nil {
		target.release()
		return fmt.Errorf("configuring surface %dx%d: %w", width, height, err)
	}

	m.config = cfg
	if target != nil {
		m.msaa.release()
		m.msaa = target
	}

	m.log.Debug("surface configured",
		zap.Uint32("width", width),
		zap.Uint32("height", height),
	)
	return nil
}

// Acquire returns the next presentable image or an *UnavailableError.
func (m *Manager) Acquire() (gpu.SurfaceTexture, error) {
	frame, err := m.surface.Acquire()
	if err != nil {
		return nil, &UnavailableError{Reason: classify(err), Err: err}
	}
	return frame, nil
}

// Present hands an acquired image back to the display.
func (m *Manager) Present(frame gpu.SurfaceTexture) {
	frame.Present()
}

// ColorAttachment returns the render pass color target for frame: the
// multisample target resolving into frame, or frame itself.
func (m *Manager) ColorAttachment(frame gpu.SurfaceTexture) gpu.ColorAttachment {
	if m.msaa != nil {
		return gpu.ColorAttachment{
			View:          m.msaa.View(),
			ResolveTarget: frame.View(),
			Clear:         gpu.Black,
			Store:         false,
		}
	}
	return gpu.ColorAttachment{
		View:  frame.View(),
		Clear: gpu.Black,
		Store: true,
	}
}

// Config returns the active surface configuration.
func (m *Manager) Config() gpu.SurfaceConfig {
	return m.config
}

// Format returns the negotiated surface pixel format.
func (m *Manager) Format() gpu.TextureFormat {
	return m.config.Format
}

// Size returns the configured width and height.
func (m *Manager) Size() (width, height uint32) {
	return m.config.Width, m.config.Height
}

// SampleCount returns the configured sample count, 1 when multisampling is off.
func (m *Manager) SampleCount() uint32 {
	return m.sampleCount
}

// Multisample returns the current multisample target, or nil when disabled.
func (m *Manager) Multisample() *MultisampleTarget {
	return m.msaa
}

// Release destroys the multisample target.
func (m *Manager) Release() {
	m.msaa.release()
	m.msaa = nil
}

// Reason classifies why a frame could not be acquired.
type Reason int

const (
	// ReasonTransient frames are skipped and retried next frame.
	ReasonTransient Reason = iota
	// ReasonLost requires reconfiguring at the last known size.
	ReasonLost
	// ReasonOutOfMemory is fatal.
	ReasonOutOfMemory
)

func (r Reason) String() string {
	switch r {
	case ReasonLost:
		return "lost"
	case ReasonOutOfMemory:
		return "out of memory"
	}
	return "transient"
}

// UnavailableError is returned by Acquire.
type UnavailableError struct {
	Reason Reason
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("surface unavailable (%s): %v", e.Reason, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, gpu.ErrSurfaceLost):
		return ReasonLost
	case errors.Is(err, gpu.ErrOutOfMemory):
		return ReasonOutOfMemory
	}
	return ReasonTransient
}
