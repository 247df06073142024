// Package glgpu implements the gpu contract on OpenGL 4.1 core.
// All calls must happen on the thread that owns the GL context.
package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/logger"
)

// Window is the presentable window a Surface draws into.
type Window interface {
	// DrawableSize returns the default framebuffer size in pixels.
	DrawableSize() (width, height int)
	// SetSwapInterval sets 1 for vsync, 0 for immediate, -1 for adaptive.
	SetSwapInterval(interval int) error
	SwapBuffers()
	Minimized() bool
}

// bindingsPerGroup spaces bind group slots across GL uniform buffer binding points.
const bindingsPerGroup = 4

// New loads OpenGL entry points for the current context and returns the
// device, its queue and a surface presenting into win. vsync orders the
// offered present modes.
func New(win Window, vsync bool) (*Device, *Queue, *Surface, error) {
	if err := gl.Init(); err != nil {
		return nil, nil, nil, fmt.Errorf("initializing OpenGL: %v: %w", err, gpu.ErrNoAdapter)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < 4 || (major == 4 && minor < 1) {
		return nil, nil, nil, fmt.Errorf("OpenGL %d.%d found, 4.1 required: %w", major, minor, gpu.ErrNoAdapter)
	}

	var maxSamples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &maxSamples)
	if maxSamples < 1 {
		maxSamples = 1
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int32("max_samples", maxSamples),
	)

	dev := &Device{limits: gpu.Limits{MaxSampleCount: uint32(maxSamples)}}
	queue := &Queue{}
	surface := newSurface(win, vsync)
	return dev, queue, surface, nil
}

func glInternalFormat(f gpu.TextureFormat) uint32 {
	if f.IsSRGB() {
		return gl.SRGB8_ALPHA8
	}
	return gl.RGBA8
}

func glTopology(t gpu.PrimitiveTopology) uint32 {
	switch t {
	case gpu.TriangleStrip:
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

func glIndexType(f gpu.IndexFormat) uint32 {
	if f == gpu.IndexUint32 {
		return gl.UNSIGNED_INT
	}
	return gl.UNSIGNED_SHORT
}

func glAttribType(f gpu.VertexFormat) uint32 {
	switch f {
	case gpu.Uint32:
		return gl.UNSIGNED_INT
	case gpu.Sint32:
		return gl.INT
	}
	return gl.FLOAT
}
