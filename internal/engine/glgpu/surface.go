package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/logger"
)

// Surface presents the window's default framebuffer.
type Surface struct {
	win        Window
	caps       gpu.SurfaceCapabilities
	config     gpu.SurfaceConfig
	configured bool
}

var _ gpu.Surface = (*Surface)(nil)

func newSurface(win Window, vsync bool) *Surface {
	modes := []gpu.PresentMode{gpu.PresentFifo, gpu.PresentImmediate, gpu.PresentMailbox}
	if !vsync {
		modes = []gpu.PresentMode{gpu.PresentImmediate, gpu.PresentFifo, gpu.PresentMailbox}
	}
	return &Surface{
		win: win,
		caps: gpu.SurfaceCapabilities{
			Formats:      []gpu.TextureFormat{gpu.FormatRGBA8UnormSrgb, gpu.FormatRGBA8Unorm},
			PresentModes: modes,
			AlphaModes:   []gpu.AlphaMode{gpu.AlphaOpaque},
		},
	}
}

func (s *Surface) Capabilities() gpu.SurfaceCapabilities {
	return s.caps
}

func (s *Surface) Configure(cfg gpu.SurfaceConfig) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("configure with zero size %dx%d", cfg.Width, cfg.Height)
	}

	if err := s.win.SetSwapInterval(swapInterval(cfg.PresentMode)); err != nil {
		if cfg.PresentMode != gpu.PresentMailbox {
			return fmt.Errorf("setting swap interval for %s: %w", cfg.PresentMode, err)
		}
		// Adaptive vsync is optional; fall back to regular vsync.
		if err := s.win.SetSwapInterval(1); err != nil {
			return fmt.Errorf("setting swap interval: %w", err)
		}
	}

	if cfg.Format.IsSRGB() {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	s.config = cfg
	s.configured = true
	return nil
}

func swapInterval(m gpu.PresentMode) int {
	switch m {
	case gpu.PresentImmediate:
		return 0
	case gpu.PresentMailbox:
		return -1
	}
	return 1
}

// Acquire checks that the default framebuffer is usable at the configured
// size. GL errors left over from the previous frame are drained here.
func (s *Surface) Acquire() (gpu.SurfaceTexture, error) {
	if !s.configured {
		return nil, gpu.ErrSurfaceLost
	}
	if err := drainErrors(); err != nil {
		return nil, err
	}
	if s.win.Minimized() {
		return nil, gpu.ErrSurfaceOutdated
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		if status == gl.FRAMEBUFFER_UNDEFINED {
			return nil, gpu.ErrSurfaceLost
		}
		return nil, fmt.Errorf("default framebuffer status 0x%x: %w", status, gpu.ErrSurfaceOutdated)
	}

	w, h := s.win.DrawableSize()
	if uint32(w) != s.config.Width || uint32(h) != s.config.Height {
		return nil, fmt.Errorf("drawable %dx%d, configured %dx%d: %w", w, h, s.config.Width, s.config.Height, gpu.ErrSurfaceOutdated)
	}

	return &frame{
		surface: s,
		view:    &view{label: "surface", fbo: 0, width: int32(w), height: int32(h)},
	}, nil
}

// drainErrors clears the GL error queue, reporting out-of-memory.
func drainErrors() error {
	var oom bool
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if code == gl.OUT_OF_MEMORY {
			oom = true
			continue
		}
		logger.Debug("GL error", zap.Uint32("code", code))
	}
	if oom {
		return gpu.ErrOutOfMemory
	}
	return nil
}

type frame struct {
	surface *Surface
	view    *view
}

func (f *frame) View() gpu.TextureView {
	return f.view
}

func (f *frame) Present() {
	f.surface.win.SwapBuffers()
}
