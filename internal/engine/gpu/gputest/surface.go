package gputest

import (
	"fmt"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Surface records configuration and scripted acquisition results.
type Surface struct {
	gpu *GPU

	Caps    gpu.SurfaceCapabilities
	Configs []gpu.SurfaceConfig

	Acquired  int
	Presented int

	// ConfigureErr, when set, is returned by Configure.
	ConfigureErr error

	failures []error
}

var _ gpu.Surface = (*Surface)(nil)

func (s *Surface) Capabilities() gpu.SurfaceCapabilities { return s.Caps }

func (s *Surface) Configure(cfg gpu.SurfaceConfig) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("gputest: configure with zero size %dx%d", cfg.Width, cfg.Height)
	}
	if s.ConfigureErr != nil {
		return s.ConfigureErr
	}
	s.Configs = append(s.Configs, cfg)
	s.gpu.record("configure %dx%d", cfg.Width, cfg.Height)
	return nil
}

// Config returns the most recent configuration.
func (s *Surface) Config() gpu.SurfaceConfig {
	if len(s.Configs) == 0 {
		return gpu.SurfaceConfig{}
	}
	return s.Configs[len(s.Configs)-1]
}

// FailAcquire queues err as the result of a future Acquire call. Queued
// failures are consumed one per call, in order.
func (s *Surface) FailAcquire(err error) {
	s.failures = append(s.failures, err)
}

func (s *Surface) Acquire() (gpu.SurfaceTexture, error) {
	if len(s.failures) > 0 {
		err := s.failures[0]
		s.failures = s.failures[1:]
		s.gpu.record("acquire failed: %v", err)
		return nil, err
	}
	s.Acquired++
	s.gpu.record("acquire")
	return &Frame{surface: s, view: &View{label: fmt.Sprintf("surface frame %d", s.Acquired)}}, nil
}

// Frame is an acquired surface image.
type Frame struct {
	surface   *Surface
	view      *View
	Presented bool
}

func (f *Frame) View() gpu.TextureView { return f.view }

func (f *Frame) Present() {
	f.Presented = true
	f.surface.Presented++
	f.surface.gpu.record("present")
}
