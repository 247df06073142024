package glgpu

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// These tests cover the pure mappings; everything else needs a live context.

func TestSwapInterval(t *testing.T) {
	tests := []struct {
		mode gpu.PresentMode
		want int
	}{
		{gpu.PresentFifo, 1},
		{gpu.PresentImmediate, 0},
		{gpu.PresentMailbox, -1},
	}
	for _, tt := range tests {
		if got := swapInterval(tt.mode); got != tt.want {
			t.Errorf("swapInterval(%s) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestSurfacePresentModeOrder(t *testing.T) {
	vsync := newSurface(nil, true).Capabilities()
	if vsync.PresentModes[0] != gpu.PresentFifo {
		t.Errorf("expected fifo first with vsync, got %s", vsync.PresentModes[0])
	}
	immediate := newSurface(nil, false).Capabilities()
	if immediate.PresentModes[0] != gpu.PresentImmediate {
		t.Errorf("expected immediate first without vsync, got %s", immediate.PresentModes[0])
	}
	if !vsync.Formats[0].IsSRGB() {
		t.Errorf("expected sRGB format first, got %s", vsync.Formats[0])
	}
}

func TestFormatMappings(t *testing.T) {
	if glInternalFormat(gpu.FormatRGBA8UnormSrgb) != gl.SRGB8_ALPHA8 {
		t.Error("sRGB format should map to SRGB8_ALPHA8")
	}
	if glInternalFormat(gpu.FormatBGRA8Unorm) != gl.RGBA8 {
		t.Error("linear format should map to RGBA8")
	}
	if glIndexType(gpu.IndexUint16) != gl.UNSIGNED_SHORT {
		t.Error("uint16 indices should map to UNSIGNED_SHORT")
	}
	if glTopology(gpu.TriangleList) != gl.TRIANGLES {
		t.Error("triangle list should map to TRIANGLES")
	}
	if glAttribType(gpu.Sint32) != gl.INT {
		t.Error("sint32 should map to INT")
	}
}

func TestUnconfiguredSurfaceIsLost(t *testing.T) {
	s := newSurface(nil, true)
	if _, err := s.Acquire(); err != gpu.ErrSurfaceLost {
		t.Errorf("expected ErrSurfaceLost, got %v", err)
	}
}
