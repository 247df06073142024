package gpu

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewVertexLayout(t *testing.T) {
	layout := NewVertexLayout(Float32x3, Float32x3)

	if layout.Stride != 24 {
		t.Errorf("expected stride 24, got %d", layout.Stride)
	}
	want := []VertexAttribute{
		{Format: Float32x3, Offset: 0, Location: 0},
		{Format: Float32x3, Offset: 12, Location: 1},
	}
	if len(layout.Attributes) != len(want) {
		t.Fatalf("expected %d attributes, got %d", len(want), len(layout.Attributes))
	}
	for i, attr := range layout.Attributes {
		if attr != want[i] {
			t.Errorf("attribute %d = %+v, want %+v", i, attr, want[i])
		}
	}
}

func TestNewVertexLayoutEmpty(t *testing.T) {
	layout := NewVertexLayout()
	if layout.Stride != 0 || len(layout.Attributes) != 0 {
		t.Errorf("expected empty layout, got %+v", layout)
	}
}

func TestVertexFormatSizes(t *testing.T) {
	tests := []struct {
		format     VertexFormat
		size       uint64
		components int32
		float      bool
	}{
		{Float32, 4, 1, true},
		{Float32x2, 8, 2, true},
		{Float32x3, 12, 3, true},
		{Float32x4, 16, 4, true},
		{Uint32, 4, 1, false},
		{Sint32, 4, 1, false},
	}

	for _, tt := range tests {
		if got := tt.format.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.format, got, tt.size)
		}
		if got := tt.format.Components(); got != tt.components {
			t.Errorf("%s.Components() = %d, want %d", tt.format, got, tt.components)
		}
		if got := tt.format.IsFloat(); got != tt.float {
			t.Errorf("%s.IsFloat() = %v, want %v", tt.format, got, tt.float)
		}
	}
}

func TestTextureFormatSRGB(t *testing.T) {
	tests := []struct {
		format TextureFormat
		srgb   bool
	}{
		{FormatRGBA8Unorm, false},
		{FormatRGBA8UnormSrgb, true},
		{FormatBGRA8Unorm, false},
		{FormatBGRA8UnormSrgb, true},
		{FormatUndefined, false},
	}

	for _, tt := range tests {
		if got := tt.format.IsSRGB(); got != tt.srgb {
			t.Errorf("%s.IsSRGB() = %v, want %v", tt.format, got, tt.srgb)
		}
	}
}

func TestSurfaceErrorsWrap(t *testing.T) {
	err := fmt.Errorf("acquire: %w", ErrSurfaceLost)
	if !errors.Is(err, ErrSurfaceLost) {
		t.Error("expected wrapped error to match ErrSurfaceLost")
	}
	if errors.Is(err, ErrOutOfMemory) {
		t.Error("lost must not match out of memory")
	}
}

func TestBufferUsageHas(t *testing.T) {
	u := BufferUsageUniform | BufferUsageCopyDst
	if !u.Has(BufferUsageUniform) {
		t.Error("expected uniform bit")
	}
	if !u.Has(BufferUsageUniform | BufferUsageCopyDst) {
		t.Error("expected both bits")
	}
	if u.Has(BufferUsageVertex) {
		t.Error("unexpected vertex bit")
	}
}

func TestFloat32Bytes(t *testing.T) {
	b := Float32Bytes([]float32{1, -0.5})
	if len(b) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(b))
	}
	// 1.0 = 0x3F800000, -0.5 = 0xBF000000
	want := []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x00, 0xBF}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
}

func TestUint16Bytes(t *testing.T) {
	b := Uint16Bytes([]uint16{0x0102, 4})
	want := []byte{0x02, 0x01, 0x04, 0x00}
	if len(b) != len(want) {
		t.Fatalf("expected %d bytes, got %d", len(want), len(b))
	}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
	if len(Uint16Bytes(nil)) != 0 {
		t.Error("nil input should produce no bytes")
	}
}
