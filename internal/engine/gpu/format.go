package gpu

import "fmt"

// TextureFormat is the pixel format of a texture or surface.
type TextureFormat int

const (
	FormatUndefined TextureFormat = iota
	FormatRGBA8Unorm
	FormatRGBA8UnormSrgb
	FormatBGRA8Unorm
	FormatBGRA8UnormSrgb
)

var textureFormatNames = map[TextureFormat]string{
	FormatUndefined:      "undefined",
	FormatRGBA8Unorm:     "rgba8unorm",
	FormatRGBA8UnormSrgb: "rgba8unorm-srgb",
	FormatBGRA8Unorm:     "bgra8unorm",
	FormatBGRA8UnormSrgb: "bgra8unorm-srgb",
}

func (f TextureFormat) String() string {
	if name, ok := textureFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TextureFormat(%d)", int(f))
}

// IsSRGB reports whether the format applies sRGB encoding on write.
func (f TextureFormat) IsSRGB() bool {
	return f == FormatRGBA8UnormSrgb || f == FormatBGRA8UnormSrgb
}

// PresentMode controls how acquired images are queued for display.
type PresentMode int

const (
	// PresentFifo waits for vertical blank.
	PresentFifo PresentMode = iota
	// PresentImmediate presents without waiting and may tear.
	PresentImmediate
	// PresentMailbox replaces the queued image without tearing.
	PresentMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentFifo:
		return "fifo"
	case PresentImmediate:
		return "immediate"
	case PresentMailbox:
		return "mailbox"
	}
	return fmt.Sprintf("PresentMode(%d)", int(m))
}

// AlphaMode controls how surface alpha composites with the desktop.
type AlphaMode int

const (
	AlphaOpaque AlphaMode = iota
	AlphaPreMultiplied
	AlphaAuto
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaOpaque:
		return "opaque"
	case AlphaPreMultiplied:
		return "premultiplied"
	case AlphaAuto:
		return "auto"
	}
	return fmt.Sprintf("AlphaMode(%d)", int(m))
}

// SurfaceCapabilities lists what a surface supports, most preferred first.
type SurfaceCapabilities struct {
	Formats      []TextureFormat
	PresentModes []PresentMode
	AlphaModes   []AlphaMode
}

// SurfaceConfig is the active configuration of a surface.
type SurfaceConfig struct {
	Width       uint32
	Height      uint32
	Format      TextureFormat
	PresentMode PresentMode
	AlphaMode   AlphaMode
}
