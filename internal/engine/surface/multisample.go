package surface

import (
	"fmt"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// MultisampleTarget is the offscreen color buffer the render pass draws into
// when multisampling is on. It always matches the surface size and format.
type MultisampleTarget struct {
	texture gpu.Texture
	view    gpu.TextureView
}

func newMultisampleTarget(device gpu.Device, cfg gpu.SurfaceConfig, samples uint32) (*MultisampleTarget, error) {
	tex, err := device.CreateTexture(gpu.TextureDescriptor{
		Label:       "multisampled framebuffer",
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		SampleCount: samples,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %dx multisample target %dx%d: %w", samples, cfg.Width, cfg.Height, err)
	}
	return &MultisampleTarget{texture: tex, view: tex.CreateView()}, nil
}

// View returns the attachment view.
func (t *MultisampleTarget) View() gpu.TextureView {
	return t.view
}

// Texture returns the backing texture.
func (t *MultisampleTarget) Texture() gpu.Texture {
	return t.texture
}

func (t *MultisampleTarget) release() {
	if t == nil {
		return
	}
	t.texture.Destroy()
}
