package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// texture is a framebuffer object with a single color attachment: a
// multisampled renderbuffer when SampleCount > 1, a 2D texture otherwise.
type texture struct {
	desc         gpu.TextureDescriptor
	fbo          uint32
	colorTexture uint32
	colorRBO     uint32
}

func newTexture(desc gpu.TextureDescriptor) (*texture, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("texture %q: zero size %dx%d", desc.Label, desc.Width, desc.Height)
	}
	if desc.SampleCount == 0 {
		desc.SampleCount = 1
	}

	t := &texture{desc: desc}
	w, h := int32(desc.Width), int32(desc.Height)
	internal := glInternalFormat(desc.Format)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	if desc.SampleCount > 1 {
		gl.GenRenderbuffers(1, &t.colorRBO)
		gl.BindRenderbuffer(gl.RENDERBUFFER, t.colorRBO)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(desc.SampleCount), internal, w, h)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, t.colorRBO)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	} else {
		gl.GenTextures(1, &t.colorTexture)
		gl.BindTexture(gl.TEXTURE_2D, t.colorTexture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, int32(internal), w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.colorTexture, 0)
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		if gl.GetError() == gl.OUT_OF_MEMORY {
			return nil, fmt.Errorf("texture %q: %w", desc.Label, gpu.ErrOutOfMemory)
		}
		return nil, fmt.Errorf("texture %q: framebuffer incomplete: 0x%x", desc.Label, status)
	}
	return t, nil
}

func (t *texture) Width() uint32             { return t.desc.Width }
func (t *texture) Height() uint32            { return t.desc.Height }
func (t *texture) Format() gpu.TextureFormat { return t.desc.Format }
func (t *texture) SampleCount() uint32       { return t.desc.SampleCount }

func (t *texture) CreateView() gpu.TextureView {
	return &view{label: t.desc.Label, fbo: t.fbo, width: int32(t.desc.Width), height: int32(t.desc.Height)}
}

// Destroy releases all GL objects.
func (t *texture) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.colorTexture != 0 {
		gl.DeleteTextures(1, &t.colorTexture)
		t.colorTexture = 0
	}
	if t.colorRBO != 0 {
		gl.DeleteRenderbuffers(1, &t.colorRBO)
		t.colorRBO = 0
	}
}

// view targets a framebuffer. fbo 0 is the window's default framebuffer.
type view struct {
	label  string
	fbo    uint32
	width  int32
	height int32
}

func (v *view) Label() string { return v.label }
