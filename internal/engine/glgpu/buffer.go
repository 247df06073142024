package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// buffer is a GL buffer object. Uploads go through COPY_WRITE_BUFFER so
// they do not disturb vertex array or uniform bindings.
type buffer struct {
	id    uint32
	label string
	size  uint64
	usage gpu.BufferUsage
}

func newBuffer(label string, usage gpu.BufferUsage, size int, contents []byte) (*buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("buffer %q: size must be positive", label)
	}

	b := &buffer{label: label, size: uint64(size), usage: usage}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	if contents != nil {
		gl.BufferData(gl.COPY_WRITE_BUFFER, size, gl.Ptr(contents), glBufferUsage(usage))
	} else {
		gl.BufferData(gl.COPY_WRITE_BUFFER, size, nil, glBufferUsage(usage))
	}
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
	return b, nil
}

func glBufferUsage(u gpu.BufferUsage) uint32 {
	if u.Has(gpu.BufferUsageCopyDst) {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func (b *buffer) Size() uint64           { return b.size }
func (b *buffer) Usage() gpu.BufferUsage { return b.usage }

func (b *buffer) write(offset uint64, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, int(offset), len(data), gl.Ptr(data))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

func (b *buffer) Destroy() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
