package glgpu

import (
	"github.com/Faultbox/argand/internal/engine/gpu"
)

// Queue executes command buffers on the GL context in submission order.
type Queue struct{}

var _ gpu.Queue = (*Queue)(nil)

// WriteBuffer uploads immediately; GL orders it before later draws.
func (q *Queue) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) {
	buf.(*buffer).write(offset, data)
}

func (q *Queue) Submit(buffers ...gpu.CommandBuffer) {
	for _, cb := range buffers {
		cb.(*commandBuffer).execute()
	}
}
