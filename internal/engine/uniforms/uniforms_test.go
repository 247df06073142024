package uniforms

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/gpu/gputest"
)

func readFloat(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func TestBytesLayout(t *testing.T) {
	u := FrameUniforms{DeltaTime: 0.016, RunTime: 3.5, ViewportWidth: 2048, ViewportHeight: 1200}
	b := u.Bytes()

	require.Len(t, b, Size)
	assert.Equal(t, float32(0.016), readFloat(b, 0))
	assert.Equal(t, float32(3.5), readFloat(b, 1))
	assert.Equal(t, float32(2048), readFloat(b, 2))
	assert.Equal(t, float32(1200), readFloat(b, 3))
}

func TestNewStartsWithViewportOnly(t *testing.T) {
	g := gputest.New()

	m, err := New(g.Device, 800, 600)
	require.NoError(t, err)

	assert.Equal(t, FrameUniforms{ViewportWidth: 800, ViewportHeight: 600}, m.Uniforms())

	require.Len(t, g.Device.Buffers, 1)
	buf := g.Device.Buffers[0]
	assert.Equal(t, uint64(Size), buf.Size())
	assert.True(t, buf.Usage().Has(gpu.BufferUsageUniform|gpu.BufferUsageCopyDst))

	entries := m.Layout().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, uint32(0), entries[0].Binding)
	assert.Equal(t, gpu.ShaderStageVertex|gpu.ShaderStageFragment, entries[0].Visibility)
	assert.Same(t, m.Layout(), m.BindGroup().Layout())
}

func TestSettersOnlyTouchMemory(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, 800, 600)
	require.NoError(t, err)

	m.SetDeltaTime(0.5)
	m.SetRunTime(10)
	m.SetWidth(1024)
	m.SetHeight(768)

	assert.Empty(t, g.Queue.Writes)
	assert.Equal(t, FrameUniforms{DeltaTime: 0.5, RunTime: 10, ViewportWidth: 1024, ViewportHeight: 768}, m.Uniforms())
}

func TestWriteUploadsWholeBlock(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, 800, 600)
	require.NoError(t, err)

	m.SetDeltaTime(0.25)
	m.SetRunTime(2)
	m.Write(g.Queue)

	require.Len(t, g.Queue.Writes, 1)
	w := g.Queue.Writes[0]
	assert.Equal(t, uint64(0), w.Offset)
	assert.Equal(t, m.Uniforms().Bytes(), w.Data)
	assert.Equal(t, w.Data, g.Device.Buffers[0].Data)
}

func TestReleaseDestroysBuffer(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, 1, 1)
	require.NoError(t, err)

	m.Release()
	m.Release()

	assert.True(t, g.Device.Buffers[0].Destroyed)
}
