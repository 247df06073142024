package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/gpu/gputest"
)

func TestRecordSubmits(t *testing.T) {
	g := gputest.New()
	m := New(g.Device, g.Queue)

	err := m.Record("frame", func(enc gpu.CommandEncoder) error {
		RenderPass(enc, gpu.RenderPassDescriptor{Label: "main"}, func(pass gpu.RenderPass) {
			pass.Draw(3, 1)
		})
		return nil
	})
	require.NoError(t, err)

	require.Len(t, g.Queue.Submitted, 1)
	assert.Equal(t, "frame", g.Queue.Submitted[0].Label())
	ops := []gputest.Op{}
	for _, c := range g.Queue.Commands() {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []gputest.Op{gputest.OpBeginPass, gputest.OpDraw, gputest.OpEndPass}, ops)
}

func TestRecordSubmitsOnError(t *testing.T) {
	g := gputest.New()
	m := New(g.Device, g.Queue)
	boom := errors.New("boom")

	err := m.Record("frame", func(enc gpu.CommandEncoder) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Len(t, g.Queue.Submitted, 1)
	assert.True(t, g.Device.Encoders[0].Finished)
}

func TestRecordSubmitsOnPanic(t *testing.T) {
	g := gputest.New()
	m := New(g.Device, g.Queue)

	assert.Panics(t, func() {
		_ = m.Record("frame", func(enc gpu.CommandEncoder) error {
			RenderPass(enc, gpu.RenderPassDescriptor{}, func(pass gpu.RenderPass) {
				panic("draw failed")
			})
			return nil
		})
	})

	require.Len(t, g.Queue.Submitted, 1)
	assert.Equal(t, 1, g.Queue.Count(gputest.OpEndPass))
}

func TestAccessors(t *testing.T) {
	g := gputest.New()
	m := New(g.Device, g.Queue)

	assert.Same(t, g.Device, m.Device())
	assert.Same(t, g.Queue, m.Queue())
}
