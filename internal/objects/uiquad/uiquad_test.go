package uiquad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/gpu/gputest"
)

func newEngine(t *testing.T) (*engine.Engine, *gputest.GPU) {
	t.Helper()
	g := gputest.New()
	e, err := engine.New(engine.Config{}, engine.Backend{
		Device:  g.Device,
		Queue:   g.Queue,
		Surface: g.Surface,
		Width:   800,
		Height:  600,
	})
	require.NoError(t, err)
	return e, g
}

func cross(a, b, c int) float32 {
	ab := Corners[b].Vec2().Sub(Corners[a].Vec2())
	ac := Corners[c].Vec2().Sub(Corners[a].Vec2())
	return ab.X()*ac.Y() - ab.Y()*ac.X()
}

func TestStripTrianglesFaceFront(t *testing.T) {
	require.Len(t, Indices, 4)

	// Odd strip triangles swap their first two vertices.
	assert.Positive(t, cross(int(Indices[0]), int(Indices[1]), int(Indices[2])))
	assert.Positive(t, cross(int(Indices[2]), int(Indices[1]), int(Indices[3])))
}

func TestStartBuildsStripPipeline(t *testing.T) {
	e, g := newEngine(t)
	q := New()

	_, err := e.AddObject(q)
	require.NoError(t, err)

	require.Len(t, g.Device.Pipelines, 1)
	desc := g.Device.Pipelines[0].Desc
	assert.Equal(t, gpu.TriangleStrip, desc.Topology)
	assert.Equal(t, gpu.BlendAlpha, desc.Blend)
	assert.Equal(t, Layout, desc.Vertex)
	assert.Equal(t, []gpu.BindGroupLayout{e.UniformLayout()}, desc.BindGroupLayouts)

	assert.Len(t, q.vertexBuffer.(*gputest.Buffer).Data, len(Corners)*int(Layout.Stride))
	assert.Equal(t, gpu.Uint16Bytes(Indices), q.indexBuffer.(*gputest.Buffer).Data)
}

func TestRenderDrawsFourIndices(t *testing.T) {
	e, g := newEngine(t)
	_, err := e.AddObject(New())
	require.NoError(t, err)

	e.Redraw()

	var drawn []gputest.Command
	for _, c := range g.Queue.Commands() {
		if c.Op == gputest.OpDrawIndexed || c.Op == gputest.OpDraw {
			drawn = append(drawn, c)
		}
	}
	require.Len(t, drawn, 1)
	assert.Equal(t, gputest.OpDrawIndexed, drawn[0].Op)
	assert.Equal(t, uint32(4), drawn[0].Count)
}

func TestStartFailsOnPipelineError(t *testing.T) {
	e, g := newEngine(t)
	g.Device.PipelineErr = errors.New("bad pipeline")

	_, err := e.AddObject(New())
	require.Error(t, err)
	require.Len(t, g.Device.Modules, 1)
	assert.True(t, g.Device.Modules[0].Destroyed)
}

func TestReleaseDestroysResources(t *testing.T) {
	e, _ := newEngine(t)
	q := New()
	_, err := e.AddObject(q)
	require.NoError(t, err)

	q.Release()

	assert.True(t, q.vertexBuffer.(*gputest.Buffer).Destroyed)
	assert.True(t, q.indexBuffer.(*gputest.Buffer).Destroyed)
	assert.True(t, q.pipeline.(*gputest.Pipeline).Destroyed)
	assert.True(t, q.module.(*gputest.Module).Destroyed)
	assert.NotPanics(t, func() { New().Release() })
}
