package complexgrapher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/argand/internal/engine"
	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/gpu/gputest"
)

func newEngine(t *testing.T, msaa uint32) (*engine.Engine, *gputest.GPU) {
	t.Helper()
	g := gputest.New()
	e, err := engine.New(engine.Config{MSAA: msaa}, engine.Backend{
		Device:  g.Device,
		Queue:   g.Queue,
		Surface: g.Surface,
		Width:   2048,
		Height:  1200,
	})
	require.NoError(t, err)
	return e, g
}

func TestNewDefaultsExtent(t *testing.T) {
	assert.Equal(t, float32(DefaultExtent), New(0).Extent())
	assert.Equal(t, float32(DefaultExtent), New(-1).Extent())
	assert.Equal(t, float32(4), New(4).Extent())
}

func TestFragmentSourceDefinesExtent(t *testing.T) {
	src := fragmentShaderSource(2.5)

	lines := strings.Split(strings.TrimSpace(src), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "#version 410 core", strings.TrimSpace(lines[0]), "version must come first")
	assert.Contains(t, src, "#define EXTENT 2.5000")
	assert.Contains(t, src, "uniform Frame")
}

func TestScreenQuadCoversClipSpace(t *testing.T) {
	require.Len(t, ScreenIndices, 6)

	var area float32
	for i := 0; i < len(ScreenIndices); i += 3 {
		a := Screen[ScreenIndices[i]].Vec2()
		b := Screen[ScreenIndices[i+1]].Vec2()
		c := Screen[ScreenIndices[i+2]].Vec2()
		ab, ac := b.Sub(a), c.Sub(a)
		cross := ab.X()*ac.Y() - ab.Y()*ac.X()
		assert.Positive(t, cross, "triangle %d must be counter-clockwise", i/3)
		area += cross / 2
	}
	assert.InDelta(t, 4, area, 1e-6)
}

func TestStartBuildsUniformPipeline(t *testing.T) {
	e, g := newEngine(t, 8)
	gr := New(0)

	_, err := e.AddObject(gr)
	require.NoError(t, err)

	require.Len(t, g.Device.Pipelines, 1)
	desc := g.Device.Pipelines[0].Desc
	assert.Equal(t, []gpu.BindGroupLayout{e.UniformLayout()}, desc.BindGroupLayouts)
	assert.Equal(t, uint32(8), desc.SampleCount)
	assert.Equal(t, e.SurfaceFormat(), desc.Format)
	assert.Equal(t, gpu.BlendReplace, desc.Blend)
	assert.Equal(t, uint64(12), desc.Vertex.Stride)

	vb := gr.vertexBuffer.(*gputest.Buffer)
	assert.Len(t, vb.Data, len(Screen)*12)
	ib := gr.indexBuffer.(*gputest.Buffer)
	assert.Equal(t, gpu.Uint16Bytes(ScreenIndices), ib.Data)
}

func TestRenderBeforeObjectsRegisteredLater(t *testing.T) {
	e, g := newEngine(t, 0)
	gr := New(0)
	_, err := e.AddObject(gr)
	require.NoError(t, err)
	_, err = e.AddObject(&engine.BaseObject{})
	require.NoError(t, err)

	e.Redraw()

	var pipelines []gpu.RenderPipeline
	var indexed []uint32
	for _, c := range g.Queue.Commands() {
		switch c.Op {
		case gputest.OpSetPipeline:
			pipelines = append(pipelines, c.Pipeline)
		case gputest.OpDrawIndexed:
			indexed = append(indexed, c.Count)
		}
	}
	require.Len(t, pipelines, 1)
	assert.Same(t, g.Device.Pipelines[0], pipelines[0])
	assert.Equal(t, []uint32{6}, indexed)
}

func TestRelease(t *testing.T) {
	e, _ := newEngine(t, 0)
	gr := New(0)
	_, err := e.AddObject(gr)
	require.NoError(t, err)

	gr.Release()

	assert.True(t, gr.vertexBuffer.(*gputest.Buffer).Destroyed)
	assert.True(t, gr.indexBuffer.(*gputest.Buffer).Destroyed)
	assert.True(t, gr.pipeline.(*gputest.Pipeline).Destroyed)
	assert.True(t, gr.module.(*gputest.Module).Destroyed)
}
