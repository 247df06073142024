package surface

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/argand/internal/engine/gpu"
	"github.com/Faultbox/argand/internal/engine/gpu/gputest"
)

func TestChooseFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []gpu.TextureFormat
		want    gpu.TextureFormat
	}{
		{"prefers srgb", []gpu.TextureFormat{gpu.FormatBGRA8Unorm, gpu.FormatBGRA8UnormSrgb}, gpu.FormatBGRA8UnormSrgb},
		{"first srgb wins", []gpu.TextureFormat{gpu.FormatRGBA8UnormSrgb, gpu.FormatBGRA8UnormSrgb}, gpu.FormatRGBA8UnormSrgb},
		{"falls back to first", []gpu.TextureFormat{gpu.FormatRGBA8Unorm, gpu.FormatBGRA8Unorm}, gpu.FormatRGBA8Unorm},
		{"empty", nil, gpu.FormatUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseFormat(tt.formats))
		})
	}
}

func TestNewNegotiatesConfig(t *testing.T) {
	g := gputest.New()

	m, err := New(g.Device, g.Surface, 640, 480, 0)
	require.NoError(t, err)

	cfg := m.Config()
	assert.Equal(t, gpu.SurfaceConfig{
		Width:       640,
		Height:      480,
		Format:      gpu.FormatBGRA8UnormSrgb,
		PresentMode: gpu.PresentFifo,
		AlphaMode:   gpu.AlphaOpaque,
	}, cfg)
	assert.Equal(t, cfg, g.Surface.Config())
	assert.Equal(t, uint32(1), m.SampleCount())
	assert.Nil(t, m.Multisample())
	assert.Empty(t, g.Device.Textures)
}

func TestNewRejectsBadInput(t *testing.T) {
	g := gputest.New()

	_, err := New(g.Device, g.Surface, 0, 480, 1)
	assert.Error(t, err)

	_, err = New(g.Device, g.Surface, 640, 480, 32)
	assert.ErrorIs(t, err, gpu.ErrNoAdapter)

	g.Surface.Caps.Formats = nil
	_, err = New(g.Device, g.Surface, 640, 480, 1)
	assert.ErrorIs(t, err, gpu.ErrNoAdapter)
}

func TestMultisampleTargetFollowsResize(t *testing.T) {
	g := gputest.New()

	m, err := New(g.Device, g.Surface, 640, 480, 4)
	require.NoError(t, err)

	target := m.Multisample()
	require.NotNil(t, target)
	assert.Equal(t, uint32(640), target.Texture().Width())
	assert.Equal(t, uint32(480), target.Texture().Height())
	assert.Equal(t, uint32(4), target.Texture().SampleCount())
	assert.Equal(t, m.Format(), target.Texture().Format())

	require.NoError(t, m.Configure(1024, 768))

	resized := m.Multisample()
	assert.NotSame(t, target, resized)
	assert.Equal(t, uint32(1024), resized.Texture().Width())
	assert.Equal(t, uint32(768), resized.Texture().Height())

	live := g.Device.LiveTextures()
	require.Len(t, live, 1)
	assert.Same(t, resized.Texture(), gpu.Texture(live[0]))
}

func TestFailedResizeKeepsConfigAndTarget(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 640, 480, 4)
	require.NoError(t, err)
	target := m.Multisample()
	configures := len(g.Surface.Configs)

	g.Device.TextureErr = gpu.ErrOutOfMemory
	err = m.Configure(1024, 768)
	require.ErrorIs(t, err, gpu.ErrOutOfMemory)

	w, h := m.Size()
	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
	assert.Same(t, target, m.Multisample())
	assert.Equal(t, uint32(640), m.Multisample().Texture().Width())
	assert.False(t, target.Texture().(*gputest.Texture).Destroyed)
	assert.Len(t, g.Surface.Configs, configures, "surface is not reconfigured when the target fails")

	g.Device.TextureErr = nil
	require.NoError(t, m.Configure(1024, 768))
	assert.Equal(t, uint32(1024), m.Multisample().Texture().Width())
}

func TestFailedSurfaceConfigureDropsNewTarget(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 640, 480, 4)
	require.NoError(t, err)
	target := m.Multisample()

	g.Surface.ConfigureErr = errors.New("device removed")
	require.Error(t, m.Configure(1024, 768))

	assert.Same(t, target, m.Multisample())
	w, _ := m.Size()
	assert.Equal(t, uint32(640), w)

	live := g.Device.LiveTextures()
	require.Len(t, live, 1, "the target built for the failed size is released")
	assert.Same(t, target.Texture(), gpu.Texture(live[0]))
}

func TestResizeSequenceKeepsLastPositive(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 100, 100, 8)
	require.NoError(t, err)

	sizes := [][2]uint32{{200, 150}, {0, 300}, {320, 0}, {1, 1}, {0, 0}, {1920, 1080}, {0, 5}}
	wantW, wantH := uint32(100), uint32(100)
	for _, s := range sizes {
		require.NoError(t, m.Configure(s[0], s[1]))
		if s[0] > 0 && s[1] > 0 {
			wantW, wantH = s[0], s[1]
		}
		w, h := m.Size()
		assert.Equal(t, wantW, w)
		assert.Equal(t, wantH, h)
		assert.Equal(t, wantW, m.Multisample().Texture().Width())
		assert.Equal(t, wantH, m.Multisample().Texture().Height())
	}
}

func TestZeroResizeIsNoOp(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 640, 480, 4)
	require.NoError(t, err)

	cfgBefore := m.Config()
	targetBefore := m.Multisample()
	configures := len(g.Surface.Configs)
	textures := len(g.Device.Textures)

	require.NoError(t, m.Configure(0, 720))
	require.NoError(t, m.Configure(1280, 0))

	assert.Equal(t, cfgBefore, m.Config())
	assert.Same(t, targetBefore, m.Multisample())
	assert.Len(t, g.Surface.Configs, configures)
	assert.Len(t, g.Device.Textures, textures)
}

func TestColorAttachment(t *testing.T) {
	g := gputest.New()

	direct, err := New(g.Device, g.Surface, 64, 64, 1)
	require.NoError(t, err)
	frame, err := direct.Acquire()
	require.NoError(t, err)

	att := direct.ColorAttachment(frame)
	assert.Equal(t, frame.View(), att.View)
	assert.Nil(t, att.ResolveTarget)
	assert.True(t, att.Store)

	msaa, err := New(g.Device, g.Surface, 64, 64, 4)
	require.NoError(t, err)

	att = msaa.ColorAttachment(frame)
	assert.Equal(t, msaa.Multisample().View(), att.View)
	assert.Equal(t, frame.View(), att.ResolveTarget)
	assert.False(t, att.Store)
}

func TestAcquireClassifiesFailures(t *testing.T) {
	tests := []struct {
		err  error
		want Reason
	}{
		{gpu.ErrSurfaceLost, ReasonLost},
		{fmt.Errorf("wrapped: %w", gpu.ErrSurfaceLost), ReasonLost},
		{gpu.ErrOutOfMemory, ReasonOutOfMemory},
		{gpu.ErrSurfaceTimeout, ReasonTransient},
		{gpu.ErrSurfaceOutdated, ReasonTransient},
		{errors.New("driver hiccup"), ReasonTransient},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			g := gputest.New()
			m, err := New(g.Device, g.Surface, 64, 64, 1)
			require.NoError(t, err)

			g.Surface.FailAcquire(tt.err)
			frame, err := m.Acquire()
			assert.Nil(t, frame)

			var unavailable *UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.want, unavailable.Reason)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPresent(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 64, 64, 1)
	require.NoError(t, err)

	frame, err := m.Acquire()
	require.NoError(t, err)
	m.Present(frame)

	assert.Equal(t, 1, g.Surface.Presented)
}

func TestRelease(t *testing.T) {
	g := gputest.New()
	m, err := New(g.Device, g.Surface, 64, 64, 2)
	require.NoError(t, err)

	m.Release()
	assert.Nil(t, m.Multisample())
	assert.Empty(t, g.Device.LiveTextures())
}
