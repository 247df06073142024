// Package gputest provides an in-memory gpu backend that records everything
// submitted to it, for tests of code written against package gpu.
package gputest

import (
	"fmt"
	"sync/atomic"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// GPU bundles a recording Device, Queue and Surface that share one journal.
type GPU struct {
	Device  *Device
	Queue   *Queue
	Surface *Surface

	// Journal lists queue writes, submissions, surface configuration,
	// acquisitions and presents in the order they happened.
	Journal []string
}

// New returns a recording GPU whose surface offers an sRGB and a linear format.
func New() *GPU {
	g := &GPU{}
	g.Device = &Device{gpu: g, MaxSampleCount: 16}
	g.Queue = &Queue{gpu: g}
	g.Surface = &Surface{
		gpu: g,
		Caps: gpu.SurfaceCapabilities{
			Formats:      []gpu.TextureFormat{gpu.FormatBGRA8Unorm, gpu.FormatBGRA8UnormSrgb},
			PresentModes: []gpu.PresentMode{gpu.PresentFifo, gpu.PresentImmediate},
			AlphaModes:   []gpu.AlphaMode{gpu.AlphaOpaque},
		},
	}
	return g
}

func (g *GPU) record(format string, args ...any) {
	g.Journal = append(g.Journal, fmt.Sprintf(format, args...))
}

var nextID atomic.Uint64

func newLabel(kind, label string) string {
	if label == "" {
		return fmt.Sprintf("%s#%d", kind, nextID.Add(1))
	}
	return label
}

// Buffer is a recorded buffer holding its current contents.
type Buffer struct {
	label     string
	usage     gpu.BufferUsage
	Data      []byte
	Destroyed bool
}

func (b *Buffer) Label() string          { return b.label }
func (b *Buffer) Size() uint64           { return uint64(len(b.Data)) }
func (b *Buffer) Usage() gpu.BufferUsage { return b.usage }
func (b *Buffer) Destroy()               { b.Destroyed = true }

// Texture is a recorded texture.
type Texture struct {
	Desc      gpu.TextureDescriptor
	Destroyed bool
}

func (t *Texture) Width() uint32             { return t.Desc.Width }
func (t *Texture) Height() uint32            { return t.Desc.Height }
func (t *Texture) Format() gpu.TextureFormat { return t.Desc.Format }
func (t *Texture) SampleCount() uint32       { return t.Desc.SampleCount }
func (t *Texture) Destroy()                  { t.Destroyed = true }

// CreateView returns a view labelled after the texture.
func (t *Texture) CreateView() gpu.TextureView {
	return &View{label: t.Desc.Label, Texture: t}
}

// View is a recorded texture view. Texture is nil for surface images.
type View struct {
	label   string
	Texture *Texture
}

func (v *View) Label() string { return v.label }

type layout struct {
	label   string
	entries []gpu.BindGroupLayoutEntry
}

func (l *layout) Entries() []gpu.BindGroupLayoutEntry { return l.entries }

// BindGroup is a recorded bind group.
type BindGroup struct {
	Desc gpu.BindGroupDescriptor
}

func (b *BindGroup) Layout() gpu.BindGroupLayout { return b.Desc.Layout }

// Module is a recorded shader module.
type Module struct {
	Source    gpu.ShaderSource
	Destroyed bool
}

func (m *Module) Label() string { return m.Source.Label }
func (m *Module) Destroy()      { m.Destroyed = true }

// Pipeline is a recorded render pipeline.
type Pipeline struct {
	Desc      gpu.RenderPipelineDescriptor
	Destroyed bool
}

func (p *Pipeline) Label() string { return p.Desc.Label }
func (p *Pipeline) Destroy()      { p.Destroyed = true }
