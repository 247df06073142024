// Package gpu defines the backend-neutral GPU contract the engine is written against.
//
// A backend (see glgpu) supplies a Device, its Queue and a presentable Surface.
// Everything the engine and its objects create goes through the Device, and
// every draw goes through a CommandEncoder submitted on the Queue.
package gpu

// Device creates GPU resources and command encoders.
type Device interface {
	CreateBuffer(desc BufferDescriptor) (Buffer, error)
	CreateBufferInit(label string, usage BufferUsage, contents []byte) (Buffer, error)
	CreateBindGroupLayout(desc BindGroupLayoutDescriptor) (BindGroupLayout, error)
	CreateBindGroup(desc BindGroupDescriptor) (BindGroup, error)
	CreateShaderModule(src ShaderSource) (ShaderModule, error)
	CreateRenderPipeline(desc RenderPipelineDescriptor) (RenderPipeline, error)
	CreateTexture(desc TextureDescriptor) (Texture, error)
	CreateCommandEncoder(label string) CommandEncoder
	Limits() Limits
}

// Queue uploads data and executes recorded command buffers.
type Queue interface {
	// WriteBuffer schedules a copy of data into buf at offset. The copy is
	// visible to every command buffer submitted afterwards.
	WriteBuffer(buf Buffer, offset uint64, data []byte)
	Submit(buffers ...CommandBuffer)
}

// Surface is the platform presentable image chain.
type Surface interface {
	Capabilities() SurfaceCapabilities
	Configure(cfg SurfaceConfig) error
	// Acquire returns the next presentable image. Errors are one of the
	// surface sentinels (ErrSurfaceLost, ErrSurfaceOutdated, ErrSurfaceTimeout,
	// ErrOutOfMemory), possibly wrapped.
	Acquire() (SurfaceTexture, error)
}

// SurfaceTexture is one acquired presentable image.
type SurfaceTexture interface {
	View() TextureView
	Present()
}

// CommandEncoder records GPU commands into a CommandBuffer.
type CommandEncoder interface {
	BeginRenderPass(desc RenderPassDescriptor) RenderPass
	Finish() CommandBuffer
}

// RenderPass records drawing commands against one set of attachments.
type RenderPass interface {
	SetBindGroup(slot uint32, group BindGroup)
	SetPipeline(pipeline RenderPipeline)
	SetVertexBuffer(slot uint32, buf Buffer)
	SetIndexBuffer(buf Buffer, format IndexFormat)
	Draw(vertexCount, instanceCount uint32)
	DrawIndexed(indexCount, instanceCount uint32)
	End()
}

// CommandBuffer is a finished recording ready for submission.
type CommandBuffer interface {
	Label() string
}

// Buffer is a GPU-resident byte buffer.
type Buffer interface {
	Size() uint64
	Usage() BufferUsage
	Destroy()
}

// Texture is a GPU image.
type Texture interface {
	Width() uint32
	Height() uint32
	Format() TextureFormat
	SampleCount() uint32
	CreateView() TextureView
	Destroy()
}

// TextureView is an attachable view of a Texture or of a surface image.
type TextureView interface {
	Label() string
}

// BindGroupLayout describes the shape of a BindGroup.
type BindGroupLayout interface {
	Entries() []BindGroupLayoutEntry
}

// BindGroup binds concrete resources to a BindGroupLayout.
type BindGroup interface {
	Layout() BindGroupLayout
}

// ShaderModule is a compiled shader source.
type ShaderModule interface {
	Label() string
	// Destroy releases the module. Pipelines built from it must be destroyed first.
	Destroy()
}

// RenderPipeline is a compiled drawing pipeline.
type RenderPipeline interface {
	Label() string
	Destroy()
}

// Limits reports backend capabilities the engine negotiates against.
type Limits struct {
	MaxSampleCount uint32
}
