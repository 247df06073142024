package gpu

// BufferUsage is a bit set of the ways a Buffer may be used.
type BufferUsage uint32

const (
	BufferUsageVertex BufferUsage = 1 << iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageCopyDst
)

// Has reports whether all bits of u2 are set in u.
func (u BufferUsage) Has(u2 BufferUsage) bool {
	return u&u2 == u2
}

// BufferDescriptor describes an uninitialized buffer.
type BufferDescriptor struct {
	Label string
	Size  uint64
	Usage BufferUsage
}

// ShaderStage is a bit set of pipeline stages.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageFragment
)

// BindingType is the kind of resource a bind group entry holds.
type BindingType int

const (
	BindingUniformBuffer BindingType = iota
)

// BindGroupLayoutEntry describes one binding slot.
type BindGroupLayoutEntry struct {
	Binding    uint32
	Visibility ShaderStage
	Type       BindingType
}

// BindGroupLayoutDescriptor describes a BindGroupLayout.
type BindGroupLayoutDescriptor struct {
	Label   string
	Entries []BindGroupLayoutEntry
}

// BindGroupEntry binds a buffer to a binding slot.
type BindGroupEntry struct {
	Binding uint32
	Buffer  Buffer
}

// BindGroupDescriptor describes a BindGroup.
type BindGroupDescriptor struct {
	Label   string
	Layout  BindGroupLayout
	Entries []BindGroupEntry
}

// ShaderSource holds the vertex and fragment stage sources of one module.
// The dialect is backend specific (GLSL 410 core for glgpu).
type ShaderSource struct {
	Label    string
	Vertex   string
	Fragment string
	// UniformBlocks maps uniform block names in the source to bind group slots.
	UniformBlocks map[string]uint32
}

// PrimitiveTopology selects how vertices are assembled.
type PrimitiveTopology int

const (
	TriangleList PrimitiveTopology = iota
	TriangleStrip
)

// CullMode selects which faces are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// BlendMode selects the color blending equation.
type BlendMode int

const (
	BlendReplace BlendMode = iota
	BlendAlpha
)

// RenderPipelineDescriptor describes a RenderPipeline. Format and SampleCount
// must match the attachment the pipeline is drawn into.
type RenderPipelineDescriptor struct {
	Label            string
	Module           ShaderModule
	BindGroupLayouts []BindGroupLayout
	Vertex           VertexLayout
	Format           TextureFormat
	SampleCount      uint32
	Topology         PrimitiveTopology
	Cull             CullMode
	Blend            BlendMode
}

// TextureDescriptor describes a 2D render attachment.
type TextureDescriptor struct {
	Label       string
	Width       uint32
	Height      uint32
	Format      TextureFormat
	SampleCount uint32
}

// Color is a linear RGBA clear color.
type Color struct {
	R, G, B, A float64
}

// Black is the default clear color.
var Black = Color{A: 1}

// ColorAttachment is the single color target of a render pass. When
// ResolveTarget is set, View is multisampled and is resolved into
// ResolveTarget when the pass ends.
type ColorAttachment struct {
	View          TextureView
	ResolveTarget TextureView
	Clear         Color
	Store         bool
}

// RenderPassDescriptor describes a render pass.
type RenderPassDescriptor struct {
	Label string
	Color ColorAttachment
}

// IndexFormat is the element type of an index buffer.
type IndexFormat int

const (
	IndexUint16 IndexFormat = iota
	IndexUint32
)
