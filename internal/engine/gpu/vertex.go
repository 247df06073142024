package gpu

import "fmt"

// VertexFormat is the type of one vertex attribute.
type VertexFormat int

const (
	Float32 VertexFormat = iota
	Float32x2
	Float32x3
	Float32x4
	Uint32
	Sint32
)

type vertexFormatInfo struct {
	name       string
	components int32
	size       uint64
}

var vertexFormats = map[VertexFormat]vertexFormatInfo{
	Float32:   {"float32", 1, 4},
	Float32x2: {"float32x2", 2, 8},
	Float32x3: {"float32x3", 3, 12},
	Float32x4: {"float32x4", 4, 16},
	Uint32:    {"uint32", 1, 4},
	Sint32:    {"sint32", 1, 4},
}

// Size returns the attribute size in bytes.
func (f VertexFormat) Size() uint64 {
	return vertexFormats[f].size
}

// Components returns the number of scalar components.
func (f VertexFormat) Components() int32 {
	return vertexFormats[f].components
}

// IsFloat reports whether the attribute is floating point.
func (f VertexFormat) IsFloat() bool {
	return f <= Float32x4
}

func (f VertexFormat) String() string {
	if info, ok := vertexFormats[f]; ok {
		return info.name
	}
	return fmt.Sprintf("VertexFormat(%d)", int(f))
}

// VertexAttribute places one attribute inside a vertex.
type VertexAttribute struct {
	Format   VertexFormat
	Offset   uint64
	Location uint32
}

// VertexLayout is the vertex format descriptor a pipeline is compiled against.
type VertexLayout struct {
	Stride     uint64
	Attributes []VertexAttribute
}

// NewVertexLayout lays out tightly packed attributes in declaration order,
// assigning shader locations 0, 1, 2, ...
func NewVertexLayout(formats ...VertexFormat) VertexLayout {
	layout := VertexLayout{Attributes: make([]VertexAttribute, 0, len(formats))}
	for i, f := range formats {
		layout.Attributes = append(layout.Attributes, VertexAttribute{
			Format:   f,
			Offset:   layout.Stride,
			Location: uint32(i),
		})
		layout.Stride += f.Size()
	}
	return layout
}
