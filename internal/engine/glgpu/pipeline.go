package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// pipeline pairs a linked program with its own vertex array object and the
// fixed-function state applied when it is bound.
type pipeline struct {
	label    string
	program  uint32
	vao      uint32
	layout   gpu.VertexLayout
	topology uint32
	cull     gpu.CullMode
	blend    gpu.BlendMode
}

func (p *pipeline) Label() string { return p.label }

// Destroy deletes the vertex array. The program belongs to the shader module.
func (p *pipeline) Destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
}

func (p *pipeline) bind() {
	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)

	switch p.cull {
	case gpu.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case gpu.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	gl.FrontFace(gl.CCW)

	if p.blend == gpu.BlendAlpha {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// attach points the pipeline's vertex attributes at buf.
func (p *pipeline) attach(buf *buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.id)
	stride := int32(p.layout.Stride)
	for _, attr := range p.layout.Attributes {
		gl.EnableVertexAttribArray(attr.Location)
		offset := gl.PtrOffset(int(attr.Offset))
		if attr.Format.IsFloat() {
			gl.VertexAttribPointer(attr.Location, attr.Format.Components(), gl.FLOAT, false, stride, offset)
		} else {
			gl.VertexAttribIPointer(attr.Location, attr.Format.Components(), glAttribType(attr.Format), stride, offset)
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
