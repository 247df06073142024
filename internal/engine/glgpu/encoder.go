package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/argand/internal/engine/gpu"
)

// replay is the state threaded through a command buffer while it executes.
type replay struct {
	pipeline  *pipeline
	indexType uint32
}

type command func(r *replay)

// encoder records GL calls as closures executed on Queue.Submit.
type encoder struct {
	label    string
	commands []command
}

func (e *encoder) BeginRenderPass(desc gpu.RenderPassDescriptor) gpu.RenderPass {
	target := desc.Color.View.(*view)
	c := desc.Color.Clear
	e.commands = append(e.commands, func(*replay) {
		gl.BindFramebuffer(gl.FRAMEBUFFER, target.fbo)
		gl.Viewport(0, 0, target.width, target.height)
		gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		gl.Clear(gl.COLOR_BUFFER_BIT)
	})
	return &renderPass{enc: e, desc: desc}
}

func (e *encoder) Finish() gpu.CommandBuffer {
	cb := &commandBuffer{label: e.label, commands: e.commands}
	e.commands = nil
	return cb
}

type commandBuffer struct {
	label    string
	commands []command
}

func (c *commandBuffer) Label() string { return c.label }

func (c *commandBuffer) execute() {
	r := &replay{indexType: gl.UNSIGNED_SHORT}
	for _, cmd := range c.commands {
		cmd(r)
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

type renderPass struct {
	enc   *encoder
	desc  gpu.RenderPassDescriptor
	ended bool
}

func (p *renderPass) record(cmd command) {
	if p.ended {
		return
	}
	p.enc.commands = append(p.enc.commands, cmd)
}

func (p *renderPass) SetBindGroup(slot uint32, group gpu.BindGroup) {
	g := group.(*bindGroup)
	p.record(func(*replay) {
		g.bind(slot)
	})
}

func (p *renderPass) SetPipeline(pl gpu.RenderPipeline) {
	pipe := pl.(*pipeline)
	p.record(func(r *replay) {
		r.pipeline = pipe
		pipe.bind()
	})
}

func (p *renderPass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	b := buf.(*buffer)
	p.record(func(r *replay) {
		if r.pipeline != nil {
			r.pipeline.attach(b)
		}
	})
}

func (p *renderPass) SetIndexBuffer(buf gpu.Buffer, format gpu.IndexFormat) {
	b := buf.(*buffer)
	p.record(func(r *replay) {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
		r.indexType = glIndexType(format)
	})
}

func (p *renderPass) Draw(vertexCount, instanceCount uint32) {
	p.record(func(r *replay) {
		if r.pipeline == nil || vertexCount == 0 || instanceCount == 0 {
			return
		}
		gl.DrawArraysInstanced(r.pipeline.topology, 0, int32(vertexCount), int32(instanceCount))
	})
}

func (p *renderPass) DrawIndexed(indexCount, instanceCount uint32) {
	p.record(func(r *replay) {
		if r.pipeline == nil || indexCount == 0 || instanceCount == 0 {
			return
		}
		gl.DrawElementsInstanced(r.pipeline.topology, int32(indexCount), r.indexType, nil, int32(instanceCount))
	})
}

func (p *renderPass) End() {
	if p.ended {
		return
	}
	src := p.desc.Color.View.(*view)
	resolve, _ := p.desc.Color.ResolveTarget.(*view)
	p.record(func(*replay) {
		if resolve != nil {
			gl.BindFramebuffer(gl.READ_FRAMEBUFFER, src.fbo)
			gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, resolve.fbo)
			gl.BlitFramebuffer(0, 0, src.width, src.height, 0, 0, resolve.width, resolve.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
		}
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	})
	p.ended = true
}
