package gputest

import "github.com/Faultbox/argand/internal/engine/gpu"

// Op identifies a recorded command.
type Op int

const (
	OpBeginPass Op = iota
	OpSetBindGroup
	OpSetPipeline
	OpSetVertexBuffer
	OpSetIndexBuffer
	OpDraw
	OpDrawIndexed
	OpEndPass
)

var opNames = [...]string{"begin_pass", "set_bind_group", "set_pipeline", "set_vertex_buffer", "set_index_buffer", "draw", "draw_indexed", "end_pass"}

func (o Op) String() string { return opNames[o] }

// Command is one recorded encoder or render pass call.
type Command struct {
	Op          Op
	Pass        gpu.RenderPassDescriptor
	Slot        uint32
	BindGroup   gpu.BindGroup
	Pipeline    gpu.RenderPipeline
	Buffer      gpu.Buffer
	IndexFormat gpu.IndexFormat
	Count       uint32
	Instances   uint32
}

// Encoder records commands until Finish.
type Encoder struct {
	label    string
	commands []Command
	Finished bool
}

var _ gpu.CommandEncoder = (*Encoder)(nil)

func (e *Encoder) BeginRenderPass(desc gpu.RenderPassDescriptor) gpu.RenderPass {
	e.commands = append(e.commands, Command{Op: OpBeginPass, Pass: desc})
	return &pass{enc: e}
}

func (e *Encoder) Finish() gpu.CommandBuffer {
	e.Finished = true
	return &CommandBuffer{label: e.label, Commands: e.commands}
}

// CommandBuffer is a finished recording.
type CommandBuffer struct {
	label    string
	Commands []Command
}

func (c *CommandBuffer) Label() string { return c.label }

type pass struct {
	enc   *Encoder
	ended bool
}

func (p *pass) add(c Command) {
	if p.ended {
		panic("gputest: command recorded after render pass ended")
	}
	p.enc.commands = append(p.enc.commands, c)
}

func (p *pass) SetBindGroup(slot uint32, group gpu.BindGroup) {
	p.add(Command{Op: OpSetBindGroup, Slot: slot, BindGroup: group})
}

func (p *pass) SetPipeline(pipeline gpu.RenderPipeline) {
	p.add(Command{Op: OpSetPipeline, Pipeline: pipeline})
}

func (p *pass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	p.add(Command{Op: OpSetVertexBuffer, Slot: slot, Buffer: buf})
}

func (p *pass) SetIndexBuffer(buf gpu.Buffer, format gpu.IndexFormat) {
	p.add(Command{Op: OpSetIndexBuffer, Buffer: buf, IndexFormat: format})
}

func (p *pass) Draw(vertexCount, instanceCount uint32) {
	p.add(Command{Op: OpDraw, Count: vertexCount, Instances: instanceCount})
}

func (p *pass) DrawIndexed(indexCount, instanceCount uint32) {
	p.add(Command{Op: OpDrawIndexed, Count: indexCount, Instances: instanceCount})
}

func (p *pass) End() {
	p.add(Command{Op: OpEndPass})
	p.ended = true
}
