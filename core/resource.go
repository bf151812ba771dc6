package core

import (
	"github.com/driftgpu/webgpu/types"
)

// Resource placeholder types - will be properly defined later.
// These types represent the actual WebGPU resources managed by the hub.

// Adapter represents a physical GPU adapter.
type Adapter struct {
	// Info contains information about the adapter.
	Info types.AdapterInfo
	// Features contains the features supported by the adapter.
	Features types.Features
	// Limits contains the resource limits of the adapter.
	Limits types.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend types.Backend
}

// Device represents a logical GPU device.
type Device struct {
	// Adapter is the adapter this device was created from.
	Adapter AdapterID
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features types.Features
	// Limits contains the resource limits of this device.
	Limits types.Limits
	// Queue is the device's default queue.
	Queue QueueID
}

// Queue represents a command queue for a device.
type Queue struct {
	// Device is the device this queue belongs to.
	Device DeviceID
	// Label is a debug label for the queue.
	Label string
}

// Buffer represents a GPU buffer.
type Buffer struct{}

// Texture represents a GPU texture.
type Texture struct{}

// TextureView represents a view into a texture.
type TextureView struct{}

// Sampler represents a texture sampler.
type Sampler struct{}

// BindGroupLayout represents the layout of a bind group.
type BindGroupLayout struct{}

// PipelineLayout represents the layout of a pipeline.
type PipelineLayout struct{}

// BindGroup represents a collection of resources bound together.
type BindGroup struct{}

// ShaderModule represents a compiled shader module.
type ShaderModule struct{}

// RenderPipeline represents a render pipeline.
type RenderPipeline struct{}

// ComputePipeline represents a compute pipeline.
type ComputePipeline struct{}

// CommandEncoder represents a command encoder.
type CommandEncoder struct{}

// CommandBuffer represents a recorded command buffer.
type CommandBuffer struct{}

// QuerySet represents a set of queries.
type QuerySet struct{}

// Surface represents a rendering surface.
type Surface struct{}
