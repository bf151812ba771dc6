// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Generated wrapper methods: each pairs a loaded function pointer with the
// CallInterface signature template (signatures.go) that describes its ABI,
// following the same ffi.CallFunction pattern as commands_manual.go. These
// are NOT overwritten by code generation.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

func ptr(p unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(&p) }

// --- Instance / physical device ---

func (c *Commands) CreateInstance(createInfo *InstanceCreateInfo, alloc *AllocationCallbacks, instance *Instance) Result {
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&instance)}
	if c.createInstance == nil {
		return ErrorInitializationFailed
	}
	_ = ffi.CallFunction(&SigResultPtrPtrPtr, c.createInstance, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyInstance(instance Instance, alloc *AllocationCallbacks) {
	if c.destroyInstance == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.destroyInstance, nil, args[:])
}

func (c *Commands) EnumeratePhysicalDevices(instance Instance, count *uint32, devices *PhysicalDevice) Result {
	var result int32
	if c.enumeratePhysicalDevices == nil {
		return ErrorInitializationFailed
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&count), unsafe.Pointer(&devices)}
	_ = ffi.CallFunction(&SigResultHandleU32PtrPtr, c.enumeratePhysicalDevices, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceProperties(physicalDevice PhysicalDevice, props *PhysicalDeviceProperties) {
	if c.getPhysicalDeviceProperties == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&props)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.getPhysicalDeviceProperties, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceFeatures(physicalDevice PhysicalDevice, features *PhysicalDeviceFeatures) {
	if c.getPhysicalDeviceFeatures == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&features)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.getPhysicalDeviceFeatures, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceQueueFamilyProperties(physicalDevice PhysicalDevice, count *uint32, props *QueueFamilyProperties) {
	if c.getPhysicalDeviceQueueFamilyProperties == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&count), unsafe.Pointer(&props)}
	_ = ffi.CallFunction(&SigVoidHandlePtrPtr, c.getPhysicalDeviceQueueFamilyProperties, nil, args[:])
}

// --- Device ---

func (c *Commands) CreateDevice(physicalDevice PhysicalDevice, createInfo *DeviceCreateInfo, alloc *AllocationCallbacks, device *Device) Result {
	var result int32
	if c.createDevice == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&device)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDevice, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32, queue *Queue) {
	if c.getDeviceQueue == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&queueFamilyIndex), unsafe.Pointer(&queueIndex), unsafe.Pointer(&queue)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.getDeviceQueue, nil, args[:])
}

func (c *Commands) DestroyDevice(device Device, alloc *AllocationCallbacks) {
	if c.destroyDevice == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, c.destroyDevice, nil, args[:])
}

// --- Fences ---

func (c *Commands) CreateFence(device Device, createInfo *FenceCreateInfo, alloc *AllocationCallbacks, fence *Fence) Result {
	var result int32
	if c.createFence == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&fence)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFence, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyFence(device Device, fence Fence, alloc *AllocationCallbacks) {
	if c.destroyFence == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFence, nil, args[:])
}

func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	var result int32
	if c.resetFences == nil {
		return ErrorInitializationFailed
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences)}
	_ = ffi.CallFunction(&SigResultHandleU32Ptr, c.resetFences, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	var result int32
	if c.getFenceStatus == nil {
		return ErrorInitializationFailed
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&fence)}
	_ = ffi.CallFunction(&SigResultHandleHandle, c.getFenceStatus, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	var result int32
	if c.waitForFences == nil {
		return ErrorInitializationFailed
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&count), unsafe.Pointer(&fences), unsafe.Pointer(&waitAll), unsafe.Pointer(&timeout)}
	_ = ffi.CallFunction(&SigResultWaitForFences, c.waitForFences, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// --- Semaphores ---

func (c *Commands) CreateSemaphore(device Device, createInfo *SemaphoreCreateInfo, alloc *AllocationCallbacks, semaphore *Semaphore) Result {
	var result int32
	if c.createSemaphore == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&semaphore)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSemaphore, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, alloc *AllocationCallbacks) {
	if c.destroySemaphore == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&semaphore), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySemaphore, nil, args[:])
}

// --- Command pools / buffers ---

func (c *Commands) CreateCommandPool(device Device, createInfo *CommandPoolCreateInfo, alloc *AllocationCallbacks, pool *CommandPool) Result {
	var result int32
	if c.createCommandPool == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&pool)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createCommandPool, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyCommandPool(device Device, pool CommandPool, alloc *AllocationCallbacks) {
	if c.destroyCommandPool == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyCommandPool, nil, args[:])
}

func (c *Commands) ResetCommandPool(device Device, pool CommandPool, flags CommandPoolResetFlags) Result {
	var result int32
	if c.resetCommandPool == nil {
		return ErrorInitializationFailed
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&flags)}
	_ = ffi.CallFunction(&SigResultHandleHandleU32, c.resetCommandPool, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) AllocateCommandBuffers(device Device, allocInfo *CommandBufferAllocateInfo, buffers *CommandBuffer) Result {
	var result int32
	if c.allocateCommandBuffers == nil {
		return ErrorInitializationFailed
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&allocInfo), unsafe.Pointer(&buffers)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateCommandBuffers, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) FreeCommandBuffers(device Device, pool CommandPool, count uint32, buffers *CommandBuffer) {
	if c.freeCommandBuffers == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&buffers)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU32Ptr, c.freeCommandBuffers, nil, args[:])
}

func (c *Commands) BeginCommandBuffer(buffer CommandBuffer, beginInfo *CommandBufferBeginInfo) Result {
	var result int32
	if c.beginCommandBuffer == nil {
		return ErrorInitializationFailed
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&buffer), unsafe.Pointer(&beginInfo)}
	_ = ffi.CallFunction(&SigResultPtrPtr, c.beginCommandBuffer, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) EndCommandBuffer(buffer CommandBuffer) Result {
	var result int32
	if c.endCommandBuffer == nil {
		return ErrorInitializationFailed
	}
	args := [1]unsafe.Pointer{unsafe.Pointer(&buffer)}
	_ = ffi.CallFunction(&SigResultHandle, c.endCommandBuffer, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// --- Render passes / framebuffers / query pools ---

func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, alloc *AllocationCallbacks, renderPass *RenderPass) Result {
	var result int32
	if c.createRenderPass == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&renderPass)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createRenderPass, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, alloc *AllocationCallbacks) {
	if c.destroyRenderPass == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&renderPass), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyRenderPass, nil, args[:])
}

func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, alloc *AllocationCallbacks, framebuffer *Framebuffer) Result {
	var result int32
	if c.createFramebuffer == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&framebuffer)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFramebuffer, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, alloc *AllocationCallbacks) {
	if c.destroyFramebuffer == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&framebuffer), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFramebuffer, nil, args[:])
}

func (c *Commands) CreateQueryPool(device Device, createInfo *QueryPoolCreateInfo, alloc *AllocationCallbacks, pool *QueryPool) Result {
	var result int32
	if c.createQueryPool == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&pool)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createQueryPool, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyQueryPool(device Device, pool QueryPool, alloc *AllocationCallbacks) {
	if c.destroyQueryPool == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyQueryPool, nil, args[:])
}

func (c *Commands) ResetQueryPool(device Device, pool QueryPool, firstQuery, queryCount uint32) {
	if c.resetQueryPool == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&firstQuery), unsafe.Pointer(&queryCount)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU32U32, c.resetQueryPool, nil, args[:])
}

// --- Pipelines ---

func (c *Commands) CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, createInfos *GraphicsPipelineCreateInfo, alloc *AllocationCallbacks, pipelines *Pipeline) Result {
	var result int32
	if c.createGraphicsPipelines == nil {
		return ErrorInitializationFailed
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count), unsafe.Pointer(&createInfos), ptr(nil), unsafe.Pointer(&pipelines)}
	_ = ffi.CallFunction(&SigResultCreatePipelines, c.createGraphicsPipelines, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) CreateComputePipelines(device Device, cache PipelineCache, count uint32, createInfos *ComputePipelineCreateInfo, alloc *AllocationCallbacks, pipelines *Pipeline) Result {
	var result int32
	if c.createComputePipelines == nil {
		return ErrorInitializationFailed
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count), unsafe.Pointer(&createInfos), ptr(nil), unsafe.Pointer(&pipelines)}
	_ = ffi.CallFunction(&SigResultCreatePipelines, c.createComputePipelines, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyPipeline(device Device, pipeline Pipeline, alloc *AllocationCallbacks) {
	if c.destroyPipeline == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pipeline), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyPipeline, nil, args[:])
}

// --- Descriptors ---

func (c *Commands) CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, alloc *AllocationCallbacks, pool *DescriptorPool) Result {
	var result int32
	if c.createDescriptorPool == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&pool)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, alloc *AllocationCallbacks) {
	if c.destroyDescriptorPool == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, nil, args[:])
}

func (c *Commands) AllocateDescriptorSets(device Device, allocInfo *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	var result int32
	if c.allocateDescriptorSets == nil {
		return ErrorInitializationFailed
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&allocInfo), unsafe.Pointer(&sets)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateDescriptorSets, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	var result int32
	if c.freeDescriptorSets == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&pool), unsafe.Pointer(&count), unsafe.Pointer(&sets)}
	_ = ffi.CallFunction(&SigResultHandleHandleU32Ptr, c.freeDescriptorSets, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	if c.updateDescriptorSets == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&writeCount), unsafe.Pointer(&writes), unsafe.Pointer(&copyCount), unsafe.Pointer(&copies)}
	_ = ffi.CallFunction(&SigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, nil, args[:])
}

// --- Platform surfaces (present only when the loader resolved them) ---

func (c *Commands) HasCreateWin32SurfaceKHR() bool    { return c.createWin32SurfaceKHR != nil }
func (c *Commands) HasCreateXlibSurfaceKHR() bool     { return c.createXlibSurfaceKHR != nil }
func (c *Commands) HasCreateWaylandSurfaceKHR() bool  { return c.createWaylandSurfaceKHR != nil }
func (c *Commands) HasDebugUtils() bool               { return c.createDebugUtilsMessengerEXT != nil }

func (c *Commands) CreateWin32SurfaceKHR(instance Instance, createInfo *Win32SurfaceCreateInfoKHR, alloc *AllocationCallbacks, surface *SurfaceKHR) Result {
	var result int32
	if c.createWin32SurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&surface)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createWin32SurfaceKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) CreateXlibSurfaceKHR(instance Instance, createInfo *XlibSurfaceCreateInfoKHR, alloc *AllocationCallbacks, surface *SurfaceKHR) Result {
	var result int32
	if c.createXlibSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&surface)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createXlibSurfaceKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, createInfo *WaylandSurfaceCreateInfoKHR, alloc *AllocationCallbacks, surface *SurfaceKHR) Result {
	var result int32
	if c.createWaylandSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&surface)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createWaylandSurfaceKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) CreateMetalSurfaceEXT(instance Instance, createInfo *MetalSurfaceCreateInfoEXT, alloc *AllocationCallbacks, surface *SurfaceKHR) Result {
	var result int32
	if c.createMetalSurfaceEXT == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&surface)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createMetalSurfaceEXT, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// --- Debug utils (VK_EXT_debug_utils, optional) ---

func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, createInfo *DebugUtilsMessengerCreateInfoEXT, alloc *AllocationCallbacks, messenger *DebugUtilsMessengerEXT) Result {
	var result int32
	if c.createDebugUtilsMessengerEXT == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&messenger)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDebugUtilsMessengerEXT, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, alloc *AllocationCallbacks) {
	if c.destroyDebugUtilsMessengerEXT == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&messenger), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDebugUtilsMessengerEXT, nil, args[:])
}

func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, info *DebugUtilsObjectNameInfoEXT) Result {
	var result int32
	if c.setDebugUtilsObjectNameEXT == nil {
		return Success
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&info)}
	_ = ffi.CallFunction(&SigResultPtrPtr, c.setDebugUtilsObjectNameEXT, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// --- Cmd* recording (void, on a command buffer) ---

func (c *Commands) CmdBindPipeline(buf CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	if c.cmdBindPipeline == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline)}
	_ = ffi.CallFunction(&SigVoidHandleHandleHandle, c.cmdBindPipeline, nil, args[:])
}

func (c *Commands) CmdSetViewport(buf CommandBuffer, first uint32, count uint32, viewports *Viewport) {
	if c.cmdSetViewport == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&viewports)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.cmdSetViewport, nil, args[:])
}

func (c *Commands) CmdSetScissor(buf CommandBuffer, first uint32, count uint32, scissors *Rect2D) {
	if c.cmdSetScissor == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&scissors)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32Ptr, c.cmdSetScissor, nil, args[:])
}

func (c *Commands) CmdSetBlendConstants(buf CommandBuffer, constants *[4]float32) {
	if c.cmdSetBlendConstants == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&constants)}
	_ = ffi.CallFunction(&SigVoidHandleFloatPtr, c.cmdSetBlendConstants, nil, args[:])
}

func (c *Commands) CmdSetStencilReference(buf CommandBuffer, face StencilFaceFlags, reference uint32) {
	if c.cmdSetStencilReference == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&face), unsafe.Pointer(&reference)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32, c.cmdSetStencilReference, nil, args[:])
}

func (c *Commands) CmdBindDescriptorSets(buf CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, count uint32, sets *DescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32) {
	if c.cmdBindDescriptorSets == nil {
		return
	}
	args := [8]unsafe.Pointer{
		unsafe.Pointer(&buf), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&count), unsafe.Pointer(&sets),
		unsafe.Pointer(&dynamicOffsetCount), unsafe.Pointer(&dynamicOffsets),
	}
	_ = ffi.CallFunction(&SigVoidCmdBindDescriptorSets, c.cmdBindDescriptorSets, nil, args[:])
}

func (c *Commands) CmdBindIndexBuffer(buf CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType) {
	if c.cmdBindIndexBuffer == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&indexType)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32, c.cmdBindIndexBuffer, nil, args[:])
}

func (c *Commands) CmdBindVertexBuffers(buf CommandBuffer, first uint32, count uint32, buffers *Buffer, offsets *DeviceSize) {
	if c.cmdBindVertexBuffers == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&first), unsafe.Pointer(&count), unsafe.Pointer(&buffers), unsafe.Pointer(&offsets)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32PtrPtr, c.cmdBindVertexBuffers, nil, args[:])
}

func (c *Commands) CmdDraw(buf CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if c.cmdDraw == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&SigVoidHandleU32x4, c.cmdDraw, nil, args[:])
}

func (c *Commands) CmdDrawIndexed(buf CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if c.cmdDrawIndexed == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstIndex), unsafe.Pointer(&vertexOffset), unsafe.Pointer(&firstInstance)}
	_ = ffi.CallFunction(&SigVoidHandleU32x3I32U32, c.cmdDrawIndexed, nil, args[:])
}

func (c *Commands) CmdDrawIndirect(buf CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	if c.cmdDrawIndirect == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndirect, nil, args[:])
}

func (c *Commands) CmdDrawIndexedIndirect(buf CommandBuffer, buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	if c.cmdDrawIndexedIndirect == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&drawCount), unsafe.Pointer(&stride)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64U32U32, c.cmdDrawIndexedIndirect, nil, args[:])
}

func (c *Commands) CmdExecuteCommands(buf CommandBuffer, count uint32, cmdBuffers *CommandBuffer) {
	if c.cmdExecuteCommands == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&count), unsafe.Pointer(&cmdBuffers)}
	_ = ffi.CallFunction(&SigVoidHandleU32Ptr, c.cmdExecuteCommands, nil, args[:])
}

func (c *Commands) CmdDispatch(buf CommandBuffer, x, y, z uint32) {
	if c.cmdDispatch == nil {
		return
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&z)}
	_ = ffi.CallFunction(&SigVoidHandleU32U32U32, c.cmdDispatch, nil, args[:])
}

func (c *Commands) CmdDispatchIndirect(buf CommandBuffer, buffer Buffer, offset DeviceSize) {
	if c.cmdDispatchIndirect == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&buffer), unsafe.Pointer(&offset)}
	_ = ffi.CallFunction(&SigVoidHandleHandleU64, c.cmdDispatchIndirect, nil, args[:])
}

func (c *Commands) CmdCopyBuffer(buf CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	if c.cmdCopyBuffer == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyBuffer, c.cmdCopyBuffer, nil, args[:])
}

func (c *Commands) CmdCopyBufferToImage(buf CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy) {
	if c.cmdCopyBufferToImage == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&src), unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyBufferToImage, c.cmdCopyBufferToImage, nil, args[:])
}

func (c *Commands) CmdCopyImageToBuffer(buf CommandBuffer, src Image, srcLayout ImageLayout, dst Buffer, regionCount uint32, regions *BufferImageCopy) {
	if c.cmdCopyImageToBuffer == nil {
		return
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout), unsafe.Pointer(&dst), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyImageToBuffer, c.cmdCopyImageToBuffer, nil, args[:])
}

func (c *Commands) CmdCopyImage(buf CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy) {
	if c.cmdCopyImage == nil {
		return
	}
	args := [7]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout), unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout), unsafe.Pointer(&regionCount), unsafe.Pointer(&regions)}
	_ = ffi.CallFunction(&SigVoidCmdCopyImage, c.cmdCopyImage, nil, args[:])
}

func (c *Commands) CmdFillBuffer(buf CommandBuffer, dst Buffer, offset, size DeviceSize, data uint32) {
	if c.cmdFillBuffer == nil {
		return
	}
	args := [5]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&dst), unsafe.Pointer(&offset), unsafe.Pointer(&size), unsafe.Pointer(&data)}
	_ = ffi.CallFunction(&SigVoidCmdFillBuffer, c.cmdFillBuffer, nil, args[:])
}

func (c *Commands) CmdPipelineBarrier(buf CommandBuffer, srcStage, dstStage PipelineStageFlags, dependencyFlags DependencyFlags,
	memoryBarrierCount uint32, memoryBarriers *MemoryBarrier,
	bufferBarrierCount uint32, bufferBarriers *BufferMemoryBarrier,
	imageBarrierCount uint32, imageBarriers *ImageMemoryBarrier) {
	if c.cmdPipelineBarrier == nil {
		return
	}
	args := [11]unsafe.Pointer{
		unsafe.Pointer(&buf), unsafe.Pointer(&srcStage), unsafe.Pointer(&dstStage), unsafe.Pointer(&dependencyFlags),
		unsafe.Pointer(&memoryBarrierCount), unsafe.Pointer(&memoryBarriers),
		unsafe.Pointer(&bufferBarrierCount), unsafe.Pointer(&bufferBarriers),
		unsafe.Pointer(&imageBarrierCount), unsafe.Pointer(&imageBarriers),
	}
	_ = ffi.CallFunction(&SigVoidCmdPipelineBarrier, c.cmdPipelineBarrier, nil, args[:])
}

func (c *Commands) CmdBeginRendering(buf CommandBuffer, info *RenderingInfo) {
	if c.cmdBeginRendering == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&buf), unsafe.Pointer(&info)}
	_ = ffi.CallFunction(&SigVoidHandlePtrRendering, c.cmdBeginRendering, nil, args[:])
}

func (c *Commands) CmdEndRendering(buf CommandBuffer) {
	if c.cmdEndRendering == nil {
		return
	}
	args := [1]unsafe.Pointer{unsafe.Pointer(&buf)}
	_ = ffi.CallFunction(&SigVoidHandle, c.cmdEndRendering, nil, args[:])
}

// --- Surfaces / swapchain (VK_KHR_surface, VK_KHR_swapchain) ---

func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, alloc *AllocationCallbacks) {
	if c.destroySurfaceKHR == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&surface), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySurfaceKHR, nil, args[:])
}

func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR(physicalDevice PhysicalDevice, queueFamily uint32, surface SurfaceKHR, supported *Bool32) Result {
	var result int32
	if c.getPhysicalDeviceSurfaceSupportKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&queueFamily), unsafe.Pointer(&surface), unsafe.Pointer(&supported)}
	_ = ffi.CallFunction(&SigResultHandleU32HandlePtr, c.getPhysicalDeviceSurfaceSupportKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, capabilities *SurfaceCapabilitiesKHR) Result {
	var result int32
	if c.getPhysicalDeviceSurfaceCapabilitiesKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&capabilities)}
	_ = ffi.CallFunction(&SigResultHandleHandlePtr, c.getPhysicalDeviceSurfaceCapabilitiesKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result {
	var result int32
	if c.getPhysicalDeviceSurfaceFormatsKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&formats)}
	_ = ffi.CallFunction(&SigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfaceFormatsKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR(physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, modes *PresentModeKHR) Result {
	var result int32
	if c.getPhysicalDeviceSurfacePresentModesKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&surface), unsafe.Pointer(&count), unsafe.Pointer(&modes)}
	_ = ffi.CallFunction(&SigResultHandleHandlePtrPtr, c.getPhysicalDeviceSurfacePresentModesKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) CreateSwapchainKHR(device Device, createInfo *SwapchainCreateInfoKHR, alloc *AllocationCallbacks, swapchain *SwapchainKHR) Result {
	var result int32
	if c.createSwapchainKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&swapchain)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSwapchainKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroySwapchainKHR(device Device, swapchain SwapchainKHR, alloc *AllocationCallbacks) {
	if c.destroySwapchainKHR == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySwapchainKHR, nil, args[:])
}

func (c *Commands) GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, images *Image) Result {
	var result int32
	if c.getSwapchainImagesKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&count), unsafe.Pointer(&images)}
	_ = ffi.CallFunction(&SigResultHandleHandlePtrPtr, c.getSwapchainImagesKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, imageIndex *uint32) Result {
	var result int32
	if c.acquireNextImageKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [6]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&swapchain), unsafe.Pointer(&timeout), unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), unsafe.Pointer(&imageIndex)}
	_ = ffi.CallFunction(&SigResultAcquireNextImage, c.acquireNextImageKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) QueuePresentKHR(queue Queue, presentInfo *PresentInfoKHR) Result {
	var result int32
	if c.queuePresentKHR == nil {
		return ErrorExtensionNotPresent
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&presentInfo)}
	_ = ffi.CallFunction(&SigResultHandlePtr, c.queuePresentKHR, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) QueueSubmit(queue Queue, submitCount uint32, submits *SubmitInfo, fence Fence) Result {
	var result int32
	if c.queueSubmit == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&queue), unsafe.Pointer(&submitCount), unsafe.Pointer(&submits), unsafe.Pointer(&fence)}
	_ = ffi.CallFunction(&SigResultHandleU32PtrHandle, c.queueSubmit, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DeviceWaitIdle(device Device) Result {
	var result int32
	if c.deviceWaitIdle == nil {
		return ErrorInitializationFailed
	}
	args := [1]unsafe.Pointer{unsafe.Pointer(&device)}
	_ = ffi.CallFunction(&SigResultHandle, c.deviceWaitIdle, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// --- Image views / shader modules / pipeline layouts / samplers / descriptor layouts / buffer views ---

func (c *Commands) CreateImageView(device Device, createInfo *ImageViewCreateInfo, alloc *AllocationCallbacks, view *ImageView) Result {
	var result int32
	if c.createImageView == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&view)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createImageView, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyImageView(device Device, view ImageView, alloc *AllocationCallbacks) {
	if c.destroyImageView == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyImageView, nil, args[:])
}

func (c *Commands) CreateShaderModule(device Device, createInfo *ShaderModuleCreateInfo, alloc *AllocationCallbacks, module *ShaderModule) Result {
	var result int32
	if c.createShaderModule == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&module)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createShaderModule, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyShaderModule(device Device, module ShaderModule, alloc *AllocationCallbacks) {
	if c.destroyShaderModule == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&module), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyShaderModule, nil, args[:])
}

func (c *Commands) CreatePipelineLayout(device Device, createInfo *PipelineLayoutCreateInfo, alloc *AllocationCallbacks, layout *PipelineLayout) Result {
	var result int32
	if c.createPipelineLayout == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&layout)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createPipelineLayout, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyPipelineLayout(device Device, layout PipelineLayout, alloc *AllocationCallbacks) {
	if c.destroyPipelineLayout == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyPipelineLayout, nil, args[:])
}

func (c *Commands) CreateSampler(device Device, createInfo *SamplerCreateInfo, alloc *AllocationCallbacks, sampler *Sampler) Result {
	var result int32
	if c.createSampler == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&sampler)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSampler, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroySampler(device Device, sampler Sampler, alloc *AllocationCallbacks) {
	if c.destroySampler == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&sampler), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySampler, nil, args[:])
}

func (c *Commands) CreateDescriptorSetLayout(device Device, createInfo *DescriptorSetLayoutCreateInfo, alloc *AllocationCallbacks, layout *DescriptorSetLayout) Result {
	var result int32
	if c.createDescriptorSetLayout == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&layout)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, alloc *AllocationCallbacks) {
	if c.destroyDescriptorSetLayout == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&layout), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, nil, args[:])
}

func (c *Commands) CreateBufferView(device Device, createInfo *BufferViewCreateInfo, alloc *AllocationCallbacks, view *BufferView) Result {
	var result int32
	if c.createBufferView == nil {
		return ErrorInitializationFailed
	}
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&view)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createBufferView, unsafe.Pointer(&result), args[:])
	return Result(result)
}

func (c *Commands) DestroyBufferView(device Device, view BufferView, alloc *AllocationCallbacks) {
	if c.destroyBufferView == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&view), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyBufferView, nil, args[:])
}
