// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Global commands instance for memory operations.
// Must be initialized via LoadDevice before using memory functions.
var deviceCmds *Commands

// SetDeviceCommands sets the device-level commands for memory operations.
func SetDeviceCommands(cmds *Commands) {
	deviceCmds = cmds
}

// AllocateMemory allocates device memory.
//
// Wraps vkAllocateMemory.
func AllocateMemory(device Device, allocInfo *MemoryAllocateInfo, allocator *AllocationCallbacks, memory *DeviceMemory) Result {
	if deviceCmds == nil || deviceCmds.allocateMemory == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&allocInfo), ptr(nil), unsafe.Pointer(&memory)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, deviceCmds.allocateMemory, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// FreeMemory frees device memory.
//
// Wraps vkFreeMemory.
func FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.freeMemory == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, deviceCmds.freeMemory, nil, args[:])
}

// MapMemory maps device memory to host address space.
//
// Wraps vkMapMemory.
func MapMemory(device Device, memory DeviceMemory, offset, size uint64, flags MemoryMapFlags, data *unsafe.Pointer) Result {
	if deviceCmds == nil || deviceCmds.mapMemory == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device), unsafe.Pointer(&memory), unsafe.Pointer(&offset),
		unsafe.Pointer(&size), unsafe.Pointer(&flags), unsafe.Pointer(&data),
	}
	_ = ffi.CallFunction(&SigResultMapMemory, deviceCmds.mapMemory, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// UnmapMemory unmaps device memory from host address space.
//
// Wraps vkUnmapMemory.
func UnmapMemory(device Device, memory DeviceMemory) {
	if deviceCmds == nil || deviceCmds.unmapMemory == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memory)}
	_ = ffi.CallFunction(&SigVoidHandleHandle, deviceCmds.unmapMemory, nil, args[:])
}

// GetBufferMemoryRequirements queries memory requirements for a buffer.
//
// Wraps vkGetBufferMemoryRequirements.
func GetBufferMemoryRequirements(device Device, buffer Buffer, requirements *MemoryRequirements) {
	if deviceCmds == nil || deviceCmds.getBufferMemoryRequirements == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&requirements)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, deviceCmds.getBufferMemoryRequirements, nil, args[:])
}

// BindBufferMemory binds memory to a buffer.
//
// Wraps vkBindBufferMemory.
func BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset uint64) Result {
	if deviceCmds == nil || deviceCmds.bindBufferMemory == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	_ = ffi.CallFunction(&SigResultHandle4, deviceCmds.bindBufferMemory, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// GetImageMemoryRequirements queries memory requirements for an image.
//
// Wraps vkGetImageMemoryRequirements.
func GetImageMemoryRequirements(device Device, image Image, requirements *MemoryRequirements) {
	if deviceCmds == nil || deviceCmds.getImageMemoryRequirements == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&requirements)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, deviceCmds.getImageMemoryRequirements, nil, args[:])
}

// BindImageMemory binds memory to an image.
//
// Wraps vkBindImageMemory.
func BindImageMemory(device Device, image Image, memory DeviceMemory, offset uint64) Result {
	if deviceCmds == nil || deviceCmds.bindImageMemory == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), unsafe.Pointer(&memory), unsafe.Pointer(&offset)}
	_ = ffi.CallFunction(&SigResultHandle4, deviceCmds.bindImageMemory, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// CreateBuffer creates a new buffer.
//
// Wraps vkCreateBuffer.
func CreateBuffer(device Device, createInfo *BufferCreateInfo, allocator *AllocationCallbacks, buffer *Buffer) Result {
	if deviceCmds == nil || deviceCmds.createBuffer == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&buffer)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, deviceCmds.createBuffer, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// DestroyBuffer destroys a buffer.
//
// Wraps vkDestroyBuffer.
func DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyBuffer == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&buffer), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, deviceCmds.destroyBuffer, nil, args[:])
}

// CreateImage creates a new image.
//
// Wraps vkCreateImage.
func CreateImage(device Device, createInfo *ImageCreateInfo, allocator *AllocationCallbacks, image *Image) Result {
	if deviceCmds == nil || deviceCmds.createImage == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&createInfo), ptr(nil), unsafe.Pointer(&image)}
	_ = ffi.CallFunction(&SigResultHandlePtrPtrPtr, deviceCmds.createImage, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// DestroyImage destroys an image.
//
// Wraps vkDestroyImage.
func DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyImage == nil {
		return
	}
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&image), ptr(nil)}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, deviceCmds.destroyImage, nil, args[:])
}

// FlushMappedMemoryRanges flushes mapped memory ranges.
//
// Wraps vkFlushMappedMemoryRanges.
func FlushMappedMemoryRanges(device Device, memoryRangeCount uint32, memoryRanges *MappedMemoryRange) Result {
	if deviceCmds == nil || deviceCmds.flushMappedMemoryRanges == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memoryRangeCount), unsafe.Pointer(&memoryRanges)}
	_ = ffi.CallFunction(&SigResultHandleU32Ptr, deviceCmds.flushMappedMemoryRanges, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// InvalidateMappedMemoryRanges invalidates mapped memory ranges.
//
// Wraps vkInvalidateMappedMemoryRanges.
func InvalidateMappedMemoryRanges(device Device, memoryRangeCount uint32, memoryRanges *MappedMemoryRange) Result {
	if deviceCmds == nil || deviceCmds.invalidateMappedMemoryRanges == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [3]unsafe.Pointer{unsafe.Pointer(&device), unsafe.Pointer(&memoryRangeCount), unsafe.Pointer(&memoryRanges)}
	_ = ffi.CallFunction(&SigResultHandleU32Ptr, deviceCmds.invalidateMappedMemoryRanges, unsafe.Pointer(&result), args[:])
	return Result(result)
}

// GetPhysicalDeviceMemoryProperties queries memory properties of a physical device.
//
// Wraps vkGetPhysicalDeviceMemoryProperties.
func GetPhysicalDeviceMemoryProperties(cmds *Commands, physicalDevice PhysicalDevice, properties *PhysicalDeviceMemoryProperties) {
	if cmds == nil || cmds.getPhysicalDeviceMemoryProperties == nil {
		return
	}
	args := [2]unsafe.Pointer{unsafe.Pointer(&physicalDevice), unsafe.Pointer(&properties)}
	_ = ffi.CallFunction(&SigVoidHandlePtr, cmds.getPhysicalDeviceMemoryProperties, nil, args[:])
}
