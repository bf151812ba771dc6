// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/hal/vulkan/memory"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/driftgpu/webgpu/types"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Device implements hal.Device for Vulkan.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // Primary command pool for encoder allocation

	// timestampPeriod is the nanoseconds-per-tick conversion factor for
	// timestamp queries, copied from the adapter's VkPhysicalDeviceLimits
	// at device-open time.
	timestampPeriod float32

	// bufferIndices/textureIndices hand out dense TrackerIndex values to
	// new resources; bufferTracker/textureTracker hold the device-wide
	// last-known usage that command-buffer usage scopes merge into at
	// queue submit (core/track).
	bufferIndices  *track.TrackerIndexAllocator
	textureIndices *track.TrackerIndexAllocator
	bufferTracker  *track.BufferTracker
	textureTracker *track.TextureTracker

	// descriptorAllocator pools VkDescriptorPools for CreateBindGroup.
	descriptorAllocator *DescriptorAllocator

	// fenceCache hands out pooled per-submission binary fences used for
	// resource-lifetime tracking (Buffer.latestFence, frame slot reuse).
	fenceCache *FenceCache

	// bufferByHandle/textureViewByHandle/samplerByHandle resolve a
	// gputypes.Buffer/TextureView/SamplerBinding's raw uintptr (produced by
	// Buffer.NativeHandle et al.) back to the owning HAL object when
	// building a bind group (§4.5).
	bufferByHandle      map[uintptr]*Buffer
	textureViewByHandle map[uintptr]*TextureView
	samplerByHandle     map[uintptr]*Sampler

	// frames is the per-frame-in-flight cache (§4.6): command pools, bind
	// group caches, and final-transition fences reused round-robin across
	// frames instead of allocated per submission.
	frames *frameCache
}

// initTrackers initializes the resource-tracking state for this device.
func (d *Device) initTrackers() {
	d.bufferIndices = track.NewTrackerIndexAllocator()
	d.textureIndices = track.NewTrackerIndexAllocator()
	d.bufferTracker = track.NewBufferTracker()
	d.textureTracker = track.NewTextureTracker()
	d.bufferByHandle = make(map[uintptr]*Buffer)
	d.textureViewByHandle = make(map[uintptr]*TextureView)
	d.samplerByHandle = make(map[uintptr]*Sampler)
}

// initDescriptorAllocator initializes the pooled descriptor-set allocator
// used by CreateBindGroup.
func (d *Device) initDescriptorAllocator() {
	d.descriptorAllocator = NewDescriptorAllocator(d.handle, d.cmds, DefaultDescriptorAllocatorConfig())
}

// initFenceCache initializes the per-submission pooled binary fence cache
// (§4.6, §4.7) used for resource-lifetime tracking, distinct from the
// device-wide deviceFence backing hal.Fence (see fence.go).
func (d *Device) initFenceCache() {
	d.fenceCache = NewFenceCache(d.cmds, d.handle)
}

// initAllocator initializes the memory allocator for this device.
func (d *Device) initAllocator() error {
	// Get physical device memory properties
	var vkProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(&d.instance.cmds, d.physicalDevice, &vkProps)

	// Convert to our format
	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}

	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}

	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	// Create allocator with default config
	allocator, err := memory.NewGpuAllocator(d.handle, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to create memory allocator: %w", err)
	}

	d.allocator = allocator

	// Set device commands for memory operations
	vk.SetDeviceCommands(d.cmds)

	return nil
}

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	// Convert usage flags
	vkUsage := bufferUsageToVk(desc.Usage)

	// Create VkBuffer (without memory)
	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       vkUsage,
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	result := vk.CreateBuffer(d.handle, &createInfo, nil, &buffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateBuffer failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(d.handle, buffer, &memReqs)

	// Determine usage flags for memory allocation
	memUsage := memory.UsageFastDeviceAccess
	if desc.Usage&(types.BufferUsageMapRead|types.BufferUsageMapWrite) != 0 {
		memUsage = memory.UsageHostAccess
		if desc.Usage&types.BufferUsageMapRead != 0 {
			memUsage |= memory.UsageDownload
		}
		if desc.Usage&types.BufferUsageMapWrite != 0 {
			memUsage |= memory.UsageUpload
		}
	}

	// Allocate memory
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memUsage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate buffer memory: %w", err)
	}

	// Bind memory to buffer
	result = vk.BindBufferMemory(d.handle, buffer, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: vkBindBufferMemory failed: %d", result)
	}

	// Host-visible buffers are mapped persistently at creation so
	// WriteBuffer/map-write callers can always reach memBlock.MappedPtr
	// without a separate MapAsync round trip.
	if memUsage&memory.UsageHostAccess != 0 {
		if _, err := d.allocator.Map(memBlock); err != nil {
			_ = d.allocator.Free(memBlock)
			vk.DestroyBuffer(d.handle, buffer, nil)
			return nil, fmt.Errorf("vulkan: failed to map host-visible buffer memory: %w", err)
		}
	}

	index := d.bufferIndices.Alloc()
	d.bufferTracker.InsertSingle(index, track.BufferUsesNone)

	b := &Buffer{
		handle:       buffer,
		memory:       memBlock,
		size:         desc.Size,
		usage:        desc.Usage,
		device:       d,
		trackerIndex: index,
	}
	d.bufferByHandle[b.NativeHandle()] = b
	return b, nil
}

// DestroyBuffer destroys a GPU buffer.
func (d *Device) DestroyBuffer(buffer hal.Buffer) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer == nil {
		return
	}

	delete(d.bufferByHandle, vkBuffer.NativeHandle())

	if vkBuffer.handle != 0 {
		vk.DestroyBuffer(d.handle, vkBuffer.handle, nil)
		vkBuffer.handle = 0
	}

	if vkBuffer.memory != nil {
		_ = d.allocator.Free(vkBuffer.memory)
		vkBuffer.memory = nil
	}

	d.bufferTracker.Remove(vkBuffer.trackerIndex)
	d.bufferIndices.Free(vkBuffer.trackerIndex)

	vkBuffer.device = nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: texture descriptor is nil")
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("vulkan: texture size must be > 0")
	}

	// Convert parameters
	vkFormat := textureFormatToVk(desc.Format)
	vkUsage := textureUsageToVk(desc.Usage)
	imageType := textureDimensionToVkImageType(desc.Dimension)

	// Determine depth/array layers
	depth := desc.Size.DepthOrArrayLayers
	if depth == 0 {
		depth = 1
	}
	mipLevels := desc.MipLevelCount
	if mipLevels == 0 {
		mipLevels = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}

	// Create VkImage (without memory)
	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: imageType,
		Format:    vkFormat,
		Extent: vk.Extent3D{
			Width:  desc.Size.Width,
			Height: desc.Size.Height,
			Depth:  depth,
		},
		MipLevels:     mipLevels,
		ArrayLayers:   1, // TODO: Support array textures
		Samples:       vk.SampleCountFlagBits(samples),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         vkUsage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	result := vk.CreateImage(d.handle, &createInfo, nil, &image)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImage failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(d.handle, image, &memReqs)

	// Allocate memory (textures always use device-local)
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate texture memory: %w", err)
	}

	// Bind memory to image
	result = vk.BindImageMemory(d.handle, image, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: vkBindImageMemory failed: %d", result)
	}

	index := d.textureIndices.Alloc()
	d.textureTracker.InsertSingle(index, track.TextureUsesNone)

	return &Texture{
		handle:       image,
		memory:       memBlock,
		size:         Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, Depth: depth},
		format:       desc.Format,
		usage:        desc.Usage,
		mipLevels:    mipLevels,
		samples:      samples,
		dimension:    desc.Dimension,
		device:       d,
		trackerIndex: index,
	}, nil
}

// DestroyTexture destroys a GPU texture.
func (d *Device) DestroyTexture(texture hal.Texture) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return
	}

	if vkTexture.handle != 0 && !vkTexture.isExternal {
		vk.DestroyImage(d.handle, vkTexture.handle, nil)
		vkTexture.handle = 0
	}

	if vkTexture.memory != nil {
		_ = d.allocator.Free(vkTexture.memory)
		vkTexture.memory = nil
	}

	d.textureTracker.Remove(vkTexture.trackerIndex)
	d.textureIndices.Free(vkTexture.trackerIndex)

	vkTexture.device = nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return nil, fmt.Errorf("vulkan: invalid texture")
	}
	if desc == nil {
		desc = &hal.TextureViewDescriptor{}
	}

	format := desc.Format
	if format == 0 {
		format = vkTexture.format
	}

	viewType := textureViewDimensionToVk(desc.Dimension)
	if desc.Dimension == 0 {
		viewType = textureDimensionToViewType(vkTexture.dimension)
	}

	mipLevelCount := mipLevelCountOrRemaining(desc.MipLevelCount)
	arrayLayerCount := arrayLayerCountOrRemaining(desc.ArrayLayerCount)

	key := ViewKey{
		Format:          format,
		Dimension:       desc.Dimension,
		Aspect:          desc.Aspect,
		BaseMipLevel:    desc.BaseMipLevel,
		MipLevelCount:   mipLevelCount,
		BaseArrayLayer:  desc.BaseArrayLayer,
		ArrayLayerCount: arrayLayerCount,
	}

	return vkTexture.GetOrCreateView(key, func() (*TextureView, error) {
		createInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    vkTexture.handle,
			ViewType: viewType,
			Format:   vkFormatForView(format),
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     textureAspectToVk(desc.Aspect, format),
				BaseMipLevel:   desc.BaseMipLevel,
				LevelCount:     mipLevelCount,
				BaseArrayLayer: desc.BaseArrayLayer,
				LayerCount:     arrayLayerCount,
			},
		}

		var handle vk.ImageView
		result := d.cmds.CreateImageView(d.handle, &createInfo, nil, &handle)
		if result != vk.Success {
			return nil, fmt.Errorf("vulkan: vkCreateImageView failed: %d", result)
		}

		view := &TextureView{
			handle:  handle,
			texture: vkTexture,
			key:     key,
			device:  d,
		}
		d.textureViewByHandle[view.NativeHandle()] = view
		return view, nil
	})
}

// vkFormatForView converts a gputypes.TextureFormat to vk.Format, used
// when resolving a texture view's format (may differ from the parent
// texture's format for reinterpreted views).
func vkFormatForView(format gputypes.TextureFormat) vk.Format {
	return textureFormatToVk(format)
}

// DestroyTextureView destroys a texture view.
func (d *Device) DestroyTextureView(view hal.TextureView) {
	vkView, ok := view.(*TextureView)
	if !ok || vkView == nil {
		return
	}
	delete(d.textureViewByHandle, vkView.NativeHandle())
	if vkView.handle != 0 {
		d.cmds.DestroyImageView(d.handle, vkView.handle, nil)
		vkView.handle = 0
	}
	vkView.device = nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: sampler descriptor is nil")
	}

	createInfo := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        filterModeToVk(desc.MagFilter),
		MinFilter:        filterModeToVk(desc.MinFilter),
		MipmapMode:       mipmapFilterModeToVk(desc.MipmapFilter),
		AddressModeU:     addressModeToVk(desc.AddressModeU),
		AddressModeV:     addressModeToVk(desc.AddressModeV),
		AddressModeW:     addressModeToVk(desc.AddressModeW),
		MinLod:           desc.LodMinClamp,
		MaxLod:           desc.LodMaxClamp,
		CompareEnable:    boolToVk(desc.Compare != 0),
		CompareOp:        compareFunctionToVk(desc.Compare),
		AnisotropyEnable: boolToVk(desc.Anisotropy > 1),
		MaxAnisotropy:    float32(desc.Anisotropy),
	}

	var handle vk.Sampler
	result := d.cmds.CreateSampler(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSampler failed: %d", result)
	}

	sampler := &Sampler{handle: handle, device: d}
	d.samplerByHandle[sampler.NativeHandle()] = sampler
	return sampler, nil
}

// DestroySampler destroys a sampler.
func (d *Device) DestroySampler(sampler hal.Sampler) {
	vkSampler, ok := sampler.(*Sampler)
	if !ok || vkSampler == nil {
		return
	}
	delete(d.samplerByHandle, vkSampler.NativeHandle())
	if vkSampler.handle != 0 {
		d.cmds.DestroySampler(d.handle, vkSampler.handle, nil)
		vkSampler.handle = 0
	}
	vkSampler.device = nil
}

// CreateBindGroupLayout creates a bind group layout, computing the pool
// descriptor counts a later CreateBindGroup will need from this layout
// (§4.5 — BindGroupLayout records its own descriptor shape).
func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group layout descriptor is nil")
	}

	bindings := make([]vk.DescriptorSetLayoutBinding, 0, len(desc.Entries))
	var counts DescriptorCounts

	for _, entry := range desc.Entries {
		stageFlags := shaderStagesToVk(entry.Visibility)

		switch {
		case entry.Buffer != nil:
			descType := bufferBindingTypeToVk(entry.Buffer.Type)
			bindings = append(bindings, vk.DescriptorSetLayoutBinding{
				Binding:         entry.Binding,
				DescriptorType:  descType,
				DescriptorCount: 1,
				StageFlags:      stageFlags,
			})
			if descType == vk.DescriptorTypeUniformBuffer {
				counts.UniformBuffers++
			} else {
				counts.StorageBuffers++
			}

		case entry.Sampler != nil:
			bindings = append(bindings, vk.DescriptorSetLayoutBinding{
				Binding:         entry.Binding,
				DescriptorType:  vk.DescriptorTypeSampler,
				DescriptorCount: 1,
				StageFlags:      stageFlags,
			})
			counts.Samplers++

		case entry.Texture != nil:
			bindings = append(bindings, vk.DescriptorSetLayoutBinding{
				Binding:         entry.Binding,
				DescriptorType:  vk.DescriptorTypeSampledImage,
				DescriptorCount: 1,
				StageFlags:      stageFlags,
			})
			counts.SampledImages++

		case entry.Storage != nil:
			bindings = append(bindings, vk.DescriptorSetLayoutBinding{
				Binding:         entry.Binding,
				DescriptorType:  vk.DescriptorTypeStorageImage,
				DescriptorCount: 1,
				StageFlags:      stageFlags,
			})
			counts.StorageImages++

		default:
			return nil, fmt.Errorf("vulkan: bind group layout entry %d sets no binding type", entry.Binding)
		}
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		createInfo.PBindings = &bindings[0]
	}

	var handle vk.DescriptorSetLayout
	result := d.cmds.CreateDescriptorSetLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout failed: %d", result)
	}

	entries := make([]gputypes.BindGroupLayoutEntry, len(desc.Entries))
	copy(entries, desc.Entries)

	if d.descriptorAllocator == nil {
		d.initDescriptorAllocator()
	}

	return &BindGroupLayout{
		handle:  handle,
		counts:  counts,
		entries: entries,
		device:  d,
	}, nil
}

// DestroyBindGroupLayout destroys a bind group layout.
func (d *Device) DestroyBindGroupLayout(layout hal.BindGroupLayout) {
	vkLayout, ok := layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return
	}
	if vkLayout.handle != 0 {
		d.cmds.DestroyDescriptorSetLayout(d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateBindGroup allocates a descriptor set from the layout, resolves
// every entry's resource back to a concrete HAL object via its native
// handle, writes the descriptors, and records the resource-usage set the
// bind group owns (§4.5, maintainer review: "BindGroup must own a
// descriptor pool/set and a resource-usage set").
func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group descriptor is nil")
	}
	vkLayout, ok := desc.Layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return nil, fmt.Errorf("vulkan: invalid bind group layout")
	}
	if d.descriptorAllocator == nil {
		d.initDescriptorAllocator()
	}

	set, pool, err := d.descriptorAllocator.Allocate(vkLayout.handle, vkLayout.counts)
	if err != nil {
		return nil, fmt.Errorf("vulkan: failed to allocate descriptor set: %w", err)
	}

	layoutByBinding := make(map[uint32]gputypes.BindGroupLayoutEntry, len(vkLayout.entries))
	for _, e := range vkLayout.entries {
		layoutByBinding[e.Binding] = e
	}

	writes := make([]vk.WriteDescriptorSet, 0, len(desc.Entries))
	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(desc.Entries))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(desc.Entries))
	resourceUsages := make([]BindGroupResourceUsage, 0, len(desc.Entries))

	for _, entry := range desc.Entries {
		layoutEntry, ok := layoutByBinding[entry.Binding]
		if !ok {
			_ = d.descriptorAllocator.Free(pool, set)
			return nil, fmt.Errorf("vulkan: bind group entry %d has no matching layout entry", entry.Binding)
		}

		switch res := entry.Resource.(type) {
		case gputypes.BufferBinding:
			buf, ok := d.bufferByHandle[res.Buffer]
			if !ok || buf == nil {
				_ = d.descriptorAllocator.Free(pool, set)
				return nil, fmt.Errorf("vulkan: bind group entry %d references an unknown buffer", entry.Binding)
			}
			size := res.Size
			if size == 0 {
				size = buf.Size() - res.Offset
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{
				Buffer: buf.handle,
				Offset: vk.DeviceSize(res.Offset),
				Range:  vk.DeviceSize(size),
			})
			descType := vk.DescriptorTypeUniformBuffer
			usage := track.BufferUsesUniform
			if layoutEntry.Buffer != nil {
				descType = bufferBindingTypeToVk(layoutEntry.Buffer.Type)
				if layoutEntry.Buffer.Type == gputypes.BufferBindingTypeReadOnlyStorage {
					usage = track.BufferUsesStorageRead
				} else if layoutEntry.Buffer.Type == gputypes.BufferBindingTypeStorage {
					usage = track.BufferUsesStorageWrite
				}
			}
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      entry.Binding,
				DescriptorCount: 1,
				DescriptorType:  descType,
				PBufferInfo:     &bufferInfos[len(bufferInfos)-1],
			})
			resourceUsages = append(resourceUsages, BindGroupResourceUsage{
				Binding:     entry.Binding,
				Buffer:      buf,
				BufferUsage: usage,
			})

		case gputypes.SamplerBinding:
			sampler, ok := d.samplerByHandle[res.Sampler]
			if !ok || sampler == nil {
				_ = d.descriptorAllocator.Free(pool, set)
				return nil, fmt.Errorf("vulkan: bind group entry %d references an unknown sampler", entry.Binding)
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{Sampler: sampler.handle})
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      entry.Binding,
				DescriptorCount: 1,
				DescriptorType:  vk.DescriptorTypeSampler,
				PImageInfo:      &imageInfos[len(imageInfos)-1],
			})

		case gputypes.TextureViewBinding:
			view, ok := d.textureViewByHandle[res.TextureView]
			if !ok || view == nil {
				_ = d.descriptorAllocator.Free(pool, set)
				return nil, fmt.Errorf("vulkan: bind group entry %d references an unknown texture view", entry.Binding)
			}
			descType := vk.DescriptorTypeSampledImage
			imageLayout := vk.ImageLayoutShaderReadOnlyOptimal
			usage := track.TextureUsesSampled
			if layoutEntry.Storage != nil {
				descType = vk.DescriptorTypeStorageImage
				imageLayout = vk.ImageLayoutGeneral
				usage = track.TextureUsesStorageWrite
				if layoutEntry.Storage.Access == gputypes.StorageTextureAccessReadOnly {
					usage = track.TextureUsesStorageRead
				}
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				ImageView:   view.handle,
				ImageLayout: imageLayout,
			})
			writes = append(writes, vk.WriteDescriptorSet{
				SType:           vk.StructureTypeWriteDescriptorSet,
				DstSet:          set,
				DstBinding:      entry.Binding,
				DescriptorCount: 1,
				DescriptorType:  descType,
				PImageInfo:      &imageInfos[len(imageInfos)-1],
			})
			resourceUsages = append(resourceUsages, BindGroupResourceUsage{
				Binding:      entry.Binding,
				TextureView:  view,
				TextureUsage: usage,
			})

		default:
			_ = d.descriptorAllocator.Free(pool, set)
			return nil, fmt.Errorf("vulkan: bind group entry %d has unsupported resource type %T", entry.Binding, entry.Resource)
		}
	}

	if len(writes) > 0 {
		vkUpdateDescriptorSets(d.cmds, d.handle, uint32(len(writes)), &writes[0], 0, nil)
	}

	return &BindGroup{
		handle:         set,
		pool:           pool,
		device:         d,
		resourceUsages: resourceUsages,
	}, nil
}

// DestroyBindGroup destroys a bind group.
func (d *Device) DestroyBindGroup(group hal.BindGroup) {
	vkGroup, ok := group.(*BindGroup)
	if !ok || vkGroup == nil {
		return
	}
	if vkGroup.pool != nil && vkGroup.handle != 0 && d.descriptorAllocator != nil {
		_ = d.descriptorAllocator.Free(vkGroup.pool, vkGroup.handle)
	}
	vkGroup.handle = 0
	vkGroup.pool = nil
	vkGroup.device = nil
}

// CreatePipelineLayout creates a pipeline layout.
//
// Push constant ranges are not wired through: the vk package generated
// for this HAL has no VkPushConstantRange binding, so
// PipelineLayoutCreateInfo.PPushConstantRanges is always left nil. Shader
// data that would use push constants must go through a uniform buffer
// bind group instead.
func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: pipeline layout descriptor is nil")
	}

	setLayouts := make([]vk.DescriptorSetLayout, 0, len(desc.BindGroupLayouts))
	for _, bgl := range desc.BindGroupLayouts {
		vkLayout, ok := bgl.(*BindGroupLayout)
		if !ok || vkLayout == nil {
			return nil, fmt.Errorf("vulkan: invalid bind group layout in pipeline layout")
		}
		setLayouts = append(setLayouts, vkLayout.handle)
	}

	createInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: uint32(len(setLayouts)),
	}
	if len(setLayouts) > 0 {
		createInfo.PSetLayouts = &setLayouts[0]
	}

	var handle vk.PipelineLayout
	result := d.cmds.CreatePipelineLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreatePipelineLayout failed: %d", result)
	}

	return &PipelineLayout{handle: handle, device: d}, nil
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout hal.PipelineLayout) {
	vkLayout, ok := layout.(*PipelineLayout)
	if !ok || vkLayout == nil {
		return
	}
	if vkLayout.handle != 0 {
		d.cmds.DestroyPipelineLayout(d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateShaderModule creates a shader module from either pre-compiled
// SPIR-V or WGSL source compiled through naga on the fly.
func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: shader module descriptor is nil")
	}

	spirv := desc.Source.SPIRV
	if len(spirv) == 0 {
		if desc.Source.WGSL == "" {
			return nil, fmt.Errorf("vulkan: shader module descriptor has neither SPIR-V nor WGSL source")
		}
		compiled, err := naga.Compile(desc.Source.WGSL)
		if err != nil {
			return nil, fmt.Errorf("vulkan: failed to compile WGSL to SPIR-V: %w", err)
		}
		if len(compiled)%4 != 0 {
			return nil, fmt.Errorf("vulkan: compiled SPIR-V is not a multiple of 4 bytes")
		}
		spirv = make([]uint32, len(compiled)/4)
		for i := range spirv {
			spirv[i] = binary.LittleEndian.Uint32(compiled[4*i:])
		}
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(spirv) * 4),
		PCode:    &spirv[0],
	}

	var handle vk.ShaderModule
	result := d.cmds.CreateShaderModule(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateShaderModule failed: %d", result)
	}

	return &ShaderModule{handle: handle, device: d}, nil
}

// DestroyShaderModule destroys a shader module.
func (d *Device) DestroyShaderModule(module hal.ShaderModule) {
	vkModule, ok := module.(*ShaderModule)
	if !ok || vkModule == nil {
		return
	}
	if vkModule.handle != 0 {
		d.cmds.DestroyShaderModule(d.handle, vkModule.handle, nil)
		vkModule.handle = 0
	}
	vkModule.device = nil
}

// CreateRenderPipeline, DestroyRenderPipeline, CreateComputePipeline, and
// DestroyComputePipeline are implemented in pipeline.go.

// CreateCommandEncoder creates a command encoder.
func (d *Device) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	// Ensure command pool exists
	if d.commandPool == 0 {
		if err := d.initCommandPool(); err != nil {
			return nil, err
		}
	}

	// Allocate command buffer
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}

	var cmdBuffer vk.CommandBuffer
	result := vkAllocateCommandBuffers(d.cmds, d.handle, &allocInfo, &cmdBuffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", result)
	}

	pool := &CommandPool{
		handle: d.commandPool,
		device: d,
	}

	return &CommandEncoder{
		device:    d,
		pool:      pool,
		cmdBuffer: cmdBuffer,
		label:     desc.Label,
	}, nil
}

// initCommandPool initializes the device command pool.
func (d *Device) initCommandPool() error {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	result := vkCreateCommandPool(d.cmds, d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", result)
	}

	d.commandPool = pool
	return nil
}

// CreateFence creates a device-wide synchronization fence, preferring a
// VK_KHR_timeline_semaphore and falling back to a pooled binary VkFence
// (VK-IMPL-003) when the driver lacks timeline semaphore support. This is
// distinct from fence_cache.Fence, the internal per-submission pooled
// fence used for resource-lifetime tracking (see fence.go's note).
func (d *Device) CreateFence() (hal.Fence, error) {
	f, err := initTimelineFence(d.cmds, d.handle)
	if err != nil {
		f = initBinaryFence()
	}
	f.cmds = d.cmds
	f.device = d.handle
	return f, nil
}

// DestroyFence destroys a fence.
func (d *Device) DestroyFence(fence hal.Fence) {
	if fence == nil {
		return
	}
	fence.Destroy()
}

// Wait waits for a fence to reach the specified value.
func (d *Device) Wait(fence hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	vkFence, ok := fence.(*deviceFence)
	if !ok || vkFence == nil {
		return false, fmt.Errorf("vulkan: invalid fence type")
	}

	timeoutNs := uint64(timeout.Nanoseconds())
	if timeout < 0 {
		timeoutNs = ^uint64(0)
	}

	err := vkFence.waitForValue(d.cmds, d.handle, value, timeoutNs)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, hal.ErrDeviceLost) {
		return false, err
	}
	if strings.Contains(err.Error(), "timed out") {
		return false, nil
	}
	return false, err
}

// Destroy releases the device.
func (d *Device) Destroy() {
	if d.frames != nil {
		d.frames.Destroy()
		d.frames = nil
	}

	if d.descriptorAllocator != nil {
		d.descriptorAllocator.Destroy()
		d.descriptorAllocator = nil
	}

	if d.fenceCache != nil {
		d.fenceCache.Destroy()
		d.fenceCache = nil
	}

	if d.commandPool != 0 {
		vkDestroyCommandPool(d.cmds, d.handle, d.commandPool, nil)
		d.commandPool = 0
	}

	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}

	if d.handle != 0 {
		vkDestroyDevice(d.cmds, d.handle, nil)
		d.handle = 0
	}
}

// Vulkan function wrappers delegating to the loaded command table.

func vkDestroyDevice(cmds *vk.Commands, device vk.Device, allocator unsafe.Pointer) {
	cmds.DestroyDevice(device, nil)
}

func vkCreateCommandPool(cmds *vk.Commands, device vk.Device, createInfo *vk.CommandPoolCreateInfo, allocator unsafe.Pointer, pool *vk.CommandPool) vk.Result {
	return cmds.CreateCommandPool(device, createInfo, nil, pool)
}

func vkDestroyCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, allocator unsafe.Pointer) {
	cmds.DestroyCommandPool(device, pool, nil)
}

func vkAllocateCommandBuffers(cmds *vk.Commands, device vk.Device, allocInfo *vk.CommandBufferAllocateInfo, cmdBuffers *vk.CommandBuffer) vk.Result {
	return cmds.AllocateCommandBuffers(device, allocInfo, cmdBuffers)
}
