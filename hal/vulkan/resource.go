// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/hal/vulkan/memory"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/driftgpu/webgpu/types"
	"github.com/gogpu/gputypes"
)

// MapState is the lifecycle state of a Buffer's CPU mapping (invariant 2,
// spec §3 "Buffer").
type MapState int

const (
	MapStateUnmapped MapState = iota
	MapStatePending           // mapAsync requested, waiting on latestFence
	MapStateMapped
)

// Buffer implements hal.Buffer for Vulkan.
type Buffer struct {
	handle vk.Buffer
	memory *memory.MemoryBlock
	size   uint64
	usage  types.BufferUsage
	device *Device

	mapState    MapState
	mappedRange []byte // Valid while mapState == MapStateMapped.

	// latestFence is a reference to the most recent submission
	// fence that wrote to this buffer's host-visible memory. A map-read
	// must wait on it before returning a pointer (invariant 2).
	latestFence *Fence

	// trackerIndex is this buffer's slot in the device's track.BufferTracker.
	trackerIndex track.TrackerIndex

	// lastUsage is the usage this buffer was put to by the most recently
	// submitted command buffer that referenced it; Queue.Submit seeds its
	// barrier-synthesis "seen" state from this on first encounter (§4.7
	// step 2) and updates it after each submit.
	lastUsage track.BufferUses
}

// TrackerIndex returns the buffer's slot in the device's BufferTracker.
func (b *Buffer) TrackerIndex() track.TrackerIndex { return b.trackerIndex }

// Destroy releases the buffer.
func (b *Buffer) Destroy() {
	if b.device != nil {
		b.device.DestroyBuffer(b)
	}
}

// Handle returns the VkBuffer handle.
func (b *Buffer) Handle() vk.Buffer {
	return b.handle
}

// SetLatestFence replaces the buffer's tracked write fence (§4.7 item 5).
// The previous fence is only overwritten, not released.
func (b *Buffer) SetLatestFence(f *Fence) {
	b.latestFence = f
}

// LatestFence returns the fence a pending map must wait on, or nil if the
// buffer was never written by a submission.
func (b *Buffer) LatestFence() *Fence {
	return b.latestFence
}

// MapState returns the buffer's current mapping state.
func (b *Buffer) MapState() MapState { return b.mapState }

// SetMapState transitions the buffer's mapping state.
func (b *Buffer) SetMapState(s MapState) { b.mapState = s }

// MappedRange returns the currently mapped byte range, or nil if unmapped.
func (b *Buffer) MappedRange() []byte { return b.mappedRange }

// SetMappedRange records the host pointer range returned by the native map.
func (b *Buffer) SetMappedRange(r []byte) { b.mappedRange = r }

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return b.size
}

// MappedPointer returns the host pointer to this buffer's data, offset for
// its position within the underlying VkDeviceMemory allocation, and true
// if the buffer's memory is currently mapped (host-visible buffers are
// mapped persistently at creation; see Device.CreateBuffer).
func (b *Buffer) MappedPointer() (uintptr, bool) {
	if b.memory == nil || b.memory.MappedPtr == 0 {
		return 0, false
	}
	return b.memory.MappedPtr + uintptr(b.memory.Offset), true
}

// NativeHandle returns the VkBuffer handle as a uintptr, used to resolve a
// gputypes.BufferBinding back to this buffer when building a bind group.
func (b *Buffer) NativeHandle() uintptr {
	return uintptr(b.handle)
}

// ViewKey is the hashable projection of a TextureViewDescriptor used to
// key a Texture's view cache (invariant 7 / testable property 6: two
// requests with an equal descriptor must resolve to the same view).
type ViewKey struct {
	Format          types.TextureFormat
	Dimension       types.TextureViewDimension
	Aspect          types.TextureAspect
	BaseMipLevel    uint32
	MipLevelCount   uint32
	BaseArrayLayer  uint32
	ArrayLayerCount uint32
}

// Texture implements hal.Texture for Vulkan.
type Texture struct {
	handle     vk.Image
	memory     *memory.MemoryBlock
	size       Extent3D
	format     types.TextureFormat
	usage      types.TextureUsage
	mipLevels  uint32
	samples    uint32
	dimension  types.TextureDimension
	device     *Device
	isExternal bool // True if memory is not owned by us (swapchain images)

	// currentLayout is updated only at queue-submit time from the
	// tracker's last-known layout (invariant 3) — never during recording.
	currentLayout vk.ImageLayout

	// views caches TextureView objects by descriptor so that repeated
	// create_view calls with an equal descriptor share identity
	// (invariant 7).
	views map[ViewKey]*TextureView

	// trackerIndex is this texture's slot in the device's track.TextureTracker.
	trackerIndex track.TrackerIndex

	// lastUsage mirrors Buffer.lastUsage for textures; currentLayout is
	// kept as the VkImageLayout derived from it at the time it was set.
	lastUsage track.TextureUses
}

// TrackerIndex returns the texture's slot in the device's TextureTracker.
func (t *Texture) TrackerIndex() track.TrackerIndex { return t.trackerIndex }

// Extent3D represents 3D dimensions.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Destroy releases the texture.
func (t *Texture) Destroy() {
	if t.device != nil {
		t.device.DestroyTexture(t)
	}
}

// Handle returns the VkImage handle.
func (t *Texture) Handle() vk.Image {
	return t.handle
}

// CurrentLayout returns the texture's cached layout as of the last queue
// submit that touched it.
func (t *Texture) CurrentLayout() vk.ImageLayout { return t.currentLayout }

// SetCurrentLayout updates the cached layout. Only the submit engine
// (queue.go) calls this, from a command buffer tracker's last_layout
// (invariant 3).
func (t *Texture) SetCurrentLayout(l vk.ImageLayout) { t.currentLayout = l }

// GetOrCreateView returns the cached view for key, creating and caching
// one via create if absent.
func (t *Texture) GetOrCreateView(key ViewKey, create func() (*TextureView, error)) (*TextureView, error) {
	if t.views == nil {
		t.views = make(map[ViewKey]*TextureView)
	}
	if v, ok := t.views[key]; ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return nil, err
	}
	t.views[key] = v
	return v, nil
}

// forgetView removes a view from the cache, called from TextureView.Destroy.
func (t *Texture) forgetView(key ViewKey) {
	delete(t.views, key)
}

// TextureView implements hal.TextureView for Vulkan.
type TextureView struct {
	handle  vk.ImageView
	texture *Texture
	key     ViewKey
	device  *Device
}

// Destroy releases the texture view and evicts it from its texture's view
// cache.
func (v *TextureView) Destroy() {
	if v.texture != nil {
		v.texture.forgetView(v.key)
	}
	if v.device != nil {
		v.device.DestroyTextureView(v)
	}
}

// Handle returns the VkImageView handle.
func (v *TextureView) Handle() vk.ImageView {
	return v.handle
}

// NativeHandle returns the VkImageView handle as a uintptr, used to resolve
// a gputypes.TextureViewBinding back to this view when building a bind group.
func (v *TextureView) NativeHandle() uintptr {
	return uintptr(v.handle)
}

// Sampler implements hal.Sampler for Vulkan.
type Sampler struct {
	handle vk.Sampler
	device *Device
}

// Destroy releases the sampler.
func (s *Sampler) Destroy() {
	if s.device != nil {
		s.device.DestroySampler(s)
	}
}

// Handle returns the VkSampler handle.
func (s *Sampler) Handle() vk.Sampler {
	return s.handle
}

// NativeHandle returns the VkSampler handle as a uintptr, used to resolve
// a gputypes.SamplerBinding back to this sampler when building a bind group.
func (s *Sampler) NativeHandle() uintptr {
	return uintptr(s.handle)
}

// ShaderModule implements hal.ShaderModule for Vulkan.
type ShaderModule struct {
	handle vk.ShaderModule
	device *Device
}

// Destroy releases the shader module.
func (m *ShaderModule) Destroy() {
	if m.device != nil {
		m.device.DestroyShaderModule(m)
	}
}

// Handle returns the VkShaderModule handle.
func (m *ShaderModule) Handle() vk.ShaderModule {
	return m.handle
}

// BindGroupLayout implements hal.BindGroupLayout for Vulkan.
type BindGroupLayout struct {
	handle  vk.DescriptorSetLayout
	counts  DescriptorCounts              // Descriptor counts for pool allocation
	entries []gputypes.BindGroupLayoutEntry // Keyed by Binding; used to resolve resource usage at bind-group creation
	device  *Device
}

// Destroy releases the bind group layout.
func (l *BindGroupLayout) Destroy() {
	if l.device != nil {
		l.device.DestroyBindGroupLayout(l)
	}
}

// Handle returns the VkDescriptorSetLayout handle.
func (l *BindGroupLayout) Handle() vk.DescriptorSetLayout {
	return l.handle
}

// Counts returns the descriptor counts for this layout.
func (l *BindGroupLayout) Counts() DescriptorCounts {
	return l.counts
}

// Entries returns the layout entries, keyed by Binding number, that this
// layout was created from.
func (l *BindGroupLayout) Entries() []gputypes.BindGroupLayoutEntry {
	return l.entries
}

// BindGroupResourceUsage records the usage a single bound resource must
// contribute to a command buffer's BufferUsageScope/TextureUsageScope when
// the bind group is used in a draw or dispatch (§4.5).
type BindGroupResourceUsage struct {
	Binding    uint32
	Buffer     *Buffer      // Set if the binding resolves to a buffer.
	TextureView *TextureView // Set if the binding resolves to a texture view.
	BufferUsage  track.BufferUses
	TextureUsage track.TextureUses
}

// BindGroup implements hal.BindGroup for Vulkan.
type BindGroup struct {
	handle vk.DescriptorSet
	pool   *DescriptorPool // Reference to the pool for freeing
	device *Device

	// resourceUsages is the resource-usage set a render/compute pass must
	// fold into its usage scope when this bind group is bound (§4.5,
	// testable property 2: a bind group is a first-class entity owning
	// both a descriptor set and a resource-usage set).
	resourceUsages []BindGroupResourceUsage
}

// ResourceUsages returns the resource-usage set owned by this bind group.
func (g *BindGroup) ResourceUsages() []BindGroupResourceUsage {
	return g.resourceUsages
}

// Destroy releases the bind group.
func (g *BindGroup) Destroy() {
	if g.device != nil {
		g.device.DestroyBindGroup(g)
	}
}

// Handle returns the VkDescriptorSet handle.
func (g *BindGroup) Handle() vk.DescriptorSet {
	return g.handle
}

// PipelineLayout implements hal.PipelineLayout for Vulkan.
type PipelineLayout struct {
	handle vk.PipelineLayout
	device *Device
}

// Destroy releases the pipeline layout.
func (l *PipelineLayout) Destroy() {
	if l.device != nil {
		l.device.DestroyPipelineLayout(l)
	}
}

// Handle returns the VkPipelineLayout handle.
func (l *PipelineLayout) Handle() vk.PipelineLayout {
	return l.handle
}

// RenderPipeline implements hal.RenderPipeline for Vulkan.
type RenderPipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

// Destroy releases the render pipeline.
func (p *RenderPipeline) Destroy() {
	if p.device != nil {
		p.device.DestroyRenderPipeline(p)
	}
}

// ComputePipeline implements hal.ComputePipeline for Vulkan.
type ComputePipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

// Destroy releases the compute pipeline.
func (p *ComputePipeline) Destroy() {
	if p.device != nil {
		p.device.DestroyComputePipeline(p)
	}
}

// Note: hal.Fence is backed by deviceFence (fence.go) — a device-wide
// timeline semaphore (or binary-fence-pool fallback) that the public API
// waits on. fence_cache.go's Fence/FenceCache is a separate, internal
// per-submission pooled binary fence used for resource-lifetime tracking
// (e.g. Buffer.latestFence, the per-frame cache's final-transition fence) —
// it never backs hal.Fence itself.
