// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/driftgpu/webgpu/hal/vulkan/vk"
)

// framesInFlight is the number of per-frame cache slots (§4.6). Two lets
// the CPU record frame N+1 while the GPU still drains frame N.
const framesInFlight = 2

// bindGroupCacheEntry is one pooled allocation a frame slot can hand back
// to CreateBindGroup instead of going through the device-wide allocator,
// keyed by the layout that produced it.
type bindGroupCacheEntry struct {
	set  vk.DescriptorSet
	pool *DescriptorPool
}

// frameSlot is one of framesInFlight per-frame caches (§4.6): a command
// pool, its recycled primary/secondary command buffers, a bind-group
// cache keyed by layout, and the fence/semaphore pair that signals when
// the frame's final transition has retired.
type frameSlot struct {
	commandPool vk.CommandPool

	primaryBuffers   []vk.CommandBuffer
	secondaryBuffers []vk.CommandBuffer
	nextPrimary      int
	nextSecondary    int

	bindGroups map[*BindGroupLayout][]bindGroupCacheEntry

	finalTransitionFence     *Fence
	finalTransitionCmdBuffer vk.CommandBuffer
	finalTransitionSemaphore vk.Semaphore

	// chainSignalled is set once a Submit within this frame has signalled
	// finalTransitionSemaphore, so the next Submit or SubmitForPresent in
	// the same frame knows to wait on it before running.
	chainSignalled bool

	// pendingFences holds one *Fence per real vkQueueSubmit issued against
	// this slot since it was last acquired (§4.7 step 7). AcquireNext
	// drains these before resetting the slot's command pool, so recycling
	// a frame's command buffers never races the GPU still executing them.
	pendingFences []*Fence

	// uploadBuffers pools recently-unused staging buffers so repeated
	// small WriteBuffer calls don't re-allocate GPU memory every frame.
	uploadBuffers []*Buffer
}

// frameCache is the round-robin collection of frameSlot caches described
// by spec.md §4.6.
type frameCache struct {
	device *Device
	slots  [framesInFlight]*frameSlot
	index  int
}

// newFrameCache allocates the per-frame command pools and final-transition
// semaphores for device d. The fence cache (d.fenceCache) must already be
// initialized.
func newFrameCache(d *Device) (*frameCache, error) {
	fc := &frameCache{device: d}

	for i := range fc.slots {
		slot, err := newFrameSlot(d)
		if err != nil {
			fc.destroyUpTo(i)
			return nil, fmt.Errorf("vulkan: failed to create frame slot %d: %w", i, err)
		}
		fc.slots[i] = slot
	}

	return fc, nil
}

func newFrameSlot(d *Device) (*frameSlot, error) {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	result := vkCreateCommandPool(d.cmds, d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", result)
	}

	semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	var sem vk.Semaphore
	result = d.cmds.CreateSemaphore(d.handle, &semInfo, nil, &sem)
	if result != vk.Success {
		vkDestroyCommandPool(d.cmds, d.handle, pool, nil)
		return nil, fmt.Errorf("vulkan: vkCreateSemaphore failed: %d", result)
	}

	fence, err := d.fenceCache.Get()
	if err != nil {
		d.cmds.DestroySemaphore(d.handle, sem, nil)
		vkDestroyCommandPool(d.cmds, d.handle, pool, nil)
		return nil, fmt.Errorf("vulkan: failed to get final-transition fence: %w", err)
	}

	return &frameSlot{
		commandPool:              pool,
		bindGroups:               make(map[*BindGroupLayout][]bindGroupCacheEntry),
		finalTransitionFence:     fence,
		finalTransitionSemaphore: sem,
	}, nil
}

// AcquireNext advances the round-robin index and returns the now-current
// slot, after waiting for every submission fence it accumulated last time
// it was current (§4.7 step 7) so the command pool it is about to reset is
// safe to reuse. finalTransitionFence is reserved separately for the
// empty-submit anchor issued when a frame presents without having
// recorded any user command buffers.
func (fc *frameCache) AcquireNext(timeoutNs uint64) (*frameSlot, error) {
	fc.index = (fc.index + 1) % framesInFlight
	slot := fc.slots[fc.index]

	if len(slot.pendingFences) > 0 {
		if err := fc.device.fenceCache.WaitMany(slot.pendingFences, timeoutNs); err != nil {
			return nil, fmt.Errorf("vulkan: timed out waiting for frame slot: %w", err)
		}
		for _, f := range slot.pendingFences {
			fc.device.fenceCache.Put(f)
		}
		slot.pendingFences = slot.pendingFences[:0]
	}
	if slot.finalTransitionFence.State() == FenceInUse {
		if err := fc.device.fenceCache.Wait(slot.finalTransitionFence, timeoutNs); err != nil {
			return nil, fmt.Errorf("vulkan: timed out waiting for frame slot: %w", err)
		}
		// finalTransitionFence is reused in place rather than returned to
		// the cache (Put), so it must be reset here to be unsignaled
		// before its next vkQueueSubmit.
		_ = fc.device.cmds.ResetFences(fc.device.handle, 1, &slot.finalTransitionFence.handle)
		slot.finalTransitionFence.state = FenceReset
	}
	slot.chainSignalled = false

	result := vkResetCommandPool(fc.device.cmds, fc.device.handle, slot.commandPool, 0)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkResetCommandPool failed: %d", result)
	}
	slot.nextPrimary = 0
	slot.nextSecondary = 0

	return slot, nil
}

// EnsurePresentAnchor records and submits an empty command buffer signalling
// finalTransitionFence/finalTransitionSemaphore when a frame is about to
// present without having submitted any user command buffers of its own,
// so SubmitForPresent still has a semaphore to wait on.
func (fc *frameCache) EnsurePresentAnchor(q *Queue) error {
	slot := fc.Current()
	if slot.chainSignalled {
		return nil
	}

	d := fc.device
	if slot.finalTransitionCmdBuffer == 0 {
		buf, err := slot.AcquirePrimary(d)
		if err != nil {
			return fmt.Errorf("vulkan: failed to acquire present-anchor command buffer: %w", err)
		}
		slot.finalTransitionCmdBuffer = buf
	}

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}
	if r := vkBeginCommandBuffer(d.cmds, slot.finalTransitionCmdBuffer, &beginInfo); r != vk.Success {
		return fmt.Errorf("vulkan: failed to begin present-anchor command buffer: %d", r)
	}
	if r := vkEndCommandBuffer(d.cmds, slot.finalTransitionCmdBuffer); r != vk.Success {
		return fmt.Errorf("vulkan: failed to end present-anchor command buffer: %d", r)
	}

	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		CommandBufferCount:   1,
		PCommandBuffers:      &slot.finalTransitionCmdBuffer,
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    &slot.finalTransitionSemaphore,
	}
	result := vkQueueSubmit(q, 1, &submitInfo, slot.finalTransitionFence.handle)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit (present anchor) failed: %d", result)
	}
	d.fenceCache.MarkSubmitted(slot.finalTransitionFence)
	slot.chainSignalled = true
	return nil
}

// Current returns the presently active slot without advancing.
func (fc *frameCache) Current() *frameSlot {
	return fc.slots[fc.index]
}

// AcquirePrimary returns a reusable primary command buffer from the slot,
// allocating a new one only when the pool of recycled buffers is
// exhausted for this frame.
func (s *frameSlot) AcquirePrimary(d *Device) (vk.CommandBuffer, error) {
	if s.nextPrimary < len(s.primaryBuffers) {
		buf := s.primaryBuffers[s.nextPrimary]
		s.nextPrimary++
		return buf, nil
	}

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        s.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	var buf vk.CommandBuffer
	result := vkAllocateCommandBuffers(d.cmds, d.handle, &allocInfo, &buf)
	if result != vk.Success {
		return 0, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", result)
	}

	s.primaryBuffers = append(s.primaryBuffers, buf)
	s.nextPrimary++
	return buf, nil
}

// AcquireSecondary returns a reusable secondary command buffer, used for
// render-bundle materialization (§4.4).
func (s *frameSlot) AcquireSecondary(d *Device) (vk.CommandBuffer, error) {
	if s.nextSecondary < len(s.secondaryBuffers) {
		buf := s.secondaryBuffers[s.nextSecondary]
		s.nextSecondary++
		return buf, nil
	}

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        s.commandPool,
		Level:              vk.CommandBufferLevelSecondary,
		CommandBufferCount: 1,
	}
	var buf vk.CommandBuffer
	result := vkAllocateCommandBuffers(d.cmds, d.handle, &allocInfo, &buf)
	if result != vk.Success {
		return 0, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", result)
	}

	s.secondaryBuffers = append(s.secondaryBuffers, buf)
	s.nextSecondary++
	return buf, nil
}

// AcquireBindGroup pops a cached {set, pool} pair allocated from layout in
// a previous frame, if one is free, avoiding a descriptor-pool round trip
// for bind groups that are rebuilt every frame with the same layout.
func (s *frameSlot) AcquireBindGroup(layout *BindGroupLayout) (vk.DescriptorSet, *DescriptorPool, bool) {
	entries := s.bindGroups[layout]
	if len(entries) == 0 {
		return 0, nil, false
	}
	last := entries[len(entries)-1]
	s.bindGroups[layout] = entries[:len(entries)-1]
	return last.set, last.pool, true
}

// ReleaseBindGroup returns a {set, pool} pair to the slot's cache instead
// of freeing it back to the device allocator, for reuse next time this
// frame slot comes around.
func (s *frameSlot) ReleaseBindGroup(layout *BindGroupLayout, set vk.DescriptorSet, pool *DescriptorPool) {
	if s.bindGroups == nil {
		s.bindGroups = make(map[*BindGroupLayout][]bindGroupCacheEntry)
	}
	s.bindGroups[layout] = append(s.bindGroups[layout], bindGroupCacheEntry{set: set, pool: pool})
}

// AcquireUploadBuffer pops a pooled staging buffer of at least minSize
// bytes, if one is free.
func (s *frameSlot) AcquireUploadBuffer(minSize uint64) *Buffer {
	for i, b := range s.uploadBuffers {
		if b.Size() >= minSize {
			s.uploadBuffers = append(s.uploadBuffers[:i], s.uploadBuffers[i+1:]...)
			return b
		}
	}
	return nil
}

// ReleaseUploadBuffer returns a staging buffer to the slot's pool.
func (s *frameSlot) ReleaseUploadBuffer(b *Buffer) {
	s.uploadBuffers = append(s.uploadBuffers, b)
}

func (fc *frameCache) destroyUpTo(n int) {
	for i := 0; i < n; i++ {
		fc.slots[i].destroy(fc.device)
	}
}

// Destroy releases every frame slot's command pool, semaphore, and
// upload-buffer pool.
func (fc *frameCache) Destroy() {
	for _, slot := range fc.slots {
		if slot != nil {
			slot.destroy(fc.device)
		}
	}
}

func (s *frameSlot) destroy(d *Device) {
	for _, b := range s.uploadBuffers {
		b.Destroy()
	}
	s.uploadBuffers = nil

	if s.finalTransitionSemaphore != 0 {
		d.cmds.DestroySemaphore(d.handle, s.finalTransitionSemaphore, nil)
		s.finalTransitionSemaphore = 0
	}
	if s.finalTransitionFence != nil {
		s.finalTransitionFence.Destroy()
		s.finalTransitionFence = nil
	}
	if s.commandPool != 0 {
		vkDestroyCommandPool(d.cmds, d.handle, s.commandPool, nil)
		s.commandPool = 0
	}
}
