// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"unsafe"

	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/driftgpu/webgpu/types"
)

// Queue implements hal.Queue for Vulkan.
type Queue struct {
	handle      vk.Queue
	device      *Device
	familyIndex uint32

	// pendingWrites accumulates WriteBuffer/WriteTexture staging copies
	// not yet flushed into a presubmit command buffer (§4.7 step 1).
	pendingWrites []pendingWrite
}

// pendingWrite is one staged host→device copy queued by WriteBuffer or
// WriteTexture, to be replayed by the presubmit encoder at the next Submit.
type pendingWrite struct {
	staging *Buffer

	// Exactly one of targetBuffer/targetTexture is set.
	targetBuffer  *Buffer
	bufferRegion  vk.BufferCopy
	targetTexture *Texture
	imageRegion   vk.BufferImageCopy
}

// Submit submits command buffers to the GPU, implementing the submit
// engine described by §4.7: it finalizes any pending WriteBuffer/
// WriteTexture staging copies into a hidden presubmit command buffer,
// synthesizes the barriers needed between every command buffer in the
// batch, submits the interleaved sequence with this frame's sync
// semaphores, updates cached texture layouts and buffer write fences, and
// arranges for the presubmit staging buffers to be destroyed once the
// submission completes.
func (q *Queue) Submit(commandBuffers []hal.CommandBuffer, fence hal.Fence, fenceValue uint64) error {
	d := q.device
	slot := d.frames.Current()

	vkCmdBuffers := make([]*CommandBuffer, 0, len(commandBuffers)+1)

	presubmit, stagingToRelease, err := q.flushPresubmit(slot)
	if err != nil {
		return err
	}
	if presubmit != nil {
		vkCmdBuffers = append(vkCmdBuffers, presubmit)
	}

	for _, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers = append(vkCmdBuffers, vkCB)
	}

	if len(vkCmdBuffers) == 0 {
		return nil
	}

	// §4.7 step 2: synthesize inter-buffer barriers.
	barriers, err := q.synthesizeBarriers(slot, vkCmdBuffers)
	if err != nil {
		return err
	}

	submitHandles := make([]vk.CommandBuffer, 0, len(vkCmdBuffers)*2)
	for i, cb := range vkCmdBuffers {
		if barriers[i] != 0 {
			submitHandles = append(submitHandles, barriers[i])
		}
		submitHandles = append(submitHandles, cb.handle)
	}

	// §4.7 step 3: wait on the previous submit's chain semaphore within
	// this frame, if any, and signal this frame's chain semaphore so a
	// later SubmitForPresent (or the next Submit) picks up the
	// dependency.
	var waitSemaphores []vk.Semaphore
	var waitStages []vk.PipelineStageFlags
	if slot.chainSignalled {
		waitSemaphores = append(waitSemaphores, slot.finalTransitionSemaphore)
		waitStages = append(waitStages, vk.PipelineStageFlags(vk.PipelineStageAllCommandsBit))
	}
	signalSemaphores := []vk.Semaphore{slot.finalTransitionSemaphore}

	if err := q.submit(submitHandles, waitSemaphores, waitStages, signalSemaphores, fence, fenceValue); err != nil {
		return err
	}
	slot.chainSignalled = true

	q.finishSubmit(vkCmdBuffers, stagingToRelease)
	return nil
}

// SubmitForPresent submits command buffers with swapchain synchronization,
// chaining in any work this frame already submitted via Submit so the
// present wait sees it.
func (q *Queue) SubmitForPresent(commandBuffers []hal.CommandBuffer, swapchain *Swapchain) error {
	slot := q.device.frames.Current()

	vkCmdBuffers := make([]*CommandBuffer, 0, len(commandBuffers))
	for _, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers = append(vkCmdBuffers, vkCB)
	}

	barriers, err := q.synthesizeBarriers(slot, vkCmdBuffers)
	if err != nil {
		return err
	}

	submitHandles := make([]vk.CommandBuffer, 0, len(vkCmdBuffers)*2)
	for i, cb := range vkCmdBuffers {
		if barriers[i] != 0 {
			submitHandles = append(submitHandles, barriers[i])
		}
		submitHandles = append(submitHandles, cb.handle)
	}
	if len(submitHandles) == 0 {
		return nil
	}

	waitSemaphores := []vk.Semaphore{swapchain.imageAvailable}
	waitStages := []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)}
	if slot.chainSignalled {
		waitSemaphores = append(waitSemaphores, slot.finalTransitionSemaphore)
		waitStages = append(waitStages, vk.PipelineStageFlags(vk.PipelineStageAllCommandsBit))
	}
	signalSemaphores := []vk.Semaphore{swapchain.renderFinished}

	if err := q.submit(submitHandles, waitSemaphores, waitStages, signalSemaphores, nil, 0); err != nil {
		return err
	}
	slot.chainSignalled = false

	q.finishSubmit(vkCmdBuffers, nil)
	return nil
}

// submit performs the actual vkQueueSubmit call shared by Submit and
// SubmitForPresent: it sources the native signal fence (§4.7 step 3),
// either from the frame's per-submission FenceCache entry (for internal
// pool-recycling bookkeeping) chained alongside the caller's hal.Fence
// when one was supplied, and records the submission for frame-slot
// recycling (§4.7 step 7).
func (q *Queue) submit(cmdBuffers []vk.CommandBuffer, waitSemaphores []vk.Semaphore, waitStages []vk.PipelineStageFlags, signalSemaphores []vk.Semaphore, fence hal.Fence, fenceValue uint64) error {
	d := q.device
	slot := d.frames.Current()

	submitFence, err := d.fenceCache.Get()
	if err != nil {
		return fmt.Errorf("vulkan: failed to acquire submit fence: %w", err)
	}

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: uint32(len(cmdBuffers)),
		PCommandBuffers:    &cmdBuffers[0],
	}
	if len(waitSemaphores) > 0 {
		submitInfo.WaitSemaphoreCount = uint32(len(waitSemaphores))
		submitInfo.PWaitSemaphores = &waitSemaphores[0]
		submitInfo.PWaitDstStageMask = &waitStages[0]
	}
	if len(signalSemaphores) > 0 {
		submitInfo.SignalSemaphoreCount = uint32(len(signalSemaphores))
		submitInfo.PSignalSemaphores = &signalSemaphores[0]
	}

	// If the caller supplied a device-wide fence (from Device.CreateFence),
	// chain its timeline semaphore onto this submit's signal list so it
	// advances to fenceValue alongside the internal submit fence. The
	// binary-fallback path has no second native VkFence slot to sign in
	// core Vulkan, so it is instead updated from the submitFence's
	// on-wait-complete callback registered after vkQueueSubmit below.
	var timelineInfo vk.TimelineSemaphoreSubmitInfo
	var waitValues []uint64
	var signalValues []uint64
	var df *deviceFence
	if fence != nil {
		var ok bool
		df, ok = fence.(*deviceFence)
		if !ok {
			return fmt.Errorf("vulkan: fence is not a Vulkan device fence")
		}
		if df.isTimeline {
			signalSemaphores = append(signalSemaphores, df.timelineSemaphore)
			signalValues = make([]uint64, len(signalSemaphores))
			signalValues[len(signalValues)-1] = fenceValue

			// Every binary semaphore entry still needs a (ignored) value
			// slot once VkTimelineSemaphoreSubmitInfo is chained in and
			// waitSemaphoreCount is non-zero.
			if len(waitSemaphores) > 0 {
				waitValues = make([]uint64, len(waitSemaphores))
			}

			timelineInfo = vk.TimelineSemaphoreSubmitInfo{
				SType:                     vk.StructureTypeTimelineSemaphoreSubmitInfo,
				SignalSemaphoreValueCount: uint32(len(signalValues)),
				PSignalSemaphoreValues:    &signalValues[0],
			}
			if len(waitValues) > 0 {
				timelineInfo.WaitSemaphoreValueCount = uint32(len(waitValues))
				timelineInfo.PWaitSemaphoreValues = &waitValues[0]
			}
			submitInfo.PNext = unsafe.Pointer(&timelineInfo)
			submitInfo.SignalSemaphoreCount = uint32(len(signalSemaphores))
			submitInfo.PSignalSemaphores = &signalSemaphores[0]
		}
		df.lastSignaled.Store(fenceValue)
	}

	result := vkQueueSubmit(q, 1, &submitInfo, submitFence.handle)
	if result != vk.Success {
		d.fenceCache.Put(submitFence)
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}
	d.fenceCache.MarkSubmitted(submitFence)

	if fence != nil && df != nil && !df.isTimeline {
		submitFence.AddCallback(func() {
			df.lastCompleted = fenceValue
		})
	}

	slot.pendingFences = append(slot.pendingFences, submitFence)
	return nil
}

// finishSubmit applies §4.7 steps 4-6 once a submission has been queued:
// it updates each touched texture's cached layout and each touched
// buffer's lastUsage from the command buffers just submitted, arranges for
// host-mappable buffers that were written to pick up the new submit fence
// as their latest_fence, and registers a callback that destroys the staging
// buffers once the submit completes.
func (q *Queue) finishSubmit(cmdBuffers []*CommandBuffer, stagingToRelease []*Buffer) {
	slot := q.device.frames.Current()
	submitFence := slot.pendingFences[len(slot.pendingFences)-1]

	for _, cb := range cmdBuffers {
		if cb.usage == nil {
			continue
		}
		for buf, usage := range cb.usage.buffers {
			buf.lastUsage = usage
			if usage&(track.BufferUsesCopyDst|track.BufferUsesStorageWrite|track.BufferUsesQueryResolve) != 0 {
				buf.SetLatestFence(submitFence)
			}
		}
		for tex, usage := range cb.usage.textures {
			tex.lastUsage = usage
			_, _, layout := trackTextureUsesToAccessStageLayout(usage)
			tex.SetCurrentLayout(layout)
		}
	}

	submitFence.AddCallback(func() {
		for _, b := range stagingToRelease {
			b.Destroy()
		}
	})
}

// flushPresubmit implements §4.7 step 1: if WriteBuffer/WriteTexture have
// queued staging copies since the last submit, records them into a single
// hidden command buffer acquired from the frame slot and returns it
// (position 0 of the batch), along with the staging buffers it used so
// the caller can release them once the submission retires.
func (q *Queue) flushPresubmit(slot *frameSlot) (*CommandBuffer, []*Buffer, error) {
	if len(q.pendingWrites) == 0 {
		return nil, nil, nil
	}
	d := q.device

	cmdBuf, err := slot.AcquirePrimary(d)
	if err != nil {
		return nil, nil, fmt.Errorf("vulkan: failed to acquire presubmit command buffer: %w", err)
	}

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}
	if r := vkBeginCommandBuffer(d.cmds, cmdBuf, &beginInfo); r != vk.Success {
		return nil, nil, fmt.Errorf("vulkan: failed to begin presubmit command buffer: %d", r)
	}

	usage := newResourceUsage()
	staging := make([]*Buffer, 0, len(q.pendingWrites))
	for _, w := range q.pendingWrites {
		staging = append(staging, w.staging)
		if w.targetBuffer != nil {
			region := w.bufferRegion
			vkCmdCopyBuffer(d.cmds, cmdBuf, w.staging.handle, w.targetBuffer.handle, 1, &region)
			usage.useBuffer(w.targetBuffer, track.BufferUsesCopyDst)
		} else if w.targetTexture != nil {
			region := w.imageRegion
			vkCmdCopyBufferToImage(d.cmds, cmdBuf, w.staging.handle, w.targetTexture.handle, vk.ImageLayoutTransferDstOptimal, 1, &region)
			usage.useTexture(w.targetTexture, track.TextureUsesCopyDst)
		}
	}
	q.pendingWrites = nil

	if r := vkEndCommandBuffer(d.cmds, cmdBuf); r != vk.Success {
		return nil, nil, fmt.Errorf("vulkan: failed to end presubmit command buffer: %d", r)
	}

	return &CommandBuffer{handle: cmdBuf, usage: usage}, staging, nil
}

// WriteBuffer writes data to a buffer. Already-host-mapped memory is
// written directly; device-local memory is staged via a temporary
// host-visible buffer and replayed as a copy by the next Submit's
// presubmit encoder (§4.7 step 1).
func (q *Queue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || len(data) == 0 {
		return
	}

	if ptr, ok := vkBuffer.MappedPointer(); ok {
		copyToMappedMemory(ptr, offset, data)
		return
	}

	staging, err := q.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "presubmit-write-staging",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageCopySrc | types.BufferUsageMapWrite,
	})
	if err != nil {
		hal.Logger().Error("vulkan: failed to create staging buffer for WriteBuffer", "error", err)
		return
	}
	stagingBuf := staging.(*Buffer)
	ptr, ok := stagingBuf.MappedPointer()
	if !ok {
		stagingBuf.Destroy()
		hal.Logger().Error("vulkan: staging buffer for WriteBuffer is not host-visible")
		return
	}
	copyToMappedMemory(ptr, 0, data)

	q.pendingWrites = append(q.pendingWrites, pendingWrite{
		staging:      stagingBuf,
		targetBuffer: vkBuffer,
		bufferRegion: vk.BufferCopy{SrcOffset: 0, DstOffset: vk.DeviceSize(offset), Size: vk.DeviceSize(len(data))},
	})
}

// WriteTexture writes data to a texture via a staged buffer-to-image copy,
// replayed by the next Submit's presubmit encoder.
func (q *Queue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	if dst == nil || layout == nil || size == nil || len(data) == 0 {
		return
	}
	vkTexture, ok := dst.Texture.(*Texture)
	if !ok {
		return
	}

	staging, err := q.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "presubmit-write-texture-staging",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageCopySrc | types.BufferUsageMapWrite,
	})
	if err != nil {
		hal.Logger().Error("vulkan: failed to create staging buffer for WriteTexture", "error", err)
		return
	}
	stagingBuf := staging.(*Buffer)
	ptr, ok := stagingBuf.MappedPointer()
	if !ok {
		stagingBuf.Destroy()
		hal.Logger().Error("vulkan: staging buffer for WriteTexture is not host-visible")
		return
	}
	copyToMappedMemory(ptr, 0, data)

	region := convertBufferImageCopyRegions([]hal.BufferTextureCopy{{
		BufferLayout: *layout,
		TextureBase:  *dst,
		Size:         *size,
	}})[0]

	q.pendingWrites = append(q.pendingWrites, pendingWrite{
		staging:       stagingBuf,
		targetTexture: vkTexture,
		imageRegion:   region,
	})
}

// Present presents a surface texture to the screen.
func (q *Queue) Present(surface hal.Surface, texture hal.SurfaceTexture) error {
	vkSurface, ok := surface.(*Surface)
	if !ok {
		return fmt.Errorf("vulkan: surface is not a Vulkan surface")
	}

	if vkSurface.swapchain == nil {
		return fmt.Errorf("vulkan: surface not configured")
	}

	return vkSurface.swapchain.present(q)
}

// GetTimestampPeriod returns the timestamp period in nanoseconds, queried
// from the physical device's limits.
func (q *Queue) GetTimestampPeriod() float32 {
	return q.device.timestampPeriod
}

// Vulkan function wrapper delegating to the loaded command table.

func vkQueueSubmit(q *Queue, submitCount uint32, submits *vk.SubmitInfo, fence vk.Fence) vk.Result {
	return q.device.cmds.QueueSubmit(q.handle, submitCount, submits, fence)
}
