// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/driftgpu/webgpu/types"
)

// CommandPool manages command buffer allocation.
type CommandPool struct {
	handle vk.CommandPool
	device *Device
}

// CommandBuffer holds a recorded Vulkan command buffer.
type CommandBuffer struct {
	handle vk.CommandBuffer
	pool   *CommandPool

	// usage is the resource-usage set accumulated while this buffer was
	// recorded (nil if nothing was tracked), consumed by Queue.Submit for
	// barrier synthesis and cached-state updates (§4.7).
	usage *resourceUsage
}

// Destroy releases the command buffer resources.
func (c *CommandBuffer) Destroy() {
	// Command buffers are freed when the pool is destroyed or reset
	c.handle = 0
}

// CommandEncoder implements hal.CommandEncoder for Vulkan.
type CommandEncoder struct {
	device      *Device
	pool        *CommandPool
	cmdBuffer   vk.CommandBuffer
	label       string
	isRecording bool

	// usage accumulates the resources this recording touches; see
	// resourceUsage and CommandEncoder.useBuffer/useTexture/useBindGroup.
	usage *resourceUsage
}

// BeginEncoding begins command recording.
func (e *CommandEncoder) BeginEncoding(label string) error {
	e.label = label

	// Begin command buffer
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
	}

	result := vkBeginCommandBuffer(e.device.cmds, e.cmdBuffer, &beginInfo)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkBeginCommandBuffer failed: %d", result)
	}

	e.isRecording = true
	e.usage = nil
	return nil
}

// EndEncoding finishes command recording and returns a command buffer.
func (e *CommandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if !e.isRecording {
		return nil, fmt.Errorf("vulkan: command encoder is not recording")
	}

	result := vkEndCommandBuffer(e.device.cmds, e.cmdBuffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkEndCommandBuffer failed: %d", result)
	}

	e.isRecording = false

	cb := &CommandBuffer{
		handle: e.cmdBuffer,
		pool:   e.pool,
		usage:  e.usage,
	}
	e.usage = nil
	return cb, nil
}

// DiscardEncoding discards the encoder.
func (e *CommandEncoder) DiscardEncoding() {
	if e.isRecording {
		// End the command buffer even though we're discarding it
		_ = vkEndCommandBuffer(e.device.cmds, e.cmdBuffer)
		e.isRecording = false
	}
}

// ResetAll resets command buffers for reuse.
func (e *CommandEncoder) ResetAll(commandBuffers []hal.CommandBuffer) {
	// Reset the pool instead of individual buffers for better performance
	if e.pool != nil {
		vkResetCommandPool(e.device.cmds, e.device.handle, e.pool.handle, 0)
	}
	_ = commandBuffers // Individual buffers are reset with the pool
}

// TransitionBuffers transitions buffer states for synchronization.
func (e *CommandEncoder) TransitionBuffers(barriers []hal.BufferBarrier) {
	if !e.isRecording || len(barriers) == 0 {
		return
	}

	// Convert to Vulkan buffer memory barriers, accumulating the union of
	// every barrier's src/dst stage so the single vkCmdPipelineBarrier call
	// below only waits on the stages actually involved (instead of
	// all-commands, which serializes the whole pipeline for every barrier).
	var srcStageMask, dstStageMask vk.PipelineStageFlags
	bufferBarriers := make([]vk.BufferMemoryBarrier, len(barriers))
	for i, b := range barriers {
		buf, ok := b.Buffer.(*Buffer)
		if !ok {
			continue
		}

		srcAccess, srcStage := bufferUsageToAccessAndStage(b.Usage.OldUsage)
		dstAccess, dstStage := bufferUsageToAccessAndStage(b.Usage.NewUsage)
		srcStageMask |= srcStage
		dstStageMask |= dstStage

		bufferBarriers[i] = vk.BufferMemoryBarrier{
			SType:               vk.StructureTypeBufferMemoryBarrier,
			SrcAccessMask:       srcAccess,
			DstAccessMask:       dstAccess,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Buffer:              buf.handle,
			Offset:              0,
			Size:                vk.DeviceSize(vk.WholeSize),
		}
	}

	if srcStageMask == 0 {
		srcStageMask = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}
	if dstStageMask == 0 {
		dstStageMask = vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit)
	}

	// Use vkCmdPipelineBarrier with buffer memory barriers
	vkCmdPipelineBarrier(
		e.device.cmds,
		e.cmdBuffer,
		srcStageMask,
		dstStageMask,
		0,      // dependencyFlags
		0, nil, // memory barriers
		uint32(len(bufferBarriers)), &bufferBarriers[0],
		0, nil, // image barriers
	)
}

// TransitionTextures transitions texture states for synchronization.
func (e *CommandEncoder) TransitionTextures(barriers []hal.TextureBarrier) {
	if !e.isRecording || len(barriers) == 0 {
		return
	}

	// Convert to Vulkan image memory barriers, accumulating the union of
	// every barrier's src/dst stage (see TransitionBuffers).
	var srcStageMask, dstStageMask vk.PipelineStageFlags
	imageBarriers := make([]vk.ImageMemoryBarrier, len(barriers))
	for i, b := range barriers {
		tex, ok := b.Texture.(*Texture)
		if !ok {
			continue
		}

		srcAccess, srcStage, oldLayout := textureUsageToAccessStageLayout(b.Usage.OldUsage)
		dstAccess, dstStage, newLayout := textureUsageToAccessStageLayout(b.Usage.NewUsage)
		srcStageMask |= srcStage
		dstStageMask |= dstStage

		imageBarriers[i] = vk.ImageMemoryBarrier{
			SType:               vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask:       srcAccess,
			DstAccessMask:       dstAccess,
			OldLayout:           oldLayout,
			NewLayout:           newLayout,
			SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
			DstQueueFamilyIndex: vk.QueueFamilyIgnored,
			Image:               tex.handle,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     textureAspectToVkLocal(b.Range.Aspect),
				BaseMipLevel:   b.Range.BaseMipLevel,
				LevelCount:     mipLevelCountOrRemaining(b.Range.MipLevelCount),
				BaseArrayLayer: b.Range.BaseArrayLayer,
				LayerCount:     arrayLayerCountOrRemaining(b.Range.ArrayLayerCount),
			},
		}
	}

	if srcStageMask == 0 {
		srcStageMask = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}
	if dstStageMask == 0 {
		dstStageMask = vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit)
	}

	vkCmdPipelineBarrier(
		e.device.cmds,
		e.cmdBuffer,
		srcStageMask,
		dstStageMask,
		0,
		0, nil,
		0, nil,
		uint32(len(imageBarriers)), &imageBarriers[0],
	)
}

// ClearBuffer clears a buffer region to zero.
func (e *CommandEncoder) ClearBuffer(buffer hal.Buffer, offset, size uint64) {
	if !e.isRecording {
		return
	}

	buf, ok := buffer.(*Buffer)
	if !ok {
		return
	}

	// vkCmdFillBuffer fills with a 32-bit value (0 for zero fill)
	vkCmdFillBuffer(e.device.cmds, e.cmdBuffer, buf.handle, vk.DeviceSize(offset), vk.DeviceSize(size), 0)
	e.useBuffer(buf, track.BufferUsesCopyDst)
}

// CopyBufferToBuffer copies data between buffers.
func (e *CommandEncoder) CopyBufferToBuffer(src, dst hal.Buffer, regions []hal.BufferCopy) {
	if !e.isRecording {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.BufferCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferCopy{
			SrcOffset: vk.DeviceSize(r.SrcOffset),
			DstOffset: vk.DeviceSize(r.DstOffset),
			Size:      vk.DeviceSize(r.Size),
		}
	}

	vkCmdCopyBuffer(e.device.cmds, e.cmdBuffer, srcBuf.handle, dstBuf.handle, uint32(len(vkRegions)), &vkRegions[0])
	e.useBuffer(srcBuf, track.BufferUsesCopySrc)
	e.useBuffer(dstBuf, track.BufferUsesCopyDst)
}

// convertBufferImageCopyRegions converts HAL BufferTextureCopy regions to Vulkan BufferImageCopy.
func convertBufferImageCopyRegions(regions []hal.BufferTextureCopy) []vk.BufferImageCopy {
	vkRegions := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferLayout.Offset),
			BufferRowLength:   r.BufferLayout.BytesPerRow,
			BufferImageHeight: r.BufferLayout.RowsPerImage,
			ImageSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVkLocal(r.TextureBase.Aspect),
				MipLevel:       r.TextureBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			ImageOffset: vk.Offset3D{
				X: int32(r.TextureBase.Origin.X),
				Y: int32(r.TextureBase.Origin.Y),
				Z: int32(r.TextureBase.Origin.Z),
			},
			ImageExtent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.DepthOrArrayLayers,
			},
		}
	}
	return vkRegions
}

// CopyBufferToTexture copies data from a buffer to a texture.
func (e *CommandEncoder) CopyBufferToTexture(src hal.Buffer, dst hal.Texture, regions []hal.BufferTextureCopy) {
	if !e.isRecording {
		return
	}

	srcBuf, srcOk := src.(*Buffer)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	vkCmdCopyBufferToImage(
		e.device.cmds,
		e.cmdBuffer,
		srcBuf.handle,
		dstTex.handle,
		vk.ImageLayoutTransferDstOptimal,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
	e.useBuffer(srcBuf, track.BufferUsesCopySrc)
	e.useTexture(dstTex, track.TextureUsesCopyDst)
}

// CopyTextureToBuffer copies data from a texture to a buffer.
func (e *CommandEncoder) CopyTextureToBuffer(src hal.Texture, dst hal.Buffer, regions []hal.BufferTextureCopy) {
	if !e.isRecording {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstBuf, dstOk := dst.(*Buffer)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := convertBufferImageCopyRegions(regions)
	vkCmdCopyImageToBuffer(
		e.device.cmds,
		e.cmdBuffer,
		srcTex.handle,
		vk.ImageLayoutTransferSrcOptimal,
		dstBuf.handle,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
	e.useTexture(srcTex, track.TextureUsesCopySrc)
	e.useBuffer(dstBuf, track.BufferUsesCopyDst)
}

// CopyTextureToTexture copies data between textures.
func (e *CommandEncoder) CopyTextureToTexture(src, dst hal.Texture, regions []hal.TextureCopy) {
	if !e.isRecording {
		return
	}

	srcTex, srcOk := src.(*Texture)
	dstTex, dstOk := dst.(*Texture)
	if !srcOk || !dstOk {
		return
	}

	vkRegions := make([]vk.ImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageCopy{
			SrcSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVkLocal(r.SrcBase.Aspect),
				MipLevel:       r.SrcBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			SrcOffset: vk.Offset3D{
				X: int32(r.SrcBase.Origin.X),
				Y: int32(r.SrcBase.Origin.Y),
				Z: int32(r.SrcBase.Origin.Z),
			},
			DstSubresource: vk.ImageSubresourceLayers{
				AspectMask:     textureAspectToVkLocal(r.DstBase.Aspect),
				MipLevel:       r.DstBase.MipLevel,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
			DstOffset: vk.Offset3D{
				X: int32(r.DstBase.Origin.X),
				Y: int32(r.DstBase.Origin.Y),
				Z: int32(r.DstBase.Origin.Z),
			},
			Extent: vk.Extent3D{
				Width:  r.Size.Width,
				Height: r.Size.Height,
				Depth:  r.Size.DepthOrArrayLayers,
			},
		}
	}

	vkCmdCopyImage(
		e.device.cmds,
		e.cmdBuffer,
		srcTex.handle,
		vk.ImageLayoutTransferSrcOptimal,
		dstTex.handle,
		vk.ImageLayoutTransferDstOptimal,
		uint32(len(vkRegions)),
		&vkRegions[0],
	)
	e.useTexture(srcTex, track.TextureUsesCopySrc)
	e.useTexture(dstTex, track.TextureUsesCopyDst)
}

// BeginRenderPass begins a render pass using dynamic rendering (Vulkan 1.3+).
// BeginRenderPass opens a render pass encoder. Per the software-command-list
// design (renderCommand), nothing is emitted into the native command buffer
// yet beyond tracking the attachment textures, which are known up front and
// don't need to wait for End() to discover. The dynamic-rendering begin/end
// pair and every state-setting/draw call are deferred to End.
func (e *CommandEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	rpe := &RenderPassEncoder{
		encoder: e,
		desc:    desc,
	}

	if !e.isRecording {
		return rpe
	}

	colorAttachments := make([]vk.RenderingAttachmentInfo, len(desc.ColorAttachments))
	for i, ca := range desc.ColorAttachments {
		view, ok := ca.View.(*TextureView)
		if !ok {
			continue
		}

		colorAttachments[i] = vk.RenderingAttachmentInfo{
			SType:       vk.StructureTypeRenderingAttachmentInfo,
			ImageView:   view.handle,
			ImageLayout: vk.ImageLayoutColorAttachmentOptimal,
			LoadOp:      loadOpToVk(ca.LoadOp),
			StoreOp:     storeOpToVk(ca.StoreOp),
			ClearValue: vk.ClearValueColor(
				float32(ca.ClearValue.R),
				float32(ca.ClearValue.G),
				float32(ca.ClearValue.B),
				float32(ca.ClearValue.A),
			),
		}

		if ca.ResolveTarget != nil {
			resolveView, ok := ca.ResolveTarget.(*TextureView)
			if ok {
				colorAttachments[i].ResolveMode = vk.ResolveModeAverageBit
				colorAttachments[i].ResolveImageView = resolveView.handle
				colorAttachments[i].ResolveImageLayout = vk.ImageLayoutColorAttachmentOptimal
				e.useTexture(resolveView.texture, track.TextureUsesColorTarget)
			}
		}

		e.useTexture(view.texture, track.TextureUsesColorTarget)
		if rpe.extentWidth == 0 {
			rpe.extentWidth = view.texture.size.Width
			rpe.extentHeight = view.texture.size.Height
		}
	}
	rpe.colorAttachments = colorAttachments

	if desc.DepthStencilAttachment != nil {
		dsa := desc.DepthStencilAttachment
		view, ok := dsa.View.(*TextureView)
		if ok {
			rpe.depthAttachment = vk.RenderingAttachmentInfo{
				SType:       vk.StructureTypeRenderingAttachmentInfo,
				ImageView:   view.handle,
				ImageLayout: vk.ImageLayoutDepthStencilAttachmentOptimal,
				LoadOp:      loadOpToVk(dsa.DepthLoadOp),
				StoreOp:     storeOpToVk(dsa.DepthStoreOp),
				ClearValue:  vk.ClearValueDepthStencil(dsa.DepthClearValue, dsa.StencilClearValue),
			}
			rpe.hasDepthAttachment = true
			e.useTexture(view.texture, track.TextureUsesDepthStencilWrite)
			if rpe.extentWidth == 0 {
				rpe.extentWidth = view.texture.size.Width
				rpe.extentHeight = view.texture.size.Height
			}
		}
	}

	return rpe
}

// BeginComputePass begins a compute pass.
func (e *CommandEncoder) BeginComputePass(desc *hal.ComputePassDescriptor) hal.ComputePassEncoder {
	_ = desc // Compute passes don't need Vulkan-level begin/end
	return &ComputePassEncoder{
		encoder: e,
	}
}

// renderCommandKind tags a recorded renderCommand's active field(s); see §4.4.
type renderCommandKind int

const (
	renderCmdSetPipeline renderCommandKind = iota
	renderCmdSetBindGroup
	renderCmdSetVertexBuffer
	renderCmdSetIndexBuffer
	renderCmdSetViewport
	renderCmdSetScissor
	renderCmdSetBlendConstant
	renderCmdSetStencilReference
	renderCmdDraw
	renderCmdDrawIndexed
	renderCmdDrawIndirect
	renderCmdDrawIndexedIndirect
	renderCmdExecuteBundle
)

// renderCommand is the tagged-union record a RenderPassEncoder appends to
// instead of writing into the native command buffer immediately (§4.4). The
// active fields are determined by kind; this trades a larger struct for a
// single flat slice instead of an interface-typed one, avoiding a heap
// allocation per recorded command.
type renderCommand struct {
	kind renderCommandKind

	pipeline *RenderPipeline

	bindGroupIndex   uint32
	bindGroup        *BindGroup
	bindGroupOffsets []uint32

	vertexSlot   uint32
	buffer       *Buffer
	bufferOffset uint64
	indexFormat  types.IndexFormat

	viewport vk.Viewport
	scissor  vk.Rect2D
	blend    [4]float32
	stencil  uint32

	// firstVertex doubles as firstIndex for renderCmdDrawIndexed.
	vertexCount, instanceCount, firstVertex, firstInstance, indexCount uint32
	baseVertex                                                        int32

	bundle *RenderBundle
}

// RenderPassEncoder implements hal.RenderPassEncoder for Vulkan. It is a
// software command list (§4.4): every SetXxx/Draw call below only appends to
// commands, and the encoder's actual resource-usage tracking, barrier
// synthesis, default viewport/scissor, and native begin/end rendering calls
// all happen in End, which is the only place that touches the Vulkan command
// buffer.
type RenderPassEncoder struct {
	encoder  *CommandEncoder
	desc     *hal.RenderPassDescriptor
	commands []renderCommand

	colorAttachments   []vk.RenderingAttachmentInfo
	depthAttachment    vk.RenderingAttachmentInfo
	hasDepthAttachment bool
	extentWidth        uint32
	extentHeight       uint32

	userSetViewport bool
	userSetScissor  bool

	activePipeline    *RenderPipeline
	activeIndexFormat types.IndexFormat
}

// End walks the buffered command list twice: first to accumulate resource
// usage (bind groups, vertex/index/indirect buffers) for barrier synthesis,
// then to replay every command into the native command buffer between a
// single vkCmdBeginRendering/vkCmdEndRendering pair (§4.4 (b)-(d)).
func (e *RenderPassEncoder) End() {
	enc := e.encoder
	if enc == nil || !enc.isRecording {
		return
	}

	for i := range e.commands {
		c := &e.commands[i]
		switch c.kind {
		case renderCmdSetBindGroup:
			enc.useBindGroup(c.bindGroup)
		case renderCmdSetVertexBuffer:
			enc.useBuffer(c.buffer, track.BufferUsesVertex)
		case renderCmdSetIndexBuffer:
			enc.useBuffer(c.buffer, track.BufferUsesIndex)
		case renderCmdDrawIndirect, renderCmdDrawIndexedIndirect:
			enc.useBuffer(c.buffer, track.BufferUsesIndirect)
		case renderCmdSetViewport:
			e.userSetViewport = true
		case renderCmdSetScissor:
			e.userSetScissor = true
		}
	}

	renderingInfo := vk.RenderingInfo{
		SType: vk.StructureTypeRenderingInfo,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{Width: e.extentWidth, Height: e.extentHeight},
		},
		LayerCount:           1,
		ColorAttachmentCount: uint32(len(e.colorAttachments)),
	}
	if len(e.colorAttachments) > 0 {
		renderingInfo.PColorAttachments = &e.colorAttachments[0]
	}
	if e.hasDepthAttachment {
		renderingInfo.PDepthAttachment = &e.depthAttachment
		renderingInfo.PStencilAttachment = &e.depthAttachment
	}

	vkCmdBeginRendering(enc.device.cmds, enc.cmdBuffer, &renderingInfo)

	// Default viewport/scissor to attachment-0 dimensions if the caller
	// never issued its own (§4.4 (c)), matching colour-attachment-0's
	// orientation convention (Y-down, depth [0,1]).
	if !e.userSetViewport && e.extentWidth > 0 && e.extentHeight > 0 {
		vp := vk.Viewport{
			X: 0, Y: 0,
			Width: float32(e.extentWidth), Height: float32(e.extentHeight),
			MinDepth: 0, MaxDepth: 1,
		}
		vkCmdSetViewport(enc.device.cmds, enc.cmdBuffer, 0, 1, &vp)
	}
	if !e.userSetScissor && e.extentWidth > 0 && e.extentHeight > 0 {
		sc := vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{Width: e.extentWidth, Height: e.extentHeight},
		}
		vkCmdSetScissor(enc.device.cmds, enc.cmdBuffer, 0, 1, &sc)
	}

	for i := range e.commands {
		c := &e.commands[i]
		switch c.kind {
		case renderCmdSetPipeline:
			vkCmdBindPipeline(enc.device.cmds, enc.cmdBuffer, vk.PipelineBindPointGraphics, c.pipeline.handle)
		case renderCmdSetBindGroup:
			var pOffsets *uint32
			if len(c.bindGroupOffsets) > 0 {
				pOffsets = &c.bindGroupOffsets[0]
			}
			vkCmdBindDescriptorSets(enc.device.cmds, enc.cmdBuffer, vk.PipelineBindPointGraphics,
				c.pipeline.layout, c.bindGroupIndex, 1, &c.bindGroup.handle, uint32(len(c.bindGroupOffsets)), pOffsets)
		case renderCmdSetVertexBuffer:
			offset := vk.DeviceSize(c.bufferOffset)
			vkCmdBindVertexBuffers(enc.device.cmds, enc.cmdBuffer, c.vertexSlot, 1, &c.buffer.handle, &offset)
		case renderCmdSetIndexBuffer:
			indexType := vk.IndexTypeUint16
			if c.indexFormat == types.IndexFormatUint32 {
				indexType = vk.IndexTypeUint32
			}
			vkCmdBindIndexBuffer(enc.device.cmds, enc.cmdBuffer, c.buffer.handle, vk.DeviceSize(c.bufferOffset), indexType)
		case renderCmdSetViewport:
			vkCmdSetViewport(enc.device.cmds, enc.cmdBuffer, 0, 1, &c.viewport)
		case renderCmdSetScissor:
			vkCmdSetScissor(enc.device.cmds, enc.cmdBuffer, 0, 1, &c.scissor)
		case renderCmdSetBlendConstant:
			vkCmdSetBlendConstants(enc.device.cmds, enc.cmdBuffer, &c.blend)
		case renderCmdSetStencilReference:
			vkCmdSetStencilReference(enc.device.cmds, enc.cmdBuffer, vk.StencilFaceFlags(vk.StencilFaceFrontAndBack), c.stencil)
		case renderCmdDraw:
			vkCmdDraw(enc.device.cmds, enc.cmdBuffer, c.vertexCount, c.instanceCount, c.firstVertex, c.firstInstance)
		case renderCmdDrawIndexed:
			vkCmdDrawIndexed(enc.device.cmds, enc.cmdBuffer, c.indexCount, c.instanceCount, c.firstVertex, c.baseVertex, c.firstInstance)
		case renderCmdDrawIndirect:
			vkCmdDrawIndirect(enc.device.cmds, enc.cmdBuffer, c.buffer.handle, vk.DeviceSize(c.bufferOffset), 1, 0)
		case renderCmdDrawIndexedIndirect:
			vkCmdDrawIndexedIndirect(enc.device.cmds, enc.cmdBuffer, c.buffer.handle, vk.DeviceSize(c.bufferOffset), 1, 0)
		case renderCmdExecuteBundle:
			// Render bundles are pre-recorded secondary command buffers
			// (bundle.go); replaying one inline means invoking it here.
			vkCmdExecuteCommands(enc.device.cmds, enc.cmdBuffer, 1, &c.bundle.commandBuffer)
		}
	}

	vkCmdEndRendering(enc.device.cmds, enc.cmdBuffer)
}

// SetPipeline records a set_pipeline command.
func (e *RenderPassEncoder) SetPipeline(pipeline hal.RenderPipeline) {
	p, ok := pipeline.(*RenderPipeline)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.activePipeline = p
	e.commands = append(e.commands, renderCommand{kind: renderCmdSetPipeline, pipeline: p})
}

// SetBindGroup records a set_bind_group command.
func (e *RenderPassEncoder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	bg, ok := group.(*BindGroup)
	if !ok || !e.encoder.isRecording || e.activePipeline == nil {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind: renderCmdSetBindGroup, pipeline: e.activePipeline,
		bindGroupIndex: index, bindGroup: bg, bindGroupOffsets: offsets,
	})
}

// SetVertexBuffer records a set_vertex_buffer command.
func (e *RenderPassEncoder) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{kind: renderCmdSetVertexBuffer, vertexSlot: slot, buffer: buf, bufferOffset: offset})
}

// SetIndexBuffer records a set_index_buffer command.
func (e *RenderPassEncoder) SetIndexBuffer(buffer hal.Buffer, format types.IndexFormat, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.activeIndexFormat = format
	e.commands = append(e.commands, renderCommand{kind: renderCmdSetIndexBuffer, buffer: buf, bufferOffset: offset, indexFormat: format})
}

// SetViewport records a set_viewport command.
func (e *RenderPassEncoder) SetViewport(x, y, width, height, minDepth, maxDepth float32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind: renderCmdSetViewport,
		viewport: vk.Viewport{
			X: x, Y: y, Width: width, Height: height, MinDepth: minDepth, MaxDepth: maxDepth,
		},
	})
}

// SetScissorRect records a set_scissor_rect command.
func (e *RenderPassEncoder) SetScissorRect(x, y, width, height uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind: renderCmdSetScissor,
		scissor: vk.Rect2D{
			Offset: vk.Offset2D{X: int32(x), Y: int32(y)},
			Extent: vk.Extent2D{Width: width, Height: height},
		},
	})
}

// SetBlendConstant records a set_blend_constant command.
func (e *RenderPassEncoder) SetBlendConstant(color *types.Color) {
	if !e.encoder.isRecording || color == nil {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind:  renderCmdSetBlendConstant,
		blend: [4]float32{float32(color.R), float32(color.G), float32(color.B), float32(color.A)},
	})
}

// SetStencilReference records a set_stencil_reference command.
func (e *RenderPassEncoder) SetStencilReference(ref uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{kind: renderCmdSetStencilReference, stencil: ref})
}

// Draw records a draw command.
func (e *RenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind: renderCmdDraw, vertexCount: vertexCount, instanceCount: instanceCount,
		firstVertex: firstVertex, firstInstance: firstInstance,
	})
}

// DrawIndexed records a draw_indexed command.
func (e *RenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{
		kind: renderCmdDrawIndexed, indexCount: indexCount, instanceCount: instanceCount,
		firstVertex: firstIndex, baseVertex: baseVertex, firstInstance: firstInstance,
	})
}

// DrawIndirect records a draw_indirect command.
func (e *RenderPassEncoder) DrawIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{kind: renderCmdDrawIndirect, buffer: buf, bufferOffset: offset})
}

// DrawIndexedIndirect records a draw_indexed_indirect command.
func (e *RenderPassEncoder) DrawIndexedIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{kind: renderCmdDrawIndexedIndirect, buffer: buf, bufferOffset: offset})
}

// ExecuteBundle records an execute_render_bundle command. Bundles carry no
// attachment information at record time (only a format/sample-count
// fingerprint), so replaying one is purely a matter of invoking its
// secondary command buffer inline (§4.4's option (i)) once this pass's own
// command list reaches End.
func (e *RenderPassEncoder) ExecuteBundle(bundle hal.RenderBundle) {
	rb, ok := bundle.(*RenderBundle)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, renderCommand{kind: renderCmdExecuteBundle, bundle: rb})
}

// computeCommandKind tags a recorded computeCommand (§4.4).
type computeCommandKind int

const (
	computeCmdSetPipeline computeCommandKind = iota
	computeCmdSetBindGroup
	computeCmdDispatch
	computeCmdDispatchIndirect
)

type computeCommand struct {
	kind computeCommandKind

	pipeline *ComputePipeline

	bindGroupIndex   uint32
	bindGroup        *BindGroup
	bindGroupOffsets []uint32

	x, y, z uint32

	buffer       *Buffer
	bufferOffset uint64
}

// ComputePassEncoder implements hal.ComputePassEncoder for Vulkan as a
// software command list, mirroring RenderPassEncoder (§4.4): compute passes
// have no native begin/end, but commands still only replay at End so that
// bind-group usage tracking happens in one pass over the full list.
type ComputePassEncoder struct {
	encoder        *CommandEncoder
	commands       []computeCommand
	activePipeline *ComputePipeline
}

// End walks the buffered command list, tracking bind-group/indirect-buffer
// usage and then replaying every command into the native command buffer.
func (e *ComputePassEncoder) End() {
	enc := e.encoder
	if enc == nil || !enc.isRecording {
		return
	}

	for i := range e.commands {
		c := &e.commands[i]
		switch c.kind {
		case computeCmdSetBindGroup:
			enc.useBindGroup(c.bindGroup)
		case computeCmdDispatchIndirect:
			enc.useBuffer(c.buffer, track.BufferUsesIndirect)
		}
	}

	for i := range e.commands {
		c := &e.commands[i]
		switch c.kind {
		case computeCmdSetPipeline:
			vkCmdBindPipeline(enc.device.cmds, enc.cmdBuffer, vk.PipelineBindPointCompute, c.pipeline.handle)
		case computeCmdSetBindGroup:
			var pOffsets *uint32
			if len(c.bindGroupOffsets) > 0 {
				pOffsets = &c.bindGroupOffsets[0]
			}
			vkCmdBindDescriptorSets(enc.device.cmds, enc.cmdBuffer, vk.PipelineBindPointCompute,
				c.pipeline.layout, c.bindGroupIndex, 1, &c.bindGroup.handle, uint32(len(c.bindGroupOffsets)), pOffsets)
		case computeCmdDispatch:
			vkCmdDispatch(enc.device.cmds, enc.cmdBuffer, c.x, c.y, c.z)
		case computeCmdDispatchIndirect:
			vkCmdDispatchIndirect(enc.device.cmds, enc.cmdBuffer, c.buffer.handle, vk.DeviceSize(c.bufferOffset))
		}
	}
}

// SetPipeline records a set_compute_pipeline command.
func (e *ComputePassEncoder) SetPipeline(pipeline hal.ComputePipeline) {
	p, ok := pipeline.(*ComputePipeline)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.activePipeline = p
	e.commands = append(e.commands, computeCommand{kind: computeCmdSetPipeline, pipeline: p})
}

// SetBindGroup records a set_bind_group command.
func (e *ComputePassEncoder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	bg, ok := group.(*BindGroup)
	if !ok || !e.encoder.isRecording || e.activePipeline == nil {
		return
	}
	e.commands = append(e.commands, computeCommand{
		kind: computeCmdSetBindGroup, pipeline: e.activePipeline,
		bindGroupIndex: index, bindGroup: bg, bindGroupOffsets: offsets,
	})
}

// Dispatch records a dispatch_workgroups command.
func (e *ComputePassEncoder) Dispatch(x, y, z uint32) {
	if !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, computeCommand{kind: computeCmdDispatch, x: x, y: y, z: z})
}

// DispatchIndirect records a dispatch_workgroups_indirect command.
func (e *ComputePassEncoder) DispatchIndirect(buffer hal.Buffer, offset uint64) {
	buf, ok := buffer.(*Buffer)
	if !ok || !e.encoder.isRecording {
		return
	}
	e.commands = append(e.commands, computeCommand{kind: computeCmdDispatchIndirect, buffer: buf, bufferOffset: offset})
}

// --- Helper functions ---

func bufferUsageToAccessAndStage(usage types.BufferUsage) (vk.AccessFlags, vk.PipelineStageFlags) {
	var access vk.AccessFlags
	var stage vk.PipelineStageFlags

	if usage&types.BufferUsageCopySrc != 0 {
		access |= vk.AccessFlags(vk.AccessTransferReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageTransferBit)
	}
	if usage&types.BufferUsageCopyDst != 0 {
		access |= vk.AccessFlags(vk.AccessTransferWriteBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageTransferBit)
	}
	if usage&types.BufferUsageVertex != 0 {
		access |= vk.AccessFlags(vk.AccessVertexAttributeReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageVertexInputBit)
	}
	if usage&types.BufferUsageIndex != 0 {
		access |= vk.AccessFlags(vk.AccessIndexReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageVertexInputBit)
	}
	if usage&types.BufferUsageUniform != 0 {
		access |= vk.AccessFlags(vk.AccessUniformReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit | vk.PipelineStageFragmentShaderBit)
	}
	if usage&types.BufferUsageStorage != 0 {
		access |= vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageVertexShaderBit | vk.PipelineStageFragmentShaderBit | vk.PipelineStageComputeShaderBit)
	}
	if usage&types.BufferUsageIndirect != 0 {
		access |= vk.AccessFlags(vk.AccessIndirectCommandReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageDrawIndirectBit)
	}

	if stage == 0 {
		stage = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}

	return access, stage
}

//nolint:unparam // stage is OR-ed into the barrier stage masks by TransitionTextures
func textureUsageToAccessStageLayout(usage types.TextureUsage) (vk.AccessFlags, vk.PipelineStageFlags, vk.ImageLayout) {
	var access vk.AccessFlags
	var stage vk.PipelineStageFlags
	layout := vk.ImageLayoutGeneral

	if usage&types.TextureUsageCopySrc != 0 {
		access |= vk.AccessFlags(vk.AccessTransferReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageTransferBit)
		layout = vk.ImageLayoutTransferSrcOptimal
	}
	if usage&types.TextureUsageCopyDst != 0 {
		access |= vk.AccessFlags(vk.AccessTransferWriteBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageTransferBit)
		layout = vk.ImageLayoutTransferDstOptimal
	}
	if usage&types.TextureUsageTextureBinding != 0 {
		access |= vk.AccessFlags(vk.AccessShaderReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageFragmentShaderBit)
		layout = vk.ImageLayoutShaderReadOnlyOptimal
	}
	if usage&types.TextureUsageStorageBinding != 0 {
		access |= vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit)
		layout = vk.ImageLayoutGeneral
	}
	if usage&types.TextureUsageRenderAttachment != 0 {
		access |= vk.AccessFlags(vk.AccessColorAttachmentWriteBit | vk.AccessColorAttachmentReadBit)
		stage |= vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)
		layout = vk.ImageLayoutColorAttachmentOptimal
	}

	if stage == 0 {
		stage = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
	}

	return access, stage, layout
}

func textureAspectToVkLocal(aspect types.TextureAspect) vk.ImageAspectFlags {
	switch aspect {
	case types.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case types.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

func mipLevelCountOrRemaining(count uint32) uint32 {
	if count == 0 {
		return vk.RemainingMipLevels
	}
	return count
}

func arrayLayerCountOrRemaining(count uint32) uint32 {
	if count == 0 {
		return vk.RemainingArrayLayers
	}
	return count
}

func loadOpToVk(op types.LoadOp) vk.AttachmentLoadOp {
	switch op {
	case types.LoadOpClear:
		return vk.AttachmentLoadOpClear
	case types.LoadOpLoad:
		return vk.AttachmentLoadOpLoad
	default:
		return vk.AttachmentLoadOpDontCare
	}
}

func storeOpToVk(op types.StoreOp) vk.AttachmentStoreOp {
	switch op {
	case types.StoreOpStore:
		return vk.AttachmentStoreOpStore
	default:
		return vk.AttachmentStoreOpDontCare
	}
}

// --- Vulkan function wrappers delegating to the loaded command table ---

func vkBeginCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, beginInfo *vk.CommandBufferBeginInfo) vk.Result {
	return cmds.BeginCommandBuffer(cmdBuffer, beginInfo)
}

func vkEndCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer) vk.Result {
	return cmds.EndCommandBuffer(cmdBuffer)
}

func vkResetCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	return cmds.ResetCommandPool(device, pool, flags)
}

func vkCmdPipelineBarrier(cmds *vk.Commands, cmdBuffer vk.CommandBuffer,
	srcStageMask, dstStageMask vk.PipelineStageFlags,
	dependencyFlags vk.DependencyFlags,
	memoryBarrierCount uint32, pMemoryBarriers *vk.MemoryBarrier,
	bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *vk.BufferMemoryBarrier,
	imageMemoryBarrierCount uint32, pImageMemoryBarriers *vk.ImageMemoryBarrier) {
	cmds.CmdPipelineBarrier(cmdBuffer, srcStageMask, dstStageMask, dependencyFlags,
		memoryBarrierCount, pMemoryBarriers,
		bufferMemoryBarrierCount, pBufferMemoryBarriers,
		imageMemoryBarrierCount, pImageMemoryBarriers)
}

func vkCmdFillBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset, size vk.DeviceSize, data uint32) {
	cmds.CmdFillBuffer(cmdBuffer, buffer, offset, size, data)
}

func vkCmdCopyBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src, dst vk.Buffer, regionCount uint32, pRegions *vk.BufferCopy) {
	cmds.CmdCopyBuffer(cmdBuffer, src, dst, regionCount, pRegions)
}

func vkCmdCopyBufferToImage(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Buffer, dst vk.Image, layout vk.ImageLayout, regionCount uint32, pRegions *vk.BufferImageCopy) {
	cmds.CmdCopyBufferToImage(cmdBuffer, src, dst, layout, regionCount, pRegions)
}

func vkCmdCopyImageToBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Image, layout vk.ImageLayout, dst vk.Buffer, regionCount uint32, pRegions *vk.BufferImageCopy) {
	cmds.CmdCopyImageToBuffer(cmdBuffer, src, layout, dst, regionCount, pRegions)
}

func vkCmdCopyImage(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout, regionCount uint32, pRegions *vk.ImageCopy) {
	cmds.CmdCopyImage(cmdBuffer, src, srcLayout, dst, dstLayout, regionCount, pRegions)
}

func vkCmdBeginRendering(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, renderingInfo *vk.RenderingInfo) {
	cmds.CmdBeginRendering(cmdBuffer, renderingInfo)
}

func vkCmdEndRendering(cmds *vk.Commands, cmdBuffer vk.CommandBuffer) {
	cmds.CmdEndRendering(cmdBuffer)
}

func vkCmdBindPipeline(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	cmds.CmdBindPipeline(cmdBuffer, bindPoint, pipeline)
}

func vkCmdBindDescriptorSets(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout, firstSet uint32, setCount uint32, pSets *vk.DescriptorSet, dynamicOffsetCount uint32, pDynamicOffsets *uint32) {
	cmds.CmdBindDescriptorSets(cmdBuffer, bindPoint, layout, firstSet, setCount, pSets, dynamicOffsetCount, pDynamicOffsets)
}

func vkCmdBindVertexBuffers(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstBinding, bindingCount uint32, pBuffers *vk.Buffer, pOffsets *vk.DeviceSize) {
	cmds.CmdBindVertexBuffers(cmdBuffer, firstBinding, bindingCount, pBuffers, pOffsets)
}

func vkCmdBindIndexBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) {
	cmds.CmdBindIndexBuffer(cmdBuffer, buffer, offset, indexType)
}

func vkCmdSetViewport(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstViewport, viewportCount uint32, pViewports *vk.Viewport) {
	cmds.CmdSetViewport(cmdBuffer, firstViewport, viewportCount, pViewports)
}

func vkCmdSetScissor(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, firstScissor, scissorCount uint32, pScissors *vk.Rect2D) {
	cmds.CmdSetScissor(cmdBuffer, firstScissor, scissorCount, pScissors)
}

func vkCmdSetBlendConstants(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, blendConstants *[4]float32) {
	cmds.CmdSetBlendConstants(cmdBuffer, blendConstants)
}

func vkCmdSetStencilReference(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, faceMask vk.StencilFaceFlags, reference uint32) {
	cmds.CmdSetStencilReference(cmdBuffer, faceMask, reference)
}

func vkCmdDraw(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	cmds.CmdDraw(cmdBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

func vkCmdDrawIndexed(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	cmds.CmdDrawIndexed(cmdBuffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func vkCmdDrawIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) {
	cmds.CmdDrawIndirect(cmdBuffer, buffer, offset, drawCount, stride)
}

func vkCmdDrawIndexedIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) {
	cmds.CmdDrawIndexedIndirect(cmdBuffer, buffer, offset, drawCount, stride)
}

func vkCmdExecuteCommands(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, commandBufferCount uint32, pCommandBuffers *vk.CommandBuffer) {
	cmds.CmdExecuteCommands(cmdBuffer, commandBufferCount, pCommandBuffers)
}

func vkCmdDispatch(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, x, y, z uint32) {
	cmds.CmdDispatch(cmdBuffer, x, y, z)
}

func vkCmdDispatchIndirect(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize) {
	cmds.CmdDispatchIndirect(cmdBuffer, buffer, offset)
}
