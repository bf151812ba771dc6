// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"

	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/driftgpu/webgpu/types"
)

// resourceUsage accumulates the buffers and textures a single command
// buffer touches while it is being recorded, together with the union
// (bitwise OR) of the track usages each was put to. Queue.Submit (§4.7 step 2) walks this per
// command buffer, in submission order, to synthesize the barriers that
// must run between them, and (§4.7 steps 4-5) to update each texture's
// cached layout and each written host-mappable buffer's latest fence.
//
// This is the resource-usage half of what the spec calls a command
// buffer's BufferUsageScope/TextureUsageScope; unlike core/track's scope
// types it is keyed directly on the HAL resource rather than a
// TrackerIndex, since the Vulkan backend doesn't yet thread a full
// encoder-side tracker through recording.
type resourceUsage struct {
	buffers  map[*Buffer]track.BufferUses
	textures map[*Texture]track.TextureUses
}

func newResourceUsage() *resourceUsage {
	return &resourceUsage{
		buffers:  make(map[*Buffer]track.BufferUses),
		textures: make(map[*Texture]track.TextureUses),
	}
}

func (u *resourceUsage) useBuffer(b *Buffer, usage track.BufferUses) {
	if b == nil {
		return
	}
	u.buffers[b] |= usage
}

func (u *resourceUsage) useTexture(t *Texture, usage track.TextureUses) {
	if t == nil {
		return
	}
	u.textures[t] |= usage
}

// useBuffer records that the encoder's in-progress command buffer touches
// b with usage, lazily creating the usage set on first reference.
func (e *CommandEncoder) useBuffer(b *Buffer, usage track.BufferUses) {
	if e.usage == nil {
		e.usage = newResourceUsage()
	}
	e.usage.useBuffer(b, usage)
}

// useTexture records that the encoder's in-progress command buffer
// touches t with usage, lazily creating the usage set on first reference.
func (e *CommandEncoder) useTexture(t *Texture, usage track.TextureUses) {
	if e.usage == nil {
		e.usage = newResourceUsage()
	}
	e.usage.useTexture(t, usage)
}

// useBindGroup folds every resource a bind group owns into the encoder's
// usage set (§4.5: a bind group is a first-class entity that contributes
// its resource-usage set to the pass's usage scope when bound).
func (e *CommandEncoder) useBindGroup(g *BindGroup) {
	if g == nil {
		return
	}
	for _, r := range g.resourceUsages {
		if r.Buffer != nil {
			e.useBuffer(r.Buffer, r.BufferUsage)
		}
		if r.TextureView != nil {
			e.useTexture(r.TextureView.texture, r.TextureUsage)
		}
	}
}

// trackBufferUsesToAccessStage projects a track.BufferUses onto the access
// mask / pipeline stage pair a barrier needs, via the HAL-level
// types.BufferUsage conversion the rest of the backend already uses.
func trackBufferUsesToAccessStage(u track.BufferUses) (vk.AccessFlags, vk.PipelineStageFlags) {
	return bufferUsageToAccessAndStage(u.ToBufferUsage())
}

// trackTextureUsesToAccessStageLayout is the texture counterpart of
// trackBufferUsesToAccessStage, additionally yielding the VkImageLayout the
// usage requires.
func trackTextureUsesToAccessStageLayout(u track.TextureUses) (vk.AccessFlags, vk.PipelineStageFlags, vk.ImageLayout) {
	return textureUsageToAccessStageLayout(u.ToTextureUsage())
}

// synthesizeBarriers implements §4.7 step 2: walking the command buffers in
// submission order, it compares each resource's usage in a command buffer
// against the "seen" state left by the previous command buffer that touched
// it (seeded from the resource's own lastUsage/currentLayout on first
// encounter within this submit), and records a barrier command buffer
// whenever a transition is required. The returned slice is parallel to
// buffers: result[i] is 0 if buffer i needed no barrier ahead of it.
func (q *Queue) synthesizeBarriers(slot *frameSlot, buffers []*CommandBuffer) ([]vk.CommandBuffer, error) {
	d := q.device
	result := make([]vk.CommandBuffer, len(buffers))

	// seen holds the usage each resource was left in by the last command
	// buffer (in this submit) that referenced it, falling back to the
	// resource's persisted lastUsage the first time it is seen here.
	seenBuffers := make(map[*Buffer]track.BufferUses)
	seenTextures := make(map[*Texture]track.TextureUses)

	for i, cb := range buffers {
		if cb.usage == nil {
			continue
		}

		var bufferBarriers []vk.BufferMemoryBarrier
		var imageBarriers []vk.ImageMemoryBarrier
		var srcStageMask, dstStageMask vk.PipelineStageFlags

		for buf, usage := range cb.usage.buffers {
			old, ok := seenBuffers[buf]
			if !ok {
				old = buf.lastUsage
			}
			seenBuffers[buf] = usage
			if old == usage {
				continue
			}

			srcAccess, srcStage := trackBufferUsesToAccessStage(old)
			dstAccess, dstStage := trackBufferUsesToAccessStage(usage)
			srcStageMask |= srcStage
			dstStageMask |= dstStage
			bufferBarriers = append(bufferBarriers, vk.BufferMemoryBarrier{
				SType:               vk.StructureTypeBufferMemoryBarrier,
				SrcAccessMask:       srcAccess,
				DstAccessMask:       dstAccess,
				SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
				DstQueueFamilyIndex: vk.QueueFamilyIgnored,
				Buffer:              buf.handle,
				Offset:              0,
				Size:                vk.DeviceSize(vk.WholeSize),
			})
		}

		for tex, usage := range cb.usage.textures {
			old, ok := seenTextures[tex]
			if !ok {
				old = tex.lastUsage
			}
			seenTextures[tex] = usage
			if old == usage {
				continue
			}

			srcAccess, srcStage, oldLayout := trackTextureUsesToAccessStageLayout(old)
			dstAccess, dstStage, newLayout := trackTextureUsesToAccessStageLayout(usage)
			if old == track.TextureUsesNone {
				oldLayout = vk.ImageLayoutUndefined
			}
			srcStageMask |= srcStage
			dstStageMask |= dstStage
			imageBarriers = append(imageBarriers, vk.ImageMemoryBarrier{
				SType:               vk.StructureTypeImageMemoryBarrier,
				SrcAccessMask:       srcAccess,
				DstAccessMask:       dstAccess,
				OldLayout:           oldLayout,
				NewLayout:           newLayout,
				SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
				DstQueueFamilyIndex: vk.QueueFamilyIgnored,
				Image:               tex.handle,
				SubresourceRange: vk.ImageSubresourceRange{
					AspectMask:     textureAspectToVk(types.TextureAspectAll, tex.format),
					BaseMipLevel:   0,
					LevelCount:     vk.RemainingMipLevels,
					BaseArrayLayer: 0,
					LayerCount:     vk.RemainingArrayLayers,
				},
			})
		}

		if len(bufferBarriers) == 0 && len(imageBarriers) == 0 {
			continue
		}
		if srcStageMask == 0 {
			srcStageMask = vk.PipelineStageFlags(vk.PipelineStageTopOfPipeBit)
		}
		if dstStageMask == 0 {
			dstStageMask = vk.PipelineStageFlags(vk.PipelineStageBottomOfPipeBit)
		}

		barrierBuf, err := slot.AcquirePrimary(d)
		if err != nil {
			return nil, fmt.Errorf("vulkan: failed to acquire barrier command buffer: %w", err)
		}

		beginInfo := vk.CommandBufferBeginInfo{
			SType: vk.StructureTypeCommandBufferBeginInfo,
			Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageOneTimeSubmitBit),
		}
		if r := vkBeginCommandBuffer(d.cmds, barrierBuf, &beginInfo); r != vk.Success {
			return nil, fmt.Errorf("vulkan: failed to begin barrier command buffer: %d", r)
		}

		var pBufferBarriers *vk.BufferMemoryBarrier
		if len(bufferBarriers) > 0 {
			pBufferBarriers = &bufferBarriers[0]
		}
		var pImageBarriers *vk.ImageMemoryBarrier
		if len(imageBarriers) > 0 {
			pImageBarriers = &imageBarriers[0]
		}

		vkCmdPipelineBarrier(
			d.cmds, barrierBuf,
			srcStageMask, dstStageMask, 0,
			0, nil,
			uint32(len(bufferBarriers)), pBufferBarriers,
			uint32(len(imageBarriers)), pImageBarriers,
		)

		if r := vkEndCommandBuffer(d.cmds, barrierBuf); r != vk.Success {
			return nil, fmt.Errorf("vulkan: failed to end barrier command buffer: %d", r)
		}

		result[i] = barrierBuf
	}

	return result, nil
}
