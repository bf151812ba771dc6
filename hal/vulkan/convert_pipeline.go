// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
	"github.com/gogpu/gputypes"
)

// addressModeToVk converts a WebGPU sampler address mode to Vulkan.
func addressModeToVk(mode gputypes.AddressMode) vk.SamplerAddressMode {
	switch mode {
	case gputypes.AddressModeClampToEdge:
		return vk.SamplerAddressModeClampToEdge
	case gputypes.AddressModeRepeat:
		return vk.SamplerAddressModeRepeat
	case gputypes.AddressModeMirrorRepeat:
		return vk.SamplerAddressModeMirroredRepeat
	default:
		return vk.SamplerAddressModeClampToEdge
	}
}

// filterModeToVk converts a WebGPU min/mag filter mode to Vulkan.
func filterModeToVk(mode gputypes.FilterMode) vk.Filter {
	switch mode {
	case gputypes.FilterModeNearest:
		return vk.FilterNearest
	case gputypes.FilterModeLinear:
		return vk.FilterLinear
	default:
		return vk.FilterNearest
	}
}

// mipmapFilterModeToVk converts a WebGPU mipmap filter mode to Vulkan.
func mipmapFilterModeToVk(mode gputypes.FilterMode) vk.SamplerMipmapMode {
	switch mode {
	case gputypes.FilterModeNearest:
		return vk.SamplerMipmapModeNearest
	case gputypes.FilterModeLinear:
		return vk.SamplerMipmapModeLinear
	default:
		return vk.SamplerMipmapModeNearest
	}
}

// compareFunctionToVk converts a WebGPU compare function to Vulkan.
func compareFunctionToVk(fn gputypes.CompareFunction) vk.CompareOp {
	switch fn {
	case gputypes.CompareFunctionNever:
		return vk.CompareOpNever
	case gputypes.CompareFunctionLess:
		return vk.CompareOpLess
	case gputypes.CompareFunctionEqual:
		return vk.CompareOpEqual
	case gputypes.CompareFunctionLessEqual:
		return vk.CompareOpLessOrEqual
	case gputypes.CompareFunctionGreater:
		return vk.CompareOpGreater
	case gputypes.CompareFunctionNotEqual:
		return vk.CompareOpNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return vk.CompareOpGreaterOrEqual
	case gputypes.CompareFunctionAlways:
		return vk.CompareOpAlways
	default:
		return vk.CompareOpNever
	}
}

// shaderStagesToVk converts WebGPU shader stage flags to Vulkan.
func shaderStagesToVk(stages gputypes.ShaderStages) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if stages&gputypes.ShaderStageVertex != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageVertexBit)
	}
	if stages&gputypes.ShaderStageFragment != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageFragmentBit)
	}
	if stages&gputypes.ShaderStageCompute != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageComputeBit)
	}
	return flags
}

// bufferBindingTypeToVk converts a WebGPU buffer binding type to the
// Vulkan descriptor type used in a VkDescriptorSetLayoutBinding.
func bufferBindingTypeToVk(t gputypes.BufferBindingType) vk.DescriptorType {
	switch t {
	case gputypes.BufferBindingTypeUniform:
		return vk.DescriptorTypeUniformBuffer
	case gputypes.BufferBindingTypeStorage, gputypes.BufferBindingTypeReadOnlyStorage:
		return vk.DescriptorTypeStorageBuffer
	default:
		return vk.DescriptorTypeUniformBuffer
	}
}

// vertexStepModeToVk converts a WebGPU vertex step mode to Vulkan.
func vertexStepModeToVk(mode gputypes.VertexStepMode) vk.VertexInputRate {
	switch mode {
	case gputypes.VertexStepModeVertex:
		return vk.VertexInputRateVertex
	case gputypes.VertexStepModeInstance:
		return vk.VertexInputRateInstance
	default:
		return vk.VertexInputRateVertex
	}
}

// vertexFormatToVk converts a WebGPU vertex attribute format to Vulkan.
func vertexFormatToVk(format gputypes.VertexFormat) vk.Format {
	if f, ok := vertexFormatMap[format]; ok {
		return f
	}
	return vk.FormatR32g32b32a32Sfloat
}

var vertexFormatMap = map[gputypes.VertexFormat]vk.Format{
	gputypes.VertexFormatUint8x2:   vk.FormatR8g8Uint,
	gputypes.VertexFormatUint8x4:   vk.FormatR8g8b8a8Uint,
	gputypes.VertexFormatSint8x2:   vk.FormatR8g8Sint,
	gputypes.VertexFormatSint8x4:   vk.FormatR8g8b8a8Sint,
	gputypes.VertexFormatUnorm8x2:  vk.FormatR8g8Unorm,
	gputypes.VertexFormatUnorm8x4:  vk.FormatR8g8b8a8Unorm,
	gputypes.VertexFormatSnorm8x2:  vk.FormatR8g8Snorm,
	gputypes.VertexFormatSnorm8x4:  vk.FormatR8g8b8a8Snorm,
	gputypes.VertexFormatUint16x2:  vk.FormatR16g16Uint,
	gputypes.VertexFormatUint16x4:  vk.FormatR16g16b16a16Uint,
	gputypes.VertexFormatSint16x2:  vk.FormatR16g16Sint,
	gputypes.VertexFormatSint16x4:  vk.FormatR16g16b16a16Sint,
	gputypes.VertexFormatUnorm16x2: vk.FormatR16g16Unorm,
	gputypes.VertexFormatUnorm16x4: vk.FormatR16g16b16a16Unorm,
	gputypes.VertexFormatSnorm16x2: vk.FormatR16g16Snorm,
	gputypes.VertexFormatSnorm16x4: vk.FormatR16g16b16a16Snorm,
	gputypes.VertexFormatFloat16x2: vk.FormatR16g16Sfloat,
	gputypes.VertexFormatFloat16x4: vk.FormatR16g16b16a16Sfloat,
	gputypes.VertexFormatFloat32:   vk.FormatR32Sfloat,
	gputypes.VertexFormatFloat32x2: vk.FormatR32g32Sfloat,
	gputypes.VertexFormatFloat32x3: vk.FormatR32g32b32Sfloat,
	gputypes.VertexFormatFloat32x4: vk.FormatR32g32b32a32Sfloat,
	gputypes.VertexFormatUint32:    vk.FormatR32Uint,
	gputypes.VertexFormatUint32x2:  vk.FormatR32g32Uint,
	gputypes.VertexFormatUint32x3:  vk.FormatR32g32b32Uint,
	gputypes.VertexFormatUint32x4:  vk.FormatR32g32b32a32Uint,
	gputypes.VertexFormatSint32:    vk.FormatR32Sint,
	gputypes.VertexFormatSint32x2:  vk.FormatR32g32Sint,
	gputypes.VertexFormatSint32x3:  vk.FormatR32g32b32Sint,
	gputypes.VertexFormatSint32x4:  vk.FormatR32g32b32a32Sint,
	gputypes.VertexFormatUnorm1010102: vk.FormatA2b10g10r10UnormPack32,
}

// primitiveTopologyToVk converts a WebGPU primitive topology to Vulkan.
func primitiveTopologyToVk(topology gputypes.PrimitiveTopology) vk.PrimitiveTopology {
	switch topology {
	case gputypes.PrimitiveTopologyPointList:
		return vk.PrimitiveTopologyPointList
	case gputypes.PrimitiveTopologyLineList:
		return vk.PrimitiveTopologyLineList
	case gputypes.PrimitiveTopologyLineStrip:
		return vk.PrimitiveTopologyLineStrip
	case gputypes.PrimitiveTopologyTriangleList:
		return vk.PrimitiveTopologyTriangleList
	case gputypes.PrimitiveTopologyTriangleStrip:
		return vk.PrimitiveTopologyTriangleStrip
	default:
		return vk.PrimitiveTopologyTriangleList
	}
}

// cullModeToVk converts a WebGPU cull mode to Vulkan.
func cullModeToVk(mode gputypes.CullMode) vk.CullModeFlags {
	switch mode {
	case gputypes.CullModeNone:
		return vk.CullModeFlags(vk.CullModeNone)
	case gputypes.CullModeFront:
		return vk.CullModeFlags(vk.CullModeFrontBit)
	case gputypes.CullModeBack:
		return vk.CullModeFlags(vk.CullModeBackBit)
	default:
		return vk.CullModeFlags(vk.CullModeNone)
	}
}

// frontFaceToVk converts a WebGPU front face winding order to Vulkan.
func frontFaceToVk(face gputypes.FrontFace) vk.FrontFace {
	switch face {
	case gputypes.FrontFaceCCW:
		return vk.FrontFaceCounterClockwise
	case gputypes.FrontFaceCW:
		return vk.FrontFaceClockwise
	default:
		return vk.FrontFaceCounterClockwise
	}
}

// colorWriteMaskToVk converts a WebGPU color write mask to Vulkan color
// component flags.
func colorWriteMaskToVk(mask gputypes.ColorWriteMask) vk.ColorComponentFlags {
	var flags vk.ColorComponentFlags
	if mask&gputypes.ColorWriteMaskRed != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentRBit)
	}
	if mask&gputypes.ColorWriteMaskGreen != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentGBit)
	}
	if mask&gputypes.ColorWriteMaskBlue != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentBBit)
	}
	if mask&gputypes.ColorWriteMaskAlpha != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentABit)
	}
	return flags
}

// blendFactorToVk converts a WebGPU blend factor to Vulkan.
func blendFactorToVk(factor gputypes.BlendFactor) vk.BlendFactor {
	switch factor {
	case gputypes.BlendFactorZero:
		return vk.BlendFactorZero
	case gputypes.BlendFactorOne:
		return vk.BlendFactorOne
	case gputypes.BlendFactorSrc:
		return vk.BlendFactorSrcColor
	case gputypes.BlendFactorOneMinusSrc:
		return vk.BlendFactorOneMinusSrcColor
	case gputypes.BlendFactorSrcAlpha:
		return vk.BlendFactorSrcAlpha
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return vk.BlendFactorOneMinusSrcAlpha
	case gputypes.BlendFactorDst:
		return vk.BlendFactorDstColor
	case gputypes.BlendFactorOneMinusDst:
		return vk.BlendFactorOneMinusDstColor
	case gputypes.BlendFactorDstAlpha:
		return vk.BlendFactorDstAlpha
	case gputypes.BlendFactorOneMinusDstAlpha:
		return vk.BlendFactorOneMinusDstAlpha
	case gputypes.BlendFactorSrcAlphaSaturated:
		return vk.BlendFactorSrcAlphaSaturate
	case gputypes.BlendFactorConstant:
		return vk.BlendFactorConstantColor
	case gputypes.BlendFactorOneMinusConstant:
		return vk.BlendFactorOneMinusConstantColor
	default:
		return vk.BlendFactorOne
	}
}

// blendOperationToVk converts a WebGPU blend operation to Vulkan.
func blendOperationToVk(op gputypes.BlendOperation) vk.BlendOp {
	switch op {
	case gputypes.BlendOperationAdd:
		return vk.BlendOpAdd
	case gputypes.BlendOperationSubtract:
		return vk.BlendOpSubtract
	case gputypes.BlendOperationReverseSubtract:
		return vk.BlendOpReverseSubtract
	case gputypes.BlendOperationMin:
		return vk.BlendOpMin
	case gputypes.BlendOperationMax:
		return vk.BlendOpMax
	default:
		return vk.BlendOpAdd
	}
}

// stencilOperationToVk converts a hal.StencilOperation to Vulkan.
func stencilOperationToVk(op hal.StencilOperation) vk.StencilOp {
	switch op {
	case hal.StencilOperationKeep:
		return vk.StencilOpKeep
	case hal.StencilOperationZero:
		return vk.StencilOpZero
	case hal.StencilOperationReplace:
		return vk.StencilOpReplace
	case hal.StencilOperationInvert:
		return vk.StencilOpInvert
	case hal.StencilOperationIncrementClamp:
		return vk.StencilOpIncrementAndClamp
	case hal.StencilOperationDecrementClamp:
		return vk.StencilOpDecrementAndClamp
	case hal.StencilOperationIncrementWrap:
		return vk.StencilOpIncrementAndWrap
	case hal.StencilOperationDecrementWrap:
		return vk.StencilOpDecrementAndWrap
	default:
		return vk.StencilOpKeep
	}
}

// stencilFaceStateToVk converts a hal.StencilFaceState to a Vulkan
// VkStencilOpState. CompareMask, WriteMask and Reference are left zero;
// callers set them dynamically via SetStencilReference plus the pipeline's
// static masks where the descriptor does not separate them out.
func stencilFaceStateToVk(state hal.StencilFaceState) vk.StencilOpState {
	return vk.StencilOpState{
		FailOp:      stencilOperationToVk(state.FailOp),
		PassOp:      stencilOperationToVk(state.PassOp),
		DepthFailOp: stencilOperationToVk(state.DepthFailOp),
		CompareOp:   compareFunctionToVk(state.Compare),
	}
}

// textureViewDimensionToVk converts a WebGPU texture view dimension to a
// Vulkan image view type.
func textureViewDimensionToVk(dim gputypes.TextureViewDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureViewDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureViewDimension2D:
		return vk.ImageViewType2d
	case gputypes.TextureViewDimension2DArray:
		return vk.ImageViewType2dArray
	case gputypes.TextureViewDimensionCube:
		return vk.ImageViewTypeCube
	case gputypes.TextureViewDimensionCubeArray:
		return vk.ImageViewTypeCubeArray
	case gputypes.TextureViewDimension3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// textureDimensionToViewType converts a WebGPU texture dimension (as
// opposed to view dimension) directly to a Vulkan image view type, used
// when a TextureViewDescriptor omits its Dimension and it must be
// defaulted from the owning texture.
func textureDimensionToViewType(dim gputypes.TextureDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureDimension2D:
		return vk.ImageViewType2d
	case gputypes.TextureDimension3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// isDepthStencilFormat reports whether format carries a depth and/or
// stencil aspect.
func isDepthStencilFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8,
		gputypes.TextureFormatStencil8:
		return true
	default:
		return false
	}
}

// hasStencilAspect reports whether format carries a stencil aspect.
func hasStencilAspect(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32FloatStencil8,
		gputypes.TextureFormatStencil8:
		return true
	default:
		return false
	}
}

// textureAspectToVk converts a WebGPU texture aspect to Vulkan image
// aspect flags, resolving TextureAspectAll against format so that a
// depth-stencil texture's "all" aspect expands to both bits instead of
// falling back to color (invariant: aspect resolution is format-aware).
func textureAspectToVk(aspect gputypes.TextureAspect, format gputypes.TextureFormat) vk.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case gputypes.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	case gputypes.TextureAspectAll:
		if !isDepthStencilFormat(format) {
			return vk.ImageAspectFlags(vk.ImageAspectColorBit)
		}
		flags := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
		if hasStencilAspect(format) {
			flags |= vk.ImageAspectFlags(vk.ImageAspectStencilBit)
		}
		return flags
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

// textureAspectToVkSimple converts a WebGPU texture aspect to Vulkan
// image aspect flags without format context, defaulting TextureAspectAll
// (and any unrecognized value) to the color aspect. Used where no texture
// format is in scope, e.g. buffer<->image copy regions.
func textureAspectToVkSimple(aspect gputypes.TextureAspect) vk.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case gputypes.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}
