package types

import "github.com/gogpu/gputypes"

// BufferUsage describes how a buffer can be used.
//
// Aliased to gputypes.BufferUsage so that values flowing in from the
// public API (hal.BufferDescriptor.Usage) compare and mask correctly
// against the flag constants backend code uses internally.
type BufferUsage = gputypes.BufferUsage

const (
	// BufferUsageMapRead allows mapping the buffer for reading.
	BufferUsageMapRead = gputypes.BufferUsageMapRead
	// BufferUsageMapWrite allows mapping the buffer for writing.
	BufferUsageMapWrite = gputypes.BufferUsageMapWrite
	// BufferUsageCopySrc allows the buffer to be a copy source.
	BufferUsageCopySrc = gputypes.BufferUsageCopySrc
	// BufferUsageCopyDst allows the buffer to be a copy destination.
	BufferUsageCopyDst = gputypes.BufferUsageCopyDst
	// BufferUsageIndex allows use as an index buffer.
	BufferUsageIndex = gputypes.BufferUsageIndex
	// BufferUsageVertex allows use as a vertex buffer.
	BufferUsageVertex = gputypes.BufferUsageVertex
	// BufferUsageUniform allows use as a uniform buffer.
	BufferUsageUniform = gputypes.BufferUsageUniform
	// BufferUsageStorage allows use as a storage buffer.
	BufferUsageStorage = gputypes.BufferUsageStorage
	// BufferUsageIndirect allows use for indirect draw/dispatch.
	BufferUsageIndirect = gputypes.BufferUsageIndirect
	// BufferUsageQueryResolve allows use for query result resolution.
	BufferUsageQueryResolve = gputypes.BufferUsageQueryResolve
)

// BufferDescriptor describes a buffer.
type BufferDescriptor struct {
	// Label is a debug label.
	Label string
	// Size is the buffer size in bytes.
	Size uint64
	// Usage describes how the buffer will be used.
	Usage BufferUsage
	// MappedAtCreation indicates if the buffer is mapped at creation.
	MappedAtCreation bool
}

// BufferMapState describes the map state of a buffer.
type BufferMapState uint8

const (
	// BufferMapStateUnmapped means the buffer is not mapped.
	BufferMapStateUnmapped BufferMapState = iota
	// BufferMapStatePending means a map operation is pending.
	BufferMapStatePending
	// BufferMapStateMapped means the buffer is mapped.
	BufferMapStateMapped
)

// MapMode describes the access mode for buffer mapping.
type MapMode uint8

const (
	// MapModeRead maps the buffer for reading.
	MapModeRead MapMode = 1 << iota
	// MapModeWrite maps the buffer for writing.
	MapModeWrite
)

// BufferBindingType describes how a buffer is bound.
type BufferBindingType uint8

const (
	// BufferBindingTypeUndefined is an undefined binding type.
	BufferBindingTypeUndefined BufferBindingType = iota
	// BufferBindingTypeUniform binds as a uniform buffer.
	BufferBindingTypeUniform
	// BufferBindingTypeStorage binds as a storage buffer (read-write).
	BufferBindingTypeStorage
	// BufferBindingTypeReadOnlyStorage binds as a read-only storage buffer.
	BufferBindingTypeReadOnlyStorage
)

// IndexFormat describes the format of index buffer data.
//
// Aliased to gputypes.IndexFormat: hal.RenderPassEncoder.SetIndexBuffer
// takes a gputypes.IndexFormat and backend code needs the identical type.
type IndexFormat = gputypes.IndexFormat

const (
	// IndexFormatUint16 uses 16-bit unsigned integers.
	IndexFormatUint16 = gputypes.IndexFormatUint16
	// IndexFormatUint32 uses 32-bit unsigned integers.
	IndexFormatUint32 = gputypes.IndexFormatUint32
)
