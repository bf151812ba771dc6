package track

import (
	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/types"
)

// TextureUses represents internal texture usage states for tracking.
// These are more granular than types.TextureUsage: they split read and
// write access within the same binding type so a barrier is only
// synthesized when execution order actually matters.
type TextureUses uint32

// Texture usage flags for state tracking.
const (
	TextureUsesNone              TextureUses = 0
	TextureUsesCopySrc           TextureUses = 1 << 0 // Being read by copy operation
	TextureUsesCopyDst           TextureUses = 1 << 1 // Being written by copy operation
	TextureUsesSampled           TextureUses = 1 << 2 // Bound as sampled texture in shader
	TextureUsesStorageRead       TextureUses = 1 << 3 // Storage texture read-only
	TextureUsesStorageWrite      TextureUses = 1 << 4 // Storage texture read-write
	TextureUsesColorTarget       TextureUses = 1 << 5 // Bound as color attachment
	TextureUsesDepthStencilRead  TextureUses = 1 << 6 // Bound as depth/stencil attachment, read-only (e.g. LoadOp=Load, StoreOp=Store with no writes)
	TextureUsesDepthStencilWrite TextureUses = 1 << 7 // Bound as depth/stencil attachment with writes enabled
	TextureUsesPresent           TextureUses = 1 << 8 // Swapchain present source
)

// IsReadOnly returns true if the usage contains only read-only operations.
func (u TextureUses) IsReadOnly() bool {
	writeUsages := TextureUsesCopyDst | TextureUsesStorageWrite | TextureUsesColorTarget | TextureUsesDepthStencilWrite
	return u&writeUsages == 0
}

// IsEmpty returns true if no usage flags are set.
func (u TextureUses) IsEmpty() bool {
	return u == TextureUsesNone
}

// Contains returns true if all flags in other are present in u.
func (u TextureUses) Contains(other TextureUses) bool {
	return u&other == other
}

// IsCompatible returns true if two usages can coexist without a barrier.
// Read-only usages are compatible with each other; a write usage requires
// exclusive access and thus a transition unless the usage is identical.
func (u TextureUses) IsCompatible(other TextureUses) bool {
	if u.IsEmpty() || other.IsEmpty() {
		return true
	}
	if u.IsReadOnly() && other.IsReadOnly() {
		return true
	}
	return u == other
}

// ToTextureUsage converts internal uses to types.TextureUsage for HAL.
func (u TextureUses) ToTextureUsage() types.TextureUsage {
	var result types.TextureUsage

	if u&TextureUsesCopySrc != 0 {
		result |= types.TextureUsageCopySrc
	}
	if u&TextureUsesCopyDst != 0 {
		result |= types.TextureUsageCopyDst
	}
	if u&TextureUsesSampled != 0 {
		result |= types.TextureUsageTextureBinding
	}
	if u&(TextureUsesStorageRead|TextureUsesStorageWrite) != 0 {
		result |= types.TextureUsageStorageBinding
	}
	if u&(TextureUsesColorTarget|TextureUsesDepthStencilRead|TextureUsesDepthStencilWrite) != 0 {
		result |= types.TextureUsageRenderAttachment
	}

	return result
}

// TextureState holds the tracked state for a single texture, treated as a
// single subresource range covering the whole resource. Mip/array-level
// granularity is left to the encoder, matching how BufferState tracks
// whole-buffer state.
type TextureState struct {
	usage TextureUses
}

// Usage returns the current usage.
func (s TextureState) Usage() TextureUses {
	return s.usage
}

// TextureTracker tracks texture usage states for a device.
// Used to validate usage transitions and generate barriers.
type TextureTracker struct {
	states   []TextureState   // States indexed by TrackerIndex
	metadata ResourceMetadata // Tracks which indices are valid
}

// NewTextureTracker creates a new texture tracker.
func NewTextureTracker() *TextureTracker {
	return &TextureTracker{
		states:   make([]TextureState, 0, 64),
		metadata: NewResourceMetadata(),
	}
}

// InsertSingle tracks a new texture with initial usage.
func (t *TextureTracker) InsertSingle(index TrackerIndex, usage TextureUses) {
	t.ensureSize(int(index) + 1)
	t.states[index] = TextureState{usage: usage}
	t.metadata.SetOwned(index, true)
}

// Remove stops tracking a texture.
func (t *TextureTracker) Remove(index TrackerIndex) {
	if int(index) < len(t.states) {
		t.states[index] = TextureState{}
		t.metadata.SetOwned(index, false)
	}
}

// GetUsage returns the current usage of a texture.
func (t *TextureTracker) GetUsage(index TrackerIndex) TextureUses {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		return t.states[index].usage
	}
	return TextureUsesNone
}

// SetUsage updates the usage of a tracked texture.
func (t *TextureTracker) SetUsage(index TrackerIndex, usage TextureUses) {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		t.states[index].usage = usage
	}
}

// IsTracked returns true if the texture is being tracked.
func (t *TextureTracker) IsTracked(index TrackerIndex) bool {
	return int(index) < len(t.states) && t.metadata.IsOwned(index)
}

// Size returns the number of tracked textures.
func (t *TextureTracker) Size() int {
	return t.metadata.Count()
}

// ensureSize grows the state vector if needed.
func (t *TextureTracker) ensureSize(size int) {
	for len(t.states) < size {
		t.states = append(t.states, TextureState{})
	}
}

// Merge merges usage from scope into tracker, returning needed transitions.
// Called during queue submit to synchronize command buffer state with
// device state, mirroring BufferTracker.Merge.
func (t *TextureTracker) Merge(scope *TextureUsageScope) []PendingTextureTransition {
	var transitions []PendingTextureTransition

	for i := range scope.states {
		if i < 0 || i > int(^TrackerIndex(0)-1) {
			continue
		}
		index := TrackerIndex(i)
		if !scope.metadata.IsOwned(index) {
			continue
		}

		newUsage := scope.states[i].usage
		oldUsage := t.GetUsage(index)

		if !t.IsTracked(index) {
			t.InsertSingle(index, newUsage)
			continue
		}

		if !oldUsage.IsCompatible(newUsage) || oldUsage != newUsage {
			transitions = append(transitions, PendingTextureTransition{
				Index: index,
				Usage: TextureStateTransition{
					From: oldUsage,
					To:   newUsage,
				},
			})
			t.states[index].usage = newUsage
		}
	}

	return transitions
}

// TextureUsageScope tracks texture usage within a command buffer or pass.
// Each command buffer has its own scope that gets merged into the device
// tracker on submit.
type TextureUsageScope struct {
	states   []TextureState
	metadata ResourceMetadata
}

// NewTextureUsageScope creates a new usage scope.
func NewTextureUsageScope() *TextureUsageScope {
	return &TextureUsageScope{
		states:   make([]TextureState, 0, 32),
		metadata: NewResourceMetadata(),
	}
}

// SetUsage sets the usage for a texture in this scope.
// Returns error if the texture already has an incompatible usage.
func (s *TextureUsageScope) SetUsage(index TrackerIndex, usage TextureUses) error {
	s.ensureSize(int(index) + 1)

	if s.metadata.IsOwned(index) {
		existing := s.states[index].usage
		if !existing.IsCompatible(usage) {
			return &TextureUsageConflictError{
				Index:    index,
				Existing: existing,
				New:      usage,
			}
		}
		s.states[index].usage = existing | usage
	} else {
		s.states[index] = TextureState{usage: usage}
		s.metadata.SetOwned(index, true)
	}

	return nil
}

// GetUsage returns the current usage in this scope.
func (s *TextureUsageScope) GetUsage(index TrackerIndex) TextureUses {
	if int(index) < len(s.states) && s.metadata.IsOwned(index) {
		return s.states[index].usage
	}
	return TextureUsesNone
}

// IsUsed returns true if the texture is used in this scope.
func (s *TextureUsageScope) IsUsed(index TrackerIndex) bool {
	return int(index) < len(s.states) && s.metadata.IsOwned(index)
}

// Clear resets the scope for reuse.
func (s *TextureUsageScope) Clear() {
	s.states = s.states[:0]
	s.metadata.Clear()
}

// ensureSize grows the state vector if needed.
func (s *TextureUsageScope) ensureSize(size int) {
	for len(s.states) < size {
		s.states = append(s.states, TextureState{})
	}
}

// PendingTextureTransition represents a state transition that needs a
// barrier, including the layout change it implies.
type PendingTextureTransition struct {
	Index TrackerIndex
	Usage TextureStateTransition
}

// TextureStateTransition represents a from→to state change. The HAL
// backend derives the concrete image-layout transition from the usage
// pair (see hal/vulkan's textureUsageToAccessStageLayout).
type TextureStateTransition struct {
	From TextureUses
	To   TextureUses
}

// NeedsBarrier returns true if this transition requires a barrier.
func (t TextureStateTransition) NeedsBarrier() bool {
	if t.From == t.To {
		return false
	}
	if t.From.IsReadOnly() && t.To.IsReadOnly() {
		return false
	}
	return true
}

// IntoHAL converts a pending transition to a HAL texture barrier covering
// the whole resource.
func (p PendingTextureTransition) IntoHAL(texture hal.Texture) hal.TextureBarrier {
	return hal.TextureBarrier{
		Texture: texture,
		Range:   hal.TextureRange{Aspect: types.TextureAspectAll},
		Usage: hal.TextureUsageTransition{
			OldUsage: p.Usage.From.ToTextureUsage(),
			NewUsage: p.Usage.To.ToTextureUsage(),
		},
	}
}

// TextureUsageConflictError is returned when incompatible usages are
// detected within the same scope.
type TextureUsageConflictError struct {
	Index    TrackerIndex
	Existing TextureUses
	New      TextureUses
}

// Error implements the error interface.
func (e *TextureUsageConflictError) Error() string {
	return "texture usage conflict: incompatible usages in same scope"
}
