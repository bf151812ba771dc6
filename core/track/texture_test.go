package track

import (
	"errors"
	"testing"

	"github.com/driftgpu/webgpu/types"
)

func TestTextureUses_IsReadOnly(t *testing.T) {
	tests := []struct {
		name string
		uses TextureUses
		want bool
	}{
		{"none is read-only", TextureUsesNone, true},
		{"copy src is read-only", TextureUsesCopySrc, true},
		{"sampled is read-only", TextureUsesSampled, true},
		{"storage read is read-only", TextureUsesStorageRead, true},
		{"depth stencil read is read-only", TextureUsesDepthStencilRead, true},
		{"present is read-only", TextureUsesPresent, true},
		{"copy dst is write", TextureUsesCopyDst, false},
		{"storage write is write", TextureUsesStorageWrite, false},
		{"color target is write", TextureUsesColorTarget, false},
		{"depth stencil write is write", TextureUsesDepthStencilWrite, false},
		{"combined read-only", TextureUsesCopySrc | TextureUsesSampled, true},
		{"read + write", TextureUsesSampled | TextureUsesColorTarget, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.uses.IsReadOnly(); got != tt.want {
				t.Errorf("TextureUses(%d).IsReadOnly() = %v, want %v", tt.uses, got, tt.want)
			}
		})
	}
}

func TestTextureUses_IsEmpty(t *testing.T) {
	if !TextureUsesNone.IsEmpty() {
		t.Error("TextureUsesNone should be empty")
	}
	if TextureUsesCopySrc.IsEmpty() {
		t.Error("TextureUsesCopySrc should not be empty")
	}
}

func TestTextureUses_Contains(t *testing.T) {
	combined := TextureUsesCopySrc | TextureUsesSampled | TextureUsesStorageRead

	if !combined.Contains(TextureUsesCopySrc) {
		t.Error("Combined should contain CopySrc")
	}
	if !combined.Contains(TextureUsesSampled) {
		t.Error("Combined should contain Sampled")
	}
	if combined.Contains(TextureUsesColorTarget) {
		t.Error("Combined should not contain ColorTarget")
	}
}

func TestTextureUses_IsCompatible(t *testing.T) {
	tests := []struct {
		name string
		a    TextureUses
		b    TextureUses
		want bool
	}{
		{"empty with empty", TextureUsesNone, TextureUsesNone, true},
		{"empty with read", TextureUsesNone, TextureUsesSampled, true},
		{"empty with write", TextureUsesNone, TextureUsesColorTarget, true},
		{"read with read", TextureUsesCopySrc, TextureUsesSampled, true},
		{"write with same write", TextureUsesColorTarget, TextureUsesColorTarget, true},
		{"write with different write", TextureUsesColorTarget, TextureUsesDepthStencilWrite, false},
		{"read with write", TextureUsesSampled, TextureUsesColorTarget, false},
		{"write with read", TextureUsesColorTarget, TextureUsesSampled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsCompatible(tt.b); got != tt.want {
				t.Errorf("TextureUses(%d).IsCompatible(%d) = %v, want %v",
					tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTextureUses_ToTextureUsage(t *testing.T) {
	tests := []struct {
		name string
		uses TextureUses
		want types.TextureUsage
	}{
		{"none", TextureUsesNone, 0},
		{"copy src", TextureUsesCopySrc, types.TextureUsageCopySrc},
		{"copy dst", TextureUsesCopyDst, types.TextureUsageCopyDst},
		{"sampled", TextureUsesSampled, types.TextureUsageTextureBinding},
		{"storage read", TextureUsesStorageRead, types.TextureUsageStorageBinding},
		{"storage write", TextureUsesStorageWrite, types.TextureUsageStorageBinding},
		{"color target", TextureUsesColorTarget, types.TextureUsageRenderAttachment},
		{"depth stencil read", TextureUsesDepthStencilRead, types.TextureUsageRenderAttachment},
		{"depth stencil write", TextureUsesDepthStencilWrite, types.TextureUsageRenderAttachment},
		{
			"combined",
			TextureUsesCopySrc | TextureUsesSampled,
			types.TextureUsageCopySrc | types.TextureUsageTextureBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.uses.ToTextureUsage(); got != tt.want {
				t.Errorf("TextureUses(%d).ToTextureUsage() = %d, want %d",
					tt.uses, got, tt.want)
			}
		})
	}
}

func TestTextureTracker_InsertSingle(t *testing.T) {
	tracker := NewTextureTracker()

	tracker.InsertSingle(TrackerIndex(0), TextureUsesSampled)
	tracker.InsertSingle(TrackerIndex(5), TextureUsesCopySrc)

	if tracker.GetUsage(TrackerIndex(0)) != TextureUsesSampled {
		t.Error("Index 0 should have Sampled usage")
	}
	if tracker.GetUsage(TrackerIndex(5)) != TextureUsesCopySrc {
		t.Error("Index 5 should have CopySrc usage")
	}
	if tracker.Size() != 2 {
		t.Errorf("Size = %d, want 2", tracker.Size())
	}
}

func TestTextureTracker_Remove(t *testing.T) {
	tracker := NewTextureTracker()

	tracker.InsertSingle(TrackerIndex(0), TextureUsesSampled)
	tracker.InsertSingle(TrackerIndex(1), TextureUsesCopySrc)

	tracker.Remove(TrackerIndex(0))

	if tracker.IsTracked(TrackerIndex(0)) {
		t.Error("Index 0 should not be tracked after remove")
	}
	if !tracker.IsTracked(TrackerIndex(1)) {
		t.Error("Index 1 should still be tracked")
	}
	if tracker.Size() != 1 {
		t.Errorf("Size after remove = %d, want 1", tracker.Size())
	}

	// Remove non-existent should be safe
	tracker.Remove(TrackerIndex(100))
}

func TestTextureTracker_SetUsage(t *testing.T) {
	tracker := NewTextureTracker()

	tracker.InsertSingle(TrackerIndex(0), TextureUsesSampled)
	tracker.SetUsage(TrackerIndex(0), TextureUsesCopySrc)

	if tracker.GetUsage(TrackerIndex(0)) != TextureUsesCopySrc {
		t.Error("Usage should be updated")
	}

	// SetUsage on untracked texture should be no-op
	tracker.SetUsage(TrackerIndex(100), TextureUsesSampled)
}

func TestTextureUsageScope_SetUsage(t *testing.T) {
	scope := NewTextureUsageScope()

	err := scope.SetUsage(TrackerIndex(0), TextureUsesSampled)
	if err != nil {
		t.Fatalf("First SetUsage failed: %v", err)
	}

	// Compatible (read + read) usage should merge
	err = scope.SetUsage(TrackerIndex(0), TextureUsesCopySrc)
	if err != nil {
		t.Fatalf("Compatible SetUsage failed: %v", err)
	}
	expected := TextureUsesSampled | TextureUsesCopySrc
	if scope.GetUsage(TrackerIndex(0)) != expected {
		t.Errorf("Usage = %d, want %d", scope.GetUsage(TrackerIndex(0)), expected)
	}

	// Incompatible usage should fail
	err = scope.SetUsage(TrackerIndex(0), TextureUsesColorTarget)
	if err == nil {
		t.Error("Incompatible usage should return error")
	}
	var uce *TextureUsageConflictError
	if !errors.As(err, &uce) {
		t.Errorf("Error should be TextureUsageConflictError, got %T", err)
	}
}

func TestTextureUsageScope_Clear(t *testing.T) {
	scope := NewTextureUsageScope()

	_ = scope.SetUsage(TrackerIndex(0), TextureUsesSampled)
	_ = scope.SetUsage(TrackerIndex(1), TextureUsesCopySrc)

	scope.Clear()

	if scope.IsUsed(TrackerIndex(0)) {
		t.Error("Index 0 should not be used after clear")
	}
	if scope.IsUsed(TrackerIndex(1)) {
		t.Error("Index 1 should not be used after clear")
	}
}

func TestTextureTracker_Merge(t *testing.T) {
	tracker := NewTextureTracker()
	scope := NewTextureUsageScope()

	tracker.InsertSingle(TrackerIndex(0), TextureUsesSampled)
	_ = scope.SetUsage(TrackerIndex(0), TextureUsesColorTarget)

	transitions := tracker.Merge(scope)

	if len(transitions) != 1 {
		t.Fatalf("Expected 1 transition, got %d", len(transitions))
	}

	trans := transitions[0]
	if trans.Index != TrackerIndex(0) {
		t.Errorf("Transition index = %d, want 0", trans.Index)
	}
	if trans.Usage.From != TextureUsesSampled {
		t.Errorf("From = %d, want %d", trans.Usage.From, TextureUsesSampled)
	}
	if trans.Usage.To != TextureUsesColorTarget {
		t.Errorf("To = %d, want %d", trans.Usage.To, TextureUsesColorTarget)
	}

	if tracker.GetUsage(TrackerIndex(0)) != TextureUsesColorTarget {
		t.Error("Tracker usage should be updated after merge")
	}
}

func TestTextureTracker_Merge_NewTexture(t *testing.T) {
	tracker := NewTextureTracker()
	scope := NewTextureUsageScope()

	_ = scope.SetUsage(TrackerIndex(5), TextureUsesSampled)

	transitions := tracker.Merge(scope)

	if len(transitions) != 0 {
		t.Errorf("Expected 0 transitions for new texture, got %d", len(transitions))
	}
	if !tracker.IsTracked(TrackerIndex(5)) {
		t.Error("New texture should be tracked after merge")
	}
}

func TestTextureTracker_Merge_NoTransitionIfSame(t *testing.T) {
	tracker := NewTextureTracker()
	scope := NewTextureUsageScope()

	tracker.InsertSingle(TrackerIndex(0), TextureUsesSampled)
	_ = scope.SetUsage(TrackerIndex(0), TextureUsesSampled)

	transitions := tracker.Merge(scope)

	if len(transitions) != 0 {
		t.Errorf("Expected 0 transitions for same usage, got %d", len(transitions))
	}
}

func TestTextureStateTransition_NeedsBarrier(t *testing.T) {
	tests := []struct {
		name string
		from TextureUses
		to   TextureUses
		want bool
	}{
		{"same usage", TextureUsesSampled, TextureUsesSampled, false},
		{"read to read", TextureUsesSampled, TextureUsesCopySrc, false},
		{"read to write", TextureUsesSampled, TextureUsesColorTarget, true},
		{"write to read", TextureUsesColorTarget, TextureUsesSampled, true},
		{"write to write", TextureUsesColorTarget, TextureUsesDepthStencilWrite, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trans := TextureStateTransition{From: tt.from, To: tt.to}
			if got := trans.NeedsBarrier(); got != tt.want {
				t.Errorf("NeedsBarrier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPendingTextureTransition_IntoHAL(t *testing.T) {
	trans := PendingTextureTransition{
		Index: TrackerIndex(0),
		Usage: TextureStateTransition{
			From: TextureUsesSampled,
			To:   TextureUsesColorTarget,
		},
	}

	barrier := trans.IntoHAL(nil)

	if barrier.Usage.OldUsage != types.TextureUsageTextureBinding {
		t.Errorf("OldUsage = %d, want %d", barrier.Usage.OldUsage, types.TextureUsageTextureBinding)
	}
	if barrier.Usage.NewUsage != types.TextureUsageRenderAttachment {
		t.Errorf("NewUsage = %d, want %d", barrier.Usage.NewUsage, types.TextureUsageRenderAttachment)
	}
	if barrier.Range.Aspect != types.TextureAspectAll {
		t.Errorf("Range.Aspect = %v, want TextureAspectAll", barrier.Range.Aspect)
	}
}

func TestTextureUsageConflictError(t *testing.T) {
	err := &TextureUsageConflictError{
		Index:    TrackerIndex(5),
		Existing: TextureUsesSampled,
		New:      TextureUsesColorTarget,
	}

	if err.Error() == "" {
		t.Error("Error message should not be empty")
	}
}

func BenchmarkTextureTracker_InsertRemove(b *testing.B) {
	tracker := NewTextureTracker()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		idx := TrackerIndex(i % 1000)
		tracker.InsertSingle(idx, TextureUsesSampled)
		tracker.Remove(idx)
	}
}

func BenchmarkTextureTracker_Merge(b *testing.B) {
	tracker := NewTextureTracker()
	scope := NewTextureUsageScope()

	for i := 0; i < 100; i++ {
		tracker.InsertSingle(TrackerIndex(i), TextureUsesSampled)
		_ = scope.SetUsage(TrackerIndex(i), TextureUsesCopySrc)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tracker.Merge(scope)
	}
}
