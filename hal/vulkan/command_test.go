// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux || windows

package vulkan

import (
	"testing"

	"github.com/driftgpu/webgpu/core/track"
	"github.com/driftgpu/webgpu/types"
)

// TestRenderPassEncoderBuffersCommands verifies that RenderPassEncoder's
// Set*/Draw* calls append to the software command list (§4.4) instead of
// touching the native command buffer, which End alone does.
func TestRenderPassEncoderBuffersCommands(t *testing.T) {
	enc := &CommandEncoder{isRecording: true}
	rpe := &RenderPassEncoder{encoder: enc}

	pipeline := &RenderPipeline{handle: 1, layout: 2}
	rpe.SetPipeline(pipeline)
	if len(rpe.commands) != 1 || rpe.commands[0].kind != renderCmdSetPipeline {
		t.Fatalf("SetPipeline did not record a renderCmdSetPipeline entry")
	}
	if rpe.activePipeline != pipeline {
		t.Fatalf("SetPipeline did not update activePipeline")
	}

	buf := &Buffer{handle: 10}
	rpe.SetVertexBuffer(0, buf, 16)
	rpe.SetIndexBuffer(buf, types.IndexFormatUint32, 0)
	rpe.Draw(3, 1, 0, 0)
	rpe.DrawIndexed(6, 1, 0, 0, 0)

	if len(rpe.commands) != 5 {
		t.Fatalf("expected 5 buffered commands, got %d", len(rpe.commands))
	}
	for _, kind := range []renderCommandKind{
		renderCmdSetPipeline, renderCmdSetVertexBuffer, renderCmdSetIndexBuffer,
		renderCmdDraw, renderCmdDrawIndexed,
	} {
		found := false
		for _, c := range rpe.commands {
			if c.kind == kind {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a buffered command of kind %d", kind)
		}
	}
}

// TestRenderPassEncoderNotRecordingIsNoop mirrors the existing
// ComputePassEncoder "not recording" tests: calls on an encoder whose
// CommandEncoder isn't recording must not buffer anything.
func TestRenderPassEncoderNotRecordingIsNoop(t *testing.T) {
	rpe := &RenderPassEncoder{encoder: &CommandEncoder{isRecording: false}}
	rpe.SetPipeline(&RenderPipeline{})
	rpe.Draw(1, 1, 0, 0)
	rpe.End() // must not panic even though nothing was ever begun natively

	if len(rpe.commands) != 0 {
		t.Errorf("expected no buffered commands while not recording, got %d", len(rpe.commands))
	}
}

// TestRenderPassEncoderEndNilEncoder mirrors ComputePassEncoder's "End does
// not panic" case for a torn-down or zero-value encoder.
func TestRenderPassEncoderEndNilEncoder(t *testing.T) {
	rpe := &RenderPassEncoder{encoder: nil}
	rpe.End()
}

// TestComputePassEncoderBuffersCommands verifies the compute-side tagged
// union records dispatch calls instead of emitting them immediately.
func TestComputePassEncoderBuffersCommands(t *testing.T) {
	cpe := &ComputePassEncoder{encoder: &CommandEncoder{isRecording: true}}

	pipeline := &ComputePipeline{handle: 1, layout: 2}
	cpe.SetPipeline(pipeline)
	cpe.Dispatch(8, 8, 1)

	buf := &Buffer{handle: 5}
	cpe.DispatchIndirect(buf, 32)

	if len(cpe.commands) != 3 {
		t.Fatalf("expected 3 buffered compute commands, got %d", len(cpe.commands))
	}
	if cpe.commands[1].x != 8 || cpe.commands[1].y != 8 || cpe.commands[1].z != 1 {
		t.Errorf("Dispatch recorded wrong workgroup counts: %+v", cpe.commands[1])
	}
	if cpe.commands[2].buffer != buf || cpe.commands[2].bufferOffset != 32 {
		t.Errorf("DispatchIndirect recorded wrong buffer/offset: %+v", cpe.commands[2])
	}
}

// TestExecuteBundleBuffersCommand verifies render-bundle replay is deferred
// the same way as every other render-pass command.
func TestExecuteBundleBuffersCommand(t *testing.T) {
	rpe := &RenderPassEncoder{encoder: &CommandEncoder{isRecording: true}}
	bundle := &RenderBundle{commandBuffer: 42}
	rpe.ExecuteBundle(bundle)

	if len(rpe.commands) != 1 || rpe.commands[0].kind != renderCmdExecuteBundle {
		t.Fatalf("ExecuteBundle did not record a renderCmdExecuteBundle entry")
	}
	if rpe.commands[0].bundle != bundle {
		t.Errorf("ExecuteBundle recorded the wrong bundle")
	}
}

// TestUseBufferAccumulatesResourceUsage is a light sanity check that the
// usage helpers consumed by End's accumulation pass are wired to
// track.BufferUses via resourceUsage, not a parallel ad-hoc enum.
func TestUseBufferAccumulatesResourceUsage(t *testing.T) {
	enc := &CommandEncoder{isRecording: true}
	buf := &Buffer{handle: 1}
	enc.useBuffer(buf, track.BufferUsesVertex)
	if enc.usage == nil || enc.usage.buffers[buf]&track.BufferUsesVertex == 0 {
		t.Errorf("useBuffer did not record BufferUsesVertex for the buffer")
	}
}
