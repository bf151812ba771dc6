// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"sync"

	"github.com/driftgpu/webgpu/hal"
	"github.com/driftgpu/webgpu/hal/vulkan/vk"
)

// FenceState is the lifecycle state of a submission Fence.
type FenceState int

const (
	// FenceReset is a fence that has never been submitted, or whose
	// callbacks already ran and was returned to the cache.
	FenceReset FenceState = iota
	// FenceInUse is a fence that was handed to vkQueueSubmit and has not
	// yet been observed as signaled.
	FenceInUse
	// FenceFinished is a fence whose wait has completed and whose
	// on-wait-complete callbacks have all fired exactly once.
	FenceFinished
)

// fenceCallback is a single deferred-release closure registered on a Fence.
// userdata/free mirror the spec's generic (callback, userdata, free) triple;
// in idiomatic Go the closure already captures its userdata, so free is
// folded into run itself where it matters (dropping resource refs).
type fenceCallback struct {
	run func()
}

// Fence wraps a single native VkFence together with the bookkeeping the
// rest of the HAL needs to treat it as a first-class deferred-release
// primitive: its state, and the ordered list of callbacks to fire exactly
// once when a wait on it succeeds.
//
// A Fence is never destroyed directly by its holder; it is returned to the
// FenceCache it came from via Put, which resets it for reuse.
type Fence struct {
	handle    vk.Fence
	state     FenceState
	callbacks []fenceCallback
	cache     *FenceCache
}

// Destroy implements hal.Resource. Per §4.1(b) a pooled native object is
// returned to its owning cache rather than destroyed outright; the native
// VkFence is only ever actually destroyed by FenceCache.Destroy at device
// teardown.
func (f *Fence) Destroy() {
	if f.cache != nil {
		f.cache.Put(f)
	}
}

// AddCallback registers cb to run exactly once, in insertion order, the
// next time this fence is observed Finished. Safe to call while the fence
// is Reset or InUse; undefined if called after the fence already finished
// (callers only ever register before submit).
func (f *Fence) AddCallback(cb func()) {
	f.callbacks = append(f.callbacks, fenceCallback{run: cb})
}

// State returns the fence's current lifecycle state.
func (f *Fence) State() FenceState { return f.state }

// runCallbacks fires every registered callback exactly once and clears the
// list so a recycled fence starts empty.
func (f *Fence) runCallbacks() {
	cbs := f.callbacks
	f.callbacks = nil
	for _, cb := range cbs {
		cb.run()
	}
}

// FenceCache hands out reusable Fences and drives their Reset→InUse→Finished
// lifecycle (spec §4.3). Submission code calls Get before vkQueueSubmit,
// Wait/WaitMany to block for completion (firing callbacks exactly once),
// and Put to return a Finished fence for reuse once its slot has been
// recycled (§4.6).
type FenceCache struct {
	mu     sync.Mutex
	cmds   *vk.Commands
	device vk.Device

	free []*Fence // Fences in FenceReset, ready to hand out.
}

// NewFenceCache creates an empty cache bound to a device's command table.
func NewFenceCache(cmds *vk.Commands, device vk.Device) *FenceCache {
	return &FenceCache{cmds: cmds, device: device}
}

// Get returns a Fence in FenceReset state: a recycled one if the free list
// is non-empty, otherwise a freshly created unsignaled VkFence.
func (c *FenceCache) Get() (*Fence, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := len(c.free); n > 0 {
		f := c.free[n-1]
		c.free = c.free[:n-1]
		f.state = FenceReset
		return f, nil
	}

	createInfo := vk.FenceCreateInfo{SType: vk.StructureTypeFenceCreateInfo}
	var handle vk.Fence
	result := c.cmds.CreateFence(c.device, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: fence cache: vkCreateFence failed: %d", result)
	}
	return &Fence{handle: handle, state: FenceReset, cache: c}, nil
}

// MarkSubmitted transitions f from Reset to InUse. Called once the fence
// handle has actually been passed to vkQueueSubmit.
func (c *FenceCache) MarkSubmitted(f *Fence) {
	c.mu.Lock()
	f.state = FenceInUse
	c.mu.Unlock()
}

// Wait blocks until f signals or timeoutNs elapses. On success it sets
// state=Finished and fires every registered callback in insertion order
// exactly once (spec property 5); a fence already Finished returns
// immediately without re-running callbacks.
func (c *FenceCache) Wait(f *Fence, timeoutNs uint64) error {
	c.mu.Lock()
	alreadyFinished := f.state == FenceFinished
	c.mu.Unlock()
	if alreadyFinished {
		return nil
	}

	result := c.cmds.WaitForFences(c.device, 1, &f.handle, vk.Bool32(vk.True), timeoutNs)
	switch result {
	case vk.Success:
		c.mu.Lock()
		wasFinished := f.state == FenceFinished
		f.state = FenceFinished
		c.mu.Unlock()
		if !wasFinished {
			f.runCallbacks()
		}
		return nil
	case vk.Timeout:
		return hal.ErrTimeout
	case vk.ErrorDeviceLost:
		return hal.ErrDeviceLost
	default:
		return fmt.Errorf("vulkan: fence cache: vkWaitForFences failed: %d", result)
	}
}

// WaitMany waits on every fence in fences whose state is InUse (Reset and
// already-Finished fences are skipped, matching §4.3's "those whose state
// is InUse"), firing callbacks for each as it completes.
func (c *FenceCache) WaitMany(fences []*Fence, timeoutNs uint64) error {
	handles := make([]vk.Fence, 0, len(fences))
	pending := make([]*Fence, 0, len(fences))
	for _, f := range fences {
		c.mu.Lock()
		inUse := f.state == FenceInUse
		c.mu.Unlock()
		if inUse {
			handles = append(handles, f.handle)
			pending = append(pending, f)
		}
	}
	if len(handles) == 0 {
		return nil
	}

	result := c.cmds.WaitForFences(c.device, uint32(len(handles)), &handles[0], vk.Bool32(vk.True), timeoutNs)
	switch result {
	case vk.Success:
		for _, f := range pending {
			c.mu.Lock()
			f.state = FenceFinished
			c.mu.Unlock()
			f.runCallbacks()
		}
		return nil
	case vk.Timeout:
		return hal.ErrTimeout
	case vk.ErrorDeviceLost:
		return hal.ErrDeviceLost
	default:
		return fmt.Errorf("vulkan: fence cache: vkWaitForFences (many) failed: %d", result)
	}
}

// Put resets f's native fence and returns it to the free list for reuse.
// The caller must only do this after f has reached Finished (normally right
// after the per-frame cache has waited on it during slot recycling, §4.6).
func (c *FenceCache) Put(f *Fence) {
	_ = c.cmds.ResetFences(c.device, 1, &f.handle)
	c.mu.Lock()
	f.state = FenceReset
	f.callbacks = nil
	c.free = append(c.free, f)
	c.mu.Unlock()
}

// Destroy releases every fence in the cache's free list; fences that were
// never returned with Put are not destroyed. Must only be called once the
// device is idle.
func (c *FenceCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.free {
		c.cmds.DestroyFence(c.device, f.handle, nil)
	}
	c.free = nil
}
