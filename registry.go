// Copyright (c) 2026 EngineKit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package intern

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/enginekit/intern/internal/identity"
)

const (
	// DefaultCapacity is the record table size used when Options.Capacity
	// is zero.
	DefaultCapacity = 1 << 20

	// _numShards partitions the text-to-handle map to reduce lock
	// contention. Must be a power of two.
	_numShards = 64
)

var (
	// _registryIDs tags each registry instance so foreign handles are
	// detectable. The zero tag is never issued.
	_registryIDs = atomic.NewUint32(0)

	capabilitiesNone = &capabilities{
		tracking: false,
	}
	capabilitiesTracking = &capabilities{
		tracking: true,
	}
)

type capabilities struct {
	tracking bool
}

func (c *capabilities) Tracking() bool {
	return c.tracking
}

// Options is a set of options to construct a Registry.
type Options struct {
	// Capacity bounds the number of distinct strings the registry can
	// hold. Zero means DefaultCapacity. Interning beyond the bound fails
	// with ErrOutOfMemory.
	Capacity int

	// Sink receives diagnostics for invalid handles and unbalanced
	// releases. Nil means NopSink.
	Sink Sink

	// TrackReferences selects the recording reference tracker. When
	// false, Track, Release and Report are no-ops.
	TrackReferences bool
}

// NewRegistry creates a Registry with the given options.
func NewRegistry(opts Options) (Registry, error) {
	if opts.Capacity < 0 {
		return nil, errors.New("intern: negative capacity")
	}
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Sink == nil {
		opts.Sink = NopSink
	}

	r := &registry{
		id:      _registryIDs.Inc(),
		sink:    opts.Sink,
		records: make([]atomic.Pointer[string], opts.Capacity),
	}
	for i := range r.shards {
		r.shards[i].entries = make(map[string]Handle)
	}
	if opts.TrackReferences {
		r.tracker = newRecordingTracker(opts.Sink)
	} else {
		r.tracker = nopTracker{}
	}
	return r, nil
}

// NewTestRegistry creates a small Registry with reference tracking on, for
// use in tests.
func NewTestRegistry() Registry {
	r, err := NewRegistry(Options{
		Capacity:        1024,
		TrackReferences: true,
	})
	if err != nil {
		panic(err)
	}
	return r
}

type registry struct {
	id   uint32
	sink Sink

	shards [_numShards]shard

	// records is the canonical text table. Slots are published with an
	// atomic store under the inserting shard's lock and read without any
	// lock on the resolve path. A slot, once published, never changes.
	records []atomic.Pointer[string]

	next  atomic.Uint32 // next free record slot
	count atomic.Int64  // published records
	bytes atomic.Int64  // total published text length

	tracker tracker
}

type shard struct {
	mtx     sync.RWMutex
	entries map[string]Handle
}

func (r *registry) shardFor(s string) *shard {
	return &r.shards[identity.StringHash(s)&(_numShards-1)]
}

func (r *registry) Intern(s string) (Handle, error) {
	sh := r.shardFor(s)

	sh.mtx.RLock()
	h, ok := sh.entries[s]
	sh.mtx.RUnlock()
	if ok {
		return h, nil
	}

	sh.mtx.Lock()
	defer sh.mtx.Unlock()

	// Another goroutine may have inserted between the locks.
	if h, ok := sh.entries[s]; ok {
		return h, nil
	}

	slot := r.next.Inc() - 1
	if slot >= uint32(len(r.records)) {
		return Handle{}, errOutOfMemory(len(r.records))
	}

	// Detach the canonical copy from whatever buffer the caller sliced
	// it out of.
	owned := strings.Clone(s)
	r.records[slot].Store(&owned)

	h = Handle{index: slot + 1, registry: r.id}
	sh.entries[owned] = h
	r.count.Inc()
	r.bytes.Add(int64(len(owned)))
	return h, nil
}

func (r *registry) Resolve(h Handle) (string, error) {
	text, ok := r.lookup(h)
	if !ok {
		return "", r.rejectHandle(h)
	}
	return text, nil
}

func (r *registry) lookup(h Handle) (string, bool) {
	if h.registry != r.id || h.index == 0 || int64(h.index) > int64(len(r.records)) {
		return "", false
	}
	p := r.records[h.index-1].Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

func (r *registry) rejectHandle(h Handle) error {
	r.sink.Emit(ErrorLevel, "handle does not belong to this registry",
		Field{Key: "handle", Value: h.String()},
		Field{Key: "registry", Value: r.id},
	)
	return errInvalidHandle(h)
}

func (r *registry) Len() int {
	return int(r.count.Load())
}

func (r *registry) Contains(s string) bool {
	sh := r.shardFor(s)
	sh.mtx.RLock()
	_, ok := sh.entries[s]
	sh.mtx.RUnlock()
	return ok
}

func (r *registry) Track(h Handle, owner Owner) {
	r.tracker.track(h, owner)
}

func (r *registry) Release(h Handle, owner Owner) error {
	return r.tracker.release(h, owner)
}

func (r *registry) Report() TrackingSnapshot {
	snap := newTrackingSnapshot()
	for h, owners := range r.tracker.copyEntries() {
		// A tracked handle that does not resolve here (foreign or forged)
		// still appears, with empty text.
		text, _ := r.lookup(h)
		snap.add(h, text, owners)
	}
	return snap
}

func (r *registry) Stats() Stats {
	return Stats{
		InternedStrings: int(r.count.Load()),
		InternedBytes:   r.bytes.Load(),
		Capacity:        len(r.records),
		TrackedHandles:  r.tracker.outstanding(),
	}
}

func (r *registry) Capabilities() Capabilities {
	if _, ok := r.tracker.(nopTracker); ok {
		return capabilitiesNone
	}
	return capabilitiesTracking
}
