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
	"sync"
)

// tracker is the reference-tracking capability behind Track, Release and
// Report. The recording variant is selected when Options.TrackReferences
// is set; otherwise the no-op variant keeps the call surface identical at
// zero cost.
type tracker interface {
	track(h Handle, owner Owner)
	release(h Handle, owner Owner) error
	copyEntries() map[Handle]map[Owner]int64
	outstanding() int
}

type nopTracker struct{}

func (nopTracker) track(Handle, Owner) {}

func (nopTracker) release(Handle, Owner) error { return nil }

func (nopTracker) copyEntries() map[Handle]map[Owner]int64 { return nil }

func (nopTracker) outstanding() int { return 0 }

type recordingTracker struct {
	sink Sink

	mtx sync.Mutex
	// entries holds outstanding reference counts per (handle, owner).
	// An entry is removed when its count reaches zero, so transient
	// high-churn strings do not accumulate bookkeeping.
	entries map[Handle]map[Owner]int64
}

func newRecordingTracker(sink Sink) *recordingTracker {
	return &recordingTracker{
		sink:    sink,
		entries: make(map[Handle]map[Owner]int64),
	}
}

func (t *recordingTracker) track(h Handle, owner Owner) {
	t.mtx.Lock()
	owners := t.entries[h]
	if owners == nil {
		owners = make(map[Owner]int64)
		t.entries[h] = owners
	}
	owners[owner]++
	t.mtx.Unlock()
}

func (t *recordingTracker) release(h Handle, owner Owner) error {
	t.mtx.Lock()
	owners := t.entries[h]
	n := owners[owner]
	if n == 0 {
		t.mtx.Unlock()
		t.sink.Emit(ErrorLevel, "reference released more times than tracked",
			Field{Key: "handle", Value: h.String()},
			Field{Key: "owner", Value: owner},
		)
		return errUnbalancedRelease(h, owner)
	}
	if n == 1 {
		delete(owners, owner)
		if len(owners) == 0 {
			delete(t.entries, h)
		}
	} else {
		owners[owner] = n - 1
	}
	t.mtx.Unlock()
	return nil
}

// copyEntries returns a deep copy of the outstanding reference counts. The
// lock is held only while copying, so a snapshot may be slightly stale by
// the time it is consumed.
func (t *recordingTracker) copyEntries() map[Handle]map[Owner]int64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	out := make(map[Handle]map[Owner]int64, len(t.entries))
	for h, owners := range t.entries {
		c := make(map[Owner]int64, len(owners))
		for owner, n := range owners {
			c[owner] = n
		}
		out[h] = c
	}
	return out
}

func (t *recordingTracker) outstanding() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.entries)
}
