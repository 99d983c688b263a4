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

// Package intern provides process-wide string interning: repeated text
// values (resource names, asset paths, identifiers) are deduplicated into
// cheap, comparable Handles backed by a single canonical copy. An optional
// reference tracker records who holds which interned value, for leak and
// churn diagnostics.
package intern

// Registry deduplicates strings into Handles and resolves Handles back to
// their canonical text. A Registry is safe for concurrent use from any
// number of goroutines. Interned entries live until the Registry itself is
// discarded; there is no eviction.
//
// The reference-tracking methods are always callable. When the Registry was
// built without tracking they are no-ops, so callers never need to branch
// on whether tracking is live.
type Registry interface {
	// Intern returns the Handle for s, storing a canonical copy on first
	// use. Interning the same text always yields the same Handle. The
	// empty string is a valid, distinct value.
	Intern(s string) (Handle, error)

	// Resolve returns the canonical text for h. It fails with
	// ErrInvalidHandle if h was not produced by this Registry.
	Resolve(h Handle) (string, error)

	// Len returns the number of distinct interned strings.
	Len() int

	// Contains reports whether s has been interned already, without
	// interning it.
	Contains(s string) bool

	// Track records that owner holds a reference to h.
	Track(h Handle, owner Owner)

	// Release drops one reference to h held by owner. It fails with
	// ErrUnbalancedRelease if owner does not hold one.
	Release(h Handle, owner Owner) error

	// Report returns a point-in-time copy of all handles with outstanding
	// tracked references. Tracking calls are not blocked while the copy
	// is being consumed.
	Report() TrackingSnapshot

	// Stats returns counters describing the registry's contents.
	Stats() Stats

	// Capabilities describes which optional features are live.
	Capabilities() Capabilities
}

// Owner identifies who holds a reference to a tracked Handle: a source
// location, a subsystem tag, a loader id. It is opaque to the tracker,
// which only requires it to be comparable.
type Owner interface{}

// Capabilities is a description of a registry's optional features.
type Capabilities interface {
	// Tracking reports whether reference tracking is recording.
	Tracking() bool
}

// TrackingSnapshot is a point-in-time view of outstanding tracked
// references. It is a copy; concurrent tracking does not mutate it.
type TrackingSnapshot interface {
	// Handles returns the tracked handles keyed by Handle. Only handles
	// with a non-zero reference count appear.
	Handles() map[Handle]TrackedHandle
}

// TrackedHandle is the snapshot of a single handle's outstanding
// references.
type TrackedHandle interface {
	// Handle returns the tracked handle.
	Handle() Handle

	// Text returns the handle's resolved text, or the empty string if the
	// handle does not resolve in the reporting registry.
	Text() string

	// Owners returns the outstanding reference count per owner.
	Owners() map[Owner]int64

	// Total returns the outstanding reference count across all owners.
	Total() int64
}

// Stats are point-in-time registry counters.
type Stats struct {
	// InternedStrings is the number of distinct interned strings.
	InternedStrings int

	// InternedBytes is the total length of all interned strings.
	InternedBytes int64

	// Capacity is the maximum number of strings the registry can hold.
	Capacity int

	// TrackedHandles is the number of handles with outstanding tracked
	// references. Always zero when tracking is off.
	TrackedHandles int
}

// Level is the severity of a diagnostic record.
type Level int

const (
	// WarnLevel marks recoverable diagnostics.
	WarnLevel Level = iota

	// ErrorLevel marks contract violations such as invalid handles and
	// unbalanced releases.
	ErrorLevel
)

// Field is a key/value pair attached to a diagnostic record.
type Field struct {
	Key   string
	Value interface{}
}

// Sink receives structured diagnostic records from a registry. The
// registry chooses neither formatting nor destination; implementations do.
// Sinks must be safe for concurrent use.
type Sink interface {
	Emit(level Level, msg string, fields ...Field)
}

// NopSink is a Sink that discards everything. It is the default when
// Options.Sink is nil.
var NopSink Sink = nopSink{}

type nopSink struct{}

func (nopSink) Emit(Level, string, ...Field) {}
