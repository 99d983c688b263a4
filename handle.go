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
	"fmt"

	"github.com/enginekit/intern/internal/identity"
)

// Handle is an opaque identifier for an interned string. It carries no
// text; Resolve on the owning Registry returns the canonical value.
//
// Handles are comparable with ==, usable as map keys, and cheap to copy.
// Two Handles are equal iff they were produced by interning equal text in
// the same Registry. The zero Handle is invalid.
type Handle struct {
	// index is the record table slot plus one, so the zero value never
	// references a record.
	index uint32

	// registry tags the owning registry instance, so handles cannot cross
	// registries undetected.
	registry uint32
}

// Valid reports whether h could have been produced by some registry. A
// valid handle may still fail to resolve in a registry it does not belong
// to.
func (h Handle) Valid() bool {
	return h.index != 0
}

// Less orders handles by internal identity: interning order within one
// registry, registry construction order across registries. The order is
// unrelated to the lexical order of the underlying text.
func (h Handle) Less(other Handle) bool {
	if h.registry != other.registry {
		return h.registry < other.registry
	}
	return h.index < other.index
}

// Hash returns a stable 64-bit hash of h, suitable for sharded or custom
// hashed containers.
func (h Handle) Hash() uint64 {
	return identity.NewAccumulator().
		AddUint64(uint64(h.registry)<<32 | uint64(h.index)).
		Value()
}

// String implements fmt.Stringer for diagnostics only; it does not resolve
// the text.
func (h Handle) String() string {
	if !h.Valid() {
		return "Handle(invalid)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.registry, h.index-1)
}
