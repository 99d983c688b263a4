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
	"fmt"
)

// Error kinds returned by this package. Callers match them with errors.Is;
// returned errors wrap these sentinels with call-specific context.
var (
	// ErrOutOfMemory is returned by Intern when the registry's record
	// table is exhausted.
	ErrOutOfMemory = errors.New("intern: registry capacity exhausted")

	// ErrInvalidHandle is returned by Resolve when a handle was not
	// produced by the resolving registry: the zero Handle, a handle from
	// another registry instance, or a corrupted one.
	ErrInvalidHandle = errors.New("intern: invalid handle")

	// ErrUnbalancedRelease is returned by Release when an owner releases
	// a reference it does not hold.
	ErrUnbalancedRelease = errors.New("intern: release without matching track")
)

func errOutOfMemory(capacity int) error {
	return fmt.Errorf("%w: capacity %d reached", ErrOutOfMemory, capacity)
}

func errInvalidHandle(h Handle) error {
	return fmt.Errorf("%w: %v", ErrInvalidHandle, h)
}

func errUnbalancedRelease(h Handle, owner Owner) error {
	return fmt.Errorf("%w: handle %v, owner %v", ErrUnbalancedRelease, h, owner)
}
