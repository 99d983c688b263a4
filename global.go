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
	"sync"
)

// The process-wide convenience registry. Applications that wire a Registry
// through their composition root never touch it; smaller programs call
// Init once at startup, or rely on the lazily built default.
var (
	_globalMtx sync.Mutex
	_global    Registry
)

// ErrAlreadyInitialized is returned by Init when the process-wide registry
// was already constructed, whether by Init or by a prior Default call.
var ErrAlreadyInitialized = errors.New("intern: process-wide registry already initialized")

// Init constructs the process-wide registry with the given options,
// exactly once. Later Init calls fail with ErrAlreadyInitialized and leave
// the existing registry in place.
func Init(opts Options) (Registry, error) {
	_globalMtx.Lock()
	defer _globalMtx.Unlock()

	if _global != nil {
		return _global, ErrAlreadyInitialized
	}
	r, err := NewRegistry(opts)
	if err != nil {
		return nil, err
	}
	_global = r
	return r, nil
}

// Default returns the process-wide registry, constructing an untracked one
// with default options on first use if Init was never called.
func Default() Registry {
	_globalMtx.Lock()
	defer _globalMtx.Unlock()

	if _global == nil {
		r, err := NewRegistry(Options{})
		if err != nil {
			// Options{} cannot fail validation.
			panic(err)
		}
		_global = r
	}
	return _global
}
