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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobal clears the process-wide registry between the global tests.
// Tests only; production code never tears the registry down.
func resetGlobal() {
	_globalMtx.Lock()
	_global = nil
	_globalMtx.Unlock()
}

func TestInitExactlyOnce(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	first, err := Init(Options{Capacity: 128, TrackReferences: true})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := Init(Options{Capacity: 999})
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Same(t, first, second)

	// Default returns the Init-constructed instance.
	assert.Same(t, first, Default())
	assert.Equal(t, 128, Default().Stats().Capacity)
}

func TestDefaultLazyConstruction(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	r := Default()
	require.NotNil(t, r)
	assert.False(t, r.Capabilities().Tracking())
	assert.Same(t, r, Default())

	// Init after lazy construction refuses to replace it.
	_, err := Init(Options{})
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestDefaultConcurrentFirstUse(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	const workers = 32

	var (
		wg        sync.WaitGroup
		start     = make(chan struct{})
		instances = make([]Registry, workers)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			instances[i] = Default()
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}
