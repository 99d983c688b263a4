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

package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enginekit/intern"
)

func TestCollector(t *testing.T) {
	r, err := intern.NewRegistry(intern.Options{
		Capacity:        128,
		TrackReferences: true,
	})
	require.NoError(t, err)

	h, err := r.Intern("abcd")
	require.NoError(t, err)
	_, err = r.Intern("xy")
	require.NoError(t, err)
	r.Track(h, "loader_thread_1")

	expected := `
# HELP intern_registry_bytes Total length in bytes of all interned strings.
# TYPE intern_registry_bytes gauge
intern_registry_bytes 6
# HELP intern_registry_capacity Maximum number of strings the registry can hold.
# TYPE intern_registry_capacity gauge
intern_registry_capacity 128
# HELP intern_registry_strings Number of distinct interned strings.
# TYPE intern_registry_strings gauge
intern_registry_strings 2
# HELP intern_registry_tracked_handles Number of handles with outstanding tracked references.
# TYPE intern_registry_tracked_handles gauge
intern_registry_tracked_handles 1
`
	require.NoError(t, testutil.CollectAndCompare(
		NewCollector(r),
		strings.NewReader(expected),
	))
}

func TestCollectorDoesNotMutate(t *testing.T) {
	r, err := intern.NewRegistry(intern.Options{Capacity: 8})
	require.NoError(t, err)

	_, err = r.Intern("a")
	require.NoError(t, err)

	c := NewCollector(r)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, testutil.CollectAndCount(c))
	}
	assert.Equal(t, 1, r.Len())
}
