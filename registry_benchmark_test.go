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
	"testing"
)

func BenchmarkInternHit(b *testing.B) {
	r, _ := NewRegistry(Options{Capacity: 1024})
	if _, err := r.Intern("assets/meshes/player.mesh"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = r.Intern("assets/meshes/player.mesh")
	}
}

func BenchmarkInternHitParallel(b *testing.B) {
	r, _ := NewRegistry(Options{Capacity: 1024})
	if _, err := r.Intern("assets/meshes/player.mesh"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Intern("assets/meshes/player.mesh")
		}
	})
}

func BenchmarkInternMiss(b *testing.B) {
	r, _ := NewRegistry(Options{})
	names := make([]string, b.N)
	for i := range names {
		names[i] = fmt.Sprintf("assets/meshes/%d.mesh", i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = r.Intern(names[n])
	}
}

func BenchmarkResolve(b *testing.B) {
	r, _ := NewRegistry(Options{Capacity: 1024})
	h, err := r.Intern("assets/meshes/player.mesh")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = r.Resolve(h)
	}
}

func BenchmarkResolveParallel(b *testing.B) {
	r, _ := NewRegistry(Options{Capacity: 1024})
	h, err := r.Intern("assets/meshes/player.mesh")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Resolve(h)
		}
	})
}

func BenchmarkTrackRelease(b *testing.B) {
	r, _ := NewRegistry(Options{Capacity: 1024, TrackReferences: true})
	h, err := r.Intern("assets/meshes/player.mesh")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		r.Track(h, "bench")
		_ = r.Release(h, "bench")
	}
}
