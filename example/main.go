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

package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/enginekit/intern"
	zapsink "github.com/enginekit/intern/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	registry, err := intern.NewRegistry(intern.Options{
		Capacity:        1 << 16,
		Sink:            zapsink.New(logger),
		TrackReferences: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Asset loaders intern the same path; both get the one handle.
	a, _ := registry.Intern("assets/meshes/player.mesh")
	b, _ := registry.Intern("assets/meshes/player.mesh")
	fmt.Println("deduplicated:", a == b)

	registry.Track(a, "mesh_loader")
	registry.Track(a, "render_pass")

	for h, entry := range registry.Report().Handles() {
		fmt.Printf("%v %q held by %d owner(s), %d reference(s)\n",
			h, entry.Text(), len(entry.Owners()), entry.Total())
	}

	// Releasing more than was tracked is reported through the sink and
	// returned as an error.
	registry.Release(a, "mesh_loader")
	if err := registry.Release(a, "mesh_loader"); err != nil {
		fmt.Println("caught:", err)
	}

	stats := registry.Stats()
	fmt.Printf("%d strings, %d bytes interned\n", stats.InternedStrings, stats.InternedBytes)
}
