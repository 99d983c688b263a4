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
	validator "gopkg.in/validator.v2"
)

// Configuration is a configuration for a Registry, suitable for embedding
// in an application's YAML config.
type Configuration struct {
	// Capacity if specified bounds the number of distinct interned
	// strings. Zero means DefaultCapacity.
	Capacity int `yaml:"capacity" validate:"min=0"`

	// TrackReferences if set enables the recording reference tracker.
	TrackReferences bool `yaml:"trackReferences"`
}

// ConfigurationOptions carries the non-serializable collaborators a
// Registry needs.
type ConfigurationOptions struct {
	// Sink receives diagnostic records. Nil means NopSink.
	Sink Sink
}

// NewRegistry creates a new Registry from this configuration.
func (c Configuration) NewRegistry(opts ConfigurationOptions) (Registry, error) {
	if err := validator.Validate(c); err != nil {
		return nil, err
	}
	return NewRegistry(Options{
		Capacity:        c.Capacity,
		Sink:            opts.Sink,
		TrackReferences: c.TrackReferences,
	})
}
