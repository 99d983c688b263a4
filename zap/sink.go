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

// Package zap adapts a zap.Logger to the intern.Sink interface.
package zap

import (
	"go.uber.org/zap"

	"github.com/enginekit/intern"
)

// Sink emits intern diagnostics through a zap logger.
type Sink struct {
	logger *zap.Logger
}

// New creates a Sink backed by the given logger.
func New(logger *zap.Logger) Sink {
	return Sink{
		logger: logger,
	}
}

// Emit implements intern.Sink.
func (s Sink) Emit(level intern.Level, msg string, fields ...intern.Field) {
	zfields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zfields = append(zfields, zap.Any(f.Key, f.Value))
	}
	switch level {
	case intern.ErrorLevel:
		s.logger.Error(msg, zfields...)
	default:
		s.logger.Warn(msg, zfields...)
	}
}
