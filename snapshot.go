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

type trackingSnapshot struct {
	handles map[Handle]TrackedHandle
}

func newTrackingSnapshot() *trackingSnapshot {
	return &trackingSnapshot{
		handles: make(map[Handle]TrackedHandle),
	}
}

func (s *trackingSnapshot) add(h Handle, text string, owners map[Owner]int64) {
	var total int64
	for _, n := range owners {
		total += n
	}
	s.handles[h] = &trackedHandle{
		handle: h,
		text:   text,
		owners: owners,
		total:  total,
	}
}

func (s *trackingSnapshot) Handles() map[Handle]TrackedHandle {
	return s.handles
}

type trackedHandle struct {
	handle Handle
	text   string
	owners map[Owner]int64
	total  int64
}

func (t *trackedHandle) Handle() Handle {
	return t.handle
}

func (t *trackedHandle) Text() string {
	return t.text
}

func (t *trackedHandle) Owners() map[Owner]int64 {
	return t.owners
}

func (t *trackedHandle) Total() int64 {
	return t.total
}
