// Copyright 2024 The yip Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source provides the byte-source abstraction the tokenizer reads
// from: a sliding window with a uniform interface over in-memory, streamed,
// file-descriptor, and memory-mapped inputs.
//
// A Source exposes three operations, More, Less, and Close, and two
// observables, Window and Offset. The window grows at its end via More and
// shrinks at its front via Less; Offset is the byte offset of the window's
// first byte within the original stream and is monotone non-decreasing
// over the life of a Source.
package source

import "errors"

// ErrInvalidArgument is returned by More/Less when given a negative size,
// and by Less when size exceeds the window.
var ErrInvalidArgument = errors.New("source: invalid argument")

// Source is the common interface implemented by every byte-source backend.
//
// Implementations are not required to be safe for concurrent use; a Source
// is exclusively owned by the parser that reads from it for the duration
// of a parse, per the single-threaded concurrency model.
type Source interface {
	// More extends the window by up to size bytes at the end. It returns
	// the number of bytes actually added, which may be less than size; it
	// returns exactly 0 when the source has no further bytes (end of
	// input), and a non-nil error if something went wrong reading more
	// data. Calling More may relocate the window's backing storage.
	More(size int) (int, error)

	// Less releases size bytes from the front of the window, advancing
	// Offset by size. size must not exceed len(Window()). Calling Less
	// may relocate the window's backing storage (in particular, dynamic
	// sources may compact their buffer).
	Less(size int) error

	// Close releases all resources held by this source. It is idempotent:
	// calling Close more than once is safe and a no-op after the first
	// call.
	Close() error

	// Window returns the source's currently buffered byte range. The
	// caller must not retain the returned slice across a call to More or
	// Less, since either may relocate the backing array.
	Window() []byte

	// Offset returns the byte offset of Window()[0] within the original
	// stream. It remains meaningful even when the window is empty (e.g.
	// at end of input).
	Offset() int64
}
