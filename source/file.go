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

package source

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// FromFile wraps an *os.File as a dynamically-growing Source, reading it
// with ordinary Read calls. If owns is true, Close will close f.
func FromFile(f *os.File, owns bool) Source {
	return FromReader(f, owns)
}

// FromMmap memory-maps the entirety of f and wraps it as a Source. If owns
// is true, Close will unmap and close f. Returns an error if mmap is not
// supported on this platform (anything other than a unix target) or the
// underlying syscall fails.
func FromMmap(f *os.File, owns bool) (Source, error) {
	return mmapFile(f, owns)
}

// FromAuto opens f as a Source, preferring a memory-map and falling back
// to an ordinary read-based Source if mmap is unavailable or fails (for
// example, f is a pipe or this platform has no mmap support).
func FromAuto(f *os.File, owns bool) Source {
	if mmapSupported {
		if s, err := FromMmap(f, owns); err == nil {
			return s
		}
	}
	return FromFile(f, owns)
}

// FromPath opens path and wraps it with [FromAuto]. path == "-" denotes
// stdin, which is always opened with [FromFile] since standard input
// cannot be memory-mapped. An empty path yields an empty Source.
func FromPath(path string) (Source, error) {
	if path == "" {
		return FromMemory(nil), nil
	}
	if path == "-" {
		return FromFile(os.Stdin, false), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return FromAuto(f, true), nil
}

// Glob expands a doublestar pattern (supporting "**" for recursive
// matching) against the local filesystem and returns the sorted list of
// matching paths. This is a convenience for callers such as
// [github.com/orenbenkiki/yip.TokenizeAll] that want to open many sources
// from a single pattern; it does not itself open any Source.
func Glob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}
