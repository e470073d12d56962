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
	"io"
)

// readerSource is a dynamic-buffer Source fed by an arbitrary io.Reader.
// This backs both the generic stream case and, via [FromFile], raw
// file-descriptor reads: os.File implements io.Reader directly, so there
// is no separate "fd read" implementation type, just a different factory.
type readerSource struct {
	dynamicBuffer
	r      io.Reader
	owns   bool
	closer io.Closer
	eof    bool
}

// FromReader wraps r as a dynamically-growing Source. If owns is true,
// Close will close r if it implements io.Closer.
func FromReader(r io.Reader, owns bool) Source {
	s := &readerSource{r: r, owns: owns}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *readerSource) More(size int) (int, error) {
	if size < 0 {
		return 0, ErrInvalidArgument
	}
	if s.eof || size == 0 {
		return 0, nil
	}

	s.grow(size)
	n, err := s.r.Read(s.base[s.end : s.end+size])
	s.end += n
	if err == io.EOF {
		s.eof = true
		err = nil
	}
	if err != nil {
		return n, err
	}
	if n == 0 {
		s.eof = true
	}
	return n, nil
}

func (s *readerSource) Less(size int) error { return s.less(size) }
func (s *readerSource) Window() []byte      { return s.window() }
func (s *readerSource) Offset() int64       { return s.offset }

func (s *readerSource) Close() error {
	if s.owns && s.closer != nil {
		s.owns = false
		return s.closer.Close()
	}
	return nil
}
