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

//go:build unix

package source

import (
	"fmt"
	"os"
	"syscall"
)

// mmapSource maps the entire file into memory once; More and Less behave
// as they do for a fixed Memory source, since the whole window is already
// resident. Close unmaps.
type mmapSource struct {
	data   []byte
	begin  int
	offset int64
	owns   bool
	f      *os.File
}

func mmapFile(f *os.File, owns bool) (Source, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &mmapSource{owns: owns, f: f}, nil
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("source: mmap failed: %w", err)
	}
	return &mmapSource{data: data, owns: owns, f: f}, nil
}

func (m *mmapSource) More(size int) (int, error) {
	if size < 0 {
		return 0, ErrInvalidArgument
	}
	return 0, nil
}

func (m *mmapSource) Less(size int) error {
	if size < 0 || size > len(m.data)-m.begin {
		return ErrInvalidArgument
	}
	m.begin += size
	m.offset += int64(size)
	return nil
}

func (m *mmapSource) Window() []byte { return m.data[m.begin:] }
func (m *mmapSource) Offset() int64  { return m.offset }

func (m *mmapSource) Close() error {
	var err error
	if m.data != nil {
		err = syscall.Munmap(m.data)
		m.data = nil
	}
	if m.owns {
		m.owns = false
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

const mmapSupported = true
