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

// growthIncrement is the canonical chunk dynamic sources grow by: good
// amortized cost, and a good match for a single read(2)/fread(3) call.
const growthIncrement = 8192

// dynamicBuffer is the shared growable backing store used by the
// stream-reader and file-descriptor-reader backends. It implements the
// same growth discipline as the original buffered source: growing rounds
// up to the next growthIncrement multiple, and compaction on Less only
// happens when the freed gap is at least as large as the remaining data,
// which bounds total copying to O(n) over the life of the source.
type dynamicBuffer struct {
	base   []byte // physical backing array
	begin  int    // window start, index into base
	end    int    // window end, index into base
	offset int64  // stream offset of base[begin]
}

// window returns the current logical window.
func (d *dynamicBuffer) window() []byte {
	return d.base[d.begin:d.end]
}

// grow ensures there is room for at least size additional bytes past end,
// reallocating the backing array if necessary. It returns whether a
// reallocation occurred (the base slice identity changed).
func (d *dynamicBuffer) grow(size int) bool {
	need := d.end + size
	if need <= cap(d.base) {
		return false
	}

	chunks := (need + growthIncrement - 1) / growthIncrement
	newBase := make([]byte, chunks*growthIncrement)
	copy(newBase, d.base[:d.end])
	d.base = newBase
	return true
}

// less implements the Less half of the Source contract, including the
// gap-driven compaction rule.
func (d *dynamicBuffer) less(size int) error {
	if size < 0 || size > d.end-d.begin {
		return ErrInvalidArgument
	}
	d.begin += size
	d.offset += int64(size)

	remaining := d.end - d.begin
	gap := d.begin
	if gap >= remaining {
		copy(d.base, d.base[d.begin:d.end])
		d.begin = 0
		d.end = remaining
	}
	return nil
}
