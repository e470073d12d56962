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

// Package decode implements the five fixed Unicode decoders used by the
// tokenizer, plus the encoding-detection heuristic that picks one of them
// from a source's leading bytes.
//
// Every decoder has the same shape: given a byte range and a cursor
// position, decode exactly one Unicode scalar, advance the cursor past
// whatever it consumed -- even on failure, so that the caller can
// resynchronize one byte at a time -- and report [Invalid] rather than an
// error. No decoder ever returns an error value; callers that need to
// surface a diagnostic do so by checking the returned code.
package decode

import "fmt"

// Encoding identifies one of the five Unicode encodings this package can
// decode. It is fixed for the lifetime of a parse.
type Encoding int8

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// String implements [fmt.Stringer], returning the canonical name used both
// in diagnostics and as the payload of a BOM token.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return fmt.Sprintf("decode.Encoding(%d)", int8(e))
	}
}

// Invalid is returned by a decoder in place of a Unicode scalar when the
// bytes at the cursor do not form a valid character in that encoding. It
// is negative so it can never collide with a real code point.
const Invalid rune = -1

// MaxLookahead is the largest number of bytes any decoder in this package
// needs available past the cursor before it can be called safely: six for
// UTF-8, four for UTF-16 (to read a full surrogate pair) and UTF-32.
const MaxLookahead = 6

// One decodes a single Unicode scalar from buf starting at *pos using enc,
// advances *pos past the consumed bytes (even on failure), and returns the
// decoded scalar or [Invalid].
func One(enc Encoding, buf []byte, pos *int) rune {
	switch enc {
	case UTF16LE:
		return decodeUTF16(buf, pos, false)
	case UTF16BE:
		return decodeUTF16(buf, pos, true)
	case UTF32LE:
		return decodeUTF32(buf, pos, false)
	case UTF32BE:
		return decodeUTF32(buf, pos, true)
	default:
		return decodeUTF8(buf, pos)
	}
}
