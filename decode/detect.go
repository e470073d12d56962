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

package decode

// sentinel is substituted for bytes past the end of a short source, so
// that the fixed 4-byte decision table below never needs to special-case
// a too-short input: 0xAA cannot appear in any BOM or the first byte of
// any encoded ASCII character, so it never spuriously matches.
const sentinel = 0xaa

// BOMLength returns the number of leading bytes that constitute an
// explicit byte-order mark for enc, or 0 if enc has no BOM (which never
// happens for the five encodings this package supports, but callers that
// loop over arbitrary encodings can rely on the zero case).
func BOMLength(enc Encoding) int {
	switch enc {
	case UTF8:
		return 3
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 0
	}
}

// Detect inspects up to the first four bytes of a source (as filled by a
// single more(4) call; short reads are padded with the 0xAA sentinel) and
// picks an encoding per the fixed decision table: an explicit BOM takes
// precedence; failing that, the positions of zero bytes disambiguate
// UTF-16 from UTF-32; the default is UTF-8.
//
// hasBOM reports whether the chosen encoding was detected via an explicit
// byte-order mark (in which case the caller should consume BOMLength(enc)
// bytes and emit a BOM token).
//
// The all-zero prefix (0x00 0x00 0x00 0x00) is inherited as ambiguous: it
// is reported as UTF-32BE here because the first byte being zero is
// checked before the second, but this is a conformance choice and not
// guaranteed correct for every valid YAML 1.2 stream that happens to
// start with four NUL bytes.
func Detect(first4 []byte) (enc Encoding, hasBOM bool) {
	var b [4]byte
	for i := range b {
		if i < len(first4) {
			b[i] = first4[i]
		} else {
			b[i] = sentinel
		}
	}

	switch {
	case b[0] == 0xfe && b[1] == 0xff:
		return UTF16BE, true
	case b[0] == 0xff && b[1] == 0xfe && b[2] == 0x00 && b[3] == 0x00:
		return UTF32LE, true
	case b[0] == 0xff && b[1] == 0xfe:
		return UTF16LE, true
	case b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xfe && b[3] == 0xff:
		return UTF32BE, true
	case b[0] == 0xef && b[1] == 0xbb && b[2] == 0xbf:
		return UTF8, true
	case b[0] == 0x00 && b[1] == 0x00 && b[2] == 0x00:
		return UTF32BE, false
	case b[0] == 0x00 && b[1] != 0x00 && b[2] == 0x00:
		return UTF16BE, false
	case b[0] != 0x00 && b[1] == 0x00 && b[2] == 0x00 && b[3] == 0x00:
		return UTF32LE, false
	case b[0] != 0x00 && b[1] == 0x00:
		return UTF16LE, false
	default:
		return UTF8, false
	}
}
