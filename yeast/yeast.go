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

// Package yeast renders a token stream in the textual YEAST regression
// format: one line per token, a single-character code followed by the
// payload with non-printable bytes escaped. This is the format the
// reference test harness compares fixture ".output" files against, and
// is the tokenizer's authoritative externally-observable output.
package yeast

import (
	"bufio"
	"fmt"
	"io"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/token"
)

// WriteToken appends one token's line to w. A [token.Done] token is never
// written — per the reference harness, it only ends the loop that pulls
// tokens from the parser.
func WriteToken(w io.Writer, tok token.Token) error {
	if tok.Code == token.Done {
		return nil
	}
	var buf []byte
	buf = append(buf, byte(tok.Code))
	buf = appendPayload(buf, tok)
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// Write renders every token in toks to w, each on its own line, stopping
// at (and not emitting) the first [token.Done].
func Write(w io.Writer, toks []token.Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range toks {
		if tok.Code == token.Done {
			break
		}
		if err := WriteToken(bw, tok); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Dump renders every token in toks as a single string, for tests and
// other callers that want the whole stream at once rather than writing
// it incrementally.
func Dump(toks []token.Token) string {
	var sb buildingWriter
	_ = Write(&sb, toks)
	return string(sb)
}

type buildingWriter []byte

func (b *buildingWriter) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

// appendPayload decodes tok's bytes one scalar at a time using tok's
// recorded encoding and appends each one escaped exactly as the
// reference harness does: printable ASCII passes through verbatim
// except a literal backslash in a non-Error token, which is always
// escaped so it cannot be confused with the start of an escape
// sequence; everything else becomes \xNN, \uNNNN, or \UNNNNNNNN
// depending on its magnitude.
func appendPayload(buf []byte, tok token.Token) []byte {
	bytes := tok.Bytes
	pos := 0
	for pos < len(bytes) {
		r := decode.One(tok.Encoding, bytes, &pos)
		if r < 0 {
			continue
		}
		if r >= ' ' && r <= '~' && (tok.Code == token.Error || r != '\\') {
			buf = append(buf, byte(r))
			continue
		}
		buf = appendEscaped(buf, r)
	}
	return buf
}

func appendEscaped(buf []byte, r rune) []byte {
	switch {
	case r <= 0xff:
		return fmt.Appendf(buf, `\x%02x`, r)
	case r <= 0xffff:
		return fmt.Appendf(buf, `\u%04x`, r)
	default:
		return fmt.Appendf(buf, `\U%08x`, r)
	}
}
