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

// Package token defines the parsed token type and the accumulator that
// builds a stream of them from consumed characters.
package token

import (
	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/cursor"
)

// Position locates a token boundary in the source: byte/character offset,
// one-based line, and zero-based character-within-line.
type Position struct {
	ByteOffset int64
	CharOffset int64
	Line       int64
	LineChar   int64
}

// PositionOf extracts a Position from a decoded character.
func PositionOf(c cursor.Character) Position {
	return Position{
		ByteOffset: c.ByteOffset,
		CharOffset: c.CharOffset,
		Line:       c.Line,
		LineChar:   c.LineChar,
	}
}

// Token is one item of the parsed stream: a code, its payload (for Match
// and Fake codes), and the position its payload starts at.
type Token struct {
	Code       Code
	Bytes      []byte
	ByteOffset int64
	CharOffset int64
	Line       int64
	LineChar   int64
	Encoding   decode.Encoding
}

// Empty reports whether the token carries no payload bytes (true for
// every Begin/End token, and for Match/Fake tokens with a zero-length
// span).
func (t Token) Empty() bool { return len(t.Bytes) == 0 }

// Text returns the payload as a string, for diagnostics and the yeast
// writer.
func (t Token) Text() string { return string(t.Bytes) }
