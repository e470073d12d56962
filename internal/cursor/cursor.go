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

// Package cursor walks a source one decoded character at a time, keeping
// track of byte/character/line position and the grammar class mask of
// both the current and the previous character.
//
// Positions are kept as offsets into the source's sliding window rather
// than as raw pointers: a window reallocation (source.Source growing its
// buffer) only requires noticing that the window's start address moved,
// never adjusting per-character bookkeeping, so there is no analogue of
// rebase_pointer to carry over from the C implementation this package is
// modeled on.
package cursor

import (
	"fmt"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/class"
	"github.com/orenbenkiki/yip/source"
)

// maxEncodedCharWidth bounds the most bytes any supported encoding needs
// to decode a single character (UTF-8 over-long forms top out at 6).
const maxEncodedCharWidth = 6

// growthChunk is how many bytes Cursor asks the source for at a time when
// it needs more lookahead.
const growthChunk = 8192

// Character is a decoded Unicode scalar together with its class mask and
// its position in the source. It doubles as a one-character "fake token"
// in the sense that its ByteOffset/CharOffset/Line/LineChar fields are exactly what a
// real Token would carry if a Begin/End/Match token started or ended at
// this position.
type Character struct {
	Rune       rune
	Mask       class.Mask
	ByteOffset int64
	CharOffset int64
	Line       int64
	LineChar   int64
}

// EOF reports whether this character is the end-of-input sentinel.
func (c Character) EOF() bool { return c.Rune == eofRune }

// eofRune marks "ran out of input"; it is distinct from decode.Invalid
// ("bad byte sequence") and from class.EndOfLine (the Unicode line
// separator scalar 0xFFFF).
const eofRune = -2

// Cursor decodes one source.Source through one decode.Encoding, exposing
// the current and previous Character plus the raw bytes spanned since the
// position a caller last noted (used by the token accumulator to copy
// Match payloads).
type Cursor struct {
	src      source.Source
	encoding decode.Encoding
	sawEOF   bool

	curr Character
	prev Character

	// windowBegin is the byte offset (Cursor-relative, i.e. curr.ByteOffset
	// space) of the start of Window(); it lets BytesAt translate a
	// remembered ByteOffset into a slice of the live source window even
	// after More/Less has slid that window.
	windowBegin int64
	// curEnd is the offset (same space) one past the last byte consumed
	// for curr.
	curEnd int64
}

// New creates a cursor positioned just before the first character of src,
// which is assumed to already have had its encoding detected and any BOM
// bytes left in place (the BOM itself is surfaced as the first character
// like any other). Callers must call Advance once to load the first
// character before reading Curr.
func New(src source.Source, encoding decode.Encoding) *Cursor {
	c := &Cursor{
		src:      src,
		encoding: encoding,
		curr: Character{
			Rune:     decode.Invalid,
			ByteOffset: 0,
			CharOffset: -1,
			Line:       1,
			LineChar:   -1,
			Mask:       class.StartOfLine,
		},
	}
	c.prev = c.curr
	c.curEnd = 0
	return c
}

// Curr returns the current character.
func (c *Cursor) Curr() Character { return c.curr }

// Prev returns the previous character.
func (c *Cursor) Prev() Character { return c.prev }

// Encoding returns the encoding this cursor decodes with.
func (c *Cursor) Encoding() decode.Encoding { return c.encoding }

// Save returns the (curr, prev) pair, for a backtracking frame to keep.
func (c *Cursor) Save() (curr, prev Character) { return c.curr, c.prev }

// Restore resets (curr, prev) to a previously Saved pair. The source
// window itself is never rewound: characters are only ever consumed
// forward, and backtracking only rewinds which already-decoded Character
// the grammar is looking at relative to what has been staged as tokens.
// The end of the restored curr is re-derived from the window, so the next
// Advance resumes right after it.
func (c *Cursor) Restore(curr, prev Character) {
	c.curr = curr
	c.prev = prev
	c.curEnd = curr.ByteOffset
	if curr.Rune != eofRune && curr.CharOffset >= 0 {
		pos := int(curr.ByteOffset - c.windowBegin)
		decode.One(c.encoding, c.window(), &pos)
		c.curEnd = c.windowBegin + int64(pos)
	}
}

// ensureLookahead asks the source for more bytes until there is at least
// maxEncodedCharWidth bytes past curr's end, or EOF has been seen.
func (c *Cursor) ensureLookahead() error {
	if c.sawEOF {
		return nil
	}
	for int64(len(c.window())) < c.curEnd-c.windowBegin+maxEncodedCharWidth {
		n, err := c.src.More(growthChunk)
		if err != nil {
			return fmt.Errorf("cursor: reading more input: %w", err)
		}
		if n == 0 {
			c.sawEOF = true
			return nil
		}
	}
	return nil
}

func (c *Cursor) window() []byte { return c.src.Window() }

// Advance decodes the next character, updating Curr/Prev and the
// start-of-line propagation rule: a character inherits StartOfLine when
// the previous character was an end-of-input/line-separator sentinel that
// was itself start-of-line (this lets a production treat "nothing seen
// yet" and "last line was empty" uniformly).
func (c *Cursor) Advance() error {
	if c.curr.Rune == eofRune {
		return nil
	}

	c.prev = c.curr
	c.curr.ByteOffset = c.curEnd
	c.curr.CharOffset++
	c.curr.LineChar++

	if err := c.ensureLookahead(); err != nil {
		return err
	}

	rel := int(c.curEnd - c.windowBegin)
	win := c.window()
	if rel >= len(win) {
		c.sawEOF = true
		c.curr.Rune = eofRune
	} else {
		pos := rel
		c.curr.Rune = decode.One(c.encoding, win, &pos)
		c.curEnd = c.windowBegin + int64(pos)
	}

	mask := class.Classify(c.curr.Rune)
	prevSentinelStartOfLine := (c.prev.Rune < 0 || c.prev.Rune == class.EndOfLine) && c.prev.Mask&class.StartOfLine != 0
	c.curr.Mask = class.WithStartOfLine(mask, prevSentinelStartOfLine)

	return nil
}

// NextLine marks the upcoming character as start-of-line and resets the
// in-line character counter; called by a production right after it has
// consumed a line break.
func (c *Cursor) NextLine() {
	c.curr.Mask |= class.StartOfLine
	c.curr.LineChar = 0
	c.curr.Line++
}

// Release tells the underlying source that bytes strictly before offset
// are no longer needed, sliding the window forward. It is a no-op if
// offset is behind the window's current start.
func (c *Cursor) Release(offset int64) error {
	n := offset - c.windowBegin
	if n <= 0 {
		return nil
	}
	if err := c.src.Less(int(n)); err != nil {
		return fmt.Errorf("cursor: releasing consumed input: %w", err)
	}
	c.windowBegin += n
	return nil
}

// BytesAt returns the raw encoded bytes spanning [begin, end) in source
// byte-offset space; both offsets must fall within the live window.
func (c *Cursor) BytesAt(begin, end int64) []byte {
	if end <= begin {
		return nil
	}
	win := c.window()
	lo := int(begin - c.windowBegin)
	hi := int(end - c.windowBegin)
	if lo < 0 || hi > len(win) {
		return nil
	}
	return win[lo:hi]
}
