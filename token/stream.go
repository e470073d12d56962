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

package token

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/orenbenkiki/yip/decode"
)

// Render materializes the payload bytes spanning [begin, end) of the
// source. The accumulator only tracks byte offsets while a token is being
// built; Render is invoked once, when the token is finalized, so that the
// common case of a character being silently folded into a growing Match
// span never touches the window's bytes until it matters.
type Render func(begin, end int64) []byte

// encodingName returns the canonical BOM payload name for an encoding,
// e.g. "UTF-8". Used by EndToken when retagging a BOM token.
func encodingName(e decode.Encoding) string {
	return e.String()
}

// Stream accumulates characters into tokens and stages them for
// delivery. It holds:
//
//   - a code stack: the nested chain of codes the working token belongs
//     to, bottomed out at [Unparsed];
//   - the working token: the span currently being grown, one character
//     at a time, by [Stream.ExtendTo];
//   - a staged tree: tokens that have been cut from the working span,
//     keyed by byte offset, so that [Stream.Take] delivers the
//     lowest-offset token the structure holds rather than merely
//     whatever was appended most recently. Tokens sharing an offset
//     (the zero-width Begin/End markers a single position can carry)
//     sit together in one bucket, in the order they were staged.
//
// A parallel insertion log (stagedOrder) records the byte offset of
// every staged token in the order [Stream.stage] was called, independent
// of the tree's own ordering; that log is what a push_state/reset_state
// pair (package frame) truncates back to the depth recorded at push
// time, discarding everything staged during an abandoned backtracking
// attempt, exactly as if it had never been staged, by unwinding the
// matching tree buckets in reverse.
type Stream struct {
	render Render

	codes []Code

	working    Token
	workingEnd int64

	staged      *btree.Map[int64, []Token]
	stagedOrder []int64

	delivered []Token
	index     *btree.Map[int64, int]
}

// NewStream creates an accumulator rendering payload bytes through
// render. The code stack starts with a single sentinel [Unparsed] entry,
// matching a parser that has not yet entered any production.
func NewStream(render Render) *Stream {
	s := &Stream{
		render:  render,
		codes:   []Code{Unparsed},
		working: Token{Code: Unparsed},
		staged:  &btree.Map[int64, []Token]{},
		index:   &btree.Map[int64, int]{},
	}
	return s
}

// CodesDepth returns the current depth of the code stack, for a
// backtracking frame to snapshot.
func (s *Stream) CodesDepth() int { return len(s.codes) }

// StagedDepth returns the number of tokens currently staged, for a
// backtracking frame to snapshot.
func (s *Stream) StagedDepth() int { return len(s.stagedOrder) }

// TruncateCodes restores the code stack to a previously snapshotted
// depth, as part of reset_state.
func (s *Stream) TruncateCodes(depth int) {
	if depth < 1 {
		depth = 1
	}
	s.codes = s.codes[:depth]
}

// stage inserts tok into the staged tree, keyed by its byte offset, and
// records the insertion in stagedOrder.
func (s *Stream) stage(tok Token) {
	bucket, _ := s.staged.Get(tok.ByteOffset)
	bucket = append(bucket, tok)
	s.staged.Set(tok.ByteOffset, bucket)
	s.stagedOrder = append(s.stagedOrder, tok.ByteOffset)
}

// TruncateStaged discards every staged token past a previously
// snapshotted depth, as part of reset_state: those tokens were produced
// by an abandoned backtracking attempt and must never reach the caller.
// It unwinds stagedOrder from the end, popping the most recently staged
// entry out of its tree bucket each time, which is always the last
// element of that bucket's slice since stage only ever appends.
func (s *Stream) TruncateStaged(depth int) {
	for len(s.stagedOrder) > depth {
		last := len(s.stagedOrder) - 1
		offset := s.stagedOrder[last]
		s.stagedOrder = s.stagedOrder[:last]

		bucket, _ := s.staged.Get(offset)
		bucket = bucket[:len(bucket)-1]
		if len(bucket) == 0 {
			s.staged.Delete(offset)
		} else {
			s.staged.Set(offset, bucket)
		}
	}
}

func (s *Stream) currentCode() Code { return s.codes[len(s.codes)-1] }

func (s *Stream) hasWorkingBytes() bool { return s.workingEnd > s.working.ByteOffset }

func (s *Stream) startWorking(code Code, at Position, encoding decode.Encoding) {
	s.working = Token{
		Code:       code,
		ByteOffset: at.ByteOffset,
		CharOffset: at.CharOffset,
		Line:       at.Line,
		LineChar:   at.LineChar,
		Encoding:   encoding,
	}
	s.workingEnd = at.ByteOffset
}

func (s *Stream) finalizeWorking() Token {
	tok := s.working
	if s.workingEnd > tok.ByteOffset {
		tok.Bytes = s.render(tok.ByteOffset, s.workingEnd)
	}
	return tok
}

// ExtendTo records that the working token's span now reaches end,
// maintaining the invariant that the working token's end always equals
// the cursor's current position.
func (s *Stream) ExtendTo(end int64) { s.workingEnd = end }

// ResetWorking retags the working token as [Unparsed] starting at at,
// discarding whatever span it had accumulated, as part of reset_state.
func (s *Stream) ResetWorking(at Position, encoding decode.Encoding) {
	s.startWorking(Unparsed, at, encoding)
}

// BeginToken pushes code onto the code stack. If the working token has
// not accumulated any bytes, it is simply retagged with code in place;
// otherwise its span is cut, staged, and a fresh working token starts at
// at.
func (s *Stream) BeginToken(code Code, at Position, encoding decode.Encoding) {
	s.codes = append(s.codes, code)
	if !s.hasWorkingBytes() {
		s.working.Code = code
		return
	}
	s.stage(s.finalizeWorking())
	s.startWorking(code, at, encoding)
}

// EndToken pops the code stack (refusing to pop past the outermost
// [Unparsed] sentinel), retags the working token with code, and stages
// it. A code of [BOM] additionally replaces the payload with the
// canonical name of the encoding the BOM was read in, and retags the
// token's own encoding to UTF-8 (the name is ASCII).
func (s *Stream) EndToken(code Code, at Position, encoding decode.Encoding) error {
	if len(s.codes) == 1 {
		if s.codes[0] != Unparsed {
			return fmt.Errorf("token: end_token at outermost depth with code %q, want %q", s.codes[0], Unparsed)
		}
	} else {
		s.codes = s.codes[:len(s.codes)-1]
	}

	s.working.Code = code
	tok := s.finalizeWorking()
	if code == BOM {
		tok.Bytes = []byte(encodingName(encoding))
		tok.Encoding = decode.UTF8
	}
	s.stage(tok)
	s.startWorking(s.currentCode(), at, encoding)
	return nil
}

// EmptyToken stages a zero-length token for code — used for every
// Begin/End group marker and for [Done] — flushing any accumulated
// working span first.
func (s *Stream) EmptyToken(code Code, at Position, encoding decode.Encoding) {
	if s.hasWorkingBytes() {
		s.stage(s.finalizeWorking())
	}
	s.stage(Token{
		Code:       code,
		ByteOffset: at.ByteOffset,
		CharOffset: at.CharOffset,
		Line:       at.Line,
		LineChar:   at.LineChar,
		Encoding:   encoding,
	})
	s.startWorking(s.currentCode(), at, encoding)
}

// FakeToken stages a token whose payload is the synthesized text (a
// diagnostic, typically), flushing any accumulated working span first.
func (s *Stream) FakeToken(code Code, text string, at Position, encoding decode.Encoding) {
	if s.hasWorkingBytes() {
		s.stage(s.finalizeWorking())
	}
	s.stage(Token{
		Code:       code,
		Bytes:      []byte(text),
		ByteOffset: at.ByteOffset,
		CharOffset: at.CharOffset,
		Line:       at.Line,
		LineChar:   at.LineChar,
		Encoding:   decode.UTF8,
	})
	s.startWorking(s.currentCode(), at, encoding)
}

// Unexpected stages an [Error] token diagnosing an unexpected character.
func (s *Stream) Unexpected(r rune, invalid, eof bool, at Position, encoding decode.Encoding) {
	s.FakeToken(Error, UnexpectedMessage(r, invalid, eof), at, encoding)
}

// Commit stages an [Error] token reporting that a named choice point's
// commitment was violated.
func (s *Stream) Commit(choice string, at Position, encoding decode.Encoding) {
	s.FakeToken(Error, ChoiceMessage(choice), at, encoding)
}

// NonPositiveN stages the canonical diagnostic for a non-positive
// repetition count.
func (s *Stream) NonPositiveN(at Position, encoding decode.Encoding) {
	s.FakeToken(Error, NonPositiveRepetitions, at, encoding)
}

// Take removes and returns the staged token with the lowest byte offset,
// if any, recording it in the delivered-token index used by
// [Stream.Lookup]. Delivery order is the tree's own key order, not mere
// insertion order: the Ordering Guarantee (tokens are delivered in
// non-decreasing byte-offset order) is enforced by the structure itself
// rather than by productions happening to stage tokens in that order.
func (s *Stream) Take() (Token, bool) {
	iter := s.staged.Iter()
	if !iter.First() {
		return Token{}, false
	}
	offset := iter.Key()
	bucket := iter.Value()

	tok := bucket[0]
	if len(bucket) == 1 {
		s.staged.Delete(offset)
	} else {
		s.staged.Set(offset, bucket[1:])
	}
	for i, off := range s.stagedOrder {
		if off == offset {
			s.stagedOrder = append(s.stagedOrder[:i], s.stagedOrder[i+1:]...)
			break
		}
	}

	s.index.Set(tok.ByteOffset, len(s.delivered))
	s.delivered = append(s.delivered, tok)
	return tok, true
}

// HasStaged reports whether any token is waiting to be delivered.
func (s *Stream) HasStaged() bool { return len(s.stagedOrder) > 0 }

// Lookup returns the last delivered token whose ByteOffset equals
// offset, if any. This is a diagnostic convenience (e.g. for a debugger
// or a golden-fixture diff to explain "what token covers this byte") and
// plays no role in ordinary delivery, which always proceeds through
// [Stream.Take].
func (s *Stream) Lookup(offset int64) (Token, bool) {
	i, ok := s.index.Get(offset)
	if !ok {
		return Token{}, false
	}
	return s.delivered[i], true
}
