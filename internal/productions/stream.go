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

// Package productions implements a representative subset of the YAML 1.2
// grammar as [engine.Machine] state functions: a stream prelude (BOM,
// document markers, line breaks, block sequences), a double-quoted
// scalar body, and the plain-scalar/indicator primitives they share.
// This is not a full grammar generator; it is enough hand-written
// productions to realize every end-to-end scenario the token vocabulary
// is tested against.
package productions

import (
	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/class"
	"github.com/orenbenkiki/yip/internal/engine"
	"github.com/orenbenkiki/yip/internal/table"
	"github.com/orenbenkiki/yip/token"
)

const bom rune = '\uFEFF'

// boundary reports whether the current character cannot continue a bare
// word: end of input, white space, or a line break. Used to reject a
// partial match of a multi-character marker like "---" against a longer
// run of dashes.
func boundary(mask class.Mask, eof bool) bool {
	if eof {
		return true
	}
	return mask&(class.White|class.LineBreak) != 0
}

// matchLiteral attempts to consume exactly text from the cursor, staging
// it as a single flat token of code if it matches and is followed by a
// boundary character. On any mismatch the attempt is rolled back and the
// cursor is left exactly where it started.
func matchLiteral(ctx *engine.Context, text string, code token.Code) (bool, error) {
	ctx.PushState()
	ctx.BeginToken(code)
	for _, want := range text {
		curr := ctx.Cursor.Curr()
		if curr.EOF() || curr.Rune != want {
			ctx.ResetState()
			ctx.PopState()
			return false, nil
		}
		if err := ctx.NextChar(); err != nil {
			return false, err
		}
	}
	curr := ctx.Cursor.Curr()
	if !boundary(curr.Mask, curr.EOF()) {
		ctx.ResetState()
		ctx.PopState()
		return false, nil
	}
	if err := ctx.EndToken(code); err != nil {
		return false, err
	}
	ctx.PopState()
	return true, nil
}

// streamState values for the l-yaml-stream machine.
const (
	streamCheckBOM = iota
	streamDispatch
	streamInSequence
	streamDone
)

// NewStreamMachine implements l-yaml-stream: an optional leading BOM,
// then a sequence of document-start/document-end markers, line breaks,
// and (when a line begins with "- ") a block sequence of plain scalars,
// terminated by a balanced DONE.
func NewStreamMachine(spec table.Spec) engine.Machine {
	return func(ctx *engine.Context) (engine.Step, error) {
		switch ctx.State {
		case streamCheckBOM:
			ctx.State = streamDispatch
			curr := ctx.Cursor.Curr()
			if curr.Rune != bom || curr.CharOffset != 0 {
				return engine.Done, nil
			}
			ctx.BeginToken(token.BOM)
			if err := ctx.NextChar(); err != nil {
				return engine.Done, err
			}
			if err := ctx.EndToken(token.BOM); err != nil {
				return engine.Done, err
			}
			return engine.Produced, nil

		case streamDispatch:
			curr := ctx.Cursor.Curr()
			if curr.EOF() {
				ctx.State = streamDone
				return engine.Done, nil
			}

			if curr.Rune == decode.Invalid {
				return recoverInvalidByte(ctx)
			}

			if curr.Mask&class.LineBreak != 0 {
				return consumeBreak(ctx)
			}

			if curr.LineChar == 0 {
				if ok, err := matchLiteral(ctx, "---", token.DocumentStart); err != nil || ok {
					return stagedOrErr(err)
				}
				if ok, err := matchLiteral(ctx, "...", token.DocumentEnd); err != nil || ok {
					return stagedOrErr(err)
				}
				if curr.Rune == '-' {
					return enterSequenceEntry(ctx)
				}
			}

			return consumePlainLine(ctx)

		case streamInSequence:
			curr := ctx.Cursor.Curr()
			if curr.EOF() {
				ctx.EmptyToken(token.EndSequence)
				ctx.State = streamDone
				return engine.Produced, nil
			}
			if curr.Rune == decode.Invalid {
				return recoverInvalidByte(ctx)
			}
			if curr.Mask&class.LineBreak != 0 {
				return consumeBreak(ctx)
			}
			if curr.LineChar == 0 && curr.Rune == '-' {
				return enterSequenceEntry(ctx)
			}
			// A non-"-" line at column zero, or any other content, ends the
			// sequence; streamDispatch re-examines the same character.
			ctx.EmptyToken(token.EndSequence)
			ctx.State = streamDispatch
			return engine.Produced, nil

		case streamDone:
			ctx.EmptyToken(token.Done)
			return engine.Produced, nil
		}
		panic("productions: l-yaml-stream reached an unreachable state")
	}
}

func stagedOrErr(err error) (engine.Step, error) {
	if err != nil {
		return engine.Done, err
	}
	return engine.Produced, nil
}

// recoverInvalidByte diagnoses a byte sequence the decoder rejected and
// resynchronizes by stepping past it. The offending byte is consumed by
// the recovery itself rather than re-emitted as an Unparsed token: it is
// what the diagnostic is about, not unclassified data left over from it.
func recoverInvalidByte(ctx *engine.Context) (engine.Step, error) {
	ctx.Unexpected()
	if err := ctx.NextChar(); err != nil {
		return engine.Done, err
	}
	ctx.Stream.ResetWorking(ctx.Position(), ctx.Encoding)
	return engine.Produced, nil
}

func consumeBreak(ctx *engine.Context) (engine.Step, error) {
	ctx.BeginToken(token.Break)
	if err := ctx.NextChar(); err != nil {
		return engine.Done, err
	}
	ctx.NextLine()
	if err := ctx.EndToken(token.Break); err != nil {
		return engine.Done, err
	}
	return engine.Produced, nil
}

func enterSequenceEntry(ctx *engine.Context) (engine.Step, error) {
	if ctx.State != streamInSequence {
		ctx.EmptyToken(token.BeginSequence)
		ctx.State = streamInSequence
	}
	ctx.EmptyToken(token.BeginNode)

	ctx.BeginToken(token.Indicator)
	if err := ctx.NextChar(); err != nil {
		return engine.Done, err
	}
	if err := ctx.EndToken(token.Indicator); err != nil {
		return engine.Done, err
	}

	if curr := ctx.Cursor.Curr(); curr.Mask&class.White != 0 {
		ctx.BeginToken(token.White)
		if err := ctx.NextChar(); err != nil {
			return engine.Done, err
		}
		if err := ctx.EndToken(token.White); err != nil {
			return engine.Done, err
		}
	}

	ctx.EmptyToken(token.BeginScalar)
	ctx.BeginToken(token.Text)
	for {
		curr := ctx.Cursor.Curr()
		if curr.EOF() || curr.Mask&class.LineBreak != 0 {
			break
		}
		if err := ctx.NextChar(); err != nil {
			return engine.Done, err
		}
	}
	if err := ctx.EndToken(token.Text); err != nil {
		return engine.Done, err
	}
	ctx.EmptyToken(token.EndScalar)
	ctx.EmptyToken(token.EndNode)
	return engine.Produced, nil
}

func consumePlainLine(ctx *engine.Context) (engine.Step, error) {
	ctx.EmptyToken(token.BeginNode)
	ctx.EmptyToken(token.BeginScalar)
	ctx.BeginToken(token.Text)
	for {
		curr := ctx.Cursor.Curr()
		if curr.EOF() || curr.Mask&class.LineBreak != 0 {
			break
		}
		if err := ctx.NextChar(); err != nil {
			return engine.Done, err
		}
	}
	if err := ctx.EndToken(token.Text); err != nil {
		return engine.Done, err
	}
	ctx.EmptyToken(token.EndScalar)
	ctx.EmptyToken(token.EndNode)
	return engine.Produced, nil
}
