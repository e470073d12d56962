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

// Package engine is the production runtime: it owns the cursor, the
// backtracking frame stack, and the token accumulator, and drives a
// [Machine] (one per production) through them one step at a time.
package engine

import (
	"fmt"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/cursor"
	"github.com/orenbenkiki/yip/internal/frame"
	"github.com/orenbenkiki/yip/source"
	"github.com/orenbenkiki/yip/token"
)

// Step is what a [Machine] invocation accomplished.
type Step int8

const (
	// Done means the machine made progress but has no token ready yet;
	// the driver loop calls it again immediately.
	Done Step = iota
	// Produced means at least one token is now staged in the context's
	// Stream; the driver loop delivers staged tokens before calling the
	// machine again.
	Produced
)

// Machine is one production's state-machine step function. It is called
// repeatedly by [Context.NextToken] and interprets ctx.State through a
// switch, exactly the shape a generated production would take: the
// generator is out of scope here, but the contract it must honor is this
// function type plus the Context operations below.
//
// A Machine must never return [Done] forever without making any more
// progress: on EOF with nothing left to do, a well-formed production
// empties every open code via EmptyToken/EndToken and finally emits
// [token.Done], which NextToken treats as permanent end of stream.
type Machine func(ctx *Context) (Step, error)

// Context bundles everything a Machine needs: the decoded character
// cursor, the backtracking frame stack, the token accumulator, and the
// small integer scratch fields productions use to hold their state and
// loop counters, mirroring the YIP struct's state/i/n fields.
type Context struct {
	Source   source.Source
	Encoding decode.Encoding
	Cursor   *cursor.Cursor
	Frames   *frame.Stack
	Stream   *token.Stream

	// State is the production's current state number; a Machine
	// interprets it via a switch and advances it before returning.
	State int
	// N is the indentation parameter threaded through productions
	// parameterized by it (s-indent(n) and friends); NoIndent when absent.
	N int
	// I is a general-purpose loop counter scratch field, analogous to the
	// original's "I" field, available for a production's own bookkeeping.
	I int

	machine Machine
	done    bool
}

// NoIndent marks N as "no indentation parameter was supplied".
const NoIndent = -1

// New creates a Context reading src through encoding, running machine
// starting at state 0.
func New(src source.Source, encoding decode.Encoding, machine Machine, n int) (*Context, error) {
	cur := cursor.New(src, encoding)
	ctx := &Context{
		Source:   src,
		Encoding: encoding,
		Cursor:   cur,
		machine:  machine,
		N:        n,
	}
	ctx.Stream = token.NewStream(func(begin, end int64) []byte {
		return cur.BytesAt(begin, end)
	})
	ctx.Frames = frame.NewStack(cur.Curr())

	if err := cur.Advance(); err != nil {
		return nil, fmt.Errorf("engine: priming cursor: %w", err)
	}
	ctx.Stream.ExtendTo(cur.Curr().ByteOffset)
	return ctx, nil
}

// Position returns the current cursor position as a [token.Position].
func (ctx *Context) Position() token.Position { return token.PositionOf(ctx.Cursor.Curr()) }

// NextChar advances the cursor by one character and extends the working
// token's span to cover it. The frame stack is not touched: PushState
// takes its rollback anchor from the live cursor.
func (ctx *Context) NextChar() error {
	if err := ctx.Cursor.Advance(); err != nil {
		return err
	}
	ctx.Stream.ExtendTo(ctx.Cursor.Curr().ByteOffset)
	return nil
}

// NextLine delegates to the cursor, see [cursor.Cursor.NextLine].
func (ctx *Context) NextLine() { ctx.Cursor.NextLine() }

// PushState starts a new backtracking attempt at the live position.
func (ctx *Context) PushState() {
	curr, prev := ctx.Cursor.Save()
	ctx.Frames.Push(curr, prev, ctx.Stream.StagedDepth(), ctx.Stream.CodesDepth())
}

// SetState commits the current attempt's position as the new fallback,
// without ending the backtracking attempt.
func (ctx *Context) SetState() {
	curr, prev := ctx.Cursor.Save()
	ctx.Frames.Pop()
	ctx.Frames.Push(curr, prev, ctx.Stream.StagedDepth(), ctx.Stream.CodesDepth())
}

// ResetState abandons the current backtracking attempt, rewinding the
// cursor, the code stack, and the staged-token queue to their state at
// the matching PushState.
func (ctx *Context) ResetState() {
	curr, prev, codesDepth, stagedDepth := ctx.Frames.Reset()
	ctx.Cursor.Restore(curr, prev)
	ctx.Stream.TruncateCodes(codesDepth)
	ctx.Stream.TruncateStaged(stagedDepth)
	ctx.Stream.ResetWorking(token.PositionOf(curr), ctx.Encoding)
}

// PopState commits the current backtracking attempt and discards the
// frame, keeping the attempt's progress.
func (ctx *Context) PopState() { ctx.Frames.Pop() }

// IsSameState reports whether the cursor has not moved since the
// matching PushState.
func (ctx *Context) IsSameState() bool {
	return ctx.Frames.IsSameState(ctx.Cursor.Curr().ByteOffset)
}

// BeginToken, EndToken, EmptyToken, FakeToken, Unexpected, Commit, and
// NonPositiveN forward to the Stream at the current position, saving
// every call site from repeating token.PositionOf(ctx.Cursor.Curr()).

func (ctx *Context) BeginToken(code token.Code) {
	ctx.Stream.BeginToken(code, ctx.Position(), ctx.Encoding)
}

func (ctx *Context) EndToken(code token.Code) error {
	return ctx.Stream.EndToken(code, ctx.Position(), ctx.Encoding)
}

func (ctx *Context) EmptyToken(code token.Code) {
	ctx.Stream.EmptyToken(code, ctx.Position(), ctx.Encoding)
}

func (ctx *Context) FakeToken(code token.Code, text string) {
	ctx.Stream.FakeToken(code, text, ctx.Position(), ctx.Encoding)
}

func (ctx *Context) Unexpected() {
	curr := ctx.Cursor.Curr()
	ctx.Stream.Unexpected(curr.Rune, curr.Rune == decode.Invalid, curr.EOF(), ctx.Position(), ctx.Encoding)
}

func (ctx *Context) Commit(choice string) {
	ctx.Stream.Commit(choice, ctx.Position(), ctx.Encoding)
}

func (ctx *Context) NonPositiveN() {
	ctx.Stream.NonPositiveN(ctx.Position(), ctx.Encoding)
}

// NextToken drains any already-staged tokens first; once the staged
// queue is empty, it invokes the Machine until either an error occurs or
// a new token has been staged. It returns (nil, nil) once [token.Done]
// has been delivered and the driver must not be called again.
//
// This mirrors the shape of the original yip_next_token/next_token/
// last_token trio, simplified by package token.Stream's byte-offset-ordered
// staging queue: a
// raw C stack index recycling scheme is not idiomatic Go and buys
// nothing once the accumulator owns its own queue outright.
func (ctx *Context) NextToken() (*token.Token, error) {
	if ctx.done {
		return nil, nil
	}
	for {
		if tok, ok := ctx.Stream.Take(); ok {
			if tok.Code == token.Done {
				ctx.done = true
			}
			return &tok, nil
		}
		step, err := ctx.machine(ctx)
		if err != nil {
			return nil, err
		}
		if step == Done {
			continue
		}
		if !ctx.Stream.HasStaged() {
			return nil, fmt.Errorf("engine: machine reported Produced with nothing staged")
		}
	}
}
