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

package productions

import (
	"github.com/orenbenkiki/yip/internal/engine"
	"github.com/orenbenkiki/yip/internal/table"
	"github.com/orenbenkiki/yip/token"
)

const (
	doubleQuotedOpen = iota
	doubleQuotedBody
	doubleQuotedDone
)

// NewDoubleQuotedMachine implements c-double-quoted: an opening
// indicator, a body of plain text runs and backslash-escape pairs (each
// wrapped in BeginEscape/EndEscape, the backslash and escaped character
// each staged as their own Meta token), and a closing indicator.
func NewDoubleQuotedMachine(spec table.Spec) engine.Machine {
	return func(ctx *engine.Context) (engine.Step, error) {
		switch ctx.State {
		case doubleQuotedOpen:
			curr := ctx.Cursor.Curr()
			if curr.EOF() || curr.Rune != '"' {
				ctx.Unexpected()
				ctx.State = doubleQuotedDone
				return engine.Produced, nil
			}
			ctx.BeginToken(token.Indicator)
			if err := ctx.NextChar(); err != nil {
				return engine.Done, err
			}
			if err := ctx.EndToken(token.Indicator); err != nil {
				return engine.Done, err
			}
			ctx.State = doubleQuotedBody
			return engine.Produced, nil

		case doubleQuotedBody:
			curr := ctx.Cursor.Curr()
			switch {
			case curr.EOF():
				ctx.Unexpected()
				ctx.State = doubleQuotedDone
				return engine.Produced, nil

			case curr.Rune == '"':
				ctx.BeginToken(token.Indicator)
				if err := ctx.NextChar(); err != nil {
					return engine.Done, err
				}
				if err := ctx.EndToken(token.Indicator); err != nil {
					return engine.Done, err
				}
				ctx.State = doubleQuotedDone
				return engine.Produced, nil

			case curr.Rune == '\\':
				return consumeEscape(ctx)

			default:
				return consumeQuotedText(ctx)
			}

		case doubleQuotedDone:
			ctx.EmptyToken(token.Done)
			return engine.Produced, nil
		}
		panic("productions: c-double-quoted reached an unreachable state")
	}
}

func consumeEscape(ctx *engine.Context) (engine.Step, error) {
	ctx.EmptyToken(token.BeginEscape)

	ctx.BeginToken(token.Meta)
	if err := ctx.NextChar(); err != nil {
		return engine.Done, err
	}
	if err := ctx.EndToken(token.Meta); err != nil {
		return engine.Done, err
	}

	if curr := ctx.Cursor.Curr(); !curr.EOF() {
		ctx.BeginToken(token.Meta)
		if err := ctx.NextChar(); err != nil {
			return engine.Done, err
		}
		if err := ctx.EndToken(token.Meta); err != nil {
			return engine.Done, err
		}
	}

	ctx.EmptyToken(token.EndEscape)
	return engine.Produced, nil
}

// consumeQuotedText accumulates a run of plain (non-quote, non-escape)
// double-quoted-safe characters into a single Text token.
func consumeQuotedText(ctx *engine.Context) (engine.Step, error) {
	ctx.BeginToken(token.Text)
	for {
		curr := ctx.Cursor.Curr()
		if curr.EOF() || curr.Rune == '"' || curr.Rune == '\\' {
			break
		}
		if err := ctx.NextChar(); err != nil {
			return engine.Done, err
		}
	}
	if err := ctx.EndToken(token.Text); err != nil {
		return engine.Done, err
	}
	return engine.Produced, nil
}
