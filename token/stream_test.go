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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/token"
)

func renderFrom(src string) token.Render {
	return func(begin, end int64) []byte {
		return []byte(src[begin:end])
	}
}

func TestStream_EmptyTokenPairing(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 0, CharOffset: 0, Line: 1, LineChar: 0}

	s.EmptyToken(token.BeginScalar, pos, decode.UTF8)
	s.EmptyToken(token.EndScalar, pos, decode.UTF8)

	first, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.BeginScalar, first.Code)
	assert.True(t, first.Empty())

	second, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.EndScalar, second.Code)

	_, ok = s.Take()
	assert.False(t, ok)
}

func TestStream_BeginTokenRetagsEmptyWorking(t *testing.T) {
	s := token.NewStream(renderFrom("abc"))
	pos := token.Position{ByteOffset: 0}

	s.BeginToken(token.Text, pos, decode.UTF8)
	assert.False(t, s.HasStaged(), "retagging an empty working token must not stage anything")
}

func TestStream_BeginTokenFlushesNonEmptyWorking(t *testing.T) {
	src := "ab"
	s := token.NewStream(renderFrom(src))
	pos0 := token.Position{ByteOffset: 0}
	s.BeginToken(token.Text, pos0, decode.UTF8)
	s.ExtendTo(2)

	pos2 := token.Position{ByteOffset: 2}
	s.BeginToken(token.White, pos2, decode.UTF8)

	flushed, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.Text, flushed.Code)
	assert.Equal(t, "ab", flushed.Text())
}

func TestStream_EndTokenBOMRetagsPayload(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 0}
	s.BeginToken(token.BOM, pos, decode.UTF16LE)
	require.NoError(t, s.EndToken(token.BOM, pos, decode.UTF16LE))

	tok, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.BOM, tok.Code)
	assert.Equal(t, "UTF-16LE", tok.Text())
	assert.Equal(t, decode.UTF8, tok.Encoding)
}

func TestStream_EndTokenRefusesPastSentinel(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 0}
	assert.Error(t, s.EndToken(token.EndScalar, pos, decode.UTF8))
}

func TestStream_RollbackDiscardsStagedTokens(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 0}

	codesDepth := s.CodesDepth()
	stagedDepth := s.StagedDepth()

	s.EmptyToken(token.BeginScalar, pos, decode.UTF8)
	assert.True(t, s.HasStaged())

	s.TruncateStaged(stagedDepth)
	s.TruncateCodes(codesDepth)
	s.ResetWorking(pos, decode.UTF8)

	assert.False(t, s.HasStaged())
	assert.Equal(t, codesDepth, s.CodesDepth())
}

func TestStream_UnexpectedMessages(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 0}

	s.Unexpected(0, true, false, pos, decode.UTF8)
	tok, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.Error, tok.Code)
	assert.Equal(t, token.InvalidByteSequence, tok.Text())

	s.Unexpected('x', false, false, pos, decode.UTF8)
	tok, ok = s.Take()
	require.True(t, ok)
	assert.Equal(t, "Unexpected 'x'", tok.Text())
}

func TestStream_TakeDeliversInByteOffsetOrder(t *testing.T) {
	s := token.NewStream(renderFrom(""))

	// Two zero-width tokens sharing an offset must come out in the order
	// they were staged; the later-offset token must never jump ahead of
	// an earlier one already in the tree, even though both are staged
	// before either is taken.
	s.EmptyToken(token.BeginNode, token.Position{ByteOffset: 5}, decode.UTF8)
	s.EmptyToken(token.BeginScalar, token.Position{ByteOffset: 5}, decode.UTF8)
	s.EmptyToken(token.EndScalar, token.Position{ByteOffset: 9}, decode.UTF8)

	first, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.BeginNode, first.Code)

	second, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.BeginScalar, second.Code)

	third, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, token.EndScalar, third.Code)
	assert.Equal(t, int64(9), third.ByteOffset)

	_, ok = s.Take()
	assert.False(t, ok)
}

func TestStream_TruncateStagedUnwindsSharedOffsetBucket(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 3}

	depth := s.StagedDepth()
	s.EmptyToken(token.BeginNode, pos, decode.UTF8)
	s.EmptyToken(token.BeginScalar, pos, decode.UTF8)
	assert.Equal(t, depth+2, s.StagedDepth())

	s.TruncateStaged(depth)
	assert.False(t, s.HasStaged())
	assert.Equal(t, depth, s.StagedDepth())
}

func TestStream_LookupByOffset(t *testing.T) {
	s := token.NewStream(renderFrom(""))
	pos := token.Position{ByteOffset: 5}
	s.EmptyToken(token.BeginNode, pos, decode.UTF8)
	_, ok := s.Take()
	require.True(t, ok)

	found, ok := s.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, token.BeginNode, found.Code)

	_, ok = s.Lookup(6)
	assert.False(t, ok)
}
