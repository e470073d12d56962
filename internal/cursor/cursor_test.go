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

package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/class"
	"github.com/orenbenkiki/yip/internal/cursor"
	"github.com/orenbenkiki/yip/source"
)

func TestAdvance_SimpleASCII(t *testing.T) {
	src := source.FromString("ab\nc")
	c := cursor.New(src, decode.UTF8)

	require.NoError(t, c.Advance())
	assert.Equal(t, 'a', c.Curr().Rune)
	assert.NotZero(t, c.Curr().Mask&class.StartOfLine)

	require.NoError(t, c.Advance())
	assert.Equal(t, 'b', c.Curr().Rune)
	assert.Zero(t, c.Curr().Mask&class.StartOfLine)
	assert.Equal(t, 'a', c.Prev().Rune)

	require.NoError(t, c.Advance())
	assert.Equal(t, '\n', c.Curr().Rune)

	require.NoError(t, c.Advance())
	c.NextLine()
	assert.Equal(t, 'c', c.Curr().Rune)
	assert.NotZero(t, c.Curr().Mask&class.StartOfLine)
	assert.EqualValues(t, 2, c.Curr().Line)
	assert.EqualValues(t, 0, c.Curr().LineChar)
}

func TestAdvance_EOF(t *testing.T) {
	src := source.FromString("a")
	c := cursor.New(src, decode.UTF8)
	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	assert.True(t, c.Curr().EOF())
	// Advancing past EOF is idempotent.
	require.NoError(t, c.Advance())
	assert.True(t, c.Curr().EOF())
}

func TestSaveRestore(t *testing.T) {
	src := source.FromString("xyz")
	c := cursor.New(src, decode.UTF8)
	require.NoError(t, c.Advance())
	curr, prev := c.Save()

	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	assert.Equal(t, 'z', c.Curr().Rune)

	c.Restore(curr, prev)
	assert.Equal(t, 'x', c.Curr().Rune)
}

func TestBytesAt(t *testing.T) {
	src := source.FromString("hello")
	c := cursor.New(src, decode.UTF8)
	require.NoError(t, c.Advance())
	begin := c.Curr().ByteOffset
	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	end := c.Curr().ByteOffset
	assert.Equal(t, "he", string(c.BytesAt(begin, end)))
}

func TestRelease(t *testing.T) {
	src := source.FromString("hello")
	c := cursor.New(src, decode.UTF8)
	require.NoError(t, c.Advance())
	require.NoError(t, c.Advance())
	require.NoError(t, c.Release(c.Curr().ByteOffset))
	assert.Equal(t, "ello", string(src.Window()))
}
