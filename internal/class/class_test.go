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

package class_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orenbenkiki/yip/internal/class"
)

func TestClassify_Printable(t *testing.T) {
	assert.NotZero(t, class.Classify('a')&class.Printable)
	assert.NotZero(t, class.Classify(' ')&class.Printable)
	assert.Zero(t, class.Classify(0x01)&class.Printable)
	assert.NotZero(t, class.Classify(0x01)&class.NonPrintable)
}

func TestClassify_Indicators(t *testing.T) {
	for _, r := range []rune{'-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`'} {
		assert.NotZero(t, class.Classify(r)&class.Indicator, "rune %q", r)
	}
	assert.Zero(t, class.Classify('x')&class.Indicator)
}

func TestClassify_FlowIndicators(t *testing.T) {
	for _, r := range []rune{',', '[', ']', '{', '}'} {
		assert.NotZero(t, class.Classify(r)&class.FlowIndicator)
	}
	assert.Zero(t, class.Classify(':')&class.FlowIndicator)
}

func TestClassify_LineBreaks(t *testing.T) {
	for _, r := range []rune{'\n', '\r', 0x85, 0x2028, 0x2029} {
		assert.NotZero(t, class.Classify(r)&class.LineBreak)
	}
	assert.NotZero(t, class.Classify('\n')&class.LineFeed)
	assert.NotZero(t, class.Classify('\r')&class.CarriageReturn)
}

func TestClassify_NegativeAndOutOfRange(t *testing.T) {
	assert.Equal(t, class.Empty, class.Classify(class.Invalid))
	assert.Equal(t, class.Empty, class.Classify(-1))
	assert.Equal(t, class.Empty, class.Classify(0x110000))
}

func TestClassify_BOM(t *testing.T) {
	assert.NotZero(t, class.Classify(0xFEFF)&class.BOMClass)
}

func TestWithStartOfLine(t *testing.T) {
	mask := class.Classify('a')
	assert.Zero(t, mask&class.StartOfLine)
	assert.NotZero(t, class.WithStartOfLine(mask, true)&class.StartOfLine)
	assert.Zero(t, class.WithStartOfLine(mask, false)&class.StartOfLine)
}

func TestClassify_HexDigit(t *testing.T) {
	for _, r := range []rune{'0', '9', 'a', 'f', 'A', 'F'} {
		assert.NotZero(t, class.Classify(r)&class.HexDigit)
	}
	assert.Zero(t, class.Classify('g')&class.HexDigit)
}

func TestClassify_PlainSafeExcludesFlowIndicators(t *testing.T) {
	assert.NotZero(t, class.Classify('x')&class.PlainSafe)
	assert.Zero(t, class.Classify(',')&class.PlainSafe)
}
