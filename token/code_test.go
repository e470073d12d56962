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

	"github.com/orenbenkiki/yip/token"
)

func TestCode_PairIsSymmetric(t *testing.T) {
	pairs := []struct{ begin, end token.Code }{
		{token.BeginAlias, token.EndAlias},
		{token.BeginScalar, token.EndScalar},
		{token.BeginMapping, token.EndMapping},
		{token.BeginSequence, token.EndSequence},
		{token.BeginTag, token.EndTag},
	}
	for _, p := range pairs {
		assert.Equal(t, p.end, p.begin.Pair())
		assert.Equal(t, p.begin, p.end.Pair())
		assert.Equal(t, token.Begin, p.begin.Type())
		assert.Equal(t, token.End, p.end.Type())
	}
}

func TestCode_PairPanicsOnNonPairedCode(t *testing.T) {
	assert.Panics(t, func() { token.Text.Pair() })
}

func TestCode_Type(t *testing.T) {
	assert.Equal(t, token.Fake, token.BOM.Type())
	assert.Equal(t, token.Fake, token.Done.Type())
	assert.Equal(t, token.Fake, token.Error.Type())
	assert.Equal(t, token.Match, token.Text.Type())
	assert.Equal(t, token.Match, token.White.Type())
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "S", token.BeginScalar.String())
	assert.Equal(t, "DONE", token.Done.String())
}
