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

package yip_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/orenbenkiki/yip"
	"github.com/orenbenkiki/yip/source"
	"github.com/orenbenkiki/yip/token"
)

// concatPayloads reproduces the original input by concatenating every
// Match-type token's payload, skipping Begin/End/Fake tokens — the
// coverage property the tokenizer promises for every byte of input.
func concatPayloads(toks []token.Token) []byte {
	var out []byte
	for _, tok := range toks {
		if tok.Code.Type() != token.Match {
			continue
		}
		out = append(out, tok.Bytes...)
	}
	return out
}

// TestConformance_BlockSequenceRoundTrips tokenizes a simple block
// sequence of plain scalars and checks two things against
// gopkg.in/yaml.v3, an independent YAML implementation: concatenating
// the Match tokens reproduces the original bytes exactly, and yaml.v3
// agrees with the tokenizer about the sequence's scalar content.
func TestConformance_BlockSequenceRoundTrips(t *testing.T) {
	input := "- alpha\n- beta\n- gamma\n"

	p, err := yip.ForProduction(source.FromString(input), true, yip.ProductionSpec{Name: "l-yaml-stream"}, nil)
	require.NoError(t, err)
	defer p.Close()

	var toks []token.Token
	var scalars []string
	for {
		tok, err := p.NextToken()
		require.NoError(t, err)
		if tok == nil || tok.Code == token.Done {
			break
		}
		toks = append(toks, *tok)
		if tok.Code == token.Text {
			scalars = append(scalars, tok.Text())
		}
	}

	require.Equal(t, []byte(input), concatPayloads(toks))

	var want []string
	require.NoError(t, yaml.Unmarshal([]byte(input), &want))
	require.Equal(t, want, scalars)
}
