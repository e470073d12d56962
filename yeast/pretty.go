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

package yeast

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/orenbenkiki/yip/token"
)

// DefaultPrettyWidth is the terminal column budget [Pretty] wraps long
// payload lines to when none is given.
const DefaultPrettyWidth = 80

// Pretty renders toks the way [Dump] does, but wraps any line whose
// payload display width exceeds maxWidth columns (0 selects
// [DefaultPrettyWidth]) onto continuation lines indented under the
// code column, one grapheme cluster at a time, so a long Text or
// Comment token stays readable in a terminal without splitting a
// multi-rune cluster across lines. This is a debugging aid; [Dump]
// remains the byte-exact format fixture comparisons use.
func Pretty(toks []token.Token, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultPrettyWidth
	}
	const indent = "  "

	var sb strings.Builder
	for _, tok := range toks {
		if tok.Code == token.Done {
			continue
		}
		payload := string(appendPayload(nil, tok))

		sb.WriteByte(byte(tok.Code))
		col := 1
		gr := uniseg.NewGraphemes(payload)
		for gr.Next() {
			cluster := gr.Str()
			w := uniseg.StringWidth(cluster)
			if col+w > maxWidth {
				sb.WriteString("\n")
				sb.WriteString(indent)
				col = len(indent)
			}
			sb.WriteString(cluster)
			col += w
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
