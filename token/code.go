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

import "fmt"

// Code identifies what kind of token a [Token] is. It is deliberately a
// single ASCII byte, printable for every code except [Done] (0, which is
// never written): that byte is exactly what the textual YEAST
// stream format (see package yeast) prints as the token's tag, so Code and
// its wire representation never drift apart.
//
// Paired codes use the upper-case letter for Begin, the lower-case letter
// for the matching End, mirroring the original YEAST vocabulary.
type Code byte

const (
	BeginAlias      Code = 'R'
	BeginAnchor     Code = 'A'
	BeginComment    Code = 'C'
	BeginDirective  Code = 'D'
	BeginDocument   Code = 'O'
	BeginEscape     Code = 'E'
	BeginHandle     Code = 'H'
	BeginMapping    Code = 'M'
	BeginNode       Code = 'N'
	BeginPair       Code = 'X'
	BeginProperties Code = 'P'
	BeginScalar     Code = 'S'
	BeginSequence   Code = 'Q'
	BeginTag        Code = 'G'

	BOM Code = 'U'

	Break          Code = 'b'
	Comment        Code = '#' // Reserved for YEAST-file comment lines; never emitted by the tokenizer.
	DocumentEnd    Code = 'k'
	DocumentStart  Code = 'K'
	Done           Code = 0
	Error          Code = '!'
	Indent         Code = 'i'
	Indicator      Code = 'I'
	LineFeed       Code = 'L'
	LineFold       Code = 'l'
	Meta           Code = 't'
	Text           Code = 'T'
	Unparsed       Code = '-'
	White          Code = 'w'

	EndAlias      Code = 'r'
	EndAnchor     Code = 'a'
	EndComment    Code = 'c'
	EndDirective  Code = 'd'
	EndDocument   Code = 'o'
	EndEscape     Code = 'e'
	EndHandle     Code = 'h'
	EndMapping    Code = 'm'
	EndNode       Code = 'n'
	EndPair       Code = 'x'
	EndProperties Code = 'p'
	EndScalar     Code = 's'
	EndSequence   Code = 'q'
	EndTag        Code = 'g'
)

// CodeType is one of the four type-classes every Code falls into.
type CodeType int8

const (
	// Begin opens a nested group of tokens; every Begin has a unique
	// matching End, see [Code.Pair].
	Begin CodeType = iota
	// End closes a group opened by the matching Begin.
	End
	// Match carries payload copied verbatim from the input.
	Match
	// Fake carries a synthesized payload: diagnostics, or (for BOM) the
	// canonical name of the detected encoding.
	Fake
)

func (t CodeType) String() string {
	switch t {
	case Begin:
		return "Begin"
	case End:
		return "End"
	case Match:
		return "Match"
	case Fake:
		return "Fake"
	default:
		return fmt.Sprintf("CodeType(%d)", int8(t))
	}
}

var pairOf = map[Code]Code{
	BeginAlias: EndAlias, EndAlias: BeginAlias,
	BeginAnchor: EndAnchor, EndAnchor: BeginAnchor,
	BeginComment: EndComment, EndComment: BeginComment,
	BeginDirective: EndDirective, EndDirective: BeginDirective,
	BeginDocument: EndDocument, EndDocument: BeginDocument,
	BeginEscape: EndEscape, EndEscape: BeginEscape,
	BeginHandle: EndHandle, EndHandle: BeginHandle,
	BeginMapping: EndMapping, EndMapping: BeginMapping,
	BeginNode: EndNode, EndNode: BeginNode,
	BeginPair: EndPair, EndPair: BeginPair,
	BeginProperties: EndProperties, EndProperties: BeginProperties,
	BeginScalar: EndScalar, EndScalar: BeginScalar,
	BeginSequence: EndSequence, EndSequence: BeginSequence,
	BeginTag: EndTag, EndTag: BeginTag,
}

var typeOf = map[Code]CodeType{
	BOM: Fake, Done: Fake, Error: Fake,

	Break: Match, Comment: Match, DocumentEnd: Match, DocumentStart: Match,
	Indent: Match, Indicator: Match, LineFeed: Match, LineFold: Match,
	Meta: Match, Text: Match, Unparsed: Match, White: Match,
}

func init() {
	for begin, end := range pairOf {
		if begin > end {
			continue
		}
		typeOf[begin] = Begin
		typeOf[end] = End
	}
}

// Type classifies code into one of the four type-classes.
func (c Code) Type() CodeType {
	return typeOf[c]
}

// Pair returns the matching End for a Begin code, or the matching Begin
// for an End code. It panics if c is not a Begin or End code.
func (c Code) Pair() Code {
	p, ok := pairOf[c]
	if !ok {
		panic(fmt.Sprintf("token: Pair() called on non-Begin/End code %q", c))
	}
	return p
}

// String renders the code the way diagnostics do: its single wire byte.
func (c Code) String() string {
	if c == Done {
		return "DONE"
	}
	return string([]byte{byte(c)})
}
