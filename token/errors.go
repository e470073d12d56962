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

import (
	"fmt"

	"github.com/orenbenkiki/yip/internal/ext/stringsx"
)

// InvalidByteSequence is the diagnostic for a character the decoder could
// not make sense of.
const InvalidByteSequence = "Invalid byte sequence"

// UnexpectedEndOfInput is the diagnostic for hitting EOF where a
// production required more input.
const UnexpectedEndOfInput = "Unexpected end of input"

// NonPositiveRepetitions is the diagnostic for a repetition count that
// parsed to zero or less.
const NonPositiveRepetitions = "Fewer than 0 repetitions"

// UnexpectedMessage renders the diagnostic for an unexpected character,
// matching the original catalogue: the two named sentinels get a fixed
// message, everything else is "Unexpected " followed by a quoted
// rendering of the rune.
func UnexpectedMessage(r rune, invalid bool, eof bool) string {
	switch {
	case invalid:
		return InvalidByteSequence
	case eof:
		return UnexpectedEndOfInput
	default:
		return "Unexpected " + stringsx.QuoteRune(r)
	}
}

// ChoiceMessage renders the diagnostic for a broken commitment at a named
// choice point.
func ChoiceMessage(choice string) string {
	return fmt.Sprintf("Commit to '%s' was made outside it", choice)
}
