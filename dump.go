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

package yip

import "github.com/davecgh/go-spew/spew"

// Dump renders the parser's full internal state (cursor position, frame
// stack, code stack, pending tokens) for debugging a stuck or misbehaving
// production; it is never part of the token stream itself.
func (p *Parser) Dump() string {
	return spew.Sdump(p)
}
