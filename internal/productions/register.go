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

import "github.com/orenbenkiki/yip/internal/table"

// Register adds every production this package implements to t. A block
// sequence ("- x\n- y\n") is realized by l-yaml-stream itself rather than
// a separate production, since the stream prelude is what decides
// whether a line starts a sequence entry in the first place.
func Register(t *table.Table) {
	t.Register("l-yaml-stream", false, false, false, NewStreamMachine)
	t.Register("c-double-quoted", false, false, false, NewDoubleQuotedMachine)
}
