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

package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/yip/internal/engine"
	"github.com/orenbenkiki/yip/internal/table"
)

func noopMachine(spec table.Spec) engine.Machine {
	return func(ctx *engine.Context) (engine.Step, error) { return engine.Done, nil }
}

func TestTable_LookupByShape(t *testing.T) {
	tb := table.New()
	tb.Register("s-indent", false, false, true, noopMachine)
	tb.Register("s-indent", false, false, false, noopMachine)

	n := 2
	_, err := tb.Lookup(table.Spec{Name: "s-indent", N: &n})
	require.NoError(t, err)

	_, err = tb.Lookup(table.Spec{Name: "s-indent"})
	require.NoError(t, err)
}

func TestTable_LookupUnknownShape(t *testing.T) {
	tb := table.New()
	tb.Register("c-double-quoted", true, false, false, noopMachine)

	_, err := tb.Lookup(table.Spec{Name: "c-double-quoted"})
	assert.Error(t, err)

	_, err = tb.Lookup(table.Spec{Name: "nb-ns-plain-in-line"})
	assert.Error(t, err)
}

func TestTable_RegisterPanicsOnDuplicate(t *testing.T) {
	tb := table.New()
	tb.Register("l-yaml-stream", false, false, false, noopMachine)
	assert.Panics(t, func() {
		tb.Register("l-yaml-stream", false, false, false, noopMachine)
	})
}

func TestTable_Names(t *testing.T) {
	tb := table.New()
	tb.Register("l-yaml-stream", false, false, false, noopMachine)
	tb.Register("c-double-quoted", true, false, false, noopMachine)

	assert.Equal(t, []string{"c-double-quoted", "l-yaml-stream"}, tb.Names())
}
