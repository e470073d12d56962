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

// Package table resolves a production name plus its optional context,
// chomping, and indentation parameters to the [engine.Machine] that
// implements it, mirroring machine_by_parameters/machine_by_name: a
// production can be registered once per distinct combination of "does it
// take an n parameter" and "does it take a c/t parameter", and Lookup
// picks the right one.
package table

import (
	"fmt"
	"sort"

	"github.com/orenbenkiki/yip/internal/engine"
)

// Spec identifies which parameterization of a production to look up.
// Name is required; Context and Chomp are the grammar's c and t
// parameters (empty string if the production does not take them); N is
// nil when the production does not take an indentation parameter, and
// points at its value when it does (N may legitimately be negative, so a
// bare "0 means absent" int cannot represent it).
type Spec struct {
	Name    string
	Context string
	Chomp   string
	N       *int
}

// key distinguishes registrations purely by shape: which of the three
// optional axes are present. The concrete Context/Chomp/N values are
// forwarded to the Factory, not used to disambiguate the lookup itself,
// matching how the grammar only ever dispatches on whether a parameter
// was supplied at all, never on its value.
type key struct {
	name       string
	hasContext bool
	hasChomp   bool
	hasIndent  bool
}

// Factory builds a fresh [engine.Machine] for one invocation of a
// production, given the concrete parameter values from a [Spec].
type Factory func(spec Spec) engine.Machine

// Table is a registry of productions, keyed by name and parameter shape.
type Table struct {
	entries map[key]Factory
}

// New creates an empty Table.
func New() *Table { return &Table{entries: map[key]Factory{}} }

// Register adds factory under name for the given parameter shape. It
// panics on a duplicate registration, which can only be a programming
// error (two productions fighting over the same name and shape).
func (t *Table) Register(name string, hasContext, hasChomp, hasIndent bool, factory Factory) {
	k := key{name: name, hasContext: hasContext, hasChomp: hasChomp, hasIndent: hasIndent}
	if _, exists := t.entries[k]; exists {
		panic(fmt.Sprintf("table: duplicate registration for %q (context=%v chomp=%v indent=%v)", name, hasContext, hasChomp, hasIndent))
	}
	t.entries[k] = factory
}

// Lookup resolves spec to a Factory, matching it against whichever
// registration has the same name and the same shape (which of Context,
// Chomp, N were supplied). It returns an error naming the production and
// the parameters actually supplied if nothing matches, which happens
// either for an unknown production name or for a known one invoked with
// parameters it does not accept.
func (t *Table) Lookup(spec Spec) (Factory, error) {
	k := key{
		name:       spec.Name,
		hasContext: spec.Context != "",
		hasChomp:   spec.Chomp != "",
		hasIndent:  spec.N != nil,
	}
	if f, ok := t.entries[k]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("table: no production %q accepts context=%q chomp=%q indent=%v", spec.Name, spec.Context, spec.Chomp, spec.N)
}

// Names returns every distinct production name registered, sorted, for
// diagnostics and for a top-level parser to validate a requested
// production name before attempting a Lookup.
func (t *Table) Names() []string {
	seen := map[string]bool{}
	for k := range t.entries {
		seen[k.name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
