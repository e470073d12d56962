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

import (
	"fmt"
	"strconv"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/internal/engine"
	"github.com/orenbenkiki/yip/internal/productions"
	"github.com/orenbenkiki/yip/internal/table"
	"github.com/orenbenkiki/yip/source"
	"github.com/orenbenkiki/yip/token"
)

// productionTable is populated once with every production this module
// implements; ForProduction looks names up against it.
var productionTable = func() *table.Table {
	t := table.New()
	productions.Register(t)
	return t
}()

// ProductionSpec names which grammar production to run and, for the
// productions that take them, its context, chomping, and indentation
// parameters. N is nil when the production does not take an indentation
// parameter.
type ProductionSpec struct {
	Name    string
	Context string
	Chomp   string
	N       *int
}

func (s ProductionSpec) String() string {
	out := s.Name
	if s.N != nil {
		out += ".n=" + strconv.Itoa(*s.N)
	}
	if s.Context != "" {
		out += ".c=" + s.Context
	}
	if s.Chomp != "" {
		out += ".t=" + s.Chomp
	}
	return out
}

func (s ProductionSpec) toTableSpec() table.Spec {
	return table.Spec{Name: s.Name, Context: s.Context, Chomp: s.Chomp, N: s.N}
}

// Parser tokenizes one Source through one named production. Create one
// with [ForProduction]; pull tokens with [Parser.NextToken] until it
// returns a [token.Done] token, then call [Parser.Close].
type Parser struct {
	src    source.Source
	owns   bool
	ctx    *engine.Context
	spec   ProductionSpec
	closed bool
}

// ForProduction opens a Parser reading src (detecting its encoding from
// the leading bytes unless forceEncoding is non-nil) and running the
// production named by spec. It returns an error, rather than a diagnostic
// token, when spec names an unknown production or one that does not
// accept the supplied parameters — that failure happens before any byte
// is read, so there is no token stream yet to carry it.
func ForProduction(src source.Source, owns bool, spec ProductionSpec, forceEncoding *decode.Encoding) (*Parser, error) {
	factory, err := productionTable.Lookup(spec.toTableSpec())
	if err != nil {
		return nil, fmt.Errorf("yip: %w", err)
	}

	enc, err := detectEncoding(src, forceEncoding)
	if err != nil {
		return nil, err
	}

	n := engine.NoIndent
	if spec.N != nil {
		n = *spec.N
	}

	ctx, err := engine.New(src, enc, factory(spec.toTableSpec()), n)
	if err != nil {
		return nil, fmt.Errorf("yip: opening parser for %s: %w", spec, err)
	}

	return &Parser{src: src, owns: owns, ctx: ctx, spec: spec}, nil
}

func detectEncoding(src source.Source, forceEncoding *decode.Encoding) (decode.Encoding, error) {
	if forceEncoding != nil {
		return *forceEncoding, nil
	}
	// decode.Detect needs the first 4 bytes filled by a single logical
	// more(4): for backends whose window is already populated at
	// construction (memory, mmap) this is a no-op, but a streamed or
	// fd-backed source starts with an empty window and only fills it
	// once More is called.
	for len(src.Window()) < 4 {
		n, err := src.More(4 - len(src.Window()))
		if err != nil {
			return 0, fmt.Errorf("yip: detecting encoding: %w", err)
		}
		if n == 0 {
			break
		}
	}
	window := src.Window()
	if len(window) > 4 {
		window = window[:4]
	}
	// decode.Detect pads any position past len(window) with its own 0xAA
	// sentinel; passing a short slice here (rather than zero-padding to
	// 4 bytes ourselves) is what lets a genuinely short source hit that
	// sentinel instead of being misread as a run of NUL bytes.
	enc, _ := decode.Detect(window)
	return enc, nil
}

// NextToken returns the next token in the stream. Once a [token.Done]
// token has been returned, every subsequent call returns (nil, nil); the
// caller must still call [Parser.Close].
func (p *Parser) NextToken() (*token.Token, error) {
	if p.closed {
		return nil, fmt.Errorf("yip: NextToken called on a closed parser")
	}
	return p.ctx.NextToken()
}

// Close releases the underlying Source if this Parser owns it. Close is
// idempotent: closing an already-closed Parser is a no-op.
func (p *Parser) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.owns {
		return p.src.Close()
	}
	return nil
}
