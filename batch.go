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
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/orenbenkiki/yip/decode"
	"github.com/orenbenkiki/yip/source"
	"github.com/orenbenkiki/yip/token"
)

// Request is one independent tokenization job for [TokenizeAll]: a
// Source this call takes ownership of (it is always closed, success or
// failure), the production to run, and an optional forced encoding.
type Request struct {
	Source        source.Source
	Spec          ProductionSpec
	ForceEncoding *decode.Encoding
}

// Result is the outcome of one [Request]: either the request's full
// token stream (through and including the final [token.Done]) or the
// error that stopped it short.
type Result struct {
	Tokens []token.Token
	Err    error
}

// TokenizeAll runs every request's production to completion, one
// goroutine per request, each owning its own [Parser] and [source.Source]
// — the multi-parser-multi-thread case is safe provided each parser owns
// a distinct source, exactly as for a single [Parser]. Concurrency is
// bounded by maxConcurrent (at least 1). The returned slice has the same
// length and order as requests; ctx cancellation stops launching new
// requests but lets already-running ones finish.
func TokenizeAll(ctx context.Context, requests []Request, maxConcurrent int) ([]Result, error) {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	sem := semaphore.NewWeighted(int64(maxConcurrent))
	results := make([]Result, len(requests))
	done := make(chan int, len(requests))

	for i, req := range requests {
		if err := sem.Acquire(ctx, 1); err != nil {
			_ = req.Source.Close()
			results[i] = Result{Err: fmt.Errorf("yip: %w", err)}
			done <- i
			continue
		}
		go func(i int, req Request) {
			defer sem.Release(1)
			results[i] = runOne(req)
			done <- i
		}(i, req)
	}

	for range requests {
		<-done
	}
	return results, nil
}

func runOne(req Request) Result {
	p, err := ForProduction(req.Source, true, req.Spec, req.ForceEncoding)
	if err != nil {
		_ = req.Source.Close()
		return Result{Err: err}
	}
	defer p.Close()

	var toks []token.Token
	for {
		tok, err := p.NextToken()
		if err != nil {
			return Result{Tokens: toks, Err: err}
		}
		if tok == nil {
			return Result{Tokens: toks}
		}
		toks = append(toks, *tok)
		if tok.Code == token.Done {
			return Result{Tokens: toks}
		}
	}
}
