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
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orenbenkiki/yip"
	"github.com/orenbenkiki/yip/source"
	"github.com/orenbenkiki/yip/token"
)

func TestTokenizeAll_RunsEveryRequestIndependently(t *testing.T) {
	requests := []yip.Request{
		{Source: source.FromString("---\n"), Spec: yip.ProductionSpec{Name: "l-yaml-stream"}},
		{Source: source.FromString("- x\n"), Spec: yip.ProductionSpec{Name: "l-yaml-stream"}},
		{Source: source.FromString(`"\n"`), Spec: yip.ProductionSpec{Name: "c-double-quoted"}},
	}

	results, err := yip.TokenizeAll(context.Background(), requests, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotEmpty(t, r.Tokens)
		require.Equal(t, token.Done, r.Tokens[len(r.Tokens)-1].Code)
	}

	require.Equal(t, token.DocumentStart, results[0].Tokens[0].Code)
	require.Equal(t, token.BeginSequence, results[1].Tokens[0].Code)
	require.Equal(t, token.Indicator, results[2].Tokens[0].Code)
}

func TestTokenizeAll_UnknownProductionReportsPerRequestError(t *testing.T) {
	requests := []yip.Request{
		{Source: source.FromString("x"), Spec: yip.ProductionSpec{Name: "no-such-production"}},
		{Source: source.FromString("x"), Spec: yip.ProductionSpec{Name: "l-yaml-stream"}},
	}

	results, err := yip.TokenizeAll(context.Background(), requests, 4)
	require.NoError(t, err)
	require.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
}

func TestTokenizeAll_EmptyRequestsReturnsEmptyResults(t *testing.T) {
	results, err := yip.TokenizeAll(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, results)
}
