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

// Package yip is an incremental YAML 1.2 tokenizer: it turns a byte
// source into a flat stream of tagged tokens (the YEAST vocabulary, see
// package token) without ever building a document tree. Callers open a
// [Parser] against a named grammar production and a [source.Source], then
// pull tokens one at a time until a [token.Done] token ends the stream.
//
// A Parser is not safe for concurrent use by multiple goroutines; open
// one Parser per goroutine, each over its own Source (see
// [TokenizeAll] for the common case of tokenizing many independent
// inputs concurrently).
package yip
