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

// Package golden provides a framework for writing file-based golden tests.
//
// The primary entry-point is [Corpus]. Define a new corpus in an ordinary Go
// test body and call [Corpus.Run] to execute it.
//
// Corpora can be "refreshed" automatically to update the golden test corpus
// with new data generated by the test instead of comparing it. To do this,
// run the test with the environment variable that [Corpus.Refresh] names set
// to a file glob for all test files to regenerate expectations for.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// callerDir returns the directory of the file in which this function is
// called, skip callers up. This is only ever used to locate a test's own
// testdata relative to its source file, never in production code.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		panic("golden: could not determine test file's directory; the binary may have been stripped")
	}
	return filepath.Dir(file)
}

// Corpus describes a test data corpus: a way of doing table-driven tests
// where the "table" is a directory of fixture files.
type Corpus struct {
	// Root is the test data directory, relative to the directory of the
	// file that calls [Corpus.Run].
	Root string

	// Refresh is an environment variable name; when it is set to a
	// non-empty glob, fixtures whose name matches are regenerated rather
	// than compared against.
	Refresh string

	// Extensions are the file extensions (without a dot) that mark a
	// fixture's main input file, e.g. "input".
	Extensions []string

	// Outputs are the expected-output files to check for each fixture,
	// found by appending ".<Extension>" to the input file's name.
	Outputs []Output
}

// Output represents one expected output of a test case.
type Output struct {
	// Extension names the output file, e.g. for extension "output" and
	// input fixture "foo.input" the runner reads/writes "foo.input.output".
	Extension string

	// Compare is the comparison function for this output. Nil defaults to
	// [CompareAndDiff].
	Compare CompareFunc
}

// CompareFunc compares a test's actual output against the fixture's
// recorded expectation. It returns an empty string when they match, or a
// human-readable description of the mismatch otherwise.
type CompareFunc func(got, want string) string

// CompareAndDiff is a [CompareFunc] that reports a unified diff when the
// strings differ.
func CompareAndDiff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// Run executes a golden test. test runs a single fixture and writes its
// results, one per entry of outputs (same length and order as
// [Corpus.Outputs]), into outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	testDir := callerDir(1)
	root := filepath.Join(testDir, c.Root)

	var fixtures []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, extn := range c.Extensions {
			if strings.HasSuffix(p, "."+extn) {
				fixtures = append(fixtures, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid refresh glob %q", refresh)
		}
	}

	for _, path := range fixtures {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		testName, _ := filepath.Rel(root, path)
		testName = filepath.ToSlash(testName)

		t.Run(testName, func(t *testing.T) {
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading fixture %q: %v", path, err)
			}

			input := string(bytes)
			results := make([]string, len(c.Outputs))

			recovered, stack := catch(func() { test(t, name, input, results) })
			if recovered != nil {
				t.Logf("fixture panicked: %v\n%s", recovered, stack)
				t.Fail()
			}

			var shouldRefresh bool
			if refresh != "" {
				shouldRefresh, _ = doublestar.Match(refresh, name)
			}
			for i, output := range c.Outputs {
				outPath := fmt.Sprint(path, ".", output.Extension)

				if !shouldRefresh {
					want, err := os.ReadFile(outPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("golden: error while loading %q: %v", outPath, err)
						t.Fail()
						continue
					}

					cmp := output.Compare
					if cmp == nil {
						cmp = CompareAndDiff
					}
					if diff := cmp(results[i], string(want)); diff != "" {
						t.Logf("output mismatch for %q:\n%s", outPath, diff)
						t.Fail()
					}
					continue
				}

				if results[i] == "" {
					if err := os.Remove(outPath); err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("golden: error while deleting %q: %v", outPath, err)
						t.Fail()
					}
					continue
				}
				if err := os.WriteFile(outPath, []byte(results[i]), 0o600); err != nil {
					t.Logf("golden: error while writing %q: %v", outPath, err)
					t.Fail()
				}
			}
		})
	}
}

func catch(cb func()) (recovered any, stack []byte) {
	defer func() {
		recovered = recover()
		if recovered != nil {
			stack = debug.Stack()
		}
	}()
	cb()
	return
}
