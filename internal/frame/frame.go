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

// Package frame implements the backtracking frame stack that ordered-
// choice and negative-lookahead productions use to try an alternative,
// then either commit to it or roll all the way back.
//
// A Stack never touches the token accumulator or the cursor directly:
// Push/Set/Reset/Pop take and return plain snapshots (a pair of
// [cursor.Character] and two depth counters), leaving it to the caller
// (package engine) to apply them to its own cursor and token stream. This
// keeps frame free of any dependency on how tokens are staged or
// characters are decoded.
package frame

import "github.com/orenbenkiki/yip/internal/cursor"

// Frame is one level of backtracking state: the cursor position at the
// time of the push, and how deep the code/staged-token stacks were then.
type Frame struct {
	Curr cursor.Character
	Prev cursor.Character

	// TokensDepth and CodesDepth are -1 for the bottom (non-backtracking)
	// frame, and the snapshotted stack depths for every frame above it.
	TokensDepth int
	CodesDepth  int
}

// Stack is a stack of [Frame], always non-empty: Stack.Depth() == 1 means
// no backtracking is in progress.
type Stack struct {
	frames []Frame
}

// NewStack creates a stack with a single bottom frame positioned at curr.
func NewStack(curr cursor.Character) *Stack {
	return &Stack{frames: []Frame{{
		Curr:        curr,
		Prev:        curr,
		TokensDepth: -1,
		CodesDepth:  -1,
	}}}
}

// Depth returns the number of frames on the stack; 1 means the parser is
// not currently backtracking.
func (s *Stack) Depth() int { return len(s.frames) }

// Top returns the current (innermost) frame.
func (s *Stack) Top() Frame { return s.frames[len(s.frames)-1] }

// Push duplicates the top frame, records curr/prev and
// tokensDepth/codesDepth into the frame beneath the new top (the
// snapshot a later Reset restores), and positions the new top at
// curr/prev as well.
func (s *Stack) Push(curr, prev cursor.Character, tokensDepth, codesDepth int) {
	top := s.Top()
	s.frames = append(s.frames, top)
	beneath := len(s.frames) - 2
	s.frames[beneath].Curr = curr
	s.frames[beneath].Prev = prev
	s.frames[beneath].TokensDepth = tokensDepth
	s.frames[beneath].CodesDepth = codesDepth
	s.frames[len(s.frames)-1].Curr = curr
	s.frames[len(s.frames)-1].Prev = prev
}

// Set commits the current top frame's position into the frame beneath it
// (keep looking from here, but remember this position as the new
// fallback), then records that frame's depths from the caller's current
// live stacks. When the frame beneath is the bottom sentinel — this is
// the outermost backtracking attempt in progress — nothing can roll it
// back any further, so whatever has been staged so far is safe to
// release for delivery.
func (s *Stack) Set(codesDepth, stagedDepth int) (release bool) {
	n := len(s.frames)
	beneath := n - 2
	s.frames[beneath] = s.frames[n-1]
	s.frames[beneath].CodesDepth = codesDepth
	if beneath > 0 {
		s.frames[beneath].TokensDepth = stagedDepth
		return false
	}
	s.frames[beneath].TokensDepth = 0
	return stagedDepth > 0
}

// Reset discards the top frame's progress, restoring the frame beneath it
// as the new top, and returns the snapshotted stack depths the caller
// must truncate its code/staged-token stacks to.
func (s *Stack) Reset() (curr, prev cursor.Character, codesDepth, stagedDepth int) {
	n := len(s.frames)
	beneath := s.frames[n-2]
	s.frames[n-1] = beneath
	s.frames[n-1].TokensDepth = -1
	s.frames[n-1].CodesDepth = -1
	return beneath.Curr, beneath.Prev, beneath.CodesDepth, beneath.TokensDepth
}

// Pop commits the top frame into the one beneath it and removes the top
// entirely. It reports whether this returned the stack to depth 1, at
// which point anything staged is now safe to release for delivery (the
// caller checks its own staged queue; Pop only reports the depth
// transition).
func (s *Stack) Pop() (atBottom bool) {
	n := len(s.frames)
	beneath := s.frames[n-2]
	s.frames = s.frames[:n-1]
	n--
	s.frames[n-1] = beneath
	s.frames[n-1].TokensDepth = -1
	s.frames[n-1].CodesDepth = -1
	return n == 1
}

// IsSameState reports whether the cursor has moved since the matching
// Push, by comparing the live curr against the frame beneath the top
// (which Push seeded with the position at push time).
func (s *Stack) IsSameState(liveByteOffset int64) bool {
	beneath := s.frames[len(s.frames)-2]
	return liveByteOffset == beneath.Curr.ByteOffset
}
