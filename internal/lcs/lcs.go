// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lcs splits two sequences into common runs and substitutions by recursively anchoring the
// diff on the longest common run.
//
// The algorithm finds the longest contiguous run of elements present in both x and y, emits
// everything before it as a sub-problem, the run itself, and everything after it as another
// sub-problem. If no element is shared, the whole input is a single substitution.
//
// Among runs of the same length, the one found first wins, scanning x in ascending order and, for
// every element of x, y in ascending order. In other words, the run with the smallest start in x
// wins and ties on x are broken by the smallest start in y. This produces a readable result for
// small inputs, but it's not a minimal edit script: a shorter run elsewhere can be split in two by
// the chosen anchor.
//
// The time complexity is O(N*M) for every level of recursion, where N = len(x) and M = len(y). The
// space complexity is O(M) for the run lengths plus the output.
package lcs

// Chunk is a substitution of Deleted by Inserted. At most one of the two is empty.
type Chunk[T any] struct {
	Deleted  []T // Elements from x
	Inserted []T // Elements from y
}

// Item is a single element of a merge.
//
//   - For a common element, Chunk is nil and Token contains the element.
//   - For a substitution, Chunk is set and Token is unset (zero value).
type Item[T any] struct {
	Token T
	Chunk *Chunk[T]
}

// IsCommon reports whether the item is an element present in both sequences.
func (it Item[T]) IsCommon() bool { return it.Chunk == nil }

// Diff compares x and y and returns their merge: an ordered list of common elements and
// substitutions that reconstructs x when taking the common elements and all deleted elements, and
// reconstructs y when taking the common elements and all inserted elements.
//
// Common elements are taken from y. The slices in the returned chunks alias x and y and must not
// be modified.
func Diff[T comparable](x, y []T) []Item[T] {
	d := differ[T]{
		prev: make([]int, len(y)+1),
		cur:  make([]int, len(y)+1),
	}
	d.diff(x, y)
	return d.out
}

type differ[T comparable] struct {
	// Run lengths of the previous and current row of the match matrix. They are reused on every
	// level of the recursion, because a level is done with them before it recurses.
	prev, cur []int
	out       []Item[T]
}

func (d *differ[T]) diff(x, y []T) {
	s, t, n := d.longest(x, y)
	if n == 0 {
		if len(x) > 0 || len(y) > 0 {
			d.out = append(d.out, Item[T]{Chunk: &Chunk[T]{
				Deleted:  x[:len(x):len(x)],
				Inserted: y[:len(y):len(y)],
			}})
		}
		return
	}

	d.diff(x[:s:s], y[:t:t])
	for _, tok := range y[t : t+n] {
		d.out = append(d.out, Item[T]{Token: tok})
	}
	d.diff(x[s+n:], y[t+n:])
}

// longest finds the first longest common run of x and y. It returns the start of the run in x and
// y and the length of the run. If x and y have no element in common, n is 0.
func (d *differ[T]) longest(x, y []T) (s, t, n int) {
	// prev[j+1] is the length of the common run ending at x[i-1] and y[j]; cur[j+1] is the length of
	// the run ending at x[i] and y[j]. The first column is a sentinel and always 0.
	prev, cur := d.prev[:len(y)+1], d.cur[:len(y)+1]
	clear(prev)
	cur[0] = 0
	for i := range x {
		for j := range y {
			if x[i] != y[j] {
				cur[j+1] = 0
				continue
			}
			l := prev[j] + 1
			cur[j+1] = l
			if l > n {
				n = l
				s, t = i+1-l, j+1-l
			}
		}
		prev, cur = cur, prev
	}
	return s, t, n
}
