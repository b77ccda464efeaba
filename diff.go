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

package changes

import (
	"znkr.io/changes/internal/lcs"
	"znkr.io/changes/internal/refine"
)

// Chunk describes a substitution: Deleted elements from x are replaced by Inserted elements from
// y. At most one of the two is empty.
type Chunk[T any] = lcs.Chunk[T]

// Item is a single element of the result of [Diff].
//
//   - For an element common to x and y, Chunk is nil and Token contains the element.
//   - For a substitution, Chunk is set and Token is unset (zero value).
type Item[T any] = lcs.Item[T]

// Merge is the result of [Diff]: common elements and substitutions in order.
type Merge[T any] = []Item[T]

// Refined is the result of [Refine].
type Refined = refine.Refined

// Diff compares the contents of x and y and returns their merge, an ordered sequence of common
// elements and substitutions.
//
// Taking all common elements and all deleted elements in order reconstructs x, taking all common
// elements and all inserted elements in order reconstructs y. Substitutions are never adjacent. If
// x and y are identical, the output consists of only common elements. If x and y have no element
// in common, the output is a single substitution. If both are empty, the output is empty.
//
// The diff is anchored on the longest common run of x and y. If there are multiple runs of the
// same length, the one starting first in x wins and, after that, the one starting first in y. The
// result is not necessarily a minimal edit script.
//
// The slices in the returned chunks alias x and y and must not be modified.
func Diff[T comparable](x, y []T) Merge[T] {
	return lcs.Diff(x, y)
}

// Refine narrows a substitution of deleted by inserted down to the characters that actually
// differ. It trims the longest common prefix and then the longest common suffix of the remainder,
// so that Prefix+Deleted+Suffix == deleted and Prefix+Inserted+Suffix == inserted.
//
// Characters are user-perceived characters, i.e. a multi-byte character or a combining sequence
// is never split.
func Refine(deleted, inserted string) Refined {
	return refine.Refine(deleted, inserted)
}
