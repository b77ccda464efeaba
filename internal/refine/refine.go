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

// Package refine narrows a substitution down to the characters that actually differ.
package refine

import "github.com/clipperhouse/uax29/v2/graphemes"

// Refined is a substitution split into a shared prefix, the differing cores and a shared suffix.
//
// Invariants:
//   - Prefix + Deleted + Suffix == deleted
//   - Prefix + Inserted + Suffix == inserted
type Refined struct {
	Prefix   string
	Deleted  string
	Inserted string
	Suffix   string
}

// Refine trims the longest common prefix from deleted and inserted and then the longest common
// suffix from what remains. Prefix and suffix never overlap.
//
// Characters are user-perceived characters (extended grapheme clusters), a multi-byte character
// or a combining sequence is never split.
func Refine(deleted, inserted string) Refined {
	p := commonPrefix(deleted, inserted)
	d, i := deleted[p:], inserted[p:]
	s := commonSuffix(d, i)
	return Refined{
		Prefix:   deleted[:p],
		Deleted:  d[:len(d)-s],
		Inserted: i[:len(i)-s],
		Suffix:   d[len(d)-s:],
	}
}

// commonPrefix returns the length in bytes of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	ga, gb := graphemes.FromString(a), graphemes.FromString(b)
	n := 0
	for ga.Next() && gb.Next() {
		if ga.Value() != gb.Value() {
			break
		}
		n = ga.End()
	}
	return n
}

// commonSuffix returns the length in bytes of the longest common suffix of a and b.
func commonSuffix(a, b string) int {
	ca, cb := clusters(a), clusters(b)
	n := 0
	for i, j := len(ca)-1, len(cb)-1; i >= 0 && j >= 0 && ca[i] == cb[j]; i, j = i-1, j-1 {
		n += len(ca[i])
	}
	return n
}

func clusters(s string) []string {
	var out []string
	g := graphemes.FromString(s)
	for g.Next() {
		out = append(out, g.Value())
	}
	return out
}
