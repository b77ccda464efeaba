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

package lcs

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	// Merges are rendered as space separated tokens, substitutions are rendered as
	// [deleted|inserted].
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "identical",
			x:    "A B C",
			y:    "A B C",
			want: "A B C",
		},
		{
			name: "empty",
			x:    "",
			y:    "",
			want: "",
		},
		{
			name: "x-empty",
			x:    "",
			y:    "A B C",
			want: "[|A B C]",
		},
		{
			name: "y-empty",
			x:    "A B C",
			y:    "",
			want: "[A B C|]",
		},
		{
			name: "disjoint",
			x:    "A B C",
			y:    "X Y Z",
			want: "[A B C|X Y Z]",
		},
		{
			name: "deleted-word",
			x:    "This is a test",
			y:    "This is test",
			want: "This is [a|] test",
		},
		{
			name: "inserted-word",
			x:    "This is test",
			y:    "This is a test",
			want: "This is [|a] test",
		},
		{
			name: "same-prefix",
			x:    "foo bar",
			y:    "foo baz",
			want: "foo [bar|baz]",
		},
		{
			name: "same-suffix",
			x:    "foo bar",
			y:    "loo bar",
			want: "[foo|loo] bar",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    "A B C A B B A",
			y:    "C B A B A C",
			want: "[|C B] A B [|A] C [A B B A|]",
		},
		{
			name: "tie-smallest-x",
			x:    "A B X A B",
			y:    "A B",
			want: "A B [X A B|]",
		},
		{
			name: "tie-smallest-y",
			x:    "A B",
			y:    "A B X A B",
			want: "A B [|X A B]",
		},
		{
			name: "longest-wins-over-first",
			x:    "A X B C D",
			y:    "B C D Y A",
			want: "[A X|] B C D [|Y A]",
		},
		{
			name: "duplicates",
			x:    "A A",
			y:    "A",
			want: "A [A|]",
		},
		{
			name: "alternating",
			x:    "A 1 B 2 C",
			y:    "A 3 B 4 C",
			want: "A [1|3] B [2|4] C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := words(tt.x), words(tt.y)
			merge := Diff(x, y)
			if diff := cmp.Diff(tt.want, render(merge)); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
			if err := validate(x, y, merge); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestDiffIdentity(t *testing.T) {
	for _, in := range []string{"", "A", "A A A", "A B A B A", "the quick brown fox"} {
		s := words(in)
		merge := Diff(s, s)
		var got []string
		for _, it := range merge {
			if !it.IsCommon() {
				t.Fatalf("Diff(%q, %q) contains a substitution: %s", in, in, render(merge))
			}
			got = append(got, it.Token)
		}
		if diff := cmp.Diff(s, got); diff != "" {
			t.Errorf("Diff(%q, %q) common tokens differ [-want,+got]:\n%s", in, in, diff)
		}
	}
}

func TestDiffDoesNotModifyInputs(t *testing.T) {
	x := []int{1, 2, 3, 4}
	y := []int{5, 2, 3, 6}
	merge := Diff(x, y)
	for _, it := range merge {
		if it.Chunk != nil {
			it.Chunk.Deleted = append(it.Chunk.Deleted, 99)
			it.Chunk.Inserted = append(it.Chunk.Inserted, 99)
		}
	}
	if !slices.Equal(x, []int{1, 2, 3, 4}) || !slices.Equal(y, []int{5, 2, 3, 6}) {
		t.Errorf("appending to chunks modified the inputs: x = %v, y = %v", x, y)
	}
}

func TestDiffRandom(t *testing.T) {
	for i := range 100 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			x := make([]int, rng.IntN(64))
			for s := range x {
				x[s] = rng.IntN(8)
			}
			y := make([]int, rng.IntN(64))
			for t := range y {
				y[t] = rng.IntN(8)
			}
			if err := validate(x, y, Diff(x, y)); err != nil {
				t.Error(err)
			}
		})
	}
}

func FuzzDiff(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("x"))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		if err := validate(x, y, Diff(x, y)); err != nil {
			t.Error(err)
		}
	})
}

func BenchmarkDiff(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256(fmt.Append(nil, n))))
			x := make([]int, n)
			for s := range x {
				x[s] = rng.IntN(n / 2)
			}
			y := slices.Clone(x)
			for range n / 10 {
				y[rng.IntN(n)] = -1
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = Diff(x, y)
			}
		})
	}
}

// validate checks that merge reconstructs x and y and that substitutions are never empty and never
// adjacent.
func validate[T comparable](x, y []T, merge []Item[T]) error {
	var gotX, gotY []T
	for i, it := range merge {
		if it.IsCommon() {
			gotX = append(gotX, it.Token)
			gotY = append(gotY, it.Token)
			continue
		}
		if len(it.Chunk.Deleted) == 0 && len(it.Chunk.Inserted) == 0 {
			return fmt.Errorf("item[%d]: empty substitution", i)
		}
		if i > 0 && !merge[i-1].IsCommon() {
			return fmt.Errorf("item[%d]: adjacent substitutions", i)
		}
		gotX = append(gotX, it.Chunk.Deleted...)
		gotY = append(gotY, it.Chunk.Inserted...)
	}
	if !slices.Equal(x, gotX) {
		return fmt.Errorf("merge does not reconstruct x: got %v, want %v", gotX, x)
	}
	if !slices.Equal(y, gotY) {
		return fmt.Errorf("merge does not reconstruct y: got %v, want %v", gotY, y)
	}
	return nil
}

func words(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

func render(merge []Item[string]) string {
	parts := make([]string, len(merge))
	for i, it := range merge {
		if it.IsCommon() {
			parts[i] = it.Token
			continue
		}
		parts[i] = "[" + strings.Join(it.Chunk.Deleted, " ") + "|" + strings.Join(it.Chunk.Inserted, " ") + "]"
	}
	return strings.Join(parts, " ")
}
