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

// Package changes describes what changed between two versions of a value in a form that's meant
// to be read by humans, e.g. in an audit trail:
//
//	changes.Show(changes.Text("This is a test"), changes.Text("This is test"))
//	// This is <del>a</del> test
//
// The main function is [Show]. Text is compared word by word, changed words are narrowed down to
// the characters that actually differ, and long unchanged stretches are collapsed to a few words
// of context around every change (see [Window]). Lists of values are compared value by value
// (see [List]). How deleted and inserted text is highlighted is configured with [WithMarkup] and
// the strategies in [znkr.io/changes/markup].
//
// The underlying comparison is available as [Diff] and [Refine].
//
// Performance: The comparison anchors the diff on the longest common run of the inputs and
// recurses on both sides. This takes O(N*M) time per level of recursion and is not meant for
// large inputs. Callers that handle untrusted input should limit its size.
//
// Note: This is not a diff tool for files, please see [znkr.io/diff] for that.
//
// [znkr.io/diff]: https://pkg.go.dev/znkr.io/diff
package changes
