package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/changes"
)

// Impl is a word diff implementation. Diff returns one line per word, prefixed with "-" for
// deleted words, "+" for inserted words and " " for common words. Implementations that produce
// unified diffs are close enough to be comparable.
type Impl struct {
	Name string
	Diff func(x, y []string) []byte
}

var Impls = []Impl{
	{
		Name: "changes",
		Diff: func(x, y []string) []byte {
			var buf bytes.Buffer
			for _, it := range changes.Diff(x, y) {
				if it.IsCommon() {
					writeLine(&buf, " ", it.Token)
					continue
				}
				for _, w := range it.Chunk.Deleted {
					writeLine(&buf, "-", w)
				}
				for _, w := range it.Chunk.Inserted {
					writeLine(&buf, "+", w)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []string) []byte {
			return gointernal.Diff("x", lines(x), "y", lines(y))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []string) []byte {
			dmp := diffmatchpatch.New()
			rx, ry, words := dmp.DiffLinesToRunes(string(lines(x)), string(lines(y)))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, words)

			var buf bytes.Buffer
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, w := range strings.SplitAfter(diff.Text, "\n") {
					if w == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(w)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []string) []byte {
			return []byte(godebug.Diff(string(lines(x)), string(lines(y))))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []string) []byte {
			var buf bytes.Buffer
			a := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0words{x, y}) {
				for a < ch.A {
					writeLine(&buf, " ", x[a])
					a++
				}
				for i := range ch.Del {
					writeLine(&buf, "-", x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					writeLine(&buf, "+", y[ch.B+i])
				}
			}
			for a < len(x) {
				writeLine(&buf, " ", x[a])
				a++
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []string) []byte {
			return []byte(udiff.Unified("x", "y", string(lines(x)), string(lines(y))))
		},
	},
}

// CountEdits returns the number of deleted and inserted words in the output of [Impl.Diff].
func CountEdits(out []byte) int {
	edits := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("+++")) || bytes.HasPrefix(line, []byte("---")) {
			continue // unified diff file headers
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			edits++
		}
	}
	return edits
}

// Words splits text into the words compared by [changes.Show].
func Words(text string) []string {
	return strings.Split(text, " ")
}

func lines(words []string) []byte {
	var buf bytes.Buffer
	for _, w := range words {
		buf.WriteString(w)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, prefix, word string) {
	buf.WriteString(prefix)
	buf.WriteString(word)
	buf.WriteByte('\n')
}

type mb0words struct {
	x, y []string
}

func (d mb0words) Equal(i, j int) bool { return d.x[i] == d.y[j] }
