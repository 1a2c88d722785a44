package main

import (
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type charCount struct {
	char  rune
	count int64
}

func (t *tally) snapshot() []charCount {
	var out []charCount
	t.counts.Range(func(r rune, c *xsync.Counter) bool {
		out = append(out, charCount{char: r, count: c.Value()})
		return true
	})
	slices.SortFunc(out, func(a, b charCount) int { return int(a.char - b.char) })
	return out
}

// printStats writes one line per distinct character with its count and
// share of the total.
func printStats(w io.Writer, t *tally, noColor bool) {
	counts := t.snapshot()
	total := lo.SumBy(counts, func(c charCount) int64 { return c.count })

	char := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	if noColor {
		char.DisableColor()
		dim.DisableColor()
	}

	p := message.NewPrinter(language.English)
	for _, c := range counts {
		share := 100 * float64(c.count) / float64(total)
		p.Fprintf(w, "%s %10d %s\n", char.Sprintf("%q", c.char), c.count, dim.Sprintf("%6.2f%%", share))
	}
	p.Fprintf(w, "%d characters, %d distinct\n", total, len(counts))
}
