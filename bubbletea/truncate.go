package bubbletea

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// truncate shortens s to at most width terminal cells, appending an
// ellipsis when anything was cut. Widths are measured in display cells, not
// runes, so wide characters count double.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	const ellipsis = "…"
	budget := width - uniseg.StringWidth(ellipsis)
	var (
		out []rune
		w   int
	)
	for _, r := range s {
		rwidth := rw.RuneWidth(r)
		if w+rwidth > budget {
			break
		}
		out = append(out, r)
		w += rwidth
	}
	return string(out) + ellipsis
}

// padRight pads s with spaces to exactly width cells, truncating first if
// it is too long.
func padRight(s string, width int) string {
	s = truncate(s, width)
	for uniseg.StringWidth(s) < width {
		s += " "
	}
	return s
}
