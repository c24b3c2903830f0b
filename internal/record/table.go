package record

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column widths for the list table.
const (
	idxWidth  = 4
	nameWidth = 25
	noWidth   = 15
	timeWidth = 20
)

// Table renders the store as a fixed-width bordered table: row number
// right-aligned, name and number left-aligned, time right-aligned,
// with centered header labels taken from the Kind. The header and
// borders are present even when the store is empty.
func (s *Store) Table() string {
	line := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+",
		strings.Repeat("-", idxWidth),
		strings.Repeat("-", nameWidth),
		strings.Repeat("-", noWidth),
		strings.Repeat("-", timeWidth))

	var b strings.Builder
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
		center("#", idxWidth),
		center(s.kind.NameLabel, nameWidth),
		center(s.kind.NoLabel, noWidth),
		center(s.kind.TimeLabel, timeWidth))
	b.WriteString(line + "\n")

	for i, r := range s.records {
		fmt.Fprintf(&b, "| %*d | %-*s | %-*s | %*s |\n",
			idxWidth, i+1, nameWidth, r.Name, noWidth, r.No, timeWidth, r.Time)
	}

	b.WriteString(line)
	return b.String()
}

// center pads s with spaces to the given width in runes, the extra
// space going to the right when the padding is odd.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
