package room

import (
	"strconv"
	"strings"
)

// Render draws the seat grid.  The first line holds the seat numbers, every
// following line starts with its row number, and each seat shows its status
// marker.  Each cell is followed by a single space:
//
//	  1 2 3
//	1 S S S
//	2 S B S
//
// Labels are right-aligned to the widest label, so rooms with ten or more
// rows or seats keep their columns lined up.
func (r *Room) Render() string {
	rowWidth := len(strconv.Itoa(r.layout.Rows))
	seatWidth := len(strconv.Itoa(r.layout.SeatsPerRow))

	var b strings.Builder
	writeCell(&b, "", rowWidth)
	for j := 1; j <= r.layout.SeatsPerRow; j++ {
		writeCell(&b, strconv.Itoa(j), seatWidth)
	}
	b.WriteByte('\n')

	for i, row := range r.seats {
		writeCell(&b, strconv.Itoa(i+1), rowWidth)
		for _, st := range row {
			writeCell(&b, string(st.Marker()), seatWidth)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeCell(b *strings.Builder, s string, width int) {
	for pad := width - len(s); pad > 0; pad-- {
		b.WriteByte(' ')
	}
	b.WriteString(s)
	b.WriteByte(' ')
}
