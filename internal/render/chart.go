package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-panchang/internal/ephem"
	"github.com/litescript/ls-panchang/internal/horoscope"
	"github.com/litescript/ls-panchang/internal/zodiac"
)

// southIndianLayout maps each cell of the fixed 4×4 grid to its sign.
// The South Indian chart never rotates: Meena holds the top-left
// corner, signs run clockwise, and the centre four cells stay empty.
var southIndianLayout = [4][4]int{
	{12, 1, 2, 3},
	{11, 0, 0, 4},
	{10, 0, 0, 5},
	{9, 8, 7, 6},
}

const chartCellWidth = 13

// WriteSouthIndianChart writes the rasi chart as a box-drawn grid.
// Each cell lists the grahas in that sign by abbreviation, with the
// lagna marked "La" and retrograde motion marked "*".
func WriteSouthIndianChart(w io.Writer, h *horoscope.Horoscope) {
	occupants := make(map[int][]string, 13)
	occupants[int(h.AscSign)] = append(occupants[int(h.AscSign)], "La")
	for _, p := range h.Placements {
		label := ephem.BodiesByID[p.Body].Abbr
		if p.Retrograde {
			label += "*"
		}
		occupants[int(p.Sign)] = append(occupants[int(p.Sign)], label)
	}

	border := "+" + strings.Repeat(strings.Repeat("-", chartCellWidth)+"+", 4)

	fmt.Fprintln(w, border)
	for row := 0; row < 4; row++ {
		// Two content lines per cell: occupants, then the sign label.
		var top, bottom strings.Builder
		top.WriteString("|")
		bottom.WriteString("|")
		for col := 0; col < 4; col++ {
			sign := southIndianLayout[row][col]
			if sign == 0 {
				top.WriteString(strings.Repeat(" ", chartCellWidth) + "|")
				bottom.WriteString(strings.Repeat(" ", chartCellWidth) + "|")
				continue
			}
			fmt.Fprintf(&top, " %-*s|", chartCellWidth-1, cellText(occupants[sign]))
			fmt.Fprintf(&bottom, " %-*s|", chartCellWidth-1, signLabel(sign))
		}
		fmt.Fprintln(w, top.String())
		fmt.Fprintln(w, bottom.String())
		fmt.Fprintln(w, border)
	}
}

func cellText(labels []string) string {
	s := strings.Join(labels, " ")
	if len(s) > chartCellWidth-1 {
		s = s[:chartCellWidth-3] + ".."
	}
	return s
}

func signLabel(sign int) string {
	name := strings.ToLower(zodiac.Sign(sign).String())
	if len(name) > chartCellWidth-1 {
		name = name[:chartCellWidth-1]
	}
	return name
}
