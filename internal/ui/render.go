package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellClass tags each cell of a rendered row with the style it takes.
// Adjacent cells of the same class render as one styled run.
type cellClass uint8

const (
	classBed cellClass = iota
	classRuler
	classRulerMajor
	classRange
	classRangeSelected
	classHandle
	classPlayhead
	classWindow
	classWindowRange
)

// renderClassed joins cells into a string, styling each run of equal class.
func renderClassed(cells []rune, classes []cellClass, styles map[cellClass]lipgloss.Style) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && classes[j] == classes[i] {
			j++
		}
		b.WriteString(styles[classes[i]].Render(string(cells[i:j])))
		i = j
	}
	return b.String()
}

func blankRow(width int, fill rune) ([]rune, []cellClass) {
	cells := make([]rune, width)
	classes := make([]cellClass, width)
	for i := range cells {
		cells[i] = fill
	}
	return cells, classes
}
