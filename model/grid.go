package model

import (
	"strings"
)

// Grid is a reconstructed table. Every row has one cell per column and
// Anchors[j] is the left edge, in pixels, of column j.
type Grid struct {
	Rows    [][]string
	Anchors []int
}

// NewGrid creates a grid of empty cells with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	grid := &Grid{
		Rows:    make([][]string, rows),
		Anchors: make([]int, cols),
	}
	for i := 0; i < rows; i++ {
		grid.Rows[i] = make([]string, cols)
	}
	return grid
}

// RowCount returns the number of rows
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.Rows)
}

// ColCount returns the number of columns in the first row
func (g *Grid) ColCount() int {
	if g == nil || len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// IsEmpty reports whether the grid has no rows or no columns. Callers treat an
// empty grid as "no table detected".
func (g *Grid) IsEmpty() bool {
	return g.RowCount() == 0 || g.ColCount() == 0
}

// Cell returns the cell text at the given row and column (0-indexed), or ""
// when out of bounds.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= g.RowCount() {
		return ""
	}
	if col < 0 || col >= len(g.Rows[row]) {
		return ""
	}
	return g.Rows[row][col]
}

// Equal reports whether two grids have the same cells and anchors.
func (g *Grid) Equal(other *Grid) bool {
	if g.RowCount() != other.RowCount() || len(g.anchors()) != len(other.anchors()) {
		return false
	}
	for j, a := range g.anchors() {
		if other.Anchors[j] != a {
			return false
		}
	}
	for i, row := range g.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if other.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

func (g *Grid) anchors() []int {
	if g == nil {
		return nil
	}
	return g.Anchors
}

// GetText returns the grid as tab separated lines.
func (g *Grid) GetText() string {
	if g.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, row := range g.Rows {
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToTSV converts the grid to TSV. Tabs and newlines inside cells become spaces.
func (g *Grid) ToTSV() string {
	if g.IsEmpty() {
		return ""
	}
	clean := strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")
	var sb strings.Builder
	for _, row := range g.Rows {
		for j, cell := range row {
			sb.WriteString(clean.Replace(cell))
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the grid to a Markdown table. The first row is used as
// the header.
func (g *Grid) ToMarkdown() string {
	if g.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(escapeMarkdownCell(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(g.Rows[0])
	for range g.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range g.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

func escapeMarkdownCell(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", "\\|")
}

// ToCSV converts the grid to CSV format
func (g *Grid) ToCSV() string {
	if g.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, row := range g.Rows {
		for j, cell := range row {
			// Escape quotes and wrap in quotes if necessary
			text := cell
			if strings.ContainsAny(text, ",\"\n\r") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
