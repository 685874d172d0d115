package tables

import "github.com/tsawler/ocrgrid/model"

// NormalizeGrid drops rows whose cells are all empty, then columns whose cells
// are all empty across the surviving rows. Survivors keep their relative
// order and anchors are pruned along with their columns. The result is never
// nil but may be empty.
func NormalizeGrid(cells [][]string, anchors []int) *model.Grid {
	var rows [][]string
	for _, row := range cells {
		if !allEmpty(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return &model.Grid{}
	}

	width := len(rows[0])
	var keep []int
	for col := 0; col < width; col++ {
		for _, row := range rows {
			if col < len(row) && row[col] != "" {
				keep = append(keep, col)
				break
			}
		}
	}

	grid := model.NewGrid(len(rows), len(keep))
	for i, row := range rows {
		for j, col := range keep {
			if col < len(row) {
				grid.Rows[i][j] = row[col]
			}
		}
	}
	for j, col := range keep {
		if col < len(anchors) {
			grid.Anchors[j] = anchors[col]
		}
	}

	return grid
}

func allEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
