package tables

import (
	"sort"

	"github.com/tsawler/ocrgrid/model"
)

// NearestAnchor returns the index of the anchor closest to pos, or -1 when
// there are no anchors. Anchors must be sorted ascending. When two anchors are
// equally close the lower index wins.
func NearestAnchor(anchors []int, pos int) int {
	if len(anchors) == 0 {
		return -1
	}

	// First anchor at or right of pos; everything before it is strictly left.
	i := sort.SearchInts(anchors, pos)
	if i == len(anchors) || (i > 0 && pos-anchors[i-1] <= anchors[i]-pos) {
		// Left neighbour wins; duplicates resolve to their first index.
		return sort.SearchInts(anchors, anchors[i-1])
	}
	return i
}

// AssignCells builds one cell slice per row, each with len(anchors) cells.
// Every token lands in the cell of its nearest anchor regardless of distance.
// Tokens sharing a cell are joined with a single space in row order. It
// returns nil when there are no anchors.
func AssignCells(rows []model.Row, anchors []int) [][]string {
	if len(anchors) == 0 {
		return nil
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(anchors))
		for _, tok := range row.Tokens {
			col := NearestAnchor(anchors, tok.Left)
			if cells[i][col] == "" {
				cells[i][col] = tok.Text
			} else {
				cells[i][col] += " " + tok.Text
			}
		}
	}
	return cells
}
