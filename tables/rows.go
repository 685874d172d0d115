package tables

import (
	"sort"

	"github.com/tsawler/ocrgrid/model"
)

// GroupRows partitions tokens into rows sharing a line key. Rows are returned
// in ascending key order. Within a row tokens are sorted by Left; tokens with
// equal Left keep their input order.
func GroupRows(tokens []model.Token) []model.Row {
	if len(tokens) == 0 {
		return nil
	}

	index := make(map[model.LineKey]int)
	var rows []model.Row
	for _, tok := range tokens {
		i, ok := index[tok.Line]
		if !ok {
			i = len(rows)
			index[tok.Line] = i
			rows = append(rows, model.Row{Key: tok.Line})
		}
		rows[i].Tokens = append(rows[i].Tokens, tok)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Key.Less(rows[j].Key)
	})

	for i := range rows {
		row := rows[i].Tokens
		sort.SliceStable(row, func(a, b int) bool {
			return row[a].Left < row[b].Left
		})
	}

	return rows
}
