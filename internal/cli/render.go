package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tsawler/ocrgrid/model"
)

// Output formats.
const (
	formatTable    = "table"
	formatText     = "text"
	formatCSV      = "csv"
	formatTSV      = "tsv"
	formatMarkdown = "markdown"
)

var (
	// headerStyle for table headers
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")).
			Padding(0, 1)

	// cellStyle for table body cells
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// borderStyle for table borders
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// dimStyle for muted annotations
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for non-fatal notices
	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	// errorStyle for fatal errors
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func isGridFormat(f string) bool {
	switch f {
	case formatTable, formatText, formatCSV, formatTSV, formatMarkdown:
		return true
	}
	return false
}

// renderGrid renders a non-empty grid in the given format.
func renderGrid(grid *model.Grid, f string) string {
	switch f {
	case formatText:
		return grid.GetText()
	case formatCSV:
		return grid.ToCSV()
	case formatTSV:
		return grid.ToTSV()
	case formatMarkdown:
		return grid.ToMarkdown()
	default:
		return renderTable(anchorHeaders(grid), grid.Rows)
	}
}

// anchorHeaders labels each column with the x position of its anchor.
func anchorHeaders(grid *model.Grid) []string {
	headers := make([]string, grid.ColCount())
	for j := range headers {
		if j < len(grid.Anchors) {
			headers[j] = fmt.Sprintf("x=%d", grid.Anchors[j])
		} else {
			headers[j] = strconv.Itoa(j)
		}
	}
	return headers
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render() + "\n"
}

var tokenHeaders = []string{"text", "conf", "left", "top", "width", "height", "line"}

// renderTokens lists tokens with their geometry, one per row.
func renderTokens(tokens []model.Token, f string) string {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, []string{
			tok.Text,
			strconv.FormatFloat(tok.Confidence, 'f', -1, 64),
			strconv.Itoa(tok.Left),
			strconv.Itoa(tok.Top),
			strconv.Itoa(tok.Width),
			strconv.Itoa(tok.Height),
			tok.Line.String(),
		})
	}

	if f != formatTSV {
		return renderTable(tokenHeaders, rows)
	}

	clean := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	var sb strings.Builder
	sb.WriteString(strings.Join(tokenHeaders, "\t"))
	sb.WriteString("\n")
	for _, row := range rows {
		row[0] = clean.Replace(row[0])
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
