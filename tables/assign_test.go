package tables

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/ocrgrid/model"
)

func TestNearestAnchor(t *testing.T) {
	anchors := []int{0, 100, 200}
	tests := []struct {
		name string
		pos  int
		want int
	}{
		{"before first", -30, 0},
		{"on first", 0, 0},
		{"closer to first", 49, 0},
		{"tie picks lower index", 50, 0},
		{"closer to second", 51, 1},
		{"on middle", 100, 1},
		{"second tie picks lower index", 150, 1},
		{"past last", 10_000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestAnchor(anchors, tt.pos))
		})
	}
}

func TestNearestAnchor_NoAnchors(t *testing.T) {
	assert.Equal(t, -1, NearestAnchor(nil, 10))
}

func TestNearestAnchor_DuplicateAnchorsPickFirst(t *testing.T) {
	assert.Equal(t, 1, NearestAnchor([]int{0, 100, 100}, 100))
	assert.Equal(t, 1, NearestAnchor([]int{0, 100, 100}, 120))
}

// linearNearest is the brute-force reference: first minimum wins.
func linearNearest(anchors []int, pos int) int {
	best, bestDist := -1, 0
	for i, a := range anchors {
		d := a - pos
		if d < 0 {
			d = -d
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func TestNearestAnchor_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		positions := make([]int, 1+rng.Intn(30))
		for i := range positions {
			positions[i] = rng.Intn(1000)
		}
		anchors := LastAnchorClusterer{}.Cluster(positions, rng.Intn(60))
		for pos := -20; pos < 1020; pos += 7 {
			assert.Equal(t, linearNearest(anchors, pos), NearestAnchor(anchors, pos), "anchors %v pos %d", anchors, pos)
		}
	}
}

func TestAssignCells(t *testing.T) {
	rows := []model.Row{
		{Tokens: []model.Token{tok("Name", 0, 1), tok("Age", 200, 1)}},
		{Tokens: []model.Token{tok("John", 0, 2), tok("30", 205, 2)}},
		{Tokens: []model.Token{tok("Far", 900, 3)}},
	}

	cells := AssignCells(rows, []int{0, 200})
	assert.Equal(t, [][]string{
		{"Name", "Age"},
		{"John", "30"},
		{"", "Far"},
	}, cells)
}

func TestAssignCells_ConcatenatesInRowOrder(t *testing.T) {
	rows := []model.Row{
		{Tokens: []model.Token{tok("WordA", 10, 1), tok("WordB", 45, 1), tok("WordC", 46, 1)}},
	}
	assert.Equal(t, [][]string{{"WordA WordB WordC"}}, AssignCells(rows, []int{10}))
}

func TestAssignCells_NoAnchors(t *testing.T) {
	rows := []model.Row{{Tokens: []model.Token{tok("a", 0, 1)}}}
	assert.Nil(t, AssignCells(rows, nil))
}
