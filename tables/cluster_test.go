package tables

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/ocrgrid/model"
)

func TestLastAnchorClusterer(t *testing.T) {
	c := LastAnchorClusterer{}
	tests := []struct {
		name      string
		positions []int
		tolerance int
		want      []int
	}{
		{"empty", nil, 40, nil},
		{"single", []int{50}, 40, []int{50}},
		{"two columns", []int{0, 200, 0, 205}, 40, []int{0, 200}},
		{"within tolerance", []int{10, 45}, 40, []int{10}},
		{"exactly tolerance stays", []int{10, 50}, 40, []int{10}},
		{"just past tolerance", []int{10, 51}, 40, []int{10, 51}},
		{"unsorted input", []int{300, 0, 150}, 40, []int{0, 150, 300}},
		// Skipped positions never move the anchor, so a chain of close
		// positions still splits once it drifts past tolerance.
		{"chain splits at anchor distance", []int{0, 30, 60, 90}, 40, []int{0, 60}},
		{"zero tolerance", []int{5, 5, 6}, 0, []int{5, 6}},
		{"negative tolerance clamps", []int{5, 5, 6}, -10, []int{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Cluster(tt.positions, tt.tolerance))
		})
	}
}

func TestLastAnchorClusterer_AnchorsMoreThanToleranceApart(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	positions := make([]int, 500)
	for i := range positions {
		positions[i] = rng.Intn(2000)
	}

	for _, tol := range []int{0, 5, 17, 40, 120} {
		anchors := LastAnchorClusterer{}.Cluster(positions, tol)
		for i := 1; i < len(anchors); i++ {
			assert.Greater(t, anchors[i]-anchors[i-1], tol, "tolerance %d", tol)
		}
	}
}

func TestGapClusterer(t *testing.T) {
	c := GapClusterer{}
	tests := []struct {
		name      string
		positions []int
		tolerance int
		want      []int
	}{
		{"empty", nil, 40, nil},
		{"two columns", []int{0, 200, 0, 205}, 40, []int{0, 200}},
		{"chain collapses", []int{0, 30, 60, 90}, 40, []int{0}},
		{"gap splits", []int{0, 30, 100, 130}, 40, []int{0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Cluster(tt.positions, tt.tolerance))
		})
	}
}

func TestCentroidClusterer(t *testing.T) {
	c := CentroidClusterer{}
	tests := []struct {
		name      string
		positions []int
		tolerance int
		want      []int
	}{
		{"empty", nil, 40, nil},
		{"single", []int{50}, 40, []int{50}},
		{"two columns", []int{0, 200, 0, 205}, 40, []int{0, 203}},
		{"means", []int{0, 30, 60, 90}, 40, []int{15, 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Cluster(tt.positions, tt.tolerance))
		})
	}
}

func TestClusterers_DoNotModifyInput(t *testing.T) {
	for _, name := range ListClusterers() {
		positions := []int{90, 10, 50}
		GetClusterer(name).Cluster(positions, 20)
		assert.Equal(t, []int{90, 10, 50}, positions, name)
	}
}

func TestClusterers_ToleranceMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	positions := make([]int, 300)
	for i := range positions {
		positions[i] = rng.Intn(1500)
	}

	for _, c := range []Clusterer{LastAnchorClusterer{}, GapClusterer{}} {
		prev := len(c.Cluster(positions, 0))
		for tol := 1; tol <= 200; tol++ {
			n := len(c.Cluster(positions, tol))
			assert.LessOrEqual(t, n, prev, "%s: tolerance %d produced more columns", c.Name(), tol)
			prev = n
		}
	}
}

func TestClusterers_AscendingAnchors(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	positions := make([]int, 200)
	for i := range positions {
		positions[i] = rng.Intn(800)
	}

	for _, name := range ListClusterers() {
		anchors := GetClusterer(name).Cluster(positions, 12)
		assert.True(t, sort.IntsAreSorted(anchors), name)
	}
}

func TestCollectPositions(t *testing.T) {
	rows := []model.Row{
		{Tokens: []model.Token{tok("a", 0, 1), tok("b", 200, 1)}},
		{Tokens: []model.Token{tok("c", 205, 2)}},
	}
	assert.Equal(t, []int{0, 200, 205}, CollectPositions(rows))
	assert.Nil(t, CollectPositions(nil))
}

type fixedClusterer struct{ anchors []int }

func (f fixedClusterer) Name() string                 { return "fixed" }
func (f fixedClusterer) Cluster(_ []int, _ int) []int { return f.anchors }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.List())
	assert.Nil(t, r.Get("fixed"))

	r.Register(fixedClusterer{anchors: []int{1}})
	r.Register(GapClusterer{})
	require.NotNil(t, r.Get("fixed"))
	assert.Equal(t, []string{"fixed", "gap"}, r.List())
}

func TestGlobalRegistry_BuiltIns(t *testing.T) {
	assert.Equal(t, []string{"centroid", "gap", "last-anchor"}, ListClusterers())
	assert.IsType(t, LastAnchorClusterer{}, GetClusterer(DefaultClusterer))
}
