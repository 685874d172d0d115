package tables

import (
	"math"
	"sort"
	"sync"

	"github.com/tsawler/ocrgrid/model"
)

// Clusterer is the interface for column clustering strategies. Cluster turns
// the left edges of every token on the page into an ascending list of column
// anchors. Implementations must not modify positions.
type Clusterer interface {
	// Name returns the strategy name used in the registry
	Name() string

	// Cluster returns ascending column anchors for the given positions
	Cluster(positions []int, tolerance int) []int
}

// CollectPositions pools the Left edge of every token in every row. This is
// the evidence all clustering strategies work from.
func CollectPositions(rows []model.Row) []int {
	var positions []int
	for _, row := range rows {
		positions = append(positions, row.Lefts()...)
	}
	return positions
}

// LastAnchorClusterer sweeps the sorted positions once and starts a new
// column whenever a position lies more than tolerance past the most recently
// appended anchor. Positions that do not start a column never move the
// anchor, so consecutive anchors are always more than tolerance apart.
type LastAnchorClusterer struct{}

// Name returns "last-anchor".
func (LastAnchorClusterer) Name() string { return "last-anchor" }

// Cluster implements Clusterer.
func (LastAnchorClusterer) Cluster(positions []int, tolerance int) []int {
	tolerance = clampTolerance(tolerance)

	var anchors []int
	for _, pos := range sortedCopy(positions) {
		if len(anchors) == 0 || pos-anchors[len(anchors)-1] > tolerance {
			anchors = append(anchors, pos)
		}
	}
	return anchors
}

// GapClusterer starts a new column whenever the gap to the previous sorted
// position exceeds tolerance. A run of positions each close to its neighbour
// collapses into one column however wide the run is. The anchor of a column
// is its leftmost position.
type GapClusterer struct{}

// Name returns "gap".
func (GapClusterer) Name() string { return "gap" }

// Cluster implements Clusterer.
func (GapClusterer) Cluster(positions []int, tolerance int) []int {
	tolerance = clampTolerance(tolerance)

	sorted := sortedCopy(positions)
	var anchors []int
	for i, pos := range sorted {
		if i == 0 || pos-sorted[i-1] > tolerance {
			anchors = append(anchors, pos)
		}
	}
	return anchors
}

// CentroidClusterer compares each sorted position against the running mean of
// the current column. The anchor of a finished column is its rounded mean.
type CentroidClusterer struct{}

// Name returns "centroid".
func (CentroidClusterer) Name() string { return "centroid" }

// Cluster implements Clusterer.
func (CentroidClusterer) Cluster(positions []int, tolerance int) []int {
	tolerance = clampTolerance(tolerance)

	sorted := sortedCopy(positions)
	if len(sorted) == 0 {
		return nil
	}

	var anchors []int
	emit := func(mean float64) {
		anchor := int(math.Round(mean))
		if len(anchors) > 0 && anchors[len(anchors)-1] >= anchor {
			return
		}
		anchors = append(anchors, anchor)
	}

	sum := float64(sorted[0])
	count := 1.0
	for _, pos := range sorted[1:] {
		mean := sum / count
		if float64(pos)-mean > float64(tolerance) {
			emit(mean)
			sum, count = 0, 0
		}
		sum += float64(pos)
		count++
	}
	emit(sum / count)

	return anchors
}

func sortedCopy(positions []int) []int {
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)
	return sorted
}

func clampTolerance(tolerance int) int {
	if tolerance < 0 {
		return 0
	}
	return tolerance
}

// ClustererRegistry holds registered clustering strategies
type ClustererRegistry struct {
	mu         sync.RWMutex
	clusterers map[string]Clusterer
}

// NewRegistry creates a new clusterer registry
func NewRegistry() *ClustererRegistry {
	return &ClustererRegistry{
		clusterers: make(map[string]Clusterer),
	}
}

// Register registers a clusterer, replacing any with the same name
func (r *ClustererRegistry) Register(c Clusterer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clusterers[c.Name()] = c
}

// Get retrieves a clusterer by name, or nil if none is registered
func (r *ClustererRegistry) Get(name string) Clusterer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clusterers[name]
}

// List returns all registered clusterer names in sorted order
func (r *ClustererRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clusterers))
	for name := range r.clusterers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterClusterer registers a clusterer globally
func RegisterClusterer(c Clusterer) {
	globalRegistry.Register(c)
}

// GetClusterer retrieves a clusterer by name
func GetClusterer(name string) Clusterer {
	return globalRegistry.Get(name)
}

// ListClusterers returns all registered clusterer names
func ListClusterers() []string {
	return globalRegistry.List()
}

func init() {
	RegisterClusterer(LastAnchorClusterer{})
	RegisterClusterer(GapClusterer{})
	RegisterClusterer(CentroidClusterer{})
}
