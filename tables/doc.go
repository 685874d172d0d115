// Package tables reconstructs a table from OCR tokens using their spatial
// layout.
//
// Reconstruction runs five stages in order, each available on its own:
//
//  1. [FilterTokens] drops tokens with blank text
//  2. [GroupRows] groups tokens into rows by line key, sorted left to right
//  3. A [Clusterer] derives global column anchors from every token's left edge
//  4. [AssignCells] places each token in the cell of its nearest anchor
//  5. [NormalizeGrid] drops empty rows and empty columns
//
// Stages 3 and 4 are separate passes: anchors are computed from all rows
// before any row is assigned.
//
// # Reconstructor
//
// The [Reconstructor] runs the whole pipeline:
//
//	r := tables.NewReconstructor()
//	grid, err := r.Reconstruct(tokens)
//	if err != nil {
//	    // a token had negative geometry
//	}
//	if grid.IsEmpty() {
//	    // no text detected
//	}
//
// # Clustering Strategies
//
// Column clustering is pluggable. Strategies are registered by name:
//
//   - [LastAnchorClusterer] ("last-anchor") - the default; a position starts
//     a new column when it is more than tolerance past the last anchor
//   - [GapClusterer] ("gap") - a position starts a new column when it is more
//     than tolerance past the previous position
//   - [CentroidClusterer] ("centroid") - compares against the running mean of
//     the current column
//
// Select one through [Config]:
//
//	config := tables.DefaultConfig()
//	config.Tolerance = 25
//	config.Clusterer = "gap"
//	r, err := tables.NewReconstructorWithConfig(config)
//
// A configured Reconstructor holds no mutable state and is safe for
// concurrent use.
package tables
