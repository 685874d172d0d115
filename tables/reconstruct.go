package tables

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/ocrgrid/model"
)

// DefaultTolerance is the default column tolerance in pixels. It sits between
// typical word spacing and typical column spacing for a page scanned at
// 200-300 DPI.
const DefaultTolerance = 40

// DefaultClusterer is the name of the default clustering strategy.
const DefaultClusterer = "last-anchor"

// ErrUnknownClusterer is returned when a configuration names a clustering
// strategy that is not registered.
var ErrUnknownClusterer = errors.New("unknown clusterer")

// ErrInvalidTolerance is returned for a negative tolerance.
var ErrInvalidTolerance = errors.New("tolerance must not be negative")

// Config holds reconstruction configuration
type Config struct {
	// Maximum horizontal distance (pixels) between positions in one column
	Tolerance int

	// Registered name of the column clustering strategy
	Clusterer string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Clusterer: DefaultClusterer,
	}
}

// Validate checks the configuration and resolves the clustering strategy.
func (c Config) Validate() (Clusterer, error) {
	if c.Tolerance < 0 {
		return nil, errors.Wrapf(ErrInvalidTolerance, "got %d", c.Tolerance)
	}
	name := c.Clusterer
	if name == "" {
		name = DefaultClusterer
	}
	clusterer := GetClusterer(name)
	if clusterer == nil {
		return nil, errors.Wrapf(ErrUnknownClusterer, "%q (available: %v)", name, ListClusterers())
	}
	return clusterer, nil
}

// Reconstructor turns OCR tokens into a grid. It holds no per-call state.
type Reconstructor struct {
	config    Config
	clusterer Clusterer
	log       logrus.FieldLogger
}

// NewReconstructor creates a reconstructor with default configuration.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		config:    DefaultConfig(),
		clusterer: LastAnchorClusterer{},
		log:       logrus.StandardLogger(),
	}
}

// NewReconstructorWithConfig creates a reconstructor with the given
// configuration.
func NewReconstructorWithConfig(config Config) (*Reconstructor, error) {
	r := NewReconstructor()
	if err := r.Configure(config); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure sets the reconstruction configuration.
func (r *Reconstructor) Configure(config Config) error {
	clusterer, err := config.Validate()
	if err != nil {
		return err
	}
	config.Clusterer = clusterer.Name()
	r.config = config
	r.clusterer = clusterer
	return nil
}

// WithClusterer sets a strategy directly, bypassing the registry.
func (r *Reconstructor) WithClusterer(c Clusterer) *Reconstructor {
	r.clusterer = c
	r.config.Clusterer = c.Name()
	return r
}

// WithLogger sets the logger used for debug output.
func (r *Reconstructor) WithLogger(log logrus.FieldLogger) *Reconstructor {
	if log != nil {
		r.log = log
	}
	return r
}

// Config returns the active configuration.
func (r *Reconstructor) Config() Config {
	return r.config
}

// Anchors filters and groups tokens and returns the column anchors the
// configured strategy finds for them.
func (r *Reconstructor) Anchors(tokens []model.Token) []int {
	rows := GroupRows(FilterTokens(tokens))
	return r.clusterer.Cluster(CollectPositions(rows), r.config.Tolerance)
}

// Reconstruct runs the full pipeline. When no token has text the returned grid
// is empty and err is nil; callers report that as "no text detected". The
// only error is model.ErrInvalidToken for tokens with negative geometry.
func (r *Reconstructor) Reconstruct(tokens []model.Token) (*model.Grid, error) {
	for i, tok := range tokens {
		if err := tok.Validate(); err != nil {
			return nil, errors.Wrapf(err, "token %d", i)
		}
	}

	filtered := FilterTokens(tokens)
	if len(filtered) == 0 {
		r.log.WithField("tokens", len(tokens)).Debug("no text after filtering")
		return &model.Grid{}, nil
	}

	// Pass 1: anchors from every row at once.
	rows := GroupRows(filtered)
	anchors := r.clusterer.Cluster(CollectPositions(rows), r.config.Tolerance)

	// Pass 2: per-row cell assignment against the shared anchors.
	cells := AssignCells(rows, anchors)
	grid := NormalizeGrid(cells, anchors)

	r.log.WithFields(logrus.Fields{
		"tokens":    len(tokens),
		"kept":      len(filtered),
		"rows":      len(rows),
		"anchors":   len(anchors),
		"clusterer": r.clusterer.Name(),
		"tolerance": r.config.Tolerance,
		"grid_rows": grid.RowCount(),
		"grid_cols": grid.ColCount(),
	}).Debug("reconstructed grid")

	return grid, nil
}
