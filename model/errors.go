package model

import "github.com/pkg/errors"

// ErrInvalidToken is returned when a token violates the geometry contract of
// its producer (negative position or size).
var ErrInvalidToken = errors.New("invalid token")
