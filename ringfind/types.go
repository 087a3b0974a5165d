// Package ringfind defines options and sentinel errors for ring extraction
// over finite and periodic planar embeddings.
package ringfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for ring finding.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("ringfind: graph is nil")

	// ErrBadCell indicates a periodic cell with a non-positive dimension.
	ErrBadCell = errors.New("ringfind: cell dimensions must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ringfind: invalid option supplied")

	// ErrWrapMismatch indicates a traced ring whose per-edge wrap vectors
	// do not cancel around the cycle — the input is not consistently
	// periodic under the minimum-image convention.
	ErrWrapMismatch = errors.New("ringfind: ring wrap vectors do not cancel")

	// ErrCellTooSmall indicates a ring that revisits the same node through
	// two different periodic images; the cell (or tiling radius) is too
	// small to hold the ring under minimum image.
	ErrCellTooSmall = errors.New("ringfind: ring revisits a node through a periodic image")
)

// Option configures periodic ring finding via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation when the
// finder is constructed.
type Option func(*options)

type options struct {
	radius int
	err    error
}

func defaultOptions() options {
	return options{radius: 1}
}

// WithTilingRadius sets how many neighboring image cells are replicated on
// each side of the home cell when resolving wrap-around edges. The default
// radius 1 (a 3×3 block) resolves edges wrapping by at most one cell; wider
// networks whose edges span several cells need a larger radius.
//
//	r ≥ 1: replicate a (2r+1)×(2r+1) block
//	r < 1: invalid option → ErrOptionViolation
func WithTilingRadius(r int) Option {
	return func(o *options) {
		if r < 1 {
			o.err = fmt.Errorf("%w: tiling radius must be ≥ 1 (%d)", ErrOptionViolation, r)
			return
		}
		o.radius = r
	}
}
