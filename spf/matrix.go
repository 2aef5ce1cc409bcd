package spf

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidInput is wrapped by every error returned when the graph or the
// source given to the engine do not satisfy its preconditions. Use errors.Is
// to match it.
var ErrInvalidInput = errors.New("spf: invalid input")

// Infinity is the distance of nodes that cannot be reached from the source.
const Infinity = math.MaxInt

// Matrix is an adjacency matrix of non-negative link costs where m[u][v] is
// the cost of the link from u to v. A cost of 0 between two distinct nodes
// means that there is no link.
type Matrix [][]int

// Validate checks that the matrix is square and that all its costs are
// non-negative. All the violations found are reported in the returned error
// which wraps ErrInvalidInput.
func (m Matrix) Validate() error {
	var errs *multierror.Error
	n := len(m)
	for u, row := range m {
		if len(row) != n {
			errs = multierror.Append(errs, fmt.Errorf(
				"row %d has %d columns, want %d", u, len(row), n))
		}
		for v, c := range row {
			if c < 0 {
				errs = multierror.Append(errs, fmt.Errorf(
					"link %d -> %d has negative cost %d", u, v, c))
			}
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return nil
}

// validate checks the matrix and that src is one of its nodes.
func validate(m Matrix, src int) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if src < 0 || len(m) <= src {
		return fmt.Errorf("%w: node %d is not in the graph", ErrInvalidInput, src)
	}
	return nil
}
