package fingertree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid measure configuration.
	ErrInvalidConfig = errors.New("fingertree: invalid configuration")
	// ErrEmptyTree signals a selection on an empty tree. Operations which
	// cannot return a meaningful result for an empty tree panic with an error
	// wrapping ErrEmptyTree.
	ErrEmptyTree = errors.New("fingertree: selection on empty tree")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("fingertree: index out of bounds")
	// ErrNotFound signals that a predicate never became true.
	ErrNotFound = errors.New("fingertree: no matching position")
	// ErrInvalidDimension signals an invalid or missing seek dimension.
	ErrInvalidDimension = errors.New("fingertree: invalid dimension")
	// ErrInvalidStructure signals a violated structural invariant (see Check).
	ErrInvalidStructure = errors.New("fingertree: invalid structure")
)

// emptyTreeError creates the panic value for an operation which has been
// called on an empty tree.
func emptyTreeError(op string) error {
	err := fmt.Errorf("%w: %s", ErrEmptyTree, op)
	tracer().Errorf("%v", err)
	return err
}

// foreignTreeError creates the panic value for an operation which has been
// given a tree of another factory.
func foreignTreeError(op string) error {
	err := fmt.Errorf("%w: %s with a tree of another factory", ErrInvalidConfig, op)
	tracer().Errorf("%v", err)
	return err
}
