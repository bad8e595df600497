package breedtree

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; the package wraps them with
// method context via %w.
var (
	// ErrUnsupportedGenerationCount indicates no leaf template exists for the
	// requested number of IVs (with or without nature).
	ErrUnsupportedGenerationCount = errors.New("breedtree: unsupported generation count")

	// ErrMissingTemplateEntry indicates a role referenced by the selected
	// template has no IV in the assignment.
	ErrMissingTemplateEntry = errors.New("breedtree: role has no assigned iv")

	// ErrUnexpectedRole indicates the assignment contains a role the selected
	// template does not use (including the Nature role, which never maps to an IV).
	ErrUnexpectedRole = errors.New("breedtree: role not used by template")

	// ErrAssignmentMismatch indicates an assigned IV is not requested by the
	// final node, or the same IV is assigned to two roles.
	ErrAssignmentMismatch = errors.New("breedtree: assignment does not match requested ivs")

	// ErrUnresolvedPositions indicates construction could not produce a node for
	// one or more positions.
	ErrUnresolvedPositions = errors.New("breedtree: unresolved positions")

	// ErrMissingRoot indicates the tree holds no node at the root position.
	ErrMissingRoot = errors.New("breedtree: missing root node")

	// ErrTreeNil is returned when Walk or InsertNode is given a nil *Tree.
	ErrTreeNil = errors.New("breedtree: tree is nil")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("breedtree: invalid option supplied")
)

// Method names used to prefix errors with their origin.
const (
	MethodBuild       = "Build"
	MethodTemplateFor = "TemplateFor"
	MethodGenerations = "GenerationsFor"
	MethodFinalNode   = "FinalNode"
	MethodInsertNode  = "InsertNode"
	MethodWalk        = "Walk"
	methodAssignment  = "checkAssignment"
)

// errorf prefixes a wrapped sentinel with the method name:
// "<method>: <sentinel>: <detail>".
func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
