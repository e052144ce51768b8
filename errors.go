package graphwork

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers compare with errors.Is; the wrapped detail
// message is for humans only. This mirrors katalvlaran/lvlath's dijkstra
// package, which reports ErrEmptySource/ErrNilGraph/... as package-level
// sentinels rather than bespoke error types.
var (
	// ErrInvalidArgument reports a malformed query: an empty source set, a
	// negative cutoff, or a negative resolved edge weight encountered
	// during relaxation (an unknown method is ErrUnknownMethod instead). Dijkstra's correctness requires non-negative
	// weights; this is checked once an edge's weight is actually resolved
	// via a query's weight name, since AddEdge has no way to know in
	// advance which attribute a later query will select as weight.
	ErrInvalidArgument = errors.New("graphwork: invalid argument")

	// ErrNodeNotFound reports that get_node_info was given an absent node.
	// geoexport also returns it for a path node it cannot resolve.
	ErrNodeNotFound = errors.New("graphwork: node not found")

	// ErrEdgeNotFound reports that remove_edge/get_link_info was given an
	// absent (src, dst) pair.
	ErrEdgeNotFound = errors.New("graphwork: edge not found")

	// ErrUnknownMethod reports a Method value other than "Dijkstra".
	ErrUnknownMethod = errors.New("graphwork: unknown method")

	// ErrInternal reports a worker panic recovered by batch.Executor.
	ErrInternal = errors.New("graphwork: internal error")
)

func nodeNotFoundf(id NodeID) error {
	return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
}

func edgeNotFoundf(src, dst NodeID) error {
	return fmt.Errorf("%w: (%d, %d)", ErrEdgeNotFound, src, dst)
}

func invalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func unknownMethodf(method string) error {
	return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}
