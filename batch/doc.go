// Package batch distributes independent shortest-path queries over a
// fixed-size worker pool against a shared, immutable graphwork.Graph, and
// materializes dense cost matrices and path dictionaries from the same
// per-source decomposition.
//
// The pool itself is built from sync.WaitGroup and a channel of task indices,
// the same index-the-output-slot-before-dispatch trick used throughout
// this codebase to keep results ordered regardless of completion order.
package batch
