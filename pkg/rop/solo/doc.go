// Package solo contains single-value, synchronous primitives that operate on
// Result[T] and Outcome[T]. The stream composer uses them around every stage
// of a flow.
//
// Highlights:
// - Guard: call a stage and turn a panic into a failed Outcome
// - Tee/DoubleTee: side-effect helpers that leave the result untouched
package solo
