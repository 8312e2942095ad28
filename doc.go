// Package grid provides a sparse, auto-expanding two-dimensional grid.
//
// A Grid maps integer (x, y) coordinates to values of some comparable type
// and tracks a bounding rectangle that grows on its own as values are placed
// near the edges. A configurable "fringe" keeps a minimum padding distance
// between the outermost set coordinate and the rectangle whenever an edge is
// touched, and Shrink collapses the rectangle back down to the smallest one
// (fringe included) that still covers every set coordinate.
//
// Cells never store the grid's default value; setting a coordinate to the
// default removes it, and reading any coordinate that holds no value returns
// the default. Every operation is total - there is no out-of-range error,
// reads outside the rectangle simply return the default.
//
// A Grid is a plain single-owner value container. It does no locking; callers
// needing concurrent access must provide their own.
package grid
