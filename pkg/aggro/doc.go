// Package aggro provides a typed builder for MongoDB aggregation pipelines.
//
// The aggro package offers a convenient way to assemble aggregation pipelines from typed stages and
// expression operators instead of hand-writing nested maps. Each stage and operator is a small immutable
// value that knows how to produce its own wire form, and a Pipeline sequences stages in order.
//
// One of the key benefits of using the aggro package is that shape errors are caught at construction
// time. Checked constructors validate required operands and reject unknown fields, so by the time a
// pipeline is serialised the tree is guaranteed structurally valid and serialisation cannot fail.
//
// Expressions are combined with the And, Or and Not combinators. And and Or flatten nested combinations
// of the same operator into a single operand list, which keeps the produced documents close to what a
// person would write by hand. Not never flattens and never cancels a double negation.
//
// The produced wire form is a plain tree of maps, slices and scalars that can be handed directly to a
// MongoDB driver's Aggregate call. The package never executes anything itself.
package aggro
