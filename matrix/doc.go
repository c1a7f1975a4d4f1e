/*
Package matrix provides dense row-major matrices over fixed-size numeric
scalars, with naive and cache-blocked multiplication.

The package is generic: one implementation covers every integer and float
element type through the Scalar constraint. Construction validates
dimensions and guards the element count against overflow; arithmetic
reports shape mismatches as errors. Beyond operator arithmetic, MultiplyOps
accepts a caller-supplied accumulation step so modular or saturating
arithmetic can run over the same blocked traversal.

# BSD License

Copyright (c) 2024–25, the arbor authors

Please refer to the license text in the root package documentation.
*/
package matrix
