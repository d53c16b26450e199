// Package anticlust provides the local-search engine behind anticlustering:
// partitioning N elements into K groups of fixed size so that a
// heterogeneity objective across the partition is maximized.
//
// Two objective variants are supported:
//
//   - Variance: sum over clusters of squared Euclidean distances from each
//     member to its cluster centroid.
//   - Diversity: sum over clusters of pairwise distances among members,
//     read from a precomputed N×N distance matrix, optionally honoring
//     categorical exchange constraints.
//
// # Quick Start
//
//	ctx := context.Background()
//	result, err := anticlust.Variance(ctx, data, n, m, k, frequencies, clusters)
//
//	result, err := anticlust.Diversity(ctx, distances, n, k, frequencies, clusters,
//	    anticlust.CategoryConstraint{}, // no categorical restriction
//	)
//
// Both entry points overwrite clusters in place with the optimized
// assignment and leave it untouched on error.
//
// # Algorithm
//
// The optimizer runs the exchange method once: for every element, it
// evaluates every admissible exchange partner, tentatively swaps, and
// commits only the single best strictly-improving swap before moving to the
// next element. It is deterministic, single-threaded, and never iterated to
// convergence internally — callers chase a local optimum by feeding the
// output back in as a new initial assignment, or by using
// engine.RunToFixedPoint.
//
// # Key properties
//
//   - Cluster sizes are conserved exactly.
//   - Category distribution across clusters is conserved when categorical
//     constraints are enabled.
//   - The objective is monotonically non-decreasing across commits.
//   - A call is a pure, uninterruptible, allocation-scoped computation over
//     caller-owned buffers; no global state, no I/O, no persistence.
package anticlust
