package core

// LocalID is a dense, internal identifier for an element: its position in
// the caller's data/clusters arrays. It is the sole notion of identity used
// throughout membership, objective, and category bookkeeping.
//
// Invariant: LocalID is never reassigned by a swap. Only an element's
// Cluster field changes (spec.md §4.2/§9).
type LocalID = int
