// Package deadendprune implements spec.md §4.4 DeadEndPrune: it
// iteratively removes any non-target node with degree <= 1, recomputing
// degrees after each removal, until a fixpoint — the same repeat-until-
// no-change shape as the teacher's gridgraph connected-component sweep,
// applied to degree instead of reachability.
package deadendprune
