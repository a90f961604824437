// Package board defines the input data model for the autorouter: the Board
// rectangle, its layer count and trace/via sizing, Obstacles, and
// Connections (nets) to be routed.
//
// Board is the single immutable structure every pipeline stage reads from;
// no stage mutates it. Coordinate comparisons throughout the autorouter use
// the tolerances declared here (EpsCoord, EpsBoundary) rather than exact
// floating point equality, per the source system's numerical-tolerance
// design note.
package board
