// Package export converts core.Graph values into gonum graphs and renders
// them as Graphviz DOT, optionally highlighting a path (e.g. the shortest
// path found before or after rewiring).
//
// The DOT output is textual only; laying it out and drawing it is left to
// external tools.
package export
