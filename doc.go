// Package peakfind finds local maxima and minima of n-dimensional numeric
// arrays by plateau flood fill.
//
// What is peakfind?
//
//	A small, dependency-light library built in three layers:
//		• rqueue — a FIFO of flat indices that can replay its push history
//		• maxima — the flood-fill core: candidate prefilter, plateau fill,
//		  single-pass scan over a border-flagged flag buffer
//		• ndgrid — shapes, footprints, border flagging, padding, masks,
//		  coordinates and connected-component labels
//
//	plus a command, cmd/peakfind, reading JSON array documents (optionally
//	zstd or gzip compressed) and printing masks, coordinates or labels.
//
// Why the border sentinel?
//
//   - The core never checks bounds while walking neighbors. Every edge cell
//     carries a reserved BorderIndex flag: it is compared, never expanded,
//     and a plateau reaching it is disqualified.
//   - ndgrid builds buffers that satisfy this by construction;
//     maxima.FindChecked and ndgrid.Grid.CheckBorders verify foreign ones.
//
// Quick ASCII example (face connectivity, edges allowed):
//
//	1 1 1 1 1        . . . . .
//	1 5 1 2 1        . X . X .
//	1 1 1 2 1   →    . . . X .
//	1 1 1 1 9        . . . . X
//
//	go get github.com/katalvlaran/peakfind
package peakfind
