// Package visualize is a diagnostic-only debug visualizer: a bubbletea
// TUI that steps row-by-row through a pathcount run, and an SVG exporter
// for a single concrete path. Neither is reachable from Count; both exist
// purely to let a human inspect what the driver is doing.
//
// What:
//   - RowSnapshot records one row's (row index, total rows, live
//     configuration count), captured via pathcount.Options.ProgressFunc.
//   - Model is a bubbletea.Model that lists captured snapshots and lets
//     the user scroll through them.
//   - ExportSVG renders a grid and one concrete path as an SVG drawing.
package visualize
