// Package viz renders heat simulations in the terminal and to image files.
//
// Sinks for [heat.ProgressSink] and [heat.PlotSink]:
//
//   - [LogProgress]: "Time: t" lines, optionally every N-th step
//   - [ASCIIPlot]: asciigraph line chart of the profile
//   - [BraillePlot]: the profile drawn on a braille [Canvas]
//   - [ImagePlot]: gonum/plot output (.png, .svg, .pdf)
//
// [Live] is a Bubble Tea model that steps a simulation and redraws the
// profile every frame.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial condition
//	+/-   - Double/halve steps per frame
//	Q     - Quit
package viz
