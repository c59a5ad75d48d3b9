package heat

// ProgressSink receives the simulated time after every completed step of
// RunUntil. Implementations must not block indefinitely.
type ProgressSink interface {
	Report(t float64)
}

// PlotSink renders a snapshot of the solution. Both slices are copies owned
// by the sink.
type PlotSink interface {
	Render(grid, u []float64) error
}

// ProgressFunc adapts a plain function to ProgressSink.
type ProgressFunc func(t float64)

func (f ProgressFunc) Report(t float64) { f(t) }

// PlotFunc adapts a plain function to PlotSink.
type PlotFunc func(grid, u []float64) error

func (f PlotFunc) Render(grid, u []float64) error { return f(grid, u) }

type discard struct{}

func (discard) Report(float64) {}

// Discard is a ProgressSink that drops every report.
var Discard ProgressSink = discard{}
