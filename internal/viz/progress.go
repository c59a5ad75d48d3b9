package viz

import (
	"fmt"
	"io"
)

// LogProgress writes one "Time: t" line per reported step to W. With
// Every > 1 only every Every-th report is written.
type LogProgress struct {
	W     io.Writer
	Every int

	count int
}

func NewLogProgress(w io.Writer, every int) *LogProgress {
	return &LogProgress{W: w, Every: every}
}

func (p *LogProgress) Report(t float64) {
	p.count++
	if p.Every > 1 && p.count%p.Every != 0 {
		return
	}
	fmt.Fprintf(p.W, "Time: %.5f\n", t)
}

// Count returns the number of reports received.
func (p *LogProgress) Count() int { return p.count }
