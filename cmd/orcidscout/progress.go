package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// progressReporter surfaces batch progress on stderr: an animated bar on a
// terminal, plain "Processed i of n" lines otherwise.
type progressReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newProgressReporter(out io.Writer, total int, enabled bool) *progressReporter {
	if !enabled || total == 0 {
		return &progressReporter{}
	}
	reporter := &progressReporter{out: out}
	if shouldColorize(out) {
		reporter.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Looking up authors"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
	return reporter
}

// Update is a lookup.ProgressFunc.
func (p *progressReporter) Update(index, total int) {
	switch {
	case p.bar != nil:
		p.bar.Describe(fmt.Sprintf("Processed %d of %d", index, total))
		_ = p.bar.Set(index)
	case p.out != nil:
		fmt.Fprintf(p.out, "Processed %d of %d\n", index, total)
	}
}

func (p *progressReporter) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
