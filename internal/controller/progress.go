package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// rankProgress lazily creates a progress bar once the total is known.
type rankProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newRankProgress(out io.Writer) *rankProgress {
	return &rankProgress{out: out}
}

// Update moves the bar to done out of total files.
func (p *rankProgress) Update(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("Ranking files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(p.out)
			}),
		)
	}

	_ = p.bar.Set(done)
}
