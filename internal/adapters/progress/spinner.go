package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// SpinnerSink shows a spinner while a long-running stage is in flight.
// It writes to stderr so captured stdout stays byte-exact.
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	started time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress starts the spinner for spinner events and stops it otherwise
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.started = time.Now()
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
		color.New(color.FgHiBlack).Fprintf(r.out, "%s finished in %s\n", event.Stage, time.Since(r.started).Round(time.Millisecond))
	}
}

// NewStderrSpinnerSink creates a spinner sink on stderr
func NewStderrSpinnerSink() *SpinnerSink {
	return NewSpinnerSink(os.Stderr)
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
