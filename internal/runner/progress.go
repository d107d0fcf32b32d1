package runner

import (
	"io"

	filterpkg "github.com/nethoundsh/findit/pkg/filter"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress shows a spinner while paths are discovered, then one bar per
// filter pass. It implements filter.Observer.
type progress struct {
	p    *mpb.Progress
	disc *mpb.Bar
	pass *mpb.Bar
}

func newProgress(w io.Writer) *progress {
	p := mpb.New(mpb.WithOutput(w))
	disc := p.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(decor.Name("Discovering ")),
		mpb.AppendDecorators(decor.CurrentNoUnit("%d entries")),
		mpb.BarRemoveOnComplete(),
	)
	return &progress{p: p, disc: disc}
}

func (pr *progress) discovered(string) { pr.disc.Increment() }

// discoveryDone fixes the spinner's total at its current count, completing it.
func (pr *progress) discoveryDone() { pr.disc.SetTotal(-1, true) }

func (pr *progress) PassStarted(pred filterpkg.Predicate, pending int) {
	pr.pass = pr.p.New(int64(pending),
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
		mpb.PrependDecorators(decor.Name("Filtering -"+pred.String()+" ")),
		mpb.AppendDecorators(decor.CountersNoUnit(" %d / %d ")),
		mpb.BarRemoveOnComplete(),
	)
}

func (pr *progress) PathChecked(filterpkg.Predicate, string, bool) { pr.pass.Increment() }

// PassFinished completes the bar even when the pass had nothing to check.
func (pr *progress) PassFinished(filterpkg.Predicate, int) { pr.pass.SetTotal(-1, true) }

func (pr *progress) wait() { pr.p.Wait() }
