package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Reporter provides progress feedback while the static site is written.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter otherwise.
func NewReporter(description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{description: description}
	}
	return &TerminalReporter{description: description, out: os.Stderr}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	description string
	out         io.Writer
	bar         *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter logs one line per step, suitable for CI logs.
type CIReporter struct {
	description string
	total       int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	logrus.WithField("total", total).Info(r.description)
}

func (r *CIReporter) Update(current int, message string) {
	logrus.WithFields(logrus.Fields{"step": current, "total": r.total}).Info(message)
}

func (r *CIReporter) Finish() {
	logrus.Infof("%s: done", r.description)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
