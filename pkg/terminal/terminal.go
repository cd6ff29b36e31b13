// Package terminal is for terminal outputting
package terminal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

type Terminal struct {
	out     io.Writer
	verbose io.Writer
	err     io.Writer

	Green  func(format string, a ...interface{}) string
	Yellow func(format string, a ...interface{}) string
	Red    func(format string, a ...interface{}) string
	Blue   func(format string, a ...interface{}) string
}

func New() (t *Terminal) {
	return NewWithWriters(os.Stdout, os.Stderr)
}

func NewWithWriters(out io.Writer, err io.Writer) *Terminal {
	return &Terminal{
		out:     out,
		verbose: silentWriter{},
		err:     err,
		Green:   color.New(color.FgGreen).SprintfFunc(),
		Yellow:  color.New(color.FgYellow).SprintfFunc(),
		Red:     color.New(color.FgRed).SprintfFunc(),
		Blue:    color.New(color.FgBlue).SprintfFunc(),
	}
}

func (t *Terminal) SetVerbose(verbose bool) {
	if verbose {
		t.verbose = t.out
	} else {
		t.verbose = silentWriter{}
	}
}

// Out is where rendered artifacts go, undecorated.
func (t *Terminal) Out() io.Writer {
	return t.out
}

func (t *Terminal) Print(a string) {
	fmt.Fprintln(t.out, a)
}

func (t *Terminal) Printf(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format, a...)
}

func (t *Terminal) Vprint(a string) {
	fmt.Fprintln(t.verbose, a)
}

func (t *Terminal) Vprintf(format string, a ...interface{}) {
	fmt.Fprintf(t.verbose, format, a...)
}

func (t *Terminal) Eprint(a string) {
	fmt.Fprintln(t.err, a)
}

func (t *Terminal) Eprintf(format string, a ...interface{}) {
	fmt.Fprintf(t.err, format, a...)
}

func (t *Terminal) Errprint(err error, a string) {
	t.Eprint(t.Red("Error: " + err.Error()))
	if a != "" {
		t.Eprint(t.Red(a))
	}
	var brevErr breverrors.BrevError
	if breverrors.As(err, &brevErr) {
		t.Eprint(t.Red(brevErr.Directive()))
	}
}

type silentWriter struct{}

func (w silentWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// NewDownloadBar draws byte progress on stderr. It is an io.Writer meant to be
// teed with the download body.
func (t *Terminal) NewDownloadBar(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(t.err),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionClearOnFinish(),
	)
}

// NewSpinner draws on stderr.
func (t *Terminal) NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(t.err))
}
