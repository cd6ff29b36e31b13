package terminal

import (
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/initscript"
)

func DisplayTargets(t *Terminal, targets []initscript.Target) {
	for _, target := range targets {
		t.Printf("%-14s %s\n", target.Role, target.Path)
	}
}

func DisplayReport(t *Terminal, report initscript.Report) {
	displayStep(t, "downloaded", report.Download)
	displayStep(t, "wrote", report.Properties)
	for _, tr := range report.Targets {
		displayStep(t, "updated "+string(tr.Role), tr.StepResult)
	}
	if report.Succeeded() {
		t.Print(t.Green("Kusto log4j logging configured"))
		return
	}
	t.Eprint(t.Yellow("Kusto log4j logging only partially configured"))
}

func displayStep(t *Terminal, verb string, s initscript.StepResult) {
	switch {
	case s.Skipped:
		t.Printf("%s %s %s\n", t.Yellow("skip"), verb, s.Path)
	case s.Err != nil:
		t.Printf("%s %s %s: %s\n", t.Red("fail"), verb, s.Path, breverrors.Root(s.Err).Error())
	default:
		t.Printf("%s %s %s\n", t.Green("ok"), verb, s.Path)
	}
}
