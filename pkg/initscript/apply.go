package initscript

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"go.uber.org/zap"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

type ApplyStore interface {
	DownloadToFile(ctx context.Context, url, target string) error
	WriteString(path, data string) error
	CopyFile(src, dst string) error
}

type Step string

const (
	StepDownload   Step = "download"
	StepProperties Step = "properties"
	StepCopy       Step = "copy"
)

type StepResult struct {
	Step Step
	Path string
	Err  error
	// Skipped is set when the run stopped before reaching this step.
	Skipped bool
}

type TargetResult struct {
	Role Role
	StepResult
}

// Report has one entry per step, in execution order.
type Report struct {
	Download   StepResult
	Properties StepResult
	Targets    []TargetResult
}

func (r Report) steps() []StepResult {
	steps := []StepResult{r.Download, r.Properties}
	for _, t := range r.Targets {
		steps = append(steps, t.StepResult)
	}
	return steps
}

func (r Report) Failed() []StepResult {
	return lo.Filter(r.steps(), func(s StepResult, _ int) bool { return s.Err != nil })
}

func (r Report) Succeeded() bool {
	return len(r.Failed()) == 0 && !lo.SomeBy(r.steps(), func(s StepResult) bool { return s.Skipped })
}

// Err aggregates every failed step, nil if none failed.
func (r Report) Err() error {
	var result error
	for _, s := range r.Failed() {
		result = multierror.Append(result, breverrors.Wrap(s.Err, string(s.Step)+" "+s.Path))
	}
	return result
}

// Applier performs the init script's actions directly against a store.
type Applier struct {
	gen   Generator
	store ApplyStore
	log   *zap.Logger
}

func NewApplier(gen Generator, store ApplyStore, log *zap.Logger) *Applier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Applier{gen: gen, store: store, log: log}
}

// Apply downloads the appender jar, writes the properties to the temp path and
// copies it over every role target, in that order. Under BestEffort every step
// runs and the returned error is nil; under FailFast the first failure is
// returned and later steps are marked skipped. A cancelled ctx stops either way.
func (a *Applier) Apply(ctx context.Context, p Params) (Report, error) {
	layout := a.gen.Layout()
	targets := a.gen.Targets()
	report := Report{
		Download:   StepResult{Step: StepDownload, Path: layout.JarPath},
		Properties: StepResult{Step: StepProperties, Path: layout.TempPath},
		Targets: lo.Map(targets, func(t Target, _ int) TargetResult {
			return TargetResult{Role: t.Role, StepResult: StepResult{Step: StepCopy, Path: t.Path}}
		}),
	}
	failFast := a.gen.Policy() == FailFast

	stop := func(err error) (Report, error) {
		skipAfter(&report)
		return report, breverrors.WrapAndTrace(err)
	}

	if ctx.Err() != nil {
		report.Download.Err = ctx.Err()
		return stop(report.Download.Err)
	}
	a.log.Info("downloading kusto log4j appender", zap.String("url", layout.JarURL), zap.String("path", layout.JarPath))
	report.Download.Err = a.store.DownloadToFile(ctx, layout.JarURL, layout.JarPath)
	if report.Download.Err != nil {
		a.log.Warn("download failed", zap.Error(report.Download.Err))
		if failFast {
			return stop(report.Download.Err)
		}
	}

	if ctx.Err() != nil {
		report.Properties.Err = ctx.Err()
		return stop(report.Properties.Err)
	}
	props, err := a.gen.RenderProperties(p)
	if err == nil {
		a.log.Info("writing log4j2 properties", zap.String("path", layout.TempPath))
		err = a.store.WriteString(layout.TempPath, props)
	}
	report.Properties.Err = err
	if err != nil {
		a.log.Warn("writing properties failed", zap.Error(err))
		if failFast {
			return stop(err)
		}
	}

	for i := range report.Targets {
		tr := &report.Targets[i]
		if ctx.Err() != nil {
			tr.Err = ctx.Err()
			return stop(tr.Err)
		}
		a.log.Info("updating log4j2 config", zap.String("role", string(tr.Role)), zap.String("path", tr.Path))
		tr.Err = a.store.CopyFile(layout.TempPath, tr.Path)
		if tr.Err != nil {
			a.log.Warn("copy failed", zap.String("role", string(tr.Role)), zap.Error(tr.Err))
			if failFast {
				return stop(tr.Err)
			}
		}
	}
	return report, nil
}

// skipAfter marks every step after the first failure as skipped.
func skipAfter(r *Report) {
	failed := false
	mark := func(s *StepResult) {
		if failed && s.Err == nil {
			s.Skipped = true
		}
		if s.Err != nil {
			failed = true
		}
	}
	mark(&r.Download)
	mark(&r.Properties)
	for i := range r.Targets {
		mark(&r.Targets[i].StepResult)
	}
}
