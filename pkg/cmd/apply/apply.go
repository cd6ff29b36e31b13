package apply

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brevdev/kusto-init/pkg/cmdcontext"
	"github.com/brevdev/kusto-init/pkg/config"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/initscript"
	"github.com/brevdev/kusto-init/pkg/store"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

var (
	short = "Configure kusto logging on this node"
	long  = `Do what the cluster-init script does, directly on the current node:
download the appender jar, write the log4j2 properties and copy them over the
executor, driver and master-worker configs.

Every step is attempted and reported unless --fail-fast is set.`
	example = `  sudo kusto-init apply --config kusto-init.yaml
  kusto-init apply --spark-home /tmp/spark --jar-path /tmp/kusto.jar --fail-fast`
)

func NewCmdApply(t *terminal.Terminal, s *store.NoAuthHTTPStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "apply",
		DisableFlagsInUseLine: true,
		Short:                 short,
		Long:                  long,
		Example:               example,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdcontext.LoadSettings(cmd)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			ctx, cancel := cmdcontext.Context(cmd)
			defer cancel()

			bar := t.NewDownloadBar("appender jar")
			defer bar.Finish() //nolint:errcheck // progress only
			err = RunApply(ctx, t, s.WithProgress(bar), settings)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			return nil
		},
	}
	return cmd
}

// RunApply prints the report in every case. The error is non-nil only when the
// run was aborted.
func RunApply(ctx context.Context, t *terminal.Terminal, s initscript.ApplyStore, settings config.Settings) error {
	params, gen := initscript.FromSettings(settings)
	report, err := initscript.NewApplier(gen, s, zap.L()).Apply(ctx, params)
	terminal.DisplayReport(t, report)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	if !report.Succeeded() {
		zap.L().Warn("apply finished with failures", zap.Error(report.Err()))
	}
	return nil
}
