// Package cmd is the entrypoint to cli
package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brevdev/kusto-init/pkg/cmd/apply"
	"github.com/brevdev/kusto-init/pkg/cmd/put"
	"github.com/brevdev/kusto-init/pkg/cmd/render"
	"github.com/brevdev/kusto-init/pkg/cmd/targets"
	"github.com/brevdev/kusto-init/pkg/cmd/version"
	"github.com/brevdev/kusto-init/pkg/config"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/store"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

func NewDefaultCommand() *cobra.Command {
	cmd := NewKustoInitCommand(os.Stdin, os.Stdout, os.Stderr)
	return cmd
}

func NewKustoInitCommand(_ io.Reader, out io.Writer, errOut io.Writer) *cobra.Command {
	t := terminal.NewWithWriters(out, errOut)
	var verbose bool

	cmds := &cobra.Command{
		Use:   "kusto-init",
		Short: "generate databricks init scripts that ship spark logs to kusto",
		Long: `
      generate databricks cluster-init scripts that install the kusto
      log4j2 appender and point every spark role at it`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			t.SetVerbose(verbose)
			logger := zap.NewNop()
			if verbose {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return breverrors.WrapAndTrace(err)
				}
			}
			zap.ReplaceGlobals(logger.Named("kusto-init"))
			return nil
		},
		Run: runHelp,
	}
	cmds.SetOut(out)
	cmds.SetErr(errOut)

	pf := cmds.PersistentFlags()
	pf.String("config", "", "yaml file with settings, e.g. app_id: ...")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every step")
	pf.Duration("timeout", 0, "bound the whole run, 0 means no limit")
	config.AddSettingsFlags(pf)

	fs := afero.NewOsFs()
	fsStore := store.NewBasicStore().WithFileSystem(fs)
	httpStore := fsStore.WithNoAuthHTTPClient(store.NewNoAuthHTTPClient())

	cmds.AddCommand(render.NewCmdRender(t))
	cmds.AddCommand(put.NewCmdPut(t, put.NewDestinationResolver(fsStore)))
	cmds.AddCommand(apply.NewCmdApply(t, httpStore))
	cmds.AddCommand(targets.NewCmdTargets(t))
	cmds.AddCommand(version.NewCmdVersion(out))

	return cmds
}

// HandleError prints err with every wrap message kept, then reports it tagged
// with the command that failed.
func HandleError(t *terminal.Terminal, reporter breverrors.ErrorReporter, failed *cobra.Command, err error) {
	t.Errprint(err, "")
	if failed != nil {
		reporter.AddTag("command", failed.CommandPath())
	}
	reporter.ReportError(err)
	reporter.Flush()
}

func runHelp(cmd *cobra.Command, _ []string) {
	_ = cmd.Help()
}
