package targets

import (
	"github.com/spf13/cobra"

	"github.com/brevdev/kusto-init/pkg/cmdcontext"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/initscript"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

func NewCmdTargets(t *terminal.Terminal) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "targets",
		DisableFlagsInUseLine: true,
		Short:                 "List the log4j2 configs the script overwrites",
		Example:               "  kusto-init targets --spark-home /opt/spark",
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdcontext.LoadSettings(cmd)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			_, gen := initscript.FromSettings(settings)
			terminal.DisplayTargets(t, gen.Targets())
			return nil
		},
	}
	return cmd
}
