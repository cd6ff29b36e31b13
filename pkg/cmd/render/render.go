package render

import (
	"github.com/spf13/cobra"

	"github.com/brevdev/kusto-init/pkg/cmdcontext"
	"github.com/brevdev/kusto-init/pkg/config"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/initscript"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

var (
	short   = "Print the cluster-init script"
	long    = "Print the cluster-init script, or with --properties the log4j2.properties it installs"
	example = `  kusto-init render --ingest-url https://ingest-foo.kusto.windows.net --db-name dbX > init.sh
  kusto-init render --properties --config kusto-init.yaml`
)

func NewCmdRender(t *terminal.Terminal) *cobra.Command {
	var properties bool

	cmd := &cobra.Command{
		Use:                   "render",
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
			err = RunRender(t, settings, properties)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&properties, "properties", false, "print the log4j2.properties with values filled in")
	return cmd
}

func RunRender(t *terminal.Terminal, settings config.Settings, properties bool) error {
	params, gen := initscript.FromSettings(settings)
	var out string
	var err error
	if properties {
		out, err = gen.RenderProperties(params)
	} else {
		out, err = gen.RenderScript(params)
	}
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	t.Printf("%s", out)
	return nil
}
