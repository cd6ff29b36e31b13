package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../pkg/cmd/version.Version=..."
var Version = ""

func BuildVersionString() string {
	if Version == "" {
		return "unknown"
	}
	return Version
}

func NewCmdVersion(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		DisableFlagsInUseLine: true,
		Short:                 "Print the kusto-init version",
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, BuildVersionString())
			return err //nolint:wrapcheck // write to terminal
		},
	}
	return cmd
}
