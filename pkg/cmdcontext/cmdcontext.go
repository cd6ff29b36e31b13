// Package cmdcontext holds what every subcommand does before its real work.
package cmdcontext

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/brevdev/kusto-init/pkg/config"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
)

func LoadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}
	s, err := config.Load(path, cmd.Flags())
	if err != nil {
		return config.Settings{}, breverrors.WrapAndTrace(err)
	}
	return s, nil
}

// Context applies --timeout, when set, to the command's context.
func Context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil || timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
