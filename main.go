package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brevdev/kusto-init/pkg/cmd"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

func main() {
	reporter := breverrors.GetDefaultErrorReporter()
	done := reporter.Setup()
	defer done()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := cmd.NewDefaultCommand()
	if failed, err := command.ExecuteContextC(ctx); err != nil {
		cmd.HandleError(terminal.New(), reporter, failed, err)
		stop()
		os.Exit(1)
	}
}
