package put

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brevdev/kusto-init/pkg/cmdcontext"
	"github.com/brevdev/kusto-init/pkg/config"
	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/brevdev/kusto-init/pkg/files"
	"github.com/brevdev/kusto-init/pkg/initscript"
	"github.com/brevdev/kusto-init/pkg/store"
	"github.com/brevdev/kusto-init/pkg/terminal"
)

var (
	short = "Upload the cluster-init script"
	long  = `Render the cluster-init script and write it to a destination:
  dbfs:/path            databricks dbfs, needs DATABRICKS_HOST and DATABRICKS_TOKEN
  az://container/blob   azure blob storage, needs AZURE_STORAGE_ACCOUNT_URL
  path                  local file`
	example = `  kusto-init put --config kusto-init.yaml
  kusto-init put dbfs:/databricks/scripts/kusto.sh
  kusto-init put ./init.sh`
)

type PutStore interface {
	PutFile(ctx context.Context, path, content string, overwrite bool) error
}

type DestinationResolver func(dest store.Destination) (PutStore, error)

// NewDestinationResolver builds the store for a destination kind from the
// environment. Local destinations go through fs.
func NewDestinationResolver(fs *store.FileStore) DestinationResolver {
	return func(dest store.Destination) (PutStore, error) {
		switch dest.Kind {
		case store.DBFSDestination:
			host := config.GlobalConfig.GetDatabricksHost()
			if host == "" {
				return nil, &breverrors.MissingDatabricksHostError{}
			}
			client := store.NewDBFSClient(host, config.GlobalConfig.GetDatabricksToken())
			return fs.WithDBFSClient(client), nil
		case store.BlobDestination:
			account := config.GlobalConfig.GetAzureStorageAccountURL()
			if account == "" {
				return nil, &breverrors.MissingStorageAccountError{}
			}
			client, err := store.NewBlobClient(account)
			if err != nil {
				return nil, breverrors.WrapAndTrace(err)
			}
			return fs.WithBlobClient(client), nil
		default:
			return fs, nil
		}
	}
}

func NewCmdPut(t *terminal.Terminal, resolve DestinationResolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "put [destination]",
		DisableFlagsInUseLine: true,
		Short:                 short,
		Long:                  long,
		Example:               example,
		Args:                  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cmdcontext.LoadSettings(cmd)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			raw := files.GetDefaultInitScriptDestination()
			if len(args) > 0 {
				raw = args[0]
			}
			ctx, cancel := cmdcontext.Context(cmd)
			defer cancel()
			err = RunPut(ctx, t, resolve, settings, raw)
			if err != nil {
				return breverrors.WrapAndTrace(err)
			}
			return nil
		},
	}
	return cmd
}

func RunPut(ctx context.Context, t *terminal.Terminal, resolve DestinationResolver, settings config.Settings, raw string) error {
	dest, err := store.ParseDestination(raw)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	params, gen := initscript.FromSettings(settings)
	script, err := gen.RenderScript(params)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	s, err := resolve(dest)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}

	zap.L().Info("uploading init script", zap.String("destination", dest.String()), zap.Int("bytes", len(script)))
	sp := t.NewSpinner()
	sp.Suffix = "  uploading " + dest.String()
	sp.Start()
	err = s.PutFile(ctx, dest.Path, script, true)
	sp.Stop()
	if err != nil {
		return breverrors.WrapAndTrace(err, "put", dest.String())
	}
	t.Vprintf("%s\n", t.Green("wrote %d bytes", len(script)))
	t.Print(dest.String())
	return nil
}
