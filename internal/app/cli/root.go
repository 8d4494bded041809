package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"orderflow/internal/app/config"
	"orderflow/internal/infrastructure/logging"
)

type runtime struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

// NewRootCommand wires the subcommands around a shared viper instance.
// Flags override the environment, which overrides the defaults.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	rt := &runtime{v: v}

	root := &cobra.Command{
		Use:           "orderflow",
		Short:         "Order service driven by in-process events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json, console)")
	flags.String("database-url", "", "Postgres connection string")
	flags.String("migrations-dir", "", "goose migrations directory")
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyDatabaseURL, flags.Lookup("database-url"))
	_ = v.BindPFlag(config.KeyMigrationsDir, flags.Lookup("migrations-dir"))

	root.AddCommand(
		newServeCommand(rt),
		newMigrateCommand(rt),
		newListenersCommand(rt),
	)
	return root
}

func (rt *runtime) load() error {
	cfg, err := config.Load(rt.v)
	if err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	rt.cfg = cfg
	rt.log = log
	return nil
}
