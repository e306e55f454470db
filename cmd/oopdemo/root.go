package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/marcodamonte/oop-concepts/exercise"
	"github.com/marcodamonte/oop-concepts/internal/logging"
)

const cliVersion = "v0.3.0"

// app holds what PersistentPreRunE prepares for the subcommands.
type app struct {
	configFile string
	v          *viper.Viper
	log        *zap.Logger
	env        exercise.Env
	undo       func()
	closeLog   func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), env: exercise.DefaultEnv()}

	root := &cobra.Command{
		Use:           "oopdemo",
		Short:         "Object-oriented concepts, the Go way",
		Version:       cliVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	_ = a.v.BindPFlag(cfgKeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(cfgKeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(
		newRunCmd(a),
		newListCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup() error {
	s, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.New(s.Log)
	if err != nil {
		return err
	}
	a.log = log
	a.closeLog = closeLog
	a.undo = zap.ReplaceGlobals(log)
	a.env = exercise.Env{Log: log, DB: s.DB}

	log.Debug("configuration loaded",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.Stringer("db", s.DB),
	)
	return nil
}

// teardown flushes the logger and releases a file output. Sync errors are
// ignored since stderr cannot be synced on every platform.
func (a *app) teardown() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.undo != nil {
		a.undo()
	}
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	if err != nil {
		return fmt.Errorf("close log output: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the oopdemo version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "oopdemo", cliVersion)
		},
	}
}
