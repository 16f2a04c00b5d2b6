package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/pkg/config"
	"github.com/containers/bbpterms/version"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootDescription = `Compute the terms of the Bailey-Borwein-Plouffe series for pi.

  For every term index k from 0 to COUNT-1 the four terms 16^(N-k)/(8k+j),
  j = 1, 4, 5 and 6, are computed, printed, and written to OUTPUT as a JSON
  array of 4*COUNT numbers. Terms with k < N are reduced modulo 8k+j.`

	rootCmd = &cobra.Command{
		Use:               "bbpterms [options] N COUNT OUTPUT",
		Short:             "Compute Bailey-Borwein-Plouffe series terms",
		Long:              rootDescription,
		Args:              validate.ExactArgs("N", "COUNT", "OUTPUT"),
		RunE:              compute,
		ValidArgsFunction: autocompleteComputeArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return after(cmd, args)
		},
		Example: `bbpterms 1600 100 output.json
  bbpterms --format json 0 4 output.json
  bbpterms --format '{{.K}} {{.J}} {{.Term}}' 2 1 output.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version.String(),
	}

	logLevel   = config.DefaultLogLevel
	configPath string
)

func init() {
	pFlags := rootCmd.PersistentFlags()

	logLevelFlagName := "log-level"
	level := validate.ChoiceValue(&logLevel, common.LogLevels...)
	pFlags.Var(level, logLevelFlagName, fmt.Sprintf("Log messages above specified level (%s)", level.Choices()))
	_ = rootCmd.RegisterFlagCompletionFunc(logLevelFlagName, common.AutocompleteLogLevel)

	configFlagName := "config"
	pFlags.StringVar(&configPath, configFlagName, "", "Path to a TOML configuration file")
	_ = rootCmd.RegisterFlagCompletionFunc(configFlagName, cobra.FixedCompletions([]string{"conf", "toml"}, cobra.ShellCompDirectiveFilterFileExt))

	computeFlags(rootCmd)
}

func before(cmd *cobra.Command, args []string) error {
	c, err := registry.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if !cmd.Flag("log-level").Changed && c.Engine.LogLevel != "" {
		logLevel = c.Engine.LogLevel
	}
	if err := loggingHook(); err != nil {
		return err
	}
	logrus.Debugf("Called %s.PersistentPreRunE(%s)", cmd.Name(), strings.Join(os.Args, " "))
	return nil
}

func after(cmd *cobra.Command, args []string) error {
	logrus.Debugf("Called %s.PersistentPostRunE(%s)", cmd.Name(), strings.Join(os.Args, " "))
	return nil
}

func loggingHook() error {
	var found bool
	for _, l := range common.LogLevels {
		if l == strings.ToLower(logLevel) {
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("log Level %q is not supported, choose from: %s", logLevel, strings.Join(common.LogLevels, ", "))
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		logrus.Infof("%s filtering at log level %s", os.Args[0], logrus.GetLevel())
	}
	return nil
}
