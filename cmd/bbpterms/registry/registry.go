package registry

import (
	"context"

	"github.com/containers/bbpterms/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CliCommand is a command to present to the user, attached to Parent or,
// when Parent is nil, to the root command.
type CliCommand struct {
	Command *cobra.Command
	Parent  *cobra.Command
}

// ExecErrorCodeGeneric is the exit code of any failed invocation.
const ExecErrorCodeGeneric = 125

var (
	cliCtx   context.Context
	cfg      *config.Config
	exitCode = ExecErrorCodeGeneric

	// Commands holds the cobra.Commands to present to the user, including
	// parent if not a child of "root"
	Commands []CliCommand
)

func SetExitCode(code int) {
	exitCode = code
}

func GetExitCode() int {
	return exitCode
}

// Context returns the context shared by the command tree.
func Context() context.Context {
	if cliCtx == nil {
		cliCtx = context.Background()
	}
	return cliCtx
}

// LoadConfig reads the configuration file at path, or the built-in
// defaults when path is empty, and makes it available through Config.
func LoadConfig(path string) (*config.Config, error) {
	c, err := config.New(path)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// Config returns the loaded configuration, falling back to the built-in
// defaults when no configuration was loaded.
func Config() *config.Config {
	if cfg == nil {
		logrus.Debugf("No configuration loaded, using defaults")
		cfg = config.Default()
	}
	return cfg
}
