package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NoArgs returns an error if any args are included.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("`%s` takes no arguments", cmd.CommandPath())
	}
	return nil
}

// ExactArgs returns a cobra.PositionalArgs requiring one argument per name.
// The error message lists the expected arguments by name.
func ExactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != len(names) {
			return fmt.Errorf("`%s` requires %d arguments (%s), received %d", cmd.CommandPath(), len(names), strings.Join(names, " "), len(args))
		}
		return nil
	}
}

// Int64Arg parses a base-10 integer argument, ignoring surrounding
// whitespace. name identifies the argument in the error.
func Int64Arg(name, value string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s %q", name, value)
	}
	return i, nil
}

// CountArg parses a non-negative integer argument that fits in an int.
func CountArg(name, value string) (int, error) {
	i, err := Int64Arg(name, value)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, errors.Errorf("%s must not be negative, got %d", name, i)
	}
	if int64(int(i)) != i {
		return 0, errors.Errorf("%s %d is out of range", name, i)
	}
	return int(i), nil
}
