package main

import (
	"fmt"
	"os"

	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/sirupsen/logrus"
)

func main() {
	for _, c := range registry.Commands {
		parent := rootCmd
		if c.Parent != nil {
			parent = c.Parent
		}
		parent.AddCommand(c.Command)
	}

	if err := rootCmd.ExecuteContext(registry.Context()); err != nil {
		if logrus.IsLevelEnabled(logrus.TraceLevel) {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(registry.GetExitCode())
	}
	os.Exit(0)
}
