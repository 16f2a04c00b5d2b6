package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/version"
	"github.com/containers/common/pkg/completion"
	"github.com/containers/common/pkg/report"
	"github.com/spf13/cobra"
)

var (
	versionCommand = &cobra.Command{
		Use:               "version [options]",
		Args:              validate.NoArgs,
		Short:             "Display the bbpterms version information",
		RunE:              showVersion,
		ValidArgsFunction: completion.AutocompleteNone,
	}
	versionFormat string
)

// versionReport describes the running binary.
type versionReport struct {
	Version           string
	FileFormatVersion int
	GoVersion         string
	OsArch            string
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: versionCommand,
	})
	flags := versionCommand.Flags()

	formatFlagName := "format"
	flags.StringVarP(&versionFormat, formatFlagName, "f", "", "Change the output format to JSON or a Go template")
	_ = versionCommand.RegisterFlagCompletionFunc(formatFlagName, common.AutocompleteFormat(&versionReport{}))
}

func showVersion(cmd *cobra.Command, args []string) error {
	v := versionReport{
		Version:           version.Version.String(),
		FileFormatVersion: version.FileFormatVersion,
		GoVersion:         runtime.Version(),
		OsArch:            fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	return printVersion(cmd.OutOrStdout(), versionFormat, &v)
}

func printVersion(w io.Writer, format string, v *versionReport) error {
	if report.IsJSON(format) {
		return registry.WriteJSON(w, v)
	}

	rpt := report.New(w, "version")
	defer rpt.Flush()

	var err error
	if format != "" {
		rpt, err = rpt.Parse(report.OriginUnknown, format)
	} else {
		rpt, err = rpt.Parse(report.OriginPodman, versionTemplate)
	}
	if err != nil {
		return err
	}
	return rpt.Execute(v)
}

const versionTemplate = `Version:\t{{.Version}}
File Format:\t{{.FileFormatVersion}}
Go Version:\t{{.GoVersion}}
OS/Arch:\t{{.OsArch}}
`
