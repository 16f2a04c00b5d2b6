package main

import (
	"io"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/containers/bbpterms/pkg/seqfile"
	"github.com/containers/common/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var computeFormat string

// termRow is one term as exposed to --format templates.
type termRow struct {
	Index int
	K     int
	J     int64
	Value float64
	Term  string
}

func computeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	formatFlagName := "format"
	flags.StringVar(&computeFormat, formatFlagName, "", "Change the printed output to JSON or a Go template")
	_ = cmd.RegisterFlagCompletionFunc(formatFlagName, common.AutocompleteFormat(&termRow{}))
}

func autocompleteComputeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 2 {
		return common.AutocompleteSequenceFile(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func compute(cmd *cobra.Command, args []string) error {
	n, err := validate.Int64Arg("N", args[0])
	if err != nil {
		return err
	}
	count, err := validate.CountArg("COUNT", args[1])
	if err != nil {
		return err
	}

	seq := bbp.ComputeSequence(n, count)
	logrus.Debugf("Computed %d terms for position %d", len(seq), n)

	if err := printSequence(cmd.OutOrStdout(), computeFormat, seq); err != nil {
		return err
	}
	return seqfile.Write(args[2], seq)
}

func sequenceRows(seq bbp.Sequence) []termRow {
	rows := make([]termRow, len(seq))
	for i, t := range seq {
		rows[i] = termRow{
			Index: i,
			K:     i / 4,
			J:     bbp.SeriesConstants[i%4],
			Value: t,
			Term:  bbp.FormatTerm(t),
		}
	}
	return rows
}

func printSequence(w io.Writer, format string, seq bbp.Sequence) error {
	switch {
	case format == "":
		_, err := io.WriteString(w, seq.String()+"\n")
		return err
	case report.IsJSON(format):
		b, err := seqfile.Marshal(seq)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	}

	rpt := report.New(w, "bbpterms")
	defer rpt.Flush()

	rpt, err := rpt.Parse(report.OriginUser, format)
	if err != nil {
		return err
	}
	if rpt.RenderHeaders {
		if err := rpt.Execute(report.Headers(termRow{}, nil)); err != nil {
			return err
		}
	}
	return rpt.Execute(sequenceRows(seq))
}
