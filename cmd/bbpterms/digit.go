package main

import (
	"fmt"
	"io"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/containers/bbpterms/pkg/seqfile"
	"github.com/containers/common/pkg/completion"
	"github.com/containers/common/pkg/report"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	digitDescription = `Extract the hexadecimal digit of pi that follows position N.

  The terms for position N are combined as 4*t1 - 2*t4 - t5 - t6 and the
  first hexadecimal digit of the fractional part of the sum is printed.`
	digitCommand = &cobra.Command{
		Use:               "digit [options] N",
		Args:              validate.ExactArgs("N"),
		Short:             "Extract a hexadecimal digit of pi",
		Long:              digitDescription,
		RunE:              extractDigit,
		ValidArgsFunction: completion.AutocompleteNone,
		Example: `bbpterms digit 0
  bbpterms digit --count 120 100
  bbpterms digit --from output.json 1600`,
	}

	digitOpts = struct {
		count  int
		from   string
		format string
	}{}
)

type digitReport struct {
	Position int64
	Count    int
	Sum      float64
	Digit    string
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: digitCommand,
	})
	flags := digitCommand.Flags()

	flags.IntVarP(&digitOpts.count, "count", "c", 0, "Number of term indexes to sum (default N + extra_terms)")

	fromFlagName := "from"
	flags.StringVar(&digitOpts.from, fromFlagName, "", "Read the terms from a sequence file instead of computing them")
	_ = digitCommand.RegisterFlagCompletionFunc(fromFlagName, common.AutocompleteSequenceFile)

	formatFlagName := "format"
	flags.StringVarP(&digitOpts.format, formatFlagName, "f", "", "Change the output format to JSON or a Go template")
	_ = digitCommand.RegisterFlagCompletionFunc(formatFlagName, common.AutocompleteFormat(&digitReport{}))
}

func extractDigit(cmd *cobra.Command, args []string) error {
	n, err := validate.Int64Arg("N", args[0])
	if err != nil {
		return err
	}

	var seq bbp.Sequence
	if cmd.Flag("from").Changed {
		if cmd.Flag("count").Changed {
			return errors.New("--count and --from cannot be used together")
		}
		seq, err = seqfile.Read(digitOpts.from)
		if err != nil {
			return err
		}
	} else {
		count := digitOpts.count
		if !cmd.Flag("count").Changed {
			count = int(n) + registry.Config().Engine.ExtraTerms
		}
		if count < 0 {
			return errors.Errorf("count must not be negative, got %d", count)
		}
		seq = bbp.ComputeSequence(n, count)
	}

	sum, err := bbp.WeightedSum(seq)
	if err != nil {
		return err
	}
	rep := digitReport{
		Position: n,
		Count:    seq.Quadruples(),
		Sum:      sum,
		Digit:    string(bbp.HexDigit(sum)),
	}
	logrus.Debugf("Weighted sum of %d term indexes at position %d is %v", rep.Count, n, sum)
	return printDigit(cmd.OutOrStdout(), digitOpts.format, &rep)
}

func printDigit(w io.Writer, format string, rep *digitReport) error {
	switch {
	case format == "":
		_, err := fmt.Fprintln(w, rep.Digit)
		return err
	case report.IsJSON(format):
		return registry.WriteJSON(w, rep)
	}

	rpt := report.New(w, "digit")
	defer rpt.Flush()

	// Use OriginUnknown so it does not add an extra range since it
	// will only be called for a single element and not a slice.
	rpt, err := rpt.Parse(report.OriginUnknown, format)
	if err != nil {
		return err
	}
	return rpt.Execute(rep)
}
