package main

import (
	"io"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/containers/bbpterms/pkg/seqfile"
	"github.com/containers/common/pkg/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	sumDescription = `Sum the terms stored in a sequence file.

  Prints the total of each of the four subseries, their weighted
  combination 4*t1 - 2*t4 - t5 - t6 and the hexadecimal digit it yields.
  With --block, consecutive quadruples are first summed in blocks; the
  reduced sequence can be written with --output.`
	sumCommand = &cobra.Command{
		Use:               "sum [options] FILE",
		Args:              validate.ExactArgs("FILE"),
		Short:             "Sum the terms of a sequence file",
		Long:              sumDescription,
		RunE:              sumTerms,
		ValidArgsFunction: common.AutocompleteSequenceFile,
		Example: `bbpterms sum output.json
  bbpterms sum --block 16 --output reduced.json output.json`,
	}

	sumOpts = struct {
		block  int
		output string
		format string
	}{}
)

type sumReport struct {
	Terms      int
	Quadruples int
	Blocks     int
	J1         float64
	J4         float64
	J5         float64
	J6         float64
	Weighted   float64
	Digit      string
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: sumCommand,
	})
	flags := sumCommand.Flags()

	flags.IntVarP(&sumOpts.block, "block", "b", 0, "Sum quadruples in blocks of this size (default block_size)")

	outputFlagName := "output"
	flags.StringVarP(&sumOpts.output, outputFlagName, "o", "", "Write the block-reduced sequence to this file")
	_ = sumCommand.RegisterFlagCompletionFunc(outputFlagName, common.AutocompleteSequenceFile)

	formatFlagName := "format"
	flags.StringVarP(&sumOpts.format, formatFlagName, "f", "", "Change the output format to JSON or a Go template")
	_ = sumCommand.RegisterFlagCompletionFunc(formatFlagName, common.AutocompleteFormat(&sumReport{}))
}

func sumTerms(cmd *cobra.Command, args []string) error {
	seq, err := seqfile.Read(args[0])
	if err != nil {
		return err
	}

	reduced := seq
	if cmd.Flag("block").Changed || cmd.Flag("output").Changed {
		block := sumOpts.block
		if !cmd.Flag("block").Changed {
			block = registry.Config().Engine.BlockSize
		}
		reduced, err = bbp.Reduce(seq, block)
		if err != nil {
			return errors.Wrapf(err, "reducing %q", args[0])
		}
		if sumOpts.output != "" {
			if err := seqfile.Write(sumOpts.output, reduced); err != nil {
				return err
			}
		}
	}

	channels, err := bbp.ChannelSums(reduced)
	if err != nil {
		return errors.Wrapf(err, "summing %q", args[0])
	}
	weighted := channels.Weighted()
	rep := sumReport{
		Terms:      len(seq),
		Quadruples: seq.Quadruples(),
		Blocks:     reduced.Quadruples(),
		J1:         channels[0],
		J4:         channels[1],
		J5:         channels[2],
		J6:         channels[3],
		Weighted:   weighted,
		Digit:      string(bbp.HexDigit(weighted)),
	}
	return printSum(cmd.OutOrStdout(), sumOpts.format, &rep)
}

func printSum(w io.Writer, format string, rep *sumReport) error {
	if report.IsJSON(format) {
		return registry.WriteJSON(w, rep)
	}

	rpt := report.New(w, "sum")
	defer rpt.Flush()

	var err error
	if format == "" {
		rpt, err = rpt.Parse(report.OriginPodman, sumTemplate)
	} else {
		rpt, err = rpt.Parse(report.OriginUnknown, format)
	}
	if err != nil {
		return err
	}
	return rpt.Execute(rep)
}

const sumTemplate = `Terms:\t{{.Terms}}
Quadruples:\t{{.Quadruples}}
Blocks:\t{{.Blocks}}
Sum j=1:\t{{.J1}}
Sum j=4:\t{{.J4}}
Sum j=5:\t{{.J5}}
Sum j=6:\t{{.J6}}
Weighted:\t{{.Weighted}}
Digit:\t{{.Digit}}
`
