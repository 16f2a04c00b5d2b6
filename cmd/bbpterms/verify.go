package main

import (
	"fmt"

	"github.com/containers/bbpterms/cmd/bbpterms/common"
	"github.com/containers/bbpterms/cmd/bbpterms/registry"
	"github.com/containers/bbpterms/cmd/bbpterms/validate"
	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/containers/bbpterms/pkg/errorhandling"
	"github.com/containers/bbpterms/pkg/seqfile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxReportedMismatches bounds the mismatches listed in the error.
const maxReportedMismatches = 10

var (
	verifyDescription = `Verify the terms stored in a sequence file.

  The file is compared term by term with the sequence computed for
  position N, or with the sequence stored in the --against file. Any term
  that differs by the threshold or more fails the verification.`
	verifyCommand = &cobra.Command{
		Use:               "verify [options] FILE N",
		Args:              validate.ExactArgs("FILE", "N"),
		Short:             "Verify a sequence file",
		Long:              verifyDescription,
		RunE:              verify,
		ValidArgsFunction: autocompleteVerifyArgs,
		Example: `bbpterms verify output.json 1600
  bbpterms verify --threshold 1e-12 output.json 1600
  bbpterms verify --against reference.json output.json 1600`,
	}

	verifyOpts = struct {
		threshold float64
		against   string
	}{}
)

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: verifyCommand,
	})
	flags := verifyCommand.Flags()

	flags.Float64VarP(&verifyOpts.threshold, "threshold", "t", bbp.DefaultThreshold, "Largest tolerated difference between two terms, exclusive")

	againstFlagName := "against"
	flags.StringVar(&verifyOpts.against, againstFlagName, "", "Compare with the terms of this sequence file instead of computing them")
	_ = verifyCommand.RegisterFlagCompletionFunc(againstFlagName, common.AutocompleteSequenceFile)
}

func autocompleteVerifyArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return common.AutocompleteSequenceFile(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func verify(cmd *cobra.Command, args []string) error {
	got, err := seqfile.Read(args[0])
	if err != nil {
		return err
	}
	n, err := validate.Int64Arg("N", args[1])
	if err != nil {
		return err
	}

	threshold := verifyOpts.threshold
	if !cmd.Flag("threshold").Changed {
		threshold = registry.Config().Engine.Threshold
	}
	if threshold <= 0 {
		return errors.Errorf("threshold must be positive, got %v", threshold)
	}

	var want bbp.Sequence
	if verifyOpts.against != "" {
		want, err = seqfile.Read(verifyOpts.against)
		if err != nil {
			return err
		}
	} else {
		if err := got.Validate(); err != nil {
			return errors.Wrapf(err, "verifying %q", args[0])
		}
		want = bbp.ComputeSequence(n, got.Quadruples())
	}

	c, err := bbp.Compare(got, want, threshold)
	if err != nil {
		return errors.Wrapf(err, "verifying %q", args[0])
	}
	logrus.Debugf("Compared %d terms of %q, max delta %v", c.Terms, args[0], c.MaxDelta)

	if !c.Passed() {
		errs := make([]error, 0, len(c.Mismatches))
		for _, m := range c.Mismatches {
			errs = append(errs, m)
		}
		return errors.Wrapf(errorhandling.JoinErrors(errorhandling.LimitErrors(errs, maxReportedMismatches)),
			"%d of %d terms differ by %v or more", len(c.Mismatches), c.Terms, c.Threshold)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Passed %d terms, max delta %s\n", c.Terms, bbp.FormatTerm(c.MaxDelta))
	return err
}
