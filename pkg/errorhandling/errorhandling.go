package errorhandling

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// JoinErrors converts the error slice into a single human-readable error.
func JoinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	// `multierror` appends new lines which we need to remove to prevent
	// blank lines when printing the error.
	var multiE *multierror.Error
	multiE = multierror.Append(multiE, errs...)
	return errors.New(strings.TrimSpace(multiE.ErrorOrNil().Error()))
}

// LimitErrors keeps the first limit errors and, when more were given, adds
// one error counting the ones left out.
func LimitErrors(errs []error, limit int) []error {
	if limit < 0 || len(errs) <= limit {
		return errs
	}
	limited := make([]error, 0, limit+1)
	limited = append(limited, errs[:limit]...)
	return append(limited, errors.Errorf("and %d more", len(errs)-limit))
}

// CloseQuiet closes a file and logs any error. Should only be used within
// a defer.
func CloseQuiet(f *os.File) {
	if err := f.Close(); err != nil {
		logrus.Errorf("Unable to close file %s: %q", f.Name(), err)
	}
}
