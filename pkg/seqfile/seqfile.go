// Package seqfile stores term sequences as JSON arrays of numbers.
package seqfile

import (
	"os"

	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/containers/bbpterms/pkg/errorhandling"
	"github.com/containers/storage/pkg/ioutils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultFilePerm is the mode of written sequence files.
const DefaultFilePerm os.FileMode = 0o644

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes the sequence as a JSON array. An empty sequence encodes
// as [] rather than null.
func Marshal(seq bbp.Sequence) ([]byte, error) {
	if seq == nil {
		seq = bbp.Sequence{}
	}
	return json.Marshal(seq)
}

// Write replaces the file at path with the JSON encoding of seq. The file
// is written to a temporary sibling and renamed into place.
func Write(path string, seq bbp.Sequence) error {
	b, err := Marshal(seq)
	if err != nil {
		return errors.Wrapf(err, "encoding %d terms", len(seq))
	}
	logrus.Debugf("Writing %d terms to %q", len(seq), path)
	if err := ioutils.AtomicWriteFile(path, b, DefaultFilePerm); err != nil {
		return errors.Wrapf(err, "writing sequence file %q", path)
	}
	return nil
}

// Read decodes the JSON array of numbers stored at path.
func Read(path string) (bbp.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sequence file %q", path)
	}
	defer errorhandling.CloseQuiet(f)

	var seq bbp.Sequence
	if err := json.NewDecoder(f).Decode(&seq); err != nil {
		return nil, errors.Wrapf(err, "decoding sequence file %q", path)
	}
	if seq == nil {
		seq = bbp.Sequence{}
	}
	logrus.Debugf("Read %d terms from %q", len(seq), path)
	return seq, nil
}
