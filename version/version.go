package version

import (
	"github.com/blang/semver/v4"
	"github.com/containers/bbpterms/version/rawversion"
)

// Version is the version of the build.
var Version = semver.MustParse(rawversion.RawVersion)

// FileFormatVersion is the version of the sequence file layout: a flat
// JSON array of numbers interleaved by series constant.
const FileFormatVersion = 1
