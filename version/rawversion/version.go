package rawversion

// RawVersion is the raw version string.
//
// This indirection keeps the semver package out of callers that only need
// the string.
const RawVersion = "1.2.0"
