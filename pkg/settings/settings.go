// Package settings provides build metadata and per-run parameters shared by
// the lsx CLI packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "lsx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options for a single invocation of the lister that are
// decided before the command body executes.
type Run struct {
	MinLogLevel int8
	NoColor     bool
}

// NewCliParams returns Run parameters with CLI defaults: info-level logging
// and color enabled.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
	}
}
