// Package version carries the CLI version string and optional build
// metadata stamped in by the release process.
package version

import "github.com/fatih/color"

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version, each field rendered in its own color.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit and BuildDate stay empty in dev builds; release builds set
	// them with -ldflags -X.
	GitCommit = ""
	BuildDate = ""
)
