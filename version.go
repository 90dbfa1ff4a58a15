// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"github.com/maloquacious/semver"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

// Version returns this module's semantic version, printed by the
// version CLI subcommand. Parse does not add it to its log lines.
func Version() semver.Version {
	return version
}
