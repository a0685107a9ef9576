// Copyright (c) 2025 The primescan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the primescan binary.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// These variables define the application version per the semantic versioning
// 2.0.0 spec (https://semver.org/).  The pre-release and build metadata may
// be overridden during the build process with:
// '-ldflags "-X github.com/primescan/primescan/internal/version.BuildMetadata=foo"'
var (
	Major         = 1
	Minor         = 0
	Patch         = 0
	PreRelease    = "pre"
	BuildMetadata = ""
)

// normalizeSemString returns the passed string stripped of all characters
// which are not valid according to the semantic versioning guidelines for
// pre-release and build metadata strings.
func normalizeSemString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if preRelease := normalizeSemString(PreRelease); preRelease != "" {
		version += "-" + preRelease
	}

	// Append the commit hash the binary was built from to the build
	// metadata unless it was already overridden at link time.
	build := BuildMetadata
	if build == "" {
		build = vcsCommitID()
	}
	if build = normalizeSemString(build); build != "" {
		version += "+" + build
	}
	return version
}
