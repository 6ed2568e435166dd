// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package buildinfo

import "fmt"

// Set with -ldflags "-X numcheck/internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("numcheck %s (commit=%s, date=%s)", Version, Commit, Date)
}
