// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Catalog is the version of the embedded tool catalog
	Catalog = "1.0.0"

	// API is the version of the gRPC and HTTP surface
	API = "v1"
)

// Build information, set via -ldflags at build time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "api":
		return API
	default:
		return Platform
	}
}

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("meinRECHENWERK %s (catalog %s, api %s, commit %s, built %s)",
		Platform, Catalog, API, Commit, BuildDate)
}
