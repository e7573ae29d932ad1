package fsa

import _ "embed"

// Version is the release of the module, kept in the VERSION file.
//
//go:embed VERSION
var Version string
