// Package plume holds shared metadata for the plume CLI.
package plume

// Version is the current plume release.
var Version = "0.3.0"
