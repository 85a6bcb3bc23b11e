// Package version holds the rng-rename release version.
package version

// Version is the semantic version of this build.
const Version = "0.1.0"
