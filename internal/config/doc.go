// Package config provides configuration loading, merging, and validation
// facilities for paramgate.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources only fill in values the earlier
// ones left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
