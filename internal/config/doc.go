// Package config provides configuration loading, merging, and validation
// facilities for the wearable and companion binaries.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetWearableConfig] and [GetCompanionConfig],
// which add role-specific defaults and validation on top of
// [GetStructuredConfig].
package config
