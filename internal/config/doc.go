// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (a .env file is loaded into the environment by
//     the entry point beforehand)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
