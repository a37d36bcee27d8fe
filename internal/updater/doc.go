// Package updater applies key/value pairs from spreadsheets or CSV files to
// YAML configuration files while preserving comments and formatting of
// untouched entries. Files are processed independently; a failure on one
// target is reported and the remaining targets are still processed.
package updater
