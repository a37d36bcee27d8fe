// Package pathutils normalizes and validates filesystem path inputs.
//
// It expands user home shortcuts, sanitizes path lists supplied on the
// command line, and resolves user-provided relative paths while proving they
// stay inside a base directory.
package pathutils
