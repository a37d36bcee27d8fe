// Package replicate copies a directory tree to a new location inside a Git
// repository and commits the result.
//
// Every user-supplied path is resolved against the repository root and proven
// to stay inside it before any filesystem mutation happens. Completed steps
// are not rolled back when a later step fails.
package replicate
