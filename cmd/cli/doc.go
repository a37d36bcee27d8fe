// Package cli wires the repokit command hierarchy, configuration loading,
// and logging into a single application entrypoint.
package cli
