package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/repokit/cmd/cli"
)

const (
	exitErrorTemplateConstant      = "%v\n"
	defaultFailureExitCodeConstant = 1
)

// exitCodeCarrier describes errors that request a specific process exit status.
type exitCodeCarrier interface {
	ExitCode() int
}

// main executes the repokit command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)

	var carrier exitCodeCarrier
	if errors.As(executionError, &carrier) {
		os.Exit(carrier.ExitCode())
	}
	os.Exit(defaultFailureExitCodeConstant)
}
