package updater

import (
	"fmt"
	"strings"
)

const (
	updateFailuresExitCodeConstant = 1
	invalidInputExitCodeConstant   = 2
	noChangesExitCodeConstant      = 3

	inputNotFoundErrorTemplateConstant  = "input file not found or unreadable: %s"
	tableParseErrorTemplateConstant     = "unable to build key/value table from %s: %s"
	noTargetsErrorTemplateConstant      = "no configuration files resolved from specifiers: %s"
	updateFailuresErrorTemplateConstant = "%d file(s) failed to update"
	noChangesErrorMessageConstant       = "no files changed"
	specifierSeparatorConstant          = ", "
)

// InputNotFoundError reports a missing or unreadable key/value input file.
type InputNotFoundError struct {
	Path string
}

// Error describes the unusable input file.
func (inputError InputNotFoundError) Error() string {
	return fmt.Sprintf(inputNotFoundErrorTemplateConstant, inputError.Path)
}

// ExitCode reports the process exit status for an unusable input file.
func (inputError InputNotFoundError) ExitCode() int {
	return invalidInputExitCodeConstant
}

// TableParseError reports an input file whose contents cannot become a key/value table.
type TableParseError struct {
	Path   string
	Reason string
}

// Error describes the parse failure.
func (parseError TableParseError) Error() string {
	return fmt.Sprintf(tableParseErrorTemplateConstant, parseError.Path, parseError.Reason)
}

// ExitCode reports the process exit status for an unusable input table.
func (parseError TableParseError) ExitCode() int {
	return invalidInputExitCodeConstant
}

// NoTargetsError reports target specifiers that matched no configuration files.
type NoTargetsError struct {
	Specifiers []string
}

// Error lists the specifiers that resolved to nothing.
func (targetsError NoTargetsError) Error() string {
	return fmt.Sprintf(noTargetsErrorTemplateConstant, strings.Join(targetsError.Specifiers, specifierSeparatorConstant))
}

// ExitCode reports the process exit status for an empty target set.
func (targetsError NoTargetsError) ExitCode() int {
	return invalidInputExitCodeConstant
}

// UpdateFailuresError reports how many target files failed to update.
type UpdateFailuresError struct {
	FailureCount int
}

// Error summarizes the per-file failures.
func (failuresError UpdateFailuresError) Error() string {
	return fmt.Sprintf(updateFailuresErrorTemplateConstant, failuresError.FailureCount)
}

// ExitCode reports the process exit status when per-file updates failed.
func (failuresError UpdateFailuresError) ExitCode() int {
	return updateFailuresExitCodeConstant
}

// NoChangesError reports a run that changed nothing while changes were required.
type NoChangesError struct{}

// Error names the unmet change requirement.
func (changesError NoChangesError) Error() string {
	return noChangesErrorMessageConstant
}

// ExitCode reports the process exit status for a run with zero changes.
func (changesError NoChangesError) ExitCode() int {
	return noChangesExitCodeConstant
}
