package replicate

import "fmt"

const (
	rootNotFoundErrorTemplateConstant      = "repository root is not a directory: %s"
	notARepositoryErrorTemplateConstant    = "no version control metadata found in: %s"
	sourceNotFoundErrorTemplateConstant    = "source folder does not exist: %s"
	destinationExistsErrorTemplateConstant = "destination already exists: %s"
)

// RootNotFoundError reports a repository root path that is not a directory.
type RootNotFoundError struct {
	Path string
}

// Error describes the missing repository root.
func (rootError RootNotFoundError) Error() string {
	return fmt.Sprintf(rootNotFoundErrorTemplateConstant, rootError.Path)
}

// NotARepositoryError reports a root directory without version control metadata.
type NotARepositoryError struct {
	Path string
}

// Error describes the missing metadata directory.
func (repositoryError NotARepositoryError) Error() string {
	return fmt.Sprintf(notARepositoryErrorTemplateConstant, repositoryError.Path)
}

// SourceNotFoundError reports a source path that is not an existing directory.
type SourceNotFoundError struct {
	Path string
}

// Error describes the missing source folder.
func (sourceError SourceNotFoundError) Error() string {
	return fmt.Sprintf(sourceNotFoundErrorTemplateConstant, sourceError.Path)
}

// DestinationExistsError reports a destination path that already exists.
type DestinationExistsError struct {
	Path string
}

// Error describes the conflicting destination.
func (destinationError DestinationExistsError) Error() string {
	return fmt.Sprintf(destinationExistsErrorTemplateConstant, destinationError.Path)
}
