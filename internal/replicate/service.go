package replicate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/repokit/internal/execshell"
	pathutils "github.com/temirov/repokit/internal/utils/path"
)

const (
	gitMetadataDirectoryNameConstant        = ".git"
	gitConfigSubcommandConstant             = "config"
	gitAddSubcommandConstant                = "add"
	gitCommitSubcommandConstant             = "commit"
	gitPushSubcommandConstant               = "push"
	gitCommitMessageFlagConstant            = "-m"
	gitUserNameConfigurationKeyConstant     = "user.name"
	gitUserEmailConfigurationKeyConstant    = "user.email"
	commitMessageTemplateConstant           = "Copy folder %s to %s"
	destinationParentPermissionsConstant    = 0o755
	resolveRepositoryErrorTemplateConstant  = "unable to resolve repository path %s: %w"
	inspectDestinationErrorTemplateConstant = "unable to inspect destination %s: %w"
	createParentErrorTemplateConstant       = "unable to create destination parent %s: %w"
	copyTreeErrorTemplateConstant           = "unable to copy %s: %w"
	relativeDestinationTemplateConstant     = "unable to relativize destination %s: %w"
	replicationCompletedMessageConstant     = "Folder replicated"
	repositoryFieldNameConstant             = "repository"
	sourceFieldNameConstant                 = "source"
	destinationFieldNameConstant            = "destination"
	pushedFieldNameConstant                 = "pushed"
)

// ErrLoggerNotConfigured indicates the service was constructed without a logger.
var ErrLoggerNotConfigured = errors.New("logger not configured")

// ErrExecutorNotConfigured indicates the service was constructed without a git executor.
var ErrExecutorNotConfigured = errors.New("git executor not configured")

// CommandExecutor runs git commands on behalf of the replication service.
type CommandExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Options describes a single folder replication request.
type Options struct {
	RepositoryPath    string
	SourceFolder      string
	DestinationParent string
	DestinationName   string
	WorkspaceRoot     string
	Push              bool
	RemoteName        string
	BranchName        string
	CommitAuthorName  string
	CommitAuthorEmail string
}

// Service copies a folder inside a repository and records the change with git.
type Service struct {
	logger      *zap.Logger
	gitExecutor CommandExecutor
	copier      TreeCopier
	resolver    pathutils.ContainmentResolver
}

// NewService constructs a Service with the supplied logger and git executor.
func NewService(logger *zap.Logger, gitExecutor CommandExecutor) (*Service, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if gitExecutor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Service{
		logger:      logger,
		gitExecutor: gitExecutor,
		copier:      NewTreeCopier(),
		resolver:    pathutils.NewContainmentResolver(),
	}, nil
}

// Replicate validates the request, copies the source folder, and commits the result.
// All repository mutations happen only after every path has been validated.
func (service *Service) Replicate(executionContext context.Context, options Options) error {
	repositoryRoot, rootError := service.resolveRepositoryRoot(options)
	if rootError != nil {
		return rootError
	}

	metadataPath := filepath.Join(repositoryRoot, gitMetadataDirectoryNameConstant)
	if _, metadataError := os.Stat(metadataPath); metadataError != nil {
		return NotARepositoryError{Path: repositoryRoot}
	}

	sourcePath, sourceError := service.resolver.Resolve(repositoryRoot, options.SourceFolder)
	if sourceError != nil {
		return sourceError
	}
	sourceInfo, sourceStatError := os.Stat(sourcePath)
	if sourceStatError != nil || !sourceInfo.IsDir() {
		return SourceNotFoundError{Path: sourcePath}
	}

	destinationParent, parentError := service.resolver.Resolve(repositoryRoot, options.DestinationParent)
	if parentError != nil {
		return parentError
	}
	destinationPath, destinationError := service.resolver.Resolve(destinationParent, options.DestinationName)
	if destinationError != nil {
		return destinationError
	}
	if _, destinationStatError := os.Lstat(destinationPath); destinationStatError == nil {
		return DestinationExistsError{Path: destinationPath}
	} else if !errors.Is(destinationStatError, fs.ErrNotExist) {
		return fmt.Errorf(inspectDestinationErrorTemplateConstant, destinationPath, destinationStatError)
	}

	if mkdirError := os.MkdirAll(destinationParent, destinationParentPermissionsConstant); mkdirError != nil {
		return fmt.Errorf(createParentErrorTemplateConstant, destinationParent, mkdirError)
	}

	if copyError := service.copier.CopyTree(sourcePath, destinationPath); copyError != nil {
		return fmt.Errorf(copyTreeErrorTemplateConstant, sourcePath, copyError)
	}

	relativeDestination, relativeError := filepath.Rel(repositoryRoot, destinationPath)
	if relativeError != nil {
		return fmt.Errorf(relativeDestinationTemplateConstant, destinationPath, relativeError)
	}

	if commitError := service.commitReplication(executionContext, repositoryRoot, options, relativeDestination); commitError != nil {
		return commitError
	}

	if options.Push {
		if pushError := service.pushReplication(executionContext, repositoryRoot, options); pushError != nil {
			return pushError
		}
	}

	service.logger.Info(replicationCompletedMessageConstant,
		zap.String(repositoryFieldNameConstant, repositoryRoot),
		zap.String(sourceFieldNameConstant, options.SourceFolder),
		zap.String(destinationFieldNameConstant, relativeDestination),
		zap.Bool(pushedFieldNameConstant, options.Push),
	)
	return nil
}

// resolveRepositoryRoot turns the requested repository path into an absolute directory.
// Relative paths resolve against the workspace root when one is supplied.
func (service *Service) resolveRepositoryRoot(options Options) (string, error) {
	repositoryPath := strings.TrimSpace(options.RepositoryPath)
	if !filepath.IsAbs(repositoryPath) {
		workspaceRoot := strings.TrimSpace(options.WorkspaceRoot)
		if len(workspaceRoot) > 0 {
			repositoryPath = filepath.Join(workspaceRoot, repositoryPath)
		} else {
			absolutePath, absoluteError := filepath.Abs(repositoryPath)
			if absoluteError != nil {
				return "", fmt.Errorf(resolveRepositoryErrorTemplateConstant, repositoryPath, absoluteError)
			}
			repositoryPath = absolutePath
		}
	}
	repositoryPath = filepath.Clean(repositoryPath)

	rootInfo, rootStatError := os.Stat(repositoryPath)
	if rootStatError != nil || !rootInfo.IsDir() {
		return "", RootNotFoundError{Path: repositoryPath}
	}
	return repositoryPath, nil
}

func (service *Service) commitReplication(executionContext context.Context, repositoryRoot string, options Options, relativeDestination string) error {
	configurationArguments := [][]string{
		{gitConfigSubcommandConstant, gitUserNameConfigurationKeyConstant, options.CommitAuthorName},
		{gitConfigSubcommandConstant, gitUserEmailConfigurationKeyConstant, options.CommitAuthorEmail},
	}
	for _, arguments := range configurationArguments {
		if _, configurationError := service.runGit(executionContext, repositoryRoot, arguments); configurationError != nil {
			return configurationError
		}
	}

	if _, addError := service.runGit(executionContext, repositoryRoot, []string{gitAddSubcommandConstant, relativeDestination}); addError != nil {
		return addError
	}

	commitMessage := fmt.Sprintf(commitMessageTemplateConstant, options.SourceFolder, relativeDestination)
	commitArguments := []string{gitCommitSubcommandConstant, gitCommitMessageFlagConstant, commitMessage}
	if _, commitError := service.runGit(executionContext, repositoryRoot, commitArguments); commitError != nil {
		return commitError
	}
	return nil
}

func (service *Service) pushReplication(executionContext context.Context, repositoryRoot string, options Options) error {
	pushArguments := []string{gitPushSubcommandConstant, options.RemoteName, options.BranchName}
	_, pushError := service.runGit(executionContext, repositoryRoot, pushArguments)
	return pushError
}

func (service *Service) runGit(executionContext context.Context, repositoryRoot string, arguments []string) (execshell.ExecutionResult, error) {
	return service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryRoot,
	})
}
