package replicate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repokit/internal/execshell"
)

const (
	commandUseConstant                     = "folder-copy <repo-path> <source-folder> <destination-path> <destination-name>"
	commandShortDescriptionConstant        = "Copy a folder inside a repository and commit the result"
	commandLongDescriptionConstant         = "folder-copy duplicates a folder within a Git repository, stages the copy, creates a commit, and optionally pushes the branch."
	commandExecutionErrorTemplateConstant  = "folder copy failed: %w"
	expectedArgumentCountConstant          = 4
	repositoryPathArgumentIndexConstant    = 0
	sourceFolderArgumentIndexConstant      = 1
	destinationParentArgumentIndexConstant = 2
	destinationNameArgumentIndexConstant   = 3
	flagPushNameConstant                   = "push"
	flagPushDescriptionConstant            = "Push the commit to the configured remote"
	flagRemoteNameConstant                 = "remote"
	flagRemoteDescriptionConstant          = "Name of the remote to push to"
	flagBranchNameConstant                 = "branch"
	flagBranchDescriptionConstant          = "Name of the branch to push"
	flagAuthorNameConstant                 = "author-name"
	flagAuthorNameDescriptionConstant      = "Author name recorded on the commit"
	flagAuthorEmailConstant                = "author-email"
	flagAuthorEmailDescriptionConstant     = "Author email recorded on the commit"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for folder replication.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Executor              CommandExecutor
	WorkspaceRoot         string
}

// Build constructs the folder-copy command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(expectedArgumentCountConstant),
		RunE:  builder.run,
	}

	defaults := builder.resolveConfiguration()
	command.Flags().Bool(flagPushNameConstant, defaults.Push, flagPushDescriptionConstant)
	command.Flags().String(flagRemoteNameConstant, defaults.RemoteName, flagRemoteDescriptionConstant)
	command.Flags().String(flagBranchNameConstant, defaults.BranchName, flagBranchDescriptionConstant)
	command.Flags().String(flagAuthorNameConstant, defaults.CommitAuthorName, flagAuthorNameDescriptionConstant)
	command.Flags().String(flagAuthorEmailConstant, defaults.CommitAuthorEmail, flagAuthorEmailDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.buildOptions(command, arguments)

	logger := builder.resolveLogger()
	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(logger, executor)
	if serviceError != nil {
		return serviceError
	}

	if replicationError := service.Replicate(command.Context(), options); replicationError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, replicationError)
	}

	return nil
}

func (builder *CommandBuilder) buildOptions(command *cobra.Command, arguments []string) Options {
	configuration := builder.resolveConfiguration()

	pushValue := configuration.Push
	if command.Flags().Changed(flagPushNameConstant) {
		pushValue, _ = command.Flags().GetBool(flagPushNameConstant)
	}
	remoteValue := flagOrFallback(command, flagRemoteNameConstant, configuration.RemoteName)
	branchValue := flagOrFallback(command, flagBranchNameConstant, configuration.BranchName)
	authorNameValue := flagOrFallback(command, flagAuthorNameConstant, configuration.CommitAuthorName)
	authorEmailValue := flagOrFallback(command, flagAuthorEmailConstant, configuration.CommitAuthorEmail)

	return Options{
		RepositoryPath:    arguments[repositoryPathArgumentIndexConstant],
		SourceFolder:      arguments[sourceFolderArgumentIndexConstant],
		DestinationParent: arguments[destinationParentArgumentIndexConstant],
		DestinationName:   arguments[destinationNameArgumentIndexConstant],
		WorkspaceRoot:     builder.WorkspaceRoot,
		Push:              pushValue,
		RemoteName:        remoteValue,
		BranchName:        branchValue,
		CommitAuthorName:  authorNameValue,
		CommitAuthorEmail: authorEmailValue,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (CommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}

	return shellExecutor, nil
}

func flagOrFallback(command *cobra.Command, flagName string, fallback string) string {
	if !command.Flags().Changed(flagName) {
		return fallback
	}
	flagValue, _ := command.Flags().GetString(flagName)
	trimmedValue := strings.TrimSpace(flagValue)
	if len(trimmedValue) == 0 {
		return fallback
	}
	return trimmedValue
}
