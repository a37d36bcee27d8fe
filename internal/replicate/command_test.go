package replicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/repokit/internal/replicate"
)

const (
	pushFlagArgumentConstant        = "--push"
	remoteFlagArgumentConstant      = "--remote"
	customRemoteNameConstant        = "upstream"
	branchFlagArgumentConstant      = "--branch"
	customBranchNameConstant        = "release"
	insufficientArgumentConstant    = "only-one-argument"
	configuredAuthorNameConstant    = "configured-author"
	configuredAuthorEmailConstant   = "configured@example.com"
	recordedPushArgumentIndexFirst  = 1
	recordedPushArgumentIndexSecond = 2
)

func TestFolderCopyCommandRejectsWrongArgumentCount(testInstance *testing.T) {
	builder := &replicate.CommandBuilder{LoggerProvider: func() *zap.Logger { return zap.NewNop() }}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{insufficientArgumentConstant})
	require.Error(testInstance, command.Execute())
}

func TestFolderCopyCommandAppliesFlagsAndConfiguration(testInstance *testing.T) {
	repositoryRoot := createRepositoryFixture(testInstance)
	gitExecutor := &fakeGitExecutor{}

	builder := &replicate.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		ConfigurationProvider: func() replicate.CommandConfiguration {
			configuration := replicate.DefaultCommandConfiguration()
			configuration.CommitAuthorName = configuredAuthorNameConstant
			configuration.CommitAuthorEmail = configuredAuthorEmailConstant
			return configuration
		},
		Executor: gitExecutor,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{
		repositoryRoot,
		sourceFolderNameConstant,
		destinationParentNameConstant,
		destinationFolderNameConstant,
		pushFlagArgumentConstant,
		remoteFlagArgumentConstant, customRemoteNameConstant,
		branchFlagArgumentConstant, customBranchNameConstant,
	})
	require.NoError(testInstance, command.Execute())

	require.Len(testInstance, gitExecutor.recordedCommands, expectedCommandCountWithPushConstant)
	require.Equal(testInstance, []string{recordedConfigSubcommandConstant, "user.name", configuredAuthorNameConstant}, gitExecutor.recordedCommands[0].arguments)
	require.Equal(testInstance, []string{recordedConfigSubcommandConstant, "user.email", configuredAuthorEmailConstant}, gitExecutor.recordedCommands[1].arguments)

	pushCommand := gitExecutor.recordedCommands[len(gitExecutor.recordedCommands)-1]
	require.Equal(testInstance, recordedPushSubcommandConstant, pushCommand.arguments[0])
	require.Equal(testInstance, customRemoteNameConstant, pushCommand.arguments[recordedPushArgumentIndexFirst])
	require.Equal(testInstance, customBranchNameConstant, pushCommand.arguments[recordedPushArgumentIndexSecond])
}

func TestFolderCopyCommandUsesConfiguredDefaultsWithoutFlags(testInstance *testing.T) {
	repositoryRoot := createRepositoryFixture(testInstance)
	gitExecutor := &fakeGitExecutor{}

	builder := &replicate.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
		Executor:       gitExecutor,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{
		repositoryRoot,
		sourceFolderNameConstant,
		destinationParentNameConstant,
		destinationFolderNameConstant,
	})
	require.NoError(testInstance, command.Execute())

	require.Len(testInstance, gitExecutor.recordedCommands, expectedCommandCountNoPushConstant)
	require.Equal(testInstance, []string{recordedConfigSubcommandConstant, "user.name", testAuthorNameConstant}, gitExecutor.recordedCommands[0].arguments)
}
