package replicate

import "strings"

const (
	configurationPushKeyConstant              = "push"
	configurationRemoteKeyConstant            = "remote"
	configurationBranchKeyConstant            = "branch"
	configurationCommitAuthorNameKeyConstant  = "commit_author_name"
	configurationCommitAuthorEmailKeyConstant = "commit_author_email"
	defaultRemoteNameConstant                 = "origin"
	defaultBranchNameConstant                 = "main"
	defaultCommitAuthorNameConstant           = "automation-bot"
	defaultCommitAuthorEmailConstant          = "bot@example.com"
)

// CommandConfiguration captures configuration values for the folder copy command.
type CommandConfiguration struct {
	Push              bool   `mapstructure:"push"`
	RemoteName        string `mapstructure:"remote"`
	BranchName        string `mapstructure:"branch"`
	CommitAuthorName  string `mapstructure:"commit_author_name"`
	CommitAuthorEmail string `mapstructure:"commit_author_email"`
}

// DefaultCommandConfiguration provides baseline configuration values for folder copy.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Push:              false,
		RemoteName:        defaultRemoteNameConstant,
		BranchName:        defaultBranchNameConstant,
		CommitAuthorName:  defaultCommitAuthorNameConstant,
		CommitAuthorEmail: defaultCommitAuthorEmailConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the folder copy command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationPushKeyConstant:              defaults.Push,
		rootKey + "." + configurationRemoteKeyConstant:            defaults.RemoteName,
		rootKey + "." + configurationBranchKeyConstant:            defaults.BranchName,
		rootKey + "." + configurationCommitAuthorNameKeyConstant:  defaults.CommitAuthorName,
		rootKey + "." + configurationCommitAuthorEmailKeyConstant: defaults.CommitAuthorEmail,
	}
}

// sanitize trims configuration values and restores defaults for blank entries.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	defaults := DefaultCommandConfiguration()

	sanitized.RemoteName = fallbackWhenBlank(configuration.RemoteName, defaults.RemoteName)
	sanitized.BranchName = fallbackWhenBlank(configuration.BranchName, defaults.BranchName)
	sanitized.CommitAuthorName = fallbackWhenBlank(configuration.CommitAuthorName, defaults.CommitAuthorName)
	sanitized.CommitAuthorEmail = fallbackWhenBlank(configuration.CommitAuthorEmail, defaults.CommitAuthorEmail)

	return sanitized
}

func fallbackWhenBlank(candidate string, fallback string) string {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) == 0 {
		return fallback
	}
	return trimmed
}
