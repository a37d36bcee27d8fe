package updater

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/repokit/internal/report"
	pathutils "github.com/temirov/repokit/internal/utils/path"
)

const (
	commandUseConstant                    = "config-update"
	commandShortDescriptionConstant       = "Apply spreadsheet or CSV key/value pairs to YAML files"
	commandLongDescriptionConstant        = "config-update reads key/value rows from a CSV file or xlsx workbook and writes them into one or more YAML configuration files, preserving comments and formatting of untouched entries."
	unexpectedArgumentsMessageConstant    = "config-update does not accept positional arguments"
	missingInputMessageConstant           = "an input file must be supplied via --input or configuration"
	missingTargetsMessageConstant         = "at least one target must be supplied via --targets or configuration"
	flagInputNameConstant                 = "input"
	flagInputDescriptionConstant          = "Path to the CSV file or xlsx workbook holding key/value rows"
	flagTargetsNameConstant               = "targets"
	flagTargetsDescriptionConstant        = "File paths, directories, or glob patterns selecting YAML files"
	flagKeyColumnNameConstant             = "key-col"
	flagKeyColumnDescriptionConstant      = "Header name of the column holding keys"
	flagValueColumnNameConstant           = "value-col"
	flagValueColumnDescriptionConstant    = "Header name of the column holding values"
	flagSheetNameConstant                 = "sheet"
	flagSheetDescriptionConstant          = "Workbook sheet to read (defaults to the first sheet)"
	flagNoAddMissingNameConstant          = "no-add-missing"
	flagNoAddMissingDescriptionConstant   = "Only update keys that already exist in a target file"
	flagFailNoChangesNameConstant         = "fail-if-no-changes"
	flagFailNoChangesDescriptionConstant  = "Exit with a dedicated status when no file changed"
)

var (
	errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)
	errMissingInput        = errors.New(missingInputMessageConstant)
	errMissingTargets      = errors.New(missingTargetsMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for configuration updates.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Reporter              report.Reporter
}

// Build constructs the config-update command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	defaults := builder.resolveConfiguration()
	command.Flags().String(flagInputNameConstant, defaults.InputPath, flagInputDescriptionConstant)
	command.Flags().StringSlice(flagTargetsNameConstant, defaults.Targets, flagTargetsDescriptionConstant)
	command.Flags().String(flagKeyColumnNameConstant, defaults.KeyColumn, flagKeyColumnDescriptionConstant)
	command.Flags().String(flagValueColumnNameConstant, defaults.ValueColumn, flagValueColumnDescriptionConstant)
	command.Flags().String(flagSheetNameConstant, defaults.SheetName, flagSheetDescriptionConstant)
	command.Flags().Bool(flagNoAddMissingNameConstant, !defaults.AddMissing, flagNoAddMissingDescriptionConstant)
	command.Flags().Bool(flagFailNoChangesNameConstant, defaults.FailIfNoChanges, flagFailNoChangesDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options, optionsError := builder.buildOptions(command)
	if optionsError != nil {
		return optionsError
	}

	service, serviceError := NewService(builder.resolveLogger(), builder.resolveReporter(command))
	if serviceError != nil {
		return serviceError
	}

	return service.Update(options)
}

// buildOptions merges flag values over the configured defaults. Flag defaults
// are captured before the configuration file loads, so only explicitly changed
// flags override the configuration.
func (builder *CommandBuilder) buildOptions(command *cobra.Command) (Options, error) {
	configuration := builder.resolveConfiguration()

	inputValue := configuration.InputPath
	if command.Flags().Changed(flagInputNameConstant) {
		inputValue, _ = command.Flags().GetString(flagInputNameConstant)
	}
	trimmedInput := strings.TrimSpace(inputValue)
	if len(trimmedInput) == 0 {
		return Options{}, errMissingInput
	}

	targetValues := configuration.Targets
	if command.Flags().Changed(flagTargetsNameConstant) {
		targetValues, _ = command.Flags().GetStringSlice(flagTargetsNameConstant)
	}
	sanitizedTargets := pathutils.NewPathSanitizer().Sanitize(targetValues)
	if len(sanitizedTargets) == 0 {
		return Options{}, errMissingTargets
	}

	keyColumnValue := stringFlagOrConfigured(command, flagKeyColumnNameConstant, configuration.KeyColumn)
	valueColumnValue := stringFlagOrConfigured(command, flagValueColumnNameConstant, configuration.ValueColumn)
	sheetValue := stringFlagOrConfigured(command, flagSheetNameConstant, configuration.SheetName)

	addMissingValue := configuration.AddMissing
	if command.Flags().Changed(flagNoAddMissingNameConstant) {
		noAddMissingValue, _ := command.Flags().GetBool(flagNoAddMissingNameConstant)
		addMissingValue = !noAddMissingValue
	}
	failIfNoChangesValue := configuration.FailIfNoChanges
	if command.Flags().Changed(flagFailNoChangesNameConstant) {
		failIfNoChangesValue, _ = command.Flags().GetBool(flagFailNoChangesNameConstant)
	}

	options := Options{
		InputPath:        trimmedInput,
		TargetSpecifiers: sanitizedTargets,
		KeyColumn:        fallbackWhenBlank(keyColumnValue, defaultKeyColumnNameConstant),
		ValueColumn:      fallbackWhenBlank(valueColumnValue, defaultValueColumnNameConstant),
		SheetName:        strings.TrimSpace(sheetValue),
		AddMissing:       addMissingValue,
		FailIfNoChanges:  failIfNoChangesValue,
	}
	return options, nil
}

func stringFlagOrConfigured(command *cobra.Command, flagName string, configuredValue string) string {
	if !command.Flags().Changed(flagName) {
		return configuredValue
	}
	flagValue, _ := command.Flags().GetString(flagName)
	return flagValue
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
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

func (builder *CommandBuilder) resolveReporter(command *cobra.Command) report.Reporter {
	if builder.Reporter != nil {
		return builder.Reporter
	}
	return report.NewWriterReporter(command.OutOrStdout())
}

func fallbackWhenBlank(candidates ...string) string {
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) > 0 {
			return trimmed
		}
	}
	return ""
}
