package updater

const (
	configurationInputKeyConstant           = "input"
	configurationTargetsKeyConstant         = "targets"
	configurationKeyColumnKeyConstant       = "key_column"
	configurationValueColumnKeyConstant     = "value_column"
	configurationSheetKeyConstant           = "sheet"
	configurationAddMissingKeyConstant      = "add_missing"
	configurationFailIfNoChangesKeyConstant = "fail_if_no_changes"
	defaultKeyColumnNameConstant            = "key"
	defaultValueColumnNameConstant          = "value"
)

// CommandConfiguration captures configuration values for the config update command.
type CommandConfiguration struct {
	InputPath       string   `mapstructure:"input"`
	Targets         []string `mapstructure:"targets"`
	KeyColumn       string   `mapstructure:"key_column"`
	ValueColumn     string   `mapstructure:"value_column"`
	SheetName       string   `mapstructure:"sheet"`
	AddMissing      bool     `mapstructure:"add_missing"`
	FailIfNoChanges bool     `mapstructure:"fail_if_no_changes"`
}

// DefaultCommandConfiguration provides baseline configuration values for config update.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		KeyColumn:       defaultKeyColumnNameConstant,
		ValueColumn:     defaultValueColumnNameConstant,
		AddMissing:      true,
		FailIfNoChanges: false,
	}
}

// DefaultConfigurationValues produces Viper defaults for the config update command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationInputKeyConstant:           defaults.InputPath,
		rootKey + "." + configurationTargetsKeyConstant:         defaults.Targets,
		rootKey + "." + configurationKeyColumnKeyConstant:       defaults.KeyColumn,
		rootKey + "." + configurationValueColumnKeyConstant:     defaults.ValueColumn,
		rootKey + "." + configurationSheetKeyConstant:           defaults.SheetName,
		rootKey + "." + configurationAddMissingKeyConstant:      defaults.AddMissing,
		rootKey + "." + configurationFailIfNoChangesKeyConstant: defaults.FailIfNoChanges,
	}
}
