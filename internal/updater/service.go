package updater

import (
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/repokit/internal/report"
)

const (
	updatedLineTemplateConstant      = "UPDATED: %s\n"
	unchangedLineTemplateConstant    = "NO CHANGE: %s\n"
	failureLineTemplateConstant      = "ERROR: %s: %v\n"
	summaryLineTemplateConstant      = "Changed %d of %d file(s)\n"
	updateFailureLogMessageConstant  = "Target update failed"
	updateSummaryLogMessageConstant  = "Configuration update completed"
	targetLogFieldNameConstant       = "target"
	changedCountLogFieldNameConstant = "changed"
	targetCountLogFieldNameConstant  = "targets"
	failureCountLogFieldNameConstant = "failures"
	loggerMissingMessageConstant     = "logger not configured"
	reporterMissingMessageConstant   = "reporter not configured"
)

// ErrLoggerNotConfigured indicates the service was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerMissingMessageConstant)

// ErrReporterNotConfigured indicates the service was constructed without a reporter.
var ErrReporterNotConfigured = errors.New(reporterMissingMessageConstant)

// Options describes a single configuration update run.
type Options struct {
	InputPath        string
	TargetSpecifiers []string
	KeyColumn        string
	ValueColumn      string
	SheetName        string
	AddMissing       bool
	FailIfNoChanges  bool
}

// Service applies a key/value table to every resolved configuration file.
type Service struct {
	logger   *zap.Logger
	reporter report.Reporter
}

// NewService constructs a Service with the supplied logger and reporter.
func NewService(logger *zap.Logger, reporter report.Reporter) (*Service, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if reporter == nil {
		return nil, ErrReporterNotConfigured
	}
	return &Service{logger: logger, reporter: reporter}, nil
}

// Update builds the key/value table, resolves the targets, and rewrites every
// file whose entries differ from the table. Per-file failures are reported
// and the remaining targets are still processed.
func (service *Service) Update(options Options) error {
	keyValueTable, tableError := LoadKeyValueTable(options.InputPath, TableOptions{
		KeyColumn:   options.KeyColumn,
		ValueColumn: options.ValueColumn,
		SheetName:   options.SheetName,
	})
	if tableError != nil {
		return tableError
	}

	targetPaths, targetsError := ResolveTargets(options.TargetSpecifiers)
	if targetsError != nil {
		return targetsError
	}
	if len(targetPaths) == 0 {
		return NoTargetsError{Specifiers: options.TargetSpecifiers}
	}

	changedCount := 0
	failureCount := 0
	for _, targetPath := range targetPaths {
		fileChanged, updateError := service.updateTargetFile(targetPath, keyValueTable, options.AddMissing)
		if updateError != nil {
			failureCount++
			service.reporter.Printf(failureLineTemplateConstant, targetPath, updateError)
			service.logger.Warn(updateFailureLogMessageConstant,
				zap.String(targetLogFieldNameConstant, targetPath),
				zap.Error(updateError),
			)
			continue
		}
		if fileChanged {
			changedCount++
			service.reporter.Printf(updatedLineTemplateConstant, targetPath)
		} else {
			service.reporter.Printf(unchangedLineTemplateConstant, targetPath)
		}
	}

	service.reporter.Printf(summaryLineTemplateConstant, changedCount, len(targetPaths))
	service.logger.Info(updateSummaryLogMessageConstant,
		zap.Int(changedCountLogFieldNameConstant, changedCount),
		zap.Int(targetCountLogFieldNameConstant, len(targetPaths)),
		zap.Int(failureCountLogFieldNameConstant, failureCount),
	)

	if failureCount > 0 {
		return UpdateFailuresError{FailureCount: failureCount}
	}
	if options.FailIfNoChanges && changedCount == 0 {
		return NoChangesError{}
	}
	return nil
}

func (service *Service) updateTargetFile(targetPath string, keyValueTable KeyValueTable, addMissing bool) (bool, error) {
	configurationDocument, loadError := LoadConfigurationDocument(targetPath)
	if loadError != nil {
		return false, loadError
	}

	fileChanged := false
	for _, tableEntry := range keyValueTable.Entries() {
		if configurationDocument.SetStringValue(tableEntry.Key, tableEntry.Value, addMissing) {
			fileChanged = true
		}
	}

	if !fileChanged {
		return false, nil
	}
	if saveError := configurationDocument.Save(); saveError != nil {
		return false, saveError
	}
	return true, nil
}
